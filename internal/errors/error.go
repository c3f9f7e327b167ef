package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryExport Category = "export"
	CategoryServe  Category = "serve"
	CategoryCLI    Category = "cli"
)

// TagError is a structured error with a code, fix suggestion, and
// documentation link.
type TagError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, export, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is input showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TagError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TagError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *TagError) WithDetail(d string) *TagError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TagError) WithSuggestion(s string) *TagError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *TagError) WithExample(ex string) *TagError {
	e.Example = ex
	return e
}

// Wrap wraps another error.
func (e *TagError) Wrap(err error) *TagError {
	e.Wrapped = err
	return e
}

// New creates a TagError from a registered error code.
func New(code string) *TagError {
	template, ok := registry[code]
	if !ok {
		return &TagError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TagError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new TagError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TagError {
	return &TagError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TagError.
func FromError(err error, code string) *TagError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TagError); ok {
		return te
	}
	return New(code).Wrap(err)
}
