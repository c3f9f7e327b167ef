package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Project configuration not found",
		Detail:   "No htmltag.json was found in the directory or any parent directory.",
		DocURL:   "https://htmltag.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid project configuration",
		Detail:   "htmltag.json could not be read or parsed.",
		DocURL:   "https://htmltag.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field is out of range or malformed.",
		DocURL:   "https://htmltag.dev/docs/errors/E103",
	},

	// ============================================
	// Export Errors (E120-E139)
	// ============================================

	"E121": {
		Category: CategoryExport,
		Message:  "Export destination unavailable",
		Detail:   "The output directory could not be created or written.",
		DocURL:   "https://htmltag.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryExport,
		Message:  "S3 upload failed",
		Detail:   "One or more objects could not be uploaded to the configured bucket.",
		DocURL:   "https://htmltag.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategoryExport,
		Message:  "Page render failed",
		Detail:   "A page could not be rendered to HTML.",
		DocURL:   "https://htmltag.dev/docs/errors/E123",
	},

	// ============================================
	// Serve Errors (E140-E159)
	// ============================================

	"E141": {
		Category: CategoryServe,
		Message:  "Server failed to start",
		Detail:   "The fragment server could not bind to the configured address.",
		DocURL:   "https://htmltag.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryServe,
		Message:  "Signing key unusable",
		Detail:   "The configured signing key is empty or could not be decoded.",
		DocURL:   "https://htmltag.dev/docs/errors/E142",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E161": {
		Category: CategoryCLI,
		Message:  "Unknown fragment",
		Detail:   "The named fragment is not registered.",
		DocURL:   "https://htmltag.dev/docs/errors/E161",
	},
}
