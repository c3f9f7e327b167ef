// Package htmltag provides the public API for building HTML as typed
// Go values.
//
// This is the recommended import for most applications:
//
//	import "github.com/htmltag-dev/htmltag"
//
// Usage:
//
//	card := htmltag.Must("div").
//		WithClass("card").
//		WithChild(htmltag.Must("h2").WithBody("Hello"))
//	html := card.HTML()
//
// Element constructors live in package el, which reads better at call
// sites than raw tag names:
//
//	el.Div(el.Class("card"), el.H2("Hello"))
package htmltag

import (
	"github.com/htmltag-dev/htmltag/pkg/fragment"
	"github.com/htmltag-dev/htmltag/pkg/render"
	"github.com/htmltag-dev/htmltag/pkg/styles"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// =============================================================================
// Tags (re-export from pkg/tag)
// =============================================================================

// Tag is a node in an HTML tree: a name, ordered attributes, optional
// classes and body text, and owned children.
type Tag = tag.Tag

// Attr is a single key/value attribute.
type Attr = tag.Attr

// New creates a tag with the given name. The name is normalized to
// lower case and validated.
//
// Example:
//
//	div, err := htmltag.New("div")
var New = tag.New

// Must creates a tag with the given name and panics on an invalid
// name. Use it for compile-time-constant names.
var Must = tag.Must

// NewWithBody creates a tag with the given name and body text.
var NewWithBody = tag.NewWithBody

// Normalize lower-cases and trims a tag name.
var Normalize = tag.Normalize

// IsValidName reports whether name is usable as a tag name.
var IsValidName = tag.IsValidName

// IsVoid reports whether name is a void element such as br or img.
var IsVoid = tag.IsVoid

// Name validation errors.
var (
	ErrEmptyName   = tag.ErrEmptyName
	ErrInvalidName = tag.ErrInvalidName
)

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Renderer renders tag trees to HTML, compact or pretty.
type Renderer = render.Renderer

// RenderConfig configures a Renderer.
type RenderConfig = render.Config

// PageData describes a full HTML document for page rendering.
type PageData = render.PageData

// NewRenderer creates a Renderer.
//
// Example:
//
//	r := htmltag.NewRenderer(htmltag.RenderConfig{Pretty: true})
//	html, err := r.RenderToString(card)
var NewRenderer = render.NewRenderer

// =============================================================================
// Styles (re-export from pkg/styles)
// =============================================================================

// Sheet is an ordered-by-selector CSS rule set.
type Sheet = styles.Sheet

// Decls maps CSS properties to values within one rule.
type Decls = styles.Decls

// NewSheet creates an empty style sheet.
var NewSheet = styles.New

// InlineStyle formats declarations for a style attribute.
var InlineStyle = styles.Inline

// =============================================================================
// Fragments (re-export from pkg/fragment)
// =============================================================================

// Producer builds a tag tree from request params.
type Producer = fragment.Producer

// Params carries string params into a Producer.
type Params = fragment.Params

// FragmentRegistry maps fragment names to producers.
type FragmentRegistry = fragment.Registry

// NewFragmentRegistry creates an empty fragment registry.
var NewFragmentRegistry = fragment.NewRegistry

// NewParamsCodec creates a codec for signed params tokens.
var NewParamsCodec = fragment.NewCodec
