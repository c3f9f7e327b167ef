// Package errors provides structured, coded errors for the CLI and
// config layers.
//
// Each registered code (e.g. "E101") carries a category, a message, a
// detail paragraph, and a documentation link. Errors render three ways:
// Format for rich terminal output with colors and hints, FormatCompact
// for single-line logs, and FormatJSON for tooling.
//
//	return errors.New("E101").
//	    WithDetail("No htmltag.json found in " + dir).
//	    WithSuggestion("Run 'htmltag init' to create one")
//
// Library packages (pkg/...) use plain sentinel errors; coded errors
// are for surfaces a person reads.
package errors
