// Package htmltagtempl bridges tag trees into templ templates.
//
// A tag tree wrapped with Component satisfies templ.Component, so
// builder-produced fragments can be composed inside generated templates:
//
//	@htmltagtempl.Component(card)
//
// Rendering goes through the tree's compact serialization; use
// ComponentWith to route through a configured render.Renderer instead.
package htmltagtempl

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/htmltag-dev/htmltag/pkg/render"
	"github.com/htmltag-dev/htmltag/pkg/styles"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// Component wraps a tag tree as a templ.Component that renders the
// tree's compact HTML. A nil tree renders nothing.
func Component(t *tag.Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if t == nil {
			return nil
		}
		_, err := io.WriteString(w, t.HTML())
		return err
	})
}

// ComponentWith wraps a tag tree as a templ.Component rendered through
// the given renderer, so pretty or escaped output can flow into templ
// layouts.
func ComponentWith(r *render.Renderer, t *tag.Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.RenderToWriter(w, t)
	})
}

// StyleSheet wraps a style sheet as a templ.Component that renders its
// style element.
func StyleSheet(s styles.Sheet) templ.Component {
	return Component(s.StyleTag())
}
