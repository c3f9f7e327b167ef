// Package render serializes tag trees built with pkg/tag.
//
// Tag.HTML already produces compact output; this package adds the
// configurable paths on top of it:
//
//   - Pretty-printed output with indentation for development
//   - Opt-in escaping of body text and attribute values
//   - Rendering into an io.Writer instead of a string
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
// To render a tag tree to a string:
//
//	renderer := render.NewRenderer(render.Config{})
//	html, err := renderer.RenderToString(tree)
//
// With the zero Config the output is byte for byte the same as calling
// tree.HTML(); the renderer exists for the non-default modes.
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Title: "Dashboard",
//	    Body:  tree,
//	}
//	err := renderer.RenderPage(w, page)
//
// Head metadata (title, meta, link, script) is always escaped; the body
// tree follows the renderer's Escape setting.
package render
