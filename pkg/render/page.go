package render

import (
	"io"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root tag for the page content.
	Body *tag.Tag

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags to include.
	Scripts []ScriptTag

	// Styles contains inline CSS blocks, one style element each.
	Styles []string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer. Head
// metadata is always escaped; the body tree is rendered with the
// renderer's configuration.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.writeString("<!DOCTYPE html>\n")
	ew.writeString(`<html lang="`)
	ew.writeString(escapeAttr(lang))
	ew.writeString("\">\n")

	r.renderHead(ew, page)

	ew.writeString("<body>\n")
	if ew.err != nil {
		return ew.err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if !r.config.Pretty {
		ew.writeByte('\n')
	}
	ew.writeString("</body>\n</html>\n")
	return ew.err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w *errWriter, page PageData) {
	w.writeString("<head>\n")
	w.writeString(`  <meta charset="utf-8">` + "\n")
	w.writeString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		w.writeString("  <title>")
		w.writeString(escapeHTML(page.Title))
		w.writeString("</title>\n")
	}

	for _, meta := range page.Meta {
		renderMetaTag(w, meta)
	}
	for _, link := range page.Links {
		renderLinkTag(w, link)
	}
	for _, href := range page.StyleSheets {
		w.writeString(`  <link rel="stylesheet" href="`)
		w.writeString(escapeAttr(href))
		w.writeString("\">\n")
	}
	for _, style := range page.Styles {
		w.writeString("  <style>")
		w.writeString(style)
		w.writeString("</style>\n")
	}
	for _, script := range page.Scripts {
		renderScriptTag(w, script)
	}

	w.writeString("</head>\n")
}

// renderMetaTag renders a meta element.
func renderMetaTag(w *errWriter, meta MetaTag) {
	w.writeString("  <meta")
	writeHeadAttr(w, "charset", meta.Charset)
	writeHeadAttr(w, "name", meta.Name)
	writeHeadAttr(w, "property", meta.Property)
	writeHeadAttr(w, "http-equiv", meta.HTTPEquiv)
	writeHeadAttr(w, "content", meta.Content)
	w.writeString(">\n")
}

// renderLinkTag renders a link element.
func renderLinkTag(w *errWriter, link LinkTag) {
	w.writeString("  <link")
	writeHeadAttr(w, "rel", link.Rel)
	writeHeadAttr(w, "href", link.Href)
	writeHeadAttr(w, "type", link.Type)
	writeHeadAttr(w, "sizes", link.Sizes)
	writeHeadAttr(w, "crossorigin", link.CrossOrigin)
	writeHeadAttr(w, "media", link.Media)
	w.writeString(">\n")
}

// renderScriptTag renders a script element.
func renderScriptTag(w *errWriter, script ScriptTag) {
	w.writeString("  <script")
	writeHeadAttr(w, "src", script.Src)
	if script.Module {
		w.writeString(` type="module"`)
	} else {
		writeHeadAttr(w, "type", script.Type)
	}
	if script.Defer {
		w.writeString(" defer")
	}
	if script.Async {
		w.writeString(" async")
	}
	w.writeString(">")
	if script.Inline != "" {
		w.writeString(script.Inline)
	}
	w.writeString("</script>\n")
}

// writeHeadAttr writes one escaped attribute, skipping empty values.
func writeHeadAttr(w *errWriter, key, value string) {
	if value == "" {
		return
	}
	w.writeByte(' ')
	w.writeString(key)
	w.writeString(`="`)
	w.writeString(escapeAttr(value))
	w.writeByte('"')
}
