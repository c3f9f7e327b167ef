package render

import (
	"bytes"
	"io"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// Config configures the renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string

	// Escape enables HTML escaping of body text and attribute values.
	// Off by default: pkg/tag stores content verbatim and the compact
	// renderer reproduces Tag.HTML exactly. Turn it on when the tree
	// carries untrusted data.
	Escape bool
}

// Renderer renders tag trees to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tag tree to an HTML string.
func (r *Renderer) RenderToString(t *tag.Tag) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders a tag tree to the given writer. A nil tree
// writes nothing.
func (r *Renderer) RenderToWriter(w io.Writer, t *tag.Tag) error {
	ew := &errWriter{w: w}
	if r.config.Pretty {
		r.renderPretty(ew, t, 0)
	} else {
		r.renderCompact(ew, t)
	}
	return ew.err
}

// renderCompact writes the tree with no added whitespace. With Escape
// off this is the same byte sequence Tag.HTML produces.
func (r *Renderer) renderCompact(w *errWriter, t *tag.Tag) {
	if t == nil {
		return
	}
	r.writeOpenTag(w, t)
	if t.Void() {
		return
	}
	if body, ok := t.Body(); ok {
		r.writeText(w, body)
	}
	for _, c := range t.Children() {
		r.renderCompact(w, c)
	}
	w.writeString("</")
	w.writeString(t.Name())
	w.writeByte('>')
}

// renderPretty writes the tree with one element per line. Inline
// elements such as span and their subtrees stay compact on one line so
// that significant whitespace is not introduced around text.
func (r *Renderer) renderPretty(w *errWriter, t *tag.Tag, depth int) {
	if t == nil {
		return
	}
	r.writeIndent(w, depth)
	r.writeOpenTag(w, t)
	if t.Void() {
		w.writeByte('\n')
		return
	}

	body, hasBody := t.Body()
	children := t.Children()

	if len(children) == 0 || isInlineElement(t.Name()) {
		if hasBody {
			r.writeText(w, body)
		}
		for _, c := range children {
			r.renderCompact(w, c)
		}
	} else {
		w.writeByte('\n')
		if hasBody && body != "" {
			r.writeIndent(w, depth+1)
			r.writeText(w, body)
			w.writeByte('\n')
		}
		for _, c := range children {
			r.renderPretty(w, c, depth+1)
		}
		r.writeIndent(w, depth)
	}

	w.writeString("</")
	w.writeString(t.Name())
	w.writeByte('>')
	w.writeByte('\n')
}

// writeOpenTag writes the opening tag: name, explicit attributes in
// insertion order, then the single class attribute when classes exist.
func (r *Renderer) writeOpenTag(w *errWriter, t *tag.Tag) {
	w.writeByte('<')
	w.writeString(t.Name())
	for _, a := range t.Attrs() {
		w.writeByte(' ')
		w.writeString(a.Key)
		w.writeString(`="`)
		r.writeAttrValue(w, a.Value)
		w.writeByte('"')
	}
	if classes := t.Classes(); len(classes) > 0 {
		w.writeString(` class="`)
		for i, c := range classes {
			if i > 0 {
				w.writeByte(' ')
			}
			r.writeAttrValue(w, c)
		}
		w.writeByte('"')
	}
	w.writeByte('>')
}

func (r *Renderer) writeText(w *errWriter, s string) {
	if r.config.Escape {
		escapeTo(w, s, false)
		return
	}
	w.writeString(s)
}

func (r *Renderer) writeAttrValue(w *errWriter, s string) {
	if r.config.Escape {
		escapeTo(w, s, true)
		return
	}
	w.writeString(s)
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *errWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.writeString(r.config.Indent)
	}
}

// errWriter wraps an io.Writer and latches the first write error so the
// render loops stay free of error plumbing. Writes after a failure are
// dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) writeByte(b byte) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.Write([]byte{b})
}
