package tag

import "strings"

// HTML serializes the tag and its subtree to a compact HTML string.
//
// The opening tag carries the explicit attributes in insertion order,
// then a single class attribute when any classes are present. After the
// opening tag come the body text, then each child in insertion order,
// then the closing tag. Void tags stop after the opening tag. Nothing is
// escaped; see the package documentation.
func (t *Tag) HTML() string {
	var sb strings.Builder
	sb.Grow(t.sizeHint())
	t.writeTo(&sb)
	return sb.String()
}

// String implements fmt.Stringer and is equivalent to HTML.
func (t *Tag) String() string {
	return t.HTML()
}

func (t *Tag) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(t.name)
	for _, a := range t.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	if len(t.classes) > 0 {
		sb.WriteString(` class="`)
		for i, c := range t.classes {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c)
		}
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if t.void {
		return
	}
	if t.hasBody {
		sb.WriteString(t.body)
	}
	for _, c := range t.children {
		c.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(t.name)
	sb.WriteByte('>')
}

// sizeHint estimates the rendered length so HTML can grow its builder
// once. It is a floor, not an exact count.
func (t *Tag) sizeHint() int {
	n := 2*len(t.name) + 5
	for _, a := range t.attrs {
		n += len(a.Key) + len(a.Value) + 4
	}
	for _, c := range t.classes {
		n += len(c) + 1
	}
	if len(t.classes) > 0 {
		n += 8
	}
	n += len(t.body)
	for _, c := range t.children {
		n += c.sizeHint()
	}
	return n
}
