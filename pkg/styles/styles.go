// Package styles builds small CSS style sheets to pair with tag trees.
//
// A Sheet maps selectors to declaration blocks and renders them in
// sorted order, so output is deterministic regardless of insertion
// order. Sheets are plain maps; the methods mutate in place except the
// With* forms, which return an updated copy.
//
//	sheet := styles.New()
//	sheet.Add(".wow", "color", "red")
//	sheet.Add("h1", "font-size", "30px")
//	page.AddChild(sheet.StyleTag())
//
// Like pkg/tag, nothing is escaped or validated; selectors, properties,
// and values are emitted verbatim.
package styles

import (
	"sort"
	"strings"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// Decls is one declaration block: CSS property to value.
type Decls map[string]string

// Sheet maps CSS selectors to their declaration blocks.
type Sheet map[string]Decls

// New returns an empty Sheet.
func New() Sheet {
	return make(Sheet)
}

// Add sets one property under the given selector, creating the
// selector's block if needed.
func (s Sheet) Add(selector, property, value string) {
	block, ok := s[selector]
	if !ok {
		block = make(Decls)
		s[selector] = block
	}
	block[property] = value
}

// AddDecls merges a declaration block into the given selector. Existing
// properties are overwritten.
func (s Sheet) AddDecls(selector string, decls Decls) {
	for property, value := range decls {
		s.Add(selector, property, value)
	}
}

// WithRule returns a copy of the sheet with one property added. The
// receiver is unchanged.
func (s Sheet) WithRule(selector, property, value string) Sheet {
	c := s.Clone()
	c.Add(selector, property, value)
	return c
}

// WithDecls returns a copy of the sheet with a declaration block
// merged in. The receiver is unchanged.
func (s Sheet) WithDecls(selector string, decls Decls) Sheet {
	c := s.Clone()
	c.AddDecls(selector, decls)
	return c
}

// Clone returns a deep copy of the sheet.
func (s Sheet) Clone() Sheet {
	c := make(Sheet, len(s))
	for selector, block := range s {
		nb := make(Decls, len(block))
		for property, value := range block {
			nb[property] = value
		}
		c[selector] = nb
	}
	return c
}

// String renders the sheet as CSS text. Selectors and properties are
// sorted, each rule formatted as
//
//	selector {
//	    property: value;
//	}
func (s Sheet) String() string {
	var sb strings.Builder
	for _, selector := range sortedKeys(s) {
		sb.WriteString(selector)
		sb.WriteString(" {\n")
		block := s[selector]
		for _, property := range sortedKeys(block) {
			sb.WriteString("    ")
			sb.WriteString(property)
			sb.WriteString(": ")
			sb.WriteString(block[property])
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

// StyleTag wraps the rendered sheet in a style element ready to attach
// to a tag tree.
func (s Sheet) StyleTag() *tag.Tag {
	return tag.Must("style").WithBody("\n" + s.String())
}

// Inline renders a declaration block in attribute form, sorted, for use
// with Tag.SetStyle:
//
//	t.SetStyle(styles.Inline(styles.Decls{"color": "red"}))
func Inline(d Decls) string {
	var sb strings.Builder
	for _, property := range sortedKeys(d) {
		sb.WriteString(property)
		sb.WriteString(": ")
		sb.WriteString(d[property])
		sb.WriteString(";")
	}
	return sb.String()
}

// Sanitize strips newlines, tabs, and spaces from CSS text, collapsing
// a formatted sheet into a compact single line.
func Sanitize(css string) string {
	return strings.NewReplacer("\n", "", "\t", "", " ", "").Replace(css)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
