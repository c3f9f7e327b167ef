// Package dump pretty-prints tag trees for debugging.
//
// Tree draws one node per line in an ASCII tree, labeled with a
// selector-style summary of each tag:
//
//	div#app.page
//	├── h1 "Dashboard"
//	└── ul.items
//	    ├── li "one"
//	    └── li "two"
package dump

import (
	"strings"

	"github.com/xlab/treeprint"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// bodyPreviewLen caps how much body text a node label shows.
const bodyPreviewLen = 24

// Tree renders the structure of a tag tree, one line per node.
func Tree(t *tag.Tag) string {
	if t == nil {
		return ""
	}
	p := treeprint.New()
	p.SetValue(label(t))
	for _, c := range t.Children() {
		addNode(p, c)
	}
	return p.String()
}

func addNode(p treeprint.Tree, t *tag.Tag) {
	children := t.Children()
	if len(children) == 0 {
		p.AddNode(label(t))
		return
	}
	branch := p.AddBranch(label(t))
	for _, c := range children {
		addNode(branch, c)
	}
}

// Stats returns the node count and depth of a tag tree. A single tag
// has depth 1.
func Stats(t *tag.Tag) (nodes, depth int) {
	if t == nil {
		return 0, 0
	}
	nodes, depth = 1, 1
	for _, c := range t.Children() {
		n, d := Stats(c)
		nodes += n
		if d+1 > depth {
			depth = d + 1
		}
	}
	return nodes, depth
}

// label summarizes one tag in selector form: name, #id, .classes, the
// remaining attributes in brackets, and a truncated body preview.
func label(t *tag.Tag) string {
	var sb strings.Builder
	sb.WriteString(t.Name())

	if id, ok := t.Attr("id"); ok {
		sb.WriteByte('#')
		sb.WriteString(id)
	}
	for _, c := range t.Classes() {
		sb.WriteByte('.')
		sb.WriteString(c)
	}

	var extra []string
	for _, a := range t.Attrs() {
		if a.Key == "id" {
			continue
		}
		extra = append(extra, a.Key+"="+a.Value)
	}
	if len(extra) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(extra, " "))
		sb.WriteByte(']')
	}

	if body, ok := t.Body(); ok && body != "" {
		sb.WriteString(` "`)
		sb.WriteString(previewBody(body))
		sb.WriteByte('"')
	}
	return sb.String()
}

func previewBody(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	r := []rune(body)
	if len(r) <= bodyPreviewLen {
		return body
	}
	return string(r[:bodyPreviewLen]) + "..."
}
