package dump

import (
	"strings"
	"testing"

	"github.com/htmltag-dev/htmltag/el"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

func TestTreeLabelsEveryNode(t *testing.T) {
	tree := el.Div(el.ID("app"), el.Class("page"),
		el.H1("Dashboard"),
		el.Ul(el.Class("items"),
			el.Li("one"),
			el.Li("two"),
		),
	)

	got := Tree(tree)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Tree() has %d lines, want 5:\n%s", len(lines), got)
	}
	if lines[0] != "div#app.page" {
		t.Errorf("root line = %q, want %q", lines[0], "div#app.page")
	}

	for _, label := range []string{
		`h1 "Dashboard"`,
		"ul.items",
		`li "one"`,
		`li "two"`,
	} {
		if !strings.Contains(got, label) {
			t.Errorf("Tree() missing label %q:\n%s", label, got)
		}
	}
}

func TestTreeNil(t *testing.T) {
	if got := Tree(nil); got != "" {
		t.Errorf("Tree(nil) = %q, want empty", got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		build func() *tag.Tag
		want  string
	}{
		{
			name:  "bare",
			build: func() *tag.Tag { return tag.Must("div") },
			want:  "div",
		},
		{
			name:  "id and classes",
			build: func() *tag.Tag { return tag.Must("div").WithID("x").WithClass("a b") },
			want:  "div#x.a.b",
		},
		{
			name: "extra attrs bracketed",
			build: func() *tag.Tag {
				return tag.Must("a").WithHref("/home").WithAttr("target", "_blank")
			},
			want: "a [href=/home target=_blank]",
		},
		{
			name:  "body preview",
			build: func() *tag.Tag { return tag.Must("p").WithBody("hi") },
			want:  `p "hi"`,
		},
		{
			name: "long body truncated",
			build: func() *tag.Tag {
				return tag.Must("p").WithBody("the quick brown fox jumps over the lazy dog")
			},
			want: `p "the quick brown fox jump..."`,
		},
		{
			name: "body whitespace collapsed",
			build: func() *tag.Tag {
				return tag.Must("p").WithBody("line one\n\tline two")
			},
			want: `p "line one line two"`,
		},
		{
			name:  "empty body hidden",
			build: func() *tag.Tag { return tag.Must("p").WithBody("") },
			want:  "p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := label(tt.build()); got != tt.want {
				t.Errorf("label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *tag.Tag
		wantNodes int
		wantDepth int
	}{
		{"nil", func() *tag.Tag { return nil }, 0, 0},
		{"single", func() *tag.Tag { return tag.Must("div") }, 1, 1},
		{
			"flat",
			func() *tag.Tag { return el.Ul(el.Li("a"), el.Li("b")) },
			3, 2,
		},
		{
			"nested",
			func() *tag.Tag {
				return el.Div(el.Section(el.P("deep")), el.Span("s"))
			},
			4, 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, depth := Stats(tt.build())
			if nodes != tt.wantNodes || depth != tt.wantDepth {
				t.Errorf("Stats() = %d, %d, want %d, %d", nodes, depth, tt.wantNodes, tt.wantDepth)
			}
		})
	}
}
