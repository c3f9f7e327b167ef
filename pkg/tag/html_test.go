package tag

import (
	"fmt"
	"testing"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Tag
		want  string
	}{
		{
			name:  "empty element",
			build: func() *Tag { return Must("div") },
			want:  "<div></div>",
		},
		{
			name:  "body only",
			build: func() *Tag { return Must("p").WithBody("hello") },
			want:  "<p>hello</p>",
		},
		{
			name: "attributes in insertion order",
			build: func() *Tag {
				return Must("a").WithHref("/home").WithAttr("target", "_blank")
			},
			want: `<a href="/home" target="_blank"></a>`,
		},
		{
			name: "overwritten attribute renders once at original position",
			build: func() *Tag {
				d := Must("div")
				d.SetAttr("id", "a")
				d.SetAttr("data-x", "1")
				d.SetAttr("id", "b")
				return d
			},
			want: `<div id="b" data-x="1"></div>`,
		},
		{
			name: "classes render as one attribute after explicit attrs",
			build: func() *Tag {
				return Must("div").WithID("card").WithClass("btn").WithClass("primary")
			},
			want: `<div id="card" class="btn primary"></div>`,
		},
		{
			name: "duplicate class renders once",
			build: func() *Tag {
				return Must("div").WithClass("btn").WithClass("btn")
			},
			want: `<div class="btn"></div>`,
		},
		{
			name: "class set before id still renders after it",
			build: func() *Tag {
				d := Must("div")
				d.AddClass("first")
				d.SetID("late")
				return d
			},
			want: `<div id="late" class="first"></div>`,
		},
		{
			name: "body renders before children",
			build: func() *Tag {
				return Must("div").WithBody("intro").WithChild(Must("p").WithBody("child"))
			},
			want: "<div>intro<p>child</p></div>",
		},
		{
			name: "children in insertion order",
			build: func() *Tag {
				return Must("ul").WithChildren(
					Must("li").WithBody("one"),
					Must("li").WithBody("two"),
					Must("li").WithBody("three"),
				)
			},
			want: "<ul><li>one</li><li>two</li><li>three</li></ul>",
		},
		{
			name: "nested structure",
			build: func() *Tag {
				return Must("div").WithClass("outer").WithChild(
					Must("div").WithClass("inner").WithChild(
						Must("span").WithBody("deep"),
					),
				)
			},
			want: `<div class="outer"><div class="inner"><span>deep</span></div></div>`,
		},
		{
			name:  "void element stops at opening tag",
			build: func() *Tag { return Must("br") },
			want:  "<br>",
		},
		{
			name: "void element keeps attributes",
			build: func() *Tag {
				return Must("img").WithSrc("logo.png").WithAttr("alt", "logo")
			},
			want: `<img src="logo.png" alt="logo">`,
		},
		{
			name:  "forced void on custom name",
			build: func() *Tag { return Must("icon-star").WithClass("lg").AsVoid() },
			want:  `<icon-star class="lg">`,
		},
		{
			name:  "empty attribute value",
			build: func() *Tag { return Must("input").WithAttr("disabled", "") },
			want:  `<input disabled="">`,
		},
		{
			name:  "empty body set explicitly",
			build: func() *Tag { return Must("p").WithBody("") },
			want:  "<p></p>",
		},
		{
			name:  "body stored verbatim",
			build: func() *Tag { return Must("p").WithBody(`<b>&"raw"</b>`) },
			want:  `<p><b>&"raw"</b></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().HTML(); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringMatchesHTML(t *testing.T) {
	d := Must("div").WithID("x").WithClass("a b").WithBody("hi")
	if d.String() != d.HTML() {
		t.Errorf("String() = %q, HTML() = %q, want equal", d.String(), d.HTML())
	}
	if got := fmt.Sprint(d); got != d.HTML() {
		t.Errorf("fmt.Sprint = %q, want %q", got, d.HTML())
	}
}

func TestHTMLIsStable(t *testing.T) {
	d := Must("div").WithID("x").WithClass("a").WithChild(Must("p").WithBody("hi"))
	first := d.HTML()
	for i := 0; i < 3; i++ {
		if got := d.HTML(); got != first {
			t.Fatalf("HTML() call %d = %q, want %q", i+2, got, first)
		}
	}
}

func BenchmarkHTML(b *testing.B) {
	table := Must("table").WithClass("grid")
	for i := 0; i < 20; i++ {
		row := Must("tr")
		for j := 0; j < 5; j++ {
			row.AddChild(Must("td").WithBody("cell").WithAttr("data-col", "x"))
		}
		table.AddChild(row)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.HTML()
	}
}
