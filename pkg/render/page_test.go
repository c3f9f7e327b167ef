package render

import (
	"strings"
	"testing"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

func TestRenderPage(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(Config{})
	page := PageData{
		Title: "Gallery",
		Body:  tag.Must("main").WithID("app").WithBody("hello"),
		Meta: []MetaTag{
			{Name: "description", Content: "demo page"},
		},
		Links: []LinkTag{
			{Rel: "icon", Href: "/favicon.ico", Type: "image/x-icon"},
		},
		StyleSheets: []string{"/static/app.css"},
		Styles:      []string{".card{border:1px solid #ccc}"},
		Scripts: []ScriptTag{
			{Src: "/static/app.js", Defer: true},
		},
	}

	if err := r.RenderPage(&sb, page); err != nil {
		t.Fatalf("RenderPage error = %v", err)
	}
	got := sb.String()

	wantParts := []string{
		"<!DOCTYPE html>\n",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		"<title>Gallery</title>",
		`<meta name="description" content="demo page">`,
		`<link rel="icon" href="/favicon.ico" type="image/x-icon">`,
		`<link rel="stylesheet" href="/static/app.css">`,
		"<style>.card{border:1px solid #ccc}</style>",
		`<script src="/static/app.js" defer></script>`,
		`<main id="app">hello</main>`,
		"</body>\n</html>\n",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("RenderPage output missing %q\noutput: %s", part, got)
		}
	}
}

func TestRenderPageDefaults(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(Config{})
	if err := r.RenderPage(&sb, PageData{Body: tag.Must("div")}); err != nil {
		t.Fatalf("RenderPage error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, `<html lang="en">`) {
		t.Errorf("RenderPage output missing default lang, got %s", got)
	}
	if strings.Contains(got, "<title>") {
		t.Error("RenderPage wrote a title element without a title")
	}
}

func TestRenderPageEscapesHead(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(Config{})
	page := PageData{
		Title: `A <"dangerous"> & title`,
		Lang:  `en"><script>`,
		Body:  tag.Must("div"),
	}
	if err := r.RenderPage(&sb, page); err != nil {
		t.Fatalf("RenderPage error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "<title>A &lt;&quot;dangerous&quot;&gt; &amp; title</title>") {
		t.Errorf("title not escaped: %s", got)
	}
	if !strings.Contains(got, `<html lang="en&quot;&gt;&lt;script&gt;">`) {
		t.Errorf("lang not escaped: %s", got)
	}
}

func TestRenderPageModuleScript(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(Config{})
	page := PageData{
		Body: tag.Must("div"),
		Scripts: []ScriptTag{
			{Src: "/static/mod.js", Module: true},
			{Inline: "console.log(1)", Async: true},
		},
	}
	if err := r.RenderPage(&sb, page); err != nil {
		t.Fatalf("RenderPage error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, `<script src="/static/mod.js" type="module"></script>`) {
		t.Errorf("module script wrong: %s", got)
	}
	if !strings.Contains(got, "<script async>console.log(1)</script>") {
		t.Errorf("inline script wrong: %s", got)
	}
}
