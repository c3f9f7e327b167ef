package publish

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/htmltag-dev/htmltag/el"
	"github.com/htmltag-dev/htmltag/pkg/render"
	"github.com/htmltag-dev/htmltag/pkg/styles"
)

// captureDest records stores in order.
type captureDest struct {
	order []string
	files map[string][]byte
	err   error
}

func newCaptureDest() *captureDest {
	return &captureDest{files: make(map[string][]byte)}
}

func (c *captureDest) Store(ctx context.Context, relPath string, body []byte) error {
	if c.err != nil {
		return c.err
	}
	c.order = append(c.order, relPath)
	c.files[relPath] = append([]byte(nil), body...)
	return nil
}

func quietExporter() *Exporter {
	return NewExporter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExportRendersAllPages(t *testing.T) {
	dst := newCaptureDest()
	pages := map[string]render.PageData{
		"b.html": {Title: "Second", Body: el.P("two")},
		"a.html": {Title: "First", Body: el.P("one")},
	}

	if err := quietExporter().Export(context.Background(), dst, pages); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if len(dst.order) != 2 || dst.order[0] != "a.html" || dst.order[1] != "b.html" {
		t.Fatalf("store order = %v, want [a.html b.html]", dst.order)
	}

	got := string(dst.files["a.html"])
	for _, part := range []string{"<!DOCTYPE html>", "<title>First</title>", "<p>one</p>"} {
		if !strings.Contains(got, part) {
			t.Errorf("a.html missing %q in %q", part, got)
		}
	}
}

func TestExportStopsOnStoreError(t *testing.T) {
	dst := newCaptureDest()
	dst.err = errors.New("disk full")

	pages := map[string]render.PageData{
		"a.html": {Body: el.P("one")},
	}
	err := quietExporter().Export(context.Background(), dst, pages)
	if err == nil {
		t.Fatal("expected store error to propagate")
	}
	if !strings.Contains(err.Error(), "a.html") {
		t.Errorf("error %q should name the failing path", err)
	}
}

func TestExportHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := map[string]render.PageData{
		"a.html": {Body: el.P("one")},
	}
	if err := quietExporter().Export(ctx, newCaptureDest(), pages); !errors.Is(err, context.Canceled) {
		t.Fatalf("Export() error = %v, want context.Canceled", err)
	}
}

func TestExportSheet(t *testing.T) {
	dst := newCaptureDest()
	sheet := styles.New()
	sheet.Add("h1", "color", "blue")

	if err := quietExporter().ExportSheet(context.Background(), dst, "site.css", sheet); err != nil {
		t.Fatalf("ExportSheet() error: %v", err)
	}

	want := "h1 {\n    color: blue;\n}\n"
	if got := string(dst.files["site.css"]); got != want {
		t.Errorf("site.css = %q, want %q", got, want)
	}
}
