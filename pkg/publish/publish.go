// Package publish exports rendered pages as static files.
//
// An Exporter renders pages and hands the bytes to a Destination. Two
// destinations ship: Dir writes under a local root, Bucket puts objects
// into S3. Paths are site-relative ("index.html", "docs/intro.html")
// and are sanitized before any write, so a page name can never escape
// the destination.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/htmltag-dev/htmltag/pkg/render"
	"github.com/htmltag-dev/htmltag/pkg/styles"
)

// ErrBadPath is returned for paths that would escape the destination.
var ErrBadPath = errors.New("publish: unsafe path")

// Destination stores one published file.
type Destination interface {
	Store(ctx context.Context, relPath string, body []byte) error
}

// Exporter renders pages into a destination.
type Exporter struct {
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewExporter creates an exporter. A nil renderer means compact output;
// a nil logger means slog.Default().
func NewExporter(r *render.Renderer, logger *slog.Logger) *Exporter {
	if r == nil {
		r = render.NewRenderer(render.Config{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{renderer: r, logger: logger}
}

// Export renders every page and stores it under its path. Paths are
// processed in sorted order so runs are deterministic. The first
// failure stops the export.
func (e *Exporter) Export(ctx context.Context, dst Destination, pages map[string]render.PageData) error {
	paths := make([]string, 0, len(pages))
	for p := range pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := e.renderer.RenderPage(&buf, pages[p]); err != nil {
			return fmt.Errorf("publish: render %s: %w", p, err)
		}
		if err := dst.Store(ctx, p, buf.Bytes()); err != nil {
			return fmt.Errorf("publish: store %s: %w", p, err)
		}

		e.logger.Info("page published",
			"path", p,
			"bytes", buf.Len())
	}
	return nil
}

// ExportSheet stores a style sheet under path, usually with a .css
// extension.
func (e *Exporter) ExportSheet(ctx context.Context, dst Destination, path string, sheet styles.Sheet) error {
	if err := dst.Store(ctx, path, []byte(sheet.String())); err != nil {
		return fmt.Errorf("publish: store %s: %w", path, err)
	}
	e.logger.Info("sheet published",
		"path", path,
		"rules", len(sheet))
	return nil
}

// ExportAsset stores body under a fingerprinted version of relPath and
// records the mapping in man. Returns the fingerprinted path.
func (e *Exporter) ExportAsset(ctx context.Context, dst Destination, relPath string, body []byte, man *Manifest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fp := Fingerprint(relPath, body)
	if err := dst.Store(ctx, fp, body); err != nil {
		return "", fmt.Errorf("publish: store %s: %w", fp, err)
	}
	man.Set(relPath, fp)

	e.logger.Info("asset published",
		"path", fp,
		"bytes", len(body))
	return fp, nil
}

// ExportManifest stores the manifest at ManifestPath so a later run or
// a server can map source names to the published files.
func (e *Exporter) ExportManifest(ctx context.Context, dst Destination, man *Manifest) error {
	body, err := man.JSON()
	if err != nil {
		return fmt.Errorf("publish: encode manifest: %w", err)
	}
	if err := dst.Store(ctx, ManifestPath, body); err != nil {
		return fmt.Errorf("publish: store %s: %w", ManifestPath, err)
	}
	e.logger.Info("manifest published",
		"path", ManifestPath,
		"entries", man.Len())
	return nil
}
