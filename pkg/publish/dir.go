package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir stores published files under a local root directory.
type Dir struct {
	root string
}

// NewDir creates a directory destination. The root is created on the
// first store if it does not exist.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the destination directory.
func (d *Dir) Root() string {
	return d.root
}

// Store writes body to root/relPath, creating parent directories as
// needed.
func (d *Dir) Store(ctx context.Context, relPath string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean, ok := sanitizeRelPath(relPath)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadPath, relPath)
	}

	full := filepath.Join(d.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, body, 0o644)
}

// sanitizeRelPath validates a site-relative path. It rejects traversal
// and absolute-path tricks so publishing cannot escape the destination
// root.
func sanitizeRelPath(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00 in URL-derived paths).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Reject OS-absolute/volume paths after slash conversion.
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}
