package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path"
	"strings"
	"sync"
)

// ManifestPath is where ExportManifest stores the asset manifest.
const ManifestPath = "manifest.json"

// Manifest holds the mapping from source asset paths to their
// fingerprinted names:
//
//	{
//	  "styles.css": "styles.4f7a9c01.css"
//	}
//
// An export builds the manifest while storing assets; pages resolve
// their asset references through it so published HTML points at the
// fingerprinted files. It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest. Use LoadManifest to read one
// from a previous export.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// LoadManifest reads a manifest.json file written by ExportManifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return &Manifest{entries: entries}, nil
}

// Resolve returns the fingerprinted path for the given source path.
// Paths with no entry come back unchanged.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has reports whether the manifest contains the given source path.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or updates an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// All returns a copy of all entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}

// JSON returns the manifest body as indented JSON with sorted keys and
// a trailing newline.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m.All(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Fingerprint returns relPath with a short content hash inserted before
// the extension. "styles.css" becomes "styles.4f7a9c01.css"; the hash
// segment is what Bucket's cache policy recognizes as immutable.
func Fingerprint(relPath string, body []byte) string {
	sum := sha256.Sum256(body)
	fp := hex.EncodeToString(sum[:4])
	ext := path.Ext(relPath)
	return strings.TrimSuffix(relPath, ext) + "." + fp + ext
}

// Resolver resolves a source asset path to the URL a page should
// reference, including any path prefix and fingerprinted name.
type Resolver interface {
	Asset(source string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver backed by a manifest with a path
// prefix prepended to every resolved path:
//
//	resolver := publish.NewResolver(man, "/")
//	resolver.Asset("styles.css") // "/styles.4f7a9c01.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

// passthrough returns assets unchanged apart from the prefix.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that applies only the
// prefix. Use it when assets are served under their source names, as
// the development server does, so dev and exported paths stay
// consistent:
//
//	publish.NewPassthroughResolver("/").Asset("styles.css") // "/styles.css"
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
