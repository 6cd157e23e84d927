// Package mimes maps MIME types to file extensions and back.
//
// The default table is seeded with well-known pairs. When a MIME type maps
// to several extensions the first registered one is returned, and the same
// holds for an extension claimed by several MIME types. Additional pairs
// can be loaded from a properties-style source ("extension=mime/type" per
// line); the file named by the DYNHTTP_CONTENT_TYPES environment variable is
// applied when the package is initialized. Loaded pairs never replace an
// existing mapping.
package mimes

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// EnvOverrides names the environment variable pointing at an override file.
const EnvOverrides = "DYNHTTP_CONTENT_TYPES"

// Table is a bidirectional MIME type / extension mapping.
// It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	byType map[string]string
	byExt  map[string]string
}

// NewTable returns a Table seeded with pairs, in order.
func NewTable(pairs [][2]string) *Table {
	t := &Table{
		byType: make(map[string]string, len(pairs)),
		byExt:  make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		t.add(p[0], p[1])
	}

	return t
}

// Add registers a pair, keeping any existing mapping for either side.
func (t *Table) Add(mimeType, extension string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.add(mimeType, extension)
}

func (t *Table) add(mimeType, extension string) {
	mimeType = strings.TrimSpace(mimeType)
	extension = strings.TrimPrefix(strings.TrimSpace(extension), ".")
	if mimeType == "" || extension == "" {
		return
	}

	if _, ok := t.byType[mimeType]; !ok {
		t.byType[mimeType] = extension
	}
	if _, ok := t.byExt[extension]; !ok {
		t.byExt[extension] = mimeType
	}
}

// ExtensionFromMimeType returns the preferred extension, without the leading
// dot, for mimeType. Parameters such as "; charset=utf-8" are ignored.
func (t *Table) ExtensionFromMimeType(mimeType string) (string, bool) {
	mimeType = stripParams(mimeType)
	if mimeType == "" {
		return "", false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if ext, ok := t.byType[mimeType]; ok {
		return ext, true
	}
	ext, ok := t.byType[strings.ToLower(mimeType)]
	return ext, ok
}

// MimeTypeFromExtension returns the MIME type registered for extension,
// with or without a leading dot.
func (t *Table) MimeTypeFromExtension(extension string) (string, bool) {
	extension = strings.TrimPrefix(strings.TrimSpace(extension), ".")
	if extension == "" {
		return "", false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if m, ok := t.byExt[extension]; ok {
		return m, true
	}
	m, ok := t.byExt[strings.ToLower(extension)]
	return m, ok
}

// HasMimeType reports whether mimeType has an entry.
func (t *Table) HasMimeType(mimeType string) bool {
	_, ok := t.ExtensionFromMimeType(mimeType)
	return ok
}

// HasExtension reports whether extension has an entry.
func (t *Table) HasExtension(extension string) bool {
	_, ok := t.MimeTypeFromExtension(extension)
	return ok
}

// LoadOverrides reads "extension=mime/type" lines from r and registers
// them in extension order. It returns the number of pairs that changed the
// table.
func (t *Table) LoadOverrides(r io.Reader) (int, error) {
	entries, err := godotenv.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parsing overrides: %w", err)
	}

	exts := make([]string, 0, len(entries))
	for ext := range entries {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	t.mu.Lock()
	defer t.mu.Unlock()

	var applied int
	for _, ext := range exts {
		before := len(t.byType) + len(t.byExt)
		t.add(entries[ext], ext)
		if len(t.byType)+len(t.byExt) != before {
			applied++
		}
	}

	return applied, nil
}

// LoadOverridesFile applies the overrides stored at path.
func (t *Table) LoadOverridesFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening overrides: %w", err)
	}
	defer f.Close()

	return t.LoadOverrides(f)
}

func stripParams(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(mimeType)
}

var defaultTable = NewTable(seed)

func init() {
	if path := os.Getenv(EnvOverrides); path != "" {
		// A missing or malformed override file leaves the seeded table in place.
		_, _ = defaultTable.LoadOverridesFile(path)
	}
}

// Default returns the process-wide table.
func Default() *Table { return defaultTable }

// ExtensionFromMimeType looks mimeType up in the default table.
func ExtensionFromMimeType(mimeType string) (string, bool) {
	return defaultTable.ExtensionFromMimeType(mimeType)
}

// MimeTypeFromExtension looks extension up in the default table.
func MimeTypeFromExtension(extension string) (string, bool) {
	return defaultTable.MimeTypeFromExtension(extension)
}

// HasMimeType reports whether the default table knows mimeType.
func HasMimeType(mimeType string) bool { return defaultTable.HasMimeType(mimeType) }

// HasExtension reports whether the default table knows extension.
func HasExtension(extension string) bool { return defaultTable.HasExtension(extension) }

// LoadOverrides applies overrides from r to the default table.
func LoadOverrides(r io.Reader) (int, error) { return defaultTable.LoadOverrides(r) }
