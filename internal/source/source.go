// Package source loads note files from disk along with the file facts the
// enricher needs: full text and a creation timestamp.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File is a loaded note file. Immutable once loaded.
type File struct {
	Path      string
	Text      string
	CreatedAt time.Time
}

// Load reads the file at path as UTF-8 text and resolves its creation
// timestamp. A missing file surfaces as an error wrapping fs.ErrNotExist.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &File{
		Path:      path,
		Text:      string(raw),
		CreatedAt: creationTime(info),
	}, nil
}

// Stem returns the filename without directory or extension.
func (f *File) Stem() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
