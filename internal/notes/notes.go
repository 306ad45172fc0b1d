// Package notes enumerates the note files of a target directory.
package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the recognized note extension.
const DefaultPattern = "*.md"

var (
	// ErrNotFound means the target directory does not exist.
	ErrNotFound = errors.New("directory not found")

	// ErrNotADirectory means the target path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// List returns the absolute paths of note files in dir matching pattern,
// sorted. The listing is a pure function of the tree, so a run can always
// be restarted. Directories matching the pattern are skipped.
func List(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		full := filepath.Join(dir, filepath.FromSlash(m))
		fi, err := os.Stat(full)
		if err != nil || fi.IsDir() {
			continue
		}
		paths = append(paths, full)
	}
	return paths, nil
}
