// Package testutil provides helpers for tests that operate on a temporary
// notes directory.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NotesDir is a temporary directory of note files for a test.
type NotesDir struct {
	t    *testing.T
	Path string
}

// NewNotesDir creates an empty temporary notes directory.
func NewNotesDir(t *testing.T) *NotesDir {
	t.Helper()
	return &NotesDir{t: t, Path: t.TempDir()}
}

// WriteFile writes a note file (relative path) and returns its full path.
func (d *NotesDir) WriteFile(relPath, content string) string {
	d.t.Helper()
	fullPath := filepath.Join(d.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		d.t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		d.t.Fatalf("write %s: %v", relPath, err)
	}
	return fullPath
}

// ReadFile returns the content of a note file (relative path).
func (d *NotesDir) ReadFile(relPath string) string {
	d.t.Helper()
	content, err := os.ReadFile(filepath.Join(d.Path, relPath))
	if err != nil {
		d.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(content)
}

// AssertFileContains fails the test if the file does not contain the substring.
func (d *NotesDir) AssertFileContains(relPath, substr string) {
	d.t.Helper()
	content := d.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		d.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (d *NotesDir) AssertFileNotContains(relPath, substr string) {
	d.t.Helper()
	content := d.ReadFile(relPath)
	if strings.Contains(content, substr) {
		d.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}
