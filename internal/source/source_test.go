package source

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jamalhansen/quill/internal/dates"
	"github.com/jamalhansen/quill/internal/testutil"
)

func TestLoad(t *testing.T) {
	dir := testutil.NewNotesDir(t)
	path := dir.WriteFile("pytexas_2024.md", "# PyTexas\n\nnotes\n")

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Text != "# PyTexas\n\nnotes\n" {
		t.Errorf("Text = %q", f.Text)
	}
	if f.Path != path {
		t.Errorf("Path = %q, want %q", f.Path, path)
	}
	if f.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
	if !dates.IsValid(dates.Format(f.CreatedAt)) {
		t.Errorf("CreatedAt does not format to a valid date: %v", f.CreatedAt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := testutil.NewNotesDir(t)
	_, err := Load(filepath.Join(dir.Path, "nope.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/vault/pytexas_2024.md", "pytexas_2024"},
		{"plain.md", "plain"},
		{"/a/b/no_extension", "no_extension"},
		{"/a/dotted.name.md", "dotted.name"},
	}
	for _, tt := range tests {
		f := &File{Path: tt.path}
		if got := f.Stem(); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
