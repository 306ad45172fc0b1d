package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jamalhansen/quill/internal/frontmatter"
	"github.com/jamalhansen/quill/internal/generate"
	"github.com/jamalhansen/quill/internal/note"
	"github.com/jamalhansen/quill/internal/source"
)

// recordingDescriber captures what the enricher asks for.
type recordingDescriber struct {
	calls   int
	title   string
	excerpt string
	result  string
	err     error
}

func (d *recordingDescriber) Describe(ctx context.Context, title, excerpt string) (string, error) {
	d.calls++
	d.title = title
	d.excerpt = excerpt
	if d.err != nil {
		return "", d.err
	}
	return d.result, nil
}

func srcFile(path, text string) *source.File {
	return &source.File{
		Path:      path,
		Text:      text,
		CreatedAt: time.Date(2024, time.May, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestEnrichFillsAllFields(t *testing.T) {
	gen := &recordingDescriber{result: " A note about the conference. "}
	n := frontmatter.Parse("# PyTexas\n\nnotes\n")
	src := srcFile("/vault/pytexas_2024.md", "# PyTexas\n\nnotes\n")

	if err := Enrich(context.Background(), n, src, gen); err != nil {
		t.Fatal(err)
	}

	created, _ := n.Meta.Get(note.KeyCreated)
	if d, ok := created.AsDate(); !ok || d != "2024-05-02" {
		t.Errorf("Created = %q, want 2024-05-02", d)
	}
	title, _ := n.Meta.Get(note.KeyTitle)
	if s, _ := title.AsString(); s != "Pytexas 2024" {
		t.Errorf("Title = %q, want %q", s, "Pytexas 2024")
	}
	desc, _ := n.Meta.Get(note.KeyDescription)
	if s, _ := desc.AsString(); s != "A note about the conference." {
		t.Errorf("Description = %q, want trimmed result", s)
	}

	if gen.title != "Pytexas 2024" {
		t.Errorf("generator got title %q", gen.title)
	}
	if gen.excerpt != src.Text {
		t.Errorf("generator got excerpt %q", gen.excerpt)
	}
	if n.Body != "# PyTexas\n\nnotes\n" {
		t.Errorf("body changed: %q", n.Body)
	}
}

func TestEnrichIsIdempotent(t *testing.T) {
	gen := &recordingDescriber{result: "First pass."}
	n := frontmatter.Parse("body\n")
	src := srcFile("/vault/some_note.md", "body\n")

	if err := Enrich(context.Background(), n, src, gen); err != nil {
		t.Fatal(err)
	}

	// The second pass must not touch anything, including the generator.
	failing := &recordingDescriber{err: errors.New("must not be called")}
	if err := Enrich(context.Background(), n, src, failing); err != nil {
		t.Fatalf("second enrich errored: %v", err)
	}
	if failing.calls != 0 {
		t.Errorf("generator called %d times on enriched note", failing.calls)
	}
	desc, _ := n.Meta.Get(note.KeyDescription)
	if s, _ := desc.AsString(); s != "First pass." {
		t.Errorf("Description changed to %q", s)
	}
}

func TestEnrichPreservesExistingValues(t *testing.T) {
	gen := &recordingDescriber{result: "generated"}
	n := frontmatter.Parse(`---
Created: 2020-01-01
Title: Kept Title
Description: Kept description.
---

body
`)
	src := srcFile("/vault/other_name.md", "body")

	if err := Enrich(context.Background(), n, src, gen); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 0 {
		t.Error("generator called despite existing description")
	}
	created, _ := n.Meta.Get(note.KeyCreated)
	if d, _ := created.AsDate(); d != "2020-01-01" {
		t.Errorf("Created overwritten: %q", d)
	}
	title, _ := n.Meta.Get(note.KeyTitle)
	if s, _ := title.AsString(); s != "Kept Title" {
		t.Errorf("Title overwritten: %q", s)
	}
}

func TestEnrichCoercesNonStringTitle(t *testing.T) {
	gen := &recordingDescriber{result: "generated"}
	n := frontmatter.Parse(`---
Title: 2024
---

body
`)
	src := srcFile("/vault/numeric.md", "body")

	if err := Enrich(context.Background(), n, src, gen); err != nil {
		t.Fatal(err)
	}

	// The generator sees the coerced string form.
	if gen.title != "2024" {
		t.Errorf("generator got title %q, want coerced %q", gen.title, "2024")
	}
	// The stored value stays numeric.
	title, _ := n.Meta.Get(note.KeyTitle)
	if _, ok := title.AsNumber(); !ok {
		t.Error("stored Title was rewritten away from its numeric value")
	}
}

func TestEnrichGenerationFailure(t *testing.T) {
	genErr := &generate.Error{Provider: "test", Err: errors.New("backend down")}
	gen := &recordingDescriber{err: genErr}
	n := frontmatter.Parse("body\n")
	src := srcFile("/vault/failing_note.md", "body\n")

	err := Enrich(context.Background(), n, src, gen)
	if err == nil {
		t.Fatal("expected error")
	}
	if !generate.IsGenerationError(err) {
		t.Errorf("error should classify as generation failure: %v", err)
	}
	// Created and Title were still filled; Description stays unset for a
	// future run.
	if _, ok := n.Meta.Get(note.KeyCreated); !ok {
		t.Error("Created not set before the failing step")
	}
	if _, ok := n.Meta.Get(note.KeyDescription); ok {
		t.Error("Description set despite generator failure")
	}
}

func TestEnrichTruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("x", generate.ExcerptLimit+500)
	gen := &recordingDescriber{result: "ok"}
	n := frontmatter.Parse(long)
	src := srcFile("/vault/long_note.md", long)

	if err := Enrich(context.Background(), n, src, gen); err != nil {
		t.Fatal(err)
	}
	if len(gen.excerpt) != generate.ExcerptLimit {
		t.Errorf("excerpt length = %d, want %d", len(gen.excerpt), generate.ExcerptLimit)
	}
}

func TestTitleFromStem(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"pytexas_2024", "Pytexas 2024"},
		{"meeting_notes", "Meeting Notes"},
		{"single", "Single"},
		{"ALL_CAPS_NAME", "All Caps Name"},
		{"multiple__underscores", "Multiple Underscores"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			if got := TitleFromStem(tt.stem); got != tt.want {
				t.Errorf("TitleFromStem(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}
