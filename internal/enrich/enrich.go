// Package enrich implements the metadata-merge core: it inspects a note's
// metadata, decides which recognized fields are missing, and fills each from
// file facts or the description generator. Existing non-empty values are
// never touched, so re-running over an enriched note is a no-op.
package enrich

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/jamalhansen/quill/internal/dates"
	"github.com/jamalhansen/quill/internal/generate"
	"github.com/jamalhansen/quill/internal/note"
	"github.com/jamalhansen/quill/internal/source"
)

// Enrich fills Created, Title, and Description in that order. The order only
// matters for the description, which uses the (possibly just-derived) title.
//
// A generator failure propagates to the caller with Description left unset,
// so a later run can retry the file.
func Enrich(ctx context.Context, n *note.Note, src *source.File, gen generate.Describer) error {
	if v, ok := n.Meta.Get(note.KeyCreated); !ok || v.IsEmpty() {
		n.Meta.Set(note.KeyCreated, note.Date(dates.Format(src.CreatedAt)))
	}

	var title string
	if v, ok := n.Meta.Get(note.KeyTitle); ok && !v.IsEmpty() {
		// A non-string value is coerced to its string form for use below;
		// the stored value stays as it was.
		title = v.StringForm()
	} else {
		title = TitleFromStem(src.Stem())
		n.Meta.Set(note.KeyTitle, note.String(title))
	}

	if v, ok := n.Meta.Get(note.KeyDescription); !ok || v.IsEmpty() {
		desc, err := gen.Describe(ctx, title, generate.Excerpt(src.Text, generate.ExcerptLimit))
		if err != nil {
			return fmt.Errorf("describe %s: %w", src.Path, err)
		}
		n.Meta.Set(note.KeyDescription, note.String(strings.TrimSpace(desc)))
	}

	return nil
}

// TitleFromStem derives a display title from a filename stem: underscores
// become spaces and each word is capitalized ("pytexas_2024" -> "Pytexas 2024").
func TitleFromStem(stem string) string {
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}
