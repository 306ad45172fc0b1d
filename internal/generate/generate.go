// Package generate provides the description-generation capability consumed
// by the enricher. Backends are pluggable; the enricher only sees the
// Describer contract.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExcerptLimit bounds how many runes of a note are sent to a backend.
const ExcerptLimit = 2000

// MaxDescriptionLen is the length backends are instructed to stay under.
const MaxDescriptionLen = 100

var systemPrompt = fmt.Sprintf("You describe markdown notes to capture the essence of their purpose, "+
	"focusing on the main points, and return a succinct file description under %d characters. "+
	"Never start the description with the words 'File Description:' and never use markdown formatting.",
	MaxDescriptionLen)

// Describer generates a short description for a note. Implementations are
// synchronous from the caller's viewpoint; cancellation and deadlines flow
// through the context.
type Describer interface {
	Describe(ctx context.Context, title, excerpt string) (string, error)
}

// Error is a generation failure: the backend errored, timed out, or
// returned nothing usable. The caller does not retry.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err is (or wraps) a generation failure.
func IsGenerationError(err error) bool {
	var ge *Error
	return errors.As(err, &ge)
}

// Options selects and configures a backend.
type Options struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// New builds a Describer for the configured provider.
func New(opts Options) (Describer, error) {
	switch opts.Provider {
	case "openai", "openai-compatible", "":
		return newOpenAI(opts), nil
	case "anthropic":
		return newAnthropic(opts), nil
	case "ollama":
		return newOllama(opts), nil
	case "static":
		return Static{Description: "Placeholder description."}, nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %s", opts.Provider)
	}
}

// Excerpt returns at most limit runes from the start of text.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}

func userPrompt(title, excerpt string) string {
	return fmt.Sprintf("Please describe the note titled '%s' with the following content:\n\n%s", title, excerpt)
}

// Static returns the same description for every note. Used by dry runs
// and tests.
type Static struct {
	Description string
}

func (s Static) Describe(ctx context.Context, title, excerpt string) (string, error) {
	return s.Description, nil
}

func trimResult(provider, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &Error{Provider: provider, Err: errors.New("empty completion")}
	}
	return text, nil
}
