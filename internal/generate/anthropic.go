package generate

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicDescriber struct {
	client      *anthropic.Client
	model       string
	maxTokens   int
	temperature float32
}

func newAnthropic(opts Options) *anthropicDescriber {
	reqOpts := []option.RequestOption{}

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(apiKey))
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithHTTPClient(&http.Client{Timeout: opts.Timeout}))
	}

	return &anthropicDescriber{
		client:      anthropic.NewClient(reqOpts...),
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}
}

func (d *anthropicDescriber) Describe(ctx context.Context, title, excerpt string) (string, error) {
	maxTokens := int64(d.maxTokens)
	if maxTokens == 0 {
		maxTokens = 256
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.F(d.model),
		MaxTokens: anthropic.F(maxTokens),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(systemPrompt),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(title, excerpt))),
		}),
	}

	resp, err := d.client.Messages.New(ctx, params)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: err}
	}
	if len(resp.Content) == 0 {
		return "", &Error{Provider: "anthropic", Err: errors.New("no content in response")}
	}

	var result string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			result += block.Text
		}
	}

	return trimResult("anthropic", result)
}
