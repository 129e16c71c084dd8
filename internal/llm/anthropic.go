package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel = "claude-3-5-haiku-latest"
	defaultMaxTokens      = 4096
)

type AnthropicConfig struct {
	APIKey    string
	Model     string // e.g., "claude-3-5-haiku-latest"
	BaseURL   string
	MaxTokens int64
}

type AnthropicCompleter struct {
	client anthropic.Client
	config AnthropicConfig
}

var _ Completer = (*AnthropicCompleter)(nil)

func NewAnthropicCompleter(config AnthropicConfig) *AnthropicCompleter {
	if config.Model == "" {
		config.Model = defaultAnthropicModel
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0), // single attempt per action
		option.WithHTTPClient(providerHTTPClient),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &AnthropicCompleter{
		client: anthropic.NewClient(opts...),
		config: config,
	}
}

func (a *AnthropicCompleter) Model() string {
	return a.config.Model
}

func (a *AnthropicCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: a.config.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += variant.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("no content in response")
	}

	return text, nil
}
