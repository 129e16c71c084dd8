package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// outbound limiter shared by every client (50 requests/second with burst capacity of 10)
var requestLimiter = rate.NewLimiter(50, 10)

// fail-soft wrapper around a Completer: Call never returns an error
type Client struct {
	completer Completer
	provider  Provider
}

// creates a client for the configured provider
func New(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %s", config.Provider)
	}

	var completer Completer

	switch config.Provider {
	case ProviderOpenAI, "":
		completer = NewOpenAICompleter(OpenAIConfig{
			APIKey:  config.APIKey,
			Model:   config.Model,
			BaseURL: config.BaseURL,
		})
		config.Provider = ProviderOpenAI
	case ProviderAnthropic:
		completer = NewAnthropicCompleter(AnthropicConfig{
			APIKey:  config.APIKey,
			Model:   config.Model,
			BaseURL: config.BaseURL,
		})
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}

	return &Client{completer: completer, provider: config.Provider}, nil
}

// wraps an existing completer, used by tests and alternative providers
func NewWithCompleter(provider Provider, completer Completer) *Client {
	return &Client{completer: completer, provider: provider}
}

// sends the system and user prompts and waits for the full reply.
// every failure is folded into the returned Result
func (c *Client) Call(ctx context.Context, systemPrompt, userPrompt string) Result {
	if err := requestLimiter.Wait(ctx); err != nil {
		return failure(fmt.Errorf("rate limiter error: %w", err))
	}

	text, err := c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return failure(err)
	}

	return success(text)
}

// guards against provider panics so the caller always gets a Result
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s provider panicked: %v", c.provider, r)
		}
	}()

	return c.completer.Complete(ctx, systemPrompt, userPrompt)
}

func (c *Client) Model() string {
	return c.completer.Model()
}

func (c *Client) Provider() Provider {
	return c.provider
}
