package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// sends one system + user exchange to a chat model and returns the reply text
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// holds configuration for LLM initialization
type Config struct {
	Provider Provider
	APIKey   string
	Model    string // empty selects the provider default
	BaseURL  string // empty selects the public endpoint
}

// outcome of one model call. on failure Text carries the
// user-visible "Error: ..." message and Err the cause
type Result struct {
	Text string
	Err  error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(err error) Result {
	return Result{Text: "Error: " + err.Error(), Err: err}
}
