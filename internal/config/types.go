package config

type Config struct {
	Provider      string // "openai" or "anthropic"
	OpenAIKey     string
	AnthropicKey  string
	Model         string // empty means the provider default
	BaseURL       string // optional override of the provider endpoint
	SessionSecret []byte
	UIStyle       string // "plain" or "emoji"
	Environment   string
	Port          string

	// true when SESSION_SECRET was not set and a random one was generated
	EphemeralSecret bool
}

// returns the API key for the configured provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicKey
	}

	return c.OpenAIKey
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
