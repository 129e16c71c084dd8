package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	StylePlain = "plain"
	StyleEmoji = "emoji"

	defaultPort = "8080"
)

// loads configuration from environment variables, reading envFile first when it exists.
// an empty envFile means ".env"
func LoadEnvironmentVariables(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return fromEnvironment()
}

func fromEnvironment() (*Config, error) {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI
	}

	cfg := &Config{
		Provider:     provider,
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:        os.Getenv("LLM_MODEL"),
		BaseURL:      os.Getenv("LLM_BASE_URL"),
		UIStyle:      strings.ToLower(os.Getenv("UI_STYLE")),
		Environment:  os.Getenv("ENVIRONMENT"),
		Port:         os.Getenv("PORT"),
	}

	switch provider {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found: set OPENAI_API_KEY, the app will not work until it is configured")
		}
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("Anthropic API key not found: set ANTHROPIC_API_KEY, the app will not work until it is configured")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (expected %q or %q)", provider, ProviderOpenAI, ProviderAnthropic)
	}

	switch cfg.UIStyle {
	case "":
		cfg.UIStyle = StylePlain
	case StylePlain, StyleEmoji:
	default:
		return nil, fmt.Errorf("unsupported UI_STYLE %q (expected %q or %q)", cfg.UIStyle, StylePlain, StyleEmoji)
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		cfg.SessionSecret = securecookie.GenerateRandomKey(32)
		cfg.EphemeralSecret = true
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	return cfg, nil
}
