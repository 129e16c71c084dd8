package main

import (
	"fmt"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/config"
	"codeberg.org/doctor/server/internal/llm"
)

// creates the model client and the assistant
func InitializeServices(cfg *config.Config) (*Services, error) {
	llmClient, err := llm.New(llm.Config{
		Provider: llm.Provider(cfg.Provider),
		APIKey:   cfg.APIKey(),
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Services{
		LLM:       llmClient,
		Assistant: assistant.New(llmClient, assistant.Style(cfg.UIStyle)),
	}, nil
}
