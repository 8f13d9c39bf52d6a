package infrastructure

import (
	"context"
	"fmt"

	"scenario2050/internal/features/scenario/domain"
)

// AIClient is a narrative backend. Implementations adapt their provider's
// response shape into plain text and report empty output as an error.
type AIClient interface {
	// Name identifies the backend in logs and warnings.
	Name() string

	// GenerateNarrative makes exactly one call to the backend. Hosted
	// backends only read prompt; the mock renders from cfg.
	GenerateNarrative(ctx context.Context, cfg domain.ScenarioConfig, prompt domain.Prompt) (string, error)
}

// AIConfig holds configuration for AI clients
type AIConfig struct {
	Provider    domain.Provider `json:"provider"`
	APIKey      string          `json:"api_key"`
	Model       string          `json:"model"`
	BaseURL     string          `json:"base_url,omitempty"`
	Temperature float64         `json:"temperature"`
}

// AIClientFactory creates AI clients based on configuration
type AIClientFactory interface {
	CreateClient(ctx context.Context, config AIConfig) (AIClient, error)
}

type aiClientFactory struct{}

// NewAIClientFactory returns the factory for the hosted backends and the mock.
func NewAIClientFactory() AIClientFactory {
	return aiClientFactory{}
}

func (aiClientFactory) CreateClient(ctx context.Context, config AIConfig) (AIClient, error) {
	switch config.Provider {
	case domain.ProviderOpenAI:
		return NewOpenAIClient(config)
	case domain.ProviderGemini:
		return NewGeminiClient(ctx, config)
	case domain.ProviderMock:
		return NewMockClient(), nil
	}
	return nil, fmt.Errorf("unknown provider %q", config.Provider)
}
