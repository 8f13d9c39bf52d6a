package infrastructure

import (
	"context"

	"scenario2050/internal/features/scenario/domain"
)

// mockClient is the offline backend.
type mockClient struct{}

// NewMockClient returns the offline backend. It never fails.
func NewMockClient() AIClient {
	return mockClient{}
}

func (mockClient) Name() string { return string(domain.ProviderMock) }

func (mockClient) GenerateNarrative(_ context.Context, cfg domain.ScenarioConfig, _ domain.Prompt) (string, error) {
	return domain.MockNarrative(cfg), nil
}
