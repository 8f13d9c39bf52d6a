package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scenario2050/internal/features/scenario/domain"

	openai "github.com/sashabaranov/go-openai"
)

var errEmptyOpenAI = errors.New("openai: empty response")

// openAIClient sends the prompt as a two-message chat completion.
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient creates a chat completion client. The API key must be set.
func NewOpenAIClient(config AIConfig) (AIClient, error) {
	if config.APIKey == "" {
		return nil, errors.New("openai: api key must not be empty")
	}
	if config.Model == "" {
		return nil, errors.New("openai: model must not be empty")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &openAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       config.Model,
		temperature: float32(config.Temperature),
	}, nil
}

func (c *openAIClient) Name() string { return string(domain.ProviderOpenAI) }

// GenerateNarrative returns the first choice's message text.
func (c *openAIClient) GenerateNarrative(ctx context.Context, _ domain.ScenarioConfig, prompt domain.Prompt) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyOpenAI
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyOpenAI
	}
	return text, nil
}
