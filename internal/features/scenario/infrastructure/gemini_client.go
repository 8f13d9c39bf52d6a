package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scenario2050/internal/features/scenario/domain"

	"google.golang.org/genai"
)

var errEmptyGemini = errors.New("gemini: empty response")

// geminiClient sends the prompt as a single user turn. The content generation
// API used here has no separate system role, so both halves of the prompt are
// folded into one text part.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient creates a content generation client. The API key must be set.
func NewGeminiClient(ctx context.Context, config AIConfig) (AIClient, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini: api key must not be empty")
	}
	if config.Model == "" {
		return nil, errors.New("gemini: model must not be empty")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &geminiClient{
		client:      client,
		model:       config.Model,
		temperature: float32(config.Temperature),
	}, nil
}

func (c *geminiClient) Name() string { return string(domain.ProviderGemini) }

// GenerateNarrative returns candidates[0].content.parts[0].text. A safety
// block surfaces as a response without that text, not as a transport error,
// so the empty case is always checked.
func (c *geminiClient) GenerateNarrative(ctx context.Context, _ domain.ScenarioConfig, prompt domain.Prompt) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(CombinePrompt(prompt), genai.RoleUser),
	}
	temperature := c.temperature

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := strings.TrimSpace(firstCandidateText(resp))
	if text == "" {
		if reason := blockReason(resp); reason != "" {
			return "", fmt.Errorf("%w (%s)", errEmptyGemini, reason)
		}
		return "", errEmptyGemini
	}
	return text, nil
}

// CombinePrompt folds the system instruction into the user turn.
func CombinePrompt(prompt domain.Prompt) string {
	return prompt.System + "\n\n" + prompt.User
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	part := candidate.Content.Parts[0]
	if part == nil {
		return ""
	}
	return part.Text
}

func blockReason(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "blocked: " + string(resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil && resp.Candidates[0].FinishReason != "" {
		return "finish reason: " + string(resp.Candidates[0].FinishReason)
	}
	return ""
}
