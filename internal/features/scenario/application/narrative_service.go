package application

import (
	"context"
	"fmt"

	"scenario2050/internal/config"
	configdomain "scenario2050/internal/features/config/domain"
	"scenario2050/internal/features/scenario/domain"
	"scenario2050/internal/features/scenario/infrastructure"

	"go.uber.org/zap"
)

// NarrativeService defines the interface for the narrative application service.
type NarrativeService interface {
	// Generate runs the whole pipeline on an untrusted request body.
	Generate(ctx context.Context, raw map[string]any) domain.NarrativeResult

	// GenerateNarrative dispatches an already normalized config. It always
	// returns usable text; backend failures turn into the mock narrative plus
	// a warning.
	GenerateNarrative(ctx context.Context, cfg domain.ScenarioConfig, prompt domain.Prompt) domain.NarrativeResult
}

// narrativeService is the implementation of NarrativeService.
type narrativeService struct {
	factory   infrastructure.AIClientFactory
	mock      infrastructure.AIClient
	env       config.Environment
	appConfig configdomain.AppConfig
	logger    *zap.Logger
}

// NewNarrativeService creates a new instance of narrativeService.
func NewNarrativeService(factory infrastructure.AIClientFactory, env config.Environment, appConfig configdomain.AppConfig, logger *zap.Logger) NarrativeService {
	if factory == nil {
		factory = infrastructure.NewAIClientFactory()
	}
	if env == nil {
		env = config.OSEnvironment{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &narrativeService{factory: factory, mock: infrastructure.NewMockClient(), env: env, appConfig: appConfig, logger: logger}
}

func (s *narrativeService) Generate(ctx context.Context, raw map[string]any) domain.NarrativeResult {
	cfg := domain.Normalize(raw)
	return s.GenerateNarrative(ctx, cfg, domain.BuildPrompt(cfg))
}

func (s *narrativeService) GenerateNarrative(ctx context.Context, cfg domain.ScenarioConfig, prompt domain.Prompt) domain.NarrativeResult {
	aiConfig, ok := ProbeProvider(s.env, s.appConfig, cfg.Provider)
	if !ok || cfg.Provider == domain.ProviderMock {
		if cfg.Provider != domain.ProviderMock {
			s.logger.Debug("provider not configured, using mock", zap.String("provider", string(cfg.Provider)))
		}
		return domain.NarrativeResult{Text: s.mockText(ctx, cfg, prompt)}
	}

	text, err := s.invoke(ctx, aiConfig, cfg, prompt)
	if err != nil {
		s.logger.Warn("narrative backend failed, using mock",
			zap.String("provider", string(cfg.Provider)),
			zap.String("model", aiConfig.Model),
			zap.Error(err))
		return domain.NarrativeResult{Text: domain.MockNarrative(cfg), Warning: err.Error()}
	}
	return domain.NarrativeResult{Text: text}
}

// mockText renders the offline narrative. The mock backend has no failure
// mode, but the pure renderer stays the last word.
func (s *narrativeService) mockText(ctx context.Context, cfg domain.ScenarioConfig, prompt domain.Prompt) string {
	text, err := s.mock.GenerateNarrative(ctx, cfg, prompt)
	if err != nil || text == "" {
		return domain.MockNarrative(cfg)
	}
	return text
}

// invoke makes the single backend attempt. A panicking client is reported as
// an error like any other failure.
func (s *narrativeService) invoke(ctx context.Context, aiConfig infrastructure.AIConfig, cfg domain.ScenarioConfig, prompt domain.Prompt) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%s: backend panic: %v", aiConfig.Provider, r)
		}
	}()

	client, err := s.factory.CreateClient(ctx, aiConfig)
	if err != nil {
		return "", err
	}
	text, err = client.GenerateNarrative(ctx, cfg, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%s: empty response", client.Name())
	}
	return text, nil
}

// ProbeProvider reports whether provider can be used right now and, if so, the
// client configuration for it. The mock provider is always usable.
func ProbeProvider(env config.Environment, appConfig configdomain.AppConfig, provider domain.Provider) (infrastructure.AIConfig, bool) {
	aiConfig := infrastructure.AIConfig{
		Provider:    provider,
		Temperature: appConfig.Narrative.Temperature,
	}
	switch provider {
	case domain.ProviderOpenAI:
		aiConfig.APIKey = env.Get(config.EnvOpenAIKey)
		aiConfig.Model = firstNonEmpty(env.Get(config.EnvOpenAIModel), appConfig.Narrative.OpenAIModel, "gpt-4o-mini")
		aiConfig.BaseURL = env.Get(config.EnvOpenAIBaseURL)
	case domain.ProviderGemini:
		aiConfig.APIKey = env.Get(config.EnvGeminiKey)
		aiConfig.Model = firstNonEmpty(env.Get(config.EnvGeminiModel), appConfig.Narrative.GeminiModel, "gemini-1.5-flash")
		aiConfig.BaseURL = env.Get(config.EnvGeminiBaseURL)
	case domain.ProviderMock:
		return aiConfig, true
	default:
		return aiConfig, false
	}
	return aiConfig, aiConfig.APIKey != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
