package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"scenario2050/internal/config"
	configdomain "scenario2050/internal/features/config/domain"
	"scenario2050/internal/features/speech/domain"
	"scenario2050/internal/features/speech/infrastructure"

	"go.uber.org/zap"
)

// TTSClientFactory builds a speech backend for an API key.
type TTSClientFactory func(apiKey string) (infrastructure.TTSClient, error)

// SpeechService defines the interface for the speech application service.
type SpeechService interface {
	// Synthesize renders text to audio. Unlike narrative generation there is
	// no fallback: failures come back as ErrNotConfigured, ErrBadRequest or
	// *domain.UpstreamError.
	Synthesize(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResult, error)

	// Available reports whether a speech credential is configured.
	Available() bool
}

type speechService struct {
	factory      TTSClientFactory
	env          config.Environment
	defaultVoice string
	logger       *zap.Logger
}

// NewSpeechService creates a new instance of speechService. A nil factory uses
// ElevenLabs with the speech settings from appConfig.
func NewSpeechService(factory TTSClientFactory, env config.Environment, appConfig configdomain.AppConfig, logger *zap.Logger) SpeechService {
	if factory == nil {
		settings := appConfig.Speech
		factory = func(apiKey string) (infrastructure.TTSClient, error) {
			return infrastructure.NewElevenLabsClient(apiKey, settings.BaseURL, infrastructure.VoiceSettings{
				Stability:       settings.Stability,
				SimilarityBoost: settings.SimilarityBoost,
			}, nil)
		}
	}
	if env == nil {
		env = config.OSEnvironment{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &speechService{
		factory:      factory,
		env:          env,
		defaultVoice: firstNonEmpty(appConfig.Speech.DefaultVoiceID, "21m00Tcm4TlvDq8ikWAM"),
		logger:       logger,
	}
}

func (s *speechService) Available() bool {
	return s.env.Get(config.EnvElevenLabsKey) != ""
}

func (s *speechService) Synthesize(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResult, error) {
	apiKey := s.env.Get(config.EnvElevenLabsKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing %s for TTS generation: %w", config.EnvElevenLabsKey, domain.ErrNotConfigured)
	}
	if req.Text == "" {
		return nil, fmt.Errorf("text is required: %w", domain.ErrBadRequest)
	}

	text := domain.Truncate(req.Text)
	voiceID := firstNonEmpty(strings.TrimSpace(req.VoiceID), s.env.Get(config.EnvElevenLabsVoiceID), s.defaultVoice)

	client, err := s.factory(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create tts client: %w", err)
	}

	audio, err := client.Synthesize(ctx, infrastructure.TTSRequest{
		Text:    text,
		VoiceID: voiceID,
		Model:   infrastructure.ModelForLanguage(req.Language),
	})
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			s.logger.Error("tts backend rejected request",
				zap.Int("status", upstream.Status),
				zap.String("voice_id", voiceID),
				zap.String("body", upstream.Body))
		} else {
			s.logger.Error("tts request failed", zap.String("voice_id", voiceID), zap.Error(err))
		}
		return nil, err
	}

	if text != req.Text {
		s.logger.Debug("tts text truncated",
			zap.Int("from", utf8.RuneCountInString(req.Text)),
			zap.Int("to", utf8.RuneCountInString(text)))
	}
	return &domain.SynthesisResult{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		MimeType:    domain.MimeType,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
