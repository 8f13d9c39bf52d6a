package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"scenario2050/internal/features/speech/domain"
)

const (
	ttsPathFmt        = "/v1/text-to-speech/%s"
	multilingualModel = "eleven_multilingual_v2"
)

// TTSClient defines a text-to-speech backend.
type TTSClient interface {
	// Synthesize returns the raw audio for text. A non-success answer is
	// reported as *domain.UpstreamError.
	Synthesize(ctx context.Context, req TTSRequest) ([]byte, error)
}

// TTSRequest is one synthesis call. Model may be empty to use the backend's
// default.
type TTSRequest struct {
	Text    string
	VoiceID string
	Model   string
}

// VoiceSettings mirrors the ElevenLabs voice_settings object.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// ModelForLanguage picks the multilingual model for German and leaves the
// backend default otherwise.
func ModelForLanguage(language string) string {
	if language == "de" {
		return multilingualModel
	}
	return ""
}

type elevenLabsClient struct {
	apiKey     string
	baseURL    string
	settings   VoiceSettings
	httpClient *http.Client
}

// NewElevenLabsClient creates an ElevenLabs client. apiKey must be non-empty.
func NewElevenLabsClient(apiKey, baseURL string, settings VoiceSettings, httpClient *http.Client) (TTSClient, error) {
	if apiKey == "" {
		return nil, errors.New("elevenlabs: apiKey must not be empty")
	}
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &elevenLabsClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		settings:   settings,
		httpClient: httpClient,
	}, nil
}

type ttsBody struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id,omitempty"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

func (c *elevenLabsClient) Synthesize(ctx context.Context, req TTSRequest) ([]byte, error) {
	if req.VoiceID == "" {
		return nil, errors.New("elevenlabs: voice id must not be empty")
	}

	payload, err := json.Marshal(ttsBody{
		Text:          req.Text,
		ModelID:       req.Model,
		VoiceSettings: c.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: encode request: %w", err)
	}

	endpoint := c.baseURL + fmt.Sprintf(ttsPathFmt, url.PathEscape(req.VoiceID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: build request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", domain.MimeType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, domain.MaxErrorBody+1))
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Body: domain.BoundBody(body)}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: read audio: %w", err)
	}
	return audio, nil
}
