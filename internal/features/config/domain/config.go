package domain

import (
	scenario "scenario2050/internal/features/scenario/domain"
)

// AppConfig represents the application configuration.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Log       LogConfig       `yaml:"log" json:"log"`
	Narrative NarrativeConfig `yaml:"narrative" json:"narrative"`
	Speech    SpeechConfig    `yaml:"speech" json:"speech"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
	Mode    string `yaml:"mode" json:"mode"` // gin mode: debug, release, test
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

// NarrativeConfig holds the defaults for the hosted narrative backends.
// Environment variables take precedence over the model names.
type NarrativeConfig struct {
	OpenAIModel string  `yaml:"openai_model" json:"openai_model"`
	GeminiModel string  `yaml:"gemini_model" json:"gemini_model"`
	Temperature float64 `yaml:"temperature" json:"temperature"`
}

// SpeechConfig holds the defaults for the hosted speech backend.
type SpeechConfig struct {
	BaseURL         string  `yaml:"base_url" json:"base_url"`
	DefaultVoiceID  string  `yaml:"default_voice_id" json:"default_voice_id"`
	Stability       float64 `yaml:"stability" json:"stability"`
	SimilarityBoost float64 `yaml:"similarity_boost" json:"similarity_boost"`
}

// DefaultAppConfig is used when no config file exists and fills any field a
// config file leaves empty.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{Address: ":8080", Mode: "release"},
		Log:    LogConfig{Level: "info"},
		Narrative: NarrativeConfig{
			OpenAIModel: "gpt-4o-mini",
			GeminiModel: "gemini-1.5-flash",
			Temperature: 0.7,
		},
		Speech: SpeechConfig{
			BaseURL:         "https://api.elevenlabs.io",
			DefaultVoiceID:  "21m00Tcm4TlvDq8ikWAM",
			Stability:       0.4,
			SimilarityBoost: 0.8,
		},
	}
}

// LanguageOption is a selectable UI language.
type LanguageOption struct {
	ID    scenario.Language `json:"id"`
	Label string            `json:"label"`
}

// ProviderOption is a selectable narrative provider and whether its
// credential is currently configured.
type ProviderOption struct {
	ID        scenario.Provider `json:"id"`
	Available bool              `json:"available"`
}

// Catalog is everything a client needs to render the calibration UI from the
// same axis table the server validates against.
type Catalog struct {
	Axes            []scenario.AxisDefinition `json:"axes"`
	Defaults        scenario.ScenarioConfig   `json:"defaults"`
	Languages       []LanguageOption          `json:"languages"`
	Providers       []ProviderOption          `json:"providers"`
	SpeechAvailable bool                      `json:"speechAvailable"`
}
