package config

import "os"

// Environment variables read at request time. Their absence is normal and
// downgrades the corresponding feature.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIModel   = "OPENAI_MODEL"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"

	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvGeminiModel   = "GEMINI_MODEL"
	EnvGeminiBaseURL = "GEMINI_BASE_URL"

	EnvElevenLabsKey     = "ELEVENLABS_API_KEY"
	EnvElevenLabsVoiceID = "ELEVENLABS_VOICE_ID"

	EnvAppConfigPath = "APP_CONFIG_PATH"
	EnvPort          = "PORT"
)

// Environment is a read-only view of process configuration.
type Environment interface {
	Get(key string) string
}

// OSEnvironment reads from the process environment on every call.
type OSEnvironment struct{}

func (OSEnvironment) Get(key string) string { return os.Getenv(key) }

// MapEnvironment is a fixed environment, mostly for tests.
type MapEnvironment map[string]string

func (m MapEnvironment) Get(key string) string { return m[key] }
