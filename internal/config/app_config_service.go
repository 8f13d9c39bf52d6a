package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"scenario2050/internal/features/config/domain"

	"gopkg.in/yaml.v3"
)

// AppConfigService defines the interface for application configuration management.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	configPath string
	env        Environment
}

// NewAppConfigService creates a new instance of appConfigService. Values from
// env override the file.
func NewAppConfigService(configPath string, env Environment) AppConfigService {
	if env == nil {
		env = OSEnvironment{}
	}
	return &appConfigService{configPath: configPath, env: env}
}

// LoadAppConfig loads the application configuration from the configured YAML
// file. A missing file is not an error: the defaults are returned instead.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	appConfig := domain.DefaultAppConfig()

	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := os.ReadFile(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read app config file %s: %w", absPath, err)
	default:
		if err := yaml.Unmarshal(data, &appConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal app config from %s: %w", absPath, err)
		}
	}

	fillDefaults(&appConfig)
	if port := s.env.Get(EnvPort); port != "" {
		appConfig.Server.Address = ":" + port
	}
	return &appConfig, nil
}

func fillDefaults(c *domain.AppConfig) {
	def := domain.DefaultAppConfig()
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Narrative.OpenAIModel == "" {
		c.Narrative.OpenAIModel = def.Narrative.OpenAIModel
	}
	if c.Narrative.GeminiModel == "" {
		c.Narrative.GeminiModel = def.Narrative.GeminiModel
	}
	if c.Speech.BaseURL == "" {
		c.Speech.BaseURL = def.Speech.BaseURL
	}
	if c.Speech.DefaultVoiceID == "" {
		c.Speech.DefaultVoiceID = def.Speech.DefaultVoiceID
	}
}
