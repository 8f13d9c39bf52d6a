package application

import (
	"scenario2050/internal/config"
	"scenario2050/internal/features/config/domain"
	scenarioapp "scenario2050/internal/features/scenario/application"
	scenario "scenario2050/internal/features/scenario/domain"
)

var languageLabels = map[scenario.Language]string{
	scenario.LanguageEN: "English",
	scenario.LanguageDE: "Deutsch",
}

// CatalogService defines the interface for the public UI catalog.
type CatalogService interface {
	Catalog() domain.Catalog
}

// catalogService is the implementation of CatalogService.
type catalogService struct {
	env       config.Environment
	appConfig domain.AppConfig
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(env config.Environment, appConfig domain.AppConfig) CatalogService {
	if env == nil {
		env = config.OSEnvironment{}
	}
	return &catalogService{env: env, appConfig: appConfig}
}

// Catalog describes the axes, defaults and options the UI renders. Provider
// availability is probed on every call, the same way narrative requests do.
func (s *catalogService) Catalog() domain.Catalog {
	catalog := domain.Catalog{
		Axes:            scenario.Axes(),
		Defaults:        scenario.DefaultScenario(),
		SpeechAvailable: s.env.Get(config.EnvElevenLabsKey) != "",
	}
	for _, lang := range scenario.Languages {
		catalog.Languages = append(catalog.Languages, domain.LanguageOption{ID: lang, Label: languageLabels[lang]})
	}
	for _, provider := range scenario.Providers {
		_, ok := scenarioapp.ProbeProvider(s.env, s.appConfig, provider)
		catalog.Providers = append(catalog.Providers, domain.ProviderOption{ID: provider, Available: ok})
	}
	return catalog
}
