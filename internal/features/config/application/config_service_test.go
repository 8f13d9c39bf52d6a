package application

import (
	"testing"

	"scenario2050/internal/config"
	"scenario2050/internal/features/config/domain"
	scenario "scenario2050/internal/features/scenario/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NoCredentials(t *testing.T) {
	catalog := NewCatalogService(config.MapEnvironment{}, domain.DefaultAppConfig()).Catalog()

	assert.Equal(t, scenario.Axes(), catalog.Axes)
	assert.Equal(t, scenario.DefaultScenario(), catalog.Defaults)
	assert.False(t, catalog.SpeechAvailable)

	require.Len(t, catalog.Languages, 2)
	assert.Equal(t, domain.LanguageOption{ID: scenario.LanguageDE, Label: "Deutsch"}, catalog.Languages[1])

	assert.Equal(t, []domain.ProviderOption{
		{ID: scenario.ProviderOpenAI, Available: false},
		{ID: scenario.ProviderGemini, Available: false},
		{ID: scenario.ProviderMock, Available: true},
	}, catalog.Providers)
}

func TestCatalog_WithCredentials(t *testing.T) {
	env := config.MapEnvironment{
		config.EnvGeminiKey:     "gm",
		config.EnvElevenLabsKey: "xi",
	}
	catalog := NewCatalogService(env, domain.DefaultAppConfig()).Catalog()

	assert.True(t, catalog.SpeechAvailable)
	assert.False(t, catalog.Providers[0].Available)
	assert.True(t, catalog.Providers[1].Available)
}
