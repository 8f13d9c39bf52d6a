package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockNarrative_Deterministic(t *testing.T) {
	cfg := DefaultScenario()
	first := MockNarrative(cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MockNarrative(cfg))
	}
}

func TestMockNarrative_Shape(t *testing.T) {
	for _, lang := range Languages {
		t.Run(string(lang), func(t *testing.T) {
			cfg := DefaultScenario()
			cfg.Language = lang
			text := MockNarrative(cfg)

			parts := strings.SplitN(text, "\n\n", 2)
			require.Len(t, parts, 2)
			assert.NotContains(t, parts[0], "\n")

			tail := strings.Split(parts[1], "\n")
			require.Len(t, tail, 6)
			assert.Equal(t, mockHeading.In(lang), tail[0])
			for _, line := range tail[1:] {
				assert.True(t, strings.HasPrefix(line, "- "), line)
			}
		})
	}
}

func TestMockNarrative_Interpolation(t *testing.T) {
	cfg := DefaultScenario().With(AxisClimate, 3).With(AxisFinancial, 12.5)
	text := MockNarrative(cfg)

	assert.True(t, strings.HasPrefix(text, "2050 feels like a careful balancing act. Warming sits near 3.0°C,"))
	assert.Contains(t, text, "Workforce pressure at 45 suggests")
	assert.Contains(t, text, "Financial volatility around 12.5 means")
	assert.Contains(t, text, "Technology diffusion at 60 will shape")

	cfg.Language = LanguageDE
	de := MockNarrative(cfg)
	assert.Contains(t, de, "Die Erwärmung liegt bei etwa 3.0°C")
	assert.Contains(t, de, "Technologie-Diffusion (60) bestimmt")
	assert.True(t, strings.HasSuffix(de, "- Unterstütze Politik für sichere digitale Informationsräume."))
}
