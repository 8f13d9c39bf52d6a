package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWellFormed(t *testing.T, cfg ScenarioConfig) {
	t.Helper()
	for _, axis := range Axes() {
		v := cfg.Value(axis.ID)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s not finite: %v", axis.ID, v)
		assert.GreaterOrEqual(t, v, axis.Min, "%s below min", axis.ID)
		assert.LessOrEqual(t, v, axis.Max, "%s above max", axis.ID)
	}
	assert.Contains(t, Languages, cfg.Language)
	assert.Contains(t, Providers, cfg.Provider)
}

func TestNormalize_Totality(t *testing.T) {
	inputs := map[string]map[string]any{
		"nil":   nil,
		"empty": {},
		"wrong types": {
			"climateC":          "hot",
			"workforcePressure": nil,
			"financialRisk":     map[string]any{"a": 1},
			"socialCohesion":    []any{1, 2},
			"geopolitics":       true,
			"governanceInfo":    "  ",
			"techDiffusion":     "42.5",
			"language":          42,
			"provider":          []any{"openai"},
		},
		"non-finite": {
			"climateC":          math.NaN(),
			"workforcePressure": math.Inf(1),
			"financialRisk":     math.Inf(-1),
			"socialCohesion":    "Infinity",
			"geopolitics":       "NaN",
		},
		"out of range": {
			"climateC":          99.0,
			"workforcePressure": -5.0,
			"financialRisk":     1e9,
			"language":          "fr",
			"provider":          "claude",
		},
		"enum case": {
			"language": "DE",
			"provider": "OpenAI",
		},
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			cfg := Normalize(raw)
			assertWellFormed(t, cfg)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := Normalize(map[string]any{})
	for _, axis := range Axes() {
		assert.Equal(t, axis.Min, cfg.Value(axis.ID), axis.ID)
	}
	assert.Equal(t, LanguageEN, cfg.Language)
	assert.Equal(t, ProviderMock, cfg.Provider)
}

func TestNormalize_Coercion(t *testing.T) {
	cfg := Normalize(map[string]any{
		"climateC":          "2.7",
		"workforcePressure": json.Number("61"),
		"financialRisk":     true,
		"socialCohesion":    "abc",
		"geopolitics":       12,
		"language":          "de",
		"provider":          "gemini",
	})

	assert.Equal(t, 2.7, cfg.ClimateC)
	assert.Equal(t, 61.0, cfg.WorkforcePressure)
	assert.Equal(t, 1.0, cfg.FinancialRisk)
	assert.Equal(t, 0.0, cfg.SocialCohesion)
	assert.Equal(t, 12.0, cfg.Geopolitics)
	assert.Equal(t, LanguageDE, cfg.Language)
	assert.Equal(t, ProviderGemini, cfg.Provider)
}

func TestToNumber_ArraysPrefixesAndOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"single element array", []any{50.0}, 50},
		{"single string element", []any{" 12 "}, 12},
		{"nested single element", []any{[]any{7.0}}, 7},
		{"empty array", []any{}, 0},
		{"null element", []any{nil}, 0},
		{"hex", "0x10", 16},
		{"upper hex", "0XfF", 255},
		{"octal", "0o17", 15},
		{"binary", "0b101", 5},
		{"huge literal", json.Number("1e400"), math.Inf(1)},
		{"tiny literal", json.Number("1e-400"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toNumber(tt.in))
		})
	}

	for _, in := range []any{[]any{1.0, 2.0}, []any{true}, "-0x10", "0x", "0x1p4", "0b2", map[string]any{}} {
		assert.True(t, math.IsNaN(toNumber(in)), "%v", in)
	}

	cfg := Normalize(map[string]any{
		"workforcePressure": []any{50.0},
		"financialRisk":     "0x10",
		"climateC":          json.Number("1e400"),
	})
	assert.Equal(t, 50.0, cfg.WorkforcePressure)
	assert.Equal(t, 16.0, cfg.FinancialRisk)
	climate, _ := AxisByID(AxisClimate)
	assert.Equal(t, climate.Min, cfg.ClimateC)
}

func TestNormalize_ClampingBoundaries(t *testing.T) {
	for _, axis := range Axes() {
		t.Run(string(axis.ID), func(t *testing.T) {
			at := func(v float64) float64 {
				return Normalize(map[string]any{string(axis.ID): v}).Value(axis.ID)
			}
			assert.Equal(t, axis.Min, at(axis.Min))
			assert.Equal(t, axis.Max, at(axis.Max))
			assert.Equal(t, axis.Min, at(axis.Min-1))
			assert.Equal(t, axis.Max, at(axis.Max+1))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []map[string]any{
		{},
		DefaultScenario().Fields(),
		{"climateC": 7, "techDiffusion": "33.3", "language": "de", "provider": "openai"},
		{"workforcePressure": math.NaN(), "provider": "nope"},
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once.Fields())
		assert.Equal(t, once, twice)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"climateC": 10.0, "language": "xx"}
	Normalize(raw)
	assert.Equal(t, 10.0, raw["climateC"])
	assert.Equal(t, "xx", raw["language"])
}

func TestNormalize_FromJSONBody(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"climateC":3.1,"socialCohesion":"70","provider":null}`), &raw))

	cfg := Normalize(raw)
	assert.Equal(t, 3.1, cfg.ClimateC)
	assert.Equal(t, 70.0, cfg.SocialCohesion)
	assert.Equal(t, ProviderMock, cfg.Provider)
}

func TestScenarioConfig_WithReturnsCopy(t *testing.T) {
	base := DefaultScenario()
	changed := base.With(AxisTech, 99)

	assert.Equal(t, 60.0, base.TechDiffusion)
	assert.Equal(t, 99.0, changed.TechDiffusion)
	assert.Equal(t, base, base.With("unknown", 1))
}

func TestAxes_ReturnsCopy(t *testing.T) {
	axes := Axes()
	require.Len(t, axes, 7)
	axes[0].Max = 1000

	axis, ok := AxisByID(AxisClimate)
	require.True(t, ok)
	assert.Equal(t, 3.5, axis.Max)

	_, ok = AxisByID("nope")
	assert.False(t, ok)
}

func TestDefaultScenario_IsNormalized(t *testing.T) {
	def := DefaultScenario()
	assert.Equal(t, def, Normalize(def.Fields()))
}
