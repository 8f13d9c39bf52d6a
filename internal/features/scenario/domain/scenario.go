package domain

// Language selects which of the two localized string sets is used.
type Language string

const (
	LanguageEN Language = "en"
	LanguageDE Language = "de"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageEN, LanguageDE}

// Provider selects the narrative generation backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderMock   Provider = "mock"
)

// Providers lists the known providers in display order.
var Providers = []Provider{ProviderOpenAI, ProviderGemini, ProviderMock}

// Localized holds the English and German variants of a string.
type Localized struct {
	EN string `json:"en"`
	DE string `json:"de"`
}

// In returns the variant for lang, falling back to English.
func (l Localized) In(lang Language) string {
	if lang == LanguageDE {
		return l.DE
	}
	return l.EN
}

// ScenarioConfig is the calibrated 2050 scenario threaded through the pipeline.
// It is passed by value; helpers that change it return a modified copy.
type ScenarioConfig struct {
	ClimateC          float64  `json:"climateC"`
	WorkforcePressure float64  `json:"workforcePressure"`
	FinancialRisk     float64  `json:"financialRisk"`
	SocialCohesion    float64  `json:"socialCohesion"`
	Geopolitics       float64  `json:"geopolitics"`
	GovernanceInfo    float64  `json:"governanceInfo"`
	TechDiffusion     float64  `json:"techDiffusion"`
	Language          Language `json:"language"`
	Provider          Provider `json:"provider"`
}

// DefaultScenario returns the calibration a fresh UI session starts from.
func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{
		ClimateC:          2.2,
		WorkforcePressure: 45,
		FinancialRisk:     40,
		SocialCohesion:    55,
		Geopolitics:       45,
		GovernanceInfo:    50,
		TechDiffusion:     60,
		Language:          LanguageEN,
		Provider:          ProviderMock,
	}
}

// Value returns the value of the given axis. Unknown axes yield 0.
func (c ScenarioConfig) Value(id AxisID) float64 {
	if p := c.field(id); p != nil {
		return *p
	}
	return 0
}

// With returns a copy of c with the given axis set to v.
func (c ScenarioConfig) With(id AxisID, v float64) ScenarioConfig {
	if p := c.field(id); p != nil {
		*p = v
	}
	return c
}

// Fields returns c in the raw, loosely typed shape accepted by Normalize.
func (c ScenarioConfig) Fields() map[string]any {
	raw := make(map[string]any, len(axisTable)+2)
	for _, axis := range axisTable {
		raw[string(axis.ID)] = c.Value(axis.ID)
	}
	raw["language"] = string(c.Language)
	raw["provider"] = string(c.Provider)
	return raw
}

// field must only be called on a local copy.
func (c *ScenarioConfig) field(id AxisID) *float64 {
	switch id {
	case AxisClimate:
		return &c.ClimateC
	case AxisWorkforce:
		return &c.WorkforcePressure
	case AxisFinancial:
		return &c.FinancialRisk
	case AxisCohesion:
		return &c.SocialCohesion
	case AxisGeopolitics:
		return &c.Geopolitics
	case AxisGovernance:
		return &c.GovernanceInfo
	case AxisTech:
		return &c.TechDiffusion
	}
	return nil
}

// Prompt is the provider-neutral instruction pair handed to a narrative backend.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// NarrativeResult is what the generate endpoint returns. Warning is only set
// when the mock narrative was substituted for a failed backend call.
type NarrativeResult struct {
	Text    string `json:"text"`
	Warning string `json:"warning,omitempty"`
}
