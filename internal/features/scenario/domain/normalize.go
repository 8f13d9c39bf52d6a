package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Normalize turns an untrusted, loosely typed configuration into a
// ScenarioConfig that satisfies every range and enum constraint. It never
// fails: anything it cannot interpret falls back to a default.
func Normalize(raw map[string]any) ScenarioConfig {
	var cfg ScenarioConfig
	for _, axis := range axisTable {
		v := toNumber(raw[string(axis.ID)])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = axis.Min
		}
		cfg = cfg.With(axis.ID, axis.Clamp(v))
	}
	cfg.Language = ParseLanguage(raw["language"])
	cfg.Provider = ParseProvider(raw["provider"])
	return cfg
}

// ParseLanguage accepts exactly "en" or "de"; anything else is English.
func ParseLanguage(v any) Language {
	if s, ok := v.(string); ok && Language(s) == LanguageDE {
		return LanguageDE
	}
	return LanguageEN
}

// ParseProvider accepts exactly one of the known provider ids; anything else
// is the mock provider.
func ParseProvider(v any) Provider {
	s, ok := v.(string)
	if !ok {
		return ProviderMock
	}
	for _, p := range Providers {
		if Provider(s) == p {
			return p
		}
	}
	return ProviderMock
}

// toNumber coerces a decoded JSON value to a float64 the way JavaScript's
// Number() would. Values with no numeric reading come back as NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case []any:
		return arrayNumber(n)
	}
	return math.NaN()
}

// arrayNumber reads an array through its string form: [] is 0, [x] is x and
// anything longer is NaN.
func arrayNumber(a []any) float64 {
	switch len(a) {
	case 0:
		return 0
	case 1:
	default:
		return math.NaN()
	}
	switch e := a[0].(type) {
	case nil:
		return 0
	case bool, map[string]any:
		return math.NaN()
	default:
		return toNumber(e)
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseUnsigned(s[2:], 16)
		case 'o', 'O':
			return parseUnsigned(s[2:], 8)
		case 'b', 'B':
			return parseUnsigned(s[2:], 2)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func parseUnsigned(digits string, base int) float64 {
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return math.NaN()
	}
	u, err := strconv.ParseUint(digits, base, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return math.MaxFloat64
	case err != nil:
		return math.NaN()
	}
	return float64(u)
}
