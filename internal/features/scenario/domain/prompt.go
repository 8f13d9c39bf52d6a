package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	systemPromptEN = "You are a grounded future analyst. Write a plausible, internally consistent 2050 narrative. " +
		"Use probabilistic language, no absolutes. Tone: clear, grounded, slightly optimistic but honest. " +
		"Length 180–280 words. Explicitly reflect every axis: climate, demography/workforce, financial stability, " +
		"social cohesion, geopolitics, governance/info order, technology diffusion. " +
		"End with exactly 5 bullet points under the heading 'What this means for you'."

	systemPromptDE = "Du bist eine fundierte Zukunftsanalystin. Schreibe eine plausible, intern konsistente 2050-Erzählung. " +
		"Verwende probabilistische Sprache, keine Gewissheiten. Ton: klar, bodenständig, leicht optimistisch aber ehrlich. " +
		"Länge 180–280 Wörter. Beziehe jede Achse explizit ein: Klima, Demografie/Arbeitskräfte, Finanzstabilität, " +
		"sozialer Zusammenhalt, Geopolitik, Regierungsfähigkeit/Informationsordnung, Technologie-Diffusion. " +
		"Ende mit genau 5 Bullet Points unter der Überschrift 'Was das für dich bedeutet'."

	userPromptEN = "Here are the calibrations:\n%s\nWrite the narrative based on these values."
	userPromptDE = "Hier sind die Kalibrierungen:\n%s\nSchreibe die Erzählung basierend auf diesen Werten."
)

// BuildPrompt renders the system and user instructions for cfg. The output
// depends only on cfg and the axis table.
func BuildPrompt(cfg ScenarioConfig) Prompt {
	lang := cfg.Language

	lines := make([]string, 0, len(axisTable))
	for _, axis := range axisTable {
		lines = append(lines, axisLine(axis, cfg.Value(axis.ID), lang))
	}
	calibrations := strings.Join(lines, "\n")

	if lang == LanguageDE {
		return Prompt{
			System: systemPromptDE,
			User:   fmt.Sprintf(userPromptDE, calibrations),
		}
	}
	return Prompt{
		System: systemPromptEN,
		User:   fmt.Sprintf(userPromptEN, calibrations),
	}
}

func axisLine(axis AxisDefinition, value float64, lang Language) string {
	return fmt.Sprintf("%s: %s = %s (%s ↔ %s)",
		axis.Title.In(lang),
		axis.Label.In(lang),
		strconv.FormatFloat(value, 'f', axis.Decimals(), 64),
		axis.LeftLabel.In(lang),
		axis.RightLabel.In(lang),
	)
}
