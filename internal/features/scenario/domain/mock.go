package domain

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	mockHeading = Localized{EN: "What this means for you", DE: "Was das für dich bedeutet"}

	mockBulletsEN = []string{
		"Invest in resilient skills and continuous learning.",
		"Plan energy and mobility choices with longer horizons.",
		"Build buffers for volatile financial periods.",
		"Engage locally to strengthen trust and cohesion.",
		"Support policies that protect digital information spaces.",
	}
	mockBulletsDE = []string{
		"Investiere Zeit in resiliente Fähigkeiten und lebenslanges Lernen.",
		"Plane Energie- und Mobilitätsentscheidungen langfristiger.",
		"Baue finanzielle Puffer für volatile Phasen auf.",
		"Engagiere dich lokal, um Vertrauen und Zusammenhalt zu stärken.",
		"Unterstütze Politik für sichere digitale Informationsräume.",
	}
)

const (
	mockBodyEN = "2050 feels like a careful balancing act. Warming sits near %[1]s°C, which raises tangible risks yet could remain manageable with continued adaptation. " +
		"Workforce pressure at %[2]s suggests automation, migration, and longer careers are likely needed to keep services staffed. " +
		"Financial volatility around %[3]s means credit cycles stay cautious and shocks remain possible. " +
		"Social cohesion at %[4]s signals institutions are mixed but still capable of inclusion. " +
		"Geopolitical fragmentation (%[5]s) makes trade rules less predictable, while governance and information integrity (%[6]s) decide whether coordination holds. " +
		"Technology diffusion at %[7]s will shape whether productivity gains spread broadly."

	mockBodyDE = "Das Jahr 2050 fühlt sich nach einem vorsichtigen Balanceakt an. Die Erwärmung liegt bei etwa %[1]s°C, was spürbare Risiken bringt, aber durch fortgesetzte Anpassung in Schach gehalten werden könnte. " +
		"Der Arbeitsmarkt steht unter einem Druckwert von %[2]s, sodass Automatisierung, Migration und längere Erwerbsbiografien vermutlich zusammenwirken müssen, um Lücken zu schließen. " +
		"Finanzmärkte wirken mit einem Risiko von %[3]s volatil genug, dass Vorsicht im Kreditzyklus angesagt bleibt. " +
		"Der soziale Zusammenhalt liegt bei %[4]s, was auf gemischte, aber noch tragfähige Institutionen hindeutet. " +
		"Geopolitische Fragmentierung (%[5]s) lässt Handelsregeln weniger berechenbar erscheinen, während Governance und Informationsintegrität (%[6]s) den Ton angeben, ob Koordination gelingt. " +
		"Technologie-Diffusion (%[7]s) bestimmt, ob Produktivitätsgewinne breit ankommen."
)

// MockNarrative renders the offline placeholder narrative for cfg. It is used
// when no hosted provider is configured and whenever a hosted call fails, so it
// must stay free of I/O.
func MockNarrative(cfg ScenarioConfig) string {
	body, bullets := mockBodyEN, mockBulletsEN
	if cfg.Language == LanguageDE {
		body, bullets = mockBodyDE, mockBulletsDE
	}

	var b strings.Builder
	fmt.Fprintf(&b, body,
		strconv.FormatFloat(cfg.ClimateC, 'f', 1, 64),
		plain(cfg.WorkforcePressure),
		plain(cfg.FinancialRisk),
		plain(cfg.SocialCohesion),
		plain(cfg.Geopolitics),
		plain(cfg.GovernanceInfo),
		plain(cfg.TechDiffusion),
	)
	b.WriteString("\n\n")
	b.WriteString(mockHeading.In(cfg.Language))
	for _, bullet := range bullets {
		b.WriteString("\n- ")
		b.WriteString(bullet)
	}
	return b.String()
}

// plain formats v as the shortest decimal that round-trips, e.g. 45 or 45.5.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
