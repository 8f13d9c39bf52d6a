package domain

// AxisID identifies one of the seven scenario axes. It doubles as the JSON key
// of the axis in a ScenarioConfig.
type AxisID string

const (
	AxisClimate     AxisID = "climateC"
	AxisWorkforce   AxisID = "workforcePressure"
	AxisFinancial   AxisID = "financialRisk"
	AxisCohesion    AxisID = "socialCohesion"
	AxisGeopolitics AxisID = "geopolitics"
	AxisGovernance  AxisID = "governanceInfo"
	AxisTech        AxisID = "techDiffusion"
)

// AxisDefinition describes the range and the bilingual copy of one axis. The
// same table drives validation, prompt rendering and the UI catalog.
type AxisDefinition struct {
	ID          AxisID    `json:"id"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Step        float64   `json:"step"`
	Label       Localized `json:"label"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	LeftLabel   Localized `json:"leftLabel"`
	RightLabel  Localized `json:"rightLabel"`
	Summary     Localized `json:"summary"`
}

// Decimals is the number of decimal places used when rendering a value.
func (a AxisDefinition) Decimals() int {
	if a.Step < 1 {
		return 1
	}
	return 0
}

// Clamp limits v to [Min, Max].
func (a AxisDefinition) Clamp(v float64) float64 {
	if v < a.Min {
		return a.Min
	}
	if v > a.Max {
		return a.Max
	}
	return v
}

// Axes returns the axis table in display order. The returned slice is a copy.
func Axes() []AxisDefinition {
	out := make([]AxisDefinition, len(axisTable))
	copy(out, axisTable[:])
	return out
}

// AxisByID looks up a single axis definition.
func AxisByID(id AxisID) (AxisDefinition, bool) {
	for _, axis := range axisTable {
		if axis.ID == id {
			return axis, true
		}
	}
	return AxisDefinition{}, false
}

var axisTable = [...]AxisDefinition{
	{
		ID:   AxisClimate,
		Min:  1.5,
		Max:  3.5,
		Step: 0.1,
		Label: Localized{
			EN: "Global warming by 2050 (°C vs preindustrial)",
			DE: "Globale Erwärmung bis 2050 (°C vs. vorindustriell)",
		},
		Title: Localized{
			EN: "Planetary Boundaries & Material Transition",
			DE: "Planetare Grenzen & Materialwende",
		},
		Description: Localized{
			EN: "The pace of climate mitigation and material transition shapes risks and resource stress.",
			DE: "Tempo von Klimaschutz und Materialwende prägt Risiken und Ressourcenstress.",
		},
		LeftLabel: Localized{
			EN: "Strong mitigation & adaptation; climate risks contained",
			DE: "Starke Minderung & Anpassung; Klimarisiken begrenzt",
		},
		RightLabel: Localized{
			EN: "Weak mitigation; high physical risks & resource stress",
			DE: "Schwache Minderung; hohe physische Risiken & Ressourcenstress",
		},
		Summary: Localized{EN: "Warming °C", DE: "Erwärmung °C"},
	},
	{
		ID:   AxisWorkforce,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Net workforce pressure index",
			DE: "Netto-Arbeitskräfte-Druckindex",
		},
		Title: Localized{
			EN: "Population, Migration & Lifespan",
			DE: "Bevölkerung, Migration & Lebensspanne",
		},
		Description: Localized{
			EN: "Migration, participation, and healthspan influence how tight labor markets feel.",
			DE: "Migration, Teilhabe und gesunde Lebenszeit bestimmen die Spannung am Arbeitsmarkt.",
		},
		LeftLabel: Localized{
			EN: "Workforce stabilized (migration + participation + healthspan gains)",
			DE: "Arbeitskräfte stabilisiert (Migration + Teilhabe + Healthspan-Gewinne)",
		},
		RightLabel: Localized{
			EN: "Workforce shrinks; strong aging pressure",
			DE: "Arbeitskräfte schrumpfen; starker Alterungsdruck",
		},
		Summary: Localized{EN: "Workforce pressure", DE: "Arbeitskräfte-Druck"},
	},
	{
		ID:   AxisFinancial,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Financial volatility / crisis risk",
			DE: "Finanzvolatilität / Krisenrisiko",
		},
		Title: Localized{
			EN: "Financial Stability & Capital Markets",
			DE: "Finanzstabilität & Kapitalmärkte",
		},
		Description: Localized{
			EN: "Credit cycles and market plumbing decide how shock-prone the system is.",
			DE: "Kreditzyklen und Marktinfrastruktur bestimmen die Schockanfälligkeit.",
		},
		LeftLabel: Localized{
			EN: "Stable credit cycle; orderly markets",
			DE: "Stabiler Kreditzyklus; geordnete Märkte",
		},
		RightLabel: Localized{
			EN: "High bubble/crash risk; repeated liquidity shocks",
			DE: "Hohes Blasen-/Crashrisiko; wiederholte Liquiditätsschocks",
		},
		Summary: Localized{EN: "Financial risk", DE: "Finanzrisiko"},
	},
	{
		ID:   AxisCohesion,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Social cohesion",
			DE: "Sozialer Zusammenhalt",
		},
		Title: Localized{
			EN: "Work & Distribution Order / Social Cohesion",
			DE: "Arbeits- & Verteilungsordnung / Sozialer Frieden",
		},
		Description: Localized{
			EN: "Institutions can keep societies inclusive or slide toward polarization.",
			DE: "Institutionen können inklusiv bleiben oder in Polarisierung abrutschen.",
		},
		LeftLabel: Localized{
			EN: "High cohesion; inclusive institutions; mobility improves",
			DE: "Hoher Zusammenhalt; inklusive Institutionen; Aufstiegschancen steigen",
		},
		RightLabel: Localized{
			EN: "Polarization; inequality rises; unrest more likely",
			DE: "Polarisierung; Ungleichheit steigt; Unruhen wahrscheinlicher",
		},
		Summary: Localized{EN: "Social cohesion", DE: "Zusammenhalt"},
	},
	{
		ID:   AxisGeopolitics,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Geopolitical fragmentation",
			DE: "Geopolitische Fragmentierung",
		},
		Title: Localized{
			EN: "Geo-economics & Security",
			DE: "Geoökonomik & Sicherheit",
		},
		Description: Localized{
			EN: "Trade rules and security dynamics set the tone for supply chains.",
			DE: "Handelsregeln und Sicherheitslage prägen Lieferketten.",
		},
		LeftLabel: Localized{
			EN: "Cooperative blocs; predictable trade rules",
			DE: "Kooperative Blöcke; verlässliche Handelsregeln",
		},
		RightLabel: Localized{
			EN: "Hard blocs; sanctions/war risk; costly supply chains",
			DE: "Harte Blöcke; Sanktions-/Kriegsrisiko; teure Lieferketten",
		},
		Summary: Localized{EN: "Geopolitics", DE: "Geopolitik"},
	},
	{
		ID:   AxisGovernance,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Governance & information integrity",
			DE: "Governance & Informationsintegrität",
		},
		Title: Localized{
			EN: "State Capacity & Information Order",
			DE: "Staatsfähigkeit & Informationsordnung",
		},
		Description: Localized{
			EN: "Trust, cyber resilience, and policy capacity determine coordination.",
			DE: "Vertrauen, Cyber-Resilienz und politische Handlungsfähigkeit bestimmen Koordination.",
		},
		LeftLabel: Localized{
			EN: "High trust; effective state; resilient info ecosystem",
			DE: "Hohes Vertrauen; effektiver Staat; resilientes Info-Ökosystem",
		},
		RightLabel: Localized{
			EN: "Low trust; disinfo/cyber shocks; policy paralysis",
			DE: "Niedriges Vertrauen; Desinfo-/Cyberschocks; politische Lähmung",
		},
		Summary: Localized{EN: "Governance/info", DE: "Governance/Info"},
	},
	{
		ID:   AxisTech,
		Min:  0,
		Max:  100,
		Step: 1,
		Label: Localized{
			EN: "Tech diffusion breadth",
			DE: "Breite der Technologie-Diffusion",
		},
		Title: Localized{
			EN: "Technology Diffusion & Productivity",
			DE: "Technologie-Diffusion & Produktivität",
		},
		Description: Localized{
			EN: "How broadly technology spreads shapes productivity and inclusion.",
			DE: "Wie breit Technologie wirkt, prägt Produktivität und Teilhabe.",
		},
		LeftLabel: Localized{
			EN: "Broad diffusion; productivity gains widely shared",
			DE: "Breite Diffusion; Produktivitätsgewinne breit geteilt",
		},
		RightLabel: Localized{
			EN: "Narrow diffusion; winner-takes-most; weak spillovers",
			DE: "Schmale Diffusion; Winner-takes-most; schwache Spillovers",
		},
		Summary: Localized{EN: "Tech diffusion", DE: "Tech-Diffusion"},
	},
}
