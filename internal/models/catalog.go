package models

var (
	strategies     = []Strategy{StrategySystematic, StrategyIterative, StrategyMinimumScope}
	viewpointNames = []string{"architect", "frontend", "backend", "security", "devops", "qa"}
	outputFormats  = []string{"roadmap", "tasks", "detailed", "json", "yaml"}
)

// Strategies returns the fixed strategy catalog, in display order.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// ViewpointNames returns the fixed viewpoint catalog, in display order.
func ViewpointNames() []string {
	return append([]string(nil), viewpointNames...)
}

// OutputFormats lists the formats the formatter can render.
func OutputFormats() []string {
	return append([]string(nil), outputFormats...)
}

// StrategyNames returns the strategy catalog as strings.
func StrategyNames() []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = string(s)
	}
	return names
}

// ParseStrategy resolves a strategy name. The empty string means systematic.
func ParseStrategy(name string) (Strategy, bool) {
	if name == "" {
		return StrategySystematic, true
	}
	for _, s := range strategies {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}
