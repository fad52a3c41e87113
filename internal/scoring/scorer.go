// Package scoring derives complexity, risk and duration signals from a
// Requirements record.
package scoring

import (
	"math"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// Signals is the scorer's output.
type Signals struct {
	Complexity    float64      `json:"complexity"`
	RiskLevel     models.Level `json:"risk_level"`
	DurationWeeks int          `json:"duration_weeks"`
}

type countWeight struct {
	count  func(*models.Requirements) int
	cap    int
	weight float64
}

var countWeights = []countWeight{
	{func(r *models.Requirements) int { return len(r.Components) }, 10, 0.05},
	{func(r *models.Requirements) int { return len(r.Integrations) }, 5, 0.10},
	{func(r *models.Requirements) int { return len(r.UserRoles) }, 5, 0.05},
	{func(r *models.Requirements) int { return len(r.Features) }, 20, 0.03},
	{func(r *models.Requirements) int { return len(r.Pages) }, 15, 0.02},
}

const (
	realtimeBonus    = 0.20
	securityBonus    = 0.15
	performanceBonus = 0.10
	scaleBonus       = 0.15
)

// Complexity returns the weighted, capped signal sum clamped to [0,1] and
// rounded to two decimals.
func Complexity(req *models.Requirements) float64 {
	if req == nil {
		return 0
	}

	var score float64
	for _, cw := range countWeights {
		score += float64(min(cw.count(req), cw.cap)) * cw.weight
	}
	if req.HasRealtime() {
		score += realtimeBonus
	}
	if req.HighSecurity() {
		score += securityBonus
	}
	if req.CriticalPerformance() {
		score += performanceBonus
	}
	if req.EnterpriseScale() {
		score += scaleBonus
	}

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}

// RiskLevel scores boolean risk indicators independently of complexity:
// four points or more is high, two or more medium.
func RiskLevel(req *models.Requirements) models.Level {
	if req == nil {
		return models.LevelLow
	}

	points := 0
	if req.Complexity > 0.7 {
		points += 2
	}
	if len(req.Integrations) > 3 {
		points += 2
	}
	if req.HighSecurity() {
		points++
	}
	if len(req.Features) > 10 {
		points++
	}

	switch {
	case points >= 4:
		return models.LevelHigh
	case points >= 2:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}

// DurationWeeks estimates calendar weeks as
// ceil((2 + 0.5*features + integrations) * (1 + complexity)).
func DurationWeeks(req *models.Requirements) int {
	if req == nil {
		return 2
	}
	base := 2 + 0.5*float64(len(req.Features)) + float64(len(req.Integrations))
	// The epsilon keeps float noise such as 3.0000000004 from adding a week.
	return int(math.Ceil(base*(1+req.Complexity) - 1e-9))
}

// Score computes every signal for the record. Complexity is taken from the
// record, where the extractor already stored it.
func Score(req *models.Requirements) Signals {
	s := Signals{RiskLevel: models.LevelLow, DurationWeeks: DurationWeeks(req)}
	if req != nil {
		s.Complexity = req.Complexity
		s.RiskLevel = RiskLevel(req)
	}
	return s
}

// FormatWeeks renders a week count for display.
func FormatWeeks(weeks int) string {
	return helpers.Pluralize(weeks, "week")
}
