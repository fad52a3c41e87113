// Package synthesis turns requirements and a viewpoint into ordered phases
// using one of three strategies.
package synthesis

import (
	"fmt"
	"math"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/viewpoints"
)

// Plan is the synthesizer's output. Epics are set by the iterative strategy only.
type Plan struct {
	Phases []models.Phase
	Epics  []models.Epic
}

var descriptions = map[models.Strategy]string{
	models.StrategySystematic:   "Phase-based plan built from the viewpoint's phase catalog",
	models.StrategyIterative:    "Features broken into epics and stories, packed into 20-point sprints",
	models.StrategyMinimumScope: "High-priority features only: definition, build and validation",
}

// Describe returns a one-line description of a strategy.
func Describe(s models.Strategy) string {
	return descriptions[s]
}

// Synthesize builds the plan for the given strategy. The empty strategy
// means systematic.
func Synthesize(req *models.Requirements, vp viewpoints.Viewpoint, strategy models.Strategy) (*Plan, error) {
	s, ok := models.ParseStrategy(string(strategy))
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", models.ErrUnknownStrategy, strategy, strings.Join(models.StrategyNames(), ", "))
	}
	if req == nil {
		req = &models.Requirements{}
	}
	if vp == nil {
		vp = viewpoints.NewArchitect()
	}

	var plan *Plan
	switch s {
	case models.StrategyIterative:
		plan = iterative(req)
	case models.StrategyMinimumScope:
		plan = minimumScope(req)
	default:
		plan = &Plan{Phases: vp.BuildPhases(req)}
	}

	plan.Phases = dropEmpty(plan.Phases)
	for i := range plan.Phases {
		if plan.Phases[i].Duration == "" {
			plan.Phases[i].Duration = phaseDuration(plan.Phases[i].TotalHours())
		}
	}
	return plan, nil
}

func dropEmpty(phases []models.Phase) []models.Phase {
	out := make([]models.Phase, 0, len(phases))
	for _, p := range phases {
		if len(p.Tasks) > 0 {
			out = append(out, p)
		}
	}
	return out
}

const (
	hoursPerDay = 8
	daysPerWeek = 5
)

// phaseDuration renders task hours as working days, or weeks from five days on.
func phaseDuration(hours float64) string {
	days := int(math.Ceil(hours / hoursPerDay))
	if days < 1 {
		days = 1
	}
	if days < daysPerWeek {
		return helpers.Pluralize(days, "day")
	}
	return helpers.Pluralize(int(math.Ceil(float64(days)/daysPerWeek)), "week")
}
