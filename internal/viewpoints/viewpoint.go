// Package viewpoints holds the six expert viewpoints, each owning an ordered
// catalog of phase builders plus its advisory guidance.
package viewpoints

import (
	"fmt"
	"sort"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// Viewpoint parameterizes which phases and tasks a systematic plan contains.
type Viewpoint interface {
	Name() string
	Description() string
	BuildPhases(req *models.Requirements) []models.Phase
	BestPractices() []string
	QualityGates() []string
}

// PhaseBuilder returns the phase for req, or nil when it does not apply.
type PhaseBuilder func(req *models.Requirements) *models.Phase

// profile is the data every viewpoint variant carries.
type profile struct {
	name        string
	description string
	builders    []PhaseBuilder
	practices   []string
	gates       []string
}

func (p profile) Name() string        { return p.name }
func (p profile) Description() string { return p.description }

func (p profile) BestPractices() []string {
	return append([]string(nil), p.practices...)
}

func (p profile) QualityGates() []string {
	return append([]string(nil), p.gates...)
}

// BuildPhases runs the builders in order and drops phases that do not
// apply or came out without tasks.
func (p profile) BuildPhases(req *models.Requirements) []models.Phase {
	phases := []models.Phase{}
	for _, build := range p.builders {
		phase := build(req)
		if phase == nil || len(phase.Tasks) == 0 {
			continue
		}
		phases = append(phases, *phase)
	}
	return phases
}

func newPhase(name, kind, description string, tasks ...models.Task) *models.Phase {
	if len(tasks) == 0 {
		return nil
	}
	return &models.Phase{Name: name, Type: kind, Description: description, Tasks: tasks}
}

// FeatureHours sizes a per-feature task by its complexity.
func FeatureHours(level models.Level) float64 {
	switch level {
	case models.LevelHigh:
		return 24
	case models.LevelLow:
		return 8
	default:
		return 16
	}
}

// featurePriority lifts the feature's priority onto its task, defaulting to medium.
func featurePriority(f models.Feature) models.Priority {
	if f.Priority == "" {
		return models.PriorityMedium
	}
	return f.Priority
}

// criteria returns up to n acceptance-criterion descriptions.
func criteria(req *models.Requirements, n int) []string {
	var out []string
	for _, c := range req.AcceptanceCriteria {
		if len(out) == n {
			break
		}
		out = append(out, c.Description)
	}
	return out
}

// securityMechanisms lists the named security mechanisms in sorted order.
func securityMechanisms(req *models.Requirements) []string {
	var out []string
	for k := range req.TechnicalRequirements.Security {
		if k == models.KeySecurityLevel || k == models.KeyCompliance {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// compliance lists the compliance regimes the requirements name.
func compliance(req *models.Requirements) []string {
	v := req.TechnicalRequirements.Security[models.KeyCompliance]
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

// hasScaleRequirements reports any capacity or performance figure.
func hasScaleRequirements(req *models.Requirements) bool {
	return len(req.TechnicalRequirements.Scalability) > 0 || req.CriticalPerformance() || req.EnterpriseScale()
}

// needsPerformanceWork reports performance wording or thresholds.
func needsPerformanceWork(req *models.Requirements) bool {
	return req.HasPattern(models.PatternPerformance) || len(req.TechnicalRequirements.Performance) > 0 || hasScaleRequirements(req)
}

// needsSecurityWork reports security signals of any kind.
func needsSecurityWork(req *models.Requirements) bool {
	return req.HasDomain(models.DomainSecurity) || req.HasPattern(models.PatternSecurity) ||
		req.HasPattern(models.PatternAuthentication) || len(req.TechnicalRequirements.Security) > 0
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none identified"
	}
	return strings.Join(items, ", ")
}

func titled(format, subject string) string {
	return fmt.Sprintf(format, helpers.TitleCase(subject))
}
