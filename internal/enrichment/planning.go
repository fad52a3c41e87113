package enrichment

import (
	"math"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

const (
	hoursPerWeek      = 40
	sprintWeeks       = 2
	maxMilestoneItems = 5
)

// Estimate totals effort per phase. Confidence drops with complexity and
// with tasks that carry no estimate.
func Estimate(w *models.Workflow) *models.Estimates {
	est := &models.Estimates{Confidence: models.LevelLow, ByPhase: []models.PhaseEstimate{}}
	if w == nil || len(w.Phases) == 0 {
		return est
	}

	estimated := 0
	for _, p := range w.Phases {
		hours := p.TotalHours()
		est.ByPhase = append(est.ByPhase, models.PhaseEstimate{Phase: p.Name, Hours: hours, Tasks: len(p.Tasks)})
		est.TotalHours += hours
		est.TotalTasks += len(p.Tasks)
		for _, t := range p.Tasks {
			if t.EstimatedHours > 0 {
				estimated++
			}
		}
	}
	est.TotalWeeks = int(math.Ceil(est.TotalHours / hoursPerWeek))

	coverage := 0.0
	if est.TotalTasks > 0 {
		coverage = float64(estimated) / float64(est.TotalTasks)
	}
	switch {
	case coverage < 0.8 || w.Metadata.Complexity > 0.7:
		est.Confidence = models.LevelLow
	case w.Metadata.Complexity > 0.4:
		est.Confidence = models.LevelMedium
	default:
		est.Confidence = models.LevelHigh
	}
	return est
}

// Work tracks, in reporting order. Planning work gates the other tracks, so
// it never runs alongside them.
var tracks = []labeled{
	{"Planning", helpers.NewKeywordMatcher(
		"analysis", "planning", "research", "definition", "threat modeling", "strategy", "requirements",
		"system design", "technology selection", "roadmap", "assessment",
	)},
	{"Security", helpers.NewKeywordMatcher("security", "secure", "authentication", "data protection", "hardening")},
	{"Frontend", helpers.NewKeywordMatcher("ui", "component", "design system", "responsive", "accessibility", "frontend", "state and data")},
	{"Backend", helpers.NewKeywordMatcher("api", "service", "data modeling", "integration", "integrations", "backend")},
	{"Infrastructure", helpers.NewKeywordMatcher("infrastructure", "ci/cd", "containerization", "deployment", "monitoring", "scaling", "disaster recovery")},
	{"Quality", helpers.NewKeywordMatcher("testing", "test", "validation", "quality", "review", "performance")},
}

const planningTrack = "Planning"

// trackOf classifies a phase by its name first, then its type.
func trackOf(p models.Phase) string {
	for _, probe := range []string{p.Name, p.Type} {
		for _, t := range tracks {
			if t.matcher.MatchString(probe) {
				return t.label
			}
		}
	}
	return "Delivery"
}

// ParallelStreams groups phases into work tracks that can progress side
// by side once planning is done.
func ParallelStreams(w *models.Workflow) []models.ParallelStream {
	if w == nil || len(w.Phases) == 0 {
		return []models.ParallelStream{}
	}

	index := map[string]int{}
	var streams []models.ParallelStream
	for _, p := range w.Phases {
		track := trackOf(p)
		i, ok := index[track]
		if !ok {
			i = len(streams)
			index[track] = i
			streams = append(streams, models.ParallelStream{Name: track})
		}
		streams[i].Phases = append(streams[i].Phases, p.Name)
		streams[i].Tasks += len(p.Tasks)
		streams[i].Hours += p.TotalHours()
	}

	for i := range streams {
		if streams[i].Name == planningTrack {
			continue
		}
		for _, other := range streams {
			if other.Name != streams[i].Name && other.Name != planningTrack {
				streams[i].CanRunWith = append(streams[i].CanRunWith, other.Name)
			}
		}
	}
	return streams
}

// Milestones marks the end of every phase on a cumulative week timeline.
func Milestones(w *models.Workflow) []models.Milestone {
	if w == nil || len(w.Phases) == 0 {
		return []models.Milestone{}
	}

	milestones := make([]models.Milestone, 0, len(w.Phases))
	week := 0
	for _, p := range w.Phases {
		weeks := sprintWeeks
		if p.Type != "sprint" {
			weeks = max(1, int(math.Ceil(p.TotalHours()/hoursPerWeek)))
		}
		week += weeks
		milestones = append(milestones, models.Milestone{
			Name:         p.Name + " complete",
			Phase:        p.Name,
			Week:         week,
			Deliverables: milestoneDeliverables(p),
		})
	}
	return milestones
}

// milestoneDeliverables lists the phase's distinct deliverables, or its task
// titles when none are named.
func milestoneDeliverables(p models.Phase) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range p.Tasks {
		for _, d := range t.Deliverables {
			if !seen[d] && len(out) < maxMilestoneItems {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, t := range p.Tasks {
		if len(out) == maxMilestoneItems {
			break
		}
		out = append(out, t.Title)
	}
	return out
}
