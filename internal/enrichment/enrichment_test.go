package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-planner/internal/models"
)

func goodWorkflow() *models.Workflow {
	done := []string{"Criteria met"}
	return &models.Workflow{
		Title:    "Good",
		Metadata: models.Metadata{Complexity: 0.2, RiskLevel: models.LevelLow, DurationWeeks: 4},
		Phases: []models.Phase{
			{Name: "Design", Type: "design", Tasks: []models.Task{
				{Type: models.TaskDesign, Title: "Design Architecture", Description: "Components and boundaries",
					Deliverables: []string{"Architecture diagram"}, EstimatedHours: 8, Priority: models.PriorityHigh, AcceptanceCriteria: done},
				{Type: models.TaskDocumentation, Title: "Write API Documentation", Description: "Reference for clients",
					Deliverables: []string{"API reference"}, EstimatedHours: 4, AcceptanceCriteria: done, Dependencies: []string{"Design Architecture"}},
			}},
			{Name: "Build", Type: "implementation", Tasks: []models.Task{
				{Type: models.TaskImplementation, Title: "Implement Secure Login", Description: "Authentication with input validation",
					Deliverables: []string{"Login flow"}, EstimatedHours: 8, AcceptanceCriteria: done, Dependencies: []string{"Design Architecture"}},
				{Type: models.TaskImplementation, Title: "Add Caching Layer", Description: "Performance for hot reads",
					Deliverables: []string{"Cache"}, EstimatedHours: 4, AcceptanceCriteria: done},
			}},
			{Name: "Verify", Type: "testing", Tasks: []models.Task{
				{Type: models.TaskTesting, Title: "Automate Regression Suite", Description: "Unit tests in CI",
					Deliverables: []string{"Test suite"}, EstimatedHours: 8, AcceptanceCriteria: done},
				{Type: models.TaskTesting, Title: "Run Load Tests", Description: "Load test against the response time target",
					Deliverables: []string{"Load report"}, EstimatedHours: 4, AcceptanceCriteria: done},
				{Type: models.TaskReview, Title: "Release Review", Description: "Sign-off with a rollback plan",
					Deliverables: []string{"Release notes"}, EstimatedHours: 2, AcceptanceCriteria: done},
			}},
		},
	}
}

func gateByName(result *models.QualityGateResult, name string) *models.GateResult {
	for i := range result.Gates {
		if result.Gates[i].Name == name {
			return &result.Gates[i]
		}
	}
	return nil
}

func TestPasses_ZeroPhaseWorkflow(t *testing.T) {
	w := &models.Workflow{Title: "Empty", Metadata: models.Metadata{Complexity: 0.9, DurationWeeks: 30}}
	view := NewTextView(w)

	deps := AnalyzeDependencies(w, view)
	assert.Empty(t, deps.PhaseDependencies)
	assert.Empty(t, deps.TaskDependencies)
	assert.Empty(t, deps.External)
	assert.Empty(t, deps.CriticalPath)
	assert.Empty(t, deps.Bottlenecks)

	risks := AssessRisks(w, view)
	assert.Empty(t, risks.Risks)
	assert.Zero(t, risks.Score)
	assert.Equal(t, models.LevelLow, risks.Level)
	assert.Empty(t, risks.Mitigation.Immediate)

	est := Estimate(w)
	assert.Zero(t, est.TotalHours)
	assert.Zero(t, est.TotalTasks)
	assert.Empty(t, est.ByPhase)

	assert.Empty(t, ParallelStreams(w))
	assert.Empty(t, Milestones(w))
}

func TestPasses_NilWorkflow(t *testing.T) {
	assert.NotPanics(t, func() {
		AnalyzeDependencies(nil, nil)
		AssessRisks(nil, nil)
		ValidateQualityGates(nil, nil)
		Estimate(nil)
		ParallelStreams(nil)
		Milestones(nil)
	})
}

func TestValidateQualityGates_ZeroPhases(t *testing.T) {
	result := ValidateQualityGates(&models.Workflow{Title: "Empty"}, nil)

	assert.False(t, result.Overall.Passed)
	assert.Equal(t, PassThreshold, result.Overall.Threshold)

	req := gateByName(result, GateRequirements)
	require.NotNil(t, req)
	assert.InDelta(t, 0.3, req.Score, 1e-9)
	assert.Contains(t, req.Issues, "Workflow has no phases")
	assert.False(t, req.Passed)
	assert.Contains(t, result.Blockers, GateRequirements)
}

func TestValidateQualityGates_WeightsSumToOne(t *testing.T) {
	result := ValidateQualityGates(goodWorkflow(), nil)
	require.Len(t, result.Gates, 7)

	var sum float64
	for _, g := range result.Gates {
		sum += g.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestValidateQualityGates_CompleteWorkflowPasses(t *testing.T) {
	result := ValidateQualityGates(goodWorkflow(), nil)

	for _, g := range result.Gates {
		assert.Equal(t, 1.0, g.Score, "%s: %v", g.Name, g.Issues)
	}
	assert.Equal(t, 1.0, result.Overall.Score)
	assert.True(t, result.Overall.Passed)
	assert.Empty(t, result.Blockers)
	assert.Empty(t, result.Recommendations)
}

func TestValidateQualityGates_MissingTestsBlocks(t *testing.T) {
	w := goodWorkflow()
	w.Phases = w.Phases[:2]

	result := ValidateQualityGates(w, nil)
	testGate := gateByName(result, GateTesting)
	require.NotNil(t, testGate)
	assert.InDelta(t, 0.2, testGate.Score, 1e-9)
	assert.Contains(t, result.Blockers, GateTesting)
	assert.False(t, result.Overall.Passed)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeDependencies(t *testing.T) {
	w := &models.Workflow{Phases: []models.Phase{
		{Name: "Plan", Tasks: []models.Task{
			{Title: "A", Priority: models.PriorityHigh},
			{Title: "B", Dependencies: []string{"A"}},
		}},
		{Name: "Build", Tasks: []models.Task{
			{Title: "C", Dependencies: []string{"B"}},
			{Title: "D", Dependencies: []string{"Ghost"}},
			{Title: "E"}, {Title: "F"}, {Title: "G"}, {Title: "H"},
		}},
		{Name: "Ship", Tasks: []models.Task{
			{Title: "I", Priority: models.PriorityLow, Tools: []string{"Stripe", "Docker"}},
		}},
	}}

	deps := AnalyzeDependencies(w, NewTextView(w))

	assert.Equal(t, []models.PhaseDependency{
		{Phase: "Build", DependsOn: "Plan"},
		{Phase: "Ship", DependsOn: "Build"},
	}, deps.PhaseDependencies)
	assert.Len(t, deps.TaskDependencies, 3)
	assert.Equal(t, []string{"Ghost"}, deps.UnresolvedReferences)
	assert.Equal(t, []string{"Plan"}, deps.CriticalPath)
	assert.Equal(t, []models.Bottleneck{{Phase: "Build", Reason: "6 tasks in one phase"}}, deps.Bottlenecks)
	assert.Equal(t, []string{"Ship"}, deps.ParallelOpportunities)
	assert.Equal(t, []string{"Stripe"}, deps.External)
	assert.Contains(t, deps.Technical, "Container runtime")
}

func TestAssessRisks(t *testing.T) {
	w := &models.Workflow{
		Metadata: models.Metadata{Complexity: 0.9, DurationWeeks: 20},
		Phases: []models.Phase{{Name: "Build", Type: "implementation", Tasks: []models.Task{
			{Type: models.TaskImplementation, Title: "Integrate Stripe", EstimatedHours: 8},
		}}},
	}

	risks := AssessRisks(w, NewTextView(w))

	var names []string
	for _, r := range risks.Risks {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"High technical complexity",
		"Integration failures with external systems",
		"Schedule overrun",
		"Unclear acceptance criteria",
		"Vendor lock-in",
	}, names)
	assert.InDelta(t, 6.4, risks.Score, 1e-9)
	assert.Equal(t, models.LevelHigh, risks.Level)
	assert.Len(t, risks.Mitigation.Immediate, 2)
	assert.Len(t, risks.Mitigation.ShortTerm, 2)
	assert.Len(t, risks.Mitigation.LongTerm, 1)
	assert.Equal(t, map[string]int{
		models.RiskTechnical: 2,
		models.RiskTimeline:  1,
		models.RiskSecurity:  0,
		models.RiskBusiness:  2,
		models.RiskResource:  0,
	}, risks.ByCategory)
}

func TestEstimate(t *testing.T) {
	w := &models.Workflow{
		Metadata: models.Metadata{Complexity: 0.2},
		Phases: []models.Phase{
			{Name: "One", Tasks: []models.Task{{Title: "a", EstimatedHours: 20}, {Title: "b", EstimatedHours: 10}}},
			{Name: "Two", Tasks: []models.Task{{Title: "c", EstimatedHours: 20}}},
		},
	}

	est := Estimate(w)
	assert.Equal(t, 50.0, est.TotalHours)
	assert.Equal(t, 3, est.TotalTasks)
	assert.Equal(t, 2, est.TotalWeeks)
	assert.Equal(t, models.LevelHigh, est.Confidence)
	assert.Equal(t, []models.PhaseEstimate{
		{Phase: "One", Hours: 30, Tasks: 2},
		{Phase: "Two", Hours: 20, Tasks: 1},
	}, est.ByPhase)

	w.Phases[1].Tasks[0].EstimatedHours = 0
	assert.Equal(t, models.LevelLow, Estimate(w).Confidence)
}

func TestParallelStreams(t *testing.T) {
	w := &models.Workflow{Phases: []models.Phase{
		{Name: "Requirements Analysis", Tasks: []models.Task{{Title: "a", EstimatedHours: 4}}},
		{Name: "Component Development", Tasks: []models.Task{{Title: "b", EstimatedHours: 8}}},
		{Name: "API Design", Tasks: []models.Task{{Title: "c", EstimatedHours: 6}}},
		{Name: "Frontend Testing", Tasks: []models.Task{{Title: "d", EstimatedHours: 2}}},
	}}

	streams := ParallelStreams(w)
	require.Len(t, streams, 3)

	assert.Equal(t, "Planning", streams[0].Name)
	assert.Empty(t, streams[0].CanRunWith)
	assert.Equal(t, models.ParallelStream{
		Name:       "Frontend",
		Phases:     []string{"Component Development", "Frontend Testing"},
		Tasks:      2,
		Hours:      10,
		CanRunWith: []string{"Backend"},
	}, streams[1])
	assert.Equal(t, "Backend", streams[2].Name)
	assert.Equal(t, []string{"Frontend"}, streams[2].CanRunWith)
}

func TestMilestones(t *testing.T) {
	w := &models.Workflow{Phases: []models.Phase{
		{Name: "Design", Type: "design", Tasks: []models.Task{
			{Title: "a", EstimatedHours: 30, Deliverables: []string{"Diagram"}},
			{Title: "b", EstimatedHours: 20, Deliverables: []string{"Diagram", "Spec"}},
		}},
		{Name: "Sprint 1", Type: "sprint", Tasks: []models.Task{{Title: "Story", EstimatedHours: 4}}},
		{Name: "Wrap Up", Type: "review", Tasks: []models.Task{{Title: "Retro"}}},
	}}

	ms := Milestones(w)
	require.Len(t, ms, 3)
	assert.Equal(t, models.Milestone{Name: "Design complete", Phase: "Design", Week: 2, Deliverables: []string{"Diagram", "Spec"}}, ms[0])
	assert.Equal(t, 4, ms[1].Week)
	assert.Equal(t, []string{"Story"}, ms[1].Deliverables)
	assert.Equal(t, 5, ms[2].Week)
}

func TestTextView(t *testing.T) {
	view := NewTextView(goodWorkflow())
	require.Len(t, view.Phases, 3)
	assert.Equal(t, "Design", view.Phases[0].Name)
	assert.Equal(t, "Design Architecture", view.Phases[0].Tasks[0].Title)
	assert.Contains(t, view.Phases[0].Tasks[0].Text, "architecture diagram")
	assert.Contains(t, view.All, "rollback plan")
}
