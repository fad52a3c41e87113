package enrichment

import (
	"math"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

const (
	// PassThreshold is the overall score a workflow needs to pass.
	PassThreshold = 0.80
	// BlockerThreshold is the gate score under which a gate blocks release.
	BlockerThreshold = 0.50
	gatePassScore    = 0.70
)

// Gate names.
const (
	GateRequirements  = "Requirements Validation"
	GateArchitecture  = "Architecture Review"
	GateSecurity      = "Security Assessment"
	GatePerformance   = "Performance Validation"
	GateTesting       = "Testing Coverage"
	GateDocumentation = "Documentation"
	GateRisk          = "Risk Management"
)

// gateFacts are computed once and shared by every gate.
type gateFacts struct {
	w            *models.Workflow
	view         *TextView
	tasks        int
	withCriteria int
	described    int
	deliverables int
	dependent    int
	testingHours float64
	totalHours   float64
	typeCounts   map[string]int
}

func newGateFacts(w *models.Workflow, view *TextView) gateFacts {
	f := gateFacts{w: w, view: view, typeCounts: map[string]int{}}
	for _, p := range w.Phases {
		for _, t := range p.Tasks {
			f.tasks++
			f.typeCounts[t.Type]++
			f.totalHours += t.EstimatedHours
			if t.Type == models.TaskTesting {
				f.testingHours += t.EstimatedHours
			}
			if len(t.AcceptanceCriteria) > 0 {
				f.withCriteria++
			}
			if t.Description != "" {
				f.described++
			}
			if len(t.Deliverables) > 0 {
				f.deliverables++
			}
			if len(t.Dependencies) > 0 {
				f.dependent++
			}
		}
	}
	return f
}

// check is one presence/absence test. When failed is true, the gate loses
// penalty points and reports issue and recommendation.
type check struct {
	failed         bool
	penalty        float64
	issue          string
	recommendation string
}

type gate struct {
	name   string
	weight float64
	checks func(f gateFacts) []check
}

var (
	designWords        = helpers.NewKeywordMatcher("architecture", "design", "diagram", "data model", "api specification", "schema")
	docWords           = helpers.NewKeywordMatcher("documentation", "document", "specification", "runbook", "decision record", "guide")
	securityWords      = helpers.NewKeywordMatcher("security", "secure", "threat", "authentication", "authorization", "encrypt", "encryption", "access control", "vulnerability", "vulnerabilities")
	securityNeedWords  = helpers.NewKeywordMatcher("login", "authentication", "payment", "personal data", "gdpr", "hipaa", "pci", "compliance", "jwt", "oauth", "password")
	performanceWords   = helpers.NewKeywordMatcher("performance", "load test", "optimize", "optimization", "cache", "caching", "latency", "lazy loading", "bundle size")
	perfCriticalWords  = helpers.NewKeywordMatcher("load time", "response time", "latency", "throughput", "concurrent users")
	loadTestWords      = helpers.NewKeywordMatcher("load test", "load tests", "performance testing", "k6")
	automationWords    = helpers.NewKeywordMatcher("automate", "automation", "ci", "ci/cd", "regression", "e2e", "end-to-end", "unit test", "unit tests")
	riskPlanningWords  = helpers.NewKeywordMatcher("risk", "spike", "proof of concept", "prototype", "rollback", "backup", "disaster recovery", "fallback")
	reviewOrValidation = helpers.NewKeywordMatcher("review", "audit", "sign-off", "validate", "validation", "acceptance testing")
)

var gates = []gate{
	{GateRequirements, 0.20, func(f gateFacts) []check {
		return []check{
			{len(f.w.Phases) == 0, 0.5, "Workflow has no phases", "Add phases derived from the requirements"},
			{f.tasks == 0, 0.2, "Workflow has no tasks", "Break each phase into concrete tasks"},
			{f.tasks > 0 && f.withCriteria*2 < f.tasks, 0.2, "Fewer than half of the tasks carry acceptance criteria", "Attach acceptance criteria to the tasks that deliver features"},
			{f.w.Title == "", 0.1, "Workflow has no title", "Give the workflow a descriptive title"},
		}
	}},
	{GateArchitecture, 0.15, func(f gateFacts) []check {
		return []check{
			{f.typeCounts[models.TaskDesign] == 0 && !f.view.Mentions(designWords), 0.4, "No design or architecture work planned", "Add a design task before implementation"},
			{f.tasks > 5 && f.dependent == 0, 0.2, "No task declares dependencies", "Declare dependencies between tasks that build on each other"},
			{f.tasks == 0, 0.2, "Nothing to review", "Plan the work before reviewing the architecture"},
		}
	}},
	{GateSecurity, 0.15, func(f gateFacts) []check {
		covered := f.view.TasksMatching(securityWords) > 0
		return []check{
			{f.view.Mentions(securityNeedWords) && !covered, 0.5, "Security-sensitive scope without security tasks", "Add threat modeling and security testing tasks"},
			{!covered, 0.2, "No security consideration in the plan", "Review the plan for authentication, data protection and input validation"},
		}
	}},
	{GatePerformance, 0.10, func(f gateFacts) []check {
		covered := f.view.TasksMatching(performanceWords) > 0
		return []check{
			{!covered, 0.3, "No performance work planned", "Add a performance budget and an optimization task"},
			{f.view.Mentions(perfCriticalWords) && f.view.TasksMatching(loadTestWords) == 0, 0.3, "Performance targets without load testing", "Add a load test against the stated targets"},
		}
	}},
	{GateTesting, 0.20, func(f gateFacts) []check {
		return []check{
			{f.typeCounts[models.TaskTesting] == 0, 0.5, "No testing tasks", "Add unit, integration and acceptance testing tasks"},
			{f.totalHours > 0 && f.testingHours/f.totalHours < 0.10, 0.2, "Less than 10% of effort is testing", "Raise the testing share of the plan"},
			{f.view.TasksMatching(automationWords) == 0, 0.1, "No test automation", "Automate tests in CI"},
		}
	}},
	{GateDocumentation, 0.10, func(f gateFacts) []check {
		return []check{
			{f.typeCounts[models.TaskDocumentation] == 0 && f.view.TasksMatching(docWords) == 0, 0.3, "No documentation planned", "Add documentation tasks for APIs, operations and decisions"},
			{f.tasks > 0 && f.described*2 < f.tasks, 0.2, "Most tasks lack descriptions", "Describe each task's intent"},
			{f.deliverables == 0, 0.2, "No deliverables defined", "Name the deliverable of each task"},
		}
	}},
	{GateRisk, 0.10, func(f gateFacts) []check {
		return []check{
			{f.view.TasksMatching(riskPlanningWords) == 0, 0.3, "No risk handling in the plan", "Add spikes, prototypes or rollback plans for risky work"},
			{f.w.Metadata.RiskLevel == models.LevelHigh, 0.2, "Project risk level is high", "Review the risk assessment with stakeholders"},
			{f.view.TasksMatching(reviewOrValidation) == 0, 0.2, "No review or validation checkpoints", "Add review checkpoints at phase boundaries"},
		}
	}},
}

// ValidateQualityGates scores the seven gates and their weighted average.
// A workflow passes when the average reaches PassThreshold and no gate is a
// blocker.
func ValidateQualityGates(w *models.Workflow, view *TextView) *models.QualityGateResult {
	if w == nil {
		w = &models.Workflow{}
	}
	if view == nil {
		view = NewTextView(w)
	}
	facts := newGateFacts(w, view)

	result := &models.QualityGateResult{
		Overall:  models.OverallGate{Threshold: PassThreshold},
		Gates:    make([]models.GateResult, 0, len(gates)),
		Blockers: []string{},
	}

	var overall float64
	for _, g := range gates {
		gr := models.GateResult{Name: g.name, Weight: g.weight}
		score := 1.0
		for _, c := range g.checks(facts) {
			if !c.failed {
				continue
			}
			score -= c.penalty
			gr.Issues = append(gr.Issues, c.issue)
			gr.Recommendations = append(gr.Recommendations, c.recommendation)
		}
		gr.Score = round2(math.Max(0, score))
		gr.Passed = gr.Score >= gatePassScore
		if gr.Score < BlockerThreshold {
			result.Blockers = append(result.Blockers, g.name)
		}
		if !gr.Passed {
			result.Recommendations = append(result.Recommendations, gr.Recommendations...)
		}
		overall += gr.Score * g.weight
		result.Gates = append(result.Gates, gr)
	}

	result.Overall.Score = round2(overall)
	result.Overall.Passed = result.Overall.Score >= PassThreshold && len(result.Blockers) == 0
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
