package models

// Strategy is the overall shape of a plan.
type Strategy string

const (
	StrategySystematic   Strategy = "systematic"
	StrategyIterative    Strategy = "iterative"
	StrategyMinimumScope Strategy = "minimum-scope"
)

// Task types used by the phase builders.
const (
	TaskAnalysis       = "analysis"
	TaskDesign         = "design"
	TaskResearch       = "research"
	TaskImplementation = "implementation"
	TaskConfiguration  = "configuration"
	TaskTesting        = "testing"
	TaskReview         = "review"
	TaskDocumentation  = "documentation"
	TaskDeployment     = "deployment"
	TaskMonitoring     = "monitoring"
	TaskUserStory      = "user-story"
)

// Task is the smallest plan unit.
type Task struct {
	Type               string   `json:"type" yaml:"type"`
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description,omitempty" yaml:"description,omitempty"`
	Deliverables       []string `json:"deliverables,omitempty" yaml:"deliverables,omitempty"`
	EstimatedHours     float64  `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	Priority           Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Tools              []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty" yaml:"acceptance_criteria,omitempty"`
}

// Phase groups ordered tasks. Phases run in sequence unless the dependency
// analysis reports them as parallel opportunities.
type Phase struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Tasks       []Task `json:"tasks" yaml:"tasks"`
}

// TotalHours sums the task estimates of the phase.
func (p Phase) TotalHours() float64 {
	var total float64
	for _, t := range p.Tasks {
		total += t.EstimatedHours
	}
	return total
}

// Metadata carries the scorer's output.
type Metadata struct {
	EstimatedDuration string  `json:"estimated_duration" yaml:"estimated_duration"`
	DurationWeeks     int     `json:"duration_weeks" yaml:"duration_weeks"`
	Complexity        float64 `json:"complexity" yaml:"complexity"`
	RiskLevel         Level   `json:"risk_level" yaml:"risk_level"`
}

// Guidance is the viewpoint's advisory content.
type Guidance struct {
	BestPractices []string `json:"best_practices,omitempty" yaml:"best_practices,omitempty"`
	QualityGates  []string `json:"quality_gates,omitempty" yaml:"quality_gates,omitempty"`
}

// Workflow is the synthesized plan plus whatever the enrichment passes attached.
type Workflow struct {
	Title     string   `json:"title" yaml:"title"`
	Strategy  Strategy `json:"strategy" yaml:"strategy"`
	Viewpoint string   `json:"viewpoint" yaml:"viewpoint"`
	Phases    []Phase  `json:"phases" yaml:"phases"`
	Metadata  Metadata `json:"metadata" yaml:"metadata"`
	Guidance  Guidance `json:"guidance" yaml:"guidance"`
	Epics     []Epic   `json:"epics,omitempty" yaml:"epics,omitempty"`

	Dependencies      *DependencyAnalysis `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Risks             *RiskAssessment     `json:"risks,omitempty" yaml:"risks,omitempty"`
	QualityGateResult *QualityGateResult  `json:"quality_gate_result,omitempty" yaml:"quality_gate_result,omitempty"`
	Estimates         *Estimates          `json:"estimates,omitempty" yaml:"estimates,omitempty"`
	ParallelStreams   []ParallelStream    `json:"parallel_streams,omitempty" yaml:"parallel_streams,omitempty"`
	Milestones        []Milestone         `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}

// TaskCount returns the number of tasks across all phases.
func (w *Workflow) TaskCount() int {
	n := 0
	for _, p := range w.Phases {
		n += len(p.Tasks)
	}
	return n
}
