package models

// PhaseDependency records that a phase waits for another one.
type PhaseDependency struct {
	Phase     string `json:"phase" yaml:"phase"`
	DependsOn string `json:"depends_on" yaml:"depends_on"`
}

// TaskDependency is a task's declared dependency list.
type TaskDependency struct {
	Phase     string   `json:"phase" yaml:"phase"`
	Task      string   `json:"task" yaml:"task"`
	DependsOn []string `json:"depends_on" yaml:"depends_on"`
}

// Bottleneck flags a phase likely to hold up delivery.
type Bottleneck struct {
	Phase  string `json:"phase" yaml:"phase"`
	Reason string `json:"reason" yaml:"reason"`
}

// DependencyAnalysis is the Dependency Analyzer's attachment.
type DependencyAnalysis struct {
	PhaseDependencies     []PhaseDependency `json:"phase_dependencies" yaml:"phase_dependencies"`
	TaskDependencies      []TaskDependency  `json:"task_dependencies" yaml:"task_dependencies"`
	UnresolvedReferences  []string          `json:"unresolved_references,omitempty" yaml:"unresolved_references,omitempty"`
	External              []string          `json:"external" yaml:"external"`
	Technical             []string          `json:"technical" yaml:"technical"`
	TeamSkills            []string          `json:"team_skills" yaml:"team_skills"`
	Infrastructure        []string          `json:"infrastructure" yaml:"infrastructure"`
	CriticalPath          []string          `json:"critical_path" yaml:"critical_path"`
	Bottlenecks           []Bottleneck      `json:"bottlenecks" yaml:"bottlenecks"`
	ParallelOpportunities []string          `json:"parallel_opportunities,omitempty" yaml:"parallel_opportunities,omitempty"`
}

// Risk categories.
const (
	RiskTechnical = "technical"
	RiskTimeline  = "timeline"
	RiskSecurity  = "security"
	RiskBusiness  = "business"
	RiskResource  = "resource"
)

// Risk is one triggered rule of the risk catalog.
type Risk struct {
	Category    string `json:"category" yaml:"category"`
	Name        string `json:"name" yaml:"name"`
	Probability Level  `json:"probability" yaml:"probability"`
	Impact      Level  `json:"impact" yaml:"impact"`
	Score       int    `json:"score" yaml:"score"`
	Mitigation  string `json:"mitigation" yaml:"mitigation"`
}

// MitigationPlan buckets mitigations by urgency.
type MitigationPlan struct {
	Immediate []string `json:"immediate" yaml:"immediate"`
	ShortTerm []string `json:"short_term" yaml:"short_term"`
	LongTerm  []string `json:"long_term" yaml:"long_term"`
}

// RiskAssessment is the Risk Assessor's attachment.
type RiskAssessment struct {
	Risks      []Risk         `json:"risks" yaml:"risks"`
	Score      float64        `json:"score" yaml:"score"`
	Level      Level          `json:"level" yaml:"level"`
	ByCategory map[string]int `json:"by_category" yaml:"by_category"`
	Mitigation MitigationPlan `json:"mitigation" yaml:"mitigation"`
}

// GateResult is one quality gate's outcome.
type GateResult struct {
	Name            string   `json:"name" yaml:"name"`
	Weight          float64  `json:"weight" yaml:"weight"`
	Score           float64  `json:"score" yaml:"score"`
	Passed          bool     `json:"passed" yaml:"passed"`
	Issues          []string `json:"issues,omitempty" yaml:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// OverallGate summarizes all gates.
type OverallGate struct {
	Score     float64 `json:"score" yaml:"score"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Passed    bool    `json:"passed" yaml:"passed"`
}

// QualityGateResult is the Quality-Gate Validator's attachment.
type QualityGateResult struct {
	Overall         OverallGate  `json:"overall" yaml:"overall"`
	Gates           []GateResult `json:"gates" yaml:"gates"`
	Blockers        []string     `json:"blockers" yaml:"blockers"`
	Recommendations []string     `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// PhaseEstimate is the effort of one phase.
type PhaseEstimate struct {
	Phase string  `json:"phase" yaml:"phase"`
	Hours float64 `json:"hours" yaml:"hours"`
	Tasks int     `json:"tasks" yaml:"tasks"`
}

// Estimates summarizes effort across the plan.
type Estimates struct {
	TotalHours float64         `json:"total_hours" yaml:"total_hours"`
	TotalTasks int             `json:"total_tasks" yaml:"total_tasks"`
	TotalWeeks int             `json:"total_weeks" yaml:"total_weeks"`
	Confidence Level           `json:"confidence" yaml:"confidence"`
	ByPhase    []PhaseEstimate `json:"by_phase" yaml:"by_phase"`
}

// ParallelStream is a track of phases that can progress alongside others.
type ParallelStream struct {
	Name       string   `json:"name" yaml:"name"`
	Phases     []string `json:"phases" yaml:"phases"`
	Tasks      int      `json:"tasks" yaml:"tasks"`
	Hours      float64  `json:"hours" yaml:"hours"`
	CanRunWith []string `json:"can_run_with,omitempty" yaml:"can_run_with,omitempty"`
}

// Milestone marks the end of a phase on the cumulative timeline.
type Milestone struct {
	Name         string   `json:"name" yaml:"name"`
	Phase        string   `json:"phase" yaml:"phase"`
	Week         int      `json:"week" yaml:"week"`
	Deliverables []string `json:"deliverables,omitempty" yaml:"deliverables,omitempty"`
}
