package models

import "time"

// Epic groups the user stories derived from one feature.
type Epic struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Stories     []Story  `json:"stories" yaml:"stories"`
}

// StoryPoints sums the points of the epic's stories.
func (e Epic) StoryPoints() int {
	total := 0
	for _, s := range e.Stories {
		total += s.StoryPoints
	}
	return total
}

// Story represents a user story
type Story struct {
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description" yaml:"description"`
	StoryPoints        int      `json:"story_points" yaml:"story_points"`
	Priority           Priority `json:"priority" yaml:"priority"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty" yaml:"acceptance_criteria,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Epic               string   `json:"epic" yaml:"epic"`
}

// WorkflowResult is the saved envelope around a generated workflow.
type WorkflowResult struct {
	RunID        string        `json:"run_id"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Source       string        `json:"source"`
	SourceKind   SourceKind    `json:"source_kind"`
	Requirements *Requirements `json:"requirements,omitempty"`
	Workflow     Workflow      `json:"workflow"`
}
