// Package enrichment holds the optional passes that analyze a synthesized
// workflow: dependencies, risks, quality gates, estimates, parallel streams
// and milestones. Every pass is pure and tolerates a workflow without phases.
package enrichment

import (
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// TaskText is the flattened lowercase text of one task.
type TaskText struct {
	Title string
	Text  string
}

// PhaseText is the flattened lowercase text of one phase and its tasks.
type PhaseText struct {
	Name  string
	Text  string
	Tasks []TaskText
}

// TextView is a flattened, lowercase view of a workflow's text, built once
// per run and shared by the keyword-scanning passes.
type TextView struct {
	Phases []PhaseText
	All    string
}

// NewTextView flattens the workflow's titles, descriptions, tools and
// deliverables.
func NewTextView(w *models.Workflow) *TextView {
	view := &TextView{}
	if w == nil {
		return view
	}

	var all []string
	for _, p := range w.Phases {
		pt := PhaseText{Name: p.Name}
		parts := []string{p.Name, p.Type, p.Description}
		for _, t := range p.Tasks {
			text := strings.ToLower(strings.Join(taskParts(t), " "))
			pt.Tasks = append(pt.Tasks, TaskText{Title: t.Title, Text: text})
			parts = append(parts, text)
		}
		pt.Text = strings.ToLower(strings.Join(parts, " "))
		view.Phases = append(view.Phases, pt)
		all = append(all, pt.Text)
	}
	view.All = strings.Join(all, "\n")
	return view
}

func taskParts(t models.Task) []string {
	parts := []string{t.Type, t.Title, t.Description}
	parts = append(parts, t.Tools...)
	parts = append(parts, t.Deliverables...)
	return parts
}

// Mentions reports whether the whole workflow matches m.
func (v *TextView) Mentions(m helpers.KeywordMatcher) bool {
	return v != nil && m.MatchString(v.All)
}

// TasksMatching counts tasks whose text matches m.
func (v *TextView) TasksMatching(m helpers.KeywordMatcher) int {
	if v == nil {
		return 0
	}
	n := 0
	for _, p := range v.Phases {
		for _, t := range p.Tasks {
			if m.MatchString(t.Text) {
				n++
			}
		}
	}
	return n
}

// labeled is a catalog entry: a label reported when any keyword matches.
type labeled struct {
	label   string
	matcher helpers.KeywordMatcher
}

// scanCatalog returns the labels of the catalog entries the text matches,
// in catalog order.
func scanCatalog(text string, catalog []labeled) []string {
	out := []string{}
	for _, entry := range catalog {
		if entry.matcher.MatchString(text) {
			out = append(out, entry.label)
		}
	}
	return out
}
