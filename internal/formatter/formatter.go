// Package formatter renders a workflow as markdown, JSON or YAML.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"workflow-planner/internal/models"
)

// Extension returns the file extension used when saving a format.
func Extension(format string) string {
	switch format {
	case "json":
		return "json"
	case "yaml":
		return "yaml"
	default:
		return "md"
	}
}

// Render writes the workflow in the given format.
func Render(w io.Writer, wf *models.Workflow, format string) error {
	if wf == nil {
		wf = &models.Workflow{}
	}

	var out string
	switch format {
	case "roadmap":
		out = roadmap(wf)
	case "tasks":
		out = tasks(wf)
	case "detailed", "":
		out = detailed(wf)
	case "json":
		data, err := json.MarshalIndent(wf, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		out = string(data) + "\n"
	case "yaml":
		data, err := yaml.Marshal(wf)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		out = string(data)
	default:
		return fmt.Errorf("%w %q (want one of %s)", models.ErrUnknownOutputFormat, format, strings.Join(models.OutputFormats(), ", "))
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// String renders to a string.
func String(wf *models.Workflow, format string) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, wf, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func title(wf *models.Workflow) string {
	if wf.Title == "" {
		return "Workflow"
	}
	return wf.Title
}

func header(sb *strings.Builder, wf *models.Workflow) {
	fmt.Fprintf(sb, "# %s\n\n", title(wf))
	fmt.Fprintf(sb, "**Viewpoint:** %s | **Strategy:** %s\n", wf.Viewpoint, wf.Strategy)
	fmt.Fprintf(sb, "**Estimated Duration:** %s | **Complexity:** %.2f | **Risk:** %s\n\n",
		wf.Metadata.EstimatedDuration, wf.Metadata.Complexity, wf.Metadata.RiskLevel)
}

func roadmap(wf *models.Workflow) string {
	var sb strings.Builder
	header(&sb, wf)

	sb.WriteString("## Roadmap\n\n")
	if len(wf.Phases) == 0 {
		sb.WriteString("No phases.\n")
	}
	for i, p := range wf.Phases {
		fmt.Fprintf(&sb, "%d. **%s** (%s) - %d tasks, %.0fh\n", i+1, p.Name, p.Duration, len(p.Tasks), p.TotalHours())
		if p.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", p.Description)
		}
	}

	if len(wf.Milestones) > 0 {
		sb.WriteString("\n## Milestones\n\n")
		for _, m := range wf.Milestones {
			fmt.Fprintf(&sb, "- Week %d: %s\n", m.Week, m.Name)
		}
	}
	return sb.String()
}

func tasks(wf *models.Workflow) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s - Tasks\n\n", title(wf))

	for _, p := range wf.Phases {
		fmt.Fprintf(&sb, "## %s\n\n", p.Name)
		for _, t := range p.Tasks {
			fmt.Fprintf(&sb, "- [ ] %s", t.Title)
			var meta []string
			if t.EstimatedHours > 0 {
				meta = append(meta, fmt.Sprintf("%.0fh", t.EstimatedHours))
			}
			if t.Priority != "" {
				meta = append(meta, string(t.Priority))
			}
			if len(meta) > 0 {
				fmt.Fprintf(&sb, " (%s)", strings.Join(meta, ", "))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "**Total:** %d tasks\n", wf.TaskCount())
	return sb.String()
}

func detailed(wf *models.Workflow) string {
	var sb strings.Builder
	header(&sb, wf)

	for i, p := range wf.Phases {
		fmt.Fprintf(&sb, "## Phase %d: %s\n\n", i+1, p.Name)
		fmt.Fprintf(&sb, "**Type:** %s | **Duration:** %s\n\n", p.Type, p.Duration)
		if p.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", p.Description)
		}

		for j, t := range p.Tasks {
			fmt.Fprintf(&sb, "### %d.%d %s\n\n", i+1, j+1, t.Title)
			fmt.Fprintf(&sb, "**Type:** %s | **Priority:** %s | **Estimate:** %.0fh\n\n", t.Type, t.Priority, t.EstimatedHours)
			if t.Description != "" {
				fmt.Fprintf(&sb, "%s\n\n", t.Description)
			}
			list(&sb, "Deliverables", t.Deliverables)
			list(&sb, "Acceptance Criteria", t.AcceptanceCriteria)
			if len(t.Dependencies) > 0 {
				fmt.Fprintf(&sb, "**Dependencies:** %s\n\n", strings.Join(t.Dependencies, ", "))
			}
			if len(t.Tools) > 0 {
				fmt.Fprintf(&sb, "**Tools:** %s\n\n", strings.Join(t.Tools, ", "))
			}
		}
	}

	epics(&sb, wf.Epics)
	analysis(&sb, wf)

	if len(wf.Guidance.BestPractices) > 0 || len(wf.Guidance.QualityGates) > 0 {
		sb.WriteString("## Guidance\n\n")
		list(&sb, "Best Practices", wf.Guidance.BestPractices)
		list(&sb, "Quality Gates", wf.Guidance.QualityGates)
	}
	return sb.String()
}

func list(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "**%s:**\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

func epics(sb *strings.Builder, epics []models.Epic) {
	if len(epics) == 0 {
		return
	}
	sb.WriteString("## Epics\n\n")
	for _, e := range epics {
		fmt.Fprintf(sb, "### %s (%d points, %s)\n\n", e.Title, e.StoryPoints(), e.Priority)
		for _, s := range e.Stories {
			fmt.Fprintf(sb, "- %s [%d]\n", s.Title, s.StoryPoints)
		}
		sb.WriteString("\n")
	}
}

// analysis writes the sections of whatever passes ran.
func analysis(sb *strings.Builder, wf *models.Workflow) {
	if d := wf.Dependencies; d != nil {
		sb.WriteString("## Dependencies\n\n")
		if len(d.CriticalPath) > 0 {
			fmt.Fprintf(sb, "**Critical Path:** %s\n\n", strings.Join(d.CriticalPath, " -> "))
		}
		list(sb, "External", d.External)
		list(sb, "Technical", d.Technical)
		list(sb, "Team Skills", d.TeamSkills)
		list(sb, "Infrastructure", d.Infrastructure)
		for _, b := range d.Bottlenecks {
			fmt.Fprintf(sb, "- Bottleneck: %s (%s)\n", b.Phase, b.Reason)
		}
		if len(d.UnresolvedReferences) > 0 {
			fmt.Fprintf(sb, "- Unresolved: %s\n", strings.Join(d.UnresolvedReferences, ", "))
		}
		sb.WriteString("\n")
	}

	if r := wf.Risks; r != nil {
		fmt.Fprintf(sb, "## Risks (score %.2f, %s)\n\n", r.Score, r.Level)
		for _, risk := range r.Risks {
			fmt.Fprintf(sb, "- [%s] %s: %s x %s = %d. %s\n", risk.Category, risk.Name, risk.Probability, risk.Impact, risk.Score, risk.Mitigation)
		}
		sb.WriteString("\n")
	}

	if q := wf.QualityGateResult; q != nil {
		status := "FAILED"
		if q.Overall.Passed {
			status = "PASSED"
		}
		fmt.Fprintf(sb, "## Quality Gates: %s (%.2f / %.2f)\n\n", status, q.Overall.Score, q.Overall.Threshold)
		sb.WriteString("| Gate | Weight | Score | Passed |\n|---|---|---|---|\n")
		for _, g := range q.Gates {
			fmt.Fprintf(sb, "| %s | %.2f | %.2f | %t |\n", g.Name, g.Weight, g.Score, g.Passed)
		}
		sb.WriteString("\n")
		list(sb, "Blockers", q.Blockers)
		list(sb, "Recommendations", q.Recommendations)
	}

	if e := wf.Estimates; e != nil {
		fmt.Fprintf(sb, "## Estimates\n\n%.0f hours across %d tasks, about %d weeks (confidence: %s)\n\n",
			e.TotalHours, e.TotalTasks, e.TotalWeeks, e.Confidence)
	}

	if len(wf.ParallelStreams) > 0 {
		sb.WriteString("## Parallel Streams\n\n")
		for _, s := range wf.ParallelStreams {
			fmt.Fprintf(sb, "- **%s**: %s", s.Name, strings.Join(s.Phases, ", "))
			if len(s.CanRunWith) > 0 {
				fmt.Fprintf(sb, " (alongside %s)", strings.Join(s.CanRunWith, ", "))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(wf.Milestones) > 0 {
		sb.WriteString("## Milestones\n\n")
		for _, m := range wf.Milestones {
			fmt.Fprintf(sb, "- Week %d: %s\n", m.Week, m.Name)
		}
		sb.WriteString("\n")
	}
}
