package services

import (
	"context"
	"fmt"
	"strings"

	"workflow-planner/internal/config"
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/repositories"
)

// GitHubService exports workflows as GitHub milestones and issues
type GitHubService struct {
	repo *repositories.GitHubRepository
}

// NewGitHubService creates a new GitHub service for the configured repository
func NewGitHubService(ctx context.Context, cfg *config.GitHubConfig) *GitHubService {
	return &GitHubService{repo: repositories.NewGitHubRepository(ctx, cfg)}
}

// NewGitHubServiceWithRepository wraps an existing repository
func NewGitHubServiceWithRepository(repo *repositories.GitHubRepository) *GitHubService {
	return &GitHubService{repo: repo}
}

// issueLabels labels an issue with its task type and priority.
func issueLabels(t models.Task) []string {
	var labels []string
	if t.Type != "" {
		labels = append(labels, t.Type)
	}
	if t.Priority != "" {
		labels = append(labels, "priority:"+string(t.Priority))
	}
	return labels
}

// issueBody formats a task as GitHub markdown.
func issueBody(t models.Task) string {
	var sb strings.Builder
	if t.Description != "" {
		sb.WriteString(t.Description + "\n\n")
	}
	if t.EstimatedHours > 0 {
		fmt.Fprintf(&sb, "**Estimate:** %.0fh\n\n", t.EstimatedHours)
	}
	if len(t.Deliverables) > 0 {
		sb.WriteString("### Deliverables\n")
		for _, d := range t.Deliverables {
			sb.WriteString("- " + d + "\n")
		}
		sb.WriteString("\n")
	}
	if len(t.AcceptanceCriteria) > 0 {
		sb.WriteString("### Acceptance Criteria\n")
		for _, c := range t.AcceptanceCriteria {
			sb.WriteString("- [ ] " + c + "\n")
		}
		sb.WriteString("\n")
	}
	if len(t.Dependencies) > 0 {
		sb.WriteString("**Depends on:** " + strings.Join(t.Dependencies, ", ") + "\n")
	}
	return strings.TrimSpace(sb.String())
}

// ExportWorkflow creates one milestone per phase and one issue per task.
// With dryRun set nothing is sent.
func (s *GitHubService) ExportWorkflow(ctx context.Context, wf *models.Workflow, dryRun bool) (*models.GitHubExportSummary, error) {
	summary := &models.GitHubExportSummary{Milestones: []int{}, Issues: []string{}}

	for i, p := range wf.Phases {
		helpers.PrintProgress(i+1, len(wf.Phases), fmt.Sprintf("Milestone: %s", p.Name))

		milestone := 0
		if !dryRun {
			number, err := s.repo.CreateMilestone(ctx, p.Name, p.Description)
			if err != nil {
				return summary, fmt.Errorf("failed to create milestone '%s': %w", p.Name, err)
			}
			milestone = number
		}
		summary.Milestones = append(summary.Milestones, milestone)

		for _, t := range p.Tasks {
			if dryRun {
				helpers.PrintInfo("  Would open issue: %s [%s]", t.Title, strings.Join(issueLabels(t), ", "))
				summary.Issues = append(summary.Issues, t.Title)
				continue
			}

			_, link, err := s.repo.CreateIssue(ctx, t.Title, issueBody(t), issueLabels(t), milestone)
			if err != nil {
				if ctx.Err() != nil {
					return summary, ctx.Err()
				}
				helpers.PrintWarning("Failed to create issue '%s': %v", t.Title, err)
				summary.Skipped++
				continue
			}
			summary.Issues = append(summary.Issues, link)
			helpers.PrintSuccess("Created issue: %s", link)
		}
	}

	if dryRun {
		helpers.PrintInfo("Dry run - would create %s and %s", helpers.Pluralize(len(summary.Milestones), "milestone"), helpers.Pluralize(len(summary.Issues), "issue"))
	} else {
		helpers.PrintSuccess("GitHub export complete: %s", helpers.Pluralize(len(summary.Issues), "issue"))
	}
	return summary, nil
}
