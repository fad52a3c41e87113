package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workflow-planner/internal/config"
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/repositories"
)

const maxAttempts = 3

// JiraService exports workflows to JIRA
type JiraService struct {
	repo       *repositories.JiraRepository
	config     *config.JiraConfig
	retryDelay time.Duration
}

// NewJiraService creates a new JIRA service
func NewJiraService(jiraConfig *config.JiraConfig) *JiraService {
	return &JiraService{
		repo:       repositories.NewJiraRepository(jiraConfig),
		config:     jiraConfig,
		retryDelay: 2 * time.Second,
	}
}

// TestConnection tests the JIRA connection and validates project access
func (s *JiraService) TestConnection(ctx context.Context) error {
	helpers.PrintInfo("Testing JIRA authentication and listing accessible projects...")

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	helpers.PrintSuccess("Authentication successful! Found %d accessible projects", len(projects))

	projectFound := false
	for _, project := range projects {
		if project.Key == s.config.ProjectKey {
			projectFound = true
		}
		helpers.PrintDebug("  %s (%s)", project.Key, project.Name)
	}

	if !projectFound {
		helpers.PrintWarning("Project key '%s' not found in accessible projects!", s.config.ProjectKey)
		return fmt.Errorf("project key '%s' not found in accessible projects", s.config.ProjectKey)
	}

	if _, err := s.repo.GetProjectInfo(ctx, s.config.ProjectKey); err != nil {
		return fmt.Errorf("failed to access project: %w", err)
	}

	helpers.PrintSuccess("JIRA connection successful")
	return nil
}

// CreateIssueWithRetry creates a JIRA issue with retry logic
func (s *JiraService) CreateIssueWithRetry(ctx context.Context, title, description, issueType string, labels []string, epicKey string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		key, err := s.CreateIssue(ctx, title, description, issueType, labels, epicKey)
		if err == nil {
			return key, nil
		}

		lastErr = err
		helpers.PrintWarning("Attempt %d failed: %v", attempt, err)

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// CreateIssue creates a single JIRA issue
func (s *JiraService) CreateIssue(ctx context.Context, title, description, issueType string, labels []string, epicKey string) (string, error) {
	helpers.PrintDebug("creating %s in %s: %s", issueType, s.config.ProjectKey, title)

	issue := &models.JiraIssue{
		Fields: models.JiraFields{
			Project: models.JiraProject{
				Key: s.config.ProjectKey,
			},
			Summary:     title,
			Description: description,
			IssueType: models.JiraIssueType{
				Name: issueType,
			},
			Labels: labels,
		},
	}

	// Set parent (epic) if provided and issue type is not Epic
	if epicKey != "" && issueType != models.JiraIssueTypeEpic {
		issue.Fields.Parent = &models.JiraParent{Key: epicKey}
	}

	resp, err := s.repo.CreateIssue(ctx, issue)
	if err != nil {
		return "", err
	}

	return resp.Key, nil
}

// jiraItem is one epic with its children, from either phases or iterative epics.
type jiraItem struct {
	title       string
	description string
	labels      []string
	children    []jiraChild
}

type jiraChild struct {
	title       string
	description string
	labels      []string
}

// jiraPlan maps a workflow onto epics and tasks: iterative workflows export
// their epics and stories, every other workflow exports phases and tasks.
func jiraPlan(wf *models.Workflow) []jiraItem {
	var items []jiraItem
	if len(wf.Epics) > 0 {
		for _, e := range wf.Epics {
			item := jiraItem{
				title:       e.Title,
				description: e.Description,
				labels:      []string{"priority-" + string(e.Priority)},
			}
			for _, story := range e.Stories {
				item.children = append(item.children, jiraChild{
					title:       story.Title,
					description: jiraDescription(story.Description, nil, story.AcceptanceCriteria, story.Dependencies, story.StoryPoints),
					labels:      []string{models.TaskUserStory},
				})
			}
			items = append(items, item)
		}
		return items
	}

	for _, p := range wf.Phases {
		item := jiraItem{
			title:       p.Name,
			description: p.Description,
			labels:      []string{"phase-" + helpers.Slugify(p.Type)},
		}
		for _, t := range p.Tasks {
			labels := []string{t.Type}
			if t.Priority != "" {
				labels = append(labels, "priority-"+string(t.Priority))
			}
			item.children = append(item.children, jiraChild{
				title:       t.Title,
				description: jiraDescription(t.Description, t.Deliverables, t.AcceptanceCriteria, t.Dependencies, 0),
				labels:      labels,
			})
		}
		items = append(items, item)
	}
	return items
}

// jiraDescription formats a description in JIRA wiki markup.
func jiraDescription(description string, deliverables, criteria, dependencies []string, points int) string {
	var sb strings.Builder
	sb.WriteString(description)
	if points > 0 {
		fmt.Fprintf(&sb, "\n\n*Story Points:* %d", points)
	}
	if len(deliverables) > 0 {
		sb.WriteString("\n\n*Deliverables:*\n")
		for _, d := range deliverables {
			sb.WriteString("• " + d + "\n")
		}
	}
	if len(criteria) > 0 {
		sb.WriteString("\n\n*Acceptance Criteria:*\n")
		for _, c := range criteria {
			sb.WriteString("• " + c + "\n")
		}
	}
	if len(dependencies) > 0 {
		sb.WriteString("\n*Dependencies:* " + strings.Join(dependencies, ", "))
	}
	return strings.TrimSpace(sb.String())
}

// ExportWorkflow creates one epic per phase and one task per phase task.
// With dryRun set nothing is sent; the summary lists what would be created.
func (s *JiraService) ExportWorkflow(ctx context.Context, wf *models.Workflow, dryRun bool) (*models.JiraExportSummary, error) {
	summary := &models.JiraExportSummary{Epics: []string{}, Tasks: []string{}}
	items := jiraPlan(wf)

	for i, item := range items {
		helpers.PrintProgress(i+1, len(items), fmt.Sprintf("Creating epic: %s", item.title))

		epicKey := fmt.Sprintf("DRY-%d", i+1)
		if !dryRun {
			key, err := s.CreateIssueWithRetry(ctx, item.title, item.description, models.JiraIssueTypeEpic, item.labels, "")
			if err != nil {
				return summary, fmt.Errorf("failed to create epic '%s': %w", item.title, err)
			}
			epicKey = key
			helpers.PrintSuccess("Created epic: %s", epicKey)
		}
		summary.Epics = append(summary.Epics, epicKey)

		for j, child := range item.children {
			helpers.PrintProgress(j+1, len(item.children), fmt.Sprintf("Creating task: %s", child.title))
			if dryRun {
				summary.Tasks = append(summary.Tasks, fmt.Sprintf("%s-%d", epicKey, j+1))
				continue
			}

			taskKey, err := s.CreateIssueWithRetry(ctx, child.title, child.description, models.JiraIssueTypeTask, child.labels, epicKey)
			if err != nil {
				helpers.PrintWarning("Failed to create task '%s': %v", child.title, err)
				summary.Skipped++
				continue
			}
			summary.Tasks = append(summary.Tasks, taskKey)
			helpers.PrintSuccess("Created task: %s", taskKey)
		}
	}

	if dryRun {
		helpers.PrintInfo("Dry run - would create %s and %s", helpers.Pluralize(len(summary.Epics), "epic"), helpers.Pluralize(len(summary.Tasks), "task"))
	} else {
		helpers.PrintSuccess("JIRA tickets created successfully!")
	}
	return summary, nil
}
