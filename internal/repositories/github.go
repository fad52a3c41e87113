package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"workflow-planner/internal/config"
)

const githubTimeout = 30 * time.Second

// GitHubRepository creates milestones and issues in one repository.
type GitHubRepository struct {
	gh      *gh.Client
	owner   string
	repo    string
	limiter *rate.Limiter
}

// NewGitHubRepository builds a token-authenticated client for the
// configured repository.
func NewGitHubRepository(ctx context.Context, cfg *config.GitHubConfig) *GitHubRepository {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = githubTimeout

	return NewGitHubRepositoryWithClient(gh.NewClient(tc), cfg)
}

// NewGitHubRepositoryWithClient uses an existing go-github client, for
// enterprise hosts and tests.
func NewGitHubRepositoryWithClient(client *gh.Client, cfg *config.GitHubConfig) *GitHubRepository {
	return &GitHubRepository{
		gh:      client,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		limiter: newLimiter(cfg.RequestsPerSecond),
	}
}

// CreateMilestone creates a milestone and returns its number.
func (r *GitHubRepository) CreateMilestone(ctx context.Context, title, description string) (int, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	milestone, _, err := r.gh.Issues.CreateMilestone(ctx, r.owner, r.repo, &gh.Milestone{
		Title:       gh.Ptr(title),
		Description: gh.Ptr(description),
	})
	if err != nil {
		return 0, wrapGitHubError(err, "create milestone")
	}
	return milestone.GetNumber(), nil
}

// CreateIssue creates an issue, optionally in a milestone (zero means none),
// and returns its number and URL.
func (r *GitHubRepository) CreateIssue(ctx context.Context, title, body string, labels []string, milestone int) (int, string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, "", fmt.Errorf("rate limit wait: %w", err)
	}

	req := &gh.IssueRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
	}
	if len(labels) > 0 {
		req.Labels = &labels
	}
	if milestone > 0 {
		req.Milestone = gh.Ptr(milestone)
	}

	issue, _, err := r.gh.Issues.Create(ctx, r.owner, r.repo, req)
	if err != nil {
		return 0, "", wrapGitHubError(err, "create issue")
	}
	return issue.GetNumber(), issue.GetHTMLURL(), nil
}

func wrapGitHubError(err error, op string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: GitHub token rejected: %w", op, err)
		case http.StatusNotFound:
			return fmt.Errorf("%s: repository not found or not accessible: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
