package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"workflow-planner/internal/config"
	"workflow-planner/internal/models"
)

// JiraRepository handles JIRA API interactions
type JiraRepository struct {
	config  *config.JiraConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewJiraRepository creates a new JIRA repository
func NewJiraRepository(jiraConfig *config.JiraConfig) *JiraRepository {
	return &JiraRepository{
		config: jiraConfig,
		client: &http.Client{
			Timeout: time.Duration(jiraConfig.Timeout) * time.Second,
		},
		limiter: newLimiter(jiraConfig.RequestsPerSecond),
	}
}

// newLimiter allows rps requests per second; zero or less disables throttling.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// do sends an authenticated request, throttled by the limiter, and decodes
// the JSON response into out when the status matches want.
func (r *JiraRepository) do(ctx context.Context, method, path string, body interface{}, want int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	url := strings.TrimRight(r.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(r.config.Username, r.config.APIToken)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("JIRA API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListProjects returns the projects the configured user can access.
func (r *JiraRepository) ListProjects(ctx context.Context) ([]models.JiraProjectInfo, error) {
	var projects []models.JiraProjectInfo
	if err := r.do(ctx, http.MethodGet, "/rest/api/2/project", nil, http.StatusOK, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectInfo gets information about a specific project
func (r *JiraRepository) GetProjectInfo(ctx context.Context, projectKey string) (*models.JiraProjectInfo, error) {
	var project models.JiraProjectInfo
	if err := r.do(ctx, http.MethodGet, "/rest/api/2/project/"+projectKey, nil, http.StatusOK, &project); err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", projectKey, err)
	}
	return &project, nil
}

// CreateIssue creates a new JIRA issue
func (r *JiraRepository) CreateIssue(ctx context.Context, issue *models.JiraIssue) (*models.JiraResponse, error) {
	var jiraResp models.JiraResponse
	if err := r.do(ctx, http.MethodPost, "/rest/api/2/issue", issue, http.StatusCreated, &jiraResp); err != nil {
		return nil, err
	}
	return &jiraResp, nil
}
