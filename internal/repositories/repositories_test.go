package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-planner/internal/config"
	"workflow-planner/internal/models"
)

func TestDocumentRepository_Load(t *testing.T) {
	repo := NewDocumentRepository()

	path := filepath.Join(t.TempDir(), "prd.md")
	require.NoError(t, os.WriteFile(path, []byte("# Shop\n\n## Features\n- Checkout\n"), 0644))

	doc, err := repo.Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.SourceStructured, doc.SourceKind)
	assert.Equal(t, path, doc.Name)
	assert.Contains(t, doc.Text, "Checkout")

	doc, err = repo.Load("Build a REST API for orders")
	require.NoError(t, err)
	assert.Equal(t, models.SourceFreeform, doc.SourceKind)
	assert.Empty(t, doc.Name)
	assert.Equal(t, "Build a REST API for orders", doc.Text)

	_, err = repo.Load("   ")
	assert.Error(t, err)
}

func TestDocumentRepository_WarnsOnMissingPath(t *testing.T) {
	var out bytes.Buffer
	prev := color.Output
	color.Output = &out
	defer func() { color.Output = prev }()

	repo := NewDocumentRepository()
	doc, err := repo.Load("prd.mdd")
	require.NoError(t, err)
	assert.Equal(t, models.SourceFreeform, doc.SourceKind)
	assert.Contains(t, out.String(), "No file at prd.mdd")

	out.Reset()
	_, err = repo.Load("Build a REST API for orders.")
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestLooksLikePath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"prd.mdd", true},
		{"docs/requirements.md", true},
		{" notes.txt ", true},
		{"Build a chat app.", false},
		{"README", false},
		{"trailing.", false},
		{"checkout flow", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikePath(tt.input))
		})
	}
}

func jiraServer(t *testing.T) (*httptest.Server, *[]models.JiraIssue) {
	t.Helper()
	var created []models.JiraIssue
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/project", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "me@example.com" || pass != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.JiraProjectInfo{{Key: "PROJ", Name: "Project"}})
	})
	mux.HandleFunc("/rest/api/2/project/PROJ", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.JiraProjectInfo{Key: "PROJ", Name: "Project"})
	})
	mux.HandleFunc("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var issue models.JiraIssue
		if err := json.NewDecoder(r.Body).Decode(&issue); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		created = append(created, issue)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.JiraResponse{ID: "1", Key: "PROJ-1"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &created
}

func jiraConfig(baseURL string) *config.JiraConfig {
	return &config.JiraConfig{
		BaseURL:    baseURL,
		Username:   "me@example.com",
		APIToken:   "token",
		ProjectKey: "PROJ",
		Timeout:    5,
	}
}

func TestJiraRepository(t *testing.T) {
	srv, created := jiraServer(t)
	repo := NewJiraRepository(jiraConfig(srv.URL + "/"))
	ctx := context.Background()

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.JiraProjectInfo{{Key: "PROJ", Name: "Project"}}, projects)

	project, err := repo.GetProjectInfo(ctx, "PROJ")
	require.NoError(t, err)
	assert.Equal(t, "Project", project.Name)

	resp, err := repo.CreateIssue(ctx, &models.JiraIssue{Fields: models.JiraFields{
		Project:   models.JiraProject{Key: "PROJ"},
		Summary:   "API Design",
		IssueType: models.JiraIssueType{Name: models.JiraIssueTypeEpic},
	}})
	require.NoError(t, err)
	assert.Equal(t, "PROJ-1", resp.Key)
	require.Len(t, *created, 1)
	assert.Equal(t, "API Design", (*created)[0].Fields.Summary)
}

func TestJiraRepository_ErrorStatus(t *testing.T) {
	srv, _ := jiraServer(t)
	cfg := jiraConfig(srv.URL)
	cfg.APIToken = "wrong"

	_, err := NewJiraRepository(cfg).ListProjects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestJiraRepository_CanceledContext(t *testing.T) {
	srv, _ := jiraServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJiraRepository(jiraConfig(srv.URL)).ListProjects(ctx)
	assert.Error(t, err)
}

func TestGitHubRepository(t *testing.T) {
	var issueReq map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/shop/milestones", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 3, "title": "API Design"}`))
	})
	mux.HandleFunc("/repos/acme/shop/issues", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&issueReq)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 7, "html_url": "https://github.com/acme/shop/issues/7"}`))
	})
	mux.HandleFunc("/repos/acme/missing/issues", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := gh.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	ctx := context.Background()
	repo := NewGitHubRepositoryWithClient(client, &config.GitHubConfig{Owner: "acme", Repo: "shop"})

	number, err := repo.CreateMilestone(ctx, "API Design", "Phase 1")
	require.NoError(t, err)
	assert.Equal(t, 3, number)

	issue, link, err := repo.CreateIssue(ctx, "Define Endpoints", "body", []string{"design"}, number)
	require.NoError(t, err)
	assert.Equal(t, 7, issue)
	assert.Equal(t, "https://github.com/acme/shop/issues/7", link)
	assert.Equal(t, "Define Endpoints", issueReq["title"])
	assert.Equal(t, float64(3), issueReq["milestone"])
	assert.Equal(t, []interface{}{"design"}, issueReq["labels"])

	missing := NewGitHubRepositoryWithClient(client, &config.GitHubConfig{Owner: "acme", Repo: "missing"})
	_, _, err = missing.CreateIssue(ctx, "x", "y", nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository not found")
}
