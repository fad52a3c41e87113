package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	gh "github.com/google/go-github/v80/github"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-planner/internal/config"
	"workflow-planner/internal/models"
	"workflow-planner/internal/repositories"
)

const apiText = "Implement REST API with authentication and PostgreSQL database integration"

func fixedService(cfg *config.Config) *WorkflowService {
	s := NewWorkflowService(cfg)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return s
}

func TestWorkflowService_OptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.Strategy = "iterative"
	cfg.Pipeline.Viewpoint = "qa"
	cfg.Pipeline.IncludeRisks = true
	cfg.Extraction.MaxFeatures = 3

	opts := NewWorkflowService(cfg).Options()
	assert.Equal(t, "iterative", opts.Strategy)
	assert.Equal(t, "qa", opts.Viewpoint)
	assert.True(t, opts.IncludeRisks)
	assert.False(t, opts.IncludeDependencies)
	assert.Equal(t, 3, opts.Limits.Features)
	assert.Equal(t, 15, opts.Limits.Components)
}

func TestWorkflowService_LoadDocument(t *testing.T) {
	s := NewWorkflowService(nil)

	path := filepath.Join(t.TempDir(), "prd.md")
	require.NoError(t, os.WriteFile(path, []byte("# Shop\n"), 0644))

	doc, err := s.LoadDocument(path, false)
	require.NoError(t, err)
	assert.Equal(t, models.SourceStructured, doc.SourceKind)

	doc, err = s.LoadDocument(path, true)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFreeform, doc.SourceKind)
	assert.Equal(t, path, doc.Text)

	_, err = s.LoadDocument("", true)
	assert.Error(t, err)
}

func TestWorkflowService_Generate(t *testing.T) {
	s := fixedService(config.Default())
	doc, err := s.LoadDocument(apiText, false)
	require.NoError(t, err)

	result, err := s.Generate(doc, s.Options().WithAllPasses())
	require.NoError(t, err)

	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "backend", result.Workflow.Viewpoint)
	assert.Equal(t, models.SourceFreeform, result.SourceKind)
	assert.Equal(t, apiText, result.Source)
	require.NotNil(t, result.Requirements)
	assert.NotNil(t, result.Workflow.QualityGateResult)

	again, err := s.Generate(doc, s.Options().WithAllPasses())
	require.NoError(t, err)
	assert.NotEqual(t, result.RunID, again.RunID)
	assert.Equal(t, result.Workflow, again.Workflow)
}

func TestWorkflowService_GenerateErrors(t *testing.T) {
	s := NewWorkflowService(nil)
	opts := s.Options()
	opts.Strategy = "waterfall"

	_, err := s.Generate(models.Document{Text: apiText, SourceKind: models.SourceFreeform}, opts)
	assert.ErrorIs(t, err, models.ErrUnknownStrategy)

	_, err = s.Generate(models.Document{Name: "brief.pdf", Text: "x", SourceKind: models.SourceStructured}, s.Options())
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}

func TestWorkflowService_Analyze(t *testing.T) {
	s := NewWorkflowService(nil)
	analysis, err := s.Analyze(models.Document{Text: apiText, SourceKind: models.SourceFreeform})
	require.NoError(t, err)
	assert.Equal(t, "backend", analysis.Viewpoint)
	assert.Contains(t, analysis.Requirements.Patterns, models.PatternAPI)
}

func TestWorkflowService_SaveAndLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Output.SaveJSON = true
	s := fixedService(cfg)

	result, err := s.Generate(models.Document{Text: apiText, SourceKind: models.SourceFreeform}, s.Options())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := s.SaveWorkflowResult(result, "roadmap", dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.HasSuffix(paths[0], "-20260301-093000.md"), paths[0])
	assert.True(t, strings.HasSuffix(paths[1], "-result-20260301-093000.json"), paths[1])

	rendered, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "## Roadmap")

	loaded, err := s.LoadWorkflowResult(paths[1])
	require.NoError(t, err)
	assert.Equal(t, result.RunID, loaded.RunID)
	require.Len(t, loaded.Workflow.Phases, len(result.Workflow.Phases))
	for i, p := range result.Workflow.Phases {
		assert.Equal(t, p.Name, loaded.Workflow.Phases[i].Name)
		assert.Len(t, loaded.Workflow.Phases[i].Tasks, len(p.Tasks))
	}

	_, err = s.SaveWorkflowResult(result, "pdf", dir)
	assert.ErrorIs(t, err, models.ErrUnknownOutputFormat)
}

func TestWorkflowService_LoadBareWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wf.json")
	data, err := json.Marshal(models.Workflow{Title: "Bare", Phases: []models.Phase{{Name: "One"}}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := NewWorkflowService(nil).LoadWorkflowResult(path)
	require.NoError(t, err)
	assert.Equal(t, "Bare", loaded.Workflow.Title)
	assert.Empty(t, loaded.RunID)
}

func exportWorkflow() *models.Workflow {
	return &models.Workflow{
		Title: "Shop",
		Phases: []models.Phase{
			{Name: "API Design", Type: "design", Description: "Contracts", Tasks: []models.Task{
				{Type: models.TaskDesign, Title: "Define Endpoints", Priority: models.PriorityHigh, AcceptanceCriteria: []string{"Documented"}},
				{Type: models.TaskDocumentation, Title: "Publish Docs"},
			}},
			{Name: "Backend Testing", Type: "testing", Tasks: []models.Task{
				{Type: models.TaskTesting, Title: "Write Integration Tests", Dependencies: []string{"Define Endpoints"}},
			}},
		},
	}
}

type jiraRecorder struct {
	mu     sync.Mutex
	issues []models.JiraIssue
	fail   map[string]bool
}

func (rec *jiraRecorder) handler(w http.ResponseWriter, r *http.Request) {
	var issue models.JiraIssue
	if err := json.NewDecoder(r.Body).Decode(&issue); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if rec.fail[issue.Fields.Summary] {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	rec.mu.Lock()
	rec.issues = append(rec.issues, issue)
	n := len(rec.issues)
	rec.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(models.JiraResponse{Key: "PROJ-" + string(rune('0'+n))})
}

func newTestJiraService(t *testing.T, rec *jiraRecorder) *JiraService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(rec.handler))
	t.Cleanup(srv.Close)
	s := NewJiraService(&config.JiraConfig{BaseURL: srv.URL, Username: "u", APIToken: "t", ProjectKey: "PROJ", Timeout: 5})
	s.retryDelay = time.Millisecond
	return s
}

func TestJiraService_ExportWorkflow(t *testing.T) {
	rec := &jiraRecorder{}
	s := newTestJiraService(t, rec)

	summary, err := s.ExportWorkflow(context.Background(), exportWorkflow(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROJ-1", "PROJ-4"}, summary.Epics)
	assert.Equal(t, []string{"PROJ-2", "PROJ-3", "PROJ-5"}, summary.Tasks)
	assert.Zero(t, summary.Skipped)

	require.Len(t, rec.issues, 5)
	epic := rec.issues[0].Fields
	assert.Equal(t, "API Design", epic.Summary)
	assert.Equal(t, models.JiraIssueTypeEpic, epic.IssueType.Name)
	assert.Nil(t, epic.Parent)

	task := rec.issues[1].Fields
	assert.Equal(t, "Define Endpoints", task.Summary)
	assert.Equal(t, models.JiraIssueTypeTask, task.IssueType.Name)
	require.NotNil(t, task.Parent)
	assert.Equal(t, "PROJ-1", task.Parent.Key)
	assert.Equal(t, []string{"design", "priority-high"}, task.Labels)
	assert.Contains(t, task.Description, "*Acceptance Criteria:*")
}

func TestJiraService_ExportSkipsFailedTasks(t *testing.T) {
	rec := &jiraRecorder{fail: map[string]bool{"Publish Docs": true}}
	s := newTestJiraService(t, rec)

	summary, err := s.ExportWorkflow(context.Background(), exportWorkflow(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, summary.Tasks, 2)
}

func TestJiraService_DryRun(t *testing.T) {
	rec := &jiraRecorder{}
	s := newTestJiraService(t, rec)

	summary, err := s.ExportWorkflow(context.Background(), exportWorkflow(), true)
	require.NoError(t, err)
	assert.Empty(t, rec.issues)
	assert.Equal(t, []string{"DRY-1", "DRY-2"}, summary.Epics)
	assert.Len(t, summary.Tasks, 3)
}

func TestJiraPlan_IterativeExportsEpics(t *testing.T) {
	wf := &models.Workflow{
		Phases: []models.Phase{{Name: "Sprint 1", Type: "sprint"}},
		Epics: []models.Epic{{
			Title:    "Checkout",
			Priority: models.PriorityHigh,
			Stories:  []models.Story{{Title: "Pay by card", StoryPoints: 5, AcceptanceCriteria: []string{"Card charged"}}},
		}},
	}

	items := jiraPlan(wf)
	require.Len(t, items, 1)
	assert.Equal(t, "Checkout", items[0].title)
	require.Len(t, items[0].children, 1)
	assert.Equal(t, []string{models.TaskUserStory}, items[0].children[0].labels)
	assert.Contains(t, items[0].children[0].description, "*Story Points:* 5")
}

func TestGitHubService_ExportWorkflow(t *testing.T) {
	var mu sync.Mutex
	var milestones, issues int
	var lastIssue map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/shop/milestones", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		milestones++
		n := milestones
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"number": n})
	})
	mux.HandleFunc("/repos/acme/shop/issues", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		issues++
		n := issues
		_ = json.NewDecoder(r.Body).Decode(&lastIssue)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"number": n, "html_url": "https://github.com/acme/shop/issues/" + string(rune('0'+n))})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := gh.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	s := NewGitHubServiceWithRepository(repositories.NewGitHubRepositoryWithClient(client, &config.GitHubConfig{Owner: "acme", Repo: "shop"}))

	summary, err := s.ExportWorkflow(context.Background(), exportWorkflow(), false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, summary.Milestones)
	assert.Equal(t, []string{
		"https://github.com/acme/shop/issues/1",
		"https://github.com/acme/shop/issues/2",
		"https://github.com/acme/shop/issues/3",
	}, summary.Issues)
	assert.Equal(t, "Write Integration Tests", lastIssue["title"])
	assert.Equal(t, float64(2), lastIssue["milestone"])
	assert.Contains(t, lastIssue["body"], "**Depends on:** Define Endpoints")

	dry, err := s.ExportWorkflow(context.Background(), exportWorkflow(), true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, dry.Milestones)
	assert.Equal(t, 2, milestones)
}

func TestIssueBodyAndLabels(t *testing.T) {
	task := models.Task{
		Type:               models.TaskTesting,
		Title:              "Load Test",
		Description:        "Hit the API",
		EstimatedHours:     6,
		Priority:           models.PriorityMedium,
		AcceptanceCriteria: []string{"p95 under 200ms"},
	}
	assert.Equal(t, []string{"testing", "priority:medium"}, issueLabels(task))
	assert.Equal(t, "Hit the API\n\n**Estimate:** 6h\n\n### Acceptance Criteria\n- [ ] p95 under 200ms", issueBody(task))
	assert.Empty(t, issueLabels(models.Task{}))
}

func TestIsRelevant(t *testing.T) {
	target := filepath.Clean("/work/prd.md")
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "/work/prd.md", Op: fsnotify.Write}, true},
		{"create after rename save", fsnotify.Event{Name: "/work/prd.md", Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: "/work/prd.md", Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: "/work/prd.md", Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: "/work/notes.md", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRelevant(tt.event, target))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prd.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- NewWatcher(path, 20*time.Millisecond).Run(ctx, func() error {
			changed <- struct{}{}
			return nil
		})
	}()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(path, []byte("# Two\n"), 0644)
	}()

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change callback")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
