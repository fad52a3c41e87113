package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "planner.yaml", `
pipeline:
  strategy: iterative
  viewpoint: backend
  include_risks: true
extraction:
  max_features: 4
output:
  format: roadmap
jira:
  base_url: https://example.atlassian.net
  project_key: PLAN
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "iterative", cfg.Pipeline.Strategy)
	assert.Equal(t, "backend", cfg.Pipeline.Viewpoint)
	assert.True(t, cfg.Pipeline.IncludeRisks)
	assert.Equal(t, 4, cfg.Extraction.MaxFeatures)
	assert.Equal(t, 15, cfg.Extraction.MaxComponents)
	assert.Equal(t, "roadmap", cfg.Output.Format)
	assert.Equal(t, "./output", cfg.Output.Dir)
	assert.Equal(t, 30, cfg.Jira.Timeout)
	assert.Equal(t, "PLAN", cfg.Jira.ProjectKey)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "planner.toml", `
[pipeline]
strategy = "minimum-scope"
run_quality_gates = true

[github]
owner = "acme"
repo = "chat"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "minimum-scope", cfg.Pipeline.Strategy)
	assert.True(t, cfg.Pipeline.RunQualityGates)
	assert.Equal(t, "acme", cfg.GitHub.Owner)
	assert.Equal(t, float64(1), cfg.GitHub.RequestsPerSecond)
	assert.Equal(t, "detailed", cfg.Output.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "systematic", cfg.Pipeline.Strategy)

	_, err = LoadConfig("elsewhere.yaml")
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"strategy", "pipeline:\n  strategy: waterfall\n", "unknown strategy"},
		{"viewpoint", "pipeline:\n  viewpoint: marketing\n", "unknown viewpoint"},
		{"format", "output:\n  format: pdf\n", "unknown output format"},
		{"negative cap", "extraction:\n  max_roles: -1\n", "extraction.max_roles"},
		{"malformed", "pipeline: [", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "c.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTokensFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "gh-env")
	t.Setenv("JIRA_API_TOKEN", "jira-env")

	cfg, err := LoadConfig(writeFile(t, "c.yaml", "github:\n  owner: acme\n"))
	require.NoError(t, err)
	assert.Equal(t, "gh-env", cfg.GitHub.Token)
	assert.Equal(t, "jira-env", cfg.Jira.APIToken)

	cfg, err = LoadConfig(writeFile(t, "c.yaml", "github:\n  token: from-file\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.GitHub.Token)
}

func TestExporterValidation(t *testing.T) {
	jira := JiraConfig{BaseURL: "https://x", Username: "u", APIToken: "t", ProjectKey: "P"}
	assert.NoError(t, jira.Validate())

	jira.ProjectKey = ""
	assert.EqualError(t, jira.Validate(), "JIRA project key is required")

	jira = JiraConfig{}
	assert.EqualError(t, jira.Validate(), "JIRA base URL is required")

	gh := GitHubConfig{Owner: "acme", Repo: "chat", Token: "t"}
	assert.NoError(t, gh.Validate())

	gh.Repo = ""
	assert.Error(t, gh.Validate())

	gh = GitHubConfig{Owner: "acme", Repo: "chat"}
	assert.Contains(t, gh.Validate().Error(), "GITHUB_TOKEN")
}

func TestWriteSampleRoundTrip(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, WriteSample(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Pipeline.IncludeDependencies)
	assert.True(t, cfg.Pipeline.RunQualityGates)
	assert.NoError(t, cfg.Jira.Validate())
	assert.Equal(t, "your-org", cfg.GitHub.Owner)
	assert.Empty(t, cfg.GitHub.Token)
}
