package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"workflow-planner/internal/models"
)

// DefaultPath is where the CLI looks for configuration when --config is not given.
const DefaultPath = "workflow-planner.yaml"

// Config represents the application configuration
type Config struct {
	Pipeline   PipelineConfig   `yaml:"pipeline" toml:"pipeline"`
	Extraction ExtractionConfig `yaml:"extraction" toml:"extraction"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Jira       JiraConfig       `yaml:"jira" toml:"jira"`
	GitHub     GitHubConfig     `yaml:"github" toml:"github"`
}

// PipelineConfig holds the default pipeline options. CLI flags override them.
type PipelineConfig struct {
	Strategy               string `yaml:"strategy" toml:"strategy"`
	Viewpoint              string `yaml:"viewpoint,omitempty" toml:"viewpoint"`
	IncludeDependencies    bool   `yaml:"include_dependencies" toml:"include_dependencies"`
	IncludeRisks           bool   `yaml:"include_risks" toml:"include_risks"`
	IncludeEstimates       bool   `yaml:"include_estimates" toml:"include_estimates"`
	IncludeParallelStreams bool   `yaml:"include_parallel_streams" toml:"include_parallel_streams"`
	IncludeMilestones      bool   `yaml:"include_milestones" toml:"include_milestones"`
	RunQualityGates        bool   `yaml:"run_quality_gates" toml:"run_quality_gates"`
}

// ExtractionConfig bounds how many items each extractor may return.
type ExtractionConfig struct {
	MaxFeatures     int `yaml:"max_features" toml:"max_features"`
	MaxComponents   int `yaml:"max_components" toml:"max_components"`
	MaxPages        int `yaml:"max_pages" toml:"max_pages"`
	MaxIntegrations int `yaml:"max_integrations" toml:"max_integrations"`
	MaxRoles        int `yaml:"max_roles" toml:"max_roles"`
	MaxCriteria     int `yaml:"max_criteria" toml:"max_criteria"`
	MaxConstraints  int `yaml:"max_constraints" toml:"max_constraints"`
}

// OutputConfig controls rendering and saving.
type OutputConfig struct {
	Format   string `yaml:"format" toml:"format"`
	Dir      string `yaml:"dir" toml:"dir"`
	SaveJSON bool   `yaml:"save_json" toml:"save_json"`
}

// JiraConfig represents JIRA API configuration
type JiraConfig struct {
	BaseURL           string  `yaml:"base_url" toml:"base_url"`
	Username          string  `yaml:"username" toml:"username"`
	APIToken          string  `yaml:"api_token" toml:"api_token"`
	ProjectKey        string  `yaml:"project_key" toml:"project_key"`
	Timeout           int     `yaml:"timeout_seconds" toml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second" toml:"requests_per_second"`
}

// GitHubConfig configures the GitHub issue exporter.
type GitHubConfig struct {
	Owner             string  `yaml:"owner" toml:"owner"`
	Repo              string  `yaml:"repo" toml:"repo"`
	Token             string  `yaml:"token,omitempty" toml:"token"`
	RequestsPerSecond float64 `yaml:"requests_per_second" toml:"requests_per_second"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Strategy: "systematic",
		},
		Extraction: ExtractionConfig{
			MaxFeatures:     10,
			MaxComponents:   15,
			MaxPages:        12,
			MaxIntegrations: 10,
			MaxRoles:        8,
			MaxCriteria:     20,
			MaxConstraints:  10,
		},
		Output: OutputConfig{
			Format: "detailed",
			Dir:    "./output",
		},
		Jira: JiraConfig{
			Timeout:           30,
			RequestsPerSecond: 5,
		},
		GitHub: GitHubConfig{
			RequestsPerSecond: 1,
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file. A missing file at
// the default path is not an error: the defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && configPath == DefaultPath {
			config.applyDefaults()
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Pipeline.Strategy == "" {
		c.Pipeline.Strategy = def.Pipeline.Strategy
	}
	limits := []struct {
		value *int
		def   int
	}{
		{&c.Extraction.MaxFeatures, def.Extraction.MaxFeatures},
		{&c.Extraction.MaxComponents, def.Extraction.MaxComponents},
		{&c.Extraction.MaxPages, def.Extraction.MaxPages},
		{&c.Extraction.MaxIntegrations, def.Extraction.MaxIntegrations},
		{&c.Extraction.MaxRoles, def.Extraction.MaxRoles},
		{&c.Extraction.MaxCriteria, def.Extraction.MaxCriteria},
		{&c.Extraction.MaxConstraints, def.Extraction.MaxConstraints},
	}
	for _, l := range limits {
		if *l.value == 0 {
			*l.value = l.def
		}
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Jira.Timeout == 0 {
		c.Jira.Timeout = def.Jira.Timeout
	}
	if c.Jira.RequestsPerSecond == 0 {
		c.Jira.RequestsPerSecond = def.Jira.RequestsPerSecond
	}
	if c.GitHub.RequestsPerSecond == 0 {
		c.GitHub.RequestsPerSecond = def.GitHub.RequestsPerSecond
	}
	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if c.Jira.APIToken == "" {
		c.Jira.APIToken = os.Getenv("JIRA_API_TOKEN")
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !contains(models.StrategyNames(), c.Pipeline.Strategy) {
		return fmt.Errorf("unknown strategy %q (want one of %s)", c.Pipeline.Strategy, strings.Join(models.StrategyNames(), ", "))
	}

	if c.Pipeline.Viewpoint != "" && !contains(models.ViewpointNames(), c.Pipeline.Viewpoint) {
		return fmt.Errorf("unknown viewpoint %q (want one of %s)", c.Pipeline.Viewpoint, strings.Join(models.ViewpointNames(), ", "))
	}

	if !contains(models.OutputFormats(), c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(models.OutputFormats(), ", "))
	}

	e := c.Extraction
	for name, v := range map[string]int{
		"max_features":     e.MaxFeatures,
		"max_components":   e.MaxComponents,
		"max_pages":        e.MaxPages,
		"max_integrations": e.MaxIntegrations,
		"max_roles":        e.MaxRoles,
		"max_criteria":     e.MaxCriteria,
		"max_constraints":  e.MaxConstraints,
	} {
		if v < 0 {
			return fmt.Errorf("extraction.%s must not be negative", name)
		}
	}

	return nil
}

// Validate checks the fields the JIRA exporter needs.
func (c *JiraConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("JIRA base URL is required")
	}

	if c.Username == "" {
		return fmt.Errorf("JIRA username is required")
	}

	if c.APIToken == "" {
		return fmt.Errorf("JIRA API token is required")
	}

	if c.ProjectKey == "" {
		return fmt.Errorf("JIRA project key is required")
	}

	return nil
}

// Validate checks the fields the GitHub exporter needs.
func (c *GitHubConfig) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("GitHub owner and repo are required")
	}

	if c.Token == "" {
		return fmt.Errorf("GitHub token is required (set github.token or GITHUB_TOKEN)")
	}

	return nil
}

// WriteSample writes a starter YAML config.
func WriteSample(configPath string) error {
	sample := Default()
	sample.Pipeline.IncludeDependencies = true
	sample.Pipeline.IncludeRisks = true
	sample.Pipeline.IncludeEstimates = true
	sample.Pipeline.RunQualityGates = true
	sample.Jira.BaseURL = "https://your-domain.atlassian.net"
	sample.Jira.Username = "your-email@example.com"
	sample.Jira.APIToken = "your-jira-api-token"
	sample.Jira.ProjectKey = "PROJ"
	sample.GitHub.Owner = "your-org"
	sample.GitHub.Repo = "your-repo"

	data, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
