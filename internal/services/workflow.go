package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"workflow-planner/internal/config"
	"workflow-planner/internal/extractor"
	"workflow-planner/internal/formatter"
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
	"workflow-planner/internal/pipeline"
	"workflow-planner/internal/repositories"
)

// WorkflowService loads documents, runs the pipeline and saves results
type WorkflowService struct {
	config *config.Config
	docs   *repositories.DocumentRepository
	now    func() time.Time
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(cfg *config.Config) *WorkflowService {
	if cfg == nil {
		cfg = config.Default()
	}
	return &WorkflowService{
		config: cfg,
		docs:   repositories.NewDocumentRepository(),
		now:    time.Now,
	}
}

// Limits maps the extraction section of the config onto extractor limits.
func (s *WorkflowService) Limits() extractor.Limits {
	e := s.config.Extraction
	return extractor.Limits{
		Features:     e.MaxFeatures,
		Components:   e.MaxComponents,
		Pages:        e.MaxPages,
		Integrations: e.MaxIntegrations,
		Roles:        e.MaxRoles,
		Criteria:     e.MaxCriteria,
		Constraints:  e.MaxConstraints,
	}
}

// Options returns the pipeline options configured in the pipeline section.
// Callers override individual fields from flags or tool arguments.
func (s *WorkflowService) Options() pipeline.Options {
	p := s.config.Pipeline
	return pipeline.Options{
		Viewpoint:              p.Viewpoint,
		Strategy:               p.Strategy,
		IncludeDependencies:    p.IncludeDependencies,
		IncludeRisks:           p.IncludeRisks,
		IncludeEstimates:       p.IncludeEstimates,
		IncludeParallelStreams: p.IncludeParallelStreams,
		IncludeMilestones:      p.IncludeMilestones,
		RunQualityGates:        p.RunQualityGates,
		Limits:                 s.Limits(),
	}
}

// LoadDocument resolves input as a file path or, when asText is set or no
// file exists there, as literal requirements text.
func (s *WorkflowService) LoadDocument(input string, asText bool) (models.Document, error) {
	if asText {
		if strings.TrimSpace(input) == "" {
			return models.Document{}, fmt.Errorf("no requirements given")
		}
		return s.docs.LoadText(input), nil
	}
	return s.docs.Load(input)
}

// Generate runs the pipeline over a document and wraps the workflow in a
// result envelope with a fresh run ID.
func (s *WorkflowService) Generate(doc models.Document, opts pipeline.Options) (*models.WorkflowResult, error) {
	helpers.PrintDebug("generating workflow: source=%q kind=%s strategy=%q viewpoint=%q",
		doc.Name, doc.SourceKind, opts.Strategy, opts.Viewpoint)

	wf, req, err := pipeline.RunWithRequirements(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate workflow: %w", err)
	}

	helpers.PrintDebug("extracted %d features, %d components, %d integrations; complexity %.2f",
		len(req.Features), len(req.Components), len(req.Integrations), req.Complexity)
	helpers.PrintDebug("viewpoint %s produced %d phases, %d tasks", wf.Viewpoint, len(wf.Phases), wf.TaskCount())

	source := doc.Name
	if source == "" {
		source = helpers.Truncate(doc.Text, 80)
	}

	return &models.WorkflowResult{
		RunID:        uuid.NewString(),
		GeneratedAt:  s.now(),
		Source:       source,
		SourceKind:   doc.SourceKind,
		Requirements: req,
		Workflow:     *wf,
	}, nil
}

// Analyze extracts and scores a document without building a plan.
func (s *WorkflowService) Analyze(doc models.Document) (*pipeline.Analysis, error) {
	analysis, err := pipeline.Analyze(doc, s.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to analyze requirements: %w", err)
	}
	return analysis, nil
}

// DisplayWorkflow prints a short summary of the workflow
func (s *WorkflowService) DisplayWorkflow(wf *models.Workflow) {
	helpers.PrintTitle("Workflow: %s", displayTitle(wf.Title))
	helpers.PrintInfo("Viewpoint: %s | Strategy: %s", wf.Viewpoint, wf.Strategy)
	helpers.PrintInfo("Estimated duration: %s | Complexity: %.2f | Risk: %s",
		wf.Metadata.EstimatedDuration, wf.Metadata.Complexity, wf.Metadata.RiskLevel)
	helpers.PrintSeparator()

	for i, p := range wf.Phases {
		helpers.PrintInfo("Phase %d: %s (%s, %s)", i+1, p.Name, helpers.Pluralize(len(p.Tasks), "task"), p.Duration)
	}
	helpers.PrintSeparator()

	if q := wf.QualityGateResult; q != nil {
		if q.Overall.Passed {
			helpers.PrintSuccess("Quality gates passed (%.2f)", q.Overall.Score)
		} else {
			helpers.PrintWarning("Quality gates failed (%.2f of %.2f)", q.Overall.Score, q.Overall.Threshold)
			for _, b := range q.Blockers {
				helpers.PrintWarning("  Blocker: %s", b)
			}
		}
	}
	if r := wf.Risks; r != nil {
		helpers.PrintInfo("Risk score %.2f (%s), %s", r.Score, r.Level, helpers.Pluralize(len(r.Risks), "risk"))
	}

	helpers.PrintInfo("Summary: %s, %s", helpers.Pluralize(len(wf.Phases), "phase"), helpers.Pluralize(wf.TaskCount(), "task"))
}

// DisplayAnalysis prints extracted requirements and scores
func (s *WorkflowService) DisplayAnalysis(a *pipeline.Analysis) {
	req := a.Requirements
	helpers.PrintTitle("Requirements: %s", displayTitle(req.Title))
	if req.Overview != "" {
		helpers.PrintInfo("Overview: %s", req.Overview)
	}
	helpers.PrintSeparator()

	for _, f := range req.Features {
		helpers.PrintInfo("  • %s (priority %s, complexity %s)", f.Name, f.Priority, f.Complexity)
	}
	printList("Components", req.Components)
	printList("Pages", req.Pages)
	printList("Integrations", req.Integrations)
	printList("User roles", req.UserRoles)
	printList("Domains", req.Domains)
	printList("Patterns", req.Patterns)
	helpers.PrintInfo("Acceptance criteria: %d | Constraints: %d", len(req.AcceptanceCriteria), len(req.Constraints))
	helpers.PrintSeparator()

	helpers.PrintInfo("Complexity: %.2f | Risk: %s | Duration: %s",
		a.Signals.Complexity, a.Signals.RiskLevel, helpers.Pluralize(a.Signals.DurationWeeks, "week"))
	helpers.PrintInfo("Suggested viewpoint: %s", a.Viewpoint)
}

func printList(label string, items []string) {
	if len(items) > 0 {
		helpers.PrintInfo("%s: %s", label, strings.Join(items, ", "))
	}
}

func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

// SaveWorkflowResult writes the rendered workflow and, when configured, the
// JSON result envelope. It returns the written paths.
func (s *WorkflowService) SaveWorkflowResult(result *models.WorkflowResult, format, outputDir string) ([]string, error) {
	if err := helpers.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	rendered, err := formatter.String(&result.Workflow, format)
	if err != nil {
		return nil, fmt.Errorf("failed to render workflow: %w", err)
	}

	prefix := helpers.Slugify(result.Workflow.Title)
	if prefix == "" {
		prefix = "workflow"
	}

	var paths []string
	renderedPath := helpers.GetOutputPath(outputDir, helpers.GenerateOutputFilename(prefix, formatter.Extension(format), result.GeneratedAt))
	if err := helpers.SaveText(rendered, renderedPath); err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}
	paths = append(paths, renderedPath)

	if s.config.Output.SaveJSON && format != "json" {
		resultPath := helpers.GetOutputPath(outputDir, helpers.GenerateOutputFilename(prefix+"-result", "json", result.GeneratedAt))
		if err := helpers.SaveJSON(result, resultPath); err != nil {
			return nil, fmt.Errorf("failed to save result: %w", err)
		}
		paths = append(paths, resultPath)
	}

	return paths, nil
}

// LoadWorkflowResult reads a saved result envelope. A bare workflow JSON
// file is accepted too.
func (s *WorkflowService) LoadWorkflowResult(path string) (*models.WorkflowResult, error) {
	var result models.WorkflowResult
	if err := helpers.LoadJSON(path, &result); err != nil {
		return nil, fmt.Errorf("failed to load workflow result: %w", err)
	}
	if len(result.Workflow.Phases) > 0 || result.Workflow.Title != "" {
		return &result, nil
	}

	var wf models.Workflow
	if err := helpers.LoadJSON(path, &wf); err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	result.Workflow = wf
	return &result, nil
}
