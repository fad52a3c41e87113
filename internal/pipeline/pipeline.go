// Package pipeline assembles a workflow from a requirements document:
// extract, score, select a viewpoint, synthesize, then run the enabled
// enrichment passes.
package pipeline

import (
	"fmt"
	"strings"

	"workflow-planner/internal/enrichment"
	"workflow-planner/internal/extractor"
	"workflow-planner/internal/models"
	"workflow-planner/internal/scoring"
	"workflow-planner/internal/synthesis"
	"workflow-planner/internal/viewpoints"
)

// Options selects the viewpoint, strategy and enrichment passes of a run.
// The zero value runs the systematic strategy with an inferred viewpoint
// and no passes.
type Options struct {
	Viewpoint              string
	Strategy               string
	IncludeDependencies    bool
	IncludeRisks           bool
	IncludeEstimates       bool
	IncludeParallelStreams bool
	IncludeMilestones      bool
	RunQualityGates        bool
	Limits                 extractor.Limits
}

// WithAllPasses returns a copy of o with every enrichment pass enabled.
func (o Options) WithAllPasses() Options {
	o.IncludeDependencies = true
	o.IncludeRisks = true
	o.IncludeEstimates = true
	o.IncludeParallelStreams = true
	o.IncludeMilestones = true
	o.RunQualityGates = true
	return o
}

// Validate checks the strategy and viewpoint names against their catalogs.
func (o Options) Validate() error {
	if _, ok := models.ParseStrategy(o.Strategy); !ok {
		return fmt.Errorf("%w %q (want one of %s)", models.ErrUnknownStrategy, o.Strategy, strings.Join(models.StrategyNames(), ", "))
	}
	if o.Viewpoint != "" {
		if _, err := viewpoints.Lookup(o.Viewpoint); err != nil {
			return err
		}
	}
	return nil
}

// Analysis is the extraction and scoring half of a run.
type Analysis struct {
	Requirements *models.Requirements `json:"requirements"`
	Signals      scoring.Signals      `json:"signals"`
	Viewpoint    string               `json:"suggested_viewpoint"`
}

// Analyze extracts requirements and scores them without synthesizing a plan.
func Analyze(doc models.Document, limits extractor.Limits) (*Analysis, error) {
	req, err := extractor.Extract(doc, limits)
	if err != nil {
		return nil, fmt.Errorf("failed to extract requirements: %w", err)
	}
	return &Analysis{
		Requirements: req,
		Signals:      scoring.Score(req),
		Viewpoint:    viewpoints.Infer(req),
	}, nil
}

// Run produces the workflow for a document. Options are validated before any
// stage runs. The same document and options always yield the same workflow.
func Run(doc models.Document, opts Options) (*models.Workflow, error) {
	wf, _, err := RunWithRequirements(doc, opts)
	return wf, err
}

// RunWithRequirements is Run that also returns the extracted requirements.
func RunWithRequirements(doc models.Document, opts Options) (*models.Workflow, *models.Requirements, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	strategy, _ := models.ParseStrategy(opts.Strategy)

	req, err := extractor.Extract(doc, opts.Limits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract requirements: %w", err)
	}
	signals := scoring.Score(req)

	vp, err := viewpoints.Select(req, opts.Viewpoint)
	if err != nil {
		return nil, nil, err
	}

	plan, err := synthesis.Synthesize(req, vp, strategy)
	if err != nil {
		return nil, nil, err
	}

	wf := &models.Workflow{
		Title:     req.Title,
		Strategy:  strategy,
		Viewpoint: vp.Name(),
		Phases:    plan.Phases,
		Epics:     plan.Epics,
		Metadata: models.Metadata{
			EstimatedDuration: scoring.FormatWeeks(signals.DurationWeeks),
			DurationWeeks:     signals.DurationWeeks,
			Complexity:        signals.Complexity,
			RiskLevel:         signals.RiskLevel,
		},
		Guidance: models.Guidance{
			BestPractices: vp.BestPractices(),
			QualityGates:  vp.QualityGates(),
		},
	}
	if wf.Phases == nil {
		wf.Phases = []models.Phase{}
	}

	enrich(wf, opts)
	return wf, req, nil
}

// enrich attaches the enabled passes. The text view is built once and shared.
func enrich(wf *models.Workflow, opts Options) {
	view := enrichment.NewTextView(wf)

	if opts.IncludeDependencies {
		wf.Dependencies = enrichment.AnalyzeDependencies(wf, view)
	}
	if opts.IncludeRisks {
		wf.Risks = enrichment.AssessRisks(wf, view)
	}
	if opts.RunQualityGates {
		wf.QualityGateResult = enrichment.ValidateQualityGates(wf, view)
	}
	if opts.IncludeEstimates {
		wf.Estimates = enrichment.Estimate(wf)
	}
	if opts.IncludeParallelStreams {
		wf.ParallelStreams = enrichment.ParallelStreams(wf)
	}
	if opts.IncludeMilestones {
		wf.Milestones = enrichment.Milestones(wf)
	}
}
