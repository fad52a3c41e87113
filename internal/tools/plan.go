package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"workflow-planner/internal/formatter"
	"workflow-planner/internal/models"
	"workflow-planner/internal/pipeline"
)

// PlanWorkflowTool handles the plan_workflow MCP tool.
type PlanWorkflowTool struct {
	defaults pipeline.Options
	format   string
}

// NewPlanWorkflowTool creates a PlanWorkflowTool with default options and format.
func NewPlanWorkflowTool(defaults pipeline.Options, format string) *PlanWorkflowTool {
	if format == "" {
		format = "detailed"
	}
	return &PlanWorkflowTool{defaults: defaults, format: format}
}

// Definition returns the MCP tool definition for registration.
func (t *PlanWorkflowTool) Definition() mcp.Tool {
	opts := append(documentOptions(),
		mcp.WithDescription(
			"Turn a requirements document into a phased workflow plan. "+
				"The viewpoint is inferred from the text unless one is given.",
		),
		mcp.WithString("viewpoint",
			mcp.Description("Planning viewpoint; inferred when omitted"),
			mcp.Enum(models.ViewpointNames()...),
		),
		mcp.WithString("strategy",
			mcp.Description("Synthesis strategy (default: systematic)"),
			mcp.Enum(models.StrategyNames()...),
		),
		mcp.WithString("format",
			mcp.Description("Output format (default: detailed)"),
			mcp.Enum(models.OutputFormats()...),
		),
		mcp.WithBoolean("include_all",
			mcp.Description("Run every analysis pass"),
		),
		mcp.WithBoolean("include_dependencies",
			mcp.Description("Attach the dependency analysis"),
		),
		mcp.WithBoolean("include_risks",
			mcp.Description("Attach the risk assessment"),
		),
		mcp.WithBoolean("include_estimates",
			mcp.Description("Attach effort estimates"),
		),
		mcp.WithBoolean("include_parallel_streams",
			mcp.Description("Attach parallel work streams"),
		),
		mcp.WithBoolean("include_milestones",
			mcp.Description("Attach milestones"),
		),
		mcp.WithBoolean("run_quality_gates",
			mcp.Description("Score the plan against the quality gates"),
		),
	)
	return mcp.NewTool("plan_workflow", opts...)
}

// options merges call arguments over the configured defaults.
func (t *PlanWorkflowTool) options(req mcp.CallToolRequest) pipeline.Options {
	opts := t.defaults
	opts.Viewpoint = req.GetString("viewpoint", opts.Viewpoint)
	opts.Strategy = req.GetString("strategy", opts.Strategy)
	if boolArg(req, "include_all", false) {
		return opts.WithAllPasses()
	}
	opts.IncludeDependencies = boolArg(req, "include_dependencies", opts.IncludeDependencies)
	opts.IncludeRisks = boolArg(req, "include_risks", opts.IncludeRisks)
	opts.IncludeEstimates = boolArg(req, "include_estimates", opts.IncludeEstimates)
	opts.IncludeParallelStreams = boolArg(req, "include_parallel_streams", opts.IncludeParallelStreams)
	opts.IncludeMilestones = boolArg(req, "include_milestones", opts.IncludeMilestones)
	opts.RunQualityGates = boolArg(req, "run_quality_gates", opts.RunQualityGates)
	return opts
}

// Handle processes the plan_workflow tool call.
func (t *PlanWorkflowTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, ok := documentArg(req)
	if !ok {
		return mcp.NewToolResultError("'requirements' is required"), nil
	}

	wf, err := pipeline.Run(doc, t.options(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := formatter.String(wf, req.GetString("format", t.format))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering workflow: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
