// Package server wires the MCP tools into a stdio server.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"workflow-planner/internal/config"
	"workflow-planner/internal/services"
	"workflow-planner/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every tool registered. Tool defaults come
// from the pipeline and extraction sections of cfg.
func New(cfg *config.Config) *server.MCPServer {
	if cfg == nil {
		cfg = config.Default()
	}
	workflows := services.NewWorkflowService(cfg)

	s := server.NewMCPServer(
		"workflow-planner",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	planTool := tools.NewPlanWorkflowTool(workflows.Options(), cfg.Output.Format)
	s.AddTool(planTool.Definition(), planTool.Handle)

	analyzeTool := tools.NewAnalyzeRequirementsTool(workflows.Limits())
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	viewpointsTool := tools.NewListViewpointsTool()
	s.AddTool(viewpointsTool.Definition(), viewpointsTool.Handle)

	strategiesTool := tools.NewListStrategiesTool()
	s.AddTool(strategiesTool.Definition(), strategiesTool.Handle)

	return s
}

func serverInstructions() string {
	return `workflow-planner turns requirements documents into phased delivery plans.

- Call analyze_requirements to see what was extracted from a document and which viewpoint fits it.
- Call plan_workflow to build the plan. Pass the document text as "requirements"; pass "filename"
  (e.g. prd.md) when the text is a markdown PRD with section headings.
- Use list_viewpoints and list_strategies to pick a viewpoint or strategy explicitly.
- Set include_all to attach dependencies, risks, quality gates, estimates, parallel streams and milestones.`
}
