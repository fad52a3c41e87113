package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"workflow-planner/internal/extractor"
	"workflow-planner/internal/pipeline"
)

// AnalyzeRequirementsTool handles the analyze_requirements MCP tool.
// It returns the extracted requirements and scores as JSON.
type AnalyzeRequirementsTool struct {
	limits extractor.Limits
}

// NewAnalyzeRequirementsTool creates an AnalyzeRequirementsTool.
func NewAnalyzeRequirementsTool(limits extractor.Limits) *AnalyzeRequirementsTool {
	return &AnalyzeRequirementsTool{limits: limits}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeRequirementsTool) Definition() mcp.Tool {
	opts := append(documentOptions(),
		mcp.WithDescription(
			"Extract features, components, integrations, roles, criteria and constraints "+
				"from a requirements document, with complexity, risk and duration scores "+
				"and the suggested viewpoint. Does not build a plan.",
		),
	)
	return mcp.NewTool("analyze_requirements", opts...)
}

// Handle processes the analyze_requirements tool call.
func (t *AnalyzeRequirementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, ok := documentArg(req)
	if !ok {
		return mcp.NewToolResultError("'requirements' is required"), nil
	}

	analysis, err := pipeline.Analyze(doc, t.limits)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding analysis: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
