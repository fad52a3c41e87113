package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"workflow-planner/internal/pipeline"
)

// ListViewpointsTool handles the list_viewpoints MCP tool.
type ListViewpointsTool struct{}

// NewListViewpointsTool creates a ListViewpointsTool.
func NewListViewpointsTool() *ListViewpointsTool {
	return &ListViewpointsTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ListViewpointsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_viewpoints",
		mcp.WithDescription("List the planning viewpoints with their best practices and quality gates."),
	)
}

// Handle processes the list_viewpoints tool call.
func (t *ListViewpointsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("# Viewpoints\n")
	for _, vp := range pipeline.ListViewpoints() {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", vp.Name, vp.Description)
		if len(vp.QualityGates) > 0 {
			fmt.Fprintf(&sb, "\nQuality gates: %s\n", strings.Join(vp.QualityGates, ", "))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ListStrategiesTool handles the list_strategies MCP tool.
type ListStrategiesTool struct{}

// NewListStrategiesTool creates a ListStrategiesTool.
func NewListStrategiesTool() *ListStrategiesTool {
	return &ListStrategiesTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ListStrategiesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_strategies",
		mcp.WithDescription("List the workflow synthesis strategies."),
	)
}

// Handle processes the list_strategies tool call.
func (t *ListStrategiesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("# Strategies\n\n")
	for _, s := range pipeline.ListStrategies() {
		fmt.Fprintf(&sb, "- **%s**: %s\n", s.Name, s.Description)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
