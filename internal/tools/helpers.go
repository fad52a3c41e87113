// Package tools implements the MCP tool handlers. Each tool holds the
// pipeline options configured for the server and overrides them from the
// call's arguments.
package tools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"workflow-planner/internal/models"
)

func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// documentArg builds the document from the "requirements" and optional
// "filename" arguments. A filename marks the text as a structured document.
func documentArg(req mcp.CallToolRequest) (models.Document, bool) {
	text := req.GetString("requirements", "")
	if strings.TrimSpace(text) == "" {
		return models.Document{}, false
	}
	if name := strings.TrimSpace(req.GetString("filename", "")); name != "" {
		return models.Document{Name: name, Text: text, SourceKind: models.SourceStructured}, true
	}
	return models.Document{Text: text, SourceKind: models.SourceFreeform}, true
}

func documentOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("requirements",
			mcp.Required(),
			mcp.Description("Requirements text: a PRD in markdown or a free-form description"),
		),
		mcp.WithString("filename",
			mcp.Description("File name of the document (e.g. prd.md). When set, the text is parsed by its section headings"),
		),
	}
}
