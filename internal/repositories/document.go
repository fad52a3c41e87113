package repositories

import (
	"fmt"
	"path/filepath"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

// DocumentRepository loads requirement documents from disk or literal text.
type DocumentRepository struct{}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// Load treats input as a path when a file exists there, producing a
// structured document named after the path. Anything else is freeform text.
func (r *DocumentRepository) Load(input string) (models.Document, error) {
	if strings.TrimSpace(input) == "" {
		return models.Document{}, fmt.Errorf("no requirements given")
	}

	if helpers.FileExists(input) {
		return r.LoadFile(input)
	}

	if looksLikePath(input) {
		helpers.PrintWarning("No file at %s; treating it as requirements text", input)
	}
	return r.LoadText(input), nil
}

// looksLikePath reports whether input is a single token with a file
// extension, such as a mistyped "prd.mdd".
func looksLikePath(input string) bool {
	input = strings.TrimSpace(input)
	if strings.ContainsAny(input, " \t\n") {
		return false
	}
	ext := filepath.Ext(input)
	return len(ext) > 1
}

// LoadFile reads a structured document from path.
func (r *DocumentRepository) LoadFile(path string) (models.Document, error) {
	content, err := helpers.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to load document: %w", err)
	}
	return models.Document{Name: path, Text: content, SourceKind: models.SourceStructured}, nil
}

// LoadText wraps literal text as a freeform document.
func (r *DocumentRepository) LoadText(text string) models.Document {
	return models.Document{Text: text, SourceKind: models.SourceFreeform}
}
