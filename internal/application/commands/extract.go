package commands

import (
	"context"
	"fmt"

	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// ExtractResult contains the result of a skill extraction
type ExtractResult struct {
	Steps   []domain.ProcedureStep
	Count   int
	Message string
}

// ExtractCommand runs the heuristic text-to-steps pipeline. It has no
// failure modes: empty or unstructured content yields an empty result.
type ExtractCommand struct {
	Content          string
	RefinementPrompt string

	classifier ports.StepClassifier
}

// NewExtractCommand creates a new ExtractCommand
func NewExtractCommand(content, refinementPrompt string) *ExtractCommand {
	return &ExtractCommand{
		Content:          content,
		RefinementPrompt: refinementPrompt,
	}
}

// WithClassifier substitutes the step classifier.
func (c *ExtractCommand) WithClassifier(classifier ports.StepClassifier) *ExtractCommand {
	c.classifier = classifier
	return c
}

// Execute runs the extract command
func (c *ExtractCommand) Execute(ctx context.Context) (*ExtractResult, error) {
	extractor := domain.NewExtractor(c.classifier)
	steps := extractor.Extract(c.Content, c.RefinementPrompt)

	return &ExtractResult{
		Steps:   steps,
		Count:   len(steps),
		Message: fmt.Sprintf("Extracted %d steps", len(steps)),
	}, nil
}
