package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ingrain/internal/application"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// SaveResult contains the result of saving a procedure
type SaveResult struct {
	Procedure       *domain.Procedure
	FirstReviewDate domain.Date
	Message         string
}

// SaveCommand materializes a procedure record with its review schedule
// and stores it. StartDate defaults to today when zero; the zero value
// only exists so the scheduler itself stays free of wall-clock reads.
type SaveCommand struct {
	repo      ports.ProcedureRepository
	Title     string
	Steps     []string
	Algorithm string
	StartDate domain.Date
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(repo ports.ProcedureRepository, title string, steps []string, algorithm string) *SaveCommand {
	return &SaveCommand{
		repo:      repo,
		Title:     title,
		Steps:     steps,
		Algorithm: algorithm,
	}
}

// Validate checks if the save operation is valid
func (c *SaveCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}

	if len(c.Steps) == 0 {
		return &application.ValidationError{
			Field:   "steps",
			Message: "at least one step is required",
		}
	}
	for _, s := range c.Steps {
		if strings.TrimSpace(s) == "" {
			return &application.ValidationError{
				Field:   "steps",
				Message: "steps must be non-empty",
			}
		}
	}

	if _, err := application.ValidateAlgorithm("algorithm", c.Algorithm); err != nil {
		return err
	}

	return nil
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context) (*SaveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	algorithm, _ := domain.ParseAlgorithm(c.Algorithm)

	startDate := c.StartDate
	if startDate.IsZero() {
		startDate = domain.Today()
	}

	schedule, err := domain.MaterializeSchedule(startDate, algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize schedule: %w", err)
	}

	steps := make([]domain.ProcedureStep, 0, len(c.Steps))
	for i, desc := range c.Steps {
		steps = append(steps, domain.ProcedureStep{
			Order:       i + 1,
			Description: strings.TrimSpace(desc),
		})
	}

	procedure := &domain.Procedure{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(c.Title),
		Steps:          steps,
		Algorithm:      algorithm,
		CreatedAt:      time.Now(),
		ReviewSchedule: schedule,
	}

	if err := c.repo.Put(procedure); err != nil {
		return nil, fmt.Errorf("failed to save procedure: %w", err)
	}

	return &SaveResult{
		Procedure:       procedure,
		FirstReviewDate: schedule[0].Date,
		Message: fmt.Sprintf("Saved procedure %q (%s, %d steps), first review %s",
			procedure.Title, algorithm, len(steps), schedule[0].Date),
	}, nil
}
