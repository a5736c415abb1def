package commands

import (
	"context"
	"fmt"

	"ingrain/internal/application"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// MarkReviewedResult contains the result of completing a review
type MarkReviewedResult struct {
	CompletedLabel string
	NextReview     *domain.ReviewEvent
	Message        string
}

// MarkReviewedCommand completes one review event of a procedure
type MarkReviewedCommand struct {
	repo        ports.ProcedureRepository
	ProcedureID string
	ReviewIndex int
}

// NewMarkReviewedCommand creates a new MarkReviewedCommand
func NewMarkReviewedCommand(repo ports.ProcedureRepository, procedureID string, reviewIndex int) *MarkReviewedCommand {
	return &MarkReviewedCommand{
		repo:        repo,
		ProcedureID: procedureID,
		ReviewIndex: reviewIndex,
	}
}

// Validate checks if the mark operation is valid
func (c *MarkReviewedCommand) Validate() error {
	return application.ValidateRequired("procedureID", c.ProcedureID)
}

// Execute runs the mark reviewed command
func (c *MarkReviewedCommand) Execute(ctx context.Context) (*MarkReviewedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var next *domain.ReviewEvent
	updated, err := c.repo.Update(c.ProcedureID, func(p *domain.Procedure) error {
		var markErr error
		next, markErr = p.MarkReviewed(c.ReviewIndex)
		return markErr
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &application.NotFoundError{ProcedureID: c.ProcedureID}
	}

	completed := updated.ReviewSchedule[c.ReviewIndex]
	message := fmt.Sprintf("Completed %q for %q", completed.Label, updated.Title)
	if next != nil {
		message += fmt.Sprintf("; next review %q on %s", next.Label, next.Date)
	}

	return &MarkReviewedResult{
		CompletedLabel: completed.Label,
		NextReview:     next,
		Message:        message,
	}, nil
}

// DelayReviewResult contains the result of delaying a review
type DelayReviewResult struct {
	NewDate domain.Date
	Message string
}

// DelayReviewCommand pushes one review event forward by one calendar
// day. Each call compounds.
type DelayReviewCommand struct {
	repo        ports.ProcedureRepository
	ProcedureID string
	ReviewIndex int
}

// NewDelayReviewCommand creates a new DelayReviewCommand
func NewDelayReviewCommand(repo ports.ProcedureRepository, procedureID string, reviewIndex int) *DelayReviewCommand {
	return &DelayReviewCommand{
		repo:        repo,
		ProcedureID: procedureID,
		ReviewIndex: reviewIndex,
	}
}

// Validate checks if the delay operation is valid
func (c *DelayReviewCommand) Validate() error {
	return application.ValidateRequired("procedureID", c.ProcedureID)
}

// Execute runs the delay review command
func (c *DelayReviewCommand) Execute(ctx context.Context) (*DelayReviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := c.repo.Update(c.ProcedureID, func(p *domain.Procedure) error {
		return p.DelayReview(c.ReviewIndex)
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &application.NotFoundError{ProcedureID: c.ProcedureID}
	}

	newDate := updated.ReviewSchedule[c.ReviewIndex].Date
	return &DelayReviewResult{
		NewDate: newDate,
		Message: fmt.Sprintf("Delayed review %d of %q to %s", c.ReviewIndex, updated.Title, newDate),
	}, nil
}

// GetProcedureCommand fetches a full procedure record by id
type GetProcedureCommand struct {
	repo        ports.ProcedureRepository
	ProcedureID string
}

// NewGetProcedureCommand creates a new GetProcedureCommand
func NewGetProcedureCommand(repo ports.ProcedureRepository, procedureID string) *GetProcedureCommand {
	return &GetProcedureCommand{repo: repo, ProcedureID: procedureID}
}

// Execute runs the get procedure command
func (c *GetProcedureCommand) Execute(ctx context.Context) (*domain.Procedure, error) {
	if err := application.ValidateRequired("procedureID", c.ProcedureID); err != nil {
		return nil, err
	}

	p, err := c.repo.Get(c.ProcedureID)
	if err != nil {
		return nil, fmt.Errorf("failed to load procedure: %w", err)
	}
	if p == nil {
		return nil, &application.NotFoundError{ProcedureID: c.ProcedureID}
	}
	return p, nil
}

// ListProceduresCommand lists all stored procedures
type ListProceduresCommand struct {
	repo ports.ProcedureRepository
}

// NewListProceduresCommand creates a new ListProceduresCommand
func NewListProceduresCommand(repo ports.ProcedureRepository) *ListProceduresCommand {
	return &ListProceduresCommand{repo: repo}
}

// Execute runs the list procedures command
func (c *ListProceduresCommand) Execute(ctx context.Context) ([]*domain.Procedure, error) {
	return c.repo.List()
}
