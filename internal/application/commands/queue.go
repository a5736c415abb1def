package commands

import (
	"context"
	"fmt"

	"ingrain/internal/application"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// DueReview is one incomplete review event whose date matches the
// queried date.
type DueReview struct {
	ProcedureID string
	Title       string
	Algorithm   domain.Algorithm
	ReviewIndex int
	Label       string
	StepCount   int
}

// QueueResult contains the review queue for a date
type QueueResult struct {
	Date  domain.Date
	Items []DueReview
}

// QueueCommand answers "what is due on date D". Result order is
// repository list order, then schedule order within each procedure;
// nothing due is an empty result, not an error.
type QueueCommand struct {
	repo ports.ProcedureRepository
	Date string
}

// NewQueueCommand creates a new QueueCommand
func NewQueueCommand(repo ports.ProcedureRepository, date string) *QueueCommand {
	return &QueueCommand{
		repo: repo,
		Date: date,
	}
}

// Validate checks if the queue query is valid
func (c *QueueCommand) Validate() error {
	if err := application.ValidateRequired("date", c.Date); err != nil {
		return err
	}
	if _, err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	return nil
}

// Execute runs the queue command
func (c *QueueCommand) Execute(ctx context.Context) (*QueueResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	date, _ := domain.ParseDate(c.Date)

	procedures, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list procedures: %w", err)
	}

	var items []DueReview
	for _, p := range procedures {
		for i, ev := range p.ReviewSchedule {
			if ev.Date == date && !ev.Completed {
				items = append(items, DueReview{
					ProcedureID: p.ID,
					Title:       p.Title,
					Algorithm:   p.Algorithm,
					ReviewIndex: i,
					Label:       ev.Label,
					StepCount:   len(p.Steps),
				})
			}
		}
	}

	return &QueueResult{Date: date, Items: items}, nil
}
