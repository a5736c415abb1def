package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidIndex is returned when a review index falls outside a
// procedure's review schedule.
var ErrInvalidIndex = errors.New("review index out of range")

// ProcedureStep is a single ordered step of a procedure. Order is
// 1-based and dense within a procedure.
type ProcedureStep struct {
	Order       int
	Description string
}

// ReviewEvent is one scheduled practice occurrence. Date may be pushed
// forward by Delay; Completed transitions false->true once and never
// reverts.
type ReviewEvent struct {
	Date      Date
	Label     string
	Completed bool
}

// Procedure is a stored skill: its ordered steps plus the review
// schedule materialized from its algorithm at save time. Schedule
// length and labels are fixed at creation; only per-event Date and
// Completed mutate afterwards.
type Procedure struct {
	ID             string
	Title          string
	Steps          []ProcedureStep
	Algorithm      Algorithm
	CreatedAt      time.Time
	CurrentStep    int
	ReviewSchedule []ReviewEvent
}

// MarkReviewed completes the review at index and returns the next
// pending event at a strictly greater index, or nil if none. The
// lookahead is positional, not date-ordered: an earlier-indexed event
// that is still pending is not surfaced. Re-marking a completed index
// is a no-op apart from re-setting CurrentStep to the same value.
func (p *Procedure) MarkReviewed(index int) (*ReviewEvent, error) {
	if index < 0 || index >= len(p.ReviewSchedule) {
		return nil, fmt.Errorf("review %d of %d: %w", index, len(p.ReviewSchedule), ErrInvalidIndex)
	}

	p.ReviewSchedule[index].Completed = true
	p.CurrentStep = index + 1

	return p.NextPending(index), nil
}

// DelayReview pushes the review at index forward by exactly one
// calendar day. Repeated calls compound. A delayed event may end up
// dated after a later-indexed event; ordering is not re-enforced.
func (p *Procedure) DelayReview(index int) error {
	if index < 0 || index >= len(p.ReviewSchedule) {
		return fmt.Errorf("review %d of %d: %w", index, len(p.ReviewSchedule), ErrInvalidIndex)
	}

	p.ReviewSchedule[index].Date = p.ReviewSchedule[index].Date.AddDays(1)
	return nil
}

// NextPending returns the first incomplete review at an index strictly
// greater than after, or nil.
func (p *Procedure) NextPending(after int) *ReviewEvent {
	for i := after + 1; i < len(p.ReviewSchedule); i++ {
		if !p.ReviewSchedule[i].Completed {
			ev := p.ReviewSchedule[i]
			return &ev
		}
	}
	return nil
}

// CompletedReviews counts completed events in the schedule.
func (p *Procedure) CompletedReviews() int {
	n := 0
	for _, ev := range p.ReviewSchedule {
		if ev.Completed {
			n++
		}
	}
	return n
}

// Progress renders completion as "completed/total".
func (p *Procedure) Progress() string {
	return fmt.Sprintf("%d/%d", p.CompletedReviews(), len(p.ReviewSchedule))
}

// Clone returns a deep copy so stored procedures cannot be mutated
// through handed-out references.
func (p *Procedure) Clone() *Procedure {
	out := *p
	out.Steps = append([]ProcedureStep(nil), p.Steps...)
	out.ReviewSchedule = append([]ReviewEvent(nil), p.ReviewSchedule...)
	return &out
}
