package domain

import (
	"errors"
	"testing"
	"time"
)

func testProcedure(t *testing.T) *Procedure {
	t.Helper()

	start, _ := ParseDate("2024-01-01")
	schedule, err := MaterializeSchedule(start, AlgorithmMotor)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}

	return &Procedure{
		ID:    "p-1",
		Title: "Tie shoes",
		Steps: []ProcedureStep{
			{Order: 1, Description: "Cross the laces."},
			{Order: 2, Description: "Pull the loops tight."},
		},
		Algorithm:      AlgorithmMotor,
		CreatedAt:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		ReviewSchedule: schedule,
	}
}

func TestMarkReviewed(t *testing.T) {
	p := testProcedure(t)

	next, err := p.MarkReviewed(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.ReviewSchedule[0].Completed {
		t.Error("event 0 not completed")
	}
	if p.CurrentStep != 1 {
		t.Errorf("expected CurrentStep 1, got %d", p.CurrentStep)
	}
	if next == nil {
		t.Fatal("expected a next pending review")
	}
	if next.Date.String() != "2024-01-02" {
		t.Errorf("expected next review 2024-01-02, got %s", next.Date)
	}
}

func TestMarkReviewed_InvalidIndex(t *testing.T) {
	p := testProcedure(t)

	for _, index := range []int{-1, len(p.ReviewSchedule), 99} {
		if _, err := p.MarkReviewed(index); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("index %d: expected ErrInvalidIndex, got %v", index, err)
		}
	}
}

func TestMarkReviewed_Idempotent(t *testing.T) {
	p := testProcedure(t)

	if _, err := p.MarkReviewed(3); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	before := append([]ReviewEvent(nil), p.ReviewSchedule...)

	if _, err := p.MarkReviewed(3); err != nil {
		t.Fatalf("re-mark errored: %v", err)
	}
	if p.CurrentStep != 4 {
		t.Errorf("expected CurrentStep 4, got %d", p.CurrentStep)
	}
	for i := range before {
		if p.ReviewSchedule[i] != before[i] {
			t.Errorf("re-mark mutated event %d", i)
		}
	}
}

func TestMarkReviewed_LookaheadIsPositional(t *testing.T) {
	p := testProcedure(t)

	// Mark index 5 while 0..4 are still pending: the lookahead only
	// scans forward, so index 6 is next even though earlier reviews
	// remain open.
	next, err := p.MarkReviewed(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil {
		t.Fatal("expected a next pending review")
	}
	if next.Label != p.ReviewSchedule[6].Label || next.Date != p.ReviewSchedule[6].Date {
		t.Errorf("expected event 6 as next, got %+v", next)
	}
	if p.ReviewSchedule[0].Completed {
		t.Error("earlier pending event was touched")
	}
}

func TestMarkReviewed_CurrentStepTracksLastMarked(t *testing.T) {
	p := testProcedure(t)

	p.MarkReviewed(0)
	p.MarkReviewed(5)

	// CurrentStep is reviewIndex+1 of the last mark, not a count of
	// completed reviews.
	if p.CurrentStep != 6 {
		t.Errorf("expected CurrentStep 6, got %d", p.CurrentStep)
	}
	if got := p.CompletedReviews(); got != 2 {
		t.Errorf("expected 2 completed reviews, got %d", got)
	}
}

func TestMarkReviewed_NoNextAtEnd(t *testing.T) {
	p := testProcedure(t)

	last := len(p.ReviewSchedule) - 1
	next, err := p.MarkReviewed(last)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != nil {
		t.Errorf("expected no next review, got %+v", next)
	}
}

func TestDelayReview(t *testing.T) {
	p := testProcedure(t)

	if err := p.DelayReview(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ReviewSchedule[1].Date.String(); got != "2024-01-03" {
		t.Errorf("one delay: expected 2024-01-03, got %s", got)
	}

	if err := p.DelayReview(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ReviewSchedule[1].Date.String(); got != "2024-01-04" {
		t.Errorf("two delays: expected 2024-01-04, got %s", got)
	}

	if p.ReviewSchedule[1].Completed {
		t.Error("delay changed completion state")
	}
}

func TestDelayReview_CanInvertOrder(t *testing.T) {
	p := testProcedure(t)

	// Event 1 starts on 2024-01-02, event 2 on 2024-01-03. Two delays
	// push event 1 past event 2; ordering is not re-enforced.
	p.DelayReview(1)
	p.DelayReview(1)

	if !p.ReviewSchedule[2].Date.Before(p.ReviewSchedule[1].Date) {
		t.Errorf("expected event 1 (%s) after event 2 (%s)",
			p.ReviewSchedule[1].Date, p.ReviewSchedule[2].Date)
	}
}

func TestDelayReview_InvalidIndex(t *testing.T) {
	p := testProcedure(t)

	for _, index := range []int{-1, len(p.ReviewSchedule)} {
		if err := p.DelayReview(index); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("index %d: expected ErrInvalidIndex, got %v", index, err)
		}
	}
}

func TestProgress(t *testing.T) {
	p := testProcedure(t)

	if got := p.Progress(); got != "0/18" {
		t.Errorf("expected 0/18, got %s", got)
	}

	p.MarkReviewed(0)
	p.MarkReviewed(1)

	if got := p.Progress(); got != "2/18" {
		t.Errorf("expected 2/18, got %s", got)
	}
}

func TestClone_Isolation(t *testing.T) {
	p := testProcedure(t)
	clone := p.Clone()

	clone.MarkReviewed(0)
	clone.Steps[0].Description = "changed"

	if p.ReviewSchedule[0].Completed {
		t.Error("mutating clone schedule leaked into original")
	}
	if p.Steps[0].Description == "changed" {
		t.Error("mutating clone steps leaked into original")
	}
}
