package commands

import (
	"context"
	"strings"
	"testing"

	"ingrain/internal/adapters/memory"
	"ingrain/internal/domain"
)

func TestSaveCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		steps     []string
		algorithm string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid save",
			title:     "Tie shoes",
			steps:     []string{"Cross the laces.", "Pull tight."},
			algorithm: "motor",
			wantErr:   false,
		},
		{
			name:      "empty title",
			title:     "",
			steps:     []string{"Cross the laces."},
			algorithm: "motor",
			wantErr:   true,
			errMsg:    "title is required",
		},
		{
			name:      "no steps",
			title:     "Tie shoes",
			steps:     nil,
			algorithm: "motor",
			wantErr:   true,
			errMsg:    "at least one step",
		},
		{
			name:      "blank step",
			title:     "Tie shoes",
			steps:     []string{"Cross the laces.", "   "},
			algorithm: "motor",
			wantErr:   true,
			errMsg:    "non-empty",
		},
		{
			name:      "unknown algorithm",
			title:     "Tie shoes",
			steps:     []string{"Cross the laces."},
			algorithm: "spatial",
			wantErr:   true,
			errMsg:    "unknown algorithm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSaveCommand(memory.NewRepository(), tt.title, tt.steps, tt.algorithm)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSaveCommand_Execute(t *testing.T) {
	repo := memory.NewRepository()

	cmd := NewSaveCommand(repo, "Tie shoes", []string{"Cross the laces.", "Pull tight."}, "motor")
	cmd.StartDate = mustDate(t, "2024-01-01")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Procedure.ID == "" {
		t.Error("expected a generated procedure id")
	}
	if result.FirstReviewDate.String() != "2024-01-01" {
		t.Errorf("expected first review 2024-01-01, got %s", result.FirstReviewDate)
	}
	if len(result.Procedure.ReviewSchedule) != 18 {
		t.Errorf("expected 18 scheduled reviews, got %d", len(result.Procedure.ReviewSchedule))
	}
	if result.Procedure.ReviewSchedule[1].Date.String() != "2024-01-02" {
		t.Errorf("expected second review 2024-01-02, got %s", result.Procedure.ReviewSchedule[1].Date)
	}
	for i, step := range result.Procedure.Steps {
		if step.Order != i+1 {
			t.Errorf("step %d: expected dense order %d, got %d", i, i+1, step.Order)
		}
	}

	stored, err := repo.Get(result.Procedure.ID)
	if err != nil {
		t.Fatalf("get after save: %v", err)
	}
	if stored == nil {
		t.Fatal("procedure not stored")
	}
	if stored.Title != "Tie shoes" {
		t.Errorf("stored title %q", stored.Title)
	}
}

func TestSaveCommand_DistinctIDs(t *testing.T) {
	repo := memory.NewRepository()

	first, err := NewSaveCommand(repo, "A", []string{"Open the box."}, "cognitive").Execute(context.Background())
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := NewSaveCommand(repo, "B", []string{"Close the box."}, "cognitive").Execute(context.Background())
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first.Procedure.ID == second.Procedure.ID {
		t.Errorf("saved procedures share id %s", first.Procedure.ID)
	}
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
