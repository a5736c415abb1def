package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		errMsg  string
	}{
		{"present", "title", "Tie shoes", false, ""},
		{"empty", "title", "", true, "title is required"},
		{"whitespace only", "title", "   ", true, "title is required"},
		{"mapped field name", "procedureID", "", true, "procedure ID is required"},
		{"unmapped field name", "widget", "", true, "widget is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"motor", "motor", false},
		{"cognitive", "cognitive", false},
		{"empty", "", true},
		{"unknown", "spatial", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			algorithm, err := ValidateAlgorithm("algorithm", tt.value)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
					return
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if string(algorithm) != tt.value {
					t.Errorf("expected %q, got %q", tt.value, algorithm)
				}
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "2024-01-02", false},
		{"empty", "", true},
		{"malformed", "01-02-2024", true},
		{"impossible day", "2024-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ValidateDate("date", tt.value)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if date.String() != tt.value {
				t.Errorf("expected %q, got %q", tt.value, date.String())
			}
		})
	}
}

func TestNotFoundError_Is(t *testing.T) {
	err := &NotFoundError{ProcedureID: "p-404"}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !strings.Contains(err.Error(), "p-404") {
		t.Errorf("expected id in message, got %q", err.Error())
	}
}
