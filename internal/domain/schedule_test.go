package domain

import "testing"

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"motor", "motor", AlgorithmMotor, false},
		{"cognitive", "cognitive", AlgorithmCognitive, false},
		{"empty", "", "", true},
		{"unknown", "quantum", "", true},
		{"wrong case", "Motor", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTemplates_ShapeInvariants(t *testing.T) {
	for _, algorithm := range []Algorithm{AlgorithmMotor, AlgorithmCognitive} {
		entries, err := Template(algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}

		if len(entries) != 18 {
			t.Errorf("%s: expected 18 entries, got %d", algorithm, len(entries))
		}
		if entries[0].DayOffset != 1 {
			t.Errorf("%s: first offset must be day 1, got %d", algorithm, entries[0].DayOffset)
		}
		if entries[1].DayOffset != 2 {
			t.Errorf("%s: second offset must be day 2, got %d", algorithm, entries[1].DayOffset)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].DayOffset <= entries[i-1].DayOffset {
				t.Errorf("%s: offsets not strictly increasing at %d: %d then %d",
					algorithm, i, entries[i-1].DayOffset, entries[i].DayOffset)
			}
		}
		for i, entry := range entries {
			if entry.Label == "" {
				t.Errorf("%s: entry %d has empty label", algorithm, i)
			}
		}
	}
}

func TestMaterializeSchedule(t *testing.T) {
	start, _ := ParseDate("2024-01-01")

	for _, algorithm := range []Algorithm{AlgorithmMotor, AlgorithmCognitive} {
		schedule, err := MaterializeSchedule(start, algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}

		if len(schedule) != 18 {
			t.Errorf("%s: expected 18 events, got %d", algorithm, len(schedule))
		}

		// Day offset 1 is the creation day itself
		if schedule[0].Date.String() != "2024-01-01" {
			t.Errorf("%s: first review on %s, want 2024-01-01", algorithm, schedule[0].Date)
		}
		if schedule[1].Date.String() != "2024-01-02" {
			t.Errorf("%s: second review on %s, want 2024-01-02", algorithm, schedule[1].Date)
		}

		for i := 1; i < len(schedule); i++ {
			if !schedule[i-1].Date.Before(schedule[i].Date) {
				t.Errorf("%s: dates not strictly increasing at %d: %s then %s",
					algorithm, i, schedule[i-1].Date, schedule[i].Date)
			}
		}
		for i, ev := range schedule {
			if ev.Completed {
				t.Errorf("%s: event %d created completed", algorithm, i)
			}
		}
	}
}

func TestMaterializeSchedule_UnknownAlgorithm(t *testing.T) {
	if _, err := MaterializeSchedule(Date{Year: 2024, Month: 1, Day: 1}, Algorithm("quantum")); err == nil {
		t.Error("expected error for unknown algorithm, got nil")
	}
}

func TestTemplate_ReturnsCopy(t *testing.T) {
	entries, _ := Template(AlgorithmMotor)
	entries[0].DayOffset = 999

	again, _ := Template(AlgorithmMotor)
	if again[0].DayOffset != 1 {
		t.Error("mutating a returned template leaked into the shared table")
	}
}
