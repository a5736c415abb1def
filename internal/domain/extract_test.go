package domain

import (
	"strings"
	"testing"
)

func TestExtract_ActionSentences(t *testing.T) {
	e := NewExtractor(nil)

	steps := e.Extract("Click the Save button. This is just a note.", "")

	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d: %v", len(steps), steps)
	}
	if steps[0].Order != 1 {
		t.Errorf("expected order 1, got %d", steps[0].Order)
	}
	if steps[0].Description != "Click the Save button." {
		t.Errorf("unexpected description: %q", steps[0].Description)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor(nil)

	for _, content := range []string{"", "   ", "\n\n", "...", "!?."} {
		if steps := e.Extract(content, ""); len(steps) != 0 {
			t.Errorf("extract(%q): expected no steps, got %v", content, steps)
		}
	}
}

func TestExtract_FallbackGuarantee(t *testing.T) {
	// No sentence matches any action pattern, but the input has
	// non-trivial lines: the newline fallback keeps them.
	content := "the weather was lovely\nthe cat sat quietly on a mat\nok"

	steps := NewExtractor(nil).Extract(content, "")

	if len(steps) != 2 {
		t.Fatalf("expected 2 fallback steps, got %d: %v", len(steps), steps)
	}
	// "ok" is under 10 characters and dropped
	for _, s := range steps {
		if strings.Contains(s.Description, "ok") && len(s.Description) < 10 {
			t.Errorf("short line survived fallback: %q", s.Description)
		}
	}
}

func TestExtract_DenseOrdering(t *testing.T) {
	content := "Open the lid. Pour the water. Stir the mixture. Close the lid."

	steps := NewExtractor(nil).Extract(content, "")

	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d: %v", len(steps), steps)
	}
	for i, s := range steps {
		if s.Order != i+1 {
			t.Errorf("step %d: expected order %d, got %d", i, i+1, s.Order)
		}
	}
}

func TestExtract_RefinementStripsFillers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "you should prefix",
			content: "you should press the red button",
			want:    "Press the red button.",
		},
		{
			name:    "step number prefix",
			content: "Step 3: open the valve",
			want:    "Open the valve.",
		},
		{
			name:    "then prefix",
			content: "then, turn the handle",
			want:    "Turn the handle.",
		},
		{
			name:    "stacked fillers",
			content: "next, you should check the gauge",
			want:    "Check the gauge.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := NewExtractor(nil).Extract(tt.content, "")
			if len(steps) != 1 {
				t.Fatalf("expected 1 step, got %d: %v", len(steps), steps)
			}
			if steps[0].Description != tt.want {
				t.Errorf("expected %q, got %q", tt.want, steps[0].Description)
			}
		})
	}
}

func TestExtract_PromotesEmbeddedActionClause(t *testing.T) {
	// The unit matches via an obligation phrase but does not start
	// with an action verb; the last embedded action clause wins.
	steps := NewExtractor(nil).Extract("Before anything else you must carefully open the case", "")

	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d: %v", len(steps), steps)
	}
	if steps[0].Description != "Open the case." {
		t.Errorf("expected promoted clause, got %q", steps[0].Description)
	}
}

func TestExtract_DedupDropsOverlapping(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "exact duplicate",
			content: "Press the green button. Press the green button.",
			want:    1,
		},
		{
			name:    "substring of kept step",
			content: "Press the large green button firmly. Press the large green button.",
			want:    1,
		},
		{
			name:    "high token overlap",
			content: "Turn the left valve clockwise slowly. Turn the left valve slowly.",
			want:    1,
		},
		{
			name:    "distinct steps survive",
			content: "Open the front door. Close the rear window.",
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := NewExtractor(nil).Extract(tt.content, "")
			if len(steps) != tt.want {
				t.Errorf("expected %d steps, got %d: %v", tt.want, len(steps), steps)
			}
		})
	}
}

func TestExtract_RefinementPromptIgnored(t *testing.T) {
	e := NewExtractor(nil)

	plain := e.Extract("Click the icon.", "")
	prompted := e.Extract("Click the icon.", "make these steps funnier")

	if len(plain) != len(prompted) {
		t.Fatalf("refinement prompt changed result count: %d vs %d", len(plain), len(prompted))
	}
	for i := range plain {
		if plain[i] != prompted[i] {
			t.Errorf("refinement prompt changed step %d: %v vs %v", i, plain[i], prompted[i])
		}
	}
}

func TestExtract_NonEmptyInputNonEmptyOutput(t *testing.T) {
	// Any content with a non-trivial line must yield at least one step.
	inputs := []string{
		"Click here. Then wait.",
		"a paragraph without imperative phrasing whatsoever",
		"line one is long enough\nline two also qualifies",
	}

	for _, content := range inputs {
		if steps := NewExtractor(nil).Extract(content, ""); len(steps) == 0 {
			t.Errorf("extract(%q): expected non-empty result", content)
		}
	}
}

func TestTokenOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "open the lid", "open the lid", 1.0},
		{"disjoint", "open the lid", "press a key", 0.0},
		{"partial", "open the lid now", "open the lid", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenOverlap(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("tokenOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRegexClassifier(t *testing.T) {
	c := NewRegexClassifier()

	tests := []struct {
		unit string
		want bool
	}{
		{"Click the Save button", true},
		{"First, gather the parts", true},
		{"You must be patient", true},
		{"This is just a note", false},
		{"The sky was gray", false},
	}

	for _, tt := range tests {
		if got := c.Match(tt.unit); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}
