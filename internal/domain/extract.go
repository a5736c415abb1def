package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// StepClassifier decides whether a sentence-like unit reads as an
// actionable step. The default is regex-based; a learned classifier can
// be swapped in without touching extraction control flow.
type StepClassifier interface {
	Match(unit string) bool
}

// Verbs that open an imperative instruction. Shared by the default
// classifier and the refinement pass.
var actionVerbs = []string{
	"click", "open", "close", "press", "select", "type", "enter",
	"go", "navigate", "scroll", "drag", "drop", "hold", "release",
	"create", "add", "remove", "delete", "set", "choose", "pick",
	"place", "put", "turn", "pull", "push", "grab", "lift", "lower",
	"move", "cut", "mix", "stir", "pour", "fold", "tie", "wrap",
	"wait", "check", "verify", "confirm", "save", "start", "stop",
	"run", "launch", "install", "connect", "attach", "insert",
	"apply", "adjust", "align", "measure", "mark", "repeat", "take",
	"use", "find", "locate", "read", "write", "copy", "paste",
}

var actionVerbSet = func() map[string]bool {
	set := make(map[string]bool, len(actionVerbs))
	for _, v := range actionVerbs {
		set[v] = true
	}
	return set
}()

// RegexClassifier is the default step classifier: a unit is a candidate
// step when it contains an action verb, a sequencing word, or an
// obligation phrase.
type RegexClassifier struct {
	patterns []*regexp.Regexp
}

// NewRegexClassifier compiles the default action-pattern set.
func NewRegexClassifier() *RegexClassifier {
	return &RegexClassifier{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(` + strings.Join(actionVerbs, "|") + `)\b`),
			regexp.MustCompile(`(?i)\b(first|second|third|then|next|after|before|finally|lastly|once)\b`),
			regexp.MustCompile(`(?i)\b(should|must|need to|needs to|have to|has to|make sure|ensure|remember to|be sure to)\b`),
		},
	}
}

// Match reports whether the unit matches any action pattern.
func (c *RegexClassifier) Match(unit string) bool {
	for _, p := range c.patterns {
		if p.MatchString(unit) {
			return true
		}
	}
	return false
}

// Extractor turns raw text into ordered candidate steps. It never
// fails: malformed input degrades through the newline fallback, and
// empty input yields an empty result.
type Extractor struct {
	classifier StepClassifier
}

// NewExtractor creates an extractor. A nil classifier selects the
// default regex classifier.
func NewExtractor(classifier StepClassifier) *Extractor {
	if classifier == nil {
		classifier = NewRegexClassifier()
	}
	return &Extractor{classifier: classifier}
}

// Extract runs the full pipeline: sentence split, classification,
// newline fallback, refinement, deduplication. refinementPrompt is
// accepted for a future higher-level refinement stage and has no
// effect on this heuristic path.
func (e *Extractor) Extract(content, refinementPrompt string) []ProcedureStep {
	_ = refinementPrompt

	var candidates []string
	for _, unit := range splitSentences(content) {
		if e.classifier.Match(unit) {
			candidates = append(candidates, unit)
		}
	}

	// Fallback: keep non-trivial lines so the extractor never discards
	// all input silently.
	if len(candidates) == 0 {
		candidates = fallbackLines(content)
	}
	if len(candidates) == 0 {
		return nil
	}

	refined := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if r := refineStep(c); r != "" {
			refined = append(refined, r)
		}
	}
	deduped := dedupe(refined)

	// Refinement must never turn a non-empty result into an empty one.
	if len(deduped) == 0 {
		return numberSteps(candidates)
	}
	return numberSteps(deduped)
}

// splitSentences splits on sentence terminators, discarding empty and
// whitespace-only units.
func splitSentences(content string) []string {
	raw := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	units := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			units = append(units, u)
		}
	}
	return units
}

// fallbackLines keeps any non-empty line longer than 10 characters.
func fallbackLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); len(line) > 10 {
			lines = append(lines, line)
		}
	}
	return lines
}

var fillerPattern = regexp.MustCompile(`(?i)^(you should|you must|you need to|you have to|next,|then,|after that,|first,|finally,|now,|step \d+[:.)]?)\s*`)

// refineStep normalizes one candidate: strip leading filler, promote
// the last embedded action-verb clause when the text does not already
// open with an action verb, capitalize, and ensure terminal
// punctuation.
func refineStep(text string) string {
	text = strings.TrimSpace(text)
	for {
		stripped := fillerPattern.ReplaceAllString(text, "")
		if stripped == text {
			break
		}
		text = strings.TrimSpace(stripped)
	}
	if text == "" {
		return ""
	}

	if !startsWithActionVerb(text) {
		if clause := lastActionClause(text); clause != "" {
			text = clause
		}
	}

	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	text = string(runes)

	if !strings.ContainsAny(text[len(text)-1:], ".!?") {
		text += "."
	}
	return text
}

func startsWithActionVerb(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	return actionVerbSet[normalizeToken(fields[0])]
}

// lastActionClause returns the clause opened by the last embedded
// action verb, or "" when none exists past the first word.
func lastActionClause(text string) string {
	fields := strings.Fields(text)
	for i := len(fields) - 1; i > 0; i-- {
		if actionVerbSet[normalizeToken(fields[i])] {
			return strings.Join(fields[i:], " ")
		}
	}
	return ""
}

// dedupe walks candidates in order and drops any whose normalized form
// duplicates, contains, or is contained by an already-kept step, or
// whose token overlap with a kept step exceeds 0.7.
func dedupe(candidates []string) []string {
	var kept []string
	var keptNorms []string
	for _, c := range candidates {
		norm := normalizeStep(c)
		if norm == "" {
			continue
		}
		duplicate := false
		for _, kn := range keptNorms {
			if norm == kn || strings.Contains(kn, norm) || strings.Contains(norm, kn) {
				duplicate = true
				break
			}
			if tokenOverlap(norm, kn) > 0.7 {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
			keptNorms = append(keptNorms, norm)
		}
	}
	return kept
}

// normalizeStep lowercases and strips punctuation for comparison.
func normalizeStep(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func normalizeToken(s string) string {
	return strings.Trim(strings.ToLower(s), ".,;:!?()\"'")
}

// tokenOverlap is shared distinct tokens divided by the larger token
// set size.
func tokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for tok := range setA {
		if setB[tok] {
			shared++
		}
	}
	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(shared) / float64(larger)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// numberSteps assigns dense 1-based order values.
func numberSteps(descriptions []string) []ProcedureStep {
	steps := make([]ProcedureStep, 0, len(descriptions))
	for i, d := range descriptions {
		steps = append(steps, ProcedureStep{Order: i + 1, Description: d})
	}
	return steps
}
