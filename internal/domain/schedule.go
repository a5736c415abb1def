package domain

import "fmt"

// Algorithm names a fixed review cadence. The set is closed: new
// cadences are added by defining a new template, never by mutating an
// existing one at runtime.
type Algorithm string

const (
	// AlgorithmMotor front-loads daily repetitions, the cadence for
	// physical skills that need early consolidation.
	AlgorithmMotor Algorithm = "motor"
	// AlgorithmCognitive expands intervals from the start, the classic
	// spacing curve for declarative knowledge.
	AlgorithmCognitive Algorithm = "cognitive"
)

// ParseAlgorithm validates an algorithm selector string.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmMotor:
		return AlgorithmMotor, nil
	case AlgorithmCognitive:
		return AlgorithmCognitive, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (expected motor or cognitive)", s)
	}
}

// TemplateEntry is one slot of an algorithm template. DayOffset is
// 1-based: day 1 is the creation day itself.
type TemplateEntry struct {
	DayOffset int
	Label     string
}

// Offsets are strictly increasing within each template; both cadences
// run 18 sessions and start with day 1 and day 2.
var templates = map[Algorithm][]TemplateEntry{
	AlgorithmMotor: {
		{1, "Initial practice session"},
		{2, "Day 2 repetition"},
		{3, "Day 3 repetition"},
		{4, "Day 4 repetition"},
		{5, "Day 5 repetition"},
		{6, "Day 6 repetition"},
		{7, "One week consolidation"},
		{9, "Spaced repetition (2-day gap)"},
		{11, "Spaced repetition (2-day gap)"},
		{14, "Two week review"},
		{17, "Spaced repetition (3-day gap)"},
		{21, "Three week review"},
		{28, "One month review"},
		{35, "Five week review"},
		{49, "Seven week review"},
		{63, "Nine week review"},
		{77, "Eleven week review"},
		{91, "Quarterly retention check"},
	},
	AlgorithmCognitive: {
		{1, "Initial learning session"},
		{2, "Next-day recall"},
		{4, "Day 4 recall"},
		{7, "One week recall"},
		{11, "Expanding interval review"},
		{16, "Expanding interval review"},
		{22, "Three week recall"},
		{29, "One month recall"},
		{37, "Expanding interval review"},
		{46, "Expanding interval review"},
		{56, "Eight week recall"},
		{67, "Expanding interval review"},
		{79, "Expanding interval review"},
		{92, "Three month recall"},
		{106, "Expanding interval review"},
		{121, "Four month recall"},
		{137, "Expanding interval review"},
		{154, "Five month retention check"},
	},
}

// Template returns a copy of the offset table for an algorithm.
func Template(a Algorithm) ([]TemplateEntry, error) {
	entries, ok := templates[a]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (expected motor or cognitive)", a)
	}
	return append([]TemplateEntry(nil), entries...), nil
}

// MaterializeSchedule maps an algorithm template onto a start date:
// one pending event per entry, dated startDate + (DayOffset - 1) days,
// preserving template order. Pure; the only time input is startDate.
func MaterializeSchedule(startDate Date, a Algorithm) ([]ReviewEvent, error) {
	entries, err := Template(a)
	if err != nil {
		return nil, err
	}

	schedule := make([]ReviewEvent, 0, len(entries))
	for _, entry := range entries {
		schedule = append(schedule, ReviewEvent{
			Date:  startDate.AddDays(entry.DayOffset - 1),
			Label: entry.Label,
		})
	}
	return schedule, nil
}
