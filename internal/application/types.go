package application

import "ingrain/internal/domain"

// Re-export domain types for use by adapters
type (
	Procedure     = domain.Procedure
	ProcedureStep = domain.ProcedureStep
	ReviewEvent   = domain.ReviewEvent
	Algorithm     = domain.Algorithm
	Date          = domain.Date
)

const (
	AlgorithmMotor     = domain.AlgorithmMotor
	AlgorithmCognitive = domain.AlgorithmCognitive
)

// ParseAlgorithm validates an algorithm selector string
func ParseAlgorithm(s string) (domain.Algorithm, error) {
	return domain.ParseAlgorithm(s)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (domain.Date, error) {
	return domain.ParseDate(s)
}
