package application

import (
	"fmt"
	"strings"

	"ingrain/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "procedureID" -> "procedure ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"procedureID": "procedure ID",
		"title":       "title",
		"algorithm":   "algorithm",
		"date":        "date",
		"startDate":   "start date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateAlgorithm checks that the selector names a known algorithm.
func ValidateAlgorithm(fieldName, value string) (domain.Algorithm, error) {
	algorithm, err := domain.ParseAlgorithm(value)
	if err != nil {
		return "", &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return algorithm, nil
}

// ValidateDate checks that the value is a well-formed YYYY-MM-DD date.
func ValidateDate(fieldName, value string) (domain.Date, error) {
	date, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return date, nil
}
