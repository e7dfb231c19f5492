package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// MinNumber validates that a string parses as a number no smaller than min.
// Unparsable values fail the check.
func MinNumber(field, value string, min float64) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil && n >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNumber validates that a string parses as a number no larger than max.
func MaxNumber(field, value string, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
