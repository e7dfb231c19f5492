package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Match validates against a pre-compiled pattern. Empty values fail the
// check; combine with Required when the distinction matters. The optional
// description names the pattern in the error message.
func Match(field, value string, pattern *regexp.Regexp, description string) Rule {
	message := "has an invalid format"
	if description != "" {
		message = fmt.Sprintf("must match %s pattern", description)
	}
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// Custom wraps an arbitrary check into a rule.
func Custom(field string, check func() bool, message string) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.custom",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
