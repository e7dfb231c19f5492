package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InListString validates that a value is one of the allowed values.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// EqualsField validates that two fields carry the same value, the usual
// password confirmation check.
func EqualsField(field, value, otherField, otherValue string) Rule {
	return Rule{
		Check: func() bool {
			return value == otherValue
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", otherField),
			TranslationKey: "validation.equals_field",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
