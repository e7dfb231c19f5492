package formkit

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Messages overrides validation messages by translation key. Placeholders
// in braces interpolate from the error's translation values:
//
//	validation.required: "{field} cannot be blank"
//	validation.min_length: "{field} needs at least {min} characters"
type Messages map[string]string

// ParseMessages loads a message catalog from a YAML document mapping
// translation keys to message templates.
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessages, err)
	}
	return m, nil
}

// Render formats a validation error, applying the override registered under
// its translation key and falling back to the built-in message. A nil
// catalog always falls back.
func (m Messages) Render(e validator.ValidationError) string {
	tmpl, ok := m[e.TranslationKey]
	if !ok {
		return e.Message
	}
	out := tmpl
	for key, val := range e.TranslationValues {
		out = strings.ReplaceAll(out, "{"+key+"}", placeholderValue(val))
	}
	return out
}

func placeholderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
