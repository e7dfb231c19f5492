package formkit

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/resolve"
)

// ruleDecl is one declared rule. The concrete validator rule is built at
// validation time, when field values are known.
type ruleDecl struct {
	field string
	build func(f *Form, value string) validator.Rule
}

func (f *Form) declare(field string, build func(*Form, string) validator.Rule) {
	f.decls = append(f.decls, ruleDecl{field: field, build: build})
	// New declarations re-arm a form that already validated.
	f.validated = false
	f.result = nil
}

// validationValue is the string a field's rules see: the effective value
// with the field's filters applied.
func (f *Form) validationValue(field string) string {
	path, err := resolve.Parse(field)
	if err != nil {
		return ""
	}
	value := ""
	if v, ok := f.effective(path); ok {
		value = formatValue(v)
	}
	for _, filter := range f.filters[field] {
		value = filter(value)
	}
	return value
}

// Validate runs every declared rule once and returns the collected failures,
// or nil when the form is clean. The result is memoized: repeated calls, and
// the Valid, Errors, and Error accessors, reuse the first pass instead of
// re-running checks.
func (f *Form) Validate() error {
	if !f.validated {
		f.validated = true
		rules := make([]validator.Rule, 0, len(f.decls))
		for _, d := range f.decls {
			rules = append(rules, d.build(f, f.validationValue(d.field)))
		}
		f.result = validator.ExtractValidationErrors(validator.Apply(rules...))
	}
	if f.result.IsEmpty() {
		return nil
	}
	return f.result
}

// Valid reports whether every declared rule passed.
func (f *Form) Valid() bool {
	return f.Validate() == nil
}

// Errors returns all validation failures in rule declaration order, running
// validation first if needed. A clean form returns an empty collection.
func (f *Form) Errors() validator.ValidationErrors {
	_ = f.Validate()
	return f.result
}

// Error returns the first message recorded for a field, in rule declaration
// order, with any configured message override applied. Fields without
// failures return an empty string.
func (f *Form) Error(field string) string {
	_ = f.Validate()
	e, ok := f.result.First(field)
	if !ok {
		return ""
	}
	return f.messages.Render(e)
}
