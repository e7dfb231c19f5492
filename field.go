package formkit

import (
	"html/template"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/render"
	"github.com/dmitrymomot/formkit/resolve"
)

// Field is a handle on one field path within a form. It renders controls
// for the field, exposes its effective value, and declares validation rules.
// All render methods return ready-to-embed HTML fragments.
type Field struct {
	form *Form
	path resolve.Path
}

// Name is the submit name of the field: path tokens joined with dots.
func (fl *Field) Name() string {
	return fl.path.String()
}

// DOMID is the id attribute of the field's control: path tokens joined with
// dashes.
func (fl *Field) DOMID() string {
	return fl.path.DOMID()
}

// Value returns the field's effective value and whether it resolved.
// Submitted parameters win over bound values.
func (fl *Field) Value() (any, bool) {
	return fl.form.effective(fl.path)
}

// Valid reports whether the field passed validation. Calling it triggers
// the form's validation pass if it has not run yet.
func (fl *Field) Valid() bool {
	_ = fl.form.Validate()
	return !fl.form.result.Has(fl.Name())
}

// Error returns the field's first validation message, or an empty string.
func (fl *Field) Error() string {
	return fl.form.Error(fl.Name())
}

func (fl *Field) renderValue() string {
	v, ok := fl.form.effective(fl.path)
	if !ok {
		return ""
	}
	return formatValue(v)
}

// Input renders an input of an arbitrary type, for types without a
// dedicated method (email, number, date, ...).
func (fl *Field) Input(typ string, attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Input(typ, fl.Name(), fl.DOMID(), fl.renderValue(), render.Merge(attrs...)))
}

// Text renders a text input carrying the field's effective value.
func (fl *Field) Text(attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Text(fl.Name(), fl.DOMID(), fl.renderValue(), render.Merge(attrs...)))
}

// Password renders a password input. The effective value is included like
// any other control; bind nothing to keep it blank.
func (fl *Field) Password(attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Password(fl.Name(), fl.DOMID(), fl.renderValue(), render.Merge(attrs...)))
}

// Hidden renders a hidden input.
func (fl *Field) Hidden(attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Hidden(fl.Name(), fl.DOMID(), fl.renderValue(), render.Merge(attrs...)))
}

// File renders a file input. File controls never carry a value.
func (fl *Field) File(attrs ...render.Attrs) template.HTML {
	return render.HTML(render.File(fl.Name(), fl.DOMID(), render.Merge(attrs...)))
}

// Textarea renders a textarea with the effective value as its body.
func (fl *Field) Textarea(attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Textarea(fl.Name(), fl.DOMID(), fl.renderValue(), render.Merge(attrs...)))
}

// Checkbox renders a checkbox. The control value defaults to "1" and can be
// overridden with a "value" attribute; a custom value also suffixes the id
// so several boxes for one field get distinct ids. The box is checked when
// the control value was submitted for the field, or matches the bound value,
// with bound booleans treated as their conventional "1"/"true" encodings.
func (fl *Field) Checkbox(attrs ...render.Attrs) template.HTML {
	merged := render.Merge(attrs...)
	value := "1"
	if v, ok := merged["value"]; ok {
		value = formatValue(v)
		delete(merged, "value")
	}

	id := fl.DOMID()
	if value != "1" {
		if slug := sanitizer.ToKebabCase(value); slug != "" {
			id += "-" + slug
		}
	}
	return render.HTML(render.Checkbox(fl.Name(), id, value, fl.selected(value), merged))
}

// Radio renders one radio button of a group. Each button passes its own
// control value; the id gets a kebab-cased value suffix so buttons sharing
// the field name stay individually addressable.
func (fl *Field) Radio(value string, attrs ...render.Attrs) template.HTML {
	id := fl.DOMID()
	if slug := sanitizer.ToKebabCase(value); slug != "" {
		id += "-" + slug
	}
	return render.HTML(render.Radio(fl.Name(), id, value, fl.selected(value), render.Merge(attrs...)))
}

// Select renders a select listing the given choices, marking those matching
// the effective value. Multi-value submissions and bound slices mark
// multiple options.
func (fl *Field) Select(choices render.Choices, attrs ...render.Attrs) template.HTML {
	return render.HTML(render.Select(fl.Name(), fl.DOMID(), choices, fl.selectedValues(), render.Merge(attrs...)))
}

// Label renders a label bound to the field's control id. An empty text
// falls back to a humanized version of the field's last path token.
func (fl *Field) Label(text string, attrs ...render.Attrs) template.HTML {
	if text == "" {
		text = render.Humanize(fl.path.Last())
	}
	return render.HTML(render.Label(fl.DOMID(), text, render.Merge(attrs...)))
}

// selected reports whether a checkable control with the given value should
// be marked, consulting submitted parameters first and the bound value
// otherwise.
func (fl *Field) selected(value string) bool {
	if vs, ok := fl.form.params[fl.Name()]; ok {
		return slices.Contains(vs, value)
	}

	v, ok := fl.form.bound(fl.path)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t && (value == "1" || strings.EqualFold(value, "true"))
	case []byte:
		return formatValue(t) == value
	}

	if rv := reflect.ValueOf(v); rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		for i := 0; i < rv.Len(); i++ {
			if formatValue(rv.Index(i).Interface()) == value {
				return true
			}
		}
		return false
	}
	return formatValue(v) == value
}

func (fl *Field) selectedValues() []string {
	if vs, ok := fl.form.params[fl.Name()]; ok && len(vs) > 0 {
		return vs
	}
	v, ok := fl.form.bound(fl.path)
	if !ok {
		return nil
	}
	return stringifyAll(v)
}

// Required declares that the field must not be blank.
func (fl *Field) Required() *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.Required(name, value)
	})
	return fl
}

// MinLength declares a minimum length in bytes.
func (fl *Field) MinLength(min int) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.MinLen(name, value, min)
	})
	return fl
}

// MaxLength declares a maximum length in bytes.
func (fl *Field) MaxLength(max int) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.MaxLen(name, value, max)
	})
	return fl
}

// LengthBetween declares an inclusive length range.
func (fl *Field) LengthBetween(min, max int) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.LenBetween(name, value, min, max)
	})
	return fl
}

// Equals declares that the field must match another field, named by its full
// path. The other field's value is read, and filtered, at validation time.
func (fl *Field) Equals(other string) *Field {
	name := fl.Name()
	fl.form.declare(name, func(f *Form, value string) validator.Rule {
		return validator.EqualsField(name, value, other, f.validationValue(other))
	})
	return fl
}

// Matches declares a regular expression the value must match. The pattern
// compiles at declaration time and panics if malformed, like
// regexp.MustCompile.
func (fl *Field) Matches(pattern string) *Field {
	re := regexp.MustCompile(pattern)
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.Match(name, value, re, "")
	})
	return fl
}

// In declares an allowed value set.
func (fl *Field) In(values ...string) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.InListString(name, value, values)
	})
	return fl
}

// Email declares that the value must be an email address.
func (fl *Field) Email() *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.ValidEmail(name, value)
	})
	return fl
}

// URL declares that the value must be an absolute URL.
func (fl *Field) URL() *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.ValidURL(name, value)
	})
	return fl
}

// UUID declares that the value must be a UUID.
func (fl *Field) UUID() *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.ValidUUID(name, value)
	})
	return fl
}

// Numeric declares that the value must parse as a number.
func (fl *Field) Numeric() *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.NumericString(name, value)
	})
	return fl
}

// Min declares a numeric lower bound.
func (fl *Field) Min(min float64) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.MinNumber(name, value, min)
	})
	return fl
}

// Max declares a numeric upper bound.
func (fl *Field) Max(max float64) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.MaxNumber(name, value, max)
	})
	return fl
}

// Check declares a custom rule reported with the given message when fn
// returns false.
func (fl *Field) Check(fn func(string) bool, message string) *Field {
	name := fl.Name()
	fl.form.declare(name, func(_ *Form, value string) validator.Rule {
		return validator.Custom(name, func() bool { return fn(value) }, message)
	})
	return fl
}

// Filter registers cleanup transformations applied to the field's value
// before its rules run. Filters affect validation only; rendered values stay
// exactly as submitted.
func (fl *Field) Filter(filters ...func(string) string) *Field {
	name := fl.Name()
	fl.form.filters[name] = append(fl.form.filters[name], filters...)
	return fl
}
