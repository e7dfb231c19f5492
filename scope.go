package formkit

import (
	"encoding/json"
	"fmt"
	"html/template"
	"reflect"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/formkit/render"
	"github.com/dmitrymomot/formkit/resolve"
)

// Scope roots field access at a path prefix, so templates working on one
// object pass short names: a scope at "user" turns "name" into "user.name".
// Scopes nest, and Slice expands a scope over a sequence into one scope per
// element with the index baked into the paths.
//
// Render and rule methods take the relative field name first and otherwise
// behave exactly like their Field counterparts; a malformed name panics,
// which template execution surfaces as an error. Use Field to handle the
// error explicitly.
type Scope struct {
	form *Form
	path resolve.Path

	object    any
	hasObject bool
	index     int
}

// Name is the scope's path prefix in submit-name form.
func (s *Scope) Name() string {
	return s.path.String()
}

// Object returns the scope's resolved bound value, the current element when
// iterating. Submitted parameters do not affect it.
func (s *Scope) Object() any {
	if s.hasObject {
		return s.object
	}
	v, _ := s.form.bound(s.path)
	return v
}

// Index returns the element position during iteration, -1 otherwise.
func (s *Scope) Index() int {
	return s.index
}

// Field returns a handle for a field relative to the scope.
func (s *Scope) Field(name string) (*Field, error) {
	sub, err := s.form.parsePath(name)
	if err != nil {
		return nil, err
	}
	return &Field{form: s.form, path: s.path.Join(sub)}, nil
}

// Fields returns a nested scope relative to this one.
func (s *Scope) Fields(name string) (*Scope, error) {
	sub, err := s.form.parsePath(name)
	if err != nil {
		return nil, err
	}
	return &Scope{form: s.form, path: s.path.Join(sub), index: -1}, nil
}

// Slice expands the scope over its bound sequence, one scope per element,
// each knowing its element and index. The scope's value must resolve to a
// slice or array; anything else returns ErrNotSequence, and an unresolved
// value returns ErrUnknownRoot.
func (s *Scope) Slice() ([]*Scope, error) {
	v, ok := s.form.bound(s.path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoot, s.Name())
	}

	switch doc := v.(type) {
	case json.RawMessage:
		v = gjson.ParseBytes(doc).Value()
	case []byte:
		v = gjson.ParseBytes(doc).Value()
	case gjson.Result:
		v = doc.Value()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %q", ErrNotSequence, s.Name())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %q", ErrNotSequence, s.Name())
	}

	scopes := make([]*Scope, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		scopes = append(scopes, &Scope{
			form:      s.form,
			path:      s.path.Index(i),
			object:    rv.Index(i).Interface(),
			hasObject: true,
			index:     i,
		})
	}
	return scopes, nil
}

func (s *Scope) must(name string) *Field {
	field, err := s.Field(name)
	if err != nil {
		panic(err)
	}
	return field
}

// Input renders an input of an arbitrary type for a scoped field.
func (s *Scope) Input(name, typ string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Input(typ, attrs...)
}

// Text renders a text input for a scoped field.
func (s *Scope) Text(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Text(attrs...)
}

// Password renders a password input for a scoped field.
func (s *Scope) Password(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Password(attrs...)
}

// Hidden renders a hidden input for a scoped field.
func (s *Scope) Hidden(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Hidden(attrs...)
}

// File renders a file input for a scoped field.
func (s *Scope) File(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).File(attrs...)
}

// Textarea renders a textarea for a scoped field.
func (s *Scope) Textarea(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Textarea(attrs...)
}

// Checkbox renders a checkbox for a scoped field.
func (s *Scope) Checkbox(name string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Checkbox(attrs...)
}

// Radio renders one radio button for a scoped field.
func (s *Scope) Radio(name, value string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Radio(value, attrs...)
}

// Select renders a select for a scoped field.
func (s *Scope) Select(name string, choices render.Choices, attrs ...render.Attrs) template.HTML {
	return s.must(name).Select(choices, attrs...)
}

// Label renders a label for a scoped field.
func (s *Scope) Label(name, text string, attrs ...render.Attrs) template.HTML {
	return s.must(name).Label(text, attrs...)
}

// Value returns a scoped field's effective value.
func (s *Scope) Value(name string) (any, bool) {
	return s.must(name).Value()
}

// Error returns a scoped field's first validation message.
func (s *Scope) Error(name string) string {
	return s.must(name).Error()
}

// Required declares a scoped field as required.
func (s *Scope) Required(name string) *Scope {
	s.must(name).Required()
	return s
}

// MinLength declares a minimum length for a scoped field.
func (s *Scope) MinLength(name string, min int) *Scope {
	s.must(name).MinLength(min)
	return s
}

// MaxLength declares a maximum length for a scoped field.
func (s *Scope) MaxLength(name string, max int) *Scope {
	s.must(name).MaxLength(max)
	return s
}

// LengthBetween declares a length range for a scoped field.
func (s *Scope) LengthBetween(name string, min, max int) *Scope {
	s.must(name).LengthBetween(min, max)
	return s
}

// Equals declares that a scoped field must match another field of the same
// scope.
func (s *Scope) Equals(name, other string) *Scope {
	otherPath, err := s.form.parsePath(other)
	if err != nil {
		panic(err)
	}
	s.must(name).Equals(s.path.Join(otherPath).String())
	return s
}

// Matches declares a pattern for a scoped field.
func (s *Scope) Matches(name, pattern string) *Scope {
	s.must(name).Matches(pattern)
	return s
}

// In declares an allowed value set for a scoped field.
func (s *Scope) In(name string, values ...string) *Scope {
	s.must(name).In(values...)
	return s
}

// Email declares an email format check for a scoped field.
func (s *Scope) Email(name string) *Scope {
	s.must(name).Email()
	return s
}

// URL declares a URL format check for a scoped field.
func (s *Scope) URL(name string) *Scope {
	s.must(name).URL()
	return s
}

// UUID declares a UUID format check for a scoped field.
func (s *Scope) UUID(name string) *Scope {
	s.must(name).UUID()
	return s
}

// Numeric declares a numeric check for a scoped field.
func (s *Scope) Numeric(name string) *Scope {
	s.must(name).Numeric()
	return s
}

// Min declares a numeric lower bound for a scoped field.
func (s *Scope) Min(name string, min float64) *Scope {
	s.must(name).Min(min)
	return s
}

// Max declares a numeric upper bound for a scoped field.
func (s *Scope) Max(name string, max float64) *Scope {
	s.must(name).Max(max)
	return s
}

// Check declares a custom rule for a scoped field.
func (s *Scope) Check(name string, fn func(string) bool, message string) *Scope {
	s.must(name).Check(fn, message)
	return s
}

// Filter registers value filters for a scoped field.
func (s *Scope) Filter(name string, filters ...func(string) string) *Scope {
	s.must(name).Filter(filters...)
	return s
}
