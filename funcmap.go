package formkit

import (
	"errors"
	"html/template"

	"github.com/dmitrymomot/formkit/render"
)

// FuncMap exposes the form to html/template views:
//
//	field "user.name"       -> *Field
//	fields "user"           -> *Scope
//	valid                   -> bool
//	errors                  -> map of field -> messages
//	errors "user.name"      -> first message for the field
//	values "AL" "AK"        -> render.Choices from flat values
//	choice "Alabama" "AL"   -> one labeled render.Choice
//	choices c1 c2           -> render.Choices from labeled choices
//	attrs "class" "wide"    -> render.Attrs from key/value pairs
//
// The valid and errors entries honor WithQueryNames, so forms embedded in
// templates that already define those names can move out of the way.
func (f *Form) FuncMap() template.FuncMap {
	fm := template.FuncMap{
		"field":   f.Field,
		"fields":  f.Fields,
		"values":  render.Values,
		"choice":  render.Pair,
		"choices": render.List,
		"attrs":   templateAttrs,
	}
	fm[f.validName] = f.Valid
	fm[f.errorsName] = f.queryErrors
	return fm
}

// queryErrors backs the errors template func: all messages by field without
// arguments, the first message of one field with an argument.
func (f *Form) queryErrors(field ...string) any {
	if len(field) == 0 {
		errs := f.Errors()
		out := make(map[string][]string, len(errs.Fields()))
		for _, name := range errs.Fields() {
			out[name] = errs.Get(name)
		}
		return out
	}
	return f.Error(field[0])
}

func templateAttrs(pairs ...any) (render.Attrs, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("attrs requires key value pairs")
	}
	attrs := make(render.Attrs, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("attrs keys must be strings")
		}
		attrs[key] = pairs[i+1]
	}
	return attrs, nil
}
