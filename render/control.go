package render

import (
	"context"
	"html/template"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Input builds an <input> of an arbitrary type. The attribute order is
// fixed: type, name, id, value, then extras sorted by key. An empty value
// omits the value attribute entirely, which keeps unresolved fields
// indistinguishable from blank ones in the markup.
func Input(typ, name, id, value string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<input type="`)
		b.WriteString(templ.EscapeString(typ))
		b.WriteString(`" name="`)
		b.WriteString(templ.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`"`)
		if value != "" {
			b.WriteString(` value="`)
			b.WriteString(templ.EscapeString(value))
			b.WriteString(`"`)
		}
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Text builds a single-line text input.
func Text(name, id, value string, attrs Attrs) templ.Component {
	return Input("text", name, id, value, attrs)
}

// Password builds a password input. The value is rendered when present so a
// bound value round-trips; callers that never want credentials echoed back
// simply pass an empty value.
func Password(name, id, value string, attrs Attrs) templ.Component {
	return Input("password", name, id, value, attrs)
}

// Hidden builds a hidden input.
func Hidden(name, id, value string, attrs Attrs) templ.Component {
	return Input("hidden", name, id, value, attrs)
}

// File builds a file input. File controls carry no value attribute.
func File(name, id string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<input type="file" name="`)
		b.WriteString(templ.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`"`)
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Checkbox builds a checkbox input. Unlike text controls the value attribute
// is always written, since it identifies the box within its group.
func Checkbox(name, id, value string, checked bool, attrs Attrs) templ.Component {
	return checkable("checkbox", name, id, value, checked, attrs)
}

// Radio builds a radio button.
func Radio(name, id, value string, checked bool, attrs Attrs) templ.Component {
	return checkable("radio", name, id, value, checked, attrs)
}

func checkable(typ, name, id, value string, checked bool, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<input type="`)
		b.WriteString(typ)
		b.WriteString(`" name="`)
		b.WriteString(templ.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`" value="`)
		b.WriteString(templ.EscapeString(value))
		b.WriteString(`"`)
		if checked {
			b.WriteString(` checked`)
		}
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Select builds a select with one option per choice. Options whose values
// appear in selected are marked; passing multiple selections only makes
// sense together with a multiple attribute, but the control does not
// enforce that.
func Select(name, id string, choices Choices, selected []string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<select name="`)
		b.WriteString(templ.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`"`)
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		for _, c := range choices {
			b.WriteString(`<option value="`)
			b.WriteString(templ.EscapeString(c.Value))
			b.WriteString(`"`)
			if slices.Contains(selected, c.Value) {
				b.WriteString(` selected`)
			}
			b.WriteString(`>`)
			b.WriteString(templ.EscapeString(c.Label))
			b.WriteString(`</option>`)
		}
		b.WriteString(`</select>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Textarea builds a textarea with the value as its escaped body.
func Textarea(name, id, value string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<textarea name="`)
		b.WriteString(templ.EscapeString(name))
		b.WriteString(`" id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`"`)
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(value))
		b.WriteString(`</textarea>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Label builds a label pointing at a control id.
func Label(forID, text string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<label for="`)
		b.WriteString(templ.EscapeString(forID))
		b.WriteString(`"`)
		writeExtra(&b, attrs)
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(text))
		b.WriteString(`</label>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HTML renders a component into a template.HTML fragment for use with
// html/template. Control components only fail when the writer does, so a
// render error yields an empty fragment.
func HTML(c templ.Component) template.HTML {
	h, err := templ.ToGoHTML(context.Background(), c)
	if err != nil {
		return ""
	}
	return h
}
