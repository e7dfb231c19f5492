// Package render builds HTML form controls as templ components.
//
// Each builder returns a templ.Component writing a single control: text,
// password, hidden, and file inputs, checkboxes, radio buttons, selects,
// textareas, and labels. Controls take their name, id, and value explicitly,
// which keeps the package free of any opinion about where values come from.
//
// # Markup
//
// Output is deterministic. A control writes its own attributes in a fixed
// order (type, name, id, value), then any extra attributes sorted by key, so
// the same inputs always produce byte-identical markup. All attribute values
// and text content pass through templ's escaping.
//
// Extra attributes use the Attrs map:
//
//	render.Text("user.name", "user-name", "sshaw", render.Attrs{
//	    "class":    "wide",
//	    "required": true,
//	    "data":     render.Attrs{"controller": "inline-edit"},
//	})
//	// <input type="text" name="user.name" id="user-name" value="sshaw"
//	//        class="wide" data-controller="inline-edit" required>
//
// # Integration
//
// Components compose with templ-based views directly. For html/template
// views, HTML flattens a component into a template.HTML fragment.
package render
