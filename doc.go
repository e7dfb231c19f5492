// Package formkit binds submitted form parameters and server-side data into
// one field-path view, renders HTML controls from it, and validates it.
//
// A form is built per request. Field paths like "user.name" resolve against
// submitted parameters first, then against bound values, so a failed
// submission re-renders what the user typed while a fresh form shows the
// record. Controls, labels, errors, and validation all hang off the same
// paths:
//
//	form, err := formkit.New(r, formkit.WithBind("user", user))
//	if err != nil { ... }
//
//	name, _ := form.Field("user.name")
//	name.Required().MaxLength(80)
//
//	email, _ := form.Field("user.email")
//	email.Filter(sanitizer.TrimToLower).Required().Email()
//
//	if r.Method == http.MethodPost && form.Valid() {
//	    // persist, redirect
//	}
//	// render: name.Label(""), name.Text(), name.Error(), ...
//
// # Field Paths
//
// A path addresses one value inside the bound data: map keys, struct fields
// (by form tag, json tag, or name), slice indexes, JSON document members,
// and zero-argument accessor methods all participate. "user.orders.0.total"
// walks a map, a slice, and a struct without the form knowing any of those
// types. Path handling lives in the resolve package.
//
// The path doubles as the control's submit name, with dashes instead of dots
// for the id: name="user.orders.0.total", id="user-orders-0-total".
//
// # Error Model
//
// Mistakes a developer makes are loud: an empty or malformed field name and
// a root that matches nothing return errors immediately. Mistakes a user
// makes are data: validation failures are collected, not returned as errors,
// and re-render alongside the fields. Values absent from the data, like
// fields of a record that does not exist yet, render as empty controls.
//
// # Validation
//
// Rules chain off fields and run in declaration order when Valid, Errors,
// Error, or Validate is first called; the result is memoized for the rest of
// the request. Error returns a field's first failure, which is what renders
// next to the control. Filters registered on a field clean its value before
// checks without changing what renders. Messages can be overridden per
// translation key with WithMessages, loaded from YAML via ParseMessages.
//
// # Scopes
//
// Fields returns a scope that prefixes every name passed through it, which
// keeps templates for one object short. Slice expands a scope over a bound
// slice for repeated sections:
//
//	addrs, _ := form.Fields("user.addresses")
//	scopes, _ := addrs.Slice()
//	for _, s := range scopes {
//	    _ = s.Text("street") // name="user.addresses.N.street"
//	}
//
// # Templates
//
// FuncMap wires a form into html/template with field, fields, valid, errors,
// values, choice, choices, and attrs functions. WithQueryNames renames valid and
// errors when the hosting template set already uses them. Controls come back
// as template.HTML; templ-based views can use the render package directly,
// whose builders return templ.Component.
//
// # Middleware
//
// Middleware builds the form per request and stores it in the context.
// Bodies that fail to parse log at debug level and yield an empty form, so
// a garbled submission re-renders instead of failing the request.
package formkit
