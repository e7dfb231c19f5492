// Package resolve walks arbitrary Go value graphs using dotted field paths.
//
// A field path like "user.address.0.street" names one value inside a graph of
// maps, structs, slices, and JSON documents. The package parses such paths and
// resolves them against any root value, which lets form helpers address nested
// data without knowing its concrete types up front.
//
// # Path Syntax
//
// Paths are dot-separated tokens. A token selects, depending on the current
// value, a map key, a struct field, a slice index, a JSON member, or an
// accessor method:
//
//	orders.0.total      // slice index, then struct field or map key
//	user.billing_email  // calls BillingEmail() if no field matches
//
// Parse rejects empty paths and empty tokens. Beyond that, tokens are opaque:
// any map key that does not contain a dot can be addressed.
//
// # Resolution
//
// Lookup matches each token against the current value in a fixed order:
//
//   - a TokenLookuper implementation, which overrides everything else
//   - a JSON document: []byte, json.RawMessage, or gjson.Result
//   - a slice or array, when the token parses as an index
//   - a string-keyed map entry
//   - a struct field, matched by form tag, json tag, name, then
//     case-insensitive name
//   - a zero-argument method, with snake_case tokens mapped to CamelCase
//
// Pointers are dereferenced transparently. All failures (missing key, index
// out of range, nil pointer, unexported field) report ok=false rather than an
// error, so callers can treat "not there" uniformly.
//
// # Usage
//
//	path, err := resolve.Parse("user.address.city")
//	if err != nil {
//	    return err
//	}
//	value, ok := resolve.Lookup(data, path)
//	if !ok {
//	    // render an empty control
//	}
package resolve
