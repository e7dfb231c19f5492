package resolve

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// TokenLookuper lets a value take over resolution of its own path tokens.
// Lookup consults it before any reflection-based traversal, so types backed
// by something other than plain fields (lazy records, wrappers around raw
// rows) can still participate in field paths.
type TokenLookuper interface {
	LookupToken(token string) (any, bool)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Lookup walks root one path token at a time and reports whether the full
// path resolved. Each token is matched against the current value in order:
// a TokenLookuper implementation, a JSON document ([]byte, json.RawMessage,
// or gjson.Result), a slice or array index, a string-keyed map entry, a
// struct field, and finally a zero-argument accessor method. Pointers are
// dereferenced along the way; a nil pointer ends resolution without error.
//
// Resolution failures are not distinguished from each other. A missing map
// key, an out-of-range index, and a nil pointer all report ok=false, which
// callers render as an absent value.
func Lookup(root any, path Path) (any, bool) {
	cur := root
	for _, token := range path {
		next, ok := step(cur, token)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if res, ok := cur.(gjson.Result); ok {
		return res.Value(), true
	}
	return cur, true
}

func step(v any, token string) (any, bool) {
	var ptr reflect.Value
	for {
		if v == nil {
			return nil, false
		}
		if tl, ok := v.(TokenLookuper); ok {
			return tl.LookupToken(token)
		}
		switch doc := v.(type) {
		case gjson.Result:
			return jsonStep(doc, token)
		case json.RawMessage:
			return jsonStep(gjson.ParseBytes(doc), token)
		case []byte:
			return jsonStep(gjson.ParseBytes(doc), token)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return descend(rv, ptr, token)
		}
		if rv.IsNil() {
			return nil, false
		}
		ptr = rv
		v = rv.Elem().Interface()
	}
}

// descend resolves token against a non-pointer value. ptr holds the pointer
// the value was unwrapped from, if any, so pointer-receiver accessors remain
// callable after dereferencing.
func descend(rv reflect.Value, ptr reflect.Value, token string) (any, bool) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if out, ok := indexStep(rv, token); ok {
			return out, true
		}
	case reflect.Map:
		if out, ok := mapStep(rv, token); ok {
			return out, true
		}
	case reflect.Struct:
		if out, ok := fieldStep(rv, token); ok {
			return out, true
		}
	}
	if out, ok := callStep(rv, token); ok {
		return out, true
	}
	if ptr.IsValid() {
		return callStep(ptr, token)
	}
	return nil, false
}

func indexStep(rv reflect.Value, token string) (any, bool) {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 || idx >= rv.Len() {
		return nil, false
	}
	return rv.Index(idx).Interface(), true
}

func mapStep(rv reflect.Value, token string) (any, bool) {
	keyType := rv.Type().Key()
	if keyType.Kind() != reflect.String {
		return nil, false
	}
	key := reflect.ValueOf(token)
	if key.Type() != keyType {
		key = key.Convert(keyType)
	}
	mv := rv.MapIndex(key)
	if !mv.IsValid() {
		return nil, false
	}
	return mv.Interface(), true
}

// fieldStep matches token against struct fields, preferring explicit form
// tags over json tags over field names. Name matches fall back to a
// case-insensitive comparison so "name" finds Name.
func fieldStep(rv reflect.Value, token string) (any, bool) {
	if i, ok := matchField(rv.Type(), token); ok {
		return rv.Field(i).Interface(), true
	}
	// Promoted fields from embedded structs are only reachable by name.
	fv := rv.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, token)
	})
	if fv.IsValid() && fv.CanInterface() {
		return fv.Interface(), true
	}
	return nil, false
}

func matchField(rt reflect.Type, token string) (int, bool) {
	match := func(accept func(reflect.StructField) bool) (int, bool) {
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			if accept(f) {
				return i, true
			}
		}
		return 0, false
	}

	if i, ok := match(func(f reflect.StructField) bool {
		name, ok := tagName(f, "form")
		return ok && name == token
	}); ok {
		return i, true
	}
	if i, ok := match(func(f reflect.StructField) bool {
		name, ok := tagName(f, "json")
		return ok && name == token
	}); ok {
		return i, true
	}
	if i, ok := match(func(f reflect.StructField) bool {
		return f.Name == token
	}); ok {
		return i, true
	}
	return match(func(f reflect.StructField) bool {
		return strings.EqualFold(f.Name, token)
	})
}

func tagName(f reflect.StructField, key string) (string, bool) {
	tag, ok := f.Tag.Lookup(key)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return "", false
	}
	return name, true
}

// callStep invokes a zero-argument accessor method named after the token.
// Snake and kebab case tokens map onto exported camel case names, so
// "billing_email" calls BillingEmail. Methods may return a single value or
// a (value, error) pair; a non-nil error ends resolution quietly.
func callStep(rv reflect.Value, token string) (any, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName(accessorName(token))
	if !m.IsValid() {
		m = rv.MethodByName(token)
	}
	if !m.IsValid() {
		return nil, false
	}

	mt := m.Type()
	if mt.NumIn() != 0 {
		return nil, false
	}
	switch mt.NumOut() {
	case 1:
		return m.Call(nil)[0].Interface(), true
	case 2:
		if mt.Out(1) != errType {
			return nil, false
		}
		out := m.Call(nil)
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, false
		}
		return out[0].Interface(), true
	}
	return nil, false
}

func accessorName(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	upper := true
	for _, r := range token {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// gjson assigns meaning to several characters inside paths. Tokens are
// escaped so keys containing them still address a literal member.
var jsonPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`*`, `\*`,
	`?`, `\?`,
)

func jsonStep(doc gjson.Result, token string) (any, bool) {
	res := doc.Get(jsonPathEscaper.Replace(token))
	if !res.Exists() {
		return nil, false
	}
	return res, true
}
