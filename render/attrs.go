package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Attrs holds extra HTML attributes for a control. Values render according
// to their type: strings and numbers become key="value", a true bool becomes
// a bare attribute, a false bool or nil drops the attribute, and a nested
// Attrs value expands into prefixed attributes, so Attrs{"data": Attrs{"id":
// "x"}} renders data-id="x".
type Attrs map[string]any

// Merge combines attribute sets left to right, later sets overriding earlier
// keys. The inputs are left untouched and may be nil.
func Merge(sets ...Attrs) Attrs {
	merged := Attrs{}
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

type attrPair struct {
	key  string
	val  string
	bare bool
}

// writeExtra renders user-supplied attributes after the control's own.
// Pairs are sorted by key so the same inputs always produce the same markup.
func writeExtra(b *strings.Builder, attrs Attrs) {
	pairs := flatten("", attrs)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	for _, p := range pairs {
		b.WriteByte(' ')
		b.WriteString(p.key)
		if !p.bare {
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(p.val))
			b.WriteByte('"')
		}
	}
}

func flatten(prefix string, attrs Attrs) []attrPair {
	pairs := make([]attrPair, 0, len(attrs))
	for key, v := range attrs {
		full := key
		if prefix != "" {
			full = prefix + "-" + key
		}
		if !safeKey(full) {
			continue
		}
		switch t := v.(type) {
		case Attrs:
			pairs = append(pairs, flatten(full, t)...)
		case map[string]any:
			pairs = append(pairs, flatten(full, Attrs(t))...)
		case bool:
			if t {
				pairs = append(pairs, attrPair{key: full, bare: true})
			}
		case nil:
		default:
			pairs = append(pairs, attrPair{key: full, val: attrString(t)})
		}
	}
	return pairs
}

func attrString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// safeKey rejects attribute names that could break out of the tag. Values
// are escaped, names are validated.
func safeKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == ':':
		default:
			return false
		}
	}
	return true
}
