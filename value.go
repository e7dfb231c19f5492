package formkit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

// formatValue renders a resolved value the way a form control expects it.
// Zero values format as themselves ("0", "false"), never as empty strings,
// so a zero age round-trips through an input.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	case []byte:
		return string(t)
	case json.RawMessage:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case gjson.Result:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// stringifyAll expands a value into the string set a multi-select compares
// options against. Scalars become a single-element set.
func stringifyAll(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []byte:
		return []string{formatValue(t)}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, formatValue(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{formatValue(v)}
}
