package vel

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// V wraps a primitive as a child Value.
func V(v any) Value {
	return Value{v: v}
}

// Text is shorthand for V(s).
func Text(s string) Value {
	return Value{v: s}
}

func (Value) isChild() {}

func (Value) ChildType() ChildType {
	return ValueChild
}

// Interface returns the wrapped value.
func (v Value) Interface() any {
	return v.v
}

// IsNil reports whether the value is nil (the absent child).
func (v Value) IsNil() bool {
	return isNil(v.v)
}

// String renders the value the way it appears in serialized output.
// nil renders as the empty string.
func (v Value) String() string {
	return stringify(v.v)
}

func (v Value) equal(other Value) bool {
	if v.v == nil || other.v == nil {
		return v.v == nil && other.v == nil
	}
	if reflect.TypeOf(v.v) != reflect.TypeOf(other.v) || !reflect.TypeOf(v.v).Comparable() {
		return false
	}
	return v.v == other.v
}

// stringify converts v to its string form: booleans as true/false,
// floats in shortest form, slices joined with ",". nil becomes the
// empty string.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case Child:
		return v.String()
	case fmt.Stringer:
		return v.String()
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		parts := make([]string, rv.Len())
		for i := range rv.Len() {
			parts[i] = stringify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		// 1e-07 -> 1e-7
		if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+2 {
			exp := strings.TrimLeft(s[i+2:], "0")
			s = s[:i+2] + exp
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
