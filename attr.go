package vel

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/vel/internal/orderedmap"
)

// attributes whose values are always stored as strings. Everything else
// keeps its raw value so that handlers and typed values survive until
// rendering.
var stringAttributes = map[string]struct{}{
	"id":    {},
	"class": {},
	"style": {},
}

// A is shorthand for constructing an Attr.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrsFromMap converts an unordered map into Attrs, sorting the keys.
func AttrsFromMap(m map[string]any) Attrs {
	attrs := make(Attrs, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		attrs = append(attrs, Attr{Key: k, Value: m[k]})
	}
	return attrs
}

func normalizeAttrs(attrs Attrs) *orderedmap.Map[string, AttrValue] {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	m := orderedmap.New[string, AttrValue]()
	for _, attr := range attrs {
		if isNil(attr.Value) {
			continue
		}

		if group, ok := groupEntries(attr.Value); ok {
			ns := ResolveNamespace(attr.Key)
			for name, value := range group {
				if isNil(value) {
					continue
				}
				groupFor(m, ns).Set(name, stringify(value))
			}
			continue
		}

		key := attr.Key
		if key == "className" {
			key = "class"
		}
		m.Set(key, AttrValue{scalar: scalarValue(key, attr.Value)})
	}
	return m
}

// groupFor returns the group stored under ns, creating it if needed. A
// scalar stored under the same key is replaced.
func groupFor(m *orderedmap.Map[string, AttrValue], ns string) *orderedmap.Map[string, any] {
	if v, ok := m.Get(ns); ok && v.group != nil {
		return v.group
	}
	g := orderedmap.New[string, any]()
	m.Set(ns, AttrValue{group: g})
	return g
}

func scalarValue(key string, v any) any {
	if _, ok := stringAttributes[key]; ok {
		return stringify(v)
	}
	return v
}

// groupEntries reports whether v is a namespaced attribute group, and
// if so returns its entries in order. Unordered maps are visited in
// sorted key order.
func groupEntries(v any) (iter.Seq2[string, any], bool) {
	switch v := v.(type) {
	case Attrs:
		return func(yield func(string, any) bool) {
			for _, a := range v {
				if !yield(a.Key, a.Value) {
					return
				}
			}
		}, true
	case map[string]any:
		return func(yield func(string, any) bool) {
			for _, k := range slices.Sorted(maps.Keys(v)) {
				if !yield(k, v[k]) {
					return
				}
			}
		}, true
	case map[string]string:
		return func(yield func(string, any) bool) {
			for _, k := range slices.Sorted(maps.Keys(v)) {
				if !yield(k, v[k]) {
					return
				}
			}
		}, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k.String(), rv.MapIndex(k).Interface()) {
				return
			}
		}
	}, true
}

// isNil reports whether v means "absent": an untyped nil or a typed nil
// pointer, map, slice, func, channel or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isHandler reports whether v is a function value, which the
// materializer wires up as an event listener.
func isHandler(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// IsGroup reports whether the attribute is a namespaced group.
func (v AttrValue) IsGroup() bool {
	return v.group != nil
}

// Scalar returns the stored scalar value. It is nil for groups.
func (v AttrValue) Scalar() any {
	return v.scalar
}

// IsHandler reports whether the scalar value is a function.
func (v AttrValue) IsHandler() bool {
	return v.group == nil && isHandler(v.scalar)
}

// String returns the scalar value in string form. Groups return the
// empty string.
func (v AttrValue) String() string {
	if v.group != nil {
		return ""
	}
	return stringify(v.scalar)
}

// Group iterates over the local-name/value pairs of a namespaced group
// in insertion order. It yields nothing for scalars.
func (v AttrValue) Group() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if v.group == nil {
			return
		}
		for k, val := range v.group.Range() {
			if !yield(k, val) {
				return
			}
		}
	}
}

// GroupValue returns one value of a namespaced group.
func (v AttrValue) GroupValue(name string) (any, bool) {
	if v.group == nil {
		return nil, false
	}
	return v.group.Get(name)
}

func (v AttrValue) groupSnapshot() map[string]any {
	m := make(map[string]any, v.group.Len())
	for k, val := range v.group.Range() {
		m[k] = val
	}
	return m
}
