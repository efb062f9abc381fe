package vel

import (
	"strings"

	"github.com/lestrrat-go/vel/internal/orderedmap"
)

func parseStyle(s string) *orderedmap.Map[string, string] {
	m := orderedmap.New[string, string]()
	if s == "" {
		return m
	}
	for _, item := range strings.Split(s, ";") {
		i := strings.IndexByte(item, ':')
		if i < 0 {
			continue
		}
		m.Set(strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:]))
	}
	return m
}

// Style returns the parsed style attribute as property/value pairs.
func (e *Element) Style() map[string]string {
	parsed := parseStyle(e.stringAttr("style"))
	m := make(map[string]string, parsed.Len())
	for k, v := range parsed.Range() {
		m[k] = v
	}
	return m
}

// StyleProp returns one property of the style attribute.
func (e *Element) StyleProp(name string) (string, bool) {
	return parseStyle(e.stringAttr("style")).Get(name)
}

// SetStyle sets one style property and rewrites the whole style
// attribute as "key:value;" pairs in the order the keys were first seen.
// Spacing and duplicate keys of the previous value are not preserved. A
// nil value removes the property.
func (e *Element) SetStyle(name string, value any) *Element {
	parsed := parseStyle(e.stringAttr("style"))
	if isNil(value) {
		parsed.Delete(name)
	} else {
		parsed.Set(name, stringify(value))
	}

	var sb strings.Builder
	for k, v := range parsed.Range() {
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(v)
		sb.WriteByte(';')
	}
	e.attrs.Set("style", AttrValue{scalar: sb.String()})
	return e
}
