package dom

import (
	"fmt"
	"strconv"
)

// Attribute is an attribute set on an Element.
type Attribute struct {
	name  string
	ns    string
	value string
}

func (a *Attribute) LocalName() string {
	return a.name
}

// URI returns the attribute's namespace, or the empty string.
func (a *Attribute) URI() string {
	return a.ns
}

func (a *Attribute) Value() string {
	return a.value
}

type attrKey struct {
	ns   string
	name string
}

// domString converts a value passed to SetAttribute into the string
// the attribute will hold.
func domString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
