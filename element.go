package vel

import (
	"iter"
	"reflect"

	"github.com/lestrrat-go/pdebug/v3"
)

// H builds an element. The namespace is resolved from name: known SVG
// element names get SVGNamespace, anything else none.
//
// attrs is normalized immediately (see Attrs). Each of children may be
// an *Element, a *Comment, a primitive, or a slice of those; slices are
// flattened exactly one level.
func H(name string, attrs Attrs, children ...any) *Element {
	ns, tag := ResolveName(name)
	return newElement(ns, tag, attrs, children)
}

// HNS builds an element in an explicit namespace. No lookup is done on
// name. An empty namespace means plain HTML.
func HNS(namespace, name string, attrs Attrs, children ...any) *Element {
	return newElement(namespace, name, attrs, children)
}

func newElement(namespace, name string, attrs Attrs, children []any) *Element {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
		pdebug.Printf("namespace=%q name=%q attrs=%d children=%d", namespace, name, len(attrs), len(children))
	}

	return &Element{
		namespace: namespace,
		name:      name,
		attrs:     normalizeAttrs(attrs),
		children:  appendChildren(make([]Child, 0, len(children)), children),
	}
}

func appendChildren(dst []Child, children []any) []Child {
	for _, c := range children {
		if items, ok := sliceItems(c); ok {
			for _, item := range items {
				dst = append(dst, toChild(item))
			}
			continue
		}
		dst = append(dst, toChild(c))
	}
	return dst
}

// sliceItems unpacks one level of a slice or array argument.
func sliceItems(v any) ([]any, bool) {
	switch v := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return v, true
	case []Child:
		items := make([]any, len(v))
		for i, c := range v {
			items[i] = c
		}
		return items, true
	case []*Element:
		items := make([]any, len(v))
		for i, e := range v {
			items[i] = e
		}
		return items, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range rv.Len() {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}

func toChild(v any) Child {
	switch v := v.(type) {
	case *Element:
		if v == nil {
			return Value{}
		}
		return v
	case *Comment:
		if v == nil {
			return Value{}
		}
		return v
	case Value:
		return v
	case Child:
		return v
	}
	return Value{v: v}
}

func (*Element) isChild() {}

func (*Element) ChildType() ChildType {
	return ElementChild
}

// Namespace returns the element's namespace URI, or the empty string
// for plain HTML elements.
func (e *Element) Namespace() string {
	return e.namespace
}

// Name returns the tag name.
func (e *Element) Name() string {
	return e.name
}

// Children returns a copy of the child list.
func (e *Element) Children() []Child {
	dst := make([]Child, len(e.children))
	copy(dst, e.children)
	return dst
}

// Attributes iterates over the normalized attributes in order.
func (e *Element) Attributes() iter.Seq2[string, AttrValue] {
	return e.attrs.Range()
}

// Attr returns the stored value of an attribute without coercion. For a
// namespaced group the result is a map[string]any copy of the group.
func (e *Element) Attr(name string) (any, bool) {
	v, ok := e.attrs.Get(name)
	if !ok {
		return nil, false
	}
	if v.group != nil {
		return v.groupSnapshot(), true
	}
	return v.scalar, true
}

// SetAttr stores the string form of value. A nil value removes the
// attribute.
func (e *Element) SetAttr(name string, value any) *Element {
	if isNil(value) {
		e.attrs.Delete(name)
		return e
	}
	e.attrs.Set(name, AttrValue{scalar: stringify(value)})
	return e
}

// RemoveAttr deletes an attribute or a whole namespaced group.
func (e *Element) RemoveAttr(name string) *Element {
	e.attrs.Delete(name)
	return e
}

// Data returns the value of the data-<name> attribute.
func (e *Element) Data(name string) (any, bool) {
	return e.Attr("data-" + name)
}

// SetData stores value under data-<name> as is. Unlike SetAttr the
// value is not converted to a string, so rich values can be carried
// through to a foreign tree builder.
func (e *Element) SetData(name string, value any) *Element {
	if isNil(value) {
		e.attrs.Delete("data-" + name)
		return e
	}
	e.attrs.Set("data-"+name, AttrValue{scalar: value})
	return e
}

// AttrNS returns the attribute name within the namespaced group ns. ns
// is resolved with ResolveNamespace.
func (e *Element) AttrNS(ns, name string) (any, bool) {
	v, ok := e.attrs.Get(ResolveNamespace(ns))
	if !ok {
		return nil, false
	}
	return v.GroupValue(name)
}

// SetAttrNS stores value in the namespaced group ns, creating the group
// if needed. A nil value removes the entry.
func (e *Element) SetAttrNS(ns, name string, value any) *Element {
	uri := ResolveNamespace(ns)
	if isNil(value) {
		if v, ok := e.attrs.Get(uri); ok && v.group != nil {
			v.group.Delete(name)
			if v.group.Len() == 0 {
				e.attrs.Delete(uri)
			}
		}
		return e
	}
	groupFor(e.attrs, uri).Set(name, scalarValue(name, value))
	return e
}

// Append adds child to the end of the child list. The same node may be
// appended more than once.
func (e *Element) Append(child any) *Element {
	e.children = append(e.children, toChild(child))
	return e
}

// Remove deletes the first occurrence of child. Elements and comments
// are matched by identity, primitives by value. Removing something that
// is not a child is a no-op.
func (e *Element) Remove(child any) *Element {
	target := toChild(child)
	for i, c := range e.children {
		if sameChild(c, target) {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	return e
}

func sameChild(a, b Child) bool {
	switch a := a.(type) {
	case *Element:
		other, ok := b.(*Element)
		return ok && a == other
	case *Comment:
		other, ok := b.(*Comment)
		return ok && a == other
	case Value:
		other, ok := b.(Value)
		return ok && a.equal(other)
	}
	return false
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.stringAttr("id")
}

func (e *Element) SetID(id string) *Element {
	e.attrs.Set("id", AttrValue{scalar: id})
	return e
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	return e.stringAttr("class")
}

func (e *Element) SetClassName(className string) *Element {
	e.attrs.Set("class", AttrValue{scalar: className})
	return e
}

func (e *Element) stringAttr(name string) string {
	v, ok := e.attrs.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

var _ Child = (*Element)(nil)
