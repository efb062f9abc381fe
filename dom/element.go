package dom

import (
	"github.com/lestrrat-go/vel"
	"github.com/lestrrat-go/vel/internal/orderedmap"
)

type Element struct {
	treeNode
	name      string
	ns        string
	attrs     *orderedmap.Map[attrKey, *Attribute]
	listeners []listener
}

var _ Node = (*Element)(nil)
var _ vel.DOMElement = (*Element)(nil)

func newElement(namespace, name string) *Element {
	return &Element{
		name:  name,
		ns:    namespace,
		attrs: orderedmap.New[attrKey, *Attribute](),
	}
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

// URI returns the namespace of the element, or the empty string.
func (e *Element) URI() string {
	return e.ns
}

// SetAttribute sets an attribute without a namespace. Non-string values
// are converted to strings.
func (e *Element) SetAttribute(name string, value any) {
	e.setAttribute("", name, value)
}

// SetAttributeNS sets an attribute in the given namespace.
func (e *Element) SetAttributeNS(namespace, name string, value any) {
	e.setAttribute(namespace, name, value)
}

func (e *Element) setAttribute(namespace, name string, value any) {
	key := attrKey{ns: namespace, name: name}
	if attr, ok := e.attrs.Get(key); ok {
		attr.value = domString(value)
		return
	}
	e.attrs.Set(key, &Attribute{name: name, ns: namespace, value: domString(value)})
}

func (e *Element) GetAttribute(name string) (string, bool) {
	return e.GetAttributeNS("", name)
}

func (e *Element) GetAttributeNS(namespace, name string) (string, bool) {
	attr, ok := e.attrs.Get(attrKey{ns: namespace, name: name})
	if !ok {
		return "", false
	}
	return attr.value, true
}

// Attributes populates the given slice with the attributes
// of the element. If the slice is nil, it will create a new slice
// and return it. If the element has no attributes, it will return
// an empty slice.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

// AddEventListener registers handler for event. The same handler may be
// registered more than once.
func (e *Element) AddEventListener(event string, handler any) {
	e.listeners = append(e.listeners, listener{event: event, handler: handler})
}

// Listeners returns the handlers registered for event, in registration
// order.
func (e *Element) Listeners(event string) []any {
	var list []any
	for _, l := range e.listeners {
		if l.event == event {
			list = append(list, l.handler)
		}
	}
	return list
}

// Dispatch invokes the listeners registered for event on e and returns
// how many were called. The event does not bubble.
func (e *Element) Dispatch(event string, detail any) int {
	ev := &Event{Type: event, Target: e, Detail: detail}
	var n int
	for _, l := range e.listeners {
		if l.event != event {
			continue
		}
		if invoke(l.handler, ev) {
			n++
		}
	}
	return n
}

// AppendChild adds n, which must have been created by the same
// document, as the last child.
func (e *Element) AppendChild(n vel.DOMNode) error {
	if e.doc == nil {
		return ErrInvalidOperation
	}
	child, err := e.doc.adopt(n)
	if err != nil {
		return err
	}
	return appendChild(e, child)
}

// TextContent returns the concatenated text of all descendant text
// nodes.
func (e *Element) TextContent() string {
	b, _ := e.Content(nil)
	return string(b)
}
