package htmldom

import (
	"fmt"
	"strconv"

	"github.com/lestrrat-go/vel"
	"golang.org/x/net/html"
)

// Element wraps an element node created by a Document.
type Element struct {
	doc *Document
	n   *html.Node
}

var _ vel.DOMElement = (*Element)(nil)

// Node returns the underlying html.Node.
func (e *Element) Node() *html.Node {
	return e.n
}

func (e *Element) SetAttribute(name string, value any) {
	e.setAttr("", name, value)
}

// SetAttributeNS sets a namespaced attribute. The xlink, xml and xmlns
// namespaces are stored under their usual prefixes, which is what
// html.Render writes before the attribute name.
func (e *Element) SetAttributeNS(namespace, name string, value any) {
	if prefix, ok := attrNamespaces[namespace]; ok {
		namespace = prefix
	}
	e.setAttr(namespace, name, value)
}

func (e *Element) setAttr(namespace, name string, value any) {
	s := attrString(value)
	for i, a := range e.n.Attr {
		if a.Namespace == namespace && a.Key == name {
			e.n.Attr[i].Val = s
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Namespace: namespace, Key: name, Val: s})
}

func (e *Element) AddEventListener(event string, handler any) {
	l := Listener{Node: e.n, Event: event, Handler: handler}
	e.doc.listeners[e.n] = append(e.doc.listeners[e.n], l)
	if e.doc.recorder != nil {
		e.doc.recorder(l)
	}
}

func (e *Element) AppendChild(child vel.DOMNode) error {
	return e.doc.appendTo(e.n, child)
}

// GetAttribute returns the value of an attribute without a namespace.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func attrString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
