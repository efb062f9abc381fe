// Package htmldom materializes element trees into golang.org/x/net/html
// nodes, so that they can be rendered with html.Render or handed to
// code that already works with parsed HTML.
package htmldom

import (
	"io"
	"strings"

	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/vel"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const mathMLNamespace = "http://www.w3.org/1998/Math/MathML"

var ErrWrongDocument = errors.New("node belongs to a different document")

// html.Node uses short names for foreign content instead of URIs
var elementNamespaces = map[string]string{
	vel.SVGNamespace: "svg",
	mathMLNamespace:  "math",
}

var attrNamespaces = map[string]string{
	"http://www.w3.org/1999/xlink":         "xlink",
	"http://www.w3.org/XML/1998/namespace": "xml",
	"http://www.w3.org/2000/xmlns/":        "xmlns",
}

// Listener is an event handler registered while materializing. html.Node
// has no notion of listeners, so they are kept by the Document.
type Listener struct {
	Node    *html.Node
	Event   string
	Handler any
}

type Option = option.Interface

type identListenerRecorder struct{}

// WithListenerRecorder registers a function that is called for every
// listener added to the document.
func WithListenerRecorder(fn func(Listener)) Option {
	return option.New(identListenerRecorder{}, fn)
}

// Document implements vel.Document on top of x/net/html nodes.
type Document struct {
	root      *html.Node
	nodes     map[*html.Node]struct{}
	listeners map[*html.Node][]Listener
	recorder  func(Listener)
}

var _ vel.Document = (*Document)(nil)

func New(options ...Option) *Document {
	d := &Document{
		root:      &html.Node{Type: html.DocumentNode},
		nodes:     make(map[*html.Node]struct{}),
		listeners: make(map[*html.Node][]Listener),
	}
	for _, o := range options {
		switch o.Ident() {
		case identListenerRecorder{}:
			d.recorder = o.Value().(func(Listener))
		}
	}
	return d
}

// Root returns the html.DocumentNode that AppendChild attaches to.
func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) CreateElement(name string) vel.DOMElement {
	return d.newElement("", name)
}

func (d *Document) CreateElementNS(namespace, name string) vel.DOMElement {
	return d.newElement(namespace, name)
}

func (d *Document) newElement(namespace, name string) *Element {
	n := &html.Node{
		Type: html.ElementNode,
		Data: name,
	}
	if namespace != "" {
		if short, ok := elementNamespaces[namespace]; ok {
			n.Namespace = short
		} else {
			n.Namespace = namespace
		}
	} else {
		n.DataAtom = atom.Lookup([]byte(name))
	}
	d.nodes[n] = struct{}{}
	return &Element{doc: d, n: n}
}

func (d *Document) CreateTextNode(data string) vel.DOMNode {
	n := &html.Node{Type: html.TextNode, Data: data}
	d.nodes[n] = struct{}{}
	return n
}

func (d *Document) CreateComment(data string) vel.DOMNode {
	n := &html.Node{Type: html.CommentNode, Data: data}
	d.nodes[n] = struct{}{}
	return n
}

// AppendChild attaches a node created by d to the document root.
func (d *Document) AppendChild(child vel.DOMNode) error {
	return d.appendTo(d.root, child)
}

func (d *Document) appendTo(parent *html.Node, child vel.DOMNode) error {
	var n *html.Node
	switch child := child.(type) {
	case *Element:
		n = child.n
	case *html.Node:
		n = child
	default:
		return vel.ErrUnsupportedNode
	}
	if _, ok := d.nodes[n]; !ok {
		return ErrWrongDocument
	}
	for p := parent; p != nil; p = p.Parent {
		if p == n {
			return errors.New("node cannot be appended to itself or a descendant")
		}
	}

	// html.Node.AppendChild panics on attached nodes
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	parent.AppendChild(n)
	return nil
}

// Listeners returns the listeners registered on n, in registration
// order.
func (d *Document) Listeners(n *html.Node) []Listener {
	return d.listeners[n]
}

// Node returns the html.Node behind a value returned by Materialize.
func Node(v vel.DOMNode) *html.Node {
	switch v := v.(type) {
	case *Element:
		return v.n
	case *html.Node:
		return v
	}
	return nil
}

// Render writes the HTML form of v, which may be the document, an
// Element or an *html.Node.
func Render(w io.Writer, v any) error {
	var n *html.Node
	switch v := v.(type) {
	case *Document:
		n = v.root
	default:
		n = Node(v)
	}
	if n == nil {
		return vel.ErrNilNode
	}
	return html.Render(w, n)
}

// RenderString is Render into a string.
func RenderString(v any) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}
