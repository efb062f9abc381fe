package dom

import (
	"github.com/lestrrat-go/vel"
)

// Document represents the root document node. It is the factory for
// every other node, and implements vel.Document.
type Document struct {
	treeNode
}

var _ vel.Document = (*Document)(nil)
var _ Node = (*Document)(nil)

func NewDocument() *Document {
	doc := &Document{}
	doc.treeNode = treeNode{
		doc: doc,
	}
	return doc
}

func (*Document) Type() NodeType {
	return DocumentNodeType
}

func (*Document) LocalName() string {
	return "#document"
}

// NewElement creates an element owned by d. An empty namespace means no
// namespace.
func (d *Document) NewElement(namespace, name string) *Element {
	e := newElement(namespace, name)
	e.doc = d
	return e
}

func (d *Document) CreateElement(name string) vel.DOMElement {
	return d.NewElement("", name)
}

func (d *Document) CreateElementNS(namespace, name string) vel.DOMElement {
	return d.NewElement(namespace, name)
}

func (d *Document) CreateTextNode(data string) vel.DOMNode {
	t := &Text{content: []byte(data)}
	t.doc = d
	return t
}

func (d *Document) CreateComment(data string) vel.DOMNode {
	c := &Comment{content: []byte(data)}
	c.doc = d
	return c
}

// DocumentElement returns the first element child of the document.
func (d *Document) DocumentElement() *Element {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// AppendChild adds n, which must have been created by d, to the
// document.
func (d *Document) AppendChild(n vel.DOMNode) error {
	child, err := d.adopt(n)
	if err != nil {
		return err
	}
	return appendChild(d, child)
}

func (d *Document) adopt(n vel.DOMNode) (Node, error) {
	child, ok := n.(Node)
	if !ok {
		return nil, vel.ErrUnsupportedNode
	}
	if child.OwnerDocument() != d {
		return nil, ErrWrongDocument
	}
	return child, nil
}
