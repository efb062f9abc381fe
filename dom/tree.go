package dom

import (
	"github.com/pkg/errors"
)

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		if e.Type() == CommentNodeType {
			continue
		}
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// appendChild links child as the last child of parent, detaching it
// from its current parent first.
func appendChild(parent, child Node) error {
	if parent == nil {
		return errors.New("cannot add child to nil node")
	}
	if child == nil {
		return errors.New("cannot add nil child")
	}
	if child.Type() == DocumentNodeType {
		return ErrHierarchy
	}
	for p := parent; p != nil; p = p.Parent() {
		if p == child {
			return ErrHierarchy
		}
	}

	unlink(child)

	pt := parent.getTreeNode()
	ct := child.getTreeNode()

	ct.parent = parent
	l := pt.lastChild
	if l == nil { // No children, set firstChild to cur, and bail out
		pt.firstChild = child
		pt.lastChild = child
		return nil
	}

	l.getTreeNode().next = child
	ct.prev = l
	pt.lastChild = child
	return nil
}

// unlink detaches n from its parent and siblings.
func unlink(n Node) {
	t := n.getTreeNode()
	if parent := t.parent; parent != nil {
		pt := parent.getTreeNode()
		if pt.firstChild == n {
			pt.firstChild = t.next
		}
		if pt.lastChild == n {
			pt.lastChild = t.prev
		}
	}
	if t.prev != nil {
		t.prev.getTreeNode().next = t.next
	}
	if t.next != nil {
		t.next.getTreeNode().prev = t.prev
	}
	t.parent = nil
	t.next = nil
	t.prev = nil
}

// Children returns the children of n in order.
func Children(n Node) []Node {
	var list []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		list = append(list, c)
	}
	return list
}
