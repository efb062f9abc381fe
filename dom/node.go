// Package dom is a small in-memory platform DOM. It implements
// vel.Document, so element trees can be materialized into it, and it
// can dispatch events to the listeners that were registered while doing
// so.
package dom

import (
	"github.com/pkg/errors"
)

// NodeType represents the type of a node in the tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	TextNodeType
	CommentNodeType
	DocumentNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "Element"
	case TextNodeType:
		return "Text"
	case CommentNodeType:
		return "Comment"
	case DocumentNodeType:
		return "Document"
	default:
		return "Unknown"
	}
}

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrWrongDocument    = errors.New("node belongs to a different document")
	ErrHierarchy        = errors.New("node cannot be inserted here")
)

// Node interface defines the common functionality for all node types
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	Type() NodeType

	// Content appends the text content of the node to dst and returns
	// the result. If dst is nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	Parent() Node
	OwnerDocument() *Document

	// LocalName returns the local name of the node.
	LocalName() string
}
