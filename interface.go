package vel

import (
	"github.com/lestrrat-go/vel/internal/orderedmap"
	"github.com/pkg/errors"
)

var (
	ErrNilNode         = errors.New("nil node")
	ErrNoBuilder       = errors.New("no foreign tree builder available")
	ErrNilDocument     = errors.New("nil platform document")
	ErrUnsupportedNode = errors.New("platform node not created by this document")
)

// ChildType identifies which of the three child variants a Child is.
type ChildType int

const (
	ElementChild ChildType = iota + 1
	CommentChild
	ValueChild
)

func (t ChildType) String() string {
	switch t {
	case ElementChild:
		return "Element"
	case CommentChild:
		return "Comment"
	case ValueChild:
		return "Value"
	default:
		return "Unknown"
	}
}

// Child is one entry in an Element's children. The set of
// implementations is closed: *Element, *Comment and Value.
type Child interface {
	ChildType() ChildType
	// String returns the serialized form of the child.
	String() string

	isChild()
}

// Element is a virtual element: a tag name, its namespace, normalized
// attributes and an ordered list of children.
//
// Elements are not safe for concurrent mutation. Callers that share an
// element between goroutines must synchronize access themselves.
type Element struct {
	namespace string
	name      string
	attrs     *orderedmap.Map[string, AttrValue]
	children  []Child
}

// Comment is a non-rendering annotation. A Comment created without text
// renders as an empty comment.
type Comment struct {
	text    string
	hasText bool
}

// Value wraps a primitive child: a string, number, boolean or nil.
// Anything that is not an *Element or *Comment is stored as a Value.
type Value struct {
	v any
}

// Attr is one entry of an attribute bag passed to H.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute bag. The order of the entries is the
// order in which attributes are normalized and serialized.
//
// An entry whose Value is itself an Attrs, a map[string]any or a
// map[string]string is a namespaced attribute group.
type Attrs []Attr

// AttrValue is a normalized attribute: either a scalar (a string, or a
// raw value for attributes that are not forced to strings) or a
// namespaced group of local-name/value pairs.
type AttrValue struct {
	scalar any
	group  *orderedmap.Map[string, any]
}

// WalkFunc is called for every child visited by Walk. Returning
// SkipChildren from an element prevents descending into it.
type WalkFunc func(Child) error
