package vel

import (
	"github.com/lestrrat-go/vel/internal/stack"
	"github.com/pkg/errors"
)

// SkipChildren can be returned from a WalkFunc to skip the children of
// the element being visited.
var SkipChildren = errors.New("skip children")

// Walk visits root and its descendants in document order.
func Walk(root Child, fn WalkFunc) error {
	switch r := root.(type) {
	case nil:
		return ErrNilNode
	case *Element:
		if r == nil {
			return ErrNilNode
		}
	case *Comment:
		if r == nil {
			return ErrNilNode
		}
	}

	var pending stack.Stack[Child]
	pending.Push(root)
	for {
		c, ok := pending.Pop()
		if !ok {
			return nil
		}

		if err := fn(c); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		if e, ok := c.(*Element); ok {
			for i := len(e.children) - 1; i >= 0; i-- {
				pending.Push(e.children[i])
			}
		}
	}
}
