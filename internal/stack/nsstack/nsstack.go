// Package nsstack keeps track of the namespace prefixes declared on
// the elements being serialized, innermost last.
package nsstack

import "github.com/lestrrat-go/vel/internal/stack"

type Item struct {
	prefix string
	href   string
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

type Stack struct {
	items stack.Stack[Item]
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Push(prefix, uri string) {
	s.items.Push(Item{prefix: prefix, href: uri})
}

// Pop removes the n innermost declarations.
func (s *Stack) Pop(n int) {
	for range n {
		if _, ok := s.items.Pop(); !ok {
			return
		}
	}
}

func (s *Stack) Len() int {
	return s.items.Len()
}

// Lookup returns the URI bound to prefix, or the empty string.
func (s *Stack) Lookup(prefix string) string {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].prefix == prefix {
			return s.items[i].href
		}
	}
	return ""
}

// LookupURI returns the innermost prefix bound to uri, provided that
// prefix has not been rebound to another URI further in.
func (s *Stack) LookupURI(uri string) (string, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].href == uri && s.Lookup(s.items[i].prefix) == uri {
			return s.items[i].prefix, true
		}
	}
	return "", false
}
