package stack

// Stack is a LIFO of T. The zero value is ready to use.
type Stack[T any] []T

func (s *Stack[T]) Push(items ...T) {
	*s = append(*s, items...)
}

// Pop removes and returns the top item. ok is false when the stack is
// empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	l := len(*s)
	if l == 0 {
		return item, false
	}
	item = (*s)[l-1]
	var zero T
	(*s)[l-1] = zero
	*s = (*s)[:l-1]

	if c := cap(*s); c > 20 && c > len(*s)*2 {
		s.realloc()
	}
	return item, true
}

func (s Stack[T]) Peek() (item T, ok bool) {
	if len(s) == 0 {
		return item, false
	}
	return s[len(s)-1], true
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s *Stack[T]) realloc() {
	*s = append(Stack[T](nil), *s...)
}
