package vel

import (
	"slices"
	"strings"
)

// classList returns the class attribute split on single spaces, or nil
// when the attribute is missing or empty.
func (e *Element) classList() []string {
	s := e.ClassName()
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

// AddClasses appends each name that is not already in the class list.
// Existing classes keep their order.
func (e *Element) AddClasses(names ...string) *Element {
	list := e.classList()
	if list == nil {
		return e.SetClassName(strings.Join(names, " "))
	}
	for _, name := range names {
		if !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	return e.SetClassName(strings.Join(list, " "))
}

// RemoveClasses removes the first occurrence of each name from the class
// list. It does nothing when there is no class attribute.
func (e *Element) RemoveClasses(names ...string) *Element {
	list := e.classList()
	if list == nil {
		return e
	}
	for _, name := range names {
		if i := slices.Index(list, name); i >= 0 {
			list = slices.Delete(list, i, i+1)
		}
	}
	return e.SetClassName(strings.Join(list, " "))
}

// HasClasses reports whether every name is in the class list. With no
// names it is always true; with no class attribute and at least one name
// it is false.
func (e *Element) HasClasses(names ...string) bool {
	list := e.classList()
	if list == nil {
		return len(names) == 0
	}
	for _, name := range names {
		if !slices.Contains(list, name) {
			return false
		}
	}
	return true
}
