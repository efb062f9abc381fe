package vel

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
)

// Builder is a foreign UI-tree builder in the style of createElement.
type Builder interface {
	CreateElement(tag string, props map[string]any, children ...any) (any, error)
}

// BuilderFunc adapts a plain function to Builder.
type BuilderFunc func(tag string, props map[string]any, children ...any) (any, error)

func (f BuilderFunc) CreateElement(tag string, props map[string]any, children ...any) (any, error) {
	if f == nil {
		return nil, ErrNoBuilder
	}
	return f(tag, props, children...)
}

// ToForeign maps e and its descendants onto calls to b, children first.
// Comments are dropped and primitives are passed through as is.
// Attribute keys are converted with ForeignPropName; namespaced groups
// are passed as map[string]any under their namespace URI.
//
// Errors returned by b are returned unchanged.
func (e *Element) ToForeign(ctx context.Context, b Builder) (any, error) {
	if b == nil {
		return nil, ErrNoBuilder
	}

	children := make([]any, 0, len(e.children))
	for _, child := range e.children {
		switch child := child.(type) {
		case *Element:
			v, err := child.ToForeign(ctx, b)
			if err != nil {
				return nil, err
			}
			children = append(children, v)
		case *Comment:
		case Value:
			children = append(children, child.v)
		}
	}

	props := make(map[string]any, e.attrs.Len())
	for key, value := range e.attrs.Range() {
		if value.group != nil {
			props[key] = value.groupSnapshot()
			continue
		}
		props[ForeignPropName(key)] = value.scalar
	}

	TraceEvent(ctx, "create foreign element",
		slog.String("name", e.name),
		slog.Int("props", len(props)),
		slog.Int("children", len(children)),
	)
	return b.CreateElement(e.name, props, children...)
}

// ForeignPropName converts an attribute name to the camel case form
// foreign builders expect: "font-size" becomes "fontSize". data-* and
// aria-* names are returned unchanged.
func ForeignPropName(key string) string {
	if strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-") || strings.IndexByte(key, '-') < 0 {
		return key
	}

	runes := []rune(key)
	var sb strings.Builder
	sb.Grow(len(key))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			sb.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}
