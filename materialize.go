package vel

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DOMNode is an opaque node created by a platform Document.
type DOMNode = any

// DOMElement is the part of a platform element the materializer needs.
type DOMElement interface {
	SetAttribute(name string, value any)
	SetAttributeNS(namespace, name string, value any)
	AddEventListener(event string, handler any)
	AppendChild(child DOMNode) error
}

// Document is the platform DOM that element trees are materialized
// into.
type Document interface {
	CreateElement(name string) DOMElement
	CreateElementNS(namespace, name string) DOMElement
	CreateTextNode(data string) DOMNode
	CreateComment(data string) DOMNode
}

// Materialize creates the platform node for e and all of its
// descendants using doc.
//
// Function valued attributes become event listeners, namespaced groups
// are set with SetAttributeNS, everything else with SetAttribute. nil
// and false children are skipped; other primitives become text nodes.
func (e *Element) Materialize(ctx context.Context, doc Document) (DOMNode, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if doc == nil {
		return nil, ErrNilDocument
	}

	TraceEvent(ctx, "materialize element",
		slog.String("name", e.name),
		slog.String("namespace", e.namespace),
		slog.Int("children", len(e.children)),
	)

	var el DOMElement
	if e.namespace != "" {
		el = doc.CreateElementNS(e.namespace, e.name)
	} else {
		el = doc.CreateElement(e.name)
	}

	for key, value := range e.attrs.Range() {
		switch {
		case value.group != nil:
			for name, v := range value.group.Range() {
				if isNil(v) {
					continue
				}
				el.SetAttributeNS(key, name, v)
			}
		case isHandler(value.scalar):
			event := EventName(key)
			TraceEvent(ctx, "add event listener", slog.String("name", e.name), slog.String("event", event))
			el.AddEventListener(event, value.scalar)
		default:
			el.SetAttribute(key, value.scalar)
		}
	}

	for _, child := range e.children {
		var node DOMNode
		switch child := child.(type) {
		case *Element:
			n, err := child.Materialize(ctx, doc)
			if err != nil {
				return nil, err
			}
			node = n
		case *Comment:
			n, err := child.Materialize(ctx, doc)
			if err != nil {
				return nil, err
			}
			node = n
		case Value:
			if skipMaterialize(child) {
				continue
			}
			node = doc.CreateTextNode(child.String())
		}

		if err := el.AppendChild(node); err != nil {
			TraceError(ctx, err, "append child failed", slog.String("name", e.name))
			return nil, errors.Wrapf(err, `failed to append child to <%s>`, e.name)
		}
	}
	return el, nil
}

// Materialize creates a platform comment node.
func (c *Comment) Materialize(_ context.Context, doc Document) (DOMNode, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return doc.CreateComment(c.text), nil
}

func skipMaterialize(v Value) bool {
	if v.IsNil() {
		return true
	}
	b, ok := v.v.(bool)
	return ok && !b
}

// EventName returns the listener name for an event handler attribute:
// the key without its leading "on" (matched case-insensitively),
// lower-cased. Keys without the prefix are returned verbatim.
func EventName(key string) string {
	if len(key) >= 2 && strings.EqualFold(key[:2], "on") {
		return cases.Lower(language.Und).String(key[2:])
	}
	return key
}
