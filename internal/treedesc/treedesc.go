// Package treedesc decodes element trees from JSON or YAML
// descriptions. Attribute order is preserved as written.
//
//	{"tag": "svg", "attrs": {"width": 10}, "children": [
//	  {"tag": "use", "attrs": {"xlink": {"href": "#a"}}},
//	  {"comment": "note"},
//	  "text", 1, true, null
//	]}
//
// "ns" may be given to build the element with an explicit namespace.
// A child that is itself a list is passed to the element as a slice,
// and is therefore flattened one level.
package treedesc

import (
	"io"

	"github.com/lestrrat-go/vel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads every document in r and returns one child per tree. A
// document that is a list contributes each of its items.
func Decode(r io.Reader) ([]vel.Child, error) {
	dec := yaml.NewDecoder(r)

	var trees []vel.Child
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return trees, nil
			}
			return nil, errors.Wrap(err, `failed to parse tree description`)
		}
		if len(doc.Content) == 0 {
			continue
		}

		root := doc.Content[0]
		if root.Kind == yaml.SequenceNode {
			for _, item := range root.Content {
				c, err := child(item)
				if err != nil {
					return nil, err
				}
				trees = append(trees, toChild(c))
			}
			continue
		}

		c, err := child(root)
		if err != nil {
			return nil, err
		}
		trees = append(trees, toChild(c))
	}
}

func toChild(v any) vel.Child {
	switch v := v.(type) {
	case *vel.Element:
		return v
	case *vel.Comment:
		return v
	}
	return vel.V(v)
}

func child(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return mapping(n)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := child(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.AliasNode:
		return child(n.Alias)
	}
	return nil, errors.Errorf(`line %d: unexpected node`, n.Line)
}

func mapping(n *yaml.Node) (any, error) {
	var tag, ns string
	var hasNS bool
	var attrs vel.Attrs
	var children []any

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "comment":
			if value.Kind != yaml.ScalarNode {
				return nil, errors.Errorf(`line %d: comment must be a string`, value.Line)
			}
			if value.ShortTag() == "!!null" {
				return vel.NewEmptyComment(), nil
			}
			return vel.NewComment(value.Value), nil
		case "tag":
			tag = value.Value
		case "ns":
			ns, hasNS = value.Value, true
		case "attrs":
			a, err := attributes(value)
			if err != nil {
				return nil, err
			}
			attrs = a
		case "children":
			v, err := child(value)
			if err != nil {
				return nil, err
			}
			if items, ok := v.([]any); ok {
				children = items
			} else {
				children = []any{v}
			}
		default:
			return nil, errors.Errorf(`line %d: unknown key %q`, key.Line, key.Value)
		}
	}

	if tag == "" {
		return nil, errors.Errorf(`line %d: element has no tag`, n.Line)
	}
	if hasNS {
		return vel.HNS(ns, tag, attrs, children...), nil
	}
	return vel.H(tag, attrs, children...), nil
}

func attributes(n *yaml.Node) (vel.Attrs, error) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.Errorf(`line %d: attrs must be a mapping`, n.Line)
	}

	attrs := make(vel.Attrs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch value.Kind {
		case yaml.MappingNode:
			group, err := attributes(value)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, vel.A(key.Value, group))
		case yaml.ScalarNode:
			v, err := scalar(value)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, vel.A(key.Value, v))
		default:
			return nil, errors.Errorf(`line %d: attribute %q must be a scalar or a mapping`, value.Line, key.Value)
		}
	}
	return attrs, nil
}

func scalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Wrapf(err, `line %d: invalid value`, n.Line)
	}
	return v, nil
}
