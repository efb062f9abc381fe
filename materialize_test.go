package vel_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/vel"
	"github.com/stretchr/testify/require"
)

// recorder is a platform document that records every call made to it.
type recorder struct {
	calls     []string
	appendErr error
}

type recElement struct {
	doc  *recorder
	name string
}

type recNode struct {
	kind string
	data string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) CreateElement(name string) vel.DOMElement {
	r.record("create %s", name)
	return &recElement{doc: r, name: name}
}

func (r *recorder) CreateElementNS(ns, name string) vel.DOMElement {
	r.record("createNS %s %s", ns, name)
	return &recElement{doc: r, name: name}
}

func (r *recorder) CreateTextNode(data string) vel.DOMNode {
	r.record("text %q", data)
	return &recNode{kind: "text", data: data}
}

func (r *recorder) CreateComment(data string) vel.DOMNode {
	r.record("comment %q", data)
	return &recNode{kind: "comment", data: data}
}

func (e *recElement) SetAttribute(name string, value any) {
	e.doc.record("%s.set %s=%#v", e.name, name, value)
}

func (e *recElement) SetAttributeNS(ns, name string, value any) {
	e.doc.record("%s.setNS %s %s=%#v", e.name, ns, name, value)
}

func (e *recElement) AddEventListener(event string, _ any) {
	e.doc.record("%s.listen %s", e.name, event)
}

func (e *recElement) AppendChild(child vel.DOMNode) error {
	if e.doc.appendErr != nil {
		return e.doc.appendErr
	}
	switch child := child.(type) {
	case *recElement:
		e.doc.record("%s.append <%s>", e.name, child.name)
	case *recNode:
		e.doc.record("%s.append %s", e.name, child.kind)
	}
	return nil
}

func TestMaterialize(t *testing.T) {
	tree := vel.H("div", vel.Attrs{
		vel.A("id", "root"),
		vel.A("tabindex", 1),
		vel.A("onClick", func() {}),
		vel.A("ONKEYDOWN", func() {}),
		vel.A("custom", func() {}),
	},
		vel.H("svg", vel.Attrs{vel.A("xlink", vel.Attrs{vel.A("href", "#a")})}),
		"text",
		nil,
		false,
		true,
		0,
		vel.NewEmptyComment(),
	)

	doc := &recorder{}
	node, err := tree.Materialize(context.Background(), doc)
	require.NoError(t, err)
	require.IsType(t, &recElement{}, node)

	require.Equal(t, []string{
		"create div",
		`div.set id="root"`,
		`div.set tabindex=1`,
		"div.listen click",
		"div.listen keydown",
		"div.listen custom",
		"createNS http://www.w3.org/2000/svg svg",
		`svg.setNS http://www.w3.org/1999/xlink href="#a"`,
		"div.append <svg>",
		`text "text"`,
		"div.append text",
		`text "true"`,
		"div.append text",
		`text "0"`,
		"div.append text",
		`comment ""`,
		"div.append comment",
	}, doc.calls)
}

func TestMaterializeErrors(t *testing.T) {
	_, err := vel.H("p", nil).Materialize(context.Background(), nil)
	require.ErrorIs(t, err, vel.ErrNilDocument)

	_, err = vel.NewComment("x").Materialize(context.Background(), nil)
	require.ErrorIs(t, err, vel.ErrNilDocument)

	appendErr := errors.New("refused")
	doc := &recorder{appendErr: appendErr}

	var buf bytes.Buffer
	ctx := vel.WithTraceLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err = vel.H("ul", nil, vel.H("li", nil)).Materialize(ctx, doc)
	require.ErrorIs(t, err, appendErr)
	require.Contains(t, err.Error(), "<ul>")

	if vel.TracingEnabled() {
		require.Contains(t, buf.String(), "append child failed")
	}
}

func TestEventName(t *testing.T) {
	testcases := map[string]string{
		"onClick":     "click",
		"onclick":     "click",
		"ONMOUSEOVER": "mouseover",
		"OnKeyDown":   "keydown",
		"on":          "",
		"click":       "click",
		"o":           "o",
		"onÜber":      "über",
	}
	for key, expected := range testcases {
		require.Equal(t, expected, vel.EventName(key), key)
	}
}
