package vel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lestrrat-go/vel"
	"github.com/stretchr/testify/require"
)

type foreignNode struct {
	Tag      string
	Props    map[string]any
	Children []any
}

func TestToForeign(t *testing.T) {
	handler := func() {}
	tree := vel.H("div", vel.Attrs{
		vel.A("className", "box"),
		vel.A("font-size", 12),
		vel.A("data-user-id", "u"),
		vel.A("aria-label", "l"),
		vel.A("onClick", handler),
		vel.A("xlink", vel.Attrs{vel.A("href", "#a")}),
	},
		vel.H("span", nil, "hi"),
		vel.NewComment("dropped"),
		nil,
		false,
		3,
	)

	var tags []string
	b := vel.BuilderFunc(func(tag string, props map[string]any, children ...any) (any, error) {
		tags = append(tags, tag)
		return &foreignNode{Tag: tag, Props: props, Children: children}, nil
	})

	v, err := tree.ToForeign(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, []string{"span", "div"}, tags, "children are built first")

	root, ok := v.(*foreignNode)
	require.True(t, ok)
	require.Equal(t, "div", root.Tag)
	require.Equal(t, "box", root.Props["class"])
	require.Equal(t, 12, root.Props["fontSize"])
	require.Equal(t, "u", root.Props["data-user-id"])
	require.Equal(t, "l", root.Props["aria-label"])
	require.NotNil(t, root.Props["onClick"])
	require.Equal(t, map[string]any{"href": "#a"}, root.Props["http://www.w3.org/1999/xlink"])
	require.Len(t, root.Props, 6)

	require.Len(t, root.Children, 4, "comments are dropped")
	require.Equal(t, &foreignNode{Tag: "span", Props: map[string]any{}, Children: []any{"hi"}}, root.Children[0])
	require.Nil(t, root.Children[1])
	require.Equal(t, false, root.Children[2])
	require.Equal(t, 3, root.Children[3])
}

func TestToForeignErrors(t *testing.T) {
	_, err := vel.H("p", nil).ToForeign(context.Background(), nil)
	require.ErrorIs(t, err, vel.ErrNoBuilder)

	builderErr := errors.New("cannot build")
	b := vel.BuilderFunc(func(tag string, _ map[string]any, _ ...any) (any, error) {
		if tag == "b" {
			return nil, builderErr
		}
		return tag, nil
	})
	_, err = vel.H("p", nil, vel.H("b", nil)).ToForeign(context.Background(), b)
	require.Same(t, builderErr, err, "builder errors are returned unchanged")

	var zero vel.BuilderFunc
	_, err = vel.H("p", nil).ToForeign(context.Background(), zero)
	require.ErrorIs(t, err, vel.ErrNoBuilder)
}

func TestForeignPropName(t *testing.T) {
	testcases := map[string]string{
		"font-size":         "fontSize",
		"stroke-dash-array": "strokeDashArray",
		"data-user-id":      "data-user-id",
		"aria-labelledby":   "aria-labelledby",
		"class":             "class",
		"x-1":               "x-1",
		"trailing-":         "trailing-",
		"a--b":              "a-B",
	}
	for key, expected := range testcases {
		require.Equal(t, expected, vel.ForeignPropName(key), key)
	}
}
