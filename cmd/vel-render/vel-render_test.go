package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/vel"
	"github.com/lestrrat-go/vel/internal/treedesc"
	"github.com/stretchr/testify/require"
)

// TestRenderGolden renders every .json and .yaml file in testdata/ in
// each output format, and compares the result against the golden file
// with the format as its extension (icon.json -> icon.html, icon.dom,
// ...). Formats without a golden file are skipped.
func TestRenderGolden(t *testing.T) {
	const dir = "testdata"
	files, err := os.ReadDir(dir)
	require.NoError(t, err, "os.ReadDir should succeed")

	formats := []string{"html", "dom", "x-html", "foreign"}
	for _, fi := range files {
		ext := filepath.Ext(fi.Name())
		if fi.IsDir() || (ext != ".json" && ext != ".yaml") {
			continue
		}
		base := strings.TrimSuffix(fi.Name(), ext)

		for _, format := range formats {
			golden, err := os.ReadFile(filepath.Join(dir, base+"."+format))
			if err != nil {
				continue
			}

			t.Run(base+"/"+format, func(t *testing.T) {
				in, err := os.Open(filepath.Join(dir, fi.Name()))
				require.NoError(t, err)
				defer in.Close()

				trees, err := treedesc.Decode(in)
				require.NoError(t, err, "treedesc.Decode should succeed")

				r, err := newRenderer(cmdopts{
					Format:        format,
					BuilderScript: filepath.Join(dir, "builder.js"),
					Global:        "React",
				})
				require.NoError(t, err, "newRenderer should succeed")

				var buf bytes.Buffer
				for _, tree := range trees {
					require.NoError(t, r.render(context.Background(), &buf, tree))
				}
				require.Equal(t, string(golden), buf.String())
			})
		}
	}
}

func TestForeignWithoutBuilder(t *testing.T) {
	_, err := newRenderer(cmdopts{Format: "foreign", Global: "React"})
	require.ErrorIs(t, err, vel.ErrNoBuilder)
}

func TestEscape(t *testing.T) {
	r, err := newRenderer(cmdopts{Format: "html", Escape: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.render(context.Background(), &buf, vel.H("p", vel.Attrs{vel.A("title", `"x"`)}, "a < b")))
	require.Equal(t, "<p title=\"&#34;x&#34;\">a &lt; b</p>\n", buf.String())
}

func TestCountNodes(t *testing.T) {
	tree := vel.H("ul", nil,
		vel.H("li", nil, "one"),
		vel.NewComment("x"),
		vel.H("li", nil, "two", 2),
	)
	s := countNodes(tree)
	require.Equal(t, stats{elements: 3, comments: 1, values: 3}, s)

	var buf bytes.Buffer
	printStats(&buf, tree)
	require.Equal(t, "elements=3 comments=1 values=3\n", buf.String())
}
