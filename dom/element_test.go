package dom_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/vel/dom"
	"github.com/stretchr/testify/require"
)

func newElement(t *testing.T, doc *dom.Document, name string) *dom.Element {
	t.Helper()
	e, ok := doc.CreateElement(name).(*dom.Element)
	require.True(t, ok, "CreateElement returns *dom.Element")
	return e
}

func TestElement(t *testing.T) {
	t.Run("TreeOperations", func(t *testing.T) {
		t.Run("AppendChild", func(t *testing.T) {
			doc := dom.NewDocument()
			parent := newElement(t, doc, "parent")
			child := newElement(t, doc, "child")

			require.NoError(t, parent.AppendChild(child))
			require.Equal(t, child, parent.FirstChild())
			require.Equal(t, child, parent.LastChild())
			require.Equal(t, parent, child.Parent())
		})

		t.Run("AppendMultipleChildren", func(t *testing.T) {
			doc := dom.NewDocument()
			parent := newElement(t, doc, "parent")
			child1 := newElement(t, doc, "child1")
			child2 := newElement(t, doc, "child2")

			require.NoError(t, parent.AppendChild(child1))
			require.NoError(t, parent.AppendChild(child2))

			require.Equal(t, child1, parent.FirstChild())
			require.Equal(t, child2, parent.LastChild())
			require.Equal(t, child2, child1.NextSibling())
			require.Equal(t, child1, child2.PrevSibling())
		})

		t.Run("AppendMovesNode", func(t *testing.T) {
			doc := dom.NewDocument()
			a := newElement(t, doc, "a")
			b := newElement(t, doc, "b")
			child := newElement(t, doc, "child")

			require.NoError(t, a.AppendChild(child))
			require.NoError(t, b.AppendChild(child))

			require.Nil(t, a.FirstChild())
			require.Nil(t, a.LastChild())
			require.Equal(t, child, b.FirstChild())
			require.Equal(t, b, child.Parent())
		})

		t.Run("AppendAncestor", func(t *testing.T) {
			doc := dom.NewDocument()
			parent := newElement(t, doc, "parent")
			child := newElement(t, doc, "child")
			require.NoError(t, parent.AppendChild(child))
			require.ErrorIs(t, child.AppendChild(parent), dom.ErrHierarchy)
			require.ErrorIs(t, child.AppendChild(child), dom.ErrHierarchy)
		})
	})

	t.Run("Attributes", func(t *testing.T) {
		doc := dom.NewDocument()
		e := newElement(t, doc, "input")
		e.SetAttribute("type", "checkbox")
		e.SetAttribute("checked", true)
		e.SetAttribute("tabindex", 3)
		e.SetAttributeNS("http://www.w3.org/1999/xlink", "href", "#x")
		e.SetAttribute("type", "radio")

		v, ok := e.GetAttribute("type")
		require.True(t, ok)
		require.Equal(t, "radio", v, "overwrite keeps the latest value")

		v, _ = e.GetAttribute("checked")
		require.Equal(t, "true", v)
		v, _ = e.GetAttribute("tabindex")
		require.Equal(t, "3", v)

		_, ok = e.GetAttribute("href")
		require.False(t, ok, "namespaced attribute is not visible without namespace")
		v, ok = e.GetAttributeNS("http://www.w3.org/1999/xlink", "href")
		require.True(t, ok)
		require.Equal(t, "#x", v)

		attrs := e.Attributes(nil)
		require.Len(t, attrs, 4)
		require.Equal(t, "type", attrs[0].LocalName())
		require.Equal(t, "http://www.w3.org/1999/xlink", attrs[3].URI())
	})

	t.Run("Listeners", func(t *testing.T) {
		doc := dom.NewDocument()
		e := newElement(t, doc, "button")

		var calls []string
		e.AddEventListener("click", func() { calls = append(calls, "plain") })
		e.AddEventListener("click", func(ev *dom.Event) {
			calls = append(calls, ev.Type+":"+ev.Detail.(string))
			require.Equal(t, e, ev.Target)
		})
		e.AddEventListener("click", 42)
		e.AddEventListener("input", func() { calls = append(calls, "input") })

		require.Len(t, e.Listeners("click"), 3)
		require.Equal(t, 2, e.Dispatch("click", "detail"))
		require.Equal(t, []string{"plain", "click:detail"}, calls)
		require.Equal(t, 0, e.Dispatch("keydown", nil))
	})

	t.Run("TextContent", func(t *testing.T) {
		doc := dom.NewDocument()
		p := newElement(t, doc, "p")
		b := newElement(t, doc, "b")
		require.NoError(t, p.AppendChild(doc.CreateTextNode("Hello, ")))
		require.NoError(t, p.AppendChild(doc.CreateComment("ignored")))
		require.NoError(t, b.AppendChild(doc.CreateTextNode("World")))
		require.NoError(t, p.AppendChild(b))
		require.Equal(t, "Hello, World", p.TextContent())
		require.Len(t, dom.Children(p), 3)
	})
}

func TestSerialize(t *testing.T) {
	doc := dom.NewDocument()
	svg := doc.CreateElementNS("http://www.w3.org/2000/svg", "svg").(*dom.Element)
	use := doc.CreateElementNS("http://www.w3.org/2000/svg", "use").(*dom.Element)
	use.SetAttributeNS("http://www.w3.org/1999/xlink", "href", "#a")
	use.SetAttribute("title", `a "b" <c>`)
	require.NoError(t, svg.AppendChild(use))
	require.NoError(t, svg.AppendChild(doc.CreateComment(" note ")))
	require.NoError(t, svg.AppendChild(doc.CreateTextNode("1 < 2")))
	require.NoError(t, doc.AppendChild(svg))

	var buf bytes.Buffer
	require.NoError(t, dom.Serialize(&buf, doc))
	require.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg">`+
			`<use xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="#a" title="a &#34;b&#34; &lt;c&gt;"/>`+
			`<!-- note -->1 &lt; 2</svg>`,
		buf.String(),
	)
}

func TestSerializePrefixScope(t *testing.T) {
	doc := dom.NewDocument()
	g := doc.NewElement("urn:g", "g")
	g.SetAttributeNS("http://www.w3.org/1999/xlink", "title", "outer")
	g.SetAttributeNS("urn:custom", "a", "1")
	inner := doc.NewElement("urn:g", "a")
	inner.SetAttributeNS("http://www.w3.org/1999/xlink", "href", "#x")
	inner.SetAttributeNS("urn:custom", "b", "2")
	inner.SetAttributeNS("http://www.w3.org/XML/1998/namespace", "lang", "en")
	require.NoError(t, g.AppendChild(inner))
	sibling := doc.NewElement("urn:g", "b")
	sibling.SetAttributeNS("urn:other", "c", "3")
	require.NoError(t, g.AppendChild(sibling))

	var buf bytes.Buffer
	require.NoError(t, dom.Serialize(&buf, g))
	require.Equal(t,
		`<g xmlns="urn:g" xmlns:xlink="http://www.w3.org/1999/xlink" xlink:title="outer" xmlns:ns1="urn:custom" ns1:a="1">`+
			`<a xlink:href="#x" ns1:b="2" xml:lang="en"/>`+
			`<b xmlns:ns2="urn:other" ns2:c="3"/>`+
			`</g>`,
		buf.String(),
	)
}
