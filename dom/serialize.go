package dom

import (
	"io"
	"strconv"

	"github.com/lestrrat-go/vel/internal/stack/nsstack"
	"github.com/lestrrat-go/vel/s11n"
)

var knownPrefixes = map[string]string{
	"http://www.w3.org/1999/xlink":         "xlink",
	"http://www.w3.org/XML/1998/namespace": "xml",
	"http://www.w3.org/2000/xmlns/":        "xmlns",
}

// Serialize writes n and its descendants as XML. The default namespace
// is declared on the element where it first differs from the parent,
// attribute prefixes on the outermost element that needs them.
func Serialize(out io.Writer, n Node) error {
	return serialize(out, n, "", nsstack.New())
}

func serialize(out io.Writer, n Node, parentNS string, scope *nsstack.Stack) error {
	switch n := n.(type) {
	case *Document:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if err := serialize(out, c, "", scope); err != nil {
				return err
			}
		}
		return nil
	case *Text:
		return s11n.EscapeText(out, n.content)
	case *Comment:
		_, err := io.WriteString(out, "<!--"+string(n.content)+"-->")
		return err
	case *Element:
		return serializeElement(out, n, parentNS, scope)
	}
	return ErrInvalidOperation
}

func serializeElement(out io.Writer, e *Element, parentNS string, scope *nsstack.Stack) error {
	if _, err := io.WriteString(out, "<"+e.name); err != nil {
		return err
	}
	if e.ns != parentNS {
		if err := writeAttr(out, "xmlns", e.ns); err != nil {
			return err
		}
	}

	var declared int
	defer func() { scope.Pop(declared) }()

	for _, attr := range e.Attributes(nil) {
		name := attr.name
		if attr.ns != "" {
			prefix, ok := scope.LookupURI(attr.ns)
			if !ok {
				prefix = newPrefix(scope, attr.ns)
				scope.Push(prefix, attr.ns)
				declared++
				if prefix != "xml" && prefix != "xmlns" {
					if err := writeAttr(out, "xmlns:"+prefix, attr.ns); err != nil {
						return err
					}
				}
			}
			name = prefix + ":" + name
		}
		if err := writeAttr(out, name, attr.value); err != nil {
			return err
		}
	}

	if e.firstChild == nil {
		_, err := io.WriteString(out, "/>")
		return err
	}

	if _, err := io.WriteString(out, ">"); err != nil {
		return err
	}
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		if err := serialize(out, c, e.ns, scope); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "</"+e.name+">")
	return err
}

func newPrefix(scope *nsstack.Stack, uri string) string {
	if prefix, ok := knownPrefixes[uri]; ok {
		return prefix
	}
	for i := 1; ; i++ {
		prefix := "ns" + strconv.Itoa(i)
		if scope.Lookup(prefix) == "" {
			return prefix
		}
	}
}

func writeAttr(out io.Writer, name, value string) error {
	if _, err := io.WriteString(out, " "+name+`="`); err != nil {
		return err
	}
	if err := s11n.EscapeAttrValue(out, []byte(value)); err != nil {
		return err
	}
	_, err := io.WriteString(out, `"`)
	return err
}
