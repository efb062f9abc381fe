package dom

// Text represents a text node
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

func (Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return "#text"
}

func (n *Text) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

// Data returns the text as a string.
func (n *Text) Data() string {
	return string(n.content)
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}
