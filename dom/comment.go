package dom

// Comment represents a comment node
type Comment struct {
	treeNode
	content []byte
}

var _ Node = (*Comment)(nil)

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (*Comment) LocalName() string {
	return "#comment"
}

// Content returns the comment text. It is not part of the text content
// of the comment's ancestors.
func (n *Comment) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

func (n *Comment) Data() string {
	return string(n.content)
}
