package vel

// NewComment creates a comment with the given text.
func NewComment(text string) *Comment {
	return &Comment{text: text, hasText: true}
}

// NewEmptyComment creates a comment without text.
func NewEmptyComment() *Comment {
	return &Comment{}
}

func (*Comment) isChild() {}

func (*Comment) ChildType() ChildType {
	return CommentChild
}

// Text returns the comment text. ok is false for a comment created
// without text.
func (c *Comment) Text() (text string, ok bool) {
	return c.text, c.hasText
}

func (c *Comment) SetText(text string) {
	c.text = text
	c.hasText = true
}

// String renders the comment as "<!-- text -->", or "<!-- -->" when it
// has no text.
func (c *Comment) String() string {
	if !c.hasText {
		return "<!-- -->"
	}
	return "<!-- " + c.text + " -->"
}

var _ Child = (*Comment)(nil)
