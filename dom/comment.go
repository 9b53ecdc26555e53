package dom

// Comment represents a comment node. Comment shares the Node
// representation; convert with AsNode.
type Comment Node

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CommentNode (8).
func (c *Comment) NodeType() NodeType {
	return CommentNode
}

// NodeName returns "#comment".
func (c *Comment) NodeName() string {
	return "#comment"
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return c.AsNode().NodeValue()
}

// SetData replaces the comment content.
func (c *Comment) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}

// Length returns the length of the comment content in bytes.
func (c *Comment) Length() int {
	return len(c.Data())
}

// SubstringData extracts count bytes of the content starting at offset.
func (c *Comment) SubstringData(offset, count int) string {
	return substringData(c.AsNode(), offset, count)
}

// AppendData appends data to the content.
func (c *Comment) AppendData(data string) {
	replaceData(c.AsNode(), c.Length(), 0, data)
}

// InsertData inserts data at the given offset.
func (c *Comment) InsertData(offset int, data string) {
	replaceData(c.AsNode(), offset, 0, data)
}

// DeleteData deletes count bytes starting at the given offset.
func (c *Comment) DeleteData(offset, count int) {
	replaceData(c.AsNode(), offset, count, "")
}

// ReplaceData replaces count bytes starting at offset with data.
func (c *Comment) ReplaceData(offset, count int, data string) {
	replaceData(c.AsNode(), offset, count, data)
}
