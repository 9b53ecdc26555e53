package dom

// Text represents a text node. Text shares the Node representation; convert
// with AsNode.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData replaces the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content in bytes.
func (t *Text) Length() int {
	return len(t.Data())
}

// SubstringData extracts count bytes of the text starting at offset.
func (t *Text) SubstringData(offset, count int) string {
	return substringData(t.AsNode(), offset, count)
}

// AppendData appends data to the text.
func (t *Text) AppendData(data string) {
	replaceData(t.AsNode(), t.Length(), 0, data)
}

// InsertData inserts data at the given offset.
func (t *Text) InsertData(offset int, data string) {
	replaceData(t.AsNode(), offset, 0, data)
}

// DeleteData deletes count bytes starting at the given offset.
func (t *Text) DeleteData(offset, count int) {
	replaceData(t.AsNode(), offset, count, "")
}

// ReplaceData replaces count bytes starting at offset with data.
func (t *Text) ReplaceData(offset, count int, data string) {
	replaceData(t.AsNode(), offset, count, data)
}

// WholeText returns the concatenated data of this node and its adjacent
// text node siblings, in sibling order.
func (t *Text) WholeText() string {
	first := t.AsNode()
	for first.prevSibling != nil && first.prevSibling.nodeType == TextNode {
		first = first.prevSibling
	}
	var result string
	for node := first; node != nil && node.nodeType == TextNode; node = node.nextSibling {
		result += node.NodeValue()
	}
	return result
}

// SplitText splits this text node at the given offset and returns the new
// node holding the text after the offset. If this node is attached, the new
// node is inserted as its next sibling and the parent owns it; otherwise
// the caller owns the returned node.
func (t *Text) SplitText(offset int) *Text {
	data := t.Data()
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	rest := t.AsNode().ownerDoc.CreateTextNode(data[offset:])
	t.SetData(data[:offset])
	if parent := t.AsNode().parentNode; parent != nil {
		parent.InsertBefore(rest, t.AsNode().nextSibling)
	}
	return (*Text)(rest)
}
