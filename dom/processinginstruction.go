package dom

// ProcessingInstruction represents a processing instruction node, carrying
// a target and character data. It shares the Node representation; convert
// with AsNode.
type ProcessingInstruction Node

// AsNode returns the underlying Node.
func (pi *ProcessingInstruction) AsNode() *Node {
	return (*Node)(pi)
}

// NodeType returns ProcessingInstructionNode (7).
func (pi *ProcessingInstruction) NodeType() NodeType {
	return ProcessingInstructionNode
}

// NodeName returns the target of the processing instruction.
func (pi *ProcessingInstruction) NodeName() string {
	return pi.Target()
}

// Target returns the target of the processing instruction.
func (pi *ProcessingInstruction) Target() string {
	return pi.AsNode().nodeName
}

// Data returns the content of the processing instruction.
func (pi *ProcessingInstruction) Data() string {
	return pi.AsNode().NodeValue()
}

// SetData replaces the content of the processing instruction.
func (pi *ProcessingInstruction) SetData(data string) {
	pi.AsNode().SetNodeValue(data)
}

// Length returns the length of the content in bytes.
func (pi *ProcessingInstruction) Length() int {
	return len(pi.Data())
}

// SubstringData extracts count bytes of the content starting at offset.
func (pi *ProcessingInstruction) SubstringData(offset, count int) string {
	return substringData(pi.AsNode(), offset, count)
}

// AppendData appends data to the content.
func (pi *ProcessingInstruction) AppendData(data string) {
	replaceData(pi.AsNode(), pi.Length(), 0, data)
}

// InsertData inserts data at the given offset.
func (pi *ProcessingInstruction) InsertData(offset int, data string) {
	replaceData(pi.AsNode(), offset, 0, data)
}

// DeleteData deletes count bytes starting at the given offset.
func (pi *ProcessingInstruction) DeleteData(offset, count int) {
	replaceData(pi.AsNode(), offset, count, "")
}

// ReplaceData replaces count bytes starting at offset with data.
func (pi *ProcessingInstruction) ReplaceData(offset, count int, data string) {
	replaceData(pi.AsNode(), offset, count, data)
}
