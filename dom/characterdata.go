package dom

// Character-data editing shared by Text, Comment and ProcessingInstruction.
// Offsets are byte offsets into the data string and are clamped to the
// valid range rather than reported as errors.

// substringData extracts count bytes of n's data starting at offset.
func substringData(n *Node, offset, count int) string {
	data := n.NodeValue()
	if offset < 0 || offset > len(data) {
		return ""
	}
	// Compare against the remaining length instead of offset+count, which
	// can overflow for large counts.
	end := len(data)
	if count >= 0 && count <= len(data)-offset {
		end = offset + count
	}
	return data[offset:end]
}

// replaceData implements the replace-data algorithm: count bytes starting
// at offset are replaced with data.
func replaceData(n *Node, offset, count int, data string) {
	current := n.NodeValue()
	if offset < 0 {
		offset = 0
	}
	if offset > len(current) {
		offset = len(current)
	}
	end := len(current)
	if count >= 0 && count <= len(current)-offset {
		end = offset + count
	}
	n.SetNodeValue(current[:offset] + data + current[end:])
}
