// Package dom implements an in-memory document tree in the style of the DOM
// Living Standard: a mutable, ordered tree of typed nodes with attribute
// storage, reflected properties, and live query views.
//
// Nodes follow an explicit ownership protocol. Every node is created by a
// Document factory with a reference count of one, held by the caller.
// Attaching a node to a parent transfers that reference into the parent's
// child slot; detaching transfers it back. Release drops a reference and, at
// zero, recursively drops the node's remaining children. See Node.Retain and
// Node.Release.
//
// The engine is single-threaded by design: the tree is a pointer-linked
// structure with parent and sibling back-references, and no operation blocks
// or suspends. Embedders that need concurrent access should serialize all
// calls behind a single lock.
package dom

// NodeType identifies the concrete variant of a Node. The numeric values
// match the DOM specification's node type constants.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// ProcessingInstructionNode represents a ProcessingInstruction node.
	ProcessingInstructionNode NodeType = 7
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentFragmentNode represents a DocumentFragment node.
	DocumentFragmentNode NodeType = 11
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case ProcessingInstructionNode:
		return "PROCESSING_INSTRUCTION_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
