package dom

import (
	"strings"
)

// Node is the base entity of the document tree. Every variant (Document,
// DocumentFragment, Element, Text, Comment, ProcessingInstruction) shares
// these fields; the concrete variant is identified by the node type and
// reachable through a pointer cast (see Element.AsNode and friends).
//
// Only the parent -> child direction carries ownership. Parent and sibling
// pointers are plain back-references with no ownership weight, so the tree
// stays acyclic in ownership terms while remaining navigable both ways.
type Node struct {
	nodeType NodeType
	nodeName string
	refs     int
	ownerDoc *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Variant data. At most one of these is non-nil, matching nodeType.
	elementData  *elementData
	charData     *string
	documentData *documentData
}

// elementData holds data specific to Element nodes.
type elementData struct {
	tagName    string
	attributes *NamedNodeMap
	classList  *TokenList
}

// documentData holds data specific to Document nodes.
type documentData struct {
	url string
}

// newNode creates a detached node with a reference count of one, held by the
// caller.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		refs:     1,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node. For elements this is the tag name
// exactly as created, for processing instructions the target, and for the
// remaining variants the conventional "#text", "#comment", "#document" and
// "#document-fragment" names.
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the character data of a Text, Comment or
// ProcessingInstruction node, and the empty string for every other variant.
func (n *Node) NodeValue() string {
	if n.charData != nil {
		return *n.charData
	}
	return ""
}

// SetNodeValue replaces the character data of a Text, Comment or
// ProcessingInstruction node. It is a no-op on other variants.
func (n *Node) SetNodeValue(value string) {
	if n.charData != nil {
		*n.charData = value
	}
}

// OwnerDocument returns the Document that created this node. A Document is
// its own owner document.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent of this node, or nil for a detached node.
// Documents never have a parent.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent as an Element, or nil if the node is
// detached or its parent is not an element.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// FirstChild returns the first child node, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildNodes returns a live NodeList over this node's direct children. The
// list re-walks the child chain on every access and therefore always
// reflects the current tree state.
func (n *Node) ChildNodes() *NodeList {
	return &NodeList{parent: n}
}

// TextContent returns the concatenated data of the node's descendant text
// nodes, or the node's own data for character-data variants.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case DocumentNode:
		return ""
	case TextNode, CommentNode, ProcessingInstructionNode:
		return n.NodeValue()
	default:
		var sb strings.Builder
		n.collectTextContent(&sb)
		return sb.String()
	}
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		switch child.nodeType {
		case TextNode:
			sb.WriteString(child.NodeValue())
		case ElementNode, DocumentFragmentNode:
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent replaces the node's children with a single text node
// carrying value. On character-data variants it replaces the data instead;
// on a Document it is a no-op. Replaced children that are not otherwise
// retained are released.
func (n *Node) SetTextContent(value string) {
	switch n.nodeType {
	case DocumentNode:
		return
	case TextNode, CommentNode, ProcessingInstructionNode:
		n.SetNodeValue(value)
	default:
		for n.firstChild != nil {
			n.RemoveChild(n.firstChild).Release()
		}
		if value != "" {
			n.AppendChild(n.ownerDoc.CreateTextNode(value))
		}
	}
}

// AppendChild attaches child as the new last child of this node, returning
// the attached child for chaining. Ownership of child transfers from the
// caller (or from its previous parent) into this node's child slot; the
// reference count does not change. Hierarchy violations are silently
// dropped; use AppendChildWithError to observe them.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError attaches child as the new last child of this node.
// It fails with a HierarchyRequestError if the attachment would produce an
// invalid tree, e.g. if child is this node or one of its ancestors.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts newChild into this node's child list immediately
// before refChild, or appends it if refChild is nil. Errors are silently
// dropped; use InsertBeforeWithError to observe them.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts newChild before refChild, or appends it if
// refChild is nil. It fails with a HierarchyRequestError for structural
// violations and a NotFoundError if refChild is not a child of this node.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if err := n.validatePreInsertion(newChild, refChild); err != nil {
		return nil, err
	}
	return n.insertBefore(newChild, refChild), nil
}

// validatePreInsertion checks the structural preconditions of inserting
// node before child under this node.
func (n *Node) validatePreInsertion(node, child *Node) error {
	if !n.canHaveChildren() {
		return ErrHierarchyRequest("the parent node cannot have children")
	}
	if n.isInclusiveAncestor(node) {
		return ErrHierarchyRequest("the new child contains the parent")
	}
	if child != nil && child.parentNode != n {
		return ErrNotFound("the reference node is not a child of this node")
	}
	if !isValidChildType(node) {
		return ErrHierarchyRequest("the node cannot be a child")
	}
	if n.nodeType == DocumentNode {
		if node.nodeType == TextNode {
			return ErrHierarchyRequest("cannot insert a text node as a direct child of a document")
		}
		if err := n.validateDocumentInsertion(node); err != nil {
			return err
		}
	}
	return nil
}

// canHaveChildren returns true if this node can hold child nodes.
func (n *Node) canHaveChildren() bool {
	switch n.nodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
		return true
	default:
		return false
	}
}

// isInclusiveAncestor returns true if node is this node or an ancestor of
// this node.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	if node == nil {
		return false
	}
	for current := n; current != nil; current = current.parentNode {
		if current == node {
			return true
		}
	}
	return false
}

// isValidChildType returns true if node may appear in a child list.
func isValidChildType(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.nodeType {
	case DocumentFragmentNode, ElementNode, TextNode, ProcessingInstructionNode, CommentNode:
		return true
	default:
		return false
	}
}

// validateDocumentInsertion enforces that a Document holds at most one
// element child, including when the insertion is a fragment splice.
func (n *Node) validateDocumentInsertion(node *Node) error {
	switch node.nodeType {
	case ElementNode:
		if n.hasElementChild() {
			return ErrHierarchyRequest("the document already has a document element")
		}
	case DocumentFragmentNode:
		elementCount := 0
		for c := node.firstChild; c != nil; c = c.nextSibling {
			if c.nodeType == TextNode {
				return ErrHierarchyRequest("cannot insert a text node as a direct child of a document")
			}
			if c.nodeType == ElementNode {
				elementCount++
			}
		}
		if elementCount > 1 || (elementCount == 1 && n.hasElementChild()) {
			return ErrHierarchyRequest("the document already has a document element")
		}
	}
	return nil
}

func (n *Node) hasElementChild() bool {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return true
		}
	}
	return false
}

// insertBefore links newChild into the child chain. Preconditions have
// already been validated.
func (n *Node) insertBefore(newChild, refChild *Node) *Node {
	// A fragment is spliced: its children move individually, the fragment
	// itself stays behind empty with the caller.
	if newChild.nodeType == DocumentFragmentNode {
		for newChild.firstChild != nil {
			n.insertBefore(newChild.removeChildInternal(newChild.firstChild), refChild)
		}
		return newChild
	}

	// Inserting a node before itself is a no-op.
	if newChild == refChild {
		return newChild
	}

	// Detach-then-attach: a node that already has a parent is first removed
	// from it, moving its ownership back in flight before this node takes it.
	if newChild.parentNode != nil {
		newChild.parentNode.removeChildInternal(newChild)
	}

	newChild.parentNode = n
	if refChild == nil {
		newChild.prevSibling = n.lastChild
		newChild.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		n.lastChild = newChild
	} else {
		newChild.prevSibling = refChild.prevSibling
		newChild.nextSibling = refChild
		if refChild.prevSibling != nil {
			refChild.prevSibling.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		refChild.prevSibling = newChild
	}
	return newChild
}

// RemoveChild detaches child from this node and returns it. Ownership of
// the detached node transfers back to the caller, who must either re-attach
// it or Release it. Returns nil if child is not a child of this node; use
// RemoveChildWithError to observe the error.
func (n *Node) RemoveChild(child *Node) *Node {
	result, _ := n.RemoveChildWithError(child)
	return result
}

// RemoveChildWithError detaches child from this node and returns it. It
// fails with a NotFoundError if child is not a child of this node.
func (n *Node) RemoveChildWithError(child *Node) (*Node, error) {
	if child == nil || child.parentNode != n {
		return nil, ErrNotFound("the node to be removed is not a child of this node")
	}
	return n.removeChildInternal(child), nil
}

// removeChildInternal unlinks child from the sibling chain without checking
// that it actually is a child.
func (n *Node) removeChildInternal(child *Node) *Node {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
	return child
}

// ReplaceChild replaces oldChild with newChild in this node's child list
// and returns the detached oldChild, whose ownership transfers back to the
// caller. Errors are silently dropped; use ReplaceChildWithError.
func (n *Node) ReplaceChild(newChild, oldChild *Node) *Node {
	result, _ := n.ReplaceChildWithError(newChild, oldChild)
	return result
}

// ReplaceChildWithError replaces oldChild with newChild. It fails with a
// NotFoundError if oldChild is not a child of this node, and with a
// HierarchyRequestError for structural violations.
func (n *Node) ReplaceChildWithError(newChild, oldChild *Node) (*Node, error) {
	if oldChild == nil || oldChild.parentNode != n {
		return nil, ErrNotFound("the node to be replaced is not a child of this node")
	}
	// Detach first so the validation does not count oldChild, e.g. when
	// swapping one document element for another.
	ref := oldChild.nextSibling
	n.removeChildInternal(oldChild)
	if err := n.validatePreInsertion(newChild, nil); err != nil {
		n.insertBefore(oldChild, ref)
		return nil, err
	}
	n.insertBefore(newChild, ref)
	return oldChild, nil
}
