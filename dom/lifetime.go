package dom

import (
	"github.com/treescape/domtree/internal/invariants"
)

// Retain increments the node's reference count and returns the node. Use it
// when a second strong handle to an already-owned node is required, e.g.
// when handing a node to a caller while it also stays attached to a parent.
// Every Retain must be matched by a Release.
func (n *Node) Retain() *Node {
	if invariants.Enabled && n.refs <= 0 {
		invariants.Violated("Retain of freed %s node", n.nodeType)
	}
	n.refs++
	return n
}

// Release drops one reference to the node. When the count reaches zero the
// node's remaining children are recursively released and its storage is
// cleared; the node must not be used afterwards.
//
// Releasing the last reference to a node that is still attached to a parent
// is a caller error: the parent's child slot still owns it. Detach it with
// RemoveChild first. This, like a double release, is only detected under
// the invariants build tag.
func (n *Node) Release() {
	if invariants.Enabled {
		if n.refs <= 0 {
			invariants.Violated("Release of freed %s node", n.nodeType)
		}
		if n.refs == 1 && n.parentNode != nil {
			invariants.Violated("Release of attached %s node; RemoveChild it first", n.nodeType)
		}
	}
	n.refs--
	if n.refs <= 0 {
		n.free()
	}
}

// RefCount returns the node's current reference count. A node is live while
// the count is greater than zero.
func (n *Node) RefCount() int {
	return n.refs
}

// free releases the node's owned children and clears its storage. The child
// links are severed before the recursive release so that each child is no
// longer "attached" when its last reference drops.
func (n *Node) free() {
	child := n.firstChild
	n.firstChild = nil
	n.lastChild = nil
	for child != nil {
		next := child.nextSibling
		child.parentNode = nil
		child.prevSibling = nil
		child.nextSibling = nil
		child.refs--
		if child.refs <= 0 {
			child.free()
		}
		child = next
	}
	n.elementData = nil
	n.charData = nil
	n.documentData = nil
	n.ownerDoc = nil
	n.parentNode = nil
}
