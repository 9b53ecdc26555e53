package dom

// NodeList is a live view over a parent node's direct children, in sibling
// order. It holds only the parent reference: Length and Item re-walk the
// child chain on every call, so the list always reflects the current tree
// without any invalidation bookkeeping. It is only valid while the parent
// node is alive.
type NodeList struct {
	parent *Node
}

// Length returns the current number of children.
func (nl *NodeList) Length() int {
	count := 0
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		count++
	}
	return count
}

// Item returns the child at the given index, or nil if out of bounds.
func (nl *NodeList) Item(index int) *Node {
	if index < 0 {
		return nil
	}
	i := 0
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		if i == index {
			return child
		}
		i++
	}
	return nil
}

// ForEach calls fn for each child with its index.
func (nl *NodeList) ForEach(fn func(node *Node, index int)) {
	i := 0
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		fn(child, i)
		i++
	}
}

// ToSlice returns a snapshot of the current children.
func (nl *NodeList) ToSlice() []*Node {
	var nodes []*Node
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		nodes = append(nodes, child)
	}
	return nodes
}
