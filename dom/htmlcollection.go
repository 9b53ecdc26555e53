package dom

import "strings"

// HTMLCollection is a live collection of elements under a root node,
// defined entirely by the root, a membership predicate and a scope. Nothing
// is cached: every access re-walks the tree, which is what makes the
// collection live. Do not replace the walk with a materialized index; the
// index would need invalidation on every mutation.
type HTMLCollection struct {
	root   *Node
	filter func(*Element) bool

	// directOnly restricts the scope to the root's direct children instead
	// of the full descendant pre-order walk.
	directOnly bool
}

// newHTMLCollection creates a descendant-scoped collection with the given
// root and filter.
func newHTMLCollection(root *Node, filter func(*Element) bool) *HTMLCollection {
	return &HTMLCollection{root: root, filter: filter}
}

// newChildElementCollection creates a collection of the root's direct child
// elements.
func newChildElementCollection(root *Node) *HTMLCollection {
	return &HTMLCollection{
		root:       root,
		filter:     func(*Element) bool { return true },
		directOnly: true,
	}
}

// newTagNameCollection creates a collection of descendant elements with the
// given tag name. "*" matches every element. Tag names are compared
// exactly; there is no case normalization.
func newTagNameCollection(root *Node, tagName string) *HTMLCollection {
	return newHTMLCollection(root, func(el *Element) bool {
		return tagName == "*" || el.TagName() == tagName
	})
}

// newClassNameCollection creates a collection of descendant elements whose
// class list contains every one of the space-separated tokens in
// classNames.
func newClassNameCollection(root *Node, classNames string) *HTMLCollection {
	classes := strings.Fields(classNames)
	return newHTMLCollection(root, func(el *Element) bool {
		classList := el.ClassList()
		for _, class := range classes {
			if !classList.Contains(class) {
				return false
			}
		}
		return true
	})
}

// Length returns the current number of matching elements.
func (hc *HTMLCollection) Length() int {
	count := 0
	hc.walk(hc.root, func(*Element) bool {
		count++
		return true
	})
	return count
}

// Item returns the matching element at the given index in tree order, or
// nil if out of bounds. The walk short-circuits at the requested index.
func (hc *HTMLCollection) Item(index int) *Element {
	if index < 0 {
		return nil
	}
	var found *Element
	i := 0
	hc.walk(hc.root, func(el *Element) bool {
		if i == index {
			found = el
			return false
		}
		i++
		return true
	})
	return found
}

// NamedItem returns the first matching element whose id equals name, or
// nil.
func (hc *HTMLCollection) NamedItem(name string) *Element {
	if name == "" {
		return nil
	}
	var found *Element
	hc.walk(hc.root, func(el *Element) bool {
		if el.Id() == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// ToSlice returns a snapshot of the current matching elements in tree
// order.
func (hc *HTMLCollection) ToSlice() []*Element {
	var elements []*Element
	hc.walk(hc.root, func(el *Element) bool {
		elements = append(elements, el)
		return true
	})
	return elements
}

// walk visits matching elements under node in tree order, calling visit for
// each. Returning false from visit stops the walk.
func (hc *HTMLCollection) walk(node *Node, visit func(*Element) bool) bool {
	for child := node.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			el := (*Element)(child)
			if hc.filter(el) && !visit(el) {
				return false
			}
			if !hc.directOnly && !hc.walk(child, visit) {
				return false
			}
		}
	}
	return true
}
