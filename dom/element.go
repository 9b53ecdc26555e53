package dom

// Element represents an element in the document tree. It carries a tag name
// and an ordered attribute store. Element shares the Node representation;
// convert with AsNode.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// NodeName returns the tag name.
func (e *Element) NodeName() string {
	return e.TagName()
}

// TagName returns the tag name exactly as it was created. There is a single
// flat tag-name space: no case normalization and no namespace resolution.
func (e *Element) TagName() string {
	return e.AsNode().elementData.tagName
}

// LocalName returns the local name of the element, which in this model is
// the tag name itself.
func (e *Element) LocalName() string {
	return e.TagName()
}

// Id returns the id attribute value, reflected live from the attribute
// store.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// ClassName returns the class attribute value.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// SetClassName sets the class attribute value.
func (e *Element) SetClassName(className string) {
	e.SetAttribute("class", className)
}

// ClassList returns the TokenList view over the class attribute. The view
// holds no state of its own: every call re-reads the attribute, so
// mutations through SetAttribute are always visible.
func (e *Element) ClassList() *TokenList {
	data := e.AsNode().elementData
	if data.classList == nil {
		data.classList = newTokenList(e, "class")
	}
	return data.classList
}

// Attributes returns the element's attribute store.
func (e *Element) Attributes() *NamedNodeMap {
	return e.AsNode().elementData.attributes
}

// GetAttribute returns the value of the attribute with the given name, or
// the empty string if it is absent. Use GetAttributeOK or HasAttribute to
// distinguish an absent attribute from an empty value.
func (e *Element) GetAttribute(name string) string {
	return e.Attributes().GetValue(name)
}

// GetAttributeOK returns the value of the attribute with the given name and
// whether it is present.
func (e *Element) GetAttributeOK(name string) (string, bool) {
	if attr := e.Attributes().GetNamedItem(name); attr != nil {
		return attr.value, true
	}
	return "", false
}

// HasAttribute returns true if an attribute with the given name exists.
func (e *Element) HasAttribute(name string) bool {
	return e.Attributes().Has(name)
}

// SetAttribute inserts or overwrites the attribute with the given name.
// Overwriting preserves the attribute's original position in the store.
// Invalid names are silently dropped; use SetAttributeWithError.
func (e *Element) SetAttribute(name, value string) {
	_ = e.SetAttributeWithError(name, value)
}

// SetAttributeWithError inserts or overwrites the attribute with the given
// name. It fails with an InvalidCharacterError if the name is not a valid
// attribute name.
func (e *Element) SetAttributeWithError(name, value string) error {
	if !IsValidAttributeName(name) {
		return ErrInvalidCharacter("the attribute name contains invalid characters")
	}
	e.Attributes().SetValue(name, value)
	return nil
}

// RemoveAttribute deletes the attribute with the given name. It is a no-op
// if the attribute is absent.
func (e *Element) RemoveAttribute(name string) {
	e.Attributes().RemoveNamedItem(name)
}

// IsValidAttributeName reports whether name is a valid attribute name: at
// least one character, no ASCII whitespace, and none of NUL, '/', '=', '>'.
func IsValidAttributeName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for _, r := range name {
		switch r {
		case ' ', '\t', '\n', '\f', '\r', '\x00', '/', '=', '>':
			return false
		}
	}
	return true
}

// Children returns a live HTMLCollection of this element's direct child
// elements.
func (e *Element) Children() *HTMLCollection {
	return newChildElementCollection(e.AsNode())
}

// ChildElementCount returns the number of direct child elements.
func (e *Element) ChildElementCount() int {
	count := 0
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			count++
		}
	}
	return count
}

// FirstElementChild returns the first child that is an element, or nil.
func (e *Element) FirstElementChild() *Element {
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// LastElementChild returns the last child that is an element, or nil.
func (e *Element) LastElementChild() *Element {
	for child := e.AsNode().lastChild; child != nil; child = child.prevSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// PreviousElementSibling returns the closest preceding sibling that is an
// element, or nil.
func (e *Element) PreviousElementSibling() *Element {
	for sibling := e.AsNode().prevSibling; sibling != nil; sibling = sibling.prevSibling {
		if sibling.nodeType == ElementNode {
			return (*Element)(sibling)
		}
	}
	return nil
}

// NextElementSibling returns the closest following sibling that is an
// element, or nil.
func (e *Element) NextElementSibling() *Element {
	for sibling := e.AsNode().nextSibling; sibling != nil; sibling = sibling.nextSibling {
		if sibling.nodeType == ElementNode {
			return (*Element)(sibling)
		}
	}
	return nil
}

// GetElementsByTagName returns a live HTMLCollection of descendant elements
// with the given tag name. "*" matches every element.
func (e *Element) GetElementsByTagName(tagName string) *HTMLCollection {
	return newTagNameCollection(e.AsNode(), tagName)
}

// GetElementsByClassName returns a live HTMLCollection of descendant
// elements whose class list contains all of the given space-separated
// tokens.
func (e *Element) GetElementsByClassName(classNames string) *HTMLCollection {
	return newClassNameCollection(e.AsNode(), classNames)
}
