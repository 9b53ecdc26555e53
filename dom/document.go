package dom

import "strings"

// Document is the factory for all node creation and the conventional root
// owner of an attached tree. It shares the Node representation; convert
// with AsNode. A Document is its own owner document and never has a parent.
type Document Node

// DefaultURL is the URL of a document with no associated resource.
const DefaultURL = "about:blank"

// NewDocument creates a new empty Document with a reference count of one,
// held by the caller.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	node.documentData = &documentData{}
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// URL returns the document's URL, or DefaultURL for a document with no
// associated resource.
func (d *Document) URL() string {
	if d.AsNode().documentData.url == "" {
		return DefaultURL
	}
	return d.AsNode().documentData.url
}

// SetURL associates a URL with the document. Used by parsers loading a
// document from a named resource.
func (d *Document) SetURL(url string) {
	d.AsNode().documentData.url = url
}

// CreateElement creates a new detached element with the given tag name,
// owned by the caller. The tag name is stored exactly as given. Invalid
// names return nil; use CreateElementWithError.
func (d *Document) CreateElement(tagName string) *Element {
	el, _ := d.CreateElementWithError(tagName)
	return el
}

// CreateElementWithError creates a new detached element with the given tag
// name. It fails with an InvalidCharacterError if the name is empty or
// contains whitespace or markup delimiters.
func (d *Document) CreateElementWithError(tagName string) (*Element, error) {
	if !isValidTagName(tagName) {
		return nil, ErrInvalidCharacter("the tag name contains invalid characters")
	}
	node := newNode(ElementNode, tagName, d)
	node.elementData = &elementData{tagName: tagName}
	node.elementData.attributes = newNamedNodeMap((*Element)(node))
	return (*Element)(node), nil
}

// isValidTagName reports whether tagName can name an element. The tag space
// is flat, so only the characters that would break markup are rejected.
func isValidTagName(tagName string) bool {
	if len(tagName) == 0 {
		return false
	}
	return !strings.ContainsAny(tagName, " \t\n\f\r\x00/<>")
}

// CreateTextNode creates a new detached text node with the given data,
// owned by the caller.
func (d *Document) CreateTextNode(data string) *Node {
	node := newNode(TextNode, "#text", d)
	node.charData = &data
	return node
}

// CreateComment creates a new detached comment node with the given data,
// owned by the caller.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.charData = &data
	return node
}

// CreateProcessingInstruction creates a new detached processing instruction
// node, owned by the caller. Invalid targets return nil; use
// CreateProcessingInstructionWithError.
func (d *Document) CreateProcessingInstruction(target, data string) *Node {
	node, _ := d.CreateProcessingInstructionWithError(target, data)
	return node
}

// CreateProcessingInstructionWithError creates a new detached processing
// instruction node. It fails with an InvalidCharacterError if the target is
// not a valid name, and with one if data contains "?>".
func (d *Document) CreateProcessingInstructionWithError(target, data string) (*Node, error) {
	if !isValidTagName(target) {
		return nil, ErrInvalidCharacter("the target contains invalid characters")
	}
	if strings.Contains(data, "?>") {
		return nil, ErrInvalidCharacter(`processing instruction data cannot contain "?>"`)
	}
	node := newNode(ProcessingInstructionNode, target, d)
	node.charData = &data
	return node, nil
}

// CreateDocumentFragment creates a new empty document fragment, owned by
// the caller.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	node := newNode(DocumentFragmentNode, "#document-fragment", d)
	return (*DocumentFragment)(node)
}

// DocumentElement returns the document's root element, or nil.
func (d *Document) DocumentElement() *Element {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// Head returns the first "head" child of the document element, or nil.
func (d *Document) Head() *Element {
	return d.documentElementChild("head")
}

// Body returns the first "body" child of the document element, or nil.
func (d *Document) Body() *Element {
	return d.documentElementChild("body")
}

func (d *Document) documentElementChild(tagName string) *Element {
	docEl := d.DocumentElement()
	if docEl == nil {
		return nil
	}
	for child := docEl.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode && (*Element)(child).TagName() == tagName {
			return (*Element)(child)
		}
	}
	return nil
}

// GetElementById returns the first element in tree order with the given id,
// or nil. The returned pointer is borrowed: the tree keeps ownership.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	return newHTMLCollection(d.AsNode(), func(el *Element) bool {
		return el.Id() == id
	}).Item(0)
}

// GetElementsByTagName returns a live HTMLCollection of elements with the
// given tag name anywhere in the document. "*" matches every element.
func (d *Document) GetElementsByTagName(tagName string) *HTMLCollection {
	return newTagNameCollection(d.AsNode(), tagName)
}

// GetElementsByClassName returns a live HTMLCollection of elements whose
// class list contains all of the given space-separated tokens.
func (d *Document) GetElementsByClassName(classNames string) *HTMLCollection {
	return newClassNameCollection(d.AsNode(), classNames)
}

// Children returns a live HTMLCollection of the document's direct child
// elements.
func (d *Document) Children() *HTMLCollection {
	return newChildElementCollection(d.AsNode())
}

// ChildElementCount returns the number of direct child elements.
func (d *Document) ChildElementCount() int {
	count := 0
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			count++
		}
	}
	return count
}

// Retain increments the document's reference count and returns the
// document.
func (d *Document) Retain() *Document {
	d.AsNode().Retain()
	return d
}

// Release drops one reference to the document, releasing the whole attached
// tree when the count reaches zero.
func (d *Document) Release() {
	d.AsNode().Release()
}
