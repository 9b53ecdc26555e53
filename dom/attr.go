package dom

// Attr represents a single attribute of an Element: a name and a value.
// Attribute names are opaque, case-preserved strings; there is no namespace
// resolution in this model.
type Attr struct {
	ownerElement *Element
	name         string
	value        string
}

// NewAttr creates a detached Attr with the given name and value.
func NewAttr(name, value string) *Attr {
	return &Attr{name: name, value: value}
}

// Name returns the attribute name.
func (a *Attr) Name() string {
	return a.name
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.value
}

// SetValue sets the attribute value.
func (a *Attr) SetValue(value string) {
	a.value = value
}

// OwnerElement returns the element that owns this attribute, or nil for a
// detached Attr.
func (a *Attr) OwnerElement() *Element {
	return a.ownerElement
}
