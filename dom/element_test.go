package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElement_Attributes(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	el := doc.CreateElement("input")
	defer el.AsNode().Release()

	if el.HasAttribute("type") {
		t.Error("new element should have no attributes")
	}
	if el.GetAttribute("type") != "" {
		t.Error("absent attribute should read as empty string")
	}
	if _, ok := el.GetAttributeOK("type"); ok {
		t.Error("GetAttributeOK should report absence")
	}

	el.SetAttribute("type", "text")
	el.SetAttribute("name", "q")
	el.SetAttribute("value", "")

	if got := el.GetAttribute("type"); got != "text" {
		t.Errorf("GetAttribute: %q", got)
	}
	if v, ok := el.GetAttributeOK("value"); !ok || v != "" {
		t.Error("empty value should still be present")
	}
	if el.Attributes().Length() != 3 {
		t.Errorf("expected 3 attributes, got %d", el.Attributes().Length())
	}

	el.RemoveAttribute("name")
	if el.HasAttribute("name") {
		t.Error("removed attribute should be gone")
	}
	el.RemoveAttribute("name") // no-op
	if el.Attributes().Length() != 2 {
		t.Errorf("expected 2 attributes, got %d", el.Attributes().Length())
	}
}

func TestElement_AttributeOrder(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	el := doc.CreateElement("div")
	defer el.AsNode().Release()

	el.SetAttribute("a", "1")
	el.SetAttribute("b", "2")
	el.SetAttribute("c", "3")
	// Overwriting keeps the original position.
	el.SetAttribute("a", "one")

	if diff := cmp.Diff([]string{"a", "b", "c"}, el.Attributes().Names()); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
	if el.GetAttribute("a") != "one" {
		t.Error("overwrite should update the value")
	}
	if el.Attributes().Item(0).Value() != "one" {
		t.Error("Item(0) should see the overwritten value")
	}
}

func TestElement_AttributeNameValidation(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	el := doc.CreateElement("div")
	defer el.AsNode().Release()

	for _, name := range []string{"", "a b", "a=b", "a>b", "a/b"} {
		err := el.SetAttributeWithError(name, "v")
		if err == nil {
			t.Errorf("expected error for attribute name %q", name)
			continue
		}
		if domErr, ok := err.(*DOMError); !ok || domErr.Name != "InvalidCharacterError" {
			t.Errorf("expected InvalidCharacterError for %q, got %v", name, err)
		}
	}
	if el.Attributes().Length() != 0 {
		t.Error("failed sets must not create attributes")
	}
}

func TestElement_IdReflection(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	el := doc.CreateElement("div")
	defer el.AsNode().Release()

	if el.Id() != "" {
		t.Error("id should start empty")
	}

	el.SetAttribute("id", "main")
	if el.Id() != "main" {
		t.Error("Id should reflect the attribute")
	}

	el.SetId("other")
	if el.GetAttribute("id") != "other" {
		t.Error("SetId should write the attribute")
	}

	el.RemoveAttribute("id")
	if el.Id() != "" {
		t.Error("Id should reflect removal")
	}
	if el.HasAttribute("id") {
		t.Error("id attribute should be gone")
	}
}

func TestElement_Traversal(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	parent := doc.CreateElement("div")
	defer parent.AsNode().Release()

	parent.AsNode().AppendChild(doc.CreateTextNode("pad"))
	first := doc.CreateElement("first")
	parent.AsNode().AppendChild(first.AsNode())
	parent.AsNode().AppendChild(doc.CreateComment("pad"))
	second := doc.CreateElement("second")
	parent.AsNode().AppendChild(second.AsNode())
	parent.AsNode().AppendChild(doc.CreateTextNode("pad"))

	if parent.ChildElementCount() != 2 {
		t.Errorf("expected 2 element children, got %d", parent.ChildElementCount())
	}
	if parent.FirstElementChild() != first {
		t.Error("FirstElementChild should skip non-elements")
	}
	if parent.LastElementChild() != second {
		t.Error("LastElementChild should skip non-elements")
	}
	if first.NextElementSibling() != second {
		t.Error("NextElementSibling should skip the comment")
	}
	if second.PreviousElementSibling() != first {
		t.Error("PreviousElementSibling should skip the comment")
	}
	if first.PreviousElementSibling() != nil {
		t.Error("first element has no previous element sibling")
	}
	if second.NextElementSibling() != nil {
		t.Error("last element has no next element sibling")
	}
}

func TestElement_ParentElement(t *testing.T) {
	doc := NewDocument()
	defer doc.Release()

	root := doc.CreateElement("html")
	doc.AsNode().AppendChild(root.AsNode())
	child := doc.CreateElement("body")
	root.AsNode().AppendChild(child.AsNode())

	if child.AsNode().ParentElement() != root {
		t.Error("ParentElement should return the element parent")
	}
	if root.AsNode().ParentElement() != nil {
		t.Error("a document parent is not an element")
	}
}
