package dom

import (
	"testing"
)

func newClassElement(t *testing.T) (*Document, *Element) {
	t.Helper()
	doc := NewDocument()
	el := doc.CreateElement("div")
	t.Cleanup(func() {
		el.AsNode().Release()
		doc.Release()
	})
	return doc, el
}

func TestTokenList_AddAndContains(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	if list.Length() != 0 {
		t.Fatalf("expected empty list, got %d", list.Length())
	}
	if list.Contains("foo") {
		t.Error("empty list should contain nothing")
	}

	if err := list.Add("foo"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !list.Contains("foo") {
		t.Error("added token should be contained")
	}
	if got := el.GetAttribute("class"); got != "foo" {
		t.Errorf("class attribute should be 'foo', got %q", got)
	}

	// Adding the same token again is a no-op.
	list.Add("foo")
	if got := el.GetAttribute("class"); got != "foo" {
		t.Errorf("duplicate add should not change the attribute, got %q", got)
	}

	list.Add("bar", "baz")
	if got := el.GetAttribute("class"); got != "foo bar baz" {
		t.Errorf("expected 'foo bar baz', got %q", got)
	}
	if list.Length() != 3 {
		t.Errorf("expected 3 tokens, got %d", list.Length())
	}
}

func TestTokenList_Remove(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	list.Add("a", "b", "c")
	if err := list.Remove("b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if list.Contains("b") {
		t.Error("removed token should be gone")
	}
	if got := el.GetAttribute("class"); got != "a c" {
		t.Errorf("expected 'a c', got %q", got)
	}

	// Removing a missing token is a no-op.
	list.Remove("missing")
	if got := el.GetAttribute("class"); got != "a c" {
		t.Errorf("no-op remove changed the attribute: %q", got)
	}
}

func TestTokenList_RemoveLastTokenKeepsAttribute(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	list.Add("only")
	list.Remove("only")

	// The attribute stays present with an empty value; it is not deleted.
	if !el.HasAttribute("class") {
		t.Error("class attribute should survive emptying the set")
	}
	if got := el.GetAttribute("class"); got != "" {
		t.Errorf("expected empty class value, got %q", got)
	}
	if list.Length() != 0 {
		t.Errorf("expected empty set, got %d", list.Length())
	}
}

func TestTokenList_RemoveOnAbsentAttribute(t *testing.T) {
	_, el := newClassElement(t)

	el.ClassList().Remove("ghost")
	if el.HasAttribute("class") {
		t.Error("removing from an absent attribute must not create it")
	}
}

func TestTokenList_SyncsWithSetAttribute(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	// Mutations through SetAttribute are visible to the next list call.
	el.SetAttribute("class", "  one\ttwo  one\nthree ")
	if list.Length() != 3 {
		t.Errorf("expected 3 deduplicated tokens, got %d", list.Length())
	}
	if !list.Contains("one") || !list.Contains("two") || !list.Contains("three") {
		t.Error("tokenization should split on whitespace runs")
	}
	if list.Item(0) != "one" || list.Item(1) != "two" || list.Item(2) != "three" {
		t.Error("token order should be first occurrence")
	}
	if list.Item(3) != "" {
		t.Error("out-of-range Item should return empty string")
	}

	// And the other way: list mutations re-serialize the attribute.
	list.Add("four")
	if got := el.GetAttribute("class"); got != "one two three four" {
		t.Errorf("expected normalized re-serialization, got %q", got)
	}
}

func TestTokenList_AddDuplicateInAttribute(t *testing.T) {
	_, el := newClassElement(t)

	el.SetAttribute("class", "x y x")
	el.ClassList().Add("x")

	// The reflected attribute tokenizes to exactly one "x".
	count := 0
	el.ClassList().ForEach(func(token string, _ int) {
		if token == "x" {
			count++
		}
	})
	if count != 1 {
		t.Errorf("expected exactly one 'x', got %d", count)
	}
}

func TestTokenList_Validation(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	err := list.Add("")
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "SyntaxError" {
		t.Errorf("empty token should be a SyntaxError, got %v", err)
	}
	err = list.Add("a b")
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "InvalidCharacterError" {
		t.Errorf("whitespace token should be an InvalidCharacterError, got %v", err)
	}
	err = list.Remove("")
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "SyntaxError" {
		t.Errorf("empty token should be a SyntaxError, got %v", err)
	}
	if el.HasAttribute("class") {
		t.Error("failed operations must not touch the attribute")
	}
	if list.Contains("") || list.Contains("a b") {
		t.Error("invalid tokens are never contained")
	}

	// A failing token anywhere in the batch aborts the whole call.
	if err := list.Add("ok", "not ok"); err == nil {
		t.Error("batch with invalid token should fail")
	}
	if list.Contains("ok") {
		t.Error("failed batch must not apply its valid prefix")
	}
}

func TestTokenList_Toggle(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	on, err := list.Toggle("active")
	if err != nil || !on {
		t.Fatalf("first toggle should add, got on=%v err=%v", on, err)
	}
	if !list.Contains("active") {
		t.Error("token should be present after toggle on")
	}

	on, _ = list.Toggle("active")
	if on || list.Contains("active") {
		t.Error("second toggle should remove")
	}

	on, _ = list.Toggle("pinned", true)
	if !on || !list.Contains("pinned") {
		t.Error("force-true should add")
	}
	on, _ = list.Toggle("pinned", true)
	if !on || !list.Contains("pinned") {
		t.Error("force-true on present token keeps it")
	}
	on, _ = list.Toggle("pinned", false)
	if on || list.Contains("pinned") {
		t.Error("force-false should remove")
	}
}

func TestTokenList_Replace(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	list.Add("a", "b", "c")
	ok, err := list.Replace("b", "x")
	if err != nil || !ok {
		t.Fatalf("Replace failed: ok=%v err=%v", ok, err)
	}
	if got := el.GetAttribute("class"); got != "a x c" {
		t.Errorf("replace should keep the slot, got %q", got)
	}

	ok, _ = list.Replace("missing", "y")
	if ok {
		t.Error("replacing a missing token should report false")
	}

	// Replacing with an already-present token collapses the pair.
	ok, _ = list.Replace("c", "a")
	if !ok {
		t.Error("replace of present token should report true")
	}
	if got := el.GetAttribute("class"); got != "a x" {
		t.Errorf("expected 'a x', got %q", got)
	}
}

func TestTokenList_Value(t *testing.T) {
	_, el := newClassElement(t)
	list := el.ClassList()

	list.SetValue("raw  value")
	if list.Value() != "raw  value" {
		t.Error("Value should return the raw attribute text")
	}
	if list.String() != list.Value() {
		t.Error("String should equal Value")
	}
	if list.Length() != 2 {
		t.Errorf("raw value should tokenize to 2, got %d", list.Length())
	}
}
