package html

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/treescape/domtree/dom"
)

func TestParse_BasicDocument(t *testing.T) {
	doc, err := ParseString("<html><head><title>Hi</title></head><body><p id='greet'>Hello World</p></body></html>")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	defer doc.Release()

	root := doc.DocumentElement()
	if root == nil || root.TagName() != "html" {
		t.Fatal("expected an html document element")
	}
	if doc.Head() == nil {
		t.Error("expected a head element")
	}
	body := doc.Body()
	if body == nil {
		t.Fatal("expected a body element")
	}

	p := doc.GetElementById("greet")
	if p == nil {
		t.Fatal("expected to find the p element by id")
	}
	if p.TagName() != "p" {
		t.Errorf("expected tag 'p', got %q", p.TagName())
	}
	if p.AsNode().ParentNode() != body.AsNode() {
		t.Error("p should be a child of body")
	}
	if got := p.AsNode().TextContent(); got != "Hello World" {
		t.Errorf("text content: %q", got)
	}
}

func TestParse_FragmentsGetEnvelope(t *testing.T) {
	// The HTML parser supplies the html/head/body envelope for bare
	// fragments.
	doc, err := ParseString("<p>loose</p>")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	defer doc.Release()

	if doc.DocumentElement() == nil || doc.Body() == nil {
		t.Fatal("expected the parser to supply the document envelope")
	}
	if doc.GetElementsByTagName("p").Length() != 1 {
		t.Error("expected the loose paragraph under body")
	}
}

func TestParse_AttributesInSourceOrder(t *testing.T) {
	doc, err := ParseString(`<div id="d" class="x y" data-n="1"></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	defer doc.Release()

	div := doc.GetElementById("d")
	if div == nil {
		t.Fatal("expected the div")
	}
	names := div.Attributes().Names()
	want := []string{"id", "class", "data-n"}
	if len(names) != len(want) {
		t.Fatalf("expected %d attributes, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("attribute %d: expected %q, got %q", i, name, names[i])
		}
	}
	if !div.ClassList().Contains("y") {
		t.Error("parsed class attribute should feed the token set")
	}
}

func TestParse_CommentsPreserved(t *testing.T) {
	doc, err := ParseString("<body><!-- marker --><p>text</p></body>")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	defer doc.Release()

	body := doc.Body()
	if body == nil {
		t.Fatal("expected a body")
	}
	var comment *dom.Node
	for child := body.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		if child.NodeType() == dom.CommentNode {
			comment = child
			break
		}
	}
	if comment == nil {
		t.Fatal("expected the comment to survive parsing")
	}
	if got := comment.NodeValue(); got != " marker " {
		t.Errorf("comment data: %q", got)
	}
}

func TestConvert_RejectedElementHoistsChildren(t *testing.T) {
	// The tokenizer never emits a tag name the core rejects, so build the
	// parse tree by hand: a root holding an element with an invalid name
	// that itself holds a text child.
	bad := &html.Node{Type: html.ElementNode, Data: "a<b"}
	bad.AppendChild(&html.Node{Type: html.TextNode, Data: "kept"})
	root := &html.Node{Type: html.ElementNode, Data: "div"}
	root.AppendChild(bad)

	doc := dom.NewDocument()
	defer doc.Release()
	parent := doc.CreateElement("div")
	doc.AsNode().AppendChild(parent.AsNode())

	convert(root, parent.AsNode(), doc)

	if got := parent.ChildElementCount(); got != 0 {
		t.Errorf("rejected element must not appear, got %d element children", got)
	}
	if got := parent.AsNode().TextContent(); got != "kept" {
		t.Errorf("children of a rejected element should be hoisted, got %q", got)
	}
}

func TestParse_QueriesAgainstParsedTree(t *testing.T) {
	const page = `
<html><body>
  <ul>
    <li class="item">one</li>
    <li class="item selected">two</li>
    <li class="item">three</li>
  </ul>
</body></html>`

	doc, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer doc.Release()

	items := doc.GetElementsByClassName("item")
	if items.Length() != 3 {
		t.Fatalf("expected 3 items, got %d", items.Length())
	}
	selected := doc.GetElementsByClassName("selected")
	if selected.Length() != 1 {
		t.Fatalf("expected 1 selected item, got %d", selected.Length())
	}
	if got := selected.Item(0).AsNode().TextContent(); got != "two" {
		t.Errorf("selected item text: %q", got)
	}

	// Collections over the parsed tree are live like any other.
	ul := items.Item(0).AsNode().ParentNode()
	ul.RemoveChild(items.Item(2).AsNode()).Release()
	if items.Length() != 2 {
		t.Errorf("expected 2 items after removal, got %d", items.Length())
	}
}
