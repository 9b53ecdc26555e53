// Package html loads HTML text into a dom.Document. It is a thin
// collaborator around golang.org/x/net/html: the parser owns all
// tokenization and tree construction rules, and this package replays the
// resulting tree through the document's public creation and attachment
// surface. The core dom package has no parsing knowledge of its own.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/treescape/domtree/dom"
)

// Parse reads HTML from r and returns a new Document holding the parsed
// tree. The caller owns the returned document and must Release it.
func Parse(r io.Reader) (*dom.Document, error) {
	netDoc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := dom.NewDocument()
	convert(netDoc, doc.AsNode(), doc)
	return doc, nil
}

// ParseString parses HTML from a string.
func ParseString(content string) (*dom.Document, error) {
	return Parse(strings.NewReader(content))
}

// convert replays the children of src under parent. Each created node is
// attached immediately, so its ownership moves straight into the tree.
func convert(src *html.Node, parent *dom.Node, doc *dom.Document) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		var node *dom.Node

		switch c.Type {
		case html.TextNode:
			node = doc.CreateTextNode(c.Data)

		case html.ElementNode:
			el := doc.CreateElement(c.Data)
			if el == nil {
				// A tag name the core rejects. Hoist the children into the
				// parent rather than dropping the whole subtree.
				convert(c, parent, doc)
				continue
			}
			for _, attr := range c.Attr {
				el.SetAttribute(attr.Key, attr.Val)
			}
			node = el.AsNode()

		case html.CommentNode:
			node = doc.CreateComment(c.Data)

		case html.DocumentNode:
			convert(c, parent, doc)
			continue

		default:
			// Doctype and error nodes have no counterpart in the core's
			// variant set.
			continue
		}

		parent.AppendChild(node)
		if c.Type == html.ElementNode {
			convert(c, node, doc)
		}
	}
}
