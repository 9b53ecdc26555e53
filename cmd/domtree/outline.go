package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treescape/domtree/dom"
)

func outlineCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "outline <file.html>",
		Short: "Print an indented outline of the document tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			defer doc.Release()

			printOutline(cmd.OutOrStdout(), doc.AsNode(), 0, maxDepth)
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 0, "Limit the outline to this depth (0 = unlimited)")

	return cmd
}

// printOutline writes one line per node, indented by depth.
func printOutline(w io.Writer, n *dom.Node, depth, maxDepth int) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describeNode(n))
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		printOutline(w, child, depth+1, maxDepth)
	}
}

// describeNode renders a single outline line for a node.
func describeNode(n *dom.Node) string {
	switch n.NodeType() {
	case dom.ElementNode:
		el := (*dom.Element)(n)
		desc := "<" + el.TagName()
		if id := el.Id(); id != "" {
			desc += " id=" + id
		}
		if class := el.ClassName(); class != "" {
			desc += " class=" + class
		}
		return desc + ">"
	case dom.TextNode:
		return fmt.Sprintf("#text %q", preview(n.NodeValue()))
	case dom.CommentNode:
		return fmt.Sprintf("#comment %q", preview(n.NodeValue()))
	default:
		return n.NodeName()
	}
}

// preview trims and truncates text data for one-line display.
func preview(data string) string {
	data = strings.Join(strings.Fields(data), " ")
	if len(data) > 40 {
		data = data[:37] + "..."
	}
	return data
}
