// Command domtree inspects HTML documents through the domtree engine: it
// parses a file and answers structure and attribute queries against the
// resulting tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treescape/domtree/dom"
	"github.com/treescape/domtree/html"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "domtree",
		Short: "Inspect HTML documents as DOM trees",
		Long: `domtree parses an HTML file into an in-memory DOM tree and runs
queries against it: tree outlines, class-based element lookups, and
attribute listings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		outlineCmd(),
		classesCmd(),
		attrsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// parseFile loads path into a document. The caller must Release the
// returned document.
func parseFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, err
	}
	doc.SetURL("file://" + path)
	return doc, nil
}
