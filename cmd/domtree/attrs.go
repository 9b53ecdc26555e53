package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func attrsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attrs <file.html> <id>",
		Short: "Print the attributes of the element with the given id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			defer doc.Release()

			el := doc.GetElementById(args[1])
			if el == nil {
				return fmt.Errorf("no element with id %q", args[1])
			}

			attrs := el.Attributes()
			fmt.Fprintf(cmd.OutOrStdout(), "<%s> %d attribute(s)\n", el.TagName(), attrs.Length())
			for i := 0; i < attrs.Length(); i++ {
				attr := attrs.Item(i)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s=%q\n", attr.Name(), attr.Value())
			}
			return nil
		},
	}

	return cmd
}
