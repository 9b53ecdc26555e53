package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func classesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes <file.html> <token>",
		Short: "List elements whose class list contains the token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			defer doc.Release()

			matches := doc.GetElementsByClassName(args[1])
			for i, el := range matches.ToSlice() {
				line := fmt.Sprintf("%d: <%s", i, el.TagName())
				if id := el.Id(); id != "" {
					line += " id=" + id
				}
				line += "> class=" + el.ClassName()
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d element(s)\n", matches.Length())
			return nil
		},
	}

	return cmd
}
