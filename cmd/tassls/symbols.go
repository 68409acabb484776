package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <file>",
	Short: "Dump the symbol table of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().Bool("anon", false, "include anonymous labels")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	ws, _, err := newWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	_, idx, err := openRoot(ws, args[0])
	if err != nil {
		return err
	}
	withAnon, _ := cmd.Flags().GetBool("anon")

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	defer tw.Flush()
	for _, def := range idx.Labels {
		if def.Anonymous && !withAnon {
			continue
		}
		name := def.OriginalName
		if def.Anonymous {
			name = fmt.Sprintf("%c#%d", def.AnonChar, def.AnonIndex)
		}
		scope := def.ScopePath
		if scope == "" {
			scope = "-"
		}
		value := def.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%s\t%d:%d\t%s\t%s\n",
			name, def.Span.Start.Line+1, def.Span.Start.Col+1, scope, value)
	}
	return nil
}
