package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tassls/internal/lsp"
)

var foldCmd = &cobra.Command{
	Use:   "fold <file>",
	Short: "Print the foldable regions of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFold,
}

func runFold(cmd *cobra.Command, args []string) error {
	ws, _, err := newWorkspace(cmd, args[0])
	if err != nil {
		return err
	}
	doc, _, err := openRoot(ws, args[0])
	if err != nil {
		return err
	}
	for _, fr := range lsp.FoldingRanges(ws, doc) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d-%d %s\n", fr.StartLine+1, fr.EndLine+1, fr.Kind)
	}
	return nil
}
