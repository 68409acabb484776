package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tassls/internal/lsp"
)

var queryCmd = &cobra.Command{
	Use:       "query <definition|hover|references> <file:line:col>",
	Short:     "Answer a language query at a position",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"definition", "hover", "references"},
	RunE:      runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	file, pos, err := parsePosition(args[1])
	if err != nil {
		return err
	}
	ws, _, err := newWorkspace(cmd, file)
	if err != nil {
		return err
	}
	doc, _, err := openRoot(ws, file)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch args[0] {
	case "definition":
		loc, ok := lsp.Definition(ws, doc, pos)
		if !ok {
			return fmt.Errorf("no definition at %s", args[1])
		}
		fmt.Fprintln(out, formatLocation(loc))
	case "hover":
		h, ok := lsp.HoverAt(ws, doc, pos)
		if !ok {
			return fmt.Errorf("nothing to hover at %s", args[1])
		}
		fmt.Fprintln(out, h.Contents.Value)
	case "references":
		locs := lsp.References(ws, doc, pos)
		if len(locs) == 0 {
			return fmt.Errorf("no references at %s", args[1])
		}
		for _, loc := range locs {
			fmt.Fprintln(out, formatLocation(loc))
		}
	default:
		return fmt.Errorf("unknown query %q (want definition, hover or references)", args[0])
	}
	return nil
}

func formatLocation(loc lsp.Location) string {
	return fmt.Sprintf("%s:%d:%d",
		lsp.URIToPath(loc.URI), loc.Range.Start.Line+1, loc.Range.Start.Character+1)
}
