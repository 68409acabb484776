package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tassls/internal/lsp"
)

var renameCmd = &cobra.Command{
	Use:   "rename <file:line:col> <new-name>",
	Short: "Propose a workspace-wide rename",
	Long: `rename resolves the symbol at the position and prints every edit a
rename to the new name would make. Mentions found in comments are
listed separately; they are suggestions, not part of the rename
proper.`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	file, pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	newName := args[1]
	ws, _, err := newWorkspace(cmd, file)
	if err != nil {
		return err
	}
	doc, _, err := openRoot(ws, file)
	if err != nil {
		return err
	}
	edit, ok := lsp.Rename(ws, doc, pos, newName)
	if !ok {
		return fmt.Errorf("cannot rename at %s", args[0])
	}
	out := cmd.OutOrStdout()

	var comments []string
	for _, dc := range edit.DocumentChanges {
		path := lsp.URIToPath(dc.URI)
		for _, e := range dc.Edits {
			line := fmt.Sprintf("%s:%d:%d-%d: %s",
				path, e.Range.Start.Line+1, e.Range.Start.Character+1,
				e.Range.End.Character+1, e.NewText)
			if e.AnnotationID != "" {
				comments = append(comments, line)
				continue
			}
			fmt.Fprintln(out, line)
		}
	}
	if len(comments) > 0 {
		ann := edit.ChangeAnnotations[lsp.CommentAnnotation]
		fmt.Fprintf(out, "\n%s (needs confirmation):\n", ann.Label)
		for _, line := range comments {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	return nil
}
