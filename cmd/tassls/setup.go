package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tassls/internal/cache"
	"tassls/internal/index"
	"tassls/internal/project"
	"tassls/internal/workspace"
)

// newWorkspace builds a workspace governed by the tass.toml nearest to
// the given file, with flag overrides applied. The disk cache is
// best-effort; failing to open it just disables it.
func newWorkspace(cmd *cobra.Command, file string) (*workspace.Workspace, project.Config, error) {
	cfg, err := project.LoadFrom(filepath.Dir(file))
	if err != nil {
		return nil, cfg, err
	}
	if cmd.Flags().Changed("case-sensitive") {
		v, _ := cmd.Flags().GetBool("case-sensitive")
		cfg.Assembler.CaseSensitive = v
	}
	if dirs, _ := cmd.Flags().GetStringArray("include-dir"); len(dirs) > 0 {
		cfg.Assembler.IncludeDirs = append(cfg.Assembler.IncludeDirs, dirs...)
	}
	c, err := cache.Open("tassls")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tassls: index cache disabled: %v\n", err)
		c = nil
	}
	ws := workspace.New(workspace.Options{
		CaseSensitive: cfg.Assembler.CaseSensitive,
		IncludeDirs:   cfg.Assembler.IncludeDirs,
		Cache:         c,
	})
	return ws, cfg, nil
}

// openRoot indexes a root file into the workspace and returns its
// document identity.
func openRoot(ws *workspace.Workspace, file string) (string, *index.DocumentIndex, error) {
	idx, err := ws.OpenFile(file)
	if err != nil {
		return "", nil, fmt.Errorf("cannot read %s: %w", file, err)
	}
	return idx.Doc, idx, nil
}
