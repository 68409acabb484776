package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tassls/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("json", false, "machine-readable output")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Version   string `json:"version"`
			GitCommit string `json:"gitCommit,omitempty"`
			BuildDate string `json:"buildDate,omitempty"`
		}{version.Version, version.GitCommit, version.BuildDate})
	}
	fmt.Fprintf(out, "tassls %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
	}
	return nil
}
