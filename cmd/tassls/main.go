package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tassls/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tassls",
	Short: "Language intelligence for 64tass-style assembly",
	Long: `tassls indexes 64tass-style assembly sources and answers definition,
reference, hover, folding and rename queries, with diagnostics.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Bool("case-sensitive", false, "case-sensitive symbols (overrides tass.toml)")
	rootCmd.PersistentFlags().StringArray("include-dir", nil, "extra include search directory (repeatable)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color tri-state against the output stream.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	return isTerminal(os.Stdout)
}
