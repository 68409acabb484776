package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tassls/internal/analysis"
	"tassls/internal/diag"
	"tassls/internal/observ"
	"tassls/internal/ui"
	"tassls/internal/workspace"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Index files and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("max-diagnostics", 0, "cap diagnostics per file (0 uses tass.toml)")
}

type checkResult struct {
	file string
	ws   *workspace.Workspace
	doc  string
	bag  *diag.Bag
}

func runCheck(cmd *cobra.Command, args []string) error {
	timings, _ := cmd.Flags().GetBool("timings")
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}

	// Each root gets its own workspace; they share nothing, so the
	// index and analysis passes run in parallel. Rendering stays
	// sequential and in argument order.
	phase := -1
	if timer != nil {
		phase = timer.Begin("index+analyze")
	}
	results := make([]checkResult, len(args))
	var g errgroup.Group
	for i, file := range args {
		i, file := i, file
		g.Go(func() error {
			ws, cfg, err := newWorkspace(cmd, file)
			if err != nil {
				return err
			}
			doc, _, err := openRoot(ws, file)
			if err != nil {
				return err
			}
			max := cfg.Diagnostics.MaxDiagnostics
			if v, _ := cmd.Flags().GetInt("max-diagnostics"); v > 0 {
				max = v
			}
			results[i] = checkResult{file: file, ws: ws, doc: doc, bag: analysis.Run(ws, doc, max)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if timer != nil {
		timer.End(phase, fmt.Sprintf("%d file(s)", len(args)))
	}

	errs, warns := 0, 0
	for _, res := range results {
		r := ui.Renderer{
			Color: colorEnabled(cmd),
			Line: func(doc string, n int) (string, bool) {
				idx := res.ws.Get(doc)
				if idx == nil || n < 0 || n >= idx.LineCount() {
					return "", false
				}
				return idx.Line(n), true
			},
		}
		r.Render(cmd.OutOrStdout(), res.bag.Items())
		for _, d := range res.bag.Items() {
			if d.Severity == diag.SevError {
				errs++
			} else {
				warns++
			}
		}
		if res.bag.Len() == res.bag.Cap() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: diagnostics capped at %d\n", res.file, res.bag.Cap())
		}
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if errs > 0 || warns > 0 {
		summary := color.New(color.Bold)
		if errs > 0 {
			summary.Add(color.FgRed)
		} else {
			summary.Add(color.FgYellow)
		}
		if !colorEnabled(cmd) {
			summary.DisableColor()
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary.Sprintf("%d error(s), %d warning(s)", errs, warns))
	}
	if errs > 0 {
		return fmt.Errorf("check failed")
	}
	return nil
}
