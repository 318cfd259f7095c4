package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/winfrac-dev/winfrac/internal/adapters/file"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report <log>",
	Short: "Summarize a result log with confidence intervals",
	Long: `Parses a result log written by "winfrac run --log" and prints the point
estimate together with Hoeffding confidence intervals at a few confidence
levels. Output is rendered as markdown on a terminal, plain text otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log, err := file.ReadLog(args[0])
	if err != nil {
		return err
	}
	agg, ok := log.Last()
	if !ok {
		return fmt.Errorf("%w: result log %q holds no tally", domain.ErrMalformedInput, args[0])
	}

	markdown := reportMarkdown(args[0], log, agg)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err == nil {
			if rendered, err := renderer.Render(markdown); err == nil {
				fmt.Print(rendered)
				return nil
			}
		}
	}
	fmt.Print(markdown)
	return nil
}

func reportMarkdown(path string, log file.Log, agg domain.Aggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Result report\n\n")
	fmt.Fprintf(&b, "Source: `%s`\n\n", path)

	fmt.Fprintf(&b, "## Tally\n\n")
	fmt.Fprintf(&b, "- trials: %d\n", agg.Total)
	fmt.Fprintf(&b, "- won by player 0: %d\n", agg.Won)
	fmt.Fprintf(&b, "- point estimate: %.4f\n", agg.Estimate())
	if n := len(log.Snapshots); n > 0 {
		last := log.Snapshots[n-1]
		fmt.Fprintf(&b, "- snapshots recorded: %d\n", n)
		fmt.Fprintf(&b, "- accumulated solver time: %.3f ms\n", last.SolverTime.Seconds()*1000)
	}
	if log.Final == nil {
		fmt.Fprintf(&b, "\nThe run did not finish; numbers come from the latest snapshot.\n")
	}

	fmt.Fprintf(&b, "\n## Hoeffding confidence intervals\n\n")
	fmt.Fprintf(&b, "| confidence | half-width | interval |\n")
	fmt.Fprintf(&b, "|-----------:|-----------:|:---------|\n")
	estimate := agg.Estimate()
	for _, delta := range []float64{0.10, 0.05, 0.01} {
		half := agg.HoeffdingHalfWidth(delta)
		fmt.Fprintf(&b, "| %.0f%% | %.4f | [%.4f, %.4f] |\n",
			(1-delta)*100, half, max(0, estimate-half), min(1, estimate+half))
	}
	return b.String()
}
