// Command lcssim-report summarizes a cover profile and a CPU profile into a
// Markdown report.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_lcs_similarity/internal/report"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		coverPath   string
		profilePath string
		outPath     string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "lcssim-report",
		Short: "Write a coverage and hot-path report",
		Long: `lcssim-report reads a Go cover profile and a pprof CPU profile and writes a
Markdown report. Missing inputs are reported as having no data.

  go test -coverprofile=coverage.out ./...
  go test -run=NONE -bench=. -cpuprofile=cpu.prof ./benchmark
  lcssim-report`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cov, err := report.ReadCoverage(coverPath)
			if err != nil {
				return err
			}
			funcs, err := report.TopFunctions(profilePath, top)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			defer f.Close()

			err = report.Write(f, report.Input{
				Generated:   time.Now(),
				CoverPath:   coverPath,
				ProfilePath: profilePath,
				Coverage:    cov,
				Top:         funcs,
			})
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(out, "Report written to %s\n", outPath)
			return f.Close()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&coverPath, "cover", "coverage.out", "Cover profile path")
	flags.StringVar(&profilePath, "profile", "cpu.prof", "CPU profile path")
	flags.StringVar(&outPath, "out", "REPORT.md", "Report output path")
	flags.IntVar(&top, "top", 10, "Number of functions to list")

	return cmd
}
