// Command lcssim-samples writes synthetic original/copied document pairs
// for trying out lcssim.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_lcs_similarity/internal/samples"
)

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		dir   string
		pairs int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:           "lcssim-samples",
		Short:         "Generate orig_<i>.txt / copy_<i>.txt sample pairs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pairs < 1 {
				return fmt.Errorf("--pairs must be at least 1, got %d", pairs)
			}
			files, err := samples.NewGenerator(seed).WriteDataset(dir, pairs)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(out, "%s %s\n", f.Original, f.Copied)
			}
			fmt.Fprintf(out, "Generated %d sample pairs in %s\n", len(files), dir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dir, "dir", "data", "Output directory")
	flags.IntVar(&pairs, "pairs", 5, "Number of pairs to generate")
	flags.Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")

	return cmd
}
