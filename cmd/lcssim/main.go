// Command lcssim compares an original text file with a copied one and
// appends the LCS similarity percentage to an output file.
//
//	lcssim [flags] <original> <copied> <output>
//
// Exit status is 0 on success and 2 on any failure.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/enrich"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/loader"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/sink"
	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/go_lcs_similarity/internal/runner"
)

const (
	exitOK      = 0
	exitFailure = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps every failure, panics included, to exitFailure.
func execute(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Error: unexpected failure: %v\n", r)
			code = exitFailure
		}
	}()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func newRootCmd() *cobra.Command {
	var (
		configFile  string
		verbose     bool
		printResult bool
	)

	cmd := &cobra.Command{
		Use:   "lcssim <original> <copied> <output>",
		Short: "Character-level similarity of two documents via longest common subsequence",
		Long: `lcssim measures how much of the copied document appears, in order, in the
original one. The similarity is LCS(original, copied) / len(copied) * 100,
counted in Unicode code points, and one line is appended to the output file:

  The similarity rate between document orig.txt and document copy.txt is 75.00%

Inputs are read as UTF-8, falling back to GBK. Unreadable or empty inputs
record 0.00% with an "empty file detected" marker.

Examples:
  lcssim data/orig_1.txt data/copy_1.txt result.txt
  lcssim --normalize=default --verbose orig.txt copy.txt out/result.txt`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			} else if cfg.Engine.Details {
				// Details are reported at info level.
				if level, _ := logger.ParseLevel(cfg.Log.Level); level > logger.LevelInfo {
					cfg.Log.Level = "info"
				}
			}

			sim, err := run(cmd.Context(), cfg, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if printResult {
				fmt.Fprintf(cmd.OutOrStdout(), "%.2f%%\n", sim)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&printResult, "print", false, "Also print the similarity to stdout")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Log in JSON format")
	flags.String("log-file", "", "Log file path (empty = stderr)")
	flags.Int("max-row-width", lcs.DefaultMaxRowWidth, "Inputs whose shorter side exceeds this many characters report 0%")
	flags.String("normalize", "none", "Text normalization: none or default (lower-case, no punctuation or whitespace)")
	flags.Bool("details", false, "Log a diff summary and edit distance at info level (lowers --log-level to info)")

	return cmd
}

func run(parent context.Context, cfg *config.Config, originalPath, copiedPath, outputPath string) (float64, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return 0, err
	}
	log, err := logger.NewLogger(logger.Options{
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
		Level: level,
	})
	if err != nil {
		return 0, err
	}
	defer log.Close()

	normType, err := normalizer.ParseType(cfg.Engine.Normalize)
	if err != nil {
		return 0, err
	}
	var enricher ports.DetailEnricher
	if cfg.Engine.Details {
		enricher = enrich.NewDiffEnricher()
	}

	calc, err := lcs.NewCalculator(
		lcs.SimilarityConfig{MaxRowWidth: cfg.Engine.MaxRowWidth},
		log,
		normalizer.NewNormalizerFactory().CreateNormalizer(normType),
		enricher,
	)
	if err != nil {
		return 0, err
	}

	r, err := runner.New(loader.New(log), sink.NewFileSink(log), calc, log)
	if err != nil {
		return 0, err
	}
	return r.RunOnce(ctx, originalPath, copiedPath, outputPath)
}
