// Command lcssim-server exposes LCS similarity over HTTP.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	pkglcs "github.com/baditaflorin/go_lcs_similarity/pkg/lcs"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultComputeTimeout = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use fasthttp's default
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "lcssim-server",
		Short: "Serve LCS similarity over HTTP",
		Long: `lcssim-server answers POST /similarity with the LCS similarity of the
"original" and "copied" texts of a JSON body. GET /health reports liveness and
GET /metrics exposes Prometheus metrics.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags(), config.Defaults{
				"log.level": "info",
				"log.json":  true,
			})
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flags.Int("port", DefaultPort, "HTTP server port")
	flags.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	flags.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	flags.Duration("compute-timeout", DefaultComputeTimeout, "Per-request computation timeout")
	flags.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	flags.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent connections (0 = fasthttp default)")
	flags.Bool("warm-up", true, "Perform system warm-up on startup")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("log-json", true, "Log in JSON format")
	flags.String("log-file", "", "Log file path (empty = stderr)")
	flags.Int("max-row-width", lcs.DefaultMaxRowWidth, "Inputs whose shorter side exceeds this many characters report 0%")
	flags.String("normalize", "none", "Text normalization: none or default")
	flags.Bool("details", false, "Include diff summary and edit distance in responses")

	return cmd
}

func serve(cfg *config.Config) error {
	log, err := createLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting similarity HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"compute_timeout", cfg.Server.ComputeTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
	)

	similarity, err := newSimilarity(cfg, log)
	if err != nil {
		log.Error("Failed to initialize similarity calculator", "error", err)
		return err
	}
	log.Info("Similarity calculator initialized successfully",
		"warm_up", cfg.Server.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	h := newHandler(similarity, log, cfg.Server.ComputeTimeout)

	server := &fasthttp.Server{
		Handler:               h.requestHandler,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // requests are logged by the handler
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return err
	}

	<-idleConnsClosed
	log.Info("Server stopped")
	return nil
}

func newSimilarity(cfg *config.Config, log ports.Logger) (*pkglcs.Similarity, error) {
	normType, err := normalizer.ParseType(cfg.Engine.Normalize)
	if err != nil {
		return nil, err
	}
	return pkglcs.New(
		pkglcs.WithPortsLogger(log),
		pkglcs.WithMaxRowWidth(cfg.Engine.MaxRowWidth),
		pkglcs.WithNormalizer(normalizer.NewNormalizerFactory().CreateNormalizer(normType)),
		pkglcs.WithDetails(cfg.Engine.Details),
		pkglcs.WithWarmUp(cfg.Server.WarmUp),
	)
}

// createLogger creates and configures a logger
func createLogger(cfg config.LogConfig) (ports.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logger.NewLogger(logger.Options{
		File:  cfg.File,
		JSON:  cfg.JSON,
		Level: level,
	})
}
