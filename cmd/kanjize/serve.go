package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/config"
	"kanjize-hq/kanjize/pkg/server"
	"kanjize-hq/kanjize/pkg/telemetry/logging"
	"kanjize-hq/kanjize/pkg/telemetry/metrics"
	"kanjize-hq/kanjize/pkg/telemetry/tracing"
)

var serveFlags struct {
	listenAddress string
	watch         bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP conversion service",
	Long: `Start the HTTP conversion service with the specified configuration.

The service answers GET /v1/kanji?number=N and GET /v1/number?kanji=K, and
exposes /health, /ready, /version and Prometheus metrics.

Examples:
  # Start with default config
  kanjize serve

  # Override listen address
  kanjize serve --listen 0.0.0.0:8080

  # Apply edits to the config file without restarting
  kanjize serve --config /etc/kanjize/kanjize.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().BoolVarP(&serveFlags.watch, "watch", "w", false, "reload the config file when it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyServeOverrides(cfg)

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)

	tracer, err := tracing.New(cfg.Telemetry.Tracing, Version)
	if err != nil {
		return cli.NewConfigError("telemetry.tracing", err.Error())
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	srv, err := server.NewServer(cfg, server.Dependencies{
		Logger:    logger,
		Metrics:   collector,
		Tracer:    tracer,
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	})
	if err != nil {
		return cli.NewConfigError("kanjize", err.Error())
	}

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd))
	defer stop()

	if serveFlags.watch {
		if err := startWatcher(ctx, srv, logger); err != nil {
			return cli.NewCommandError("serve", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "kanjize %s\n", Version)
	fmt.Fprintf(out, "✓ Listening on %s\n", cfg.Server.ListenAddress)
	if collector.Enabled() {
		scheme := "http"
		if cfg.Server.TLS.Enabled() {
			scheme = "https"
		}
		fmt.Fprintf(out, "✓ Metrics endpoint: %s://%s%s\n", scheme, cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	fmt.Fprintln(out, "✓ Server stopped")
	return nil
}

// applyServeOverrides applies the command-line overrides to cfg. It runs on
// the initial config and again on every reloaded one.
func applyServeOverrides(cfg *config.Config) {
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
}

// startWatcher reloads the configuration file into srv on every change. The
// --listen and --verbose overrides are kept across reloads.
func startWatcher(ctx context.Context, srv *server.Server, logger *logging.Logger) error {
	if _, err := os.Stat(cfgFile); err != nil {
		return fmt.Errorf("cannot watch %s: %w", cfgFile, err)
	}

	watcher, err := config.NewWatcher(cfgFile, config.DefaultDebounceInterval, logger.Slog())
	if err != nil {
		return err
	}

	go func() {
		err := watcher.Watch(ctx, func(next *config.Config) {
			applyServeOverrides(next)
			if err := srv.UpdateConfig(next); err != nil {
				logger.Error("failed to apply reloaded configuration", "error", err)
			}
		})
		if err != nil {
			logger.Error("configuration watcher stopped", "error", err)
		}
	}()
	return nil
}
