package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/textutil/pkg/cli"
	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/server"
	"mercator-hq/textutil/pkg/telemetry/logging"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the query HTTP service",
	Long: `Start the HTTP service.

Routes:
  POST /query     answer a question
  GET  /health    liveness
  GET  /ready     readiness (API key configured, system prompt loaded)
  GET  /version   build information
  GET  /metrics   Prometheus metrics (when enabled)

Examples:
  # Start with defaults and environment
  textutil serve

  # Start with a config file
  textutil serve --config /etc/textutil/config.yaml

  # Override listen address
  textutil serve --listen 0.0.0.0:8000

  # Validate config without starting the server
  textutil serve --dry-run`,
	Annotations: configRequired,
	RunE:        runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.MustGetConfig()

	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return &configLoadError{err: err}
	}

	if _, err := logging.Setup(logging.FromConfig(cfg.Telemetry.Logging)); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	out := cmd.OutOrStdout()
	if serveFlags.dryRun {
		cli.Success(out, "Configuration valid")
		return nil
	}

	a, err := newApp(cfg)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := cli.SetupSignalHandler(parent)
	defer stop()

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			cli.Warning(os.Stderr, "shutdown: %v", err)
		}
	}()

	a.watchPrompt(ctx)
	printBanner(out, cfg, a)

	srv := server.NewServer(&cfg.Server, server.Options{
		Query:       a.query,
		Health:      a.checker,
		Metrics:     a.collector,
		MetricsPath: cfg.Telemetry.Metrics.Path,
		Build: server.BuildInfo{
			Version:   Version,
			Commit:    GitCommit,
			BuildTime: BuildDate,
		},
	})

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}

func printBanner(w io.Writer, cfg *config.Config, a *app) {
	fmt.Fprintln(w, cli.Title("textutil "+Version))
	cli.KeyValue(w, "listen", cfg.Server.ListenAddress)
	cli.KeyValue(w, "api base", cfg.LLM.APIBase)
	cli.KeyValue(w, "model", cfg.LLM.Model)
	pricing := a.costs.Pricing()
	cli.KeyValue(w, "pricing", fmt.Sprintf("$%g prompt / $%g completion per 1K tokens", pricing.PromptPer1K, pricing.CompletionPer1K))
	cli.KeyValue(w, "api key", logging.RedactAPIKey(cfg.LLM.APIKey))
	if cfg.LLM.SystemPromptFile != "" {
		cli.KeyValue(w, "system prompt", cfg.LLM.SystemPromptFile)
	}
	if a.collector.Enabled() {
		cli.KeyValue(w, "metrics", cfg.Telemetry.Metrics.Path)
	}
	if a.tracer.Enabled() {
		cli.KeyValue(w, "tracing", cfg.Telemetry.Tracing.Endpoint)
	}

	if cfg.LLM.APIKey == "" {
		cli.Warning(w, "no API key configured (set %s); /ready will report degraded", config.EnvAPIKey)
	}
}
