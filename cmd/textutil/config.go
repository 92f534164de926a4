package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/textutil/pkg/cli"
	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/telemetry/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and print the effective settings",
	Long: `Load the config file (if any), apply defaults and environment overrides,
validate the result and print the effective settings. The API key is shown
redacted.

Exit status is 2 when the configuration is invalid.

Examples:
  textutil config validate
  textutil config validate --config textutil.toml`,
	Args:        cobra.NoArgs,
	Annotations: configRequired,
	RunE:        runConfigValidate,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg := config.MustGetConfig()

	out := cmd.OutOrStdout()
	source := cfgFile
	if source == "" {
		source = "(defaults and environment)"
	}
	cli.Success(out, "Configuration valid: %s", source)

	fmt.Fprintln(out, cli.Title("server"))
	cli.KeyValue(out, "listen_address", cfg.Server.ListenAddress)
	cli.KeyValue(out, "write_timeout", cfg.Server.WriteTimeout)

	fmt.Fprintln(out, cli.Title("llm"))
	cli.KeyValue(out, "api_base", cfg.LLM.APIBase)
	cli.KeyValue(out, "api_key", logging.RedactAPIKey(cfg.LLM.APIKey))
	cli.KeyValue(out, "model", cfg.LLM.Model)
	cli.KeyValue(out, "cost_prompt_per_1k", cfg.LLM.CostPromptPer1K)
	cli.KeyValue(out, "cost_completion_per_1k", cfg.LLM.CostCompletionPer1K)
	cli.KeyValue(out, "default_max_tokens", cfg.LLM.DefaultMaxTokens)
	cli.KeyValue(out, "timeout", cfg.LLM.Timeout)

	fmt.Fprintln(out, cli.Title("telemetry"))
	cli.KeyValue(out, "log_level", cfg.Telemetry.Logging.Level)
	cli.KeyValue(out, "metrics_enabled", cfg.Telemetry.Metrics.IsEnabled())
	cli.KeyValue(out, "tracing_enabled", cfg.Telemetry.Tracing.Enabled)

	if cfg.LLM.APIKey == "" {
		cli.Warning(out, "no API key configured")
	}
	return nil
}
