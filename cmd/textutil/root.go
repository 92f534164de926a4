package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/textutil/pkg/cli"
	"mercator-hq/textutil/pkg/config"
)

var (
	// Global flags
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textutil",
	Short: "textutil - structured answers from an LLM with cost accounting",
	Long: `textutil sends questions to an OpenAI-compatible chat-completions API,
turns the reply into a structured answer (answer, confidence, actions) and
reports token usage, latency and estimated cost for every query.

Configuration comes from an optional YAML or TOML file, then environment
variables (OPENAI_API_KEY, OPENAI_API_BASE, OPENAI_MODEL, ...).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationConfig] != "required" {
			return nil
		}
		return loadConfig()
	},
}

// annotationConfig marks commands that run against the loaded
// configuration. The root pre-run loads it and installs it with
// config.SetConfig before RunE reads it back.
const annotationConfig = "config"

// configRequired is the annotation set for such commands.
var configRequired = map[string]string{annotationConfig: "required"}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitOK
	}

	var cle *configLoadError
	if errors.As(err, &cle) {
		for _, ce := range cli.ConfigErrors(cle.err) {
			cli.Failure(os.Stderr, "%s", ce)
		}
		return cli.ExitConfig
	}

	cli.Failure(os.Stderr, "%v", err)
	return cli.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML, or TOML when it ends in .toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// configLoadError marks a failure to load or validate configuration.
type configLoadError struct {
	err error
}

func (e *configLoadError) Error() string { return e.err.Error() }
func (e *configLoadError) Unwrap() error { return e.err }

// loadConfig reads the env file, then the config file with environment
// overrides, and installs the result as the global configuration.
func loadConfig() error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return &configLoadError{err: err}
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return &configLoadError{err: err}
	}

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	config.SetConfig(cfg)
	return nil
}
