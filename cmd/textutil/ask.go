package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/textutil/pkg/api/types"
	"mercator-hq/textutil/pkg/cli"
	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/telemetry/logging"
)

var askFlags struct {
	maxTokens int
	json      bool
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question",
	Long: `Send one question through the same pipeline as POST /query and print
the structured answer with usage, latency and estimated cost.

Examples:
  textutil ask "How do I reset my password?"
  textutil ask "Summarize our refund policy" --max-tokens 128
  textutil ask "List three next steps" --json`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: configRequired,
	RunE:        runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().IntVar(&askFlags.maxTokens, "max-tokens", 0, "completion token limit (default from config)")
	askCmd.Flags().BoolVar(&askFlags.json, "json", false, "print the response as JSON")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := config.MustGetConfig()

	// Keep stdout for the answer.
	logCfg := logging.FromConfig(cfg.Telemetry.Logging)
	logCfg.Writer = cmd.ErrOrStderr()
	if !verbose {
		logCfg.Level = "warn"
	}
	if _, err := logging.Setup(logCfg); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	a, err := newApp(cfg)
	if err != nil {
		return cli.NewCommandError("ask", err)
	}
	defer func() { _ = a.Close(context.Background()) }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	question := strings.Join(args, " ")
	req := &types.QueryRequest{Question: &question}
	if askFlags.maxTokens > 0 {
		req.MaxTokens = &askFlags.maxTokens
	}

	resp, err := a.query.Query(ctx, req)
	if err != nil {
		return cli.NewCommandError("ask", err)
	}

	out := cmd.OutOrStdout()
	if askFlags.json {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(out, resp)
	}
	printAnswer(out, resp)
	return nil
}

func printAnswer(w io.Writer, resp *types.QueryResponse) {
	fmt.Fprintln(w, cli.Title("Answer"))
	fmt.Fprintf(w, "  %s\n\n", resp.Response.Answer)

	cli.KeyValue(w, "confidence", fmt.Sprintf("%.2f", resp.Response.Confidence))
	if len(resp.Response.Actions) > 0 {
		fmt.Fprintln(w, "  actions:")
		for i, action := range resp.Response.Actions {
			fmt.Fprintf(w, "    %d. %s\n", i+1, action)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Title("Metrics"))
	m := resp.Metrics
	cli.KeyValue(w, "model", m.Model)
	cli.KeyValue(w, "latency_ms", m.LatencyMS)
	cli.KeyValue(w, "tokens", fmt.Sprintf("%d prompt + %d completion = %d", m.PromptTokens, m.CompletionTokens, m.TotalTokens))
	cli.KeyValue(w, "estimated_cost_usd", fmt.Sprintf("%.8f", m.EstimatedCostUSD))
}
