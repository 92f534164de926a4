package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mercator-hq/textutil/pkg/api/handlers"
	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/llm"
	"mercator-hq/textutil/pkg/processing/costs"
	"mercator-hq/textutil/pkg/prompt"
	"mercator-hq/textutil/pkg/telemetry/health"
	"mercator-hq/textutil/pkg/telemetry/metrics"
	"mercator-hq/textutil/pkg/telemetry/tracing"
)

// app holds the components shared by serve and ask.
type app struct {
	cfg       *config.Config
	tracer    *tracing.Tracer
	prompts   *prompt.Store
	client    *llm.Client
	costs     *costs.Calculator
	collector *metrics.Collector
	checker   *health.Checker
	query     *handlers.QueryHandler
}

// newApp builds the query pipeline from cfg. Close releases it.
func newApp(cfg *config.Config) (*app, error) {
	tracer, err := tracing.New(cfg.Telemetry.Tracing, Version)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	prompts, err := prompt.NewStore(cfg.LLM.SystemPromptFile, slog.Default().With("component", "prompt"))
	if err != nil {
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}

	client, err := llm.NewFromConfig(cfg.LLM, prompts)
	if err != nil {
		_ = tracer.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
	if err := collector.ObservePromptLoads(prompts.Loads); err != nil {
		slog.Warn("prompt load metric not registered", "error", err)
	}

	calculator := costs.NewCalculatorFromConfig(cfg.LLM)

	checker := health.New(0)
	checker.RegisterCheck(health.CheckCredential, health.CredentialCheck(cfg.LLM.APIKey))
	checker.RegisterCheck(health.CheckPrompt, health.PromptCheck(prompts.Loaded))

	return &app{
		cfg:       cfg,
		tracer:    tracer,
		prompts:   prompts,
		client:    client,
		costs:     calculator,
		collector: collector,
		checker:   checker,
		query:     handlers.NewQueryHandler(client, calculator, collector),
	}, nil
}

// watchPrompt follows the prompt file in the background when configured.
func (a *app) watchPrompt(ctx context.Context) {
	if !a.cfg.LLM.WatchPrompt || a.cfg.LLM.SystemPromptFile == "" {
		return
	}

	go func() {
		if err := a.prompts.Watch(ctx); err != nil {
			slog.Error("prompt watcher exited", "error", err)
		}
	}()
}

// Close releases the client, the prompt watcher and the tracer.
func (a *app) Close(ctx context.Context) error {
	return errors.Join(
		a.client.Close(),
		a.prompts.Close(),
		a.tracer.Shutdown(ctx),
	)
}
