package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/pdrpinto/geodes"
	"github.com/pdrpinto/geodes/internal/config"
	"github.com/pdrpinto/geodes/internal/logging"
)

// app carries what the persistent pre-run resolves for every subcommand.
type app struct {
	configPath string
	logLevel   string
	jsonLogs   bool
	tracing    bool

	cfg            config.Config
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	shutdown       func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geodes",
		Short: "Find the best geode yield for robot factory blueprints",
		Long: `Simulates a robot factory minute by minute for each blueprint and reports
the largest number of geodes it can crack.

Blueprints are read one per line:
  Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false,
		"Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.tracing, "trace", false,
		"Print OpenTelemetry spans to stderr")

	rootCmd.AddCommand(newSolveCmd(a), newStepsCmd(a))
	return rootCmd
}

// execute runs cmd and then flushes the tracer provider. cobra skips post-run
// hooks when a command fails, so the shutdown happens here instead.
func (a *app) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if shutdownErr := a.shutdownTracing(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

func (a *app) shutdownTracing() error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Observability.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Observability.LogJSON = a.jsonLogs
	}
	if cmd.Flags().Changed("trace") {
		cfg.Observability.Tracing = a.tracing
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Observability.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		Service: "geodes",
		JSON:    cfg.Observability.LogJSON,
		Output:  cmd.ErrOrStderr(),
	})

	a.tracerProvider = noop.NewTracerProvider()
	if cfg.Observability.Tracing {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		a.tracerProvider = tp
		a.shutdown = tp.Shutdown
	}
	return nil
}

// searchOptions translates the loaded config into engine options.
func (a *app) searchOptions() ([]geodes.Option, error) {
	options := []geodes.Option{
		geodes.WithLogger(a.logger),
		geodes.WithTracerProvider(a.tracerProvider),
		geodes.WithFrontierLimit(a.cfg.Solve.FrontierLimit),
	}
	switch a.cfg.Solve.Pruning {
	case "midpoint":
		options = append(options, geodes.WithNamedPruning(geodes.MidpointPolicyName, geodes.MidpointGeodePolicy))
	case "none":
		options = append(options, geodes.WithNamedPruning(geodes.NoPruningName, geodes.NoPruning))
	case "beam":
		options = append(options, geodes.WithNamedPruning(
			geodes.BeamPolicyName(a.cfg.Solve.BeamWidth), geodes.BeamPolicy(a.cfg.Solve.BeamWidth)))
	default:
		return nil, fmt.Errorf("unknown pruning policy %q", a.cfg.Solve.Pruning)
	}
	return options, nil
}
