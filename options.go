package geodes

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// YieldCache stores final yields between runs. Implementations must be safe
// for concurrent use since every Evaluate worker shares the same cache.
type YieldCache interface {
	Get(ctx context.Context, key string) (yield uint32, found bool, err error)
	Put(ctx context.Context, key string, yield uint32) error
}

// Options defines parameters for a search or an evaluation batch.
type Options struct {
	Pruning        PrunePolicy
	PruningKey     string
	FrontierLimit  int
	Logger         *slog.Logger
	Cache          YieldCache
	Horizon        int
	BlueprintLimit int
	TracerProvider trace.TracerProvider
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithPruning replaces the default MidpointGeodePolicy. An anonymous policy
// has no cache key, so Evaluate neither reads nor fills the yield cache with it.
func WithPruning(policy PrunePolicy) Option {
	return func(options *Options) {
		options.Pruning = policy
		options.PruningKey = ""
	}
}

// WithNamedPruning replaces the default policy and names it. The name becomes
// part of the yield cache key and must change whenever the policy's
// behaviour does, e.g. "beam:20000".
func WithNamedPruning(name string, policy PrunePolicy) Option {
	return func(options *Options) {
		options.Pruning = policy
		options.PruningKey = name
	}
}

// WithFrontierLimit aborts a search with ErrFrontierLimit once a frontier
// holds more than limit states. Zero means no limit.
func WithFrontierLimit(limit int) Option {
	return func(options *Options) { options.FrontierLimit = limit }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithCache lets Evaluate reuse yields computed by earlier runs.
func WithCache(cache YieldCache) Option {
	return func(options *Options) { options.Cache = cache }
}

// WithHorizon overrides the evaluation mode's default horizon.
func WithHorizon(horizon int) Option {
	return func(options *Options) { options.Horizon = horizon }
}

// WithBlueprintLimit overrides how many leading blueprints Product mode scores.
func WithBlueprintLimit(limit int) Option {
	return func(options *Options) { options.BlueprintLimit = limit }
}

// WithTracerProvider sets where search and evaluation spans are sent.
// The global otel provider is used otherwise.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(options *Options) { options.TracerProvider = provider }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Pruning: MidpointGeodePolicy, PruningKey: MidpointPolicyName}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Pruning == nil {
		searchOptions.Pruning = NoPruning
		searchOptions.PruningKey = NoPruningName
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default().With(slog.String("component", "geodes"))
	}
	if searchOptions.TracerProvider == nil {
		searchOptions.TracerProvider = otel.GetTracerProvider()
	}
	return searchOptions
}

func (o Options) tracer() trace.Tracer {
	return o.TracerProvider.Tracer(instrumentationName)
}
