package geodes

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result contains the outcome of a search.
type Result struct {
	BlueprintID    uint32
	Horizon        int
	Yield          uint32
	PeakFrontier   int
	StatesExpanded int
	Pruned         int
	Duration       time.Duration
	Cached         bool
}

// Search runs the minute-by-minute search for one blueprint to completion and
// returns the largest geode stock found in the final frontier.
func Search(
	ctx context.Context,
	blueprint Blueprint,
	horizon int,
	options ...Option,
) (Result, error) {
	opts := applyOptions(options)

	ctx, span := opts.tracer().Start(ctx, "geodes.search",
		trace.WithAttributes(
			attribute.Int64("blueprint", int64(blueprint.ID)),
			attribute.Int("horizon", horizon),
		),
	)
	defer span.End()

	start := time.Now()
	result := Result{BlueprintID: blueprint.ID, Horizon: horizon}

	stepper, err := NewStepper(ctx, blueprint, horizon, options...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	yield, err := stepper.Run()
	result.Duration = time.Since(start)
	result.PeakFrontier = stepper.peakFrontier
	result.StatesExpanded = stepper.expanded
	result.Pruned = stepper.pruned
	recordSearchMetrics(ctx, horizon, result.Duration, yield, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}
	result.Yield = yield

	span.SetAttributes(
		attribute.Int64("yield", int64(yield)),
		attribute.Int("peak_frontier", result.PeakFrontier),
		attribute.Int("pruned", result.Pruned),
		attribute.Int64("duration_ms", result.Duration.Milliseconds()),
	)
	opts.Logger.Info("search complete",
		slog.Uint64("blueprint", uint64(blueprint.ID)),
		slog.Int("horizon", horizon),
		slog.Uint64("yield", uint64(yield)),
		slog.Int("peak_frontier", result.PeakFrontier),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}
