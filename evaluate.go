package geodes

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Mode selects how per-blueprint yields are combined into a batch score.
type Mode int

const (
	// WeightedSum scores every blueprint at horizon 24 and sums id*yield.
	WeightedSum Mode = iota
	// Product scores the first three blueprints at horizon 32 and multiplies the yields.
	Product
)

func (m Mode) String() string {
	switch m {
	case WeightedSum:
		return "weighted-sum"
	case Product:
		return "product"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// DefaultHorizon returns the horizon the mode uses unless overridden.
func (m Mode) DefaultHorizon() int {
	if m == Product {
		return 32
	}
	return 24
}

// DefaultBlueprintLimit returns how many leading blueprints the mode scores; 0 means all.
func (m Mode) DefaultBlueprintLimit() int {
	if m == Product {
		return 3
	}
	return 0
}

// BatchResult is the combined outcome of Evaluate.
// Results follow the order of the blueprints that were scored.
type BatchResult struct {
	Mode    Mode
	Horizon int
	Score   uint64
	Results []Result
}

// Evaluate runs one search per blueprint concurrently and combines the yields.
//
// Each worker gets its own copy of its blueprint and its own frontier; nothing is
// shared between workers except the optional cache. The first failing worker
// fails the whole batch and no score is returned.
func Evaluate(
	ctx context.Context,
	blueprints []Blueprint,
	mode Mode,
	options ...Option,
) (BatchResult, error) {
	opts := applyOptions(options)

	horizon := mode.DefaultHorizon()
	if opts.Horizon != 0 {
		horizon = opts.Horizon
	}
	if horizon < 1 {
		return BatchResult{}, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizon)
	}
	limit := mode.DefaultBlueprintLimit()
	if opts.BlueprintLimit != 0 {
		limit = opts.BlueprintLimit
	}
	if limit > 0 && len(blueprints) > limit {
		blueprints = blueprints[:limit]
	}

	ctx, span := opts.tracer().Start(ctx, "geodes.evaluate",
		trace.WithAttributes(
			attribute.String("mode", mode.String()),
			attribute.Int("horizon", horizon),
			attribute.Int("blueprints", len(blueprints)),
		),
	)
	defer span.End()

	results := make([]Result, len(blueprints))
	g, gCtx := errgroup.WithContext(ctx)
	for i, blueprint := range blueprints {
		task := evaluateTask{Index: i, Blueprint: blueprint, Horizon: horizon}
		g.Go(func() error {
			result, err := runWorker(gCtx, task, opts, options)
			if err != nil {
				return err
			}
			results[task.Index] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return BatchResult{Mode: mode, Horizon: horizon}, err
	}

	batch := BatchResult{
		Mode:    mode,
		Horizon: horizon,
		Score:   Combine(mode, results),
		Results: results,
	}
	span.SetAttributes(attribute.Int64("score", int64(batch.Score)))
	opts.Logger.Info("evaluation complete",
		slog.String("mode", mode.String()),
		slog.Int("horizon", horizon),
		slog.Int("blueprints", len(results)),
		slog.Uint64("score", batch.Score),
	)
	return batch, nil
}

// Combine folds per-blueprint results into a score. Both folds are commutative,
// so the order of results does not matter.
func Combine(mode Mode, results []Result) uint64 {
	switch mode {
	case Product:
		score := uint64(1)
		for _, r := range results {
			score *= uint64(r.Yield)
		}
		return score
	default:
		var score uint64
		for _, r := range results {
			score += uint64(r.BlueprintID) * uint64(r.Yield)
		}
		return score
	}
}
