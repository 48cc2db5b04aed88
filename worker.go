package geodes

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// evaluateTask is what a batch worker receives: its own copy of one blueprint.
type evaluateTask struct {
	Index     int
	Blueprint Blueprint
	Horizon   int
}

// runWorker searches one blueprint, consulting the cache first when one is
// configured and the pruning policy is named.
// A panic inside the search is turned into ErrWorkerPanic.
func runWorker(ctx context.Context, task evaluateTask, opts Options, options []Option) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts.Logger.Error("worker panicked",
				slog.Uint64("blueprint", uint64(task.Blueprint.ID)),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: blueprint %d: %v", ErrWorkerPanic, task.Blueprint.ID, r)
		}
	}()

	cache := opts.Cache
	if opts.PruningKey == "" {
		cache = nil
	}
	key := task.Blueprint.CacheKey(task.Horizon, opts.PruningKey)
	if cache != nil {
		yield, found, cacheErr := cache.Get(ctx, key)
		if cacheErr != nil {
			opts.Logger.Warn("yield cache lookup failed", slog.String("key", key), slog.Any("error", cacheErr))
		} else if found {
			return Result{
				BlueprintID: task.Blueprint.ID,
				Horizon:     task.Horizon,
				Yield:       yield,
				Cached:      true,
			}, nil
		}
	}

	result, err = Search(ctx, task.Blueprint, task.Horizon, options...)
	if err != nil {
		return result, err
	}

	if cache != nil {
		if cacheErr := cache.Put(ctx, key, result.Yield); cacheErr != nil {
			opts.Logger.Warn("yield cache store failed", slog.String("key", key), slog.Any("error", cacheErr))
		}
	}
	return result, nil
}
