package geodes

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// exampleBlueprints are the two blueprints from the puzzle description.
var exampleBlueprints = []Blueprint{
	NewBlueprint(1, 4, 2, 3, 14, 2, 7),
	NewBlueprint(2, 2, 3, 3, 8, 3, 12),
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustSearch(t *testing.T, bp Blueprint, horizon int, options ...Option) Result {
	t.Helper()
	options = append([]Option{WithLogger(quietLogger())}, options...)
	result, err := Search(context.Background(), bp, horizon, options...)
	require.NoError(t, err)
	return result
}
