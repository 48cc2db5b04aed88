package geodes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepper_InvalidHorizon(t *testing.T) {
	_, err := NewStepper(context.Background(), exampleBlueprints[0], 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHorizon))
}

func TestNewStepper_InvalidBlueprint(t *testing.T) {
	bp := exampleBlueprints[0]
	bp.ID = 0
	_, err := NewStepper(context.Background(), bp, 24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBlueprint))
}

func TestStepper_Phases(t *testing.T) {
	stepper, err := NewStepper(context.Background(), exampleBlueprints[0], 24, WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, PhaseInitializing, stepper.Phase())
	assert.Equal(t, 0, stepper.Minute())
	assert.Equal(t, 1, stepper.Frontier().Len())

	var snaps []StepSnapshot
	for !stepper.Done() {
		snap, err := stepper.Step()
		require.NoError(t, err)
		snaps = append(snaps, snap)
	}

	require.Len(t, snaps, 24)
	for i, snap := range snaps {
		assert.Equal(t, i+1, snap.Minute)
		assert.Positive(t, snap.FrontierSize, "the no-op successor keeps the frontier non-empty")
		switch {
		case i == 23:
			assert.Equal(t, PhaseDone, snap.Phase)
			assert.True(t, snap.Done)
		case i > 12:
			assert.Equal(t, PhasePruning, snap.Phase, "step %d", i)
		default:
			assert.Equal(t, PhaseStepping, snap.Phase, "step %d", i)
			assert.Zero(t, snap.Pruned)
		}
		if i > 0 {
			assert.GreaterOrEqual(t, snap.MaxGeodes, snaps[i-1].MaxGeodes)
		}
	}
	assert.Equal(t, uint32(9), snaps[23].MaxGeodes)

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, 24, again.Minute)
	assert.True(t, again.Done)
}

func TestStepper_FirstMinutes(t *testing.T) {
	stepper, err := NewStepper(context.Background(), exampleBlueprints[0], 24, WithLogger(quietLogger()))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := stepper.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, []State{
		{Ore: 1, OreRobots: 1, ClayRobots: 1},
		{Ore: 3, OreRobots: 1},
	}, stepper.Frontier().States())
}

func TestStepper_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stepper, err := NewStepper(ctx, exampleBlueprints[0], 24, WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = stepper.Step()
	require.NoError(t, err)

	cancel()
	_, err = stepper.Step()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, stepper.Minute())
}

func TestStepper_FrontierLimit(t *testing.T) {
	stepper, err := NewStepper(context.Background(), exampleBlueprints[0], 24,
		WithLogger(quietLogger()), WithFrontierLimit(10))
	require.NoError(t, err)

	_, err = stepper.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFrontierLimit)
	assert.Less(t, stepper.Minute(), 24)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "initializing", PhaseInitializing.String())
	assert.Equal(t, "pruning", PhasePruning.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
