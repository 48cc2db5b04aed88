package geodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontier_InsertDeduplicates(t *testing.T) {
	f := NewFrontier()
	s := State{Ore: 3, OreRobots: 1}

	assert.True(t, f.Insert(s))
	assert.False(t, f.Insert(s))
	assert.False(t, f.Insert(State{Ore: 3, OreRobots: 1}))
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Contains(s))

	single := NewFrontier(s)
	double := NewFrontier(s, s)
	assert.Equal(t, single.Len(), double.Len())
}

func TestFrontier_MaxGeodes(t *testing.T) {
	assert.Zero(t, NewFrontier().MaxGeodes())

	f := NewFrontier(State{Geode: 2}, State{Geode: 7}, State{Geode: 5})
	assert.Equal(t, uint32(7), f.MaxGeodes())
}

func TestFrontier_Retain(t *testing.T) {
	f := NewFrontier(State{Geode: 1}, State{Geode: 2}, State{Geode: 3}, State{Geode: 4})

	dropped := f.Retain(func(s State) bool { return s.Geode%2 == 0 })

	assert.Equal(t, 2, dropped)
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Contains(State{Geode: 2}))
	assert.False(t, f.Contains(State{Geode: 3}))
}

func TestFrontier_ExpandMergesConvergentStates(t *testing.T) {
	bp := exampleBlueprints[0]
	// Both states can afford nothing and converge after one minute of production.
	f := NewFrontier(State{Ore: 0, OreRobots: 1}, State{Ore: 1, OreRobots: 1})

	next := f.Expand(bp)

	assert.Equal(t, 2, f.Len(), "Expand leaves the source frontier untouched")
	assert.Equal(t, 2, next.Len())
	assert.True(t, next.Contains(State{Ore: 1, OreRobots: 1}))
	assert.True(t, next.Contains(State{Ore: 2, OreRobots: 1}))

	// The first clay robot becomes affordable at the start of minute three.
	f = NewFrontier(InitialState())
	for i := 0; i < 3; i++ {
		f = f.Expand(bp)
	}
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Contains(State{Ore: 3, OreRobots: 1}))
	assert.True(t, f.Contains(State{Ore: 1, OreRobots: 1, ClayRobots: 1}))
}

func TestFrontier_StatesOrdering(t *testing.T) {
	f := NewFrontier(
		State{Geode: 1, Ore: 9},
		State{Geode: 3},
		State{Geode: 1, GeodeRobots: 2},
	)

	got := f.States()

	assert.Equal(t, []State{
		{Geode: 3},
		{Geode: 1, GeodeRobots: 2},
		{Geode: 1, Ore: 9},
	}, got)
}
