package geodes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlueprint(t *testing.T) {
	bp := NewBlueprint(1, 4, 2, 3, 14, 2, 7)

	assert.Equal(t, uint32(1), bp.ID)
	assert.Equal(t, Recipe{Robot: Ore, Cost: Cost{Ore: 4}}, bp.Recipes[Ore])
	assert.Equal(t, Recipe{Robot: Clay, Cost: Cost{Ore: 2}}, bp.Recipes[Clay])
	assert.Equal(t, Recipe{Robot: Obsidian, Cost: Cost{Ore: 3, Clay: 14}}, bp.Recipes[Obsidian])
	assert.Equal(t, Recipe{Robot: Geode, Cost: Cost{Ore: 2, Obsidian: 7}}, bp.Recipes[Geode])
	require.NoError(t, bp.Validate())
}

func TestBlueprint_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Blueprint)
	}{
		{name: "zero id", modify: func(b *Blueprint) { b.ID = 0 }},
		{name: "recipes out of order", modify: func(b *Blueprint) {
			b.Recipes[Ore], b.Recipes[Clay] = b.Recipes[Clay], b.Recipes[Ore]
		}},
		{name: "wrong robot kind", modify: func(b *Blueprint) { b.Recipes[Geode].Robot = Obsidian }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := NewBlueprint(1, 4, 2, 3, 14, 2, 7)
			tt.modify(&bp)
			err := bp.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBlueprint))
		})
	}
}

func TestBlueprint_CopyIsIndependent(t *testing.T) {
	original := NewBlueprint(1, 4, 2, 3, 14, 2, 7)
	clone := original
	clone.Recipes[Geode].Cost[Obsidian] = 99

	assert.Equal(t, uint32(7), original.Recipes[Geode].Cost[Obsidian])
}

func TestBlueprint_Fingerprint(t *testing.T) {
	a := NewBlueprint(1, 4, 2, 3, 14, 2, 7)
	b := NewBlueprint(2, 2, 3, 3, 8, 3, 12)

	assert.Equal(t, "bp/1/4,0,0,0/2,0,0,0/3,14,0,0/2,0,7,0/h24", a.Fingerprint(24))
	assert.Equal(t, a.Fingerprint(24), a.Fingerprint(24))
	assert.NotEqual(t, a.Fingerprint(24), a.Fingerprint(32))
	assert.NotEqual(t, a.Fingerprint(24), b.Fingerprint(24))
}

func TestBlueprint_CacheKey(t *testing.T) {
	bp := NewBlueprint(1, 4, 2, 3, 14, 2, 7)

	assert.Equal(t, "bp/1/4,0,0,0/2,0,0,0/3,14,0,0/2,0,7,0/h24/p=midpoint", bp.CacheKey(24, MidpointPolicyName))
	assert.NotEqual(t, bp.CacheKey(24, MidpointPolicyName), bp.CacheKey(24, NoPruningName))
	assert.NotEqual(t, bp.CacheKey(24, BeamPolicyName(1)), bp.CacheKey(24, BeamPolicyName(2)))
}
