package geodes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Resource identifies one of the four materials, and the robot kind that mines it.
type Resource int

const (
	Ore Resource = iota
	Clay
	Obsidian
	Geode
)

// NumResources is the number of resource kinds.
const NumResources = 4

var resourceNames = [NumResources]string{"ore", "clay", "obsidian", "geode"}

func (r Resource) String() string {
	if r < 0 || int(r) >= NumResources {
		return "Resource(" + strconv.Itoa(int(r)) + ")"
	}
	return resourceNames[r]
}

// Cost is the amount of each resource a recipe consumes, indexed by Resource.
type Cost [NumResources]uint32

// Recipe describes how to build one robot of kind Robot.
type Recipe struct {
	Robot Resource
	Cost  Cost
}

// Blueprint is one complete cost schedule. Recipes are stored in Resource order
// so Recipes[Geode] is always the geode robot recipe.
//
// A Blueprint holds only arrays, so assigning it copies it entirely.
type Blueprint struct {
	ID      uint32 `validate:"required"`
	Recipes [NumResources]Recipe
}

var blueprintValidate = validator.New()

// NewBlueprint builds the canonical four-recipe schedule.
func NewBlueprint(id, oreRobotOre, clayRobotOre, obsidianRobotOre, obsidianRobotClay, geodeRobotOre, geodeRobotObsidian uint32) Blueprint {
	return Blueprint{
		ID: id,
		Recipes: [NumResources]Recipe{
			{Robot: Ore, Cost: Cost{Ore: oreRobotOre}},
			{Robot: Clay, Cost: Cost{Ore: clayRobotOre}},
			{Robot: Obsidian, Cost: Cost{Ore: obsidianRobotOre, Clay: obsidianRobotClay}},
			{Robot: Geode, Cost: Cost{Ore: geodeRobotOre, Obsidian: geodeRobotObsidian}},
		},
	}
}

// Validate checks the structural invariants the engine relies on.
// Costs are unsigned, so they are non-negative by construction.
func (b Blueprint) Validate() error {
	if err := blueprintValidate.Struct(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlueprint, err)
	}
	for slot, recipe := range b.Recipes {
		if recipe.Robot != Resource(slot) {
			return fmt.Errorf("%w: blueprint %d: recipe %d builds %s robots, want %s",
				ErrInvalidBlueprint, b.ID, slot, recipe.Robot, Resource(slot))
		}
	}
	return nil
}

// Fingerprint returns a stable key over the id, every cost cell and the horizon.
func (b Blueprint) Fingerprint(horizon int) string {
	var sb strings.Builder
	sb.WriteString("bp/")
	sb.WriteString(strconv.FormatUint(uint64(b.ID), 10))
	for _, recipe := range b.Recipes {
		sb.WriteByte('/')
		for i, c := range recipe.Cost {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatUint(uint64(c), 10))
		}
	}
	sb.WriteString("/h")
	sb.WriteString(strconv.Itoa(horizon))
	return sb.String()
}

// CacheKey extends Fingerprint with the name of the pruning policy, since
// different policies can settle on different yields.
func (b Blueprint) CacheKey(horizon int, policy string) string {
	return b.Fingerprint(horizon) + "/p=" + policy
}
