package geodes

import (
	"cmp"
	"slices"
)

// Frontier is the deduplicated set of states reachable at one minute.
// It is owned by a single search and is not safe for concurrent use.
type Frontier struct {
	states map[State]struct{}
}

// NewFrontier returns a frontier holding the given states.
func NewFrontier(states ...State) *Frontier {
	f := &Frontier{states: make(map[State]struct{}, len(states))}
	for _, s := range states {
		f.Insert(s)
	}
	return f
}

// Insert adds s and reports whether it was not already present.
func (f *Frontier) Insert(s State) bool {
	if _, ok := f.states[s]; ok {
		return false
	}
	f.states[s] = struct{}{}
	return true
}

func (f *Frontier) Len() int { return len(f.states) }

func (f *Frontier) Contains(s State) bool {
	_, ok := f.states[s]
	return ok
}

// MaxGeodes returns the largest geode stock among the members, or 0 when empty.
func (f *Frontier) MaxGeodes() uint32 {
	var best uint32
	for s := range f.states {
		if s.Geode > best {
			best = s.Geode
		}
	}
	return best
}

// Retain keeps only the states for which keep returns true and reports how many were dropped.
func (f *Frontier) Retain(keep func(State) bool) int {
	dropped := 0
	for s := range f.states {
		if !keep(s) {
			delete(f.states, s)
			dropped++
		}
	}
	return dropped
}

// Expand applies the transition generator to every member and returns the
// merged frontier for the next minute. f itself is left untouched.
func (f *Frontier) Expand(bp Blueprint) *Frontier {
	next := &Frontier{states: make(map[State]struct{}, len(f.states)*2)}
	buf := make([]State, 0, NumResources+1)
	for s := range f.states {
		buf = AppendSuccessors(buf[:0], s, bp)
		for _, succ := range buf {
			next.states[succ] = struct{}{}
		}
	}
	return next
}

// States returns the members ordered by geodes, then robots, then stock, all descending.
func (f *Frontier) States() []State {
	out := make([]State, 0, len(f.states))
	for s := range f.states {
		out = append(out, s)
	}
	slices.SortFunc(out, compareStates)
	return out
}

func compareStates(a, b State) int {
	return cmp.Or(
		cmp.Compare(b.Geode, a.Geode),
		cmp.Compare(b.GeodeRobots, a.GeodeRobots),
		cmp.Compare(b.ObsidianRobots, a.ObsidianRobots),
		cmp.Compare(b.Obsidian, a.Obsidian),
		cmp.Compare(b.ClayRobots, a.ClayRobots),
		cmp.Compare(b.Clay, a.Clay),
		cmp.Compare(b.OreRobots, a.OreRobots),
		cmp.Compare(b.Ore, a.Ore),
	)
}
