package geodes

import (
	"container/heap"
	"strconv"
)

// PrunePolicy discards frontier members that are unlikely to lead to the best
// yield. minute is the zero-based index of the step that produced f.
// It returns how many states were discarded.
type PrunePolicy func(minute, horizon int, f *Frontier) int

// MidpointGeodePolicy is the default policy. Once past the middle of the horizon
// it drops every state whose geode stock is below minute*maxGeodes/(horizon+1).
//
// This is a heuristic cut: it is not guaranteed to keep the optimal state.
func MidpointGeodePolicy(minute, horizon int, f *Frontier) int {
	if minute <= horizon/2 {
		return 0
	}
	threshold := uint64(minute) * uint64(f.MaxGeodes()) / uint64(horizon+1)
	return f.Retain(func(s State) bool {
		return uint64(s.Geode) >= threshold
	})
}

// Cache key names of the built-in policies.
const (
	MidpointPolicyName = "midpoint"
	NoPruningName      = "none"
)

// BeamPolicyName names BeamPolicy(width) for WithNamedPruning.
func BeamPolicyName(width int) string {
	return "beam:" + strconv.Itoa(width)
}

// NoPruning keeps every state.
func NoPruning(int, int, *Frontier) int { return 0 }

// BeamPolicy returns a policy that, once past the middle of the horizon, keeps
// only the width best states ranked the way Frontier.States orders them.
func BeamPolicy(width int) PrunePolicy {
	return func(minute, horizon int, f *Frontier) int {
		if minute <= horizon/2 || width <= 0 || f.Len() <= width {
			return 0
		}
		queue := make(stateQueue, 0, width+1)
		for s := range f.states {
			heap.Push(&queue, s)
			if queue.Len() > width {
				heap.Pop(&queue)
			}
		}
		kept := make(map[State]struct{}, len(queue))
		for _, s := range queue {
			kept[s] = struct{}{}
		}
		return f.Retain(func(s State) bool {
			_, ok := kept[s]
			return ok
		})
	}
}
