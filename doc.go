// Package geodes finds the largest number of geodes a robot factory can crack
// within a fixed number of minutes, given a blueprint of robot costs.
//
// It exposes three entry points:
//
//   - Search: run the search for one blueprint to completion and get a Result.
//   - Stepper: advance the search one minute at a time to drive tracing or debugging tools.
//   - Evaluate: search many blueprints concurrently, one goroutine each, and combine the yields.
//
// A search keeps a deduplicated frontier of every state reachable at the current
// minute. Past the middle of the horizon a PrunePolicy trims that frontier; the
// default MidpointGeodePolicy is a heuristic and does not guarantee the optimum.
package geodes
