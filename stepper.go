package geodes

import (
	"context"
	"fmt"
	"log/slog"
)

// Phase is the search driver's position in its state machine.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseStepping
	PhasePruning
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseStepping:
		return "stepping"
	case PhasePruning:
		return "pruning"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// StepSnapshot exposes the state of the search after one minute.
// Minute counts elapsed minutes, so the last snapshot of a horizon-24 search has Minute 24.
type StepSnapshot struct {
	Minute       int
	Phase        Phase
	FrontierSize int
	Expanded     int
	Pruned       int
	MaxGeodes    uint32
	Done         bool
}

// Stepper advances the search for one blueprint one minute at a time.
// It owns its frontier and is not safe for concurrent use.
type Stepper struct {
	ctx       context.Context
	blueprint Blueprint
	horizon   int
	pruning   PrunePolicy
	limit     int
	logger    *slog.Logger

	frontier *Frontier
	minute   int
	phase    Phase

	peakFrontier int
	expanded     int
	pruned       int
}

// NewStepper creates a stepper positioned at minute zero with the initial state as its only member.
func NewStepper(
	ctx context.Context,
	blueprint Blueprint,
	horizon int,
	options ...Option,
) (*Stepper, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizon)
	}
	if err := blueprint.Validate(); err != nil {
		return nil, err
	}
	opts := applyOptions(options)
	return &Stepper{
		ctx:          ctx,
		blueprint:    blueprint,
		horizon:      horizon,
		pruning:      opts.Pruning,
		limit:        opts.FrontierLimit,
		logger:       opts.Logger.With(slog.Uint64("blueprint", uint64(blueprint.ID))),
		frontier:     NewFrontier(InitialState()),
		phase:        PhaseInitializing,
		peakFrontier: 1,
	}, nil
}

// Minute returns the number of minutes simulated so far.
func (s *Stepper) Minute() int { return s.minute }

// Phase returns the phase of the last step.
func (s *Stepper) Phase() Phase { return s.phase }

// Frontier returns the current frontier. Callers must not modify it.
func (s *Stepper) Frontier() *Frontier { return s.frontier }

// Done reports whether the full horizon has been simulated.
func (s *Stepper) Done() bool { return s.phase == PhaseDone }

// Step advances the search by one minute and returns a snapshot.
// Calling Step after the horizon is reached returns the final snapshot again.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.phase == PhaseDone {
		return s.snapshot(0), nil
	}
	if err := s.ctx.Err(); err != nil {
		return s.snapshot(0), err
	}

	step := s.minute
	s.phase = PhaseStepping
	s.expanded += s.frontier.Len()
	s.frontier = s.frontier.Expand(s.blueprint)
	s.minute++
	observeFrontier(s.frontier.Len())

	if s.limit > 0 && s.frontier.Len() > s.limit {
		return s.snapshot(0), fmt.Errorf("%w: blueprint %d minute %d holds %d states (limit %d)",
			ErrFrontierLimit, s.blueprint.ID, s.minute, s.frontier.Len(), s.limit)
	}
	if s.frontier.Len() > s.peakFrontier {
		s.peakFrontier = s.frontier.Len()
	}

	pruned := 0
	if step > s.horizon/2 {
		s.phase = PhasePruning
		pruned = s.pruning(step, s.horizon, s.frontier)
		s.pruned += pruned
		addPruned(pruned)
	}

	if s.minute >= s.horizon {
		s.phase = PhaseDone
	}
	snap := s.snapshot(pruned)
	s.logger.Debug("minute simulated",
		slog.Int("minute", snap.Minute),
		slog.String("phase", snap.Phase.String()),
		slog.Int("frontier", snap.FrontierSize),
		slog.Int("pruned", pruned),
		slog.Uint64("max_geodes", uint64(snap.MaxGeodes)),
	)
	return snap, nil
}

// Run steps until the horizon is reached and returns the yield.
func (s *Stepper) Run() (uint32, error) {
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return 0, err
		}
	}
	return s.frontier.MaxGeodes(), nil
}

func (s *Stepper) snapshot(pruned int) StepSnapshot {
	return StepSnapshot{
		Minute:       s.minute,
		Phase:        s.phase,
		FrontierSize: s.frontier.Len(),
		Expanded:     s.expanded,
		Pruned:       pruned,
		MaxGeodes:    s.frontier.MaxGeodes(),
		Done:         s.phase == PhaseDone,
	}
}
