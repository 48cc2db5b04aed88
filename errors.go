package geodes

import "errors"

var (
	// ErrInvalidHorizon is returned when a search is asked to run for fewer than one minute.
	ErrInvalidHorizon = errors.New("horizon must be at least one minute")

	// ErrInvalidBlueprint is returned for blueprints whose recipes are not in canonical order.
	ErrInvalidBlueprint = errors.New("invalid blueprint")

	// ErrFrontierLimit is returned when the frontier outgrows the configured cap.
	ErrFrontierLimit = errors.New("frontier limit exceeded")

	// ErrWorkerPanic is returned by Evaluate when one of its workers panicked.
	ErrWorkerPanic = errors.New("evaluation worker panicked")
)
