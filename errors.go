package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Parity conditions. These are expected, recoverable states on
	// even-sized cubes; they are caught only at the reduction
	// orchestrator and resolved by the matching fix-up algorithm.
	ErrEdgeParity   = errors.New("nxcube: even-cube edge parity detected")
	ErrCornerParity = errors.New("nxcube: even-cube corner-swap parity detected")

	// ErrParityRetry means the orchestrator exhausted its bounded
	// parity-retry budget. This is fatal, never silently ignored.
	ErrParityRetry = errors.New("nxcube: parity retry limit exceeded")

	// ErrInternal wraps invariant violations inside the reduction
	// engines: a state the algorithm's progress argument says cannot
	// happen. It indicates a logic defect, not a recoverable puzzle state.
	ErrInternal = errors.New("nxcube: internal invariant violation")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")

	// Tracking errors
	ErrMarkerNotFound = errors.New("nxcube: tracked marker not found")
)
