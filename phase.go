package nxcube

// ReductionPhase represents how far a cube has progressed toward the
// solved state. Phases are ordered from Scrambled (0) to Solved, allowing
// comparison with < and > operators.
type ReductionPhase int

const (
	// PhaseScrambled indicates no reduction milestone is complete.
	PhaseScrambled ReductionPhase = iota

	// PhaseCentersSolved indicates every face's interior shows a single
	// color.
	PhaseCentersSolved

	// PhaseEdgesPaired indicates centers are solved and every edge's
	// wings agree, i.e. the cube is reduced to a 3x3.
	PhaseEdgesPaired

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p ReductionPhase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCentersSolved:
		return "centers_solved"
	case PhaseEdgesPaired:
		return "edges_paired"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p ReductionPhase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCentersSolved:
		return "Centers Solved"
	case PhaseEdgesPaired:
		return "Edges Paired (3x3 reduced)"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p ReductionPhase) IsComplete() bool {
	return p == PhaseSolved
}

// DetectPhase classifies the cube's current state.
func DetectPhase(c *Cube) ReductionPhase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if !c.CentersUniform() {
		return PhaseScrambled
	}
	if !c.EdgesConsistent() {
		return PhaseCentersSolved
	}
	return PhaseEdgesPaired
}

// ProgressTracker watches a cube and records the highest reduction phase
// reached. The highest phase is monotonic: intermediate moves may tear a
// milestone back down, but once a phase has been reached it stays
// recorded.
type ProgressTracker struct {
	cube         *Cube
	highestPhase ReductionPhase
	callback     func(ReductionPhase)
}

// NewProgressTracker creates a tracker for the given cube.
func NewProgressTracker(c *Cube) *ProgressTracker {
	return &ProgressTracker{cube: c, highestPhase: DetectPhase(c)}
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *ProgressTracker) SetPhaseCallback(cb func(ReductionPhase)) {
	t.callback = cb
}

// Check re-detects the phase and records a new high if one was reached.
func (t *ProgressTracker) Check() ReductionPhase {
	current := DetectPhase(t.cube)
	if current > t.highestPhase {
		t.highestPhase = current
		if t.callback != nil {
			t.callback(current)
		}
	}
	return current
}

// CurrentPhase returns the raw current phase; it may go backwards while
// an engine is mid-operation.
func (t *ProgressTracker) CurrentPhase() ReductionPhase {
	return DetectPhase(t.cube)
}

// HighestPhase returns the highest phase reached so far.
func (t *ProgressTracker) HighestPhase() ReductionPhase {
	return t.highestPhase
}
