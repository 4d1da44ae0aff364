package nxcube

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Solver3x3 finishes a reduced cube with 3x3 techniques. It may return
// ErrEdgeParity or ErrCornerParity when it runs into an even-cube defect
// that has no 3x3 equivalent; the orchestrator owns those signals and no
// other layer is allowed to swallow them.
type Solver3x3 interface {
	Solve(c *Cube) error
}

// Reduce runs center reduction then edge reduction on the cube, leaving
// it solvable as a 3x3. It reports whether any parity correction occurred
// along the way.
func Reduce(c *Cube, opts ...Option) (bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return reduceWith(c, cfg, NewProgressTracker(c))
}

func reduceWith(c *Cube, cfg *config, progress *ProgressTracker) (bool, error) {
	if cfg.onPhase != nil {
		progress.SetPhaseCallback(cfg.onPhase)
	}
	colors := NewFaceColorTracker(c)

	centers := newCenterEngine(c, colors, cfg.logger)
	if err := centers.reduce(); err != nil {
		return false, err
	}
	if !c.CentersUniform() {
		return false, fmt.Errorf("%w: center engine finished with non-uniform centers", ErrInternal)
	}
	progress.Check()

	edges := newEdgeEngine(c, colors, cfg.logger)
	parity, err := edges.reduce()
	if err != nil {
		return false, err
	}
	if !c.IsReduced() {
		return false, fmt.Errorf("%w: edge engine finished without full reduction", ErrInternal)
	}
	progress.Check()
	cfg.logger.Debug("reduction complete",
		zap.Int("size", c.Size()),
		zap.Bool("parity", parity),
		zap.Int("moves", c.MoveCount()))
	return parity, nil
}

// IsReduced reports whether the cube is already reduced to a 3x3.
func IsReduced(c *Cube) bool {
	return c.IsReduced()
}

// halfSlices returns the inner layers of the right half of the cube,
// the slice group both standalone parity fixes turn.
func halfSlices(c *Cube, t Turn) Alg {
	var alg Alg
	for d := 1; d < c.Size()/2; d++ {
		alg = append(alg, Move{Face: FaceR, Lo: d, Hi: d, Turn: t})
	}
	return alg
}

// FixEdgeParity applies the standalone even-cube edge-parity fix-up to an
// already reduced cube: the classic (slice U2) x4 slice sequence over the
// right-half inner layers. The cube is left un-reduced in the torn-open
// edges; callers re-run Reduce afterwards, which is what the
// orchestrator's retry path does.
func FixEdgeParity(c *Cube) {
	if c.Size() < 4 {
		return
	}
	slices := halfSlices(c, CW)
	var alg Alg
	for rep := 0; rep < 4; rep++ {
		alg = append(alg, slices...)
		alg = append(alg, U2)
	}
	alg = append(alg, slices...)
	alg.Play(c)
}

// FixCornerParity applies the even-cube corner-swap parity fix-up: the
// generalized slice2 U2 slice2 Uw2 slice2 Uw2 sequence.
func FixCornerParity(c *Cube) {
	if c.Size() < 4 {
		return
	}
	s2 := halfSlices(c, Double)
	uw2 := Alg{U2, Move{Face: FaceU, Lo: 1, Hi: c.Size()/2 - 1, Turn: Double}}
	alg := Concat(s2, Alg{U2}, s2, uw2, s2, uw2)
	alg.Play(c)
}

// Reducer sequences reduction and the downstream 3x3 solve, resolving
// parity signals with a bounded retry.
type Reducer struct {
	cube     *Cube
	cfg      *config
	progress *ProgressTracker

	// ParityEvents counts parity corrections across all attempts.
	ParityEvents int
}

// NewReducer creates an orchestrator for the cube.
func NewReducer(c *Cube, opts ...Option) *Reducer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Reducer{cube: c, cfg: cfg, progress: NewProgressTracker(c)}
}

// Solve reduces the cube and hands it to the configured 3x3 solver.
// Parity signals from the solver trigger the matching fix-up and a full
// retry from the top, bounded at the configured attempt count (default 3:
// one initial attempt plus up to two parity fixes). Running out of
// attempts is fatal.
func (r *Reducer) Solve() error {
	for attempt := 1; attempt <= r.cfg.maxAttempts; attempt++ {
		parity, err := reduceWith(r.cube, r.cfg, r.progress)
		if err != nil {
			return err
		}
		if parity {
			r.ParityEvents++
		}
		if r.cfg.solver == nil {
			return nil
		}
		err = r.cfg.solver.Solve(r.cube)
		switch {
		case err == nil:
			r.progress.Check()
			return nil
		case errors.Is(err, ErrEdgeParity):
			r.cfg.logger.Info("solver reported edge parity, applying fix-up",
				zap.Int("attempt", attempt))
			r.ParityEvents++
			FixEdgeParity(r.cube)
		case errors.Is(err, ErrCornerParity):
			r.cfg.logger.Info("solver reported corner parity, applying fix-up",
				zap.Int("attempt", attempt))
			r.ParityEvents++
			FixCornerParity(r.cube)
		default:
			return err
		}
	}
	return fmt.Errorf("%w: %d attempts", ErrParityRetry, r.cfg.maxAttempts)
}

// MaxReductionMoves is the implementation-defined ceiling on quarter
// turns a full reduction of a size-n cube may take.
func MaxReductionMoves(n int) int {
	return 80*n*n + 400*n
}
