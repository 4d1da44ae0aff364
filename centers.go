package nxcube

import (
	"fmt"

	"go.uber.org/zap"
)

// centerEngine unifies every face's interior into its required color.
//
// The working frame keeps the current target face on top: sources are the
// four ring faces (rotated to the front as needed) and the face opposite
// the target. All material moves through slice-turn-slice'-turn'
// commutators; every candidate commutator is verified on a clone before
// it is played, and must strictly improve the target without touching any
// face finished earlier.
type centerEngine struct {
	cube      *Cube
	colors    *FaceColorTracker
	log       *zap.Logger
	budget    int
	completed map[Color]bool
}

// faceOrder fixes the order faces are finished in. Which physical faces
// end up holding the last two colors depends on the scramble, so the
// endgame must cope with the leftover pair being adjacent or opposite.
var faceOrder = [6]Color{White, Yellow, Green, Red, Blue, Orange}

func newCenterEngine(c *Cube, colors *FaceColorTracker, log *zap.Logger) *centerEngine {
	n := c.Size()
	return &centerEngine{
		cube:      c,
		colors:    colors,
		log:       log,
		budget:    60*n*n + 240,
		completed: make(map[Color]bool, 6),
	}
}

// reduce drives all six faces to completion.
func (e *centerEngine) reduce() error {
	n := e.cube.Size()
	if n <= 3 {
		return nil
	}
	even := n%2 == 0

	for pass := 0; pass < 4; pass++ {
		progress := false
		for idx, col := range faceOrder {
			if e.faceComplete(col) {
				e.completed[col] = true
				continue
			}
			if even && idx == 4 && len(e.completed) == 4 {
				if err := e.verifyBOY(); err != nil {
					return err
				}
			}
			// The first pass on even cubes holds back the face
			// opposite the target so its material is not drained
			// prematurely.
			moved, err := e.solveFace(col, even && pass == 0)
			if err != nil {
				return err
			}
			if moved {
				progress = true
			}
			if e.faceComplete(col) {
				e.completed[col] = true
				e.log.Debug("center face complete",
					zap.String("color", col.String()),
					zap.Int("moves", e.cube.MoveCount()))
			}
		}
		if e.cube.CentersUniform() {
			return nil
		}
		if !progress && pass > 0 {
			return fmt.Errorf("%w: center pass made no progress", ErrInternal)
		}
	}
	return fmt.Errorf("%w: centers not uniform after full driver passes", ErrInternal)
}

// verifyBOY cross-checks the tracked assignment of the two unfinished
// faces against the BOY deduction from the four finished ones.
func (e *centerEngine) verifyBOY() error {
	partial := make(map[FaceID]Color, 4)
	for col := range e.completed {
		partial[e.colors.FaceFor(col)] = col
	}
	deduced, err := e.colors.DeduceLastTwo(partial)
	if err != nil {
		return err
	}
	for f, col := range deduced {
		if e.colors.RequiredColor(f) != col {
			return fmt.Errorf("%w: BOY deduction assigns %s to %s, tracker says %s",
				ErrInternal, col, f, e.colors.RequiredColor(f))
		}
	}
	return nil
}

func (e *centerEngine) faceComplete(col Color) bool {
	f := e.colors.FaceFor(col)
	return e.cube.CenterCount(f, col) == e.cube.CenterSize()
}

// play applies an alg to the live cube, keeping the face-color tracker in
// step with any whole-cube rotations and charging the commutator budget.
func (e *centerEngine) play(alg Alg) error {
	if e.budget <= 0 {
		return fmt.Errorf("%w: center commutator budget exhausted", ErrInternal)
	}
	e.budget--
	for _, m := range alg {
		e.cube.Apply(m)
		if m.Whole {
			e.colors.Rebase(m.Face, int(m.Turn))
		}
	}
	return nil
}

// requiredAfter returns the position-to-required-color map as it will
// stand after the alg's whole-cube rotations.
func (e *centerEngine) requiredAfter(alg Alg) [6]Color {
	req := [6]Color{}
	for f := FaceID(0); f < 6; f++ {
		req[f] = e.colors.RequiredColor(f)
	}
	for _, m := range alg {
		if !m.Whole {
			continue
		}
		perm := facePerm(m.Face, int(m.Turn))
		var next [6]Color
		for old := FaceID(0); old < 6; old++ {
			next[perm[old]] = req[old]
		}
		req = next
	}
	return req
}

func faceForIn(req [6]Color, col Color) FaceID {
	for f := FaceID(0); f < 6; f++ {
		if req[f] == col {
			return f
		}
	}
	return FaceU
}

// safeFor reports whether the simulated result leaves every finished face
// untouched.
func (e *centerEngine) safeFor(sim *Cube, req [6]Color) bool {
	full := e.cube.CenterSize()
	for col := range e.completed {
		if sim.CenterCount(faceForIn(req, col), col) != full {
			return false
		}
	}
	return true
}

// candidate is one verified commutator: the alg plus its simulated gain
// on the target face.
type candidate struct {
	alg  Alg
	gain int
}

// evalTarget simulates an alg and returns the change in correctly colored
// interior cells on the target color's face, or ok=false when the alg
// damages a finished face.
func (e *centerEngine) evalTarget(alg Alg, col Color) (gain int, ok bool) {
	before := e.cube.CenterCount(e.colors.FaceFor(col), col)
	sim := e.cube.Clone()
	alg.Play(sim)
	req := e.requiredAfter(alg)
	if !e.safeFor(sim, req) {
		return 0, false
	}
	return sim.CenterCount(faceForIn(req, col), col) - before, true
}

// orientTargetUp rotates the whole cube so the target color's face is on
// top.
func (e *centerEngine) orientTargetUp(col Color) error {
	var setup Alg
	switch e.colors.FaceFor(col) {
	case FaceU:
		return nil
	case FaceF:
		setup = Alg{X}
	case FaceB:
		setup = Alg{XPrime}
	case FaceD:
		setup = Alg{X2}
	case FaceR:
		setup = Alg{ZPrime}
	case FaceL:
		setup = Alg{Z}
	}
	if err := e.play(setup); err != nil {
		return err
	}
	if e.colors.FaceFor(col) != FaceU {
		return fmt.Errorf("%w: target face did not orient to top", ErrInternal)
	}
	return nil
}

// ringSetup returns the whole-cube y rotation bringing a ring face to the
// front. The top and bottom faces stay put.
func ringSetup(p FaceID) Alg {
	switch p {
	case FaceF:
		return nil
	case FaceR:
		return Alg{Y}
	case FaceL:
		return Alg{YPrime}
	case FaceB:
		return Alg{Y2}
	default:
		return nil
	}
}

// colRanges enumerates the contiguous interior column ranges usable as
// slice groups. On odd cubes the central column is excluded: turning the
// central slices would move the fixed center facelets.
func colRanges(n int) [][2]int {
	mid := -1
	if n%2 == 1 {
		mid = n / 2
	}
	var out [][2]int
	for lo := 1; lo <= n-2; lo++ {
		for hi := lo; hi <= n-2; hi++ {
			if mid >= lo && mid <= hi {
				continue
			}
			out = append(out, [2]int{lo, hi})
		}
	}
	return out
}

// sliceCW builds the move turning the vertical slices through columns
// lo..hi of the front face so their content rises onto the top face:
// a turn of the right face's inner layers at the mirrored depths.
func sliceCW(n, lo, hi int, t Turn) Move {
	return Move{Face: FaceR, Lo: n - 1 - hi, Hi: n - 1 - lo, Turn: t}
}

// solveFace drives one color's face to completion. With excludeOpposite
// set it stops once only opposite-face material remains.
func (e *centerEngine) solveFace(col Color, excludeOpposite bool) (bool, error) {
	if err := e.orientTargetUp(col); err != nil {
		return false, err
	}
	full := e.cube.CenterSize()
	moved := false

	for e.cube.CenterCount(FaceU, col) < full {
		best := e.bestPull(col, excludeOpposite)
		if best == nil {
			best = e.bestLift(col)
		}
		if best == nil && !excludeOpposite {
			best = e.bestMassage(col)
		}
		if best != nil {
			if err := e.play(best.alg); err != nil {
				return moved, err
			}
			moved = true
			continue
		}
		if excludeOpposite {
			return moved, nil
		}
		best = e.bestExchange(col)
		if best == nil {
			return moved, fmt.Errorf("%w: center endgame is not converging for %s", ErrInternal, col)
		}
		if err := e.play(best.alg); err != nil {
			return moved, err
		}
		moved = true
	}
	return moved, nil
}

// sourceAllowed reports whether the face at position p may donate
// material right now.
func (e *centerEngine) sourceAllowed(p FaceID) bool {
	return !e.completed[e.colors.RequiredColor(p)]
}

// bestPull searches the block-transfer commutators from every allowed
// source and returns the strongest strictly improving one. The front-face
// family is the conjugated slice commutator; pulls from the bottom double
// the slice rotation because its coordinates are mirrored on both axes.
func (e *centerEngine) bestPull(col Color, excludeOpposite bool) *candidate {
	n := e.cube.Size()
	var best *candidate
	consider := func(alg Alg) {
		gain, ok := e.evalTarget(alg, col)
		if !ok || gain <= 0 {
			return
		}
		if best == nil || gain > best.gain || (gain == best.gain && len(alg) < len(best.alg)) {
			best = &candidate{alg: alg, gain: gain}
		}
	}

	for _, p := range []FaceID{FaceF, FaceR, FaceB, FaceL} {
		if !e.sourceAllowed(p) {
			continue
		}
		setup := ringSetup(p)
		for _, cr := range colRanges(n) {
			for preF := 0; preF < 4; preF++ {
				for preU := 0; preU < 4; preU++ {
					for _, tdir := range []Turn{CW, CCW, Double} {
						alg := buildPull(n, setup, preF, preU, cr, tdir, false)
						consider(alg)
					}
				}
			}
		}
	}
	if !excludeOpposite && e.sourceAllowed(FaceD) {
		for _, cr := range colRanges(n) {
			for preD := 0; preD < 4; preD++ {
				for preU := 0; preU < 4; preU++ {
					for _, tdir := range []Turn{CW, CCW, Double} {
						alg := buildPull(n, nil, preD, preU, cr, tdir, true)
						consider(alg)
					}
				}
			}
		}
	}
	return best
}

// buildPull assembles one block-transfer commutator. fromBottom selects
// the doubled-slice variant that exchanges with the bottom face.
func buildPull(n int, setup Alg, preSrc, preU int, cr [2]int, tdir Turn, fromBottom bool) Alg {
	alg := append(Alg{}, setup...)
	srcFace := FaceF
	sliceTurn := CW
	sliceBack := CCW
	if fromBottom {
		srcFace = FaceD
		sliceTurn = Double
		sliceBack = Double
	}
	if t := quarterTurn(preSrc); t != 0 {
		alg = append(alg, Outer(srcFace, t))
	}
	if t := quarterTurn(preU); t != 0 {
		alg = append(alg, Outer(FaceU, t))
	}
	alg = append(alg,
		sliceCW(n, cr[0], cr[1], sliceTurn),
		Outer(FaceU, tdir),
		sliceCW(n, cr[0], cr[1], sliceBack),
		Outer(FaceU, tdir.invert()),
	)
	return alg
}

func quarterTurn(q int) Turn {
	switch q % 4 {
	case 1:
		return CW
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return 0
	}
}

// bestLift searches the single-cell lift commutator: a double three-cycle
// built from one vertical and one horizontal slice, conjugated around a
// top turn so its far cycle cancels and exactly one correct cell rises
// into a hole. This is the endgame primitive the block search cannot
// replace when only scattered cells remain. Central slices are legal
// here even on odd cubes: the conjugation returns every fixed center
// facelet to its home before the alg ends.
func (e *centerEngine) bestLift(col Color) *candidate {
	n := e.cube.Size()
	var best *candidate
	for _, p := range []FaceID{FaceF, FaceR, FaceB, FaceL} {
		if !e.sourceAllowed(p) {
			continue
		}
		setup := ringSetup(p)
		for row := 1; row <= n-2; row++ {
			for cc := 1; cc <= n-2; cc++ {
				if e.cube.ColorAt(FaceU, row, cc) == col {
					continue
				}
				for _, adir := range []Turn{CW, CCW} {
					for _, zdir := range []Turn{CW, CCW} {
						a := Move{Face: FaceR, Lo: n - 1 - cc, Hi: n - 1 - cc, Turn: adir}
						z := Move{Face: FaceF, Lo: n - 1 - row, Hi: n - 1 - row, Turn: zdir}
						k := Alg{a, z, a.Inverse(), z.Inverse()}
						for preF := 0; preF < 4; preF++ {
							for preU := 0; preU < 4; preU++ {
								for _, sigma := range []Turn{CW, CCW, Double} {
									alg := append(Alg{}, setup...)
									if t := quarterTurn(preF); t != 0 {
										alg = append(alg, Outer(FaceF, t))
									}
									if t := quarterTurn(preU); t != 0 {
										alg = append(alg, Outer(FaceU, t))
									}
									alg = append(alg, k...)
									alg = append(alg, Outer(FaceU, sigma))
									alg = append(alg, k.Inverse()...)
									gain, ok := e.evalTarget(alg, col)
									if !ok || gain <= 0 {
										continue
									}
									if best == nil || gain > best.gain {
										best = &candidate{alg: alg, gain: gain}
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return best
}

// bestMassage relocates target material from the bottom face onto an
// unfinished front face so the lift family can reach it. The exchange
// commutator pairs a slice group with a front turn, swapping columns
// between front and bottom. The move must not cost the target face
// anything; gain is measured on the front face instead.
func (e *centerEngine) bestMassage(col Color) *candidate {
	n := e.cube.Size()
	if !e.sourceAllowed(FaceD) || e.cube.CenterCount(FaceD, col) == 0 {
		return nil
	}
	var best *candidate
	for _, p := range []FaceID{FaceF, FaceR, FaceB, FaceL} {
		if !e.sourceAllowed(p) {
			continue
		}
		setup := ringSetup(p)
		baselineU := e.cube.CenterCount(FaceU, col)
		for _, cr := range colRanges(n) {
			for preD := 0; preD < 4; preD++ {
				for _, tdir := range []Turn{CW, CCW} {
					alg := append(Alg{}, setup...)
					if t := quarterTurn(preD); t != 0 {
						alg = append(alg, Outer(FaceD, t))
					}
					alg = append(alg,
						sliceCW(n, cr[0], cr[1], CW),
						Outer(FaceF, tdir),
						sliceCW(n, cr[0], cr[1], CCW),
						Outer(FaceF, tdir.invert()),
					)
					sim := e.cube.Clone()
					alg.Play(sim)
					req := e.requiredAfter(alg)
					if !e.safeFor(sim, req) {
						continue
					}
					if sim.CenterCount(FaceU, col) < baselineU {
						continue
					}
					gain := sim.CenterCount(FaceF, col) - e.cube.CenterCount(p, col)
					if gain <= 0 {
						continue
					}
					if best == nil || gain > best.gain {
						best = &candidate{alg: alg, gain: gain}
					}
				}
			}
		}
	}
	return best
}

// bestExchange handles the opposite-face endgame. Once the four ring
// faces are finished, every remaining mismatch sits split between the
// top and bottom faces, and no column exchange between them can gain on
// its own: each misplaced top cell would drag three correct ones down
// with it. The way out is to borrow a finished ring face for the length
// of one composite. A front-turn slice commutator parks a bottom column
// on the front face, the lift commutator raises the one target cell it
// carried into a top hole, and the exact inverse of the borrow returns
// the column, front face intact. The composite as a whole is verified
// safe and strictly gaining, so solveFace keeps its strict-progress
// termination argument.
func (e *centerEngine) bestExchange(col Color) *candidate {
	n := e.cube.Size()

	var lifts []Alg
	for row := 1; row <= n-2; row++ {
		for cc := 1; cc <= n-2; cc++ {
			if e.cube.ColorAt(FaceU, row, cc) == col {
				continue
			}
			for _, adir := range []Turn{CW, CCW} {
				for _, zdir := range []Turn{CW, CCW} {
					a := Move{Face: FaceR, Lo: n - 1 - cc, Hi: n - 1 - cc, Turn: adir}
					z := Move{Face: FaceF, Lo: n - 1 - row, Hi: n - 1 - row, Turn: zdir}
					k := Alg{a, z, a.Inverse(), z.Inverse()}
					for preU := 0; preU < 4; preU++ {
						for _, sigma := range []Turn{CW, CCW, Double} {
							var la Alg
							if t := quarterTurn(preU); t != 0 {
								la = append(la, Outer(FaceU, t))
							}
							la = append(la, k...)
							la = append(la, Outer(FaceU, sigma))
							la = append(la, k.Inverse()...)
							lifts = append(lifts, la)
						}
					}
				}
			}
		}
	}

	for _, cr := range colRanges(n) {
		for preD := 0; preD < 4; preD++ {
			for _, tdir := range []Turn{CW, CCW} {
				var borrow Alg
				if t := quarterTurn(preD); t != 0 {
					borrow = append(borrow, Outer(FaceD, t))
				}
				borrow = append(borrow,
					sliceCW(n, cr[0], cr[1], CW),
					Outer(FaceF, tdir),
					sliceCW(n, cr[0], cr[1], CCW),
					Outer(FaceF, tdir.invert()),
				)
				unborrow := borrow.Inverse()
				for _, la := range lifts {
					alg := append(Alg{}, borrow...)
					alg = append(alg, la...)
					alg = append(alg, unborrow...)
					gain, ok := e.evalTarget(alg, col)
					if ok && gain > 0 {
						return &candidate{alg: alg, gain: gain}
					}
				}
			}
		}
	}
	return nil
}
