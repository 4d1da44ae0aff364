package nxcube

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// edgeEngine pairs every edge's wings into matching two-color groups.
//
// Each edge is worked on at the front-left reference position. Wings move
// only through slice-conjugated forms of the wingFlip pattern, which
// touch the front-left and front-right edges at the sliced rows and move
// every other edge whole, so finished edges stay finished. The exception
// is the layer-parity sequence, which deliberately tears open up to
// three neighbors before the pairing loop reclaims them.
type edgeEngine struct {
	cube         *Cube
	colors       *FaceColorTracker
	tracker      *PieceTracker
	log          *zap.Logger
	budget       int
	parityEvents int
}

func newEdgeEngine(c *Cube, colors *FaceColorTracker, log *zap.Logger) *edgeEngine {
	w := c.WingCount()
	return &edgeEngine{
		cube:    c,
		colors:  colors,
		tracker: NewPieceTracker(c),
		log:     log,
		budget:  12*(4*w+8) + 60,
	}
}

// reduce pairs all twelve edges. It reports whether the edge parity
// fix ran.
func (e *edgeEngine) reduce() (bool, error) {
	if e.cube.Size() <= 3 {
		return false, nil
	}
	for iter := 0; iter < 48; iter++ {
		target := EdgePos(-1)
		for pos := EdgePos(0); pos < edgeCount; pos++ {
			if !e.cube.EdgeConsistent(pos) {
				target = pos
				break
			}
		}
		if target < 0 {
			return e.parityEvents > 0, nil
		}
		if err := e.bringToFrontLeft(target); err != nil {
			return false, err
		}
		if err := e.fixFrontLeft(); err != nil {
			return false, err
		}
	}
	return false, fmt.Errorf("%w: edge pairing did not converge", ErrInternal)
}

// play applies an alg, keeping the tracker rebased and charging budget.
func (e *edgeEngine) play(alg Alg) error {
	if e.budget <= 0 {
		return fmt.Errorf("%w: edge commutator budget exhausted", ErrInternal)
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

// wholeRotations is the generator set for orientation searches.
var wholeRotations = []Move{X, XPrime, X2, Y, YPrime, Y2, Z, ZPrime, Z2}

// bringToFrontLeft rotates the whole cube until the given edge location's
// material sits at the front-left edge. Two rotations always suffice. A
// tracked wing confirms the material physically arrived where the
// position arithmetic says it should.
func (e *edgeEngine) bringToFrontLeft(target EdgePos) error {
	if target == EdgeFL {
		return nil
	}
	locate, release := e.tracker.TrackEdgeWing(target, 0)
	defer release()

	type state struct {
		pos EdgePos
		alg Alg
	}
	frontier := []state{{pos: target}}
	seen := map[EdgePos]bool{target: true}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.pos == EdgeFL {
			if err := e.play(cur.alg); err != nil {
				return err
			}
			at, _, err := locate()
			if err != nil {
				return err
			}
			if at != EdgeFL {
				return fmt.Errorf("%w: edge %s landed at %s after rotation", ErrInternal, target, at)
			}
			return nil
		}
		for _, m := range wholeRotations {
			next := mapEdge(cur.pos, facePerm(m.Face, int(m.Turn)))
			if seen[next] {
				continue
			}
			seen[next] = true
			frontier = append(frontier, state{pos: next, alg: cur.alg.Then(m)})
		}
	}
	return fmt.Errorf("%w: no rotation brings %s to front-left", ErrInternal, target)
}

// anchorPair decides the ordered color pair the front-left edge must
// carry. Odd cubes take the central wing, which never moves. Even cubes
// take a majority vote over the wings; a split vote goes to the pair of
// the lowest-numbered wing holding a leading count.
func (e *edgeEngine) anchorPair() ColorPair {
	w := e.cube.WingCount()
	if e.cube.Size()%2 == 1 {
		return e.cube.WingColors(EdgeFL, (w-1)/2)
	}
	counts := make(map[ColorPair]int, w)
	for i := 0; i < w; i++ {
		counts[e.cube.WingColors(EdgeFL, i)]++
	}
	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	for i := 0; i < w; i++ {
		if p := e.cube.WingColors(EdgeFL, i); counts[p] == best {
			return p
		}
	}
	return e.cube.WingColors(EdgeFL, 0)
}

// mismatchedWings lists the wing indices not showing the anchor pair.
func (e *edgeEngine) mismatchedWings(anchor ColorPair) []int {
	var out []int
	for i := 0; i < e.cube.WingCount(); i++ {
		if e.cube.WingColors(EdgeFL, i) != anchor {
			out = append(out, i)
		}
	}
	return out
}

// conj builds the slice-conjugated flip: isolate the given front-left
// rows onto the front-right edge, run wingFlip, and bring them back.
func conj(rows []int) Alg {
	var isolate Alg
	for _, a := range rows {
		isolate = append(isolate, Move{Face: FaceU, Lo: a, Hi: a, Turn: CCW})
	}
	alg := append(Alg{}, isolate...)
	alg = append(alg, wingFlip...)
	alg = append(alg, isolate.Inverse()...)
	return alg
}

// donorSetup returns the outer-turn sequence that parks an edge at
// front-right without touching the front or left faces, so the front-left
// work in progress survives.
func donorSetup(dp EdgePos) Alg {
	switch dp {
	case EdgeFR:
		return nil
	case EdgeUR:
		return Alg{RPrime}
	case EdgeUB:
		return Alg{U, RPrime}
	case EdgeUF:
		return Alg{UPrime, RPrime}
	case EdgeUL:
		return Alg{U2, RPrime}
	case EdgeDR:
		return Alg{R}
	case EdgeDF:
		return Alg{D, R}
	case EdgeDB:
		return Alg{DPrime, R}
	case EdgeDL:
		return Alg{D2, R}
	case EdgeBR:
		return Alg{R2}
	case EdgeBL:
		return Alg{B2, R2}
	default:
		return nil
	}
}

// edgeResult scores one simulated candidate.
type edgeResult struct {
	alg   Alg
	fixed int
}

// centersPreserved verifies the simulated alg left every face's interior
// count for its required color untouched.
func (e *edgeEngine) centersPreserved(sim *Cube) bool {
	for f := FaceID(0); f < 6; f++ {
		col := e.colors.RequiredColor(f)
		if sim.CenterCount(f, col) != e.cube.CenterCount(f, col) {
			return false
		}
	}
	return true
}

// consistentPairs tallies the color pairs of the consistent edges. The
// tally is by pair rather than by position: setups shuffle edges around,
// and an edge that merely moved must not count as damage.
func consistentPairs(c *Cube) map[ColorPair]int {
	out := make(map[ColorPair]int, edgeCount)
	for pos := EdgePos(0); pos < edgeCount; pos++ {
		if c.EdgeConsistent(pos) {
			out[c.WingColors(pos, 0).Canonical()]++
		}
	}
	return out
}

// evalEdgeAlg simulates a candidate and scores it: how many mismatched
// front-left wings it fixes, requiring that centers are preserved and
// that no paired edge vanishes, save for the one sacrificial donor.
func (e *edgeEngine) evalEdgeAlg(alg Alg, anchor ColorPair, donor EdgePos) (int, bool) {
	sim := e.cube.Clone()
	alg.Play(sim)
	if !e.centersPreserved(sim) {
		return 0, false
	}
	beforePairs := consistentPairs(e.cube)
	afterPairs := consistentPairs(sim)
	damage := 0
	for p, cnt := range beforePairs {
		if d := cnt - afterPairs[p]; d > 0 {
			damage += d
		}
	}
	allowed := 0
	if donor >= 0 && e.cube.EdgeConsistent(donor) {
		allowed = 1
	}
	if damage > allowed {
		return 0, false
	}
	before := 0
	after := 0
	for i := 0; i < e.cube.WingCount(); i++ {
		if e.cube.WingColors(EdgeFL, i) == anchor {
			before++
		}
		if sim.WingColors(EdgeFL, i) == anchor {
			after++
		}
	}
	return after - before, true
}

// fixFrontLeft makes every wing of the front-left edge show the anchor
// pair. The edge must already be at front-left.
func (e *edgeEngine) fixFrontLeft() error {
	w := e.cube.WingCount()
	maxIter := 4*w + 10
	for iter := 0; iter < maxIter; iter++ {
		anchor := e.anchorPair()
		mismatched := e.mismatchedWings(anchor)
		if len(mismatched) == 0 {
			return nil
		}

		if alg := e.pureFlip(anchor, mismatched); alg != nil {
			if err := e.play(alg); err != nil {
				return err
			}
			continue
		}

		if e.othersInconsistent() {
			if alg := e.bestDonorSwap(anchor, mismatched, 1); alg != nil {
				if err := e.play(alg); err != nil {
					return err
				}
				continue
			}
			// Exchange material with another unfinished edge to break
			// the deadlock, then keep searching.
			if alg := e.bestDonorSwap(anchor, mismatched, 0); alg != nil {
				if err := e.play(alg); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("%w: edge deadlock with unfinished donors available", ErrInternal)
		}

		// Every other edge is paired, so conservation forces the stray
		// wings here to be flipped anchors, and a commutator cannot fix
		// them: that is the layer-parity defect. Donating from a paired
		// edge would only walk the defect around the cube forever.
		if e.parityEvents >= (w+1)/2 {
			return fmt.Errorf("%w: edge parity persisted after fix-up", ErrInternal)
		}
		e.parityEvents++
		e.log.Info("edge parity detected", zap.String("edge", EdgeFL.String()))
		if err := e.play(parityAlgAtFrontLeft(e.cube.Size(), parityRows(mismatched, w))); err != nil {
			return err
		}
		// Parity tears open neighboring edges on purpose; hand control
		// back to the main loop to re-pair them.
		return nil
	}
	return fmt.Errorf("%w: front-left edge did not stabilize", ErrInternal)
}

func (e *edgeEngine) othersInconsistent() bool {
	for pos := EdgePos(0); pos < edgeCount; pos++ {
		if pos != EdgeFL && !e.cube.EdgeConsistent(pos) {
			return true
		}
	}
	return false
}

// pureFlip fixes wing/mirror pairs that are both present but flipped, in
// one batched commutator against the front-right helper edge.
func (e *edgeEngine) pureFlip(anchor ColorPair, mismatched []int) Alg {
	w := e.cube.WingCount()
	flipped := anchor.Flip()
	var rows []int
	for _, i := range mismatched {
		mir := w - 1 - i
		if i >= mir {
			continue
		}
		if e.cube.WingColors(EdgeFL, i) == flipped && e.cube.WingColors(EdgeFL, mir) == flipped {
			rows = append(rows, i+1, mir+1)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	sort.Ints(rows)
	alg := conj(rows)
	if fixed, ok := e.evalEdgeAlg(alg, anchor, -1); !ok || fixed <= 0 {
		return nil
	}
	return alg
}

// bestDonorSwap searches the other edges for wings carrying the anchor
// colors, parks the donor at front-right (optionally flipping it there)
// and exchanges the matching rows. minFixed 0 admits neutral exchanges
// used only to break deadlocks.
func (e *edgeEngine) bestDonorSwap(anchor ColorPair, mismatched []int, minFixed int) Alg {
	rowSets := candidateRowSets(mismatched, e.cube.WingCount())
	var best *edgeResult

	var donors []EdgePos
	for pos := EdgePos(0); pos < edgeCount; pos++ {
		if pos == EdgeFL {
			continue
		}
		if !e.cube.EdgeConsistent(pos) {
			donors = append(donors, pos)
		}
	}
	for pos := EdgePos(0); pos < edgeCount; pos++ {
		if pos != EdgeFL && e.cube.EdgeConsistent(pos) {
			donors = append(donors, pos)
		}
	}

	for _, dp := range donors {
		setup := donorSetup(dp)
		for _, preFlip := range []bool{false, true} {
			for _, rows := range rowSets {
				alg := append(Alg{}, setup...)
				if preFlip {
					alg = append(alg, wingFlip...)
				}
				alg = append(alg, conj(rows)...)
				fixed, ok := e.evalEdgeAlg(alg, anchor, dp)
				if !ok || fixed < minFixed {
					continue
				}
				if minFixed == 0 && fixed == 0 && !stateChanges(e.cube, alg) {
					continue
				}
				if best == nil || fixed > best.fixed {
					best = &edgeResult{alg: alg, fixed: fixed}
				}
			}
		}
		if best != nil && best.fixed > 0 && dp == EdgeFR {
			break
		}
	}
	if best == nil {
		return nil
	}
	return best.alg
}

// candidateRowSets enumerates the slice-row subsets worth trying: each
// mismatched row alone, each row with its mirror, and the whole
// mismatched set at once.
func candidateRowSets(mismatched []int, w int) [][]int {
	var out [][]int
	for _, i := range mismatched {
		out = append(out, []int{i + 1})
		mir := w - 1 - i
		if mir != i && i < mir {
			out = append(out, []int{i + 1, mir + 1})
		}
	}
	if len(mismatched) > 1 {
		all := make([]int, 0, len(mismatched))
		for _, i := range mismatched {
			all = append(all, i+1)
		}
		sort.Ints(all)
		out = append(out, all)
	}
	return out
}

// stateChanges reports whether the alg alters edge state at all.
func stateChanges(c *Cube, alg Alg) bool {
	sim := c.Clone()
	alg.Play(sim)
	for pos := EdgePos(0); pos < edgeCount; pos++ {
		for i := 0; i < c.WingCount(); i++ {
			if sim.WingColors(pos, i) != c.WingColors(pos, i) {
				return true
			}
		}
	}
	return false
}

// parityRows picks one wing index per mirror orbit of the mismatched
// set. Each sliced row contributes an odd number of quarter turns to
// its orbit, so exactly one row per defective orbit flips that orbit's
// permutation parity. The central row never qualifies: the central wing
// is the anchor on odd cubes and is absent on even ones.
func parityRows(mismatched []int, w int) []int {
	seen := make(map[int]bool, len(mismatched))
	var rows []int
	for _, i := range mismatched {
		rep := i
		if mir := w - 1 - i; mir < rep {
			rep = mir
		}
		if seen[rep] {
			continue
		}
		seen[rep] = true
		rows = append(rows, rep)
	}
	sort.Ints(rows)
	return rows
}

// parityAlgAtFrontLeft builds the generalized parity sequence for the
// defective wing rows of the front-left edge: rotate the edge onto the
// top front, run (slice U2) four times plus a final slice on those
// columns, and rotate back. The slice count is odd, which is exactly
// the layer-parity flip no commutator can produce.
//
// After the Z rotation the front-left wing at row i sits in the slice at
// depth size-2-i from the right face, so the depth is taken from the far
// end of the row's orbit.
func parityAlgAtFrontLeft(size int, mismatched []int) Alg {
	w := size - 2
	var slices Alg
	for _, i := range mismatched {
		k := w - i
		slices = append(slices, Move{Face: FaceR, Lo: k, Hi: k, Turn: CW})
	}
	alg := Alg{Z}
	for rep := 0; rep < 4; rep++ {
		alg = append(alg, slices...)
		alg = append(alg, U2)
	}
	alg = append(alg, slices...)
	alg = append(alg, ZPrime)
	return alg
}
