package nxcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runFullReduction(t *testing.T, c *Cube) (bool, *edgeEngine) {
	t.Helper()
	colors := NewFaceColorTracker(c)
	centers := newCenterEngine(c, colors, zap.NewNop())
	require.NoError(t, centers.reduce())
	require.True(t, c.CentersUniform())
	edges := newEdgeEngine(c, colors, zap.NewNop())
	parity, err := edges.reduce()
	require.NoError(t, err)
	return parity, edges
}

func TestEdgeReductionFourByFour(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		c := New(4)
		Scramble(c, seed, DefaultScrambleLength(4))
		runFullReduction(t, c)
		assert.True(t, c.IsReduced(), "seed %d", seed)
	}
}

func TestEdgeReductionFiveByFive(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		c := New(5)
		Scramble(c, seed, DefaultScrambleLength(5))
		runFullReduction(t, c)
		assert.True(t, c.IsReduced(), "seed %d", seed)
	}
}

func TestEdgeReductionLargerSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("large cube reduction")
	}
	for _, size := range []int{6, 7} {
		for seed := int64(1); seed <= 5; seed++ {
			c := New(size)
			Scramble(c, seed, DefaultScrambleLength(size))
			runFullReduction(t, c)
			assert.True(t, c.IsReduced(), "size %d seed %d", size, seed)
		}
	}
}

// flipEdge swaps the two facelet colors inside every wing of an edge.
// On an otherwise solved even cube this crafts the edge-parity state:
// the edge stays internally consistent, so by appearance the cube is
// still reduced, but its wings are permuted oddly and the 3x3 stage
// would find one unsolvable flipped edge.
func flipEdge(c *Cube, pos EdgePos) {
	for i := 0; i < c.WingCount(); i++ {
		ra, rb := c.wingRefs(pos, i)
		a, b := c.at(ra.f, ra.r, ra.c), c.at(rb.f, rb.r, rb.c)
		a.color, b.color = b.color, a.color
		c.set(ra.f, ra.r, ra.c, a)
		c.set(rb.f, rb.r, rb.c, b)
	}
	c.version++
}

// A cube solved except for one flipped edge resolves through the parity
// path alone: pairing finds nothing to do, the standalone fix-up tears
// the defect open, and one more pairing pass re-pairs everything. The
// center engine never plays a move.
func TestFlippedEdgeResolvesViaParityPathAlone(t *testing.T) {
	for _, size := range []int{4, 6} {
		c := New(size)
		flipEdge(c, EdgeUF)
		require.True(t, c.EdgeConsistent(EdgeUF), "size %d", size)
		require.True(t, c.IsReduced(), "size %d", size)

		FixEdgeParity(c)
		require.True(t, c.CentersUniform(), "size %d", size)

		before := c.MoveCount()
		colors := NewFaceColorTracker(c)
		centers := newCenterEngine(c, colors, zap.NewNop())
		require.NoError(t, centers.reduce())
		assert.Equal(t, before, c.MoveCount(), "size %d: center engine moved", size)

		edges := newEdgeEngine(c, colors, zap.NewNop())
		_, err := edges.reduce()
		require.NoError(t, err)
		assert.True(t, c.IsReduced(), "size %d", size)
	}
}

// A scramble whose wing orbit comes out odd must report parity exactly
// once: the in-engine guard allows one fix per orbit, and a second
// report would mean the fix failed to flip the orbit's permutation
// sign.
func TestEdgeParityReportedOnceSixBySix(t *testing.T) {
	if testing.Short() {
		t.Skip("large cube reduction")
	}
	c := New(6)
	Scramble(c, 0, DefaultScrambleLength(6))
	parity, edges := runFullReduction(t, c)
	assert.True(t, parity)
	assert.Equal(t, 1, edges.parityEvents)
	assert.True(t, c.IsReduced())
}

// The generalized parity sequence must tear exactly the requested wing
// row of the front-left edge, leave its other wings agreeing with each
// other, and keep the centers uniform.
func TestParityAlgTearsRequestedRow(t *testing.T) {
	c := New(6)
	parityAlgAtFrontLeft(6, []int{0}).Play(c)

	assert.True(t, c.CentersUniform())
	assert.False(t, c.EdgeConsistent(EdgeFL))
	ref := c.WingColors(EdgeFL, 1)
	assert.Equal(t, ref, c.WingColors(EdgeFL, 2))
	assert.Equal(t, ref, c.WingColors(EdgeFL, 3))
	assert.NotEqual(t, ref, c.WingColors(EdgeFL, 0))
}

// The wing flip pattern exchanges wings between front-left and
// front-right but moves every other edge as a whole, so a solved cube
// keeps all edges consistent under it.
func TestWingFlipKeepsEdgesConsistent(t *testing.T) {
	c := New(6)
	wingFlip.Play(c)
	assert.True(t, c.EdgesConsistent())
	assert.True(t, c.CentersUniform())
}

func TestParityRowsPicksOneRowPerOrbit(t *testing.T) {
	assert.Equal(t, []int{0}, parityRows([]int{0, 2}, 3))
	assert.Equal(t, []int{0, 1}, parityRows([]int{0, 1, 2, 3}, 4))
	assert.Equal(t, []int{1}, parityRows([]int{2}, 4))
	assert.Equal(t, []int{0}, parityRows([]int{0}, 2))
}

// Tearing a reduced cube open with the standalone edge-parity sequence
// must leave centers uniform, and the pairing loop must reclaim the
// torn edges.
func TestEdgeEngineReclaimsParityTear(t *testing.T) {
	for _, size := range []int{4, 6} {
		c := New(size)
		FixEdgeParity(c)
		torn := 0
		for pos := EdgePos(0); pos < edgeCount; pos++ {
			if !c.EdgeConsistent(pos) {
				torn++
			}
		}
		assert.Equal(t, 4, torn, "size %d", size)
		assert.True(t, c.CentersUniform(), "size %d", size)

		colors := NewFaceColorTracker(c)
		edges := newEdgeEngine(c, colors, zap.NewNop())
		_, err := edges.reduce()
		require.NoError(t, err)
		assert.True(t, c.IsReduced(), "size %d", size)
	}
}

// The corner-parity sequence permutes whole pieces only, so a reduced
// cube stays reduced across it.
func TestFixCornerParityPreservesReduction(t *testing.T) {
	for _, size := range []int{4, 6} {
		c := New(size)
		FixCornerParity(c)
		assert.True(t, c.IsReduced(), "size %d", size)
	}
}

func TestEdgeReductionStaysWithinMoveCeiling(t *testing.T) {
	c := New(5)
	Scramble(c, 9, DefaultScrambleLength(5))
	runFullReduction(t, c)
	assert.LessOrEqual(t, c.MoveCount(), MaxReductionMoves(5))
	assert.True(t, c.IsReduced())
}

func TestEdgeReductionSkipsSmallCubes(t *testing.T) {
	c := New(3)
	Scramble(c, 5, 30)
	colors := NewFaceColorTracker(c)
	edges := newEdgeEngine(c, colors, zap.NewNop())
	parity, err := edges.reduce()
	require.NoError(t, err)
	assert.False(t, parity)
}

func TestCandidateRowSets(t *testing.T) {
	sets := candidateRowSets([]int{0, 3}, 4)
	assert.Contains(t, sets, []int{1})
	assert.Contains(t, sets, []int{4})
	assert.Contains(t, sets, []int{1, 4})
}
