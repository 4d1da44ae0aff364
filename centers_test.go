package nxcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runCenterReduction(t *testing.T, c *Cube) *centerEngine {
	t.Helper()
	colors := NewFaceColorTracker(c)
	eng := newCenterEngine(c, colors, zap.NewNop())
	require.NoError(t, eng.reduce())
	return eng
}

func TestCenterReductionFourByFour(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		c := New(4)
		Scramble(c, seed, DefaultScrambleLength(4))
		runCenterReduction(t, c)
		assert.True(t, c.CentersUniform(), "seed %d left mixed centers", seed)
	}
}

func TestCenterReductionFiveByFive(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		c := New(5)
		Scramble(c, seed, DefaultScrambleLength(5))
		runCenterReduction(t, c)
		assert.True(t, c.CentersUniform(), "seed %d left mixed centers", seed)
	}
}

func TestCenterReductionLargerSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("large cube reduction")
	}
	for _, size := range []int{6, 7} {
		for seed := int64(1); seed <= 3; seed++ {
			c := New(size)
			Scramble(c, seed, DefaultScrambleLength(size))
			runCenterReduction(t, c)
			assert.True(t, c.CentersUniform(), "size %d seed %d left mixed centers", size, seed)
		}
	}
}

// Scrambles that leave the last two colors split across opposite faces
// with scattered leftovers stall every single-commutator primitive; the
// composed endgame search has to finish them.
func TestCenterReductionOppositeFaceEndgame(t *testing.T) {
	if testing.Short() {
		t.Skip("endgame search sweep")
	}
	for _, seed := range []int64{51, 68, 70} {
		c := New(6)
		Scramble(c, seed, DefaultScrambleLength(6))
		runCenterReduction(t, c)
		assert.True(t, c.CentersUniform(), "seed %d left mixed centers", seed)
	}
}

// On odd cubes the fixed center caps anchor the color frame, so a
// finished reduction must place every face's original color count back
// at full strength.
func TestCenterReductionOddCubeKeepsAnchors(t *testing.T) {
	c := New(5)
	Scramble(c, 7, DefaultScrambleLength(5))
	colors := NewFaceColorTracker(c)
	eng := newCenterEngine(c, colors, zap.NewNop())
	require.NoError(t, eng.reduce())
	full := c.CenterSize()
	for f := FaceID(0); f < 6; f++ {
		col := colors.RequiredColor(f)
		assert.Equal(t, full, c.CenterCount(f, col), "face %s", f)
		assert.Equal(t, col, c.ColorAt(f, c.Size()/2, c.Size()/2), "face %s center cap", f)
	}
}

func TestCenterReductionSolvedCubeIsNoOp(t *testing.T) {
	c := New(5)
	runCenterReduction(t, c)
	assert.Zero(t, c.MoveCount())
	assert.True(t, c.CentersUniform())
}

func TestCenterReductionSkipsSmallCubes(t *testing.T) {
	for _, size := range []int{2, 3} {
		c := New(size)
		Scramble(c, 3, 30)
		before := c.MoveCount()
		runCenterReduction(t, c)
		assert.Equal(t, before, c.MoveCount(), "size %d", size)
	}
}

func TestCenterReductionStaysWithinMoveCeiling(t *testing.T) {
	for _, size := range []int{4, 5} {
		c := New(size)
		Scramble(c, 2, DefaultScrambleLength(size))
		start := c.MoveCount()
		runCenterReduction(t, c)
		assert.LessOrEqual(t, c.MoveCount()-start, MaxReductionMoves(size), "size %d", size)
	}
}

func TestColRangesExcludesCentralColumn(t *testing.T) {
	for _, cr := range colRanges(5) {
		assert.False(t, cr[0] <= 2 && 2 <= cr[1], "range %v crosses the fixed column", cr)
	}
	assert.Len(t, colRanges(4), 3)
	assert.Empty(t, colRanges(3))
}

// A pull commutator must restore the slice it borrows: on a solved cube
// any pull leaves every face's majority color dominant, and replaying
// its inverse restores the cube exactly.
func TestBuildPullInverseRestores(t *testing.T) {
	c := New(5)
	alg := buildPull(5, ringSetup(FaceR), 1, 2, [2]int{1, 1}, CW, false)
	alg.Play(c)
	alg.Inverse().Play(c)
	assert.True(t, c.IsSolved())
}
