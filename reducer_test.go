package nxcube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSolver returns its queued errors in order, then succeeds.
type scriptedSolver struct {
	errs  []error
	calls int
}

func (s *scriptedSolver) Solve(c *Cube) error {
	s.calls++
	if len(s.errs) == 0 {
		return nil
	}
	err := s.errs[0]
	s.errs = s.errs[1:]
	return err
}

func TestReduceScrambledCube(t *testing.T) {
	for _, size := range []int{4, 5} {
		c := New(size)
		Scramble(c, 11, DefaultScrambleLength(size))
		_, err := Reduce(c)
		require.NoError(t, err)
		assert.True(t, c.IsReduced(), "size %d", size)
		assert.True(t, IsReduced(c), "size %d", size)
	}
}

func TestReduceSmallCubeIsTrivial(t *testing.T) {
	c := New(3)
	Scramble(c, 2, 30)
	parity, err := Reduce(c)
	require.NoError(t, err)
	assert.False(t, parity)
	assert.True(t, c.IsReduced())
}

func TestReducePhaseCallback(t *testing.T) {
	c := New(4)
	Scramble(c, 3, DefaultScrambleLength(4))
	var phases []ReductionPhase
	_, err := Reduce(c, WithPhaseCallback(func(p ReductionPhase) {
		phases = append(phases, p)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, phases)
	for i := 1; i < len(phases); i++ {
		assert.Greater(t, phases[i], phases[i-1])
	}
	assert.Equal(t, PhaseEdgesPaired, phases[len(phases)-1])
}

func TestReducerSolveWithoutSolverStopsAfterReduction(t *testing.T) {
	c := New(4)
	Scramble(c, 5, DefaultScrambleLength(4))
	r := NewReducer(c)
	require.NoError(t, r.Solve())
	assert.True(t, c.IsReduced())
}

func TestReducerRetriesEdgeParityOnce(t *testing.T) {
	c := New(4)
	Scramble(c, 6, DefaultScrambleLength(4))
	solver := &scriptedSolver{errs: []error{ErrEdgeParity}}
	r := NewReducer(c, WithSolver(solver))
	require.NoError(t, r.Solve())
	assert.Equal(t, 2, solver.calls)
	assert.GreaterOrEqual(t, r.ParityEvents, 1)
	assert.True(t, c.IsReduced())
}

func TestReducerRetriesCornerParity(t *testing.T) {
	c := New(4)
	Scramble(c, 7, DefaultScrambleLength(4))
	solver := &scriptedSolver{errs: []error{ErrCornerParity}}
	r := NewReducer(c, WithSolver(solver))
	require.NoError(t, r.Solve())
	assert.Equal(t, 2, solver.calls)
	assert.True(t, c.IsReduced())
}

func TestReducerGivesUpAfterMaxAttempts(t *testing.T) {
	c := New(4)
	Scramble(c, 8, DefaultScrambleLength(4))
	solver := &scriptedSolver{errs: []error{ErrEdgeParity, ErrEdgeParity, ErrEdgeParity}}
	r := NewReducer(c, WithSolver(solver), WithMaxAttempts(3))
	err := r.Solve()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParityRetry)
	assert.Equal(t, 3, solver.calls)
}

func TestReducerPassesForeignSolverErrorsThrough(t *testing.T) {
	c := New(4)
	Scramble(c, 9, DefaultScrambleLength(4))
	boom := errors.New("solver exploded")
	solver := &scriptedSolver{errs: []error{boom}}
	r := NewReducer(c, WithSolver(solver))
	err := r.Solve()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, solver.calls)
}

func TestMaxReductionMovesScalesWithSize(t *testing.T) {
	assert.Greater(t, MaxReductionMoves(5), MaxReductionMoves(4))
	c := New(4)
	Scramble(c, 10, DefaultScrambleLength(4))
	c.ResetMoveCount()
	_, err := Reduce(c)
	require.NoError(t, err)
	assert.LessOrEqual(t, c.MoveCount(), MaxReductionMoves(4))
}
