// Package nxcube models twisty cube puzzles of arbitrary edge length N
// and reduces them to a canonical 3x3 state.
//
// The model keeps a fixed structural topology (faces, corners, edges with
// their wing slices, face centers) and mutates only the colors carried by
// each facelet, always through layer rotations. On top of the model, the
// reduction engines unify every face's interior into a single color,
// pair every edge's wings into matching two-color groups, and detect and
// correct the parity defects that only exist on even-sized cubes.
//
// Typical use:
//
//	cube := nxcube.New(5)
//	nxcube.Scramble(cube, 42, nxcube.DefaultScrambleLength(5))
//	parity, err := nxcube.Reduce(cube)
//
// After a successful Reduce the cube satisfies IsReduced and can be
// finished by any 3x3 solver through the Solver3x3 interface.
package nxcube
