package nxcube

import "fmt"

// cellRef addresses one facelet by face and grid coordinates.
type cellRef struct {
	f FaceID
	r int
	c int
}

// sideCycle lists, for a clockwise turn of each face, the four side faces
// in content order: material on the first face moves to the second, and so
// on around. At N=3 these reduce to the classic 3x3 edge cycles
// (U sends the F top row to L, R sends the F right column up, etc.).
var sideCycle = [6][4]FaceID{
	FaceU: {FaceF, FaceL, FaceB, FaceR},
	FaceD: {FaceF, FaceR, FaceB, FaceL},
	FaceF: {FaceU, FaceR, FaceD, FaceL},
	FaceB: {FaceU, FaceL, FaceD, FaceR},
	FaceR: {FaceU, FaceB, FaceD, FaceF},
	FaceL: {FaceU, FaceF, FaceD, FaceB},
}

// layerStrips returns the four strips of cells a clockwise turn of face f
// at the given depth cycles, in sideCycle content order. Strip k element i
// is the cell whose content moves onto strip k+1 element i.
func (c *Cube) layerStrips(f FaceID, depth int) [4][]cellRef {
	n := c.size
	m := n - 1
	d := depth
	var out [4][]cellRef
	for k := range out {
		out[k] = make([]cellRef, n)
	}
	for i := 0; i < n; i++ {
		switch f {
		case FaceU:
			out[0][i] = cellRef{FaceF, d, i}
			out[1][i] = cellRef{FaceL, d, i}
			out[2][i] = cellRef{FaceB, d, i}
			out[3][i] = cellRef{FaceR, d, i}
		case FaceD:
			out[0][i] = cellRef{FaceF, m - d, i}
			out[1][i] = cellRef{FaceR, m - d, i}
			out[2][i] = cellRef{FaceB, m - d, i}
			out[3][i] = cellRef{FaceL, m - d, i}
		case FaceF:
			out[0][i] = cellRef{FaceU, m - d, i}
			out[1][i] = cellRef{FaceR, i, d}
			out[2][i] = cellRef{FaceD, d, m - i}
			out[3][i] = cellRef{FaceL, m - i, m - d}
		case FaceB:
			out[0][i] = cellRef{FaceU, d, m - i}
			out[1][i] = cellRef{FaceL, i, d}
			out[2][i] = cellRef{FaceD, m - d, i}
			out[3][i] = cellRef{FaceR, m - i, m - d}
		case FaceR:
			out[0][i] = cellRef{FaceU, i, m - d}
			out[1][i] = cellRef{FaceB, m - i, d}
			out[2][i] = cellRef{FaceD, i, m - d}
			out[3][i] = cellRef{FaceF, i, m - d}
		case FaceL:
			out[0][i] = cellRef{FaceU, i, d}
			out[1][i] = cellRef{FaceF, i, d}
			out[2][i] = cellRef{FaceD, i, d}
			out[3][i] = cellRef{FaceB, m - i, m - d}
		}
	}
	return out
}

// cycleStrips moves strip contents one step around the cycle: strip 0's
// cells end up on strip 1, strip 1 on strip 2, and so on.
func (c *Cube) cycleStrips(s [4][]cellRef) {
	saved := make([]facelet, len(s[3]))
	for i, ref := range s[3] {
		saved[i] = c.at(ref.f, ref.r, ref.c)
	}
	for k := 3; k > 0; k-- {
		dst, src := s[k], s[k-1]
		for i := range dst {
			c.set(dst[i].f, dst[i].r, dst[i].c, c.at(src[i].f, src[i].r, src[i].c))
		}
	}
	for i, ref := range s[0] {
		c.set(ref.f, ref.r, ref.c, saved[i])
	}
}

// rotateGridCW rotates a face's own grid 90 degrees clockwise in place.
func (c *Cube) rotateGridCW(f FaceID) {
	n := c.size
	old := make([]facelet, n*n)
	copy(old, c.cells[f])
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			c.cells[f][c.idx(r, col)] = old[c.idx(n-1-col, r)]
		}
	}
}

// rotateGridCCW rotates a face's own grid 90 degrees counter-clockwise.
func (c *Cube) rotateGridCCW(f FaceID) {
	c.rotateGridCW(f)
	c.rotateGridCW(f)
	c.rotateGridCW(f)
}

// rotateLayerCW turns one layer of face f clockwise by 90 degrees.
// depth 0 is the outer layer (the face itself rotates with it); depth
// size-1 is the opposite outer layer, whose face grid rotates the other
// way when viewed from its own side.
func (c *Cube) rotateLayerCW(f FaceID, depth int) {
	c.cycleStrips(c.layerStrips(f, depth))
	if depth == 0 {
		c.rotateGridCW(f)
	}
	if depth == c.size-1 {
		c.rotateGridCCW(f.Opposite())
	}
}

// RotateLayer turns the layer of face f at the given depth.
// turns counts quarter turns: positive is
// clockwise viewed from face f, negative counter-clockwise, magnitude 2 a
// half turn. depth outside [0, size-1] panics.
func (c *Cube) RotateLayer(f FaceID, depth int, turns int) {
	if depth < 0 || depth >= c.size {
		panic(fmt.Sprintf("nxcube: layer depth %d out of range for size %d", depth, c.size))
	}
	q := ((turns % 4) + 4) % 4
	for i := 0; i < q; i++ {
		c.rotateLayerCW(f, depth)
	}
	c.version++
}

// RotateFace turns the outer layer of face f.
func (c *Cube) RotateFace(f FaceID, turns int) {
	c.RotateLayer(f, 0, turns)
}

// RotateInner turns internal layer i of face f, where i addresses only
// the layers strictly between the two outer layers: i in [0, size-2).
// Addressing outside that range is a programmer error and panics; the
// model never silently clamps.
func (c *Cube) RotateInner(f FaceID, i int, turns int) {
	if i < 0 || i >= c.size-2 {
		panic(fmt.Sprintf("nxcube: internal layer index %d out of range [0, %d)", i, c.size-2))
	}
	c.RotateLayer(f, i+1, turns)
}

// RotateRange turns the contiguous layers lo..hi of face f together
// (a wide move). lo and hi are depths, inclusive.
func (c *Cube) RotateRange(f FaceID, lo, hi int, turns int) {
	if lo < 0 || hi >= c.size || lo > hi {
		panic(fmt.Sprintf("nxcube: layer range [%d, %d] out of range for size %d", lo, hi, c.size))
	}
	for d := lo; d <= hi; d++ {
		c.RotateLayer(f, d, turns)
	}
}

// RotateCube rotates the whole cube about the axis of face f, as if face
// f were turned with every layer attached. Whole-cube rotations do not
// count as moves.
func (c *Cube) RotateCube(f FaceID, turns int) {
	c.RotateRange(f, 0, c.size-1, turns)
}

// facePermCW reports where each face position's content ends up after a
// clockwise whole-cube rotation about face f: the returned array maps old
// position to new position.
func facePermCW(f FaceID) [6]FaceID {
	var p [6]FaceID
	for i := FaceID(0); i < 6; i++ {
		p[i] = i
	}
	cyc := sideCycle[f]
	for i := 0; i < 4; i++ {
		p[cyc[i]] = cyc[(i+1)%4]
	}
	return p
}

// facePerm is facePermCW extended to any turn count.
func facePerm(f FaceID, turns int) [6]FaceID {
	q := ((turns % 4) + 4) % 4
	var p [6]FaceID
	for i := FaceID(0); i < 6; i++ {
		p[i] = i
	}
	for k := 0; k < q; k++ {
		step := facePermCW(f)
		var next [6]FaceID
		for i := FaceID(0); i < 6; i++ {
			next[i] = step[p[i]]
		}
		p = next
	}
	return p
}

// Apply plays a single move on the cube and accounts for it in the move
// counter. Whole-cube rotations are free; every other move costs its
// quarter-turn magnitude.
func (c *Cube) Apply(m Move) {
	if m.Whole {
		c.RotateCube(m.Face, int(m.Turn))
		return
	}
	c.RotateRange(m.Face, m.Lo, m.Hi, int(m.Turn))
	if m.Turn == Double {
		c.moves += 2
	} else {
		c.moves++
	}
}

// ApplyMoves plays a sequence of moves.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}
