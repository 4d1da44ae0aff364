package nxcube

import "strings"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// FaceID identifies one of the six cube faces by position.
type FaceID int

const (
	FaceU FaceID = 0 // Up
	FaceD FaceID = 1 // Down
	FaceF FaceID = 2 // Front
	FaceB FaceID = 3 // Back
	FaceR FaceID = 4 // Right
	FaceL FaceID = 5 // Left
)

func (f FaceID) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f FaceID) Opposite() FaceID {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		return f
	}
}

// SolvedColor returns the color a face position carries in the standard
// orientation: White on top, Green in front.
func SolvedColor(f FaceID) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// facelet is one colored unit on one face. The marker slot is a
// fixed-capacity side channel used by piece tracking; rotations move it
// together with the color so a marked piece can be re-found later.
type facelet struct {
	color Color
	mark  uint64
}

// Cube represents an NxN twisty cube, N >= 2.
// Each face is an NxN row-major grid:
//
//	(0,0) (0,1) ... (0,N-1)
//	(1,0)  ...
//	(N-1,0)     ... (N-1,N-1)
//
// viewed with the face toward you and the cube in the unfolded layout of
// String: U above F, the L F R B strip in the middle, D below F.
//
// The structural topology is fixed at construction. Rotations only permute
// the (color, marker) contents of the cells; they never reassign which cell
// belongs to which face.
type Cube struct {
	size  int
	cells [6][]facelet

	// version increments on every mutation; derived-identity caches
	// compare against it instead of being invalidated cell by cell.
	version uint64

	// moves counts quarter turns applied through Apply/Play.
	// Whole-cube rotations are free.
	moves int

	// markerSeq issues process-unique-enough marker tokens scoped to
	// this cube's lifetime.
	markerSeq uint64

	// ecache holds lazily derived edge identities, keyed by version.
	ecache edgeCache
}

// New creates a solved cube of edge length n.
// n must be at least 2; anything smaller panics.
func New(n int) *Cube {
	if n < 2 {
		panic("nxcube: cube size must be at least 2")
	}
	c := &Cube{size: n}
	for f := FaceID(0); f < 6; f++ {
		c.cells[f] = make([]facelet, n*n)
		col := SolvedColor(f)
		for i := range c.cells[f] {
			c.cells[f][i].color = col
		}
	}
	return c
}

// Size returns the cube's edge length.
func (c *Cube) Size() int {
	return c.size
}

// MoveCount returns the number of quarter turns applied so far.
func (c *Cube) MoveCount() int {
	return c.moves
}

// ResetMoveCount zeroes the quarter-turn counter.
func (c *Cube) ResetMoveCount() {
	c.moves = 0
}

// Version returns the mutation counter. It changes whenever any facelet
// color or marker may have moved.
func (c *Cube) Version() uint64 {
	return c.version
}

func (c *Cube) idx(row, col int) int {
	return row*c.size + col
}

// ColorAt returns the color at (row, col) on face f.
func (c *Cube) ColorAt(f FaceID, row, col int) Color {
	return c.cells[f][c.idx(row, col)].color
}

func (c *Cube) at(f FaceID, row, col int) facelet {
	return c.cells[f][c.idx(row, col)]
}

func (c *Cube) set(f FaceID, row, col int, v facelet) {
	c.cells[f][c.idx(row, col)] = v
}

// nextMarker returns a fresh marker token. Tokens are never reused within
// one cube's lifetime.
func (c *Cube) nextMarker() uint64 {
	c.markerSeq++
	return c.markerSeq
}

// Clone creates a deep copy of the cube, including marker state.
// The clone's move counter starts from the original's current value.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		size:      c.size,
		version:   c.version,
		moves:     c.moves,
		markerSeq: c.markerSeq,
	}
	for f := 0; f < 6; f++ {
		clone.cells[f] = make([]facelet, len(c.cells[f]))
		copy(clone.cells[f], c.cells[f])
	}
	return clone
}

// IsSolved reports whether every face is uniform in the color some face
// position requires, consistent with a legal orientation of the cube.
func (c *Cube) IsSolved() bool {
	var seen [6]bool
	for f := FaceID(0); f < 6; f++ {
		first := c.cells[f][0].color
		for _, cell := range c.cells[f] {
			if cell.color != first {
				return false
			}
		}
		if seen[first] {
			return false
		}
		seen[first] = true
	}
	return true
}

// String returns a text net of the cube: U on top, the L F R B strip in
// the middle, D at the bottom.
func (c *Cube) String() string {
	var b strings.Builder
	n := c.size
	indent := strings.Repeat("  ", n)

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		for col := 0; col < n; col++ {
			b.WriteString(c.ColorAt(FaceU, row, col).String() + " ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, f := range []FaceID{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < n; col++ {
				b.WriteString(c.ColorAt(f, row, col).String() + " ")
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		for col := 0; col < n; col++ {
			b.WriteString(c.ColorAt(FaceD, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
