package nxcube

// EdgePos identifies one of the twelve structural edge locations by the
// two faces it touches. An edge location never moves; only the colors on
// its wing slices change.
type EdgePos int

const (
	EdgeUF EdgePos = iota
	EdgeUR
	EdgeUB
	EdgeUL
	EdgeFR
	EdgeFL
	EdgeBR
	EdgeBL
	EdgeDF
	EdgeDR
	EdgeDB
	EdgeDL
	edgeCount
)

// edgeFaces lists the two faces of each edge location. The first face is
// the primary one: wing colors are reported as (primary, secondary).
var edgeFaces = [edgeCount][2]FaceID{
	EdgeUF: {FaceU, FaceF},
	EdgeUR: {FaceU, FaceR},
	EdgeUB: {FaceU, FaceB},
	EdgeUL: {FaceU, FaceL},
	EdgeFR: {FaceF, FaceR},
	EdgeFL: {FaceF, FaceL},
	EdgeBR: {FaceB, FaceR},
	EdgeBL: {FaceB, FaceL},
	EdgeDF: {FaceD, FaceF},
	EdgeDR: {FaceD, FaceR},
	EdgeDB: {FaceD, FaceB},
	EdgeDL: {FaceD, FaceL},
}

func (e EdgePos) String() string {
	f := edgeFaces[e]
	return f[0].String() + f[1].String()
}

// Faces returns the two faces this edge touches, primary first.
func (e EdgePos) Faces() (FaceID, FaceID) {
	return edgeFaces[e][0], edgeFaces[e][1]
}

// edgePosFor finds the edge location touching the given unordered face
// pair, or -1 when the faces are not adjacent.
func edgePosFor(a, b FaceID) EdgePos {
	for e := EdgePos(0); e < edgeCount; e++ {
		fa, fb := edgeFaces[e][0], edgeFaces[e][1]
		if (fa == a && fb == b) || (fa == b && fb == a) {
			return e
		}
	}
	return -1
}

// mapEdge returns the edge location an edge's material occupies after a
// whole-cube rotation described by the old-to-new face permutation.
func mapEdge(e EdgePos, perm [6]FaceID) EdgePos {
	fa, fb := edgeFaces[e][0], edgeFaces[e][1]
	return edgePosFor(perm[fa], perm[fb])
}

// wingRefs returns the two facelet addresses of wing i of an edge,
// primary face first. Wings are indexed 0..size-3 along the edge; wing i
// and wing size-3-i are the two symmetric ends of the same ring.
func (c *Cube) wingRefs(e EdgePos, i int) (cellRef, cellRef) {
	m := c.size - 1
	k := i + 1
	switch e {
	case EdgeUF:
		return cellRef{FaceU, m, k}, cellRef{FaceF, 0, k}
	case EdgeUR:
		return cellRef{FaceU, k, m}, cellRef{FaceR, 0, m - k}
	case EdgeUB:
		return cellRef{FaceU, 0, k}, cellRef{FaceB, 0, m - k}
	case EdgeUL:
		return cellRef{FaceU, k, 0}, cellRef{FaceL, 0, k}
	case EdgeFR:
		return cellRef{FaceF, k, m}, cellRef{FaceR, k, 0}
	case EdgeFL:
		return cellRef{FaceF, k, 0}, cellRef{FaceL, k, m}
	case EdgeBR:
		return cellRef{FaceB, k, 0}, cellRef{FaceR, k, m}
	case EdgeBL:
		return cellRef{FaceB, k, m}, cellRef{FaceL, k, 0}
	case EdgeDF:
		return cellRef{FaceD, 0, k}, cellRef{FaceF, m, k}
	case EdgeDR:
		return cellRef{FaceD, k, m}, cellRef{FaceR, m, k}
	case EdgeDB:
		return cellRef{FaceD, m, k}, cellRef{FaceB, m, m - k}
	case EdgeDL:
		return cellRef{FaceD, k, 0}, cellRef{FaceL, m, m - k}
	default:
		panic("nxcube: invalid edge position")
	}
}

// ColorPair is the ordered two-color identity of an edge wing: the color
// on the edge's primary face, then the secondary.
type ColorPair struct {
	A Color
	B Color
}

// Flip returns the pair with its two colors exchanged.
func (p ColorPair) Flip() ColorPair {
	return ColorPair{A: p.B, B: p.A}
}

// SameColors reports whether two pairs carry the same colors in either
// order.
func (p ColorPair) SameColors(q ColorPair) bool {
	return p == q || p == q.Flip()
}

// Canonical returns the pair with its colors in ascending order, so
// both orientations of one edge map to the same key.
func (p ColorPair) Canonical() ColorPair {
	if p.B < p.A {
		return p.Flip()
	}
	return p
}

func (p ColorPair) String() string {
	return p.A.String() + p.B.String()
}

// WingCount returns the number of wing slices per edge.
func (c *Cube) WingCount() int {
	return c.size - 2
}

// WingColors returns the colors wing i of an edge currently shows,
// primary face first. Results are cached per cube version.
func (c *Cube) WingColors(e EdgePos, i int) ColorPair {
	c.ensureEdgeCache()
	return c.ecache.pairs[e][i]
}

// EdgeConsistent reports whether every wing of the edge shows the same
// ordered color pair, i.e. the edge behaves as a single 3x3 edge piece.
func (c *Cube) EdgeConsistent(e EdgePos) bool {
	c.ensureEdgeCache()
	return c.ecache.consistent[e]
}

// EdgesConsistent reports whether all twelve edges are internally
// consistent.
func (c *Cube) EdgesConsistent() bool {
	for e := EdgePos(0); e < edgeCount; e++ {
		if !c.EdgeConsistent(e) {
			return false
		}
	}
	return true
}

// FindEdgeWing returns the first edge wing satisfying the predicate,
// scanning edges in declaration order and wings from index 0.
func (c *Cube) FindEdgeWing(pred func(e EdgePos, i int, colors ColorPair) bool) (EdgePos, int, bool) {
	for e := EdgePos(0); e < edgeCount; e++ {
		for i := 0; i < c.WingCount(); i++ {
			if pred(e, i, c.WingColors(e, i)) {
				return e, i, true
			}
		}
	}
	return 0, 0, false
}

// edgeCache holds lazily derived edge identities, valid for one cube
// version.
type edgeCache struct {
	version    uint64
	valid      bool
	pairs      [edgeCount][]ColorPair
	consistent [edgeCount]bool
}

func (c *Cube) ensureEdgeCache() {
	if c.ecache.valid && c.ecache.version == c.version {
		return
	}
	w := c.WingCount()
	for e := EdgePos(0); e < edgeCount; e++ {
		if c.ecache.pairs[e] == nil {
			c.ecache.pairs[e] = make([]ColorPair, w)
		}
		cons := true
		for i := 0; i < w; i++ {
			ra, rb := c.wingRefs(e, i)
			p := ColorPair{A: c.at(ra.f, ra.r, ra.c).color, B: c.at(rb.f, rb.r, rb.c).color}
			c.ecache.pairs[e][i] = p
			if p != c.ecache.pairs[e][0] {
				cons = false
			}
		}
		c.ecache.consistent[e] = cons
	}
	c.ecache.version = c.version
	c.ecache.valid = true
}

// CenterCount returns how many interior cells of face f currently show
// the given color. Interior cells are the (size-2) x (size-2) grid away
// from every border.
func (c *Cube) CenterCount(f FaceID, col Color) int {
	n := c.size
	count := 0
	for r := 1; r < n-1; r++ {
		for cc := 1; cc < n-1; cc++ {
			if c.ColorAt(f, r, cc) == col {
				count++
			}
		}
	}
	return count
}

// CenterSize returns the number of interior cells per face.
func (c *Cube) CenterSize() int {
	w := c.size - 2
	return w * w
}

// CenterUniform reports whether every interior cell of face f shows one
// single color.
func (c *Cube) CenterUniform(f FaceID) bool {
	n := c.size
	if n <= 3 {
		return true
	}
	first := c.ColorAt(f, 1, 1)
	return c.CenterCount(f, first) == c.CenterSize()
}

// CentersUniform reports whether all six faces have uniform centers.
func (c *Cube) CentersUniform() bool {
	for f := FaceID(0); f < 6; f++ {
		if !c.CenterUniform(f) {
			return false
		}
	}
	return true
}

// IsReduced reports whether the cube is reduced to a 3x3: every face's
// interior is a single color and every edge's wings agree. Corners need
// no reduction; they are single pieces at every size.
func (c *Cube) IsReduced() bool {
	return c.CentersUniform() && c.EdgesConsistent()
}

// cornerRefs addresses the three facelets of the eight corners.
var cornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c *Cube) cornerRefs(i int) [3]cellRef {
	m := c.size - 1
	switch i {
	case 0: // URF
		return [3]cellRef{{FaceU, m, m}, {FaceR, 0, 0}, {FaceF, 0, m}}
	case 1: // UFL
		return [3]cellRef{{FaceU, m, 0}, {FaceF, 0, 0}, {FaceL, 0, m}}
	case 2: // ULB
		return [3]cellRef{{FaceU, 0, 0}, {FaceL, 0, 0}, {FaceB, 0, m}}
	case 3: // UBR
		return [3]cellRef{{FaceU, 0, m}, {FaceB, 0, 0}, {FaceR, 0, m}}
	case 4: // DFR
		return [3]cellRef{{FaceD, 0, m}, {FaceF, m, m}, {FaceR, m, 0}}
	case 5: // DLF
		return [3]cellRef{{FaceD, 0, 0}, {FaceL, m, m}, {FaceF, m, 0}}
	case 6: // DBL
		return [3]cellRef{{FaceD, m, 0}, {FaceB, m, m}, {FaceL, m, 0}}
	case 7: // DRB
		return [3]cellRef{{FaceD, m, m}, {FaceR, m, m}, {FaceB, m, 0}}
	default:
		panic("nxcube: invalid corner index")
	}
}

// CornerColors returns the three colors corner i currently shows, in the
// reference order named by CornerName.
func (c *Cube) CornerColors(i int) [3]Color {
	refs := c.cornerRefs(i)
	var out [3]Color
	for j, ref := range refs {
		out[j] = c.at(ref.f, ref.r, ref.c).color
	}
	return out
}

// CornerName returns the conventional name of corner i, e.g. "URF".
func CornerName(i int) string {
	return cornerNames[i]
}
