package nxcube

import "fmt"

// PieceTracker re-locates physical pieces after arbitrary rotations by
// stamping a marker token into one facelet's marker slot. Tokens come
// from the cube's own counter, so markers never collide within one
// cube's lifetime and no state leaks across cubes.
type PieceTracker struct {
	cube *Cube
}

// NewPieceTracker creates a tracker bound to one cube.
func NewPieceTracker(c *Cube) *PieceTracker {
	return &PieceTracker{cube: c}
}

// TrackEdgeWing opens a tracking scope on wing i of an edge. It returns a
// locate function that finds the wing wherever rotations have carried it,
// and a release function that removes the marker. Callers must defer
// release so the marker is cleared on every exit path; a leaked marker
// corrupts future searches.
//
// Between track and release, any number of rotations may be applied
// through any component.
func (t *PieceTracker) TrackEdgeWing(e EdgePos, i int) (locate func() (EdgePos, int, error), release func()) {
	ra, _ := t.cube.wingRefs(e, i)
	cell := t.cube.at(ra.f, ra.r, ra.c)
	if cell.mark != 0 {
		panic(fmt.Sprintf("nxcube: marker slot already occupied on %s wing %d", e, i))
	}
	token := t.cube.nextMarker()
	cell.mark = token
	t.cube.set(ra.f, ra.r, ra.c, cell)
	t.cube.version++

	locate = func() (EdgePos, int, error) {
		for pos := EdgePos(0); pos < edgeCount; pos++ {
			for w := 0; w < t.cube.WingCount(); w++ {
				pa, pb := t.cube.wingRefs(pos, w)
				if t.cube.at(pa.f, pa.r, pa.c).mark == token || t.cube.at(pb.f, pb.r, pb.c).mark == token {
					return pos, w, nil
				}
			}
		}
		return 0, 0, fmt.Errorf("%w: token %d", ErrMarkerNotFound, token)
	}

	release = func() {
		for f := FaceID(0); f < 6; f++ {
			for idx := range t.cube.cells[f] {
				if t.cube.cells[f][idx].mark == token {
					t.cube.cells[f][idx].mark = 0
					t.cube.version++
					return
				}
			}
		}
	}
	return locate, release
}

// FaceColorTracker resolves which face position must end up carrying each
// color. Positions drift as the engines rotate the whole cube, so every
// whole-cube rotation is reported through Rebase.
//
// On odd cubes the fixed center facelet of each face is authoritative and
// assignments are derived by search. Even cubes have no fixed centers;
// the solved scheme anchors the first four faces and the last two are
// deduced from the BOY adjacency constraint rather than searched.
type FaceColorTracker struct {
	cube     *Cube
	required [6]Color
}

// NewFaceColorTracker derives the required color of every face position
// from the cube's current state.
func NewFaceColorTracker(c *Cube) *FaceColorTracker {
	t := &FaceColorTracker{cube: c}
	if c.Size()%2 == 1 {
		mid := c.Size() / 2
		for f := FaceID(0); f < 6; f++ {
			t.required[f] = c.ColorAt(f, mid, mid)
		}
		return t
	}
	// Even cubes have no fixed anchor. When the centers are already
	// formed in some legal orientation, honor that orientation so a
	// second reduction run has nothing to do; otherwise fall back to
	// the solved scheme, which is always a reachable assignment.
	if c.CentersUniform() && c.Size() > 3 {
		var formed [6]Color
		for f := FaceID(0); f < 6; f++ {
			formed[f] = c.ColorAt(f, 1, 1)
		}
		for _, scheme := range schemeOrientations() {
			if scheme == formed {
				t.required = formed
				return t
			}
		}
	}
	for f := FaceID(0); f < 6; f++ {
		t.required[f] = SolvedColor(f)
	}
	return t
}

// Rebase adjusts the tracked assignments after a whole-cube rotation
// about face f.
func (t *FaceColorTracker) Rebase(f FaceID, turns int) {
	perm := facePerm(f, turns)
	var next [6]Color
	for old := FaceID(0); old < 6; old++ {
		next[perm[old]] = t.required[old]
	}
	t.required = next
}

// RequiredColor returns the color face position f must carry once solved.
func (t *FaceColorTracker) RequiredColor(f FaceID) Color {
	return t.required[f]
}

// RequiredPair returns the position_id of an edge location: the ordered
// color pair its wings must show, primary face first.
func (t *FaceColorTracker) RequiredPair(e EdgePos) ColorPair {
	fa, fb := e.Faces()
	return ColorPair{A: t.required[fa], B: t.required[fb]}
}

// FaceFor locates the face position that must carry the given color.
func (t *FaceColorTracker) FaceFor(col Color) FaceID {
	for f := FaceID(0); f < 6; f++ {
		if t.required[f] == col {
			return f
		}
	}
	panic(fmt.Sprintf("nxcube: no face requires color %s", col))
}

// schemeOrientations enumerates the 24 legal orientations of the solved
// color scheme as position-to-color assignments.
func schemeOrientations() [][6]Color {
	base := [6]Color{}
	for f := FaceID(0); f < 6; f++ {
		base[f] = SolvedColor(f)
	}
	seen := map[[6]Color]bool{base: true}
	queue := [][6]Color{base}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, axis := range []FaceID{FaceU, FaceF, FaceR} {
			perm := facePermCW(axis)
			var next [6]Color
			for old := FaceID(0); old < 6; old++ {
				next[perm[old]] = cur[old]
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	out := make([][6]Color, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}

// DeduceLastTwo completes a partial face-color assignment covering four
// faces. The adjacency scheme leaves two candidate completions for the
// remaining pair of faces, a single binary choice; only one of the two
// candidates is an orientation of the cube's original scheme, and that
// one is returned. A partial assignment matching no orientation, or more
// than one, cannot satisfy BOY and is fatal.
func (t *FaceColorTracker) DeduceLastTwo(partial map[FaceID]Color) (map[FaceID]Color, error) {
	if len(partial) != 4 {
		return nil, fmt.Errorf("%w: BOY deduction needs exactly 4 assigned faces, got %d", ErrInternal, len(partial))
	}
	var match [6]Color
	found := 0
	for _, scheme := range schemeOrientations() {
		ok := true
		for f, col := range partial {
			if scheme[f] != col {
				ok = false
				break
			}
		}
		if ok {
			match = scheme
			found++
		}
	}
	if found != 1 {
		return nil, fmt.Errorf("%w: %d scheme orientations satisfy the partial assignment", ErrInternal, found)
	}
	out := make(map[FaceID]Color, 2)
	for f := FaceID(0); f < 6; f++ {
		if _, ok := partial[f]; !ok {
			out[f] = match[f]
		}
	}
	return out, nil
}
