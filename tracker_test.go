package nxcube

import (
	"errors"
	"testing"
)

func TestTrackEdgeWing_IdentityLocate(t *testing.T) {
	c := New(5)
	tr := NewPieceTracker(c)
	locate, release := tr.TrackEdgeWing(EdgeUF, 1)
	defer release()
	pos, w, err := locate()
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if pos != EdgeUF || w != 1 {
		t.Errorf("locate = (%s, %d), want (UF, 1)", pos, w)
	}
}

func TestTrackEdgeWing_FollowsUTurn(t *testing.T) {
	c := New(5)
	tr := NewPieceTracker(c)
	locate, release := tr.TrackEdgeWing(EdgeUF, 0)
	defer release()
	c.Apply(U)
	pos, w, err := locate()
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if pos != EdgeUL || w != 0 {
		t.Errorf("after U, locate = (%s, %d), want (UL, 0)", pos, w)
	}
}

func TestTrackEdgeWing_SurvivesScramble(t *testing.T) {
	c := New(6)
	tr := NewPieceTracker(c)
	locate, release := tr.TrackEdgeWing(EdgeFR, 2)
	defer release()
	Scramble(c, 42, 60)
	if _, _, err := locate(); err != nil {
		t.Fatalf("marker lost during scramble: %v", err)
	}
}

func TestTrackEdgeWing_ReleaseClearsMarker(t *testing.T) {
	c := New(4)
	tr := NewPieceTracker(c)
	locate, release := tr.TrackEdgeWing(EdgeUF, 0)
	release()
	if _, _, err := locate(); !errors.Is(err, ErrMarkerNotFound) {
		t.Errorf("locate after release = %v, want ErrMarkerNotFound", err)
	}
	// The slot is free again.
	_, release2 := tr.TrackEdgeWing(EdgeUF, 0)
	release2()
}

func TestTrackEdgeWing_OccupiedSlotPanics(t *testing.T) {
	c := New(4)
	tr := NewPieceTracker(c)
	_, release := tr.TrackEdgeWing(EdgeDB, 1)
	defer release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double-tracking one wing")
		}
	}()
	tr.TrackEdgeWing(EdgeDB, 1)
}

func TestTrackEdgeWing_DoesNotDisturbColors(t *testing.T) {
	c := New(4)
	tr := NewPieceTracker(c)
	_, release := tr.TrackEdgeWing(EdgeUR, 0)
	if !c.IsSolved() {
		t.Error("tracking must not change facelet colors")
	}
	release()
	if !c.IsSolved() {
		t.Error("releasing must not change facelet colors")
	}
}

func TestFaceColorTracker_OddCubeFollowsCenters(t *testing.T) {
	c := New(5)
	Scramble(c, 3, 40)
	colors := NewFaceColorTracker(c)
	mid := c.Size() / 2
	seen := map[Color]bool{}
	for f := FaceID(0); f < 6; f++ {
		want := c.ColorAt(f, mid, mid)
		if got := colors.RequiredColor(f); got != want {
			t.Errorf("face %s: required %s, want fixed center %s", f, got, want)
		}
		seen[want] = true
	}
	if len(seen) != 6 {
		t.Error("required assignment must cover all six colors")
	}
}

func TestFaceColorTracker_EvenCubeDefaultsToSolvedScheme(t *testing.T) {
	c := New(4)
	Scramble(c, 11, 40)
	colors := NewFaceColorTracker(c)
	for f := FaceID(0); f < 6; f++ {
		if got := colors.RequiredColor(f); got != SolvedColor(f) {
			t.Errorf("face %s: required %s, want %s", f, got, SolvedColor(f))
		}
	}
}

func TestFaceColorTracker_EvenCubeHonorsFormedOrientation(t *testing.T) {
	c := New(4)
	c.RotateCube(FaceU, 1)
	colors := NewFaceColorTracker(c)
	if got := colors.RequiredColor(FaceF); got != Red {
		t.Errorf("F required %s, want R (formed orientation after y)", got)
	}
	if got := colors.RequiredColor(FaceU); got != White {
		t.Errorf("U required %s, want W", got)
	}
}

func TestFaceColorTracker_Rebase(t *testing.T) {
	c := New(5)
	colors := NewFaceColorTracker(c)
	c.RotateCube(FaceU, 1)
	colors.Rebase(FaceU, 1)
	mid := c.Size() / 2
	for f := FaceID(0); f < 6; f++ {
		if got, want := colors.RequiredColor(f), c.ColorAt(f, mid, mid); got != want {
			t.Errorf("face %s after rebase: required %s, want %s", f, got, want)
		}
	}
}

func TestFaceColorTracker_RequiredPair(t *testing.T) {
	colors := NewFaceColorTracker(New(4))
	if got := colors.RequiredPair(EdgeUF); got != (ColorPair{A: White, B: Green}) {
		t.Errorf("UF pair = %v", got)
	}
	if got := colors.RequiredPair(EdgeBL); got != (ColorPair{A: Blue, B: Orange}) {
		t.Errorf("BL pair = %v", got)
	}
}

func TestFaceColorTracker_FaceFor(t *testing.T) {
	colors := NewFaceColorTracker(New(4))
	for f := FaceID(0); f < 6; f++ {
		if got := colors.FaceFor(SolvedColor(f)); got != f {
			t.Errorf("FaceFor(%s) = %s, want %s", SolvedColor(f), got, f)
		}
	}
}

func TestDeduceLastTwo_AllOrientations(t *testing.T) {
	colors := NewFaceColorTracker(New(4))
	schemes := schemeOrientations()
	if len(schemes) != 24 {
		t.Fatalf("expected 24 scheme orientations, got %d", len(schemes))
	}
	for _, scheme := range schemes {
		partial := map[FaceID]Color{
			FaceU: scheme[FaceU],
			FaceD: scheme[FaceD],
			FaceF: scheme[FaceF],
			FaceB: scheme[FaceB],
		}
		rest, err := colors.DeduceLastTwo(partial)
		if err != nil {
			t.Fatalf("DeduceLastTwo: %v", err)
		}
		if rest[FaceR] != scheme[FaceR] || rest[FaceL] != scheme[FaceL] {
			t.Errorf("deduced R=%s L=%s, want R=%s L=%s",
				rest[FaceR], rest[FaceL], scheme[FaceR], scheme[FaceL])
		}
	}
}

func TestDeduceLastTwo_RejectsImpossibleAssignment(t *testing.T) {
	colors := NewFaceColorTracker(New(4))
	// F and B are opposite faces, so no orientation puts Green and Red
	// on them together.
	partial := map[FaceID]Color{
		FaceU: White,
		FaceD: Yellow,
		FaceF: Green,
		FaceB: Red,
	}
	if _, err := colors.DeduceLastTwo(partial); !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}

func TestDeduceLastTwo_RejectsWrongCount(t *testing.T) {
	colors := NewFaceColorTracker(New(4))
	if _, err := colors.DeduceLastTwo(map[FaceID]Color{FaceU: White}); !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}
