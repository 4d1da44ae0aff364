package nxcube

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{R, "R"},
		{RPrime, "R'"},
		{U2, "U2"},
		{Layer(FaceF, 1, CW), "2F"},
		{Layer(FaceL, 2, CCW), "3L'"},
		{Wide(FaceR, 1, CW), "Rw"},
		{Wide(FaceU, 2, Double), "3Uw2"},
		{Move{Face: FaceR, Lo: 1, Hi: 2, Turn: CW}, "2-3Rw"},
		{X, "x"},
		{YPrime, "y'"},
		{Z2, "z2"},
		{Whole(FaceD, CW), "y'"},
	}
	for _, tc := range cases {
		if got := tc.m.Notation(); got != tc.want {
			t.Errorf("Notation() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseMove_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"R", "R'", "R2", "U", "D'", "F2", "B", "L'",
		"2R", "3L'", "Rw", "Uw2", "3Rw", "2-3Rw'",
		"x", "x'", "y2", "z",
	} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if got := m.Notation(); got != s {
			t.Errorf("ParseMove(%q).Notation() = %q", s, got)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, s := range []string{"", "Q", "R3", "0R", "w", "2-1Rw", "x3"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		} else if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseMoves_FormatRoundTrip(t *testing.T) {
	const seq = "R U R' U' 3Fw2 x 2-4Lw'"
	alg, err := ParseMoves(seq)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(alg); got != seq {
		t.Errorf("FormatMoves = %q, want %q", got, seq)
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if U2.Inverse() != U2 {
		t.Error("U2 inverse should be U2")
	}
}

func TestAlgInverse_RestoresCube(t *testing.T) {
	c := New(5)
	alg, err := ParseMoves("R U2 3Fw' 2L D x B2 2-3Uw")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	alg.Play(c)
	if c.IsSolved() {
		t.Fatal("cube should not be solved mid-test")
	}
	alg.Inverse().Play(c)
	if !c.IsSolved() {
		t.Error("alg followed by its inverse must restore the cube")
	}
}

func TestAlgRepeat_OrderOfSexyMove(t *testing.T) {
	c := New(4)
	SexyMove.Repeat(6).Play(c)
	if !c.IsSolved() {
		t.Error("sexy move has order 6")
	}
}

func TestAlgThen(t *testing.T) {
	a := Alg{R, U}
	b := a.Then(RPrime, UPrime)
	if len(b) != 4 {
		t.Fatalf("len = %d, want 4", len(b))
	}
	if len(a) != 2 {
		t.Error("Then must not mutate the receiver")
	}
	c := New(3)
	b.Play(c)
	c2 := New(3)
	SexyMove.Play(c2)
	if c.String() != c2.String() {
		t.Error("R U then R' U' should equal the sexy move")
	}
}
