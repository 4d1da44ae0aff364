package nxcube

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single rotation: a face, an inclusive depth range of
// the layers turned with it, and the turn amount. Lo == Hi == 0 is a plain
// outer turn. Whole marks a whole-cube rotation, which ignores the range.
type Move struct {
	Face  FaceID
	Lo    int
	Hi    int
	Turn  Turn
	Whole bool
}

// Outer builds an outer-layer move.
func Outer(f FaceID, t Turn) Move {
	return Move{Face: f, Turn: t}
}

// Layer builds a single-layer move at the given depth.
func Layer(f FaceID, depth int, t Turn) Move {
	return Move{Face: f, Lo: depth, Hi: depth, Turn: t}
}

// Wide builds a wide move covering depths 0..hi.
func Wide(f FaceID, hi int, t Turn) Move {
	return Move{Face: f, Hi: hi, Turn: t}
}

// Whole builds a whole-cube rotation about the axis of face f.
func Whole(f FaceID, t Turn) Move {
	return Move{Face: f, Turn: t, Whole: true}
}

func turnSuffix(t Turn) string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Notation returns the notation string for this move.
// Examples: R, R', R2, 2R (second layer), Rw (two outer layers), 3Rw,
// 2-3Rw (inner range), x, y, z (whole-cube about R, U, F).
func (m Move) Notation() string {
	if m.Whole {
		base, t := wholeBase(m.Face, m.Turn)
		return base + turnSuffix(t)
	}
	suffix := turnSuffix(m.Turn)
	face := m.Face.String()
	switch {
	case m.Lo == 0 && m.Hi == 0:
		return face + suffix
	case m.Lo == m.Hi:
		return fmt.Sprintf("%d%s%s", m.Lo+1, face, suffix)
	case m.Lo == 0 && m.Hi == 1:
		return face + "w" + suffix
	case m.Lo == 0:
		return fmt.Sprintf("%d%sw%s", m.Hi+1, face, suffix)
	default:
		return fmt.Sprintf("%d-%d%sw%s", m.Lo+1, m.Hi+1, face, suffix)
	}
}

// wholeBase maps a whole-cube rotation to its axis letter. Rotations about
// D, L and B are expressed on the opposite axis with the turn inverted.
func wholeBase(f FaceID, t Turn) (string, Turn) {
	switch f {
	case FaceR:
		return "x", t
	case FaceU:
		return "y", t
	case FaceF:
		return "z", t
	case FaceL:
		return "x", t.invert()
	case FaceD:
		return "y", t.invert()
	case FaceB:
		return "z", t.invert()
	default:
		return "?", t
	}
}

func (t Turn) invert() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return t
	}
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = m.Turn.invert()
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation string into a Move.
// Accepted forms: R, R', R2, 2R, Rw, 3Rw', 2-3Rw2, x, y', z2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, ErrInvalidNotation
	}

	// Whole-cube rotations.
	switch s[0] {
	case 'x', 'y', 'z':
		f := map[byte]FaceID{'x': FaceR, 'y': FaceU, 'z': FaceF}[s[0]]
		t, err := parseTurnSuffix(s[1:])
		if err != nil {
			return Move{}, err
		}
		return Whole(f, t), nil
	}

	lo, hi := 0, 0
	rest := s

	// Optional leading layer number or range, e.g. "2" or "2-3".
	numEnd := 0
	for numEnd < len(rest) && (rest[numEnd] >= '0' && rest[numEnd] <= '9' || rest[numEnd] == '-') {
		numEnd++
	}
	var layerSpec string
	if numEnd > 0 {
		layerSpec = rest[:numEnd]
		rest = rest[numEnd:]
	}

	if rest == "" {
		return Move{}, ErrInvalidNotation
	}
	var face FaceID
	switch rest[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}
	rest = rest[1:]

	wide := false
	if strings.HasPrefix(rest, "w") {
		wide = true
		rest = rest[1:]
	}

	switch {
	case layerSpec == "" && wide:
		lo, hi = 0, 1
	case layerSpec == "":
		lo, hi = 0, 0
	case strings.Contains(layerSpec, "-"):
		if !wide {
			return Move{}, ErrInvalidNotation
		}
		parts := strings.SplitN(layerSpec, "-", 2)
		a, err1 := strconv.Atoi(parts[0])
		b, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || a < 1 || b < a {
			return Move{}, ErrInvalidNotation
		}
		lo, hi = a-1, b-1
	default:
		v, err := strconv.Atoi(layerSpec)
		if err != nil || v < 1 {
			return Move{}, ErrInvalidNotation
		}
		if wide {
			lo, hi = 0, v-1
		} else {
			lo, hi = v-1, v-1
		}
	}

	t, err := parseTurnSuffix(rest)
	if err != nil {
		return Move{}, err
	}
	return Move{Face: face, Lo: lo, Hi: hi, Turn: t}, nil
}

func parseTurnSuffix(s string) (Turn, error) {
	switch s {
	case "":
		return CW, nil
	case "'", "`":
		return CCW, nil
	case "2", "2'", "2`":
		return Double, nil
	default:
		return CW, ErrInvalidNotation
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) (Alg, error) {
	parts := strings.Fields(s)
	moves := make(Alg, 0, len(parts))
	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Alg is a playable move sequence. The engines only ever build, compose,
// invert and play Algs; they never inspect a cube through one.
type Alg []Move

// Play applies the sequence to the cube in order.
func (a Alg) Play(c *Cube) {
	for _, m := range a {
		c.Apply(m)
	}
}

// Inverse returns the sequence that undoes this one: the reversed list of
// inverted moves.
func (a Alg) Inverse() Alg {
	inv := make(Alg, len(a))
	for i, m := range a {
		inv[len(a)-1-i] = m.Inverse()
	}
	return inv
}

// Repeat returns the sequence concatenated with itself n times.
func (a Alg) Repeat(n int) Alg {
	out := make(Alg, 0, len(a)*n)
	for i := 0; i < n; i++ {
		out = append(out, a...)
	}
	return out
}

// Then returns a new sequence with more moves appended.
func (a Alg) Then(more ...Move) Alg {
	out := make(Alg, 0, len(a)+len(more))
	out = append(out, a...)
	out = append(out, more...)
	return out
}

// Concat joins sequences.
func Concat(algs ...Alg) Alg {
	var out Alg
	for _, a := range algs {
		out = append(out, a...)
	}
	return out
}

// String returns the space-separated notation of the sequence.
func (a Alg) String() string {
	return FormatMoves(a)
}
