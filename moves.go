package nxcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyMoves([]nxcube.Move{nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime})
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180

	// Whole-cube rotations
	X      = Move{Face: FaceR, Turn: CW, Whole: true}     // Rotate cube on R axis
	XPrime = Move{Face: FaceR, Turn: CCW, Whole: true}    // Rotate cube on R axis, reversed
	X2     = Move{Face: FaceR, Turn: Double, Whole: true} // Rotate cube on R axis, 180
	Y      = Move{Face: FaceU, Turn: CW, Whole: true}     // Rotate cube on U axis
	YPrime = Move{Face: FaceU, Turn: CCW, Whole: true}    // Rotate cube on U axis, reversed
	Y2     = Move{Face: FaceU, Turn: Double, Whole: true} // Rotate cube on U axis, 180
	Z      = Move{Face: FaceF, Turn: CW, Whole: true}     // Rotate cube on F axis
	ZPrime = Move{Face: FaceF, Turn: CCW, Whole: true}    // Rotate cube on F axis, reversed
	Z2     = Move{Face: FaceF, Turn: Double, Whole: true} // Rotate cube on F axis, 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = Alg{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = Alg{U, R, UPrime, RPrime}

// wingFlip is the five-move pattern the edge engine conjugates with slice
// moves: it flips the front-right edge in place while restoring the
// front-left, back-right and back-left edges exactly.
var wingFlip = Alg{R, FPrime, U, RPrime, F}
