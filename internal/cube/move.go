package cube

// Move is one of the 18 quarter- and half-turn moves, three per face,
// encoded as face*3+k with k in {0,1,2} for {clockwise, 180, counter-clockwise}.
type Move int8

const (
	numMoves = 18

	// NumMoves is the size of the closed move enum (18: three per face).
	NumMoves = numMoves

	// MoveNull is the identity move: no-op, produced by composing a move
	// with its own inverse.
	MoveNull Move = -1
)

// AllMoves returns the 18 moves in enum order, for generators that need to
// try every move from a state (table generation, BFS expansion).
func AllMoves() []Move {
	out := make([]Move, numMoves)
	for m := Move(0); m < numMoves; m++ {
		out[m] = m
	}
	return out
}

// quarterTurnsOf returns the number of clockwise quarter turns (1, 2 or 3)
// that a move represents.
func quarterTurnsOf(m Move) int {
	return int(m%3) + 1
}

// FaceOfMove returns the face a move acts on.
func FaceOfMove(m Move) Face {
	if m == MoveNull {
		return FaceNull
	}
	return Face(m / 3)
}

// MoveOf builds the move for the given face and quarter-turn count
// (1, 2 or 3 clockwise quarter turns).
func MoveOf(f Face, quarterTurns int) Move {
	qt := ((quarterTurns % 4) + 4) % 4
	if qt == 0 {
		return MoveNull
	}
	return Move(int(f)*3 + (qt - 1))
}

var invertedMove [numMoves]Move

var composeSameFace [numMoves][numMoves]Move

// rotateY[k][m] is m conjugated by k clockwise y-rotations of the whole cube.
var rotateY [4][numMoves]Move

// faceAfterY1 is the face mapping for a single clockwise y rotation (viewed
// from above): U and D are fixed, and the side faces cycle F->R->B->L->F.
var faceAfterY1 = [numFaces]Face{
	U: U,
	D: D,
	F: R,
	R: B,
	B: L,
	L: F,
}

func init() {
	for m := Move(0); m < numMoves; m++ {
		invertedMove[m] = MoveOf(FaceOfMove(m), 4-quarterTurnsOf(m))
	}

	for m1 := Move(0); m1 < numMoves; m1++ {
		for m2 := Move(0); m2 < numMoves; m2++ {
			if FaceOfMove(m1) != FaceOfMove(m2) {
				composeSameFace[m1][m2] = MoveNull
				continue
			}
			composeSameFace[m1][m2] = MoveOf(FaceOfMove(m1), quarterTurnsOf(m1)+quarterTurnsOf(m2))
		}
	}

	var faceAfterY [4][numFaces]Face
	for f := Face(0); f < numFaces; f++ {
		faceAfterY[0][f] = f
	}
	for k := 1; k < 4; k++ {
		for f := Face(0); f < numFaces; f++ {
			faceAfterY[k][f] = faceAfterY1[faceAfterY[k-1][f]]
		}
	}
	for k := 0; k < 4; k++ {
		for m := Move(0); m < numMoves; m++ {
			if m == MoveNull {
				rotateY[k][m] = MoveNull
				continue
			}
			rotateY[k][m] = MoveOf(faceAfterY[k][FaceOfMove(m)], quarterTurnsOf(m))
		}
	}
}

// InvertedMove returns the move that undoes m.
func InvertedMove(m Move) Move {
	if m == MoveNull {
		return MoveNull
	}
	return invertedMove[m]
}

// ComposeSameFace returns the move obtained by composing m1 and m2, which
// must act on the same face; MoveNull is returned when they cancel.
func ComposeSameFace(m1, m2 Move) Move {
	if m1 == MoveNull {
		return m2
	}
	if m2 == MoveNull {
		return m1
	}
	return composeSameFace[m1][m2]
}

// RotateY returns m conjugated by k clockwise y-rotations of the cube.
func RotateY(m Move, k int) Move {
	if m == MoveNull {
		return MoveNull
	}
	k = ((k % 4) + 4) % 4
	return rotateY[k][m]
}

var moveSuffix = [3]string{"", "2", "'"}

func (m Move) String() string {
	if m == MoveNull {
		return ""
	}
	return FaceOfMove(m).String() + moveSuffix[m%3]
}
