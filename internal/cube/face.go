// Package cube implements the 3x3x3 cube state engine: the closed face and
// move enums, two interchangeable cube representations (face-packed and
// cubie), the move algebra, masking, and the cube-keyed dictionary used by
// the table generators and solver.
package cube

// Face is one of the six faces of the cube, used throughout as a dense array
// index.
type Face int8

const (
	U Face = iota
	R
	F
	L
	B
	D
	numFaces = 6

	// FaceNull represents "no face" (e.g. the face of MoveNull).
	FaceNull Face = -1
)

var faceNames = [numFaces]string{"U", "R", "F", "L", "B", "D"}

func (f Face) String() string {
	if f < 0 || int(f) >= numFaces {
		return "?"
	}
	return faceNames[f]
}

// oppositeFace maps each face to the face parallel to it.
var oppositeFace = [numFaces]Face{
	U: D,
	D: U,
	R: L,
	L: R,
	F: B,
	B: F,
}

// OppositeFace returns the face parallel to f (U<->D, R<->L, F<->B).
func OppositeFace(f Face) Face {
	return oppositeFace[f]
}
