package cube

import "strings"

// Alg is a growable, mutable sequence of moves. It owns its backing
// storage: Copy always produces distinct storage, and capacity grows by
// doubling on overflow and shrinks by halving once length falls to a
// quarter of capacity (see growslice.go), rather than relying on the
// language's own append growth factor.
type Alg struct {
	moves []Move
}

// NewAlg returns an empty algorithm with the given reserved capacity.
func NewAlg(capacity int) *Alg {
	if capacity < 0 {
		capacity = 0
	}
	return &Alg{moves: make([]Move, 0, capacity)}
}

// Len returns the logical length of the algorithm.
func (a *Alg) Len() int { return len(a.moves) }

// Cap returns the reserved capacity of the algorithm's backing storage.
func (a *Alg) Cap() int { return cap(a.moves) }

// At returns the move at position i.
func (a *Alg) At(i int) Move { return a.moves[i] }

// Moves returns an immutable snapshot of the underlying moves: the opaque
// value handed to a downstream robot-actuator compiler. The returned slice
// is a copy and is not invalidated by later mutation of a.
func (a *Alg) Moves() []Move {
	out := make([]Move, len(a.moves))
	copy(out, a.moves)
	return out
}

// Copy returns a deep copy with distinct backing storage.
func (a *Alg) Copy() *Alg {
	out := NewAlg(len(a.moves))
	out.moves = out.moves[:len(a.moves)]
	copy(out.moves, a.moves)
	return out
}

// Equal reports whether two algorithms hold the same moves in the same order.
func (a *Alg) Equal(other *Alg) bool {
	if len(a.moves) != len(other.moves) {
		return false
	}
	for i := range a.moves {
		if a.moves[i] != other.moves[i] {
			return false
		}
	}
	return true
}

// Append inserts m at the end of the algorithm.
func (a *Alg) Append(m Move) {
	_ = a.Insert(m, len(a.moves))
}

// Insert writes m at position i, shifting [i, length) up by one. It fails
// when i is out of [0, length].
func (a *Alg) Insert(m Move, i int) error {
	if i < 0 || i > len(a.moves) {
		return ErrOutOfBounds
	}
	a.moves = growForInsert(a.moves)
	a.moves = a.moves[:len(a.moves)+1]
	copy(a.moves[i+1:], a.moves[i:len(a.moves)-1])
	a.moves[i] = m
	return nil
}

// Delete removes the move at position i, shifting [i+1, length) down by
// one. It fails when i is out of [0, length).
func (a *Alg) Delete(i int) error {
	if i < 0 || i >= len(a.moves) {
		return ErrOutOfBounds
	}
	copy(a.moves[i:], a.moves[i+1:])
	a.moves = a.moves[:len(a.moves)-1]
	a.moves = shrinkAfterDelete(a.moves)
	return nil
}

// Invert reverses the sequence in place, replacing each move with its
// inverse: the new element at length-1-i is inverted_move[alg[i]].
func (a *Alg) Invert() {
	n := len(a.moves)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a.moves[i], a.moves[j] = InvertedMove(a.moves[j]), InvertedMove(a.moves[i])
	}
	if n%2 == 1 {
		mid := n / 2
		a.moves[mid] = InvertedMove(a.moves[mid])
	}
}

// Concat appends src's moves, in order, to the end of a.
func (a *Alg) Concat(src *Alg) {
	a.moves = growForAppend(a.moves, len(src.moves))
	a.moves = append(a.moves, src.moves...)
}

// RotateOnY replaces each move with its conjugate under k clockwise
// y-rotations of the whole cube.
func (a *Alg) RotateOnY(k int) {
	for i, m := range a.moves {
		a.moves[i] = RotateY(m, k)
	}
}

// String renders the algorithm using the move-text grammar: tokens
// separated by a single ASCII space, no trailing whitespace.
func (a *Alg) String() string {
	var sb strings.Builder
	for i, m := range a.moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

func faceFromByte(c byte) (Face, bool) {
	switch c {
	case 'U':
		return U, true
	case 'R':
		return R, true
	case 'F':
		return F, true
	case 'L':
		return L, true
	case 'B':
		return B, true
	case 'D':
		return D, true
	default:
		return FaceNull, false
	}
}

// Parse reads the move-text grammar: a whitespace-separated stream of
// tokens, each a face letter optionally followed by a suffix in
// {"", "2", "'", "3"} (3 meaning the same as '). An unrecognized token
// aborts parsing with ErrMalformedInput.
func Parse(text string) (*Alg, error) {
	a := NewAlg(0)
	i := 0
	for i < len(text) {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\n' {
			i++
			continue
		}
		face, ok := faceFromByte(c)
		if !ok {
			return nil, ErrMalformedInput
		}
		i++
		qt := 1
		if i < len(text) {
			switch text[i] {
			case '2':
				qt = 2
				i++
			case '\'', '3':
				qt = 3
				i++
			}
		}
		a.Append(MoveOf(face, qt))
	}
	return a, nil
}

// Simplify reduces adjacent moves to canonical form: same-face moves
// compose by summing quarter turns mod 4, and runs of opposite-face moves
// are skipped over in the search for a same-face continuation. The backup
// loop checks i == 0 before decrementing rather than decrementing an
// unsigned index past zero and relying on wraparound to stop it.
func (a *Alg) Simplify() {
	i := 0
	j := i + 1
	for j < len(a.moves) {
		for j < len(a.moves)-1 && j > 0 && FaceOfMove(a.moves[j]) == OppositeFace(FaceOfMove(a.moves[i])) {
			j++
		}
		for j < len(a.moves) && FaceOfMove(a.moves[i]) == FaceOfMove(a.moves[j]) {
			a.moves[i] = ComposeSameFace(a.moves[i], a.moves[j])
			_ = a.Delete(j)
		}
		if i < len(a.moves) && a.moves[i] == MoveNull {
			_ = a.Delete(i)
			for i > 0 {
				if i >= len(a.moves) {
					break
				}
				prevFace := FaceOfMove(a.moves[i-1])
				curFace := FaceOfMove(a.moves[i])
				if prevFace == curFace || prevFace == OppositeFace(curFace) {
					i--
				} else {
					break
				}
			}
			j = i + 1
			continue
		}
		i++
		j = i + 1
	}
}
