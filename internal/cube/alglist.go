package cube

// AlgList is an ordered collection of owned *Alg values, used by Dict
// entries that retain every algorithm seen for a given cube state rather
// than only the first. It owns every element: Append always stores a deep
// copy, never a view into the caller's Alg.
type AlgList struct {
	algs []*Alg
}

// NewAlgList returns an empty list with the given reserved capacity.
func NewAlgList(capacity int) *AlgList {
	if capacity < 0 {
		capacity = 0
	}
	return &AlgList{algs: make([]*Alg, 0, capacity)}
}

// Len returns the number of algorithms in the list.
func (l *AlgList) Len() int { return len(l.algs) }

// At returns the algorithm at position i. The returned value is owned by
// the list; callers that need to mutate it should Copy first.
func (l *AlgList) At(i int) *Alg { return l.algs[i] }

// Last returns the most recently appended algorithm.
func (l *AlgList) Last() *Alg { return l.algs[len(l.algs)-1] }

// Append stores a deep copy of alg as the new last element.
func (l *AlgList) Append(alg *Alg) {
	l.algs = growForAppend(l.algs, 1)
	l.algs = append(l.algs, alg.Copy())
}
