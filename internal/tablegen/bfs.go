// Package tablegen builds the F2L and 1-Look Last Layer dictionaries
// consumed by the solver, by breadth-first expansion from the solved cube.
package tablegen

import "github.com/mstein/cubecore/internal/cube"

// queueEntry pairs a state with the forward algorithm that reaches it from
// SOLVED.
type queueEntry struct {
	state cube.PackedCube
	alg   *cube.Alg
}

// bfsQueue is a slice-backed FIFO: entries are appended at the tail and
// read from a head index, rather than allocated one node at a time, since
// the 1LLL generator's queue peaks in the hundreds of thousands of
// entries.
type bfsQueue struct {
	entries []queueEntry
	head    int
}

func newBFSQueue(capacityHint int) *bfsQueue {
	return &bfsQueue{entries: make([]queueEntry, 0, capacityHint)}
}

func (q *bfsQueue) push(e queueEntry) {
	q.entries = append(q.entries, e)
}

func (q *bfsQueue) empty() bool {
	return q.head >= len(q.entries)
}

func (q *bfsQueue) pop() queueEntry {
	e := q.entries[q.head]
	q.head++
	return e
}
