package tablegen

import (
	"strconv"

	"github.com/mstein/cubecore/internal/cube"
)

// numLLStates is the number of distinct last-layer states reachable with a
// solved F2L: 62,208 (the 1-Look Last Layer case count).
const numLLStates = 62208

// llDictCapacity keeps the load factor comfortably under 0.7 for exactly
// numLLStates entries.
const llDictCapacity = 1 << 17

// GenerateLastLayer builds the 1-Look Last Layer dictionary by
// breadth-first expansion from SOLVED over all 18 moves, discarding any
// child that leaves the F2L-solved subgroup, until every one of the
// 62,208 distinct last-layer states (given a solved F2L) has an entry.
// Panics if the generator finishes with the wrong entry count or an entry
// whose F2L portion has drifted from solved: both indicate a generator
// bug, not a condition a caller could recover from.
func GenerateLastLayer() *cube.Dict {
	dict := cube.NewDict(llDictCapacity)
	solvedF2L := cube.Masked(cube.SolvedPacked, cube.F2LMask)

	root := queueEntry{state: cube.SolvedPacked, alg: cube.NewAlg(0)}
	if _, err := dict.InsertIfNew(cube.Masked(root.state, cube.LLMask), root.alg); err != nil {
		panic("tablegen: last layer generation: " + err.Error())
	}
	q := newBFSQueue(1 << 18)
	q.push(root)

	moves := cube.AllMoves()
	for !q.empty() && dict.Len() < numLLStates {
		cur := q.pop()
		for _, m := range moves {
			if dict.Len() >= numLLStates {
				break
			}
			child := cur.state.ApplyMove(m)
			if !cube.Masked(child, cube.F2LMask).Equal(solvedF2L) {
				continue
			}
			key := cube.Masked(child, cube.LLMask)
			if _, found := dict.Lookup(key); found {
				continue
			}
			childAlg := cur.alg.Copy()
			childAlg.Append(m)
			inserted, err := dict.InsertIfNew(key, childAlg)
			if err != nil {
				panic("tablegen: last layer generation: " + err.Error())
			}
			if inserted {
				q.push(queueEntry{state: child, alg: childAlg})
			}
		}
	}

	validateLastLayer(dict, solvedF2L)
	return dict
}

func validateLastLayer(dict *cube.Dict, solvedF2L cube.PackedCube) {
	if dict.Len() != numLLStates {
		panic("tablegen: last layer generation: InvariantViolation: expected " +
			strconv.Itoa(numLLStates) + " entries, got " + strconv.Itoa(dict.Len()))
	}
	dict.Each(func(key cube.PackedCube, values *cube.AlgList) {
		if values.Len() != 1 {
			panic("tablegen: last layer generation: InvariantViolation: entry with more than one stored algorithm")
		}
		reached := cube.SolvedPacked.ApplyAlg(values.At(0))
		if !cube.Masked(reached, cube.F2LMask).Equal(solvedF2L) {
			panic("tablegen: last layer generation: InvariantViolation: entry with unsolved F2L portion")
		}
	})
}
