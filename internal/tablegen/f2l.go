package tablegen

import "github.com/mstein/cubecore/internal/cube"

// f2lDictCapacity comfortably exceeds the reachable cross+slot state
// count, keeping the load factor well under the 0.7 ceiling the dictionary
// requires.
const f2lDictCapacity = 1 << 16

// GenerateF2L builds one dictionary per F2L slot by breadth-first
// expansion from SOLVED over all 18 moves. Each dictionary's key is the
// cube masked by that slot's cross-plus-slot mask; the stored algorithm is
// the shortest (by BFS order) forward sequence from SOLVED that reaches
// the keyed masked state.
func GenerateF2L() [cube.NumF2LSlots]*cube.Dict {
	var dicts [cube.NumF2LSlots]*cube.Dict
	for s := 0; s < cube.NumF2LSlots; s++ {
		dicts[s] = generateSlot(cube.F2LSlot(s))
	}
	return dicts
}

func generateSlot(slot cube.F2LSlot) *cube.Dict {
	mask := cube.F2LSlotMask[slot]
	dict := cube.NewDict(f2lDictCapacity)

	root := queueEntry{state: cube.SolvedPacked, alg: cube.NewAlg(0)}
	if _, err := dict.InsertIfNew(cube.Masked(root.state, mask), root.alg); err != nil {
		panic("tablegen: F2L generation: " + err.Error())
	}
	q := newBFSQueue(4096)
	q.push(root)

	moves := cube.AllMoves()
	for !q.empty() {
		cur := q.pop()
		for _, m := range moves {
			child := cur.state.ApplyMove(m)
			key := cube.Masked(child, mask)
			if _, found := dict.Lookup(key); found {
				continue
			}
			childAlg := cur.alg.Copy()
			childAlg.Append(m)
			inserted, err := dict.InsertIfNew(key, childAlg)
			if err != nil {
				panic("tablegen: F2L generation: " + err.Error())
			}
			if inserted {
				q.push(queueEntry{state: child, alg: childAlg})
			}
		}
	}
	return dict
}
