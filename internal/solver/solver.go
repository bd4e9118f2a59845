// Package solver implements the cross/F2L/last-layer pipeline that turns a
// scramble into a solution, given pre-generated F2L and last-layer
// dictionaries.
package solver

import (
	"fmt"
	"time"

	"github.com/mstein/cubecore/internal/cube"
)

// maxCrossDepth bounds the breadth-first cross search.
const maxCrossDepth = 8

// Solver holds the dictionaries produced by tablegen.GenerateF2L and
// tablegen.GenerateLastLayer. It is read-only after construction and safe
// to share across concurrent Solve calls.
type Solver struct {
	f2l [cube.NumF2LSlots]*cube.Dict
	ll  *cube.Dict
}

// New returns a Solver over the given dictionaries.
func New(f2l [cube.NumF2LSlots]*cube.Dict, ll *cube.Dict) *Solver {
	return &Solver{f2l: f2l, ll: ll}
}

// Result is the outcome of a Solve call.
type Result struct {
	Solution *cube.Alg
	Steps    int
	Duration time.Duration
}

// Solve parses scramble, applies it to a fresh solved cube, and runs the
// cross/F2L/last-layer pipeline. On success, applying the unscrambled cube
// then the scramble then Solution.Moves() in order reaches SOLVED.
func (s *Solver) Solve(scramble string) (*Result, error) {
	start := time.Now()

	scrambleAlg, err := cube.Parse(scramble)
	if err != nil {
		return nil, fmt.Errorf("solver: parsing scramble: %w", err)
	}

	state := cube.SolvedPacked.ApplyAlg(scrambleAlg)
	solution := cube.NewAlg(scrambleAlg.Len())

	crossAlg, ok := solveCross(state)
	if !ok {
		return nil, fmt.Errorf("solver: cross: %w", cube.ErrLookupMiss)
	}
	solution.Concat(crossAlg)
	state = state.ApplyAlg(crossAlg)

	for slot := 0; slot < cube.NumF2LSlots; slot++ {
		key := cube.Masked(state, cube.F2LSlotMask[cube.F2LSlot(slot)])
		list, found := s.f2l[slot].Lookup(key)
		if !found {
			return nil, fmt.Errorf("solver: F2L slot %d: %w", slot, cube.ErrLookupMiss)
		}
		stepAlg := list.At(0).Copy()
		stepAlg.Invert()
		solution.Concat(stepAlg)
		state = state.ApplyAlg(stepAlg)
	}

	llKey := cube.Masked(state, cube.LLMask)
	llList, found := s.ll.Lookup(llKey)
	if !found {
		return nil, fmt.Errorf("solver: last layer: %w", cube.ErrLookupMiss)
	}
	llAlg := llList.At(0).Copy()
	llAlg.Invert()
	solution.Concat(llAlg)

	solution.Simplify()

	return &Result{
		Solution: solution,
		Steps:    solution.Len(),
		Duration: time.Since(start),
	}, nil
}

// solveCross breadth-first searches from state, trying all 18 moves per
// level up to maxCrossDepth, for a sequence that brings the four
// bottom-layer edges (and D center) into their solved positions. Visited
// states are deduplicated by full state rather than by cross mask alone,
// since revisiting a state at a greater depth can never produce a shorter
// solution.
func solveCross(state cube.PackedCube) (*cube.Alg, bool) {
	target := cube.Masked(cube.SolvedPacked, cube.CrossMask)
	if cube.Masked(state, cube.CrossMask).Equal(target) {
		return cube.NewAlg(0), true
	}

	type node struct {
		state cube.PackedCube
		alg   *cube.Alg
	}

	visited := map[cube.PackedCube]bool{state: true}
	frontier := []node{{state, cube.NewAlg(0)}}
	moves := cube.AllMoves()

	for depth := 0; depth < maxCrossDepth; depth++ {
		var next []node
		for _, n := range frontier {
			for _, m := range moves {
				child := n.state.ApplyMove(m)
				if visited[child] {
					continue
				}
				visited[child] = true
				childAlg := n.alg.Copy()
				childAlg.Append(m)
				if cube.Masked(child, cube.CrossMask).Equal(target) {
					return childAlg, true
				}
				next = append(next, node{child, childAlg})
			}
		}
		frontier = next
	}
	return nil, false
}
