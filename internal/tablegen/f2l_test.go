package tablegen

import (
	"testing"

	"github.com/mstein/cubecore/internal/cube"
)

func TestGenerateF2LSolvedEntryIsEmptyAlgorithm(t *testing.T) {
	dicts := GenerateF2L()
	for s := 0; s < cube.NumF2LSlots; s++ {
		key := cube.Masked(cube.SolvedPacked, cube.F2LSlotMask[cube.F2LSlot(s)])
		list, found := dicts[s].Lookup(key)
		if !found {
			t.Fatalf("slot %d: solved key not present", s)
		}
		if list.At(0).Len() != 0 {
			t.Errorf("slot %d: solved key's algorithm = %q, want empty", s, list.At(0).String())
		}
	}
}

func TestGenerateF2LOneMoveScrambleSolvableByOneInvertedMove(t *testing.T) {
	dicts := GenerateF2L()
	scrambled := cube.SolvedPacked.ApplyMove(cube.MoveOf(cube.R, 1))
	key := cube.Masked(scrambled, cube.F2LSlotMask[cube.SlotFR])
	list, found := dicts[cube.SlotFR].Lookup(key)
	if !found {
		t.Fatalf("slot FR: single R-turn state not present")
	}
	stored := list.At(0).Copy()
	stored.Invert()
	result := scrambled.ApplyAlg(stored)
	if !cube.Masked(result, cube.F2LSlotMask[cube.SlotFR]).Equal(cube.Masked(cube.SolvedPacked, cube.F2LSlotMask[cube.SlotFR])) {
		t.Errorf("inverting the stored F2L algorithm did not restore the FR slot")
	}
}
