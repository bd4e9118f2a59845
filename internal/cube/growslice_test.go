package cube

import "testing"

func TestGrowForInsertDoublesOnlyWhenFull(t *testing.T) {
	s := make([]int, 2, 2)
	grown := growForInsert(s)
	if cap(grown) != 4 {
		t.Errorf("cap = %d, want 4 (doubled)", cap(grown))
	}

	s2 := make([]int, 1, 4)
	same := growForInsert(s2)
	if cap(same) != 4 {
		t.Errorf("cap = %d, want unchanged 4", cap(same))
	}
}

func TestShrinkAfterDeleteHalvesAtQuarterLoad(t *testing.T) {
	s := make([]int, minResize, minResize*4)
	shrunk := shrinkAfterDelete(s)
	if cap(shrunk) != minResize*2 {
		t.Errorf("cap = %d, want %d (halved)", cap(shrunk), minResize*2)
	}

	small := make([]int, minResize-1, (minResize-1)*4)
	unchanged := shrinkAfterDelete(small)
	if cap(unchanged) != cap(small) {
		t.Errorf("shrinking below minResize should not shrink: cap = %d, want %d", cap(unchanged), cap(small))
	}
}
