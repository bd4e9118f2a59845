package cube

import "testing"

func TestAlgListAppendOwnsDeepCopy(t *testing.T) {
	list := NewAlgList(0)
	src := mustParse(t, "R U R'")
	list.Append(src)

	_ = src.Insert(MoveOf(D, 1), 0)
	if list.At(0).Equal(src) {
		t.Errorf("AlgList.Append should store a deep copy, not alias the caller's Alg")
	}
	if list.At(0).String() != "R U R'" {
		t.Errorf("At(0) = %q, want %q", list.At(0).String(), "R U R'")
	}
}

func TestAlgListLastAndLen(t *testing.T) {
	list := NewAlgList(0)
	list.Append(mustParse(t, "R"))
	list.Append(mustParse(t, "U"))
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}
	if list.Last().String() != "U" {
		t.Errorf("Last() = %q, want %q", list.Last().String(), "U")
	}
}
