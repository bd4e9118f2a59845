package cube

import "testing"

// Property 7: insert(k, v); lookup(k) returns a list whose last element equals v.
func TestDictInsertThenLookup(t *testing.T) {
	d := NewDict(64)
	key := SolvedPacked.ApplyAlg(mustParse(t, "R U R'"))
	v := mustParse(t, "R U R'")

	if err := d.Insert(key, v); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	list, found := d.Lookup(key)
	if !found {
		t.Fatalf("Lookup after Insert: not found")
	}
	if !list.Last().Equal(v) {
		t.Errorf("Lookup last element = %q, want %q", list.Last().String(), v.String())
	}
}

func TestDictInsertSameKeyAppends(t *testing.T) {
	d := NewDict(64)
	key := SolvedPacked

	if err := d.Insert(key, mustParse(t, "R U R' U'")); err != nil {
		t.Fatalf("Insert 1: %v", err)
	}
	if err := d.Insert(key, mustParse(t, "F R U R' U' F'")); err != nil {
		t.Fatalf("Insert 2: %v", err)
	}
	list, found := d.Lookup(key)
	if !found {
		t.Fatalf("Lookup: not found")
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
	if d.Len() != 1 {
		t.Errorf("Dict.Len() = %d, want 1 (one key, two algorithms)", d.Len())
	}
}

func TestDictInsertIfNewRejectsExistingKey(t *testing.T) {
	d := NewDict(64)
	key := SolvedPacked

	inserted, err := d.InsertIfNew(key, mustParse(t, "R U R' U'"))
	if err != nil || !inserted {
		t.Fatalf("first InsertIfNew: inserted=%v err=%v", inserted, err)
	}
	inserted, err = d.InsertIfNew(key, mustParse(t, "F R U R' U' F'"))
	if err != nil {
		t.Fatalf("second InsertIfNew: %v", err)
	}
	if inserted {
		t.Errorf("InsertIfNew on an existing key reported inserted=true")
	}
	list, _ := d.Lookup(key)
	if list.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (second insert should have been rejected)", list.Len())
	}
}

func TestDictLookupMiss(t *testing.T) {
	d := NewDict(64)
	_ = d.Insert(SolvedPacked, mustParse(t, "U"))

	other := SolvedPacked.ApplyMove(MoveOf(R, 1))
	if _, found := d.Lookup(other); found {
		t.Errorf("Lookup found a key that was never inserted")
	}
}

func TestDictClear(t *testing.T) {
	d := NewDict(64)
	_ = d.Insert(SolvedPacked, mustParse(t, "U"))
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", d.Len())
	}
	if _, found := d.Lookup(SolvedPacked); found {
		t.Errorf("Lookup found an entry after Clear")
	}
}
