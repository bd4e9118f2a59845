package cube

import "testing"

func TestInvertedMoveIsInvolution(t *testing.T) {
	for m := Move(0); m < numMoves; m++ {
		if InvertedMove(InvertedMove(m)) != m {
			t.Errorf("InvertedMove(InvertedMove(%v)) = %v, want %v", m, InvertedMove(InvertedMove(m)), m)
		}
	}
}

func TestComposeSameFaceCancels(t *testing.T) {
	tests := []struct {
		name string
		m1   Move
		m2   Move
		want Move
	}{
		{"R then R'", MoveOf(R, 1), MoveOf(R, 3), MoveNull},
		{"R then R", MoveOf(R, 1), MoveOf(R, 1), MoveOf(R, 2)},
		{"R2 then R2", MoveOf(R, 2), MoveOf(R, 2), MoveNull},
		{"U then U2", MoveOf(U, 1), MoveOf(U, 2), MoveOf(U, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeSameFace(tt.m1, tt.m2); got != tt.want {
				t.Errorf("ComposeSameFace(%v, %v) = %v, want %v", tt.m1, tt.m2, got, tt.want)
			}
		})
	}
}

func TestRotateYCycle(t *testing.T) {
	if RotateY(MoveOf(F, 1), 1) != MoveOf(R, 1) {
		t.Errorf("RotateY(F, 1) = %v, want R", RotateY(MoveOf(F, 1), 1))
	}
	for m := Move(0); m < numMoves; m++ {
		if RotateY(m, 4) != m {
			t.Errorf("RotateY(%v, 4) = %v, want %v (identity after full rotation)", m, RotateY(m, 4), m)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{MoveOf(U, 1), "U"},
		{MoveOf(U, 2), "U2"},
		{MoveOf(U, 3), "U'"},
		{MoveNull, ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOppositeFaceInvolution(t *testing.T) {
	for f := Face(0); f < numFaces; f++ {
		if OppositeFace(OppositeFace(f)) != f {
			t.Errorf("OppositeFace(OppositeFace(%v)) = %v, want %v", f, OppositeFace(OppositeFace(f)), f)
		}
		if OppositeFace(f) == f {
			t.Errorf("OppositeFace(%v) = %v, a face is never its own opposite", f, f)
		}
	}
}
