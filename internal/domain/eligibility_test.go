package domain

import "testing"

func TestCanAccept(t *testing.T) {
	tests := []struct {
		name        string
		level       int
		mode        InsertionMode
		hasChildren bool
		want        bool
	}{
		{"leaf before at level 0", 0, ModeBefore, false, true},
		{"leaf after at level 0", 0, ModeAfter, false, true},
		{"leaf as child", 0, ModeChild, false, true},
		{"leaf at level 1", 1, ModeBefore, false, true},
		{"parent before at level 0", 0, ModeBefore, true, true},
		{"parent after at level 0", 0, ModeAfter, true, true},
		{"parent as child", 0, ModeChild, true, false},
		{"parent before at level 1", 1, ModeBefore, true, false},
		{"parent after at level 1", 1, ModeAfter, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccept(tt.level, tt.mode, tt.hasChildren)
			if got != tt.want {
				t.Errorf("CanAccept(%d, %s, %v) = %v, want %v", tt.level, tt.mode, tt.hasChildren, got, tt.want)
			}
			// Repeated evaluation must not change the answer.
			if again := CanAccept(tt.level, tt.mode, tt.hasChildren); again != got {
				t.Errorf("second call = %v, first = %v", again, got)
			}
		})
	}
}

func TestDragSession_Accepts(t *testing.T) {
	s := DragSession{Source: Ref{Index: 0}, Key: "a", HasChildren: true}

	if !s.Accepts(Ref{Index: 2}, ModeAfter) {
		t.Error("parent item should be accepted at level 0")
	}
	if s.Accepts(Ref{Parent: "b", Index: 0}, ModeBefore) {
		t.Error("parent item should be rejected at level 1")
	}
	if s.Accepts(Ref{Index: 2}, ModeChild) {
		t.Error("parent item should be rejected as child")
	}
}
