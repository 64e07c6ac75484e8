package fennecs

import "testing"

func TestArchetypeIs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   EntityArchetype
		wantIs bool
		wantEq bool
	}{
		{"Equal", ConsistsOf(1, 2), ConsistsOf(2, 1), true, true},
		{"Superset", ConsistsOf(1, 2, 5), ConsistsOf(1, 5), true, false},
		{"Subset", ConsistsOf(1), ConsistsOf(1, 2), false, false},
		{"Disjoint", ConsistsOf(3), ConsistsOf(4), false, false},
		{"Empty filter", ConsistsOf(7), ConsistsOf(), true, false},
		{"Both empty", EntityArchetype{}, ConsistsOf(), true, true},
		{"High bit", ConsistsOf(63, 0), ConsistsOf(63), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Is(tt.b); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
			if got := tt.a.Equals(tt.b); got != tt.wantEq {
				t.Errorf("Equals() = %v, want %v", got, tt.wantEq)
			}
		})
	}
}

func TestArchetypeAttachDetach(t *testing.T) {
	base := ConsistsOf(2)
	grown := base.Attach(9)

	if base.Has(9) {
		t.Error("Attach mutated the receiver")
	}
	if !grown.Has(2) || !grown.Has(9) {
		t.Errorf("grown = %v, want {2,9}", grown)
	}

	shrunk := grown.Detach(2)
	if !grown.Has(2) {
		t.Error("Detach mutated the receiver")
	}
	if shrunk.Has(2) || !shrunk.Has(9) {
		t.Errorf("shrunk = %v, want {9}", shrunk)
	}
	if !shrunk.Detach(2).Equals(shrunk) {
		t.Error("detaching an absent index should not change the archetype")
	}
}

func TestArchetypeString(t *testing.T) {
	if got := ConsistsOf(4, 0, 11).String(); got != "{0,4,11}" {
		t.Errorf("String() = %q, want {0,4,11}", got)
	}
	if got := (EntityArchetype{}).String(); got != "{}" {
		t.Errorf("String() = %q, want {}", got)
	}
}
