package reaction

import (
	"errors"
	"reflect"
	"testing"

	"github.com/matsen/rxnpath/internal/compound"
)

func TestReaction_Validate(t *testing.T) {
	tests := []struct {
		name     string
		reaction Reaction
		wantErr  error
	}{
		{
			name:     "valid reaction",
			reaction: Reaction{Reactant: "CH4", Type: "Oxidation", Product: "CH3OH"},
			wantErr:  nil,
		},
		{
			name:     "empty reactant",
			reaction: Reaction{Reactant: "", Type: "Oxidation", Product: "CH3OH"},
			wantErr:  ErrEmptyReactant,
		},
		{
			name:     "empty type",
			reaction: Reaction{Reactant: "CH4", Type: "", Product: "CH3OH"},
			wantErr:  ErrEmptyType,
		},
		{
			name:     "empty product",
			reaction: Reaction{Reactant: "CH4", Type: "Oxidation", Product: ""},
			wantErr:  ErrEmptyProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reaction.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindConflicts(t *testing.T) {
	reactions := []Reaction{
		{Reactant: "A", Type: "Reduction", Product: "B"},
		{Reactant: "C", Type: "Hydration", Product: "D"},
		{Reactant: "A", Type: "Hydrogenation", Product: "B"},
		{Reactant: "C", Type: "Hydration", Product: "D"},
		{Reactant: "A", Type: "Reduction", Product: "B"},
		{Reactant: "B", Type: "Oxidation", Product: "A"},
	}

	got := FindConflicts(reactions)
	want := []Conflict{
		{Pair: Pair{Reactant: "A", Product: "B"}, Labels: []string{"Reduction", "Hydrogenation"}, Count: 3},
		{Pair: Pair{Reactant: "C", Product: "D"}, Labels: []string{"Hydration"}, Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindConflicts() = %+v, want %+v", got, want)
	}

	if !got[0].Contradictory() {
		t.Error("A -> B should be contradictory")
	}
	if got[1].Contradictory() {
		t.Error("C -> D repeats one label and should not be contradictory")
	}
}

func TestFindConflicts_None(t *testing.T) {
	if got := FindConflicts(Defaults()); len(got) != 0 {
		t.Errorf("FindConflicts(Defaults()) = %+v, want none", got)
	}
}

// registryFor registers names in order and fails the test on error.
func registryFor(t *testing.T, names ...string) *compound.Registry {
	t.Helper()
	reg := compound.NewRegistry(0)
	for _, n := range names {
		if _, err := reg.Register(n); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func TestCatalog_AppendPreservesOrderAndDuplicates(t *testing.T) {
	c := NewCatalog(0)
	input := []Reaction{
		{Reactant: "A", Type: "X", Product: "B"},
		{Reactant: "A", Type: "X", Product: "B"},
		{Reactant: "Z", Type: "Y", Product: "Q"},
	}
	for _, r := range input {
		if err := c.Append(r); err != nil {
			t.Fatal(err)
		}
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if got := c.Reactions(); !reflect.DeepEqual(got, input) {
		t.Errorf("Reactions() = %+v, want %+v", got, input)
	}
}

func TestCatalog_CapacityExceeded(t *testing.T) {
	c := NewCatalog(1)
	if err := c.Append(Reaction{Reactant: "A", Type: "X", Product: "B"}); err != nil {
		t.Fatal(err)
	}
	err := c.Append(Reaction{Reactant: "B", Type: "X", Product: "C"})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Append() error = %v, want ErrCapacityExceeded", err)
	}
	if !errors.Is(err, compound.ErrCapacityExceeded) {
		t.Error("catalog capacity error should match the compound sentinel")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCatalog_FindLabelFirstMatch(t *testing.T) {
	reg := registryFor(t, "A", "B", "C")
	c := NewCatalog(0)
	for _, r := range []Reaction{
		{Reactant: "B", Type: "Oxidation", Product: "C"},
		{Reactant: "A", Type: "Reduction", Product: "B"},
		{Reactant: "A", Type: "Hydrogenation", Product: "B"},
	} {
		if err := c.Append(r); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 5; i++ {
		label, ok := c.FindLabel(0, 1, reg)
		if !ok || label != "Reduction" {
			t.Fatalf("call %d: FindLabel(A, B) = %q, %v; want Reduction, true", i, label, ok)
		}
	}

	if label, ok := c.FindLabel(1, 2, reg); !ok || label != "Oxidation" {
		t.Errorf("FindLabel(B, C) = %q, %v; want Oxidation, true", label, ok)
	}
}

func TestCatalog_FindLabelNoMatch(t *testing.T) {
	reg := registryFor(t, "A", "B")
	c := NewCatalog(0)
	if err := c.Append(Reaction{Reactant: "A", Type: "X", Product: "B"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		reactant int
		product  int
	}{
		{name: "reverse direction", reactant: 1, product: 0},
		{name: "self pair", reactant: 0, product: 0},
		{name: "index out of range", reactant: 0, product: 7},
		{name: "negative index", reactant: -1, product: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if label, ok := c.FindLabel(tt.reactant, tt.product, reg); ok {
				t.Errorf("FindLabel(%d, %d) = %q, want no match", tt.reactant, tt.product, label)
			}
		})
	}
}
