package core

import (
	"slices"
	"testing"
)

type fixedSim struct{ name string }

func (s fixedSim) Name() string   { return s.name }
func (s fixedSim) Size() Size     { return Size{W: 1, H: 1} }
func (s fixedSim) Reset(int64)    {}
func (s fixedSim) Step()          {}
func (s fixedSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("zz-second", func(map[string]string) Sim { return fixedSim{"zz-second"} })
	Register("zz-first", func(map[string]string) Sim { return fixedSim{"zz-first"} })
	Register("", func(map[string]string) Sim { return fixedSim{} })
	Register("zz-nil", nil)

	f, ok := Lookup("zz-first")
	if !ok {
		t.Fatal("registered sim not found")
	}
	if got := f(nil).Name(); got != "zz-first" {
		t.Fatalf("factory built %q", got)
	}
	if _, ok := Lookup("zz-nil"); ok {
		t.Fatal("nil factory should not register")
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("empty name should not register")
	}

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	i, j := slices.Index(names, "zz-first"), slices.Index(names, "zz-second")
	if i < 0 || j != i+1 {
		t.Fatalf("names = %v", names)
	}
}
