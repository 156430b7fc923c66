package sim

import (
	"slices"
	"testing"
)

type nullSim struct{}

func (nullSim) Name() string   { return "null" }
func (nullSim) Size() Size     { return Size{} }
func (nullSim) Reset(int64)    {}
func (nullSim) Step()          {}
func (nullSim) Cells() []uint8 { return nil }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return nullSim{} })
	Register("ztest", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["ztest"]; ok {
		t.Fatal("nil factory must not register")
	}

	Register("atest", func(map[string]string) Sim { return nullSim{} })
	Register("btest", func(map[string]string) Sim { return nullSim{} })
	defer delete(sims, "atest")
	defer delete(sims, "btest")

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "atest") || !slices.Contains(names, "btest") {
		t.Fatalf("registered sims missing from %v", names)
	}
}
