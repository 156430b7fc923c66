package trilife

import (
	"slices"
	"testing"

	"github.com/technolapin/triangle-automata/pkg/core"
)

func TestResetDeterministic(t *testing.T) {
	w := New(DefaultConfig())
	w.Reset(7)
	first := append([]uint8(nil), w.Cells()...)
	w.Step()
	w.Reset(7)
	if !slices.Equal(first, w.Cells()) {
		t.Fatal("Reset with the same seed must reproduce the same board")
	}
}

func TestRule(t *testing.T) {
	cases := []struct {
		self      bool
		neighbors []bool
		want      bool
	}{
		{false, []bool{true, true, false}, true},
		{true, []bool{true, false, false}, true},
		{true, []bool{false, false}, false},
		{true, []bool{true, true, false}, false},
		{false, []bool{false}, false},
		{false, []bool{true, true, true}, false},
	}
	for i, c := range cases {
		n := core.Neighborhood[bool]{Self: c.self, Neighbors: c.neighbors, OK: true}
		if got := Next(n); got != c.want {
			t.Errorf("case %d: Next = %v, expected %v", i, got, c.want)
		}
	}
}

func TestPairStabilizes(t *testing.T) {
	// Two adjacent live cells on a 1-high strip (no vertical neighbors) give
	// each other a count of two and survive, while their dead flanks only
	// see one live cell and stay dead: a still life.
	cfg := Config{Width: 6, Height: 1, FillChance: 2}
	w := New(cfg)
	grid := w.Automaton().Grid()
	grid.Fill(false)
	grid.Set(2, 0, true)
	grid.Set(3, 0, true)
	w.Step()

	// (2,0) and (3,0): self + one live neighbor = 2, survive.
	// (1,0) and (4,0): one live neighbor = 1, stay dead.
	want := []uint8{0, 0, 1, 1, 0, 0}
	if !slices.Equal(w.Cells(), want) {
		t.Fatalf("after one step: %v, expected %v", w.Cells(), want)
	}
}

func TestStepKeepsSize(t *testing.T) {
	w := New(DefaultConfig())
	for i := 0; i < 4; i++ {
		w.Step()
	}
	if len(w.Cells()) != w.Size().W*w.Size().H {
		t.Fatalf("display buffer length %d does not match %v", len(w.Cells()), w.Size())
	}
}
