package light

import (
	"slices"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SourceLifetime = 0
	return cfg
}

func level(w *World, x, y int) uint8 {
	return w.Cells()[y*w.cfg.Width+x]
}

func TestFirstGeneration(t *testing.T) {
	w := New(testConfig())
	w.Step()

	// (10,10) has even parity, so its triangular neighbors are left, right
	// and the row below. Exactly those three cells light up at 9.
	lit := map[[2]int]uint8{
		{10, 10}: 10,
		{9, 10}:  9,
		{11, 10}: 9,
		{10, 11}: 9,
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			want := lit[[2]int{x, y}]
			if got := level(w, x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestHorizontalPropagation(t *testing.T) {
	w := New(testConfig())
	for i := 0; i < 5; i++ {
		w.Step()
	}

	// Along the source row every horizontal step costs one level.
	for k := 0; k <= 5; k++ {
		want := uint8(10 - k)
		if got := level(w, 10+k, 10); got != want {
			t.Fatalf("distance %d right of source = %d, expected %d", k, got, want)
		}
		if got := level(w, 10-k, 10); got != want {
			t.Fatalf("distance %d left of source = %d, expected %d", k, got, want)
		}
	}
	// Light has not reached distance 6 after five generations.
	if got := level(w, 16, 10); got != 0 {
		t.Fatalf("cell beyond the light front = %d, expected 0", got)
	}
}

func TestSourceLifetimeFadeout(t *testing.T) {
	cfg := testConfig()
	cfg.SourceLifetime = 10
	w := New(cfg)

	for i := 0; i < 11; i++ {
		w.Step()
	}
	cell, ok := w.Automaton().At(10, 10)
	if !ok {
		t.Fatal("source coordinates must stay in bounds")
	}
	if cell.Kind != KindSpace {
		t.Fatal("source must demote to space after its lifetime")
	}

	// With the emitter gone the afterglow decays to darkness.
	for i := 0; i < 50; i++ {
		w.Step()
	}
	for i, v := range w.Cells() {
		if v != 0 {
			t.Fatalf("cell %d still lit at %d after fadeout", i, v)
		}
	}
}

func TestDarkGridStaysDark(t *testing.T) {
	cfg := testConfig()
	cfg.SourceLevel = 0
	w := New(cfg)
	w.Step()
	for i, v := range w.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, levels must floor at zero", i, v)
		}
	}
}

func TestCornerSourceDoesNotFault(t *testing.T) {
	cfg := testConfig()
	cfg.SourceX, cfg.SourceY = 0, 0
	w := New(cfg)
	w.Step()

	// (0,0) points up: only right and below exist in bounds.
	if got := level(w, 1, 0); got != 9 {
		t.Fatalf("right of corner source = %d, expected 9", got)
	}
	if got := level(w, 0, 1); got != 9 {
		t.Fatalf("below corner source = %d, expected 9", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraSources = 5
	w := New(cfg)

	w.Reset(99)
	first := append([]uint8(nil), w.Cells()...)
	w.Step()
	w.Reset(99)
	if !slices.Equal(first, w.Cells()) {
		t.Fatal("Reset with the same seed must reproduce the same board")
	}

	w.Reset(100)
	if slices.Equal(first, w.Cells()) {
		t.Fatal("different seeds should place different emitters")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := New(testConfig())
	cfg := testConfig()
	cfg.Parallel = true
	parallel := New(cfg)

	for i := 0; i < 12; i++ {
		serial.Step()
		parallel.Step()
	}
	if !slices.Equal(serial.Cells(), parallel.Cells()) {
		t.Fatal("parallel stepping diverged from serial")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "12",
		"h":        "8",
		"x":        "3",
		"y":        "4",
		"level":    "7",
		"lifetime": "2",
		"extra":    "1",
		"parallel": "true",
	})
	if c.Width != 12 || c.Height != 8 || c.SourceX != 3 || c.SourceY != 4 {
		t.Fatalf("unexpected geometry: %+v", c)
	}
	if c.SourceLevel != 7 || c.SourceLifetime != 2 || c.ExtraSources != 1 || !c.Parallel {
		t.Fatalf("unexpected source config: %+v", c)
	}

	// Bad values fall back to defaults.
	c = FromMap(map[string]string{"w": "oops", "level": "999"})
	d := DefaultConfig()
	if c.Width != d.Width || c.SourceLevel != d.SourceLevel {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
}
