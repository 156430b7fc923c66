// Package trilife is a life-like automaton on the triangular mesh. Each
// triangle has at most three edge neighbors, so the rule is tighter than
// Conway's: a cell lives in the next generation exactly when two of the
// values in its neighborhood (itself included) are alive.
package trilife

import (
	"strconv"

	"github.com/technolapin/triangle-automata/internal/sim"
	"github.com/technolapin/triangle-automata/pkg/core"
)

// Next is the transition rule.
func Next(n core.Neighborhood[bool]) bool {
	live := 0
	if n.Self {
		live++
	}
	for _, v := range n.Neighbors {
		if v {
			live++
		}
	}
	return live == 2
}

// Config holds parameters for the trilife simulation.
type Config struct {
	Width  int
	Height int

	// FillChance is the 1-in-N chance a cell starts alive on Reset.
	FillChance int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 48, FillChance: 4}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FillChance = parsed
		}
	}
	return c
}

// World runs the trilife automaton.
type World struct {
	cfg     Config
	aut     *core.Automaton[bool]
	display []uint8
}

// New creates a World from the provided configuration.
func New(cfg Config) *World {
	w := &World{cfg: cfg}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "trilife" }

// Size returns the grid dimensions.
func (w *World) Size() sim.Size { return sim.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the display buffer (1 for live cells, 0 otherwise).
func (w *World) Cells() []uint8 { return w.display }

// Automaton exposes the underlying automaton for direct cell access.
func (w *World) Automaton() *core.Automaton[bool] { return w.aut }

// Reset randomizes the board deterministically from seed.
func (w *World) Reset(seed int64) {
	grid := core.NewGrid(w.cfg.Width, w.cfg.Height, false)
	rng := core.NewRNG(seed)
	cells := grid.Cells()
	for i := range cells {
		cells[i] = rng.IntN(w.cfg.FillChance) == 0
	}
	w.aut = core.NewAutomaton(grid)
	w.display = make([]uint8, grid.Len())
	w.refresh()
}

// Step advances the automaton by one generation.
func (w *World) Step() {
	w.aut.Evolve(Next)
	w.refresh()
}

func (w *World) refresh() {
	for i, alive := range w.aut.Grid().Cells() {
		if alive {
			w.display[i] = 1
		} else {
			w.display[i] = 0
		}
	}
}

func init() {
	sim.Register("trilife", func(cfg map[string]string) sim.Sim {
		return New(FromMap(cfg))
	})
}
