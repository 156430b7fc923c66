// Package light simulates light diffusing over the triangular mesh: fixed
// sources emit at a constant level while ordinary space cells pick up the
// brightest neighboring value and fade by one unit per generation.
package light

import (
	"strconv"

	"github.com/technolapin/triangle-automata/internal/sim"
	"github.com/technolapin/triangle-automata/pkg/core"
)

// Kind tags a cell as either a fixed emitter or ordinary space.
type Kind uint8

const (
	// KindSpace cells carry decaying light.
	KindSpace Kind = iota
	// KindSource cells emit at a fixed level and never decay.
	KindSource
)

// Light is one cell of the diffusion automaton: a tagged 8-bit intensity.
type Light struct {
	Kind  Kind
	Level uint8
}

// Decay is the diffusion rule. A source is inert and keeps emitting; a space
// cell takes the brightest value among itself and its neighbors, minus one,
// floored at zero.
func Decay(n core.Neighborhood[Light]) Light {
	if n.Self.Kind == KindSource {
		return n.Self
	}
	level := n.Self.Level
	for _, c := range n.Neighbors {
		if c.Level > level {
			level = c.Level
		}
	}
	if level > 0 {
		level--
	}
	return Light{Kind: KindSpace, Level: level}
}

// Config holds parameters for the light diffusion simulation.
type Config struct {
	Width  int
	Height int

	SourceX     int
	SourceY     int
	SourceLevel uint8

	// SourceLifetime is the number of generations before the configured
	// source demotes to plain space; 0 keeps it emitting forever.
	SourceLifetime int

	// ExtraSources places this many additional random emitters on Reset,
	// derived from the reset seed.
	ExtraSources int

	Parallel bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:          30,
		Height:         20,
		SourceX:        10,
		SourceY:        10,
		SourceLevel:    10,
		SourceLifetime: 10,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	atoi := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	atoi("w", &c.Width)
	atoi("h", &c.Height)
	atoi("x", &c.SourceX)
	atoi("y", &c.SourceY)
	atoi("lifetime", &c.SourceLifetime)
	atoi("extra", &c.ExtraSources)
	if v, ok := cfg["level"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.SourceLevel = uint8(parsed)
		}
	}
	if v, ok := cfg["parallel"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Parallel = parsed
		}
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	return c
}

// World runs light diffusion over a triangular mesh.
type World struct {
	cfg     Config
	aut     *core.Automaton[Light]
	display []uint8
}

// New creates a World from the provided configuration, ready to step.
func New(cfg Config) *World {
	w := &World{cfg: cfg}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "light" }

// Size returns the grid dimensions.
func (w *World) Size() sim.Size { return sim.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the display buffer: each cell's current intensity.
func (w *World) Cells() []uint8 { return w.display }

// Automaton exposes the underlying automaton for direct cell access.
func (w *World) Automaton() *core.Automaton[Light] { return w.aut }

// Generation returns the number of generations evolved since Reset.
func (w *World) Generation() int { return w.aut.Generation() }

// Reset rebuilds the grid: dark space everywhere, the configured source, and
// any extra emitters placed deterministically from seed.
func (w *World) Reset(seed int64) {
	grid := core.NewGrid(w.cfg.Width, w.cfg.Height, Light{})
	w.aut = core.NewAutomaton(grid)
	w.display = make([]uint8, grid.Len())
	w.SetSource(w.cfg.SourceX, w.cfg.SourceY, w.cfg.SourceLevel)

	if w.cfg.ExtraSources > 0 && w.cfg.Width > 0 && w.cfg.Height > 0 {
		rng := core.NewRNG(seed)
		for i := 0; i < w.cfg.ExtraSources; i++ {
			x := rng.IntN(w.cfg.Width)
			y := rng.IntN(w.cfg.Height)
			level := rng.Uint8n(w.cfg.SourceLevel) + 1
			w.SetSource(x, y, level)
		}
	}

	w.refresh()
}

// SetSource turns the cell at (x, y) into a fixed emitter.
func (w *World) SetSource(x, y int, level uint8) bool {
	if !w.aut.Set(x, y, Light{Kind: KindSource, Level: level}) {
		return false
	}
	w.refresh()
	return true
}

// ClearSource demotes the emitter at (x, y) to plain space. The cell keeps
// its level, so the afterglow fades out over the following generations.
func (w *World) ClearSource(x, y int) bool {
	p := w.aut.Ptr(x, y)
	if p == nil || p.Kind != KindSource {
		return false
	}
	p.Kind = KindSpace
	return true
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	if w.cfg.SourceLifetime > 0 && w.aut.Generation() == w.cfg.SourceLifetime {
		w.ClearSource(w.cfg.SourceX, w.cfg.SourceY)
	}
	if w.cfg.Parallel {
		w.aut.EvolveParallel(Decay)
	} else {
		w.aut.Evolve(Decay)
	}
	w.refresh()
}

func (w *World) refresh() {
	for i, c := range w.aut.Grid().Cells() {
		w.display[i] = c.Level
	}
}

func init() {
	sim.Register("light", func(cfg map[string]string) sim.Sim {
		return New(FromMap(cfg))
	})
}
