package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rule computes a cell's next value from its current neighborhood. Rules must
// be pure: they see only pre-generation values, and the returned value is
// their sole effect. The neighborhood passed to a rule is valid only for the
// duration of the call.
type Rule[T any] func(Neighborhood[T]) T

// Automaton drives generation-by-generation evolution of a grid. It owns two
// same-size buffers and flips which one is current after each generation, so
// every rule application reads a consistent pre-generation snapshot and no
// partial generation is ever observable.
type Automaton[T any] struct {
	grids  [2]*Grid[T]
	active int
	gen    int
}

// NewAutomaton seeds both internal buffers with independent copies of seed.
func NewAutomaton[T any](seed *Grid[T]) *Automaton[T] {
	return &Automaton[T]{grids: [2]*Grid[T]{seed.Clone(), seed.Clone()}}
}

// Grid returns the active buffer. Pointers into it go stale at the next
// Evolve, which swaps the buffer out from under them.
func (a *Automaton[T]) Grid() *Grid[T] { return a.grids[a.active] }

// At reads a cell of the active buffer.
func (a *Automaton[T]) At(x, y int) (T, bool) { return a.Grid().At(x, y) }

// Ptr returns write access into the active buffer, nil when out of bounds.
func (a *Automaton[T]) Ptr(x, y int) *T { return a.Grid().Ptr(x, y) }

// Set writes a cell of the active buffer.
func (a *Automaton[T]) Set(x, y int, v T) bool { return a.Grid().Set(x, y, v) }

// Generation returns how many generations have been evolved so far.
func (a *Automaton[T]) Generation() int { return a.gen }

// Evolve computes one generation: rule runs once per cell against the active
// buffer, results land in the matching cells of the inactive buffer, and the
// buffers swap roles. The swap is a flag flip, never a copy.
func (a *Automaton[T]) Evolve(rule Rule[T]) {
	cur, nxt := a.grids[a.active], a.grids[1-a.active]
	buf := make([]T, 0, 3)
	for y := 0; y < cur.h; y++ {
		for x := 0; x < cur.w; x++ {
			n := cur.neighborhoodInto(x, y, buf[:0])
			nxt.cells[nxt.Index(x, y)] = rule(n)
			buf = n.Neighbors
		}
	}
	a.swap()
}

// EvolveParallel is Evolve with rows fanned out across CPUs. Rule evaluation
// reads only the active buffer and each band writes a disjoint span of the
// inactive one, so the only synchronization is the final join. The observable
// result is identical to Evolve.
func (a *Automaton[T]) EvolveParallel(rule Rule[T]) {
	cur, nxt := a.grids[a.active], a.grids[1-a.active]
	workers := runtime.NumCPU()
	band := (cur.h + workers - 1) / workers
	if band < 1 {
		band = 1
	}
	var eg errgroup.Group
	for start := 0; start < cur.h; start += band {
		end := min(start+band, cur.h)
		eg.Go(func() error {
			buf := make([]T, 0, 3)
			for y := start; y < end; y++ {
				for x := 0; x < cur.w; x++ {
					n := cur.neighborhoodInto(x, y, buf[:0])
					nxt.cells[nxt.Index(x, y)] = rule(n)
					buf = n.Neighbors
				}
			}
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = eg.Wait()
	a.swap()
}

func (a *Automaton[T]) swap() {
	a.active = 1 - a.active
	a.gen++
}
