package core

// Grid is a flat, generic 2D container addressed by (x, y) where x is the
// column and y the row. Cell (x, y) lives at linear index x + y*w. Dimensions
// are fixed at construction.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a w×h grid with every cell set to def. Non-positive
// dimensions yield an empty grid that answers every query with "absent".
func NewGrid[T any](w, h int, def T) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
	for i := range g.cells {
		g.cells[i] = def
	}
	return g
}

// W returns the grid width.
func (g *Grid[T]) W() int { return g.w }

// H returns the grid height.
func (g *Grid[T]) H() int { return g.h }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.w + x }

// Contains reports whether (x, y) addresses a cell.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the value at (x, y). The second result is false when the
// coordinates fall outside the grid; out-of-range access is a normal branch,
// never a fault.
func (g *Grid[T]) At(x, y int) (T, bool) {
	if !g.Contains(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(x, y)], true
}

// Ptr returns a pointer to the cell at (x, y) for in-place mutation, or nil
// when out of bounds.
func (g *Grid[T]) Ptr(x, y int) *T {
	if !g.Contains(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Set writes v into the cell at (x, y) and reports whether the coordinates
// were in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.Contains(x, y) {
		return false
	}
	g.cells[g.Index(x, y)] = v
	return true
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.cells }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.cells))
	copy(cp, g.cells)
	return &Grid[T]{w: g.w, h: g.h, cells: cp}
}

// Neighborhood is one cell's rule input. Self is the center value; Neighbors
// holds the adjacent values in a fixed order: left, right, then the vertical
// neighbor. Candidates outside the grid are omitted, so Neighbors holds
// between zero and three values. OK is false when the center itself is out of
// bounds, in which case the whole neighborhood is empty.
type Neighborhood[T any] struct {
	Self      T
	Neighbors []T
	OK        bool
}

// Values flattens the neighborhood into a self-first ordered slice.
func (n Neighborhood[T]) Values() []T {
	if !n.OK {
		return nil
	}
	out := make([]T, 0, 1+len(n.Neighbors))
	out = append(out, n.Self)
	return append(out, n.Neighbors...)
}

// Neighborhood gathers the triangular neighborhood around (x, y). The grid is
// read as a brick tiling of alternating triangles: the parity of x+y picks the
// orientation, so even cells point up and reach the row below while odd cells
// point down and reach the row above.
//
//	·-----·          ·-----·
//	 \ c /  even    / \ 3 /  odd: c sits between 1 and 2, under 3
//	  \ /          / c \ /
func (g *Grid[T]) Neighborhood(x, y int) Neighborhood[T] {
	return g.neighborhoodInto(x, y, nil)
}

// neighborhoodInto is Neighborhood with caller-provided backing storage. The
// returned Neighbors slice aliases buf, so it is only valid until buf is
// reused.
func (g *Grid[T]) neighborhoodInto(x, y int, buf []T) Neighborhood[T] {
	var n Neighborhood[T]
	self, ok := g.At(x, y)
	if !ok {
		return n
	}
	n.Self = self
	n.OK = true
	if buf == nil {
		buf = make([]T, 0, 3)
	}
	if v, ok := g.At(x-1, y); ok {
		buf = append(buf, v)
	}
	if v, ok := g.At(x+1, y); ok {
		buf = append(buf, v)
	}
	dy := 1
	if (x+y)&1 == 1 {
		dy = -1
	}
	if v, ok := g.At(x, y+dy); ok {
		buf = append(buf, v)
	}
	n.Neighbors = buf
	return n
}
