package core

// Grid is the row-major cell array the kernels borrow and mutate
// in-place. It is owned by a façade, which is responsible for
// populating it before handing it to a kernel.
type Grid struct {
	Rows, Cols int
	cells      []Code
}

// NewGrid allocates an empty (all-CodeEmpty) grid of the given shape.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Code, rows*cols),
	}
}

// InBounds reports whether (r, c) addresses a cell in the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}

// At returns the code at (r, c). Callers must ensure InBounds(r, c).
func (g *Grid) At(r, c int) Code {
	return g.cells[g.index(r, c)]
}

// Set writes the code at (r, c). Callers must ensure InBounds(r, c).
func (g *Grid) Set(r, c int, code Code) {
	g.cells[g.index(r, c)] = code
}

// Len returns the total cell count (Rows * Cols).
func (g *Grid) Len() int {
	return len(g.cells)
}

// ForEach visits every cell in row-major order.
func (g *Grid) ForEach(fn func(r, c int, code Code)) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fn(r, c, g.At(r, c))
		}
	}
}

// CountBees returns the number of bee cells (active or waiting) on the
// grid. Used by tests and callers checking that a tick conserves bees.
func (g *Grid) CountBees() int {
	n := 0
	for _, code := range g.cells {
		if code.IsBee() {
			n++
		}
	}
	return n
}

// Heatmap is the same-shape floating-point companion to Grid. Wall
// cells hold NaN; all other cells hold a finite temperature.
type Heatmap struct {
	Rows, Cols int
	temps      []float64
}

// NewHeatmap allocates a heatmap of the given shape, initialized to 0.
func NewHeatmap(rows, cols int) *Heatmap {
	return &Heatmap{
		Rows:  rows,
		Cols:  cols,
		temps: make([]float64, rows*cols),
	}
}

func (h *Heatmap) index(r, c int) int {
	return r*h.Cols + c
}

// At returns the temperature at (r, c).
func (h *Heatmap) At(r, c int) float64 {
	return h.temps[h.index(r, c)]
}

// Set writes the temperature at (r, c).
func (h *Heatmap) Set(r, c int, t float64) {
	h.temps[h.index(r, c)] = t
}

// DistanceField is a flat row-major int buffer sized Rows*Cols. A
// value of -1 means unreachable.
type DistanceField struct {
	Rows, Cols int
	dist       []int
}

// NewDistanceField allocates a distance field of the given shape with
// every cell initialized to -1 (unreachable).
func NewDistanceField(rows, cols int) *DistanceField {
	d := &DistanceField{Rows: rows, Cols: cols, dist: make([]int, rows*cols)}
	d.Reset()
	return d
}

// Reset marks every cell unreachable again, so the same allocation can
// be reused across the two C3 calls inside recalculate_heat.
func (d *DistanceField) Reset() {
	for i := range d.dist {
		d.dist[i] = -1
	}
}

func (d *DistanceField) index(r, c int) int {
	return r*d.Cols + c
}

// At returns the distance at (r, c), or -1 if unreachable.
func (d *DistanceField) At(r, c int) int {
	return d.dist[d.index(r, c)]
}

// Set writes the distance at (r, c).
func (d *DistanceField) Set(r, c int, v int) {
	d.dist[d.index(r, c)] = v
}
