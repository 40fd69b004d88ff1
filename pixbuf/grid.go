// Package pixbuf provides fixed-size, bounds-checked 2D buffers.
//
// Coordinates produced by floating-point transforms are never trusted: every
// read and write checks bounds, and out-of-range access is reported instead of
// faulting.
package pixbuf

// Grid is a fixed W×H array of values of type T stored row-major.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a grid. Non-positive dimensions produce an empty grid.
func NewGrid[T any](width, height int) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the value at (x, y). ok is false, and the zero value returned,
// when the coordinate is outside the grid.
func (g *Grid[T]) Get(x, y int) (v T, ok bool) {
	if !g.In(x, y) {
		return v, false
	}
	return g.cells[y*g.width+x], true
}

// Set writes v at (x, y). It returns false and leaves the grid untouched when
// the coordinate is outside the grid.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.In(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// FillRect sets every cell of the w×h rectangle at (x, y) to v, clipped to the grid.
func (g *Grid[T]) FillRect(x, y, w, h int, v T) {
	for yy := max(y, 0); yy < min(y+h, g.height); yy++ {
		for xx := max(x, 0); xx < min(x+w, g.width); xx++ {
			g.cells[yy*g.width+xx] = v
		}
	}
}

// StrokeRect draws the outline of the w×h rectangle at (x, y), clipped to the grid.
func (g *Grid[T]) StrokeRect(x, y, w, h int, v T) {
	if w <= 0 || h <= 0 {
		return
	}
	for dx := 0; dx < w; dx++ {
		g.Set(x+dx, y, v)
		g.Set(x+dx, y+h-1, v)
	}
	for dy := 0; dy < h; dy++ {
		g.Set(x, y+dy, v)
		g.Set(x+w-1, y+dy, v)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
