package projector

// sample is the cached, rotation-independent part of one annulus pixel.
type sample struct {
	x, y int
	a0   float64
	row  int
}

// Table caches Polar for every destination pixel inside the annulus so a
// frame only pays for the angle wrap and the column lookup.
type Table struct {
	p       *Projector
	samples []sample
}

// NewTable precomputes the annulus pixels of p.
func NewTable(p *Projector) *Table {
	t := &Table{p: p}
	for y := 0; y < p.destH; y++ {
		for x := 0; x < p.destW; x++ {
			a0, d := p.Polar(x, y)
			pt, ok := p.FromPolar(a0, d, 0)
			if !ok {
				continue
			}
			t.samples = append(t.samples, sample{x: x, y: y, a0: a0, row: pt.Y})
		}
	}
	return t
}

// Projector returns the geometry the table was built from.
func (t *Table) Projector() *Projector { return t.p }

// Len is the number of destination pixels inside the annulus.
func (t *Table) Len() int { return len(t.samples) }

// Each calls fn for every annulus pixel with its source cell at the given
// rotation. Pixels outside the annulus are not visited.
func (t *Table) Each(angleOffset float64, fn func(destX, destY int, src Point)) {
	w := float64(t.p.gridW - 1)
	hi := t.p.gridW - 1
	for _, s := range t.samples {
		a := Normalize(s.a0 + angleOffset)
		fn(s.x, s.y, Point{X: clamp(int(w*(a/twoPi)), hi), Y: s.row})
	}
}
