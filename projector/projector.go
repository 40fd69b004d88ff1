// Package projector maps destination pixels of the radial view back to cells
// of the rectangular grid texture.
//
// The texture is wrapped around an annulus centred in the destination: the
// polar angle selects the column and the distance from the centre selects
// the row. The innermost ring shows the last row and the outermost ring the
// first row. The mapping is lossy on purpose: many pixels near the inner
// edge share a row and pixels outside [DMin, DMax] have no source at all.
package projector

import (
	"errors"
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// ErrInvalidAnnulus is returned by New when the parameters cannot describe a ring.
var ErrInvalidAnnulus = errors.New("projector: invalid annulus")

// Point is a source coordinate in the grid texture.
type Point struct {
	X, Y int
}

// Projector holds the fixed geometry of one view.
type Projector struct {
	destW, destH int
	gridW, gridH int
	dMin, dMax   float64
}

// New builds a projector for a destW×destH destination and a gridW×gridH
// texture shown between radii dMin and dMax.
func New(destW, destH, gridW, gridH int, dMin, dMax float64) (*Projector, error) {
	switch {
	case destW <= 0 || destH <= 0:
		return nil, fmt.Errorf("%w: destination %dx%d", ErrInvalidAnnulus, destW, destH)
	case gridW <= 0 || gridH <= 0:
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidAnnulus, gridW, gridH)
	case math.IsNaN(dMin) || math.IsNaN(dMax) || dMin < 0 || dMax <= dMin:
		return nil, fmt.Errorf("%w: radii %g..%g", ErrInvalidAnnulus, dMin, dMax)
	}
	return &Projector{
		destW: destW, destH: destH,
		gridW: gridW, gridH: gridH,
		dMin: dMin, dMax: dMax,
	}, nil
}

// DestSize returns the size of the destination frame the projector maps from.
func (p *Projector) DestSize() (w, h int) { return p.destW, p.destH }

// Polar returns the offset-independent polar coordinates of a destination
// pixel: the angle a0 in [0, 2π] and the distance d from the centre.
func (p *Projector) Polar(destX, destY int) (a0, d float64) {
	x := float64(destX - p.destW/2)
	y := float64(destY - p.destH/2)
	return math.Atan2(y, x) + math.Pi, math.Sqrt(x*x + y*y)
}

// FromPolar finishes a projection started by Polar for the given angle offset.
func (p *Projector) FromPolar(a0, d, angleOffset float64) (Point, bool) {
	if d < p.dMin || d > p.dMax {
		return Point{}, false
	}
	a := Normalize(a0 + angleOffset)
	tx := float64(p.gridW-1) * (a / twoPi)
	ty := float64(p.gridH-1) * (1 - (d-p.dMin)/(p.dMax-p.dMin))
	return Point{
		X: clamp(int(tx), p.gridW-1),
		Y: clamp(int(ty), p.gridH-1),
	}, true
}

// Project maps destination pixel (destX, destY) to a texture cell for the
// given rotation. ok is false when the pixel lies outside the annulus.
func (p *Projector) Project(destX, destY int, angleOffset float64) (pt Point, ok bool) {
	a0, d := p.Polar(destX, destY)
	return p.FromPolar(a0, d, angleOffset)
}

// Normalize reduces an angle into [0, 2π).
func Normalize(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// Rounding can land exactly on 2π after the add above.
	if a >= twoPi {
		a = 0
	}
	return a
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
