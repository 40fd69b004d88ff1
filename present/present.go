// Package present smooths composed frames before display.
package present

import (
	"golang.org/x/image/draw"

	"github.com/plus3/radial/pixbuf"
)

// Factor is the down/up sampling ratio.
const Factor = 2

// Presenter resamples a frame through a half-size buffer so the sharp
// sampling steps of the radial projection are softened.
type Presenter struct {
	// Smooth disables resampling when false; frames are copied as they are.
	Smooth bool
	// Scaler defaults to draw.BiLinear.
	Scaler draw.Scaler

	half *pixbuf.Frame
	out  *pixbuf.Frame
}

// New returns a smoothing presenter for w×h frames.
func New(w, h int, smooth bool) *Presenter {
	return &Presenter{
		Smooth: smooth,
		Scaler: draw.BiLinear,
		half:   pixbuf.NewFrame(max(w/Factor, 1), max(h/Factor, 1)),
		out:    pixbuf.NewFrame(w, h),
	}
}

// Present returns the display-ready version of f. The result is owned by the
// presenter and overwritten by the next call.
func (p *Presenter) Present(f *pixbuf.Frame) *pixbuf.Frame {
	if !p.Smooth {
		p.out.CopyFrom(f)
		return p.out
	}
	s := p.Scaler
	if s == nil {
		s = draw.BiLinear
	}
	f.Scale(p.half, s)
	p.half.Scale(p.out, s)
	return p.out
}

// Size returns the output dimensions.
func (p *Presenter) Size() (w, h int) { return p.out.Width(), p.out.Height() }
