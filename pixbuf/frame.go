package pixbuf

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Frame is a fixed-size RGBA pixel buffer.
//
// The backing image is never handed out; callers go through the
// bounds-checked accessors, Scale, or CopyPixels. Frame satisfies draw.Image
// so font drawers and scalers can target it directly.
type Frame struct {
	img *image.RGBA
}

var _ draw.Image = (*Frame)(nil)

// NewFrame allocates a width×height frame of transparent black pixels.
func NewFrame(width, height int) *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

func (f *Frame) Width() int  { return f.img.Rect.Dx() }
func (f *Frame) Height() int { return f.img.Rect.Dy() }

func (f *Frame) ColorModel() color.Model     { return color.RGBAModel }
func (f *Frame) Bounds() image.Rectangle     { return f.img.Rect }
func (f *Frame) At(x, y int) color.Color     { return f.img.RGBAAt(x, y) }
func (f *Frame) Set(x, y int, c color.Color) { f.img.Set(x, y, c) }

// RGBAAt returns the pixel at (x, y); ok is false outside the frame.
func (f *Frame) RGBAAt(x, y int) (c color.RGBA, ok bool) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return c, false
	}
	return f.img.RGBAAt(x, y), true
}

// SetRGBA writes c at (x, y); it returns false outside the frame.
func (f *Frame) SetRGBA(x, y int, c color.RGBA) bool {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return false
	}
	f.img.SetRGBA(x, y, c)
	return true
}

// Fill paints the whole frame with c.
func (f *Frame) Fill(c color.RGBA) {
	pix := f.img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// FillRect paints the w×h rectangle at (x, y), clipped to the frame.
func (f *Frame) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Rect)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			f.img.SetRGBA(xx, yy, c)
		}
	}
}

// BlendRect mixes c over the w×h rectangle at (x, y) with the given opacity
// in [0, 1]. The result stays opaque.
func (f *Frame) BlendRect(x, y, w, h int, c color.RGBA, alpha float64) {
	if alpha >= 1 {
		f.FillRect(x, y, w, h, c)
		return
	}
	if alpha <= 0 {
		return
	}
	mix := func(dst, src uint8) uint8 {
		return uint8(float64(dst)*(1-alpha) + float64(src)*alpha + 0.5)
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Rect)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			d := f.img.RGBAAt(xx, yy)
			f.img.SetRGBA(xx, yy, color.RGBA{mix(d.R, c.R), mix(d.G, c.G), mix(d.B, c.B), 0xff})
		}
	}
}

// StrokeRect outlines the w×h rectangle at (x, y) with a one pixel line.
// Like the AWT drawRect it covers w+1 by h+1 pixels.
func (f *Frame) StrokeRect(x, y, w, h int, c color.RGBA) {
	for dx := 0; dx <= w; dx++ {
		f.SetRGBA(x+dx, y, c)
		f.SetRGBA(x+dx, y+h, c)
	}
	for dy := 0; dy <= h; dy++ {
		f.SetRGBA(x, y+dy, c)
		f.SetRGBA(x+w, y+dy, c)
	}
}

// CopyFrom copies src into f. Frames of different sizes are copied over
// their common top-left region.
func (f *Frame) CopyFrom(src *Frame) {
	draw.Draw(f.img, f.img.Rect, src.img, image.Point{}, draw.Src)
}

// Scale resamples f into the whole of dst using s.
func (f *Frame) Scale(dst *Frame, s draw.Scaler) {
	s.Scale(dst.img, dst.img.Rect, f.img, f.img.Rect, draw.Src, nil)
}

// Equal reports whether both frames have the same size and pixels.
func (f *Frame) Equal(other *Frame) bool {
	return f.img.Rect == other.img.Rect && bytes.Equal(f.img.Pix, other.img.Pix)
}

// CopyPixels copies the frame as tightly packed RGBA bytes into dst and
// returns the number of bytes written.
func (f *Frame) CopyPixels(dst []byte) int {
	return copy(dst, f.img.Pix)
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	c := NewFrame(f.Width(), f.Height())
	copy(c.img.Pix, f.img.Pix)
	return c
}

// SubImage returns a copy of the r region of the frame as a standard image,
// for encoding snapshots.
func (f *Frame) SubImage(r image.Rectangle) *image.RGBA {
	r = r.Intersect(f.img.Rect)
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Rect, f.img, r.Min, draw.Src)
	return out
}
