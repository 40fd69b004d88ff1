// Package compose renders one radial frame: the rasterized board wrapped
// around the annulus, then the HUD on top.
package compose

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
	"github.com/plus3/radial/projector"
	"github.com/plus3/radial/raster"
)

// FontSize is the HUD text size in pixels.
const FontSize = 20

// Compositor owns the offscreen frame. It is not safe for concurrent use;
// the returned frame is reused by the next Compose call.
type Compositor struct {
	table *projector.Table
	dst   *pixbuf.Frame
	face  font.Face
}

// New builds a compositor drawing into a frame sized to the projector's
// destination.
func New(table *projector.Table) (*Compositor, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud font face: %w", err)
	}

	w, h := table.Projector().DestSize()
	return &Compositor{
		table: table,
		dst:   pixbuf.NewFrame(w, h),
		face:  face,
	}, nil
}

// Size returns the dimensions of the composed frame.
func (c *Compositor) Size() (w, h int) { return c.dst.Width(), c.dst.Height() }

// Compose clears the frame to background, samples src for every pixel inside
// the annulus at the given rotation and draws hud over the result.
//
// src is sampled in the projector's grid space; texels outside src read as
// background.
func (c *Compositor) Compose(src raster.Source, angleOffset float64, hud HUD) *pixbuf.Frame {
	c.dst.Fill(palette.Background)
	c.table.Each(angleOffset, func(x, y int, p projector.Point) {
		c.dst.SetRGBA(x, y, src.At(p.X, p.Y).RGBA())
	})
	c.drawHUD(hud)
	return c.dst
}
