// Package raster turns a game snapshot into the texel texture that the
// compositor wraps around the annulus.
package raster

import (
	"github.com/plus3/radial/game"
	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
)

// Source is a texel texture. Coordinates outside Size sample background.
type Source interface {
	Size() (w, h int)
	At(x, y int) palette.Texel
}

// Rasterizer is a Source that can be redrawn from a snapshot.
type Rasterizer interface {
	Source
	Draw(s game.Snapshot)
}

const (
	DefaultCellSize = 5
	DefaultSize     = 100
)

// Image draws the board as a picture of cells: every visible cell is a
// CellSize square with a well backdrop and outline, filled cells carry their
// color with a darker edge, and red rails mark the left and right walls.
// The first HiddenRows rows of the board are spawn space and are not drawn.
type Image struct {
	CellSize   int
	HiddenRows int

	tex *pixbuf.Grid[palette.Texel]
}

var _ Rasterizer = (*Image)(nil)

// NewImage allocates a w×h texture with the default cell size.
func NewImage(w, h, hiddenRows int) *Image {
	return &Image{
		CellSize:   DefaultCellSize,
		HiddenRows: max(hiddenRows, 0),
		tex:        pixbuf.NewGrid[palette.Texel](w, h),
	}
}

func (r *Image) Size() (w, h int) { return r.tex.Width(), r.tex.Height() }

func (r *Image) At(x, y int) palette.Texel {
	t, _ := r.tex.Get(x, y)
	return t
}

// Draw repaints the whole texture from s.
func (r *Image) Draw(s game.Snapshot) {
	r.tex.Fill(palette.Texel{})
	if s.Board != nil {
		cell := max(r.CellSize, 1)
		dy := -r.HiddenRows * cell
		for row := r.HiddenRows; row < s.Board.Height(); row++ {
			for col := 0; col < s.Board.Width(); col++ {
				x, y := col*cell, row*cell+dy
				r.tex.FillRect(x, y, cell, cell, palette.Well)
				// Outlines cover one extra pixel on the right and bottom edge.
				r.tex.StrokeRect(x, y, cell+1, cell+1, palette.WellEdge)

				c, _ := s.Board.Get(col, row)
				if c == palette.Empty {
					continue
				}
				r.tex.FillRect(x, y, cell, cell, palette.Fill(c))
				r.tex.StrokeRect(x, y, cell+1, cell+1, palette.Edge(c))
			}
		}
	}

	w, h := r.Size()
	r.tex.FillRect(0, 0, 2, h, palette.Rail)
	r.tex.FillRect(w-1, 0, 2, h, palette.Rail)
}

// Direct maps every visible board cell to a single fill texel.
type Direct struct {
	HiddenRows int

	tex *pixbuf.Grid[palette.Texel]
}

var _ Rasterizer = (*Direct)(nil)

// NewDirect allocates a texture for a cols×rows board minus its hidden rows.
func NewDirect(cols, rows, hiddenRows int) *Direct {
	hiddenRows = min(max(hiddenRows, 0), rows)
	return &Direct{
		HiddenRows: hiddenRows,
		tex:        pixbuf.NewGrid[palette.Texel](cols, rows-hiddenRows),
	}
}

func (r *Direct) Size() (w, h int) { return r.tex.Width(), r.tex.Height() }

func (r *Direct) At(x, y int) palette.Texel {
	t, _ := r.tex.Get(x, y)
	return t
}

func (r *Direct) Draw(s game.Snapshot) {
	r.tex.Fill(palette.Texel{})
	if s.Board == nil {
		return
	}
	w, h := r.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := s.Board.Get(x, y+r.HiddenRows); ok && c != palette.Empty {
				r.tex.Set(x, y, palette.Fill(c))
			}
		}
	}
}
