package raster_test

import (
	"testing"

	"github.com/plus3/radial/game"
	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
	"github.com/plus3/radial/raster"
	"github.com/stretchr/testify/assert"
)

func snapshot(cells map[[2]int]palette.Index) game.Snapshot {
	board := pixbuf.NewGrid[palette.Index](20, 24)
	for p, c := range cells {
		board.Set(p[0], p[1], c)
	}
	return game.Snapshot{Board: board, Next: pixbuf.NewGrid[palette.Index](game.PreviewSize, game.PreviewSize)}
}

func TestImage(t *testing.T) {
	img := raster.NewImage(raster.DefaultSize, raster.DefaultSize, 4)
	img.Draw(snapshot(map[[2]int]palette.Index{
		{0, 4}:   palette.Red,
		{5, 0}:   palette.Blue,
		{19, 23}: palette.Yellow,
	}))

	w, h := img.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)

	tests := []struct {
		name string
		x, y int
		want palette.Texel
	}{
		{"first visible row", 2, 2, palette.Fill(palette.Red)},
		{"filled cell outline", 2, 0, palette.Edge(palette.Red)},
		{"left rail", 0, 50, palette.Rail},
		{"left rail second column", 1, 50, palette.Rail},
		{"right rail", 99, 50, palette.Rail},
		{"empty cell", 98, 52, palette.Well},
		{"empty cell outline", 95, 52, palette.WellEdge},
		{"bottom row empty cell", 52, 98, palette.Well},
		{"bottom right cell", 97, 97, palette.Fill(palette.Yellow)},
		{"out of range", 100, 0, palette.Texel{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, img.At(tt.x, tt.y))
		})
	}

	t.Run("hidden rows are not drawn", func(t *testing.T) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if img.At(x, y).Index == palette.Blue {
					t.Fatalf("hidden cell drawn at (%d, %d)", x, y)
				}
			}
		}
	})
}

func TestImageRedrawClearsOldCells(t *testing.T) {
	img := raster.NewImage(raster.DefaultSize, raster.DefaultSize, 4)
	img.Draw(snapshot(map[[2]int]palette.Index{{3, 10}: palette.Cyan}))
	assert.Equal(t, palette.Fill(palette.Cyan), img.At(17, 32))

	img.Draw(snapshot(nil))
	assert.Equal(t, palette.Well, img.At(17, 32))
}

func TestImageWithoutBoard(t *testing.T) {
	img := raster.NewImage(10, 10, 4)
	img.Draw(game.Snapshot{})
	assert.Equal(t, palette.Rail, img.At(0, 0))
	assert.Equal(t, palette.Texel{}, img.At(5, 5))
}

func TestDirect(t *testing.T) {
	d := raster.NewDirect(20, 24, 4)
	d.Draw(snapshot(map[[2]int]palette.Index{
		{3, 10}: palette.Green,
		{3, 1}:  palette.Magenta,
	}))

	w, h := d.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, palette.Fill(palette.Green), d.At(3, 6))
	assert.Equal(t, palette.Texel{}, d.At(4, 6))
	assert.Equal(t, palette.Texel{}, d.At(-1, 0))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.NotEqual(t, palette.Magenta, d.At(x, y).Index)
		}
	}
}
