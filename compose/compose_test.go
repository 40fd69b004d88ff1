package compose_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/plus3/radial/compose"
	"github.com/plus3/radial/game"
	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
	"github.com/plus3/radial/projector"
	"github.com/plus3/radial/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// texFunc adapts a function to raster.Source over a 100×100 texture.
type texFunc func(x, y int) palette.Texel

func (f texFunc) Size() (int, int)          { return 100, 100 }
func (f texFunc) At(x, y int) palette.Texel { return f(x, y) }

func uniform(t palette.Texel) texFunc {
	return func(int, int) palette.Texel { return t }
}

func emptyPreview() *pixbuf.Grid[palette.Index] {
	return pixbuf.NewGrid[palette.Index](game.PreviewSize, game.PreviewSize)
}

func newCompositor(t *testing.T) *compose.Compositor {
	t.Helper()
	p, err := projector.New(600, 600, 100, 100, 80, 270)
	require.NoError(t, err)
	c, err := compose.New(projector.NewTable(p))
	require.NoError(t, err)
	return c
}

func pixel(t *testing.T, f *pixbuf.Frame, x, y int) color.RGBA {
	t.Helper()
	c, ok := f.RGBAAt(x, y)
	require.True(t, ok, "(%d, %d) outside frame", x, y)
	return c
}

func TestComposeBackground(t *testing.T) {
	c := newCompositor(t)
	f := c.Compose(uniform(palette.Texel{}), 0, compose.HUD{Next: emptyPreview()})

	w, h := c.Size()
	assert.Equal(t, 600, w)
	assert.Equal(t, 600, h)

	for _, p := range [][2]int{{300, 450}, {450, 300}, {150, 300}, {10, 590}, {350, 300}} {
		assert.Equal(t, palette.Background, pixel(t, f, p[0], p[1]), "at %v", p)
	}
}

func TestComposeEmptyBoardIsBackground(t *testing.T) {
	p, err := projector.New(600, 600, 100, 100, 80, 270)
	require.NoError(t, err)
	table := projector.NewTable(p)
	c, err := compose.New(table)
	require.NoError(t, err)

	board := pixbuf.NewGrid[palette.Index](100, 100)
	src := raster.NewDirect(100, 100, 0)
	src.Draw(game.Snapshot{Board: board})

	for _, offset := range []float64{0, 0.7, math.Pi, 5.9} {
		f := c.Compose(src, offset, compose.HUD{})
		bad := 0
		table.Each(offset, func(x, y int, _ projector.Point) {
			if got, _ := f.RGBAAt(x, y); got != palette.Background {
				bad++
			}
		})
		assert.Zero(t, bad, "offset %v", offset)
	}
}

func TestComposeSingleCell(t *testing.T) {
	p, err := projector.New(600, 600, 100, 100, 80, 270)
	require.NoError(t, err)
	c, err := compose.New(projector.NewTable(p))
	require.NoError(t, err)

	// Straight below the centre samples column 74; row 0 is the outer ring.
	board := pixbuf.NewGrid[palette.Index](100, 100)
	board.Set(74, 0, palette.Red)
	src := raster.NewDirect(100, 100, 0)
	src.Draw(game.Snapshot{Board: board})

	f := c.Compose(src, 0, compose.HUD{})
	assert.Equal(t, palette.Lookup(palette.Red).Fill, pixel(t, f, 300, 569), "outer edge")
	assert.Equal(t, palette.Background, pixel(t, f, 300, 540))
	assert.Equal(t, palette.Background, pixel(t, f, 300, 381), "inner edge")
	assert.Equal(t, palette.Background, pixel(t, f, 300, 31), "opposite side")
}

func TestComposeAnnulus(t *testing.T) {
	c := newCompositor(t)
	f := c.Compose(uniform(palette.Fill(palette.Red)), 0, compose.HUD{Next: emptyPreview()})

	red := palette.Lookup(palette.Red).Fill
	assert.Equal(t, red, pixel(t, f, 300, 450), "inside the annulus")
	assert.Equal(t, red, pixel(t, f, 569, 300), "near the outer radius")
	assert.Equal(t, palette.Background, pixel(t, f, 350, 300), "inside the hole")
	assert.Equal(t, palette.Background, pixel(t, f, 10, 590), "outside the outer radius")
}

func TestComposeRingPlacement(t *testing.T) {
	c := newCompositor(t)
	firstRow := texFunc(func(x, y int) palette.Texel {
		if y == 0 {
			return palette.Fill(palette.Blue)
		}
		return palette.Texel{}
	})
	f := c.Compose(firstRow, 0, compose.HUD{Next: emptyPreview()})

	blue := palette.Lookup(palette.Blue).Fill
	assert.Equal(t, blue, pixel(t, f, 569, 300), "first row is the outer ring")
	assert.Equal(t, palette.Background, pixel(t, f, 400, 300))
}

func TestComposeRotation(t *testing.T) {
	c := newCompositor(t)
	firstCol := texFunc(func(x, y int) palette.Texel {
		if x == 0 {
			return palette.Fill(palette.Green)
		}
		return palette.Texel{}
	})
	green := palette.Lookup(palette.Green).Fill

	f := c.Compose(firstCol, 0, compose.HUD{Next: emptyPreview()})
	assert.Equal(t, green, pixel(t, f, 150, 300))
	assert.Equal(t, palette.Background, pixel(t, f, 450, 300))

	f = c.Compose(firstCol, math.Pi, compose.HUD{Next: emptyPreview()})
	assert.Equal(t, palette.Background, pixel(t, f, 150, 300))
	assert.Equal(t, green, pixel(t, f, 450, 300))
}

func TestComposeHUD(t *testing.T) {
	c := newCompositor(t)
	src := uniform(palette.Fill(palette.Red))

	t.Run("score is drawn", func(t *testing.T) {
		f := c.Compose(src, 0, compose.HUD{Score: 1200, Next: emptyPreview()})
		inked := 0
		for y := 30; y <= 52; y++ {
			for x := 20; x < 160; x++ {
				if p := pixel(t, f, x, y); p.R < 128 && p.G < 128 && p.B < 128 {
					inked++
				}
			}
		}
		assert.Positive(t, inked)
	})

	t.Run("running shows the preview", func(t *testing.T) {
		next := emptyPreview()
		next.Set(0, 0, palette.Blue)
		f := c.Compose(src, 0, compose.HUD{Next: next})

		assert.Equal(t, palette.Lookup(palette.Blue).Fill, pixel(t, f, 265, 275))
		assert.Equal(t, palette.Gray, pixel(t, f, 260, 340), "empty preview cell outline")
		assert.Equal(t, palette.Lookup(palette.Red).Fill, pixel(t, f, 150, 300), "no panel")
	})

	t.Run("game over shows the panel", func(t *testing.T) {
		next := emptyPreview()
		next.Set(0, 0, palette.Blue)
		f := c.Compose(src, 0, compose.HUD{Next: next, GameOver: true})

		assert.Equal(t, palette.Background, pixel(t, f, 150, 300), "panel backdrop")
		assert.Equal(t, palette.Black, pixel(t, f, 145, 300), "panel border")
		assert.Equal(t, palette.Background, pixel(t, f, 260, 340), "no preview")
	})

	t.Run("panel fades", func(t *testing.T) {
		f := c.Compose(src, 0, compose.HUD{GameOver: true, PanelAlpha: 0.5})
		assert.Equal(t, color.RGBA{255, 128, 128, 255}, pixel(t, f, 150, 300))
	})

	t.Run("credit", func(t *testing.T) {
		f := c.Compose(uniform(palette.Texel{}), 0, compose.HUD{Next: emptyPreview(), Credit: "by O.L."})
		gray := 0
		for y := 560; y <= 582; y++ {
			for x := 515; x < 600; x++ {
				if p := pixel(t, f, x, y); p != palette.Background {
					gray++
				}
			}
		}
		assert.Positive(t, gray)
	})

	t.Run("game over without preview grid", func(t *testing.T) {
		assert.NotPanics(t, func() {
			c.Compose(src, 0, compose.HUD{GameOver: true})
			c.Compose(src, 0, compose.HUD{})
		})
	})
}

func TestComposeReusesFrame(t *testing.T) {
	c := newCompositor(t)
	a := c.Compose(uniform(palette.Texel{}), 0, compose.HUD{})
	b := c.Compose(uniform(palette.Texel{}), 0, compose.HUD{})
	assert.Same(t, a, b)
}
