package compose

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/plus3/radial/game"
	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
)

// HUD is the overlay drawn in destination space on top of the radial view.
type HUD struct {
	Score int
	// Next is the PreviewSize×PreviewSize next-piece preview; nil hides it.
	Next     *pixbuf.Grid[palette.Index]
	GameOver bool
	// PanelAlpha is the opacity of the game-over backdrop. Zero means opaque.
	PanelAlpha float64
	Credit     string
}

const (
	previewCell = 20
	panelW      = 300
	panelH      = 100
)

// layout holds HUD anchors in destination pixels. For a 600×600 frame they
// land on the classic positions; other sizes keep the same margins.
type layout struct {
	score   image.Point
	preview image.Point
	panel   image.Point
	over    image.Point
	restart image.Point
	credit  image.Point
}

func layoutFor(w, h int) layout {
	panel := image.Pt(w/2-panelW/2-5, h/2-panelH/2)
	return layout{
		score:   image.Pt(20, 50),
		preview: image.Pt(w/2-40, h/2-40),
		panel:   panel,
		over:    panel.Add(image.Pt(85, 40)),
		restart: panel.Add(image.Pt(35, 75)),
		credit:  image.Pt(w-85, h-20),
	}
}

func (c *Compositor) drawHUD(hud HUD) {
	l := layoutFor(c.dst.Width(), c.dst.Height())

	c.text(l.score, palette.Black, "SCORE: "+strconv.Itoa(hud.Score))
	if hud.GameOver {
		c.drawGameOver(l, hud.PanelAlpha)
	} else {
		c.drawPreview(l.preview, hud.Next)
	}
	if hud.Credit != "" {
		c.text(l.credit, palette.Gray, hud.Credit)
	}
}

func (c *Compositor) drawPreview(at image.Point, next *pixbuf.Grid[palette.Index]) {
	c.text(at, palette.DarkGray, "NEXT: ")
	for row := 0; row < game.PreviewSize; row++ {
		for col := 0; col < game.PreviewSize; col++ {
			x := at.X + col*previewCell
			y := at.Y + row*previewCell + 10
			c.dst.StrokeRect(x, y, previewCell, previewCell, palette.Gray)

			var idx palette.Index
			if next != nil {
				idx, _ = next.Get(col, row)
			}
			if idx == palette.Empty || !idx.Valid() {
				continue
			}
			e := palette.Lookup(idx)
			c.dst.FillRect(x, y, previewCell, previewCell, e.Fill)
			c.dst.StrokeRect(x, y, previewCell, previewCell, e.Edge)
		}
	}
}

func (c *Compositor) drawGameOver(l layout, alpha float64) {
	if alpha <= 0 {
		alpha = 1
	}
	c.dst.BlendRect(l.panel.X, l.panel.Y, panelW, panelH, palette.Background, alpha)
	c.dst.StrokeRect(l.panel.X, l.panel.Y, panelW, panelH, palette.Black)
	c.text(l.over, palette.Black, "GAME OVER")
	c.text(l.restart, palette.Black, "PRESS SPACE TO PLAY")
}

// text draws s with its baseline starting at p.
func (c *Compositor) text(p image.Point, col color.RGBA, s string) {
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}
