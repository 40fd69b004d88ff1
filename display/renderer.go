// Package display turns clock snapshots into finished frames and writes them
// out, either to a window (see display/window) or to an image file.
package display

import (
	"fmt"

	"github.com/plus3/radial/compose"
	"github.com/plus3/radial/config"
	"github.com/plus3/radial/loop"
	"github.com/plus3/radial/pixbuf"
	"github.com/plus3/radial/present"
	"github.com/plus3/radial/projector"
	"github.com/plus3/radial/raster"
)

// Board describes the game board the renderer will be fed.
type Board struct {
	Cols, Rows int
	// HiddenRows at the top of the board are never drawn.
	HiddenRows int
}

// Renderer runs the frame pipeline: rasterize the board, wrap it around the
// annulus with the HUD, then smooth. It is not safe for concurrent use.
type Renderer struct {
	raster     raster.Rasterizer
	compositor *compose.Compositor
	presenter  *present.Presenter
	credit     string
}

// NewRenderer builds the pipeline described by cfg for boards shaped like b.
func NewRenderer(cfg config.Config, b Board) (*Renderer, error) {
	var r raster.Rasterizer
	switch cfg.Projection.Source {
	case config.SourceDirect:
		r = raster.NewDirect(b.Cols, b.Rows, b.HiddenRows)
	default:
		r = raster.NewImage(cfg.Projection.GridWidth, cfg.Projection.GridHeight, b.HiddenRows)
	}

	gw, gh := r.Size()
	p, err := projector.New(cfg.Window.Width, cfg.Window.Height, gw, gh,
		cfg.Projection.InnerRadius, cfg.Projection.OuterRadius)
	if err != nil {
		return nil, fmt.Errorf("projector: %w", err)
	}
	c, err := compose.New(projector.NewTable(p))
	if err != nil {
		return nil, err
	}

	return &Renderer{
		raster:     r,
		compositor: c,
		presenter:  present.New(cfg.Window.Width, cfg.Window.Height, cfg.Render.Smooth),
		credit:     cfg.Render.Credit,
	}, nil
}

// Size returns the frame dimensions.
func (r *Renderer) Size() (w, h int) { return r.presenter.Size() }

// Render draws s. The returned frame is reused by the next call.
func (r *Renderer) Render(s loop.Snapshot) *pixbuf.Frame {
	r.raster.Draw(s.Snapshot)
	hud := compose.HUD{
		Score:      s.Score,
		Next:       s.Next,
		GameOver:   s.State == loop.GameOver,
		PanelAlpha: s.PanelAlpha,
		Credit:     r.credit,
	}
	frame := r.compositor.Compose(r.raster, s.Angle, hud)
	return r.presenter.Present(frame)
}
