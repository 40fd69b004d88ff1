// Package window shows the radial view in an ebiten window and feeds key
// presses to the clock.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/radial"
	"github.com/plus3/radial/debugui"
	"github.com/plus3/radial/display"
	"github.com/plus3/radial/input"
	"github.com/plus3/radial/loop"
)

var keymap = map[input.Key]ebiten.Key{
	input.KeyLeft:  ebiten.KeyArrowLeft,
	input.KeyRight: ebiten.KeyArrowRight,
	input.KeyUp:    ebiten.KeyArrowUp,
	input.KeyDown:  ebiten.KeyArrowDown,
	input.KeyA:     ebiten.KeyA,
	input.KeySpace: ebiten.KeySpace,
}

func heldTicks(k input.Key) int {
	if key, ok := keymap[k]; ok {
		return inpututil.KeyPressDuration(key)
	}
	return 0
}

// Options configures the window.
type Options struct {
	Title string
	Debug bool
}

// Game implements ebiten.Game. Rendering happens on ebiten's goroutine from
// the clock's latest snapshot; the clock itself runs on its own goroutine.
type Game struct {
	clock      *loop.Clock
	renderer   *display.Renderer
	controller *input.Controller
	overlay    *debugui.Overlay

	width, height int
	pixels        []byte
	img           *ebiten.Image
}

// New creates the window game. With opts.Debug set, the ImGui overlay is
// created as well.
func New(clock *loop.Clock, r *display.Renderer, opts Options) *Game {
	w, h := r.Size()
	g := &Game{
		clock:      clock,
		renderer:   r,
		controller: input.NewController(clock),
		width:      w,
		height:     h,
		pixels:     make([]byte, 4*w*h),
	}
	if opts.Debug {
		g.overlay = debugui.New(opts.Title, w, h, clock)
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
		if g.overlay.WantCaptureKeyboard() {
			return nil
		}
	}
	g.controller.Poll(heldTicks)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
		g.clock.TakeRedraw()
		g.upload()
	} else if g.clock.TakeRedraw() {
		g.upload()
	}
	screen.DrawImage(g.img, nil)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) upload() {
	frame := g.renderer.Render(g.clock.Latest())
	frame.CopyPixels(g.pixels)
	g.img.WritePixels(g.pixels)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}

// Run starts the clock on its own goroutine and blocks until the window
// closes or ctx is cancelled.
func Run(ctx context.Context, clock *loop.Clock, r *display.Renderer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := New(clock, r, opts)
	if g.overlay == nil {
		ebiten.SetWindowSize(g.width, g.height)
		ebiten.SetWindowTitle(opts.Title)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		clock.Run(ctx)
	}()

	radial.Logger().Info("window opened", "width", g.width, "height", g.height, "debug", opts.Debug)
	err := ebiten.RunGame(&cancellable{Game: g, ctx: ctx})
	cancel()
	<-done
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// cancellable ends the ebiten loop when ctx is done.
type cancellable struct {
	*Game
	ctx context.Context
}

func (c *cancellable) Update() error {
	if c.ctx.Err() != nil {
		return ebiten.Termination
	}
	return c.Game.Update()
}
