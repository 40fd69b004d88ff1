// Package debugui draws a Dear ImGui overlay with the state of the animation
// clock on top of the ebiten window.
package debugui

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/radial/loop"
)

// ClockView is the read-only part of the clock the overlay shows.
type ClockView interface {
	Latest() loop.Snapshot
	Stats() loop.SchedulerStats
	InvalidColors() int
}

// Item is one ImGui window, rendered every frame between BeginFrame and
// EndFrame.
type Item struct {
	Render func()
}

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay owns the ImGui context and the registered items.
type Overlay struct {
	backend Backend
	items   []Item

	wantMouse    bool
	wantKeyboard bool
}

// New creates the ImGui backend for a window of the given size and registers
// the clock and performance panels.
func New(title string, width, height int, clock ClockView) *Overlay {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	o := &Overlay{backend: Backend{EbitenBackend: b}}
	o.Add(Item{Render: NewClockPanel(clock).Render})

	perf := NewPerformanceStats(120)
	laps := &lapTimer{last: time.Now()}
	o.Add(Item{Render: func() { perf.Render(clock, laps.lap()) }})
	return o
}

// Add registers an extra window.
func (o *Overlay) Add(item Item) { o.items = append(o.items, item) }

// Update runs one ImGui frame. Call it from ebiten's Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	io := imgui.CurrentIO()
	o.wantMouse = io.WantCaptureMouse()
	o.wantKeyboard = io.WantCaptureKeyboard()
	for _, item := range o.items {
		item.Render()
	}
	o.backend.EndFrame()
}

// Draw paints the overlay on screen.
func (o *Overlay) Draw(screen *ebiten.Image) { o.backend.Draw(screen) }

// Layout forwards the window size to the backend.
func (o *Overlay) Layout(w, h int) { o.backend.Layout(w, h) }

// WantCaptureKeyboard reports whether ImGui is using keyboard input, in which
// case the game should ignore it.
func (o *Overlay) WantCaptureKeyboard() bool { return o.wantKeyboard }

// WantCaptureMouse reports whether the pointer is over an ImGui window.
func (o *Overlay) WantCaptureMouse() bool { return o.wantMouse }
