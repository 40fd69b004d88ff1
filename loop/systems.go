package loop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/plus3/radial/game"
	"github.com/plus3/radial/projector"
)

// CommandSystem applies input queued since the previous tick, so the game
// source is only ever mutated on the scheduler goroutine.
type CommandSystem struct {
	clock *Clock
}

func (s *CommandSystem) Execute(frame *Frame) {
	s.clock.now = frame.Now
	frame.Commands.Flush()
}

// GameTickSystem steps the game whenever GameInterval has elapsed since the
// previous step. It does nothing while the game is over or frozen.
type GameTickSystem struct {
	clock *Clock
}

func (s *GameTickSystem) Execute(frame *Frame) {
	c := s.clock
	if c.state != Running || c.frozen {
		return
	}
	if c.lastUpdate.IsZero() {
		c.lastUpdate = frame.Now
		return
	}
	if frame.Now.Sub(c.lastUpdate) < c.opts.GameInterval {
		return
	}
	c.lastUpdate = frame.Now
	c.update()
}

// RotationSystem advances the view angle every tick, whatever the game state.
type RotationSystem struct {
	clock *Clock
}

func (s *RotationSystem) Execute(*Frame) {
	c := s.clock
	c.angle = projector.Normalize(c.angle + c.opts.AngleDelta)
}

// FadeSystem eases the game-over panel in.
type FadeSystem struct {
	clock *Clock
}

func (s *FadeSystem) Execute(frame *Frame) {
	c := s.clock
	if c.fade == nil {
		return
	}
	v, done := c.fade.Update(float32(frame.DeltaTime.Seconds()))
	c.panelAlpha = float64(v)
	if done {
		c.panelAlpha = 1
		c.fade = nil
	}
}

func (c *Clock) startFade() {
	if c.opts.FadeDuration <= 0 {
		c.panelAlpha = 1
		c.fade = nil
		return
	}
	c.panelAlpha = minPanelAlpha
	c.fade = gween.New(minPanelAlpha, 1, float32(c.opts.FadeDuration.Seconds()), ease.OutQuad)
}

// PublishSystem captures the game and hands a new snapshot to readers every
// tick, whether or not the game advanced.
type PublishSystem struct {
	clock *Clock
}

func (s *PublishSystem) Execute(frame *Frame) {
	c := s.clock
	if !c.frozen {
		c.guard("capture", func() { c.view = game.Capture(c.src, c.validator) })
	}
	c.publish(frame.Tick)
}
