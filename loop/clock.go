// Package loop drives the radial view: a fixed-rate scheduler that spins the
// rotation angle, steps the game at its own slower pace, applies queued
// input and publishes immutable snapshots for the renderer.
package loop

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tanema/gween"

	"github.com/plus3/radial"
	"github.com/plus3/radial/game"
	"github.com/plus3/radial/palette"
)

// State is the coarse game state seen by the clock.
type State uint8

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Command is a discrete player action.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	Rotate
	SoftDrop
	Step
	Restart
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move left"
	case MoveRight:
		return "move right"
	case Rotate:
		return "rotate"
	case SoftDrop:
		return "soft drop"
	case Step:
		return "step"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Options tunes the clock.
type Options struct {
	// TickInterval is the scheduler period used by Run.
	TickInterval time.Duration
	// GameInterval is the minimum time between two game updates.
	GameInterval time.Duration
	// AngleDelta is added to the rotation every tick, in radians.
	AngleDelta float64
	// FadeDuration is how long the game-over panel takes to become opaque.
	// Zero shows it at once.
	FadeDuration time.Duration
}

// DefaultOptions returns the classic timing: 10 ms ticks, a game step every
// 400 ms and 0.001 rad of rotation per tick.
func DefaultOptions() Options {
	return Options{
		TickInterval: 10 * time.Millisecond,
		GameInterval: 400 * time.Millisecond,
		AngleDelta:   0.001,
		FadeDuration: 300 * time.Millisecond,
	}
}

// Snapshot is everything a frame needs, copied at the end of a tick.
type Snapshot struct {
	game.Snapshot
	Angle      float64
	State      State
	PanelAlpha float64
	// Frozen is set once the game source has failed; the view keeps turning.
	Frozen  bool
	Updates int
	Tick    uint64
}

const minPanelAlpha = 0.15

// Clock owns the animation state. All fields below the scheduler are only
// touched from the scheduler goroutine; other goroutines use Submit, Latest,
// State and TakeRedraw.
type Clock struct {
	src       game.Source
	validator *palette.Validator
	opts      Options
	sched     *Scheduler
	latest    *Shared[Snapshot]
	redraw    atomic.Bool

	now        time.Time
	angle      float64
	state      State
	lastUpdate time.Time
	frozen     bool
	updates    int
	panelAlpha float64
	fade       *gween.Tween
	view       game.Snapshot
}

// NewClock wires the systems around src. The initial state follows
// src.IsGameOver.
func NewClock(src game.Source, opts Options) *Clock {
	c := &Clock{
		src:       src,
		validator: palette.NewValidator(),
		opts:      opts,
		sched:     NewScheduler(),
		latest:    NewShared[Snapshot](),
		state:     Running,
	}
	c.guard("init", func() {
		if src.IsGameOver() {
			c.state = GameOver
			c.panelAlpha = 1
		}
		c.view = game.Capture(src, c.validator)
	})

	c.sched.Register(&CommandSystem{clock: c})
	c.sched.Register(&GameTickSystem{clock: c})
	c.sched.Register(&RotationSystem{clock: c})
	c.sched.Register(&FadeSystem{clock: c})
	c.sched.Register(&PublishSystem{clock: c})

	c.publish(0)
	return c
}

// Submit queues cmd for the next tick. Commands that do not apply to the
// state at that tick are dropped.
func (c *Clock) Submit(cmd Command) {
	c.sched.Commands().Defer(func() { c.apply(cmd) })
}

// Latest returns the most recently published snapshot.
func (c *Clock) Latest() Snapshot { return c.latest.Get() }

// State returns the state of the latest snapshot.
func (c *Clock) State() State { return c.latest.Get().State }

// TakeRedraw reports whether a snapshot was published since the last call.
func (c *Clock) TakeRedraw() bool { return c.redraw.Swap(false) }

// Once runs a single tick at now.
func (c *Clock) Once(now time.Time) { c.sched.Once(now) }

// Run ticks every Options.TickInterval until ctx is done.
func (c *Clock) Run(ctx context.Context) {
	interval := c.opts.TickInterval
	if interval <= 0 {
		interval = DefaultOptions().TickInterval
	}
	radial.Logger().Info("clock started", "interval", interval, "game_interval", c.opts.GameInterval)
	c.sched.Run(ctx, interval)
	radial.Logger().Info("clock stopped")
}

// Stats returns the per-system timing of the scheduler.
func (c *Clock) Stats() SchedulerStats { return c.sched.Stats() }

// InvalidColors returns how many distinct bad color codes the source has
// produced.
func (c *Clock) InvalidColors() int { return c.validator.Reported() }

func (c *Clock) apply(cmd Command) {
	switch c.state {
	case GameOver:
		if cmd != Restart {
			return
		}
		c.frozen = false
		if !c.guard(cmd.String(), c.src.Start) {
			return
		}
		c.setState(Running)
		c.lastUpdate = c.now
		c.panelAlpha = 0
		c.fade = nil
		c.checkOver()
	case Running:
		if c.frozen {
			return
		}
		var fn func()
		switch cmd {
		case MoveLeft:
			fn = func() { c.src.Move(-1) }
		case MoveRight:
			fn = func() { c.src.Move(1) }
		case Rotate:
			fn = c.src.Rotate
		case SoftDrop:
			fn = c.src.Down
		case Step:
			fn = c.src.Update
		default:
			return
		}
		if c.guard(cmd.String(), fn) {
			if cmd == Step {
				c.updates++
			}
			c.checkOver()
		}
	}
}

// update performs one game step.
func (c *Clock) update() {
	if !c.guard("update", c.src.Update) {
		return
	}
	c.updates++
	c.checkOver()
}

func (c *Clock) checkOver() {
	over := false
	if !c.guard("is game over", func() { over = c.src.IsGameOver() }) {
		return
	}
	if over && c.state == Running {
		c.setState(GameOver)
		c.startFade()
	}
}

func (c *Clock) setState(s State) {
	if s == c.state {
		return
	}
	radial.Logger().Info("state changed", "from", c.state, "to", s)
	c.state = s
}

// guard runs fn, converting a panic from the game source into a frozen game.
func (c *Clock) guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.frozen = true
			radial.Logger().Error("game source panicked, freezing game", "op", op, "panic", r)
			ok = false
		}
	}()
	fn()
	return true
}

func (c *Clock) publish(tick uint64) {
	c.latest.Set(Snapshot{
		Snapshot:   c.view,
		Angle:      c.angle,
		State:      c.state,
		PanelAlpha: c.panelAlpha,
		Frozen:     c.frozen,
		Updates:    c.updates,
		Tick:       tick,
	})
	c.redraw.Store(true)
}
