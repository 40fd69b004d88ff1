// Package input translates key presses into clock commands.
package input

import (
	"github.com/plus3/radial"
	"github.com/plus3/radial/loop"
)

// Key is a logical key understood by the controller.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeySpace
)

var keyNames = [...]string{"none", "left", "right", "up", "down", "a", "space"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Target receives commands. loop.Clock implements it.
type Target interface {
	State() loop.State
	Submit(cmd loop.Command)
}

var bindings = map[loop.State]map[Key]loop.Command{
	loop.Running: {
		KeyLeft:  loop.MoveLeft,
		KeyRight: loop.MoveRight,
		KeyUp:    loop.Rotate,
		KeyDown:  loop.SoftDrop,
		KeyA:     loop.Step,
	},
	loop.GameOver: {
		KeySpace: loop.Restart,
	},
}

// Controller maps keys to commands for the current state of its target.
type Controller struct {
	target Target
}

func NewController(t Target) *Controller {
	return &Controller{target: t}
}

// Press queues the command bound to k and reports whether there was one.
func (c *Controller) Press(k Key) bool {
	state := c.target.State()
	cmd, ok := bindings[state][k]
	if !ok {
		return false
	}
	radial.Logger().Debug("key", "key", k, "state", state, "command", cmd)
	c.target.Submit(cmd)
	return true
}

// Poll presses every key that fires on this tick, in key order. held reports
// for how many ticks a key has been down, 0 when it is up. Poll returns the
// number of commands queued.
func (c *Controller) Poll(held func(Key) int) int {
	n := 0
	for k := KeyLeft; k <= KeySpace; k++ {
		d := held(k)
		if d <= 0 {
			continue
		}
		if d == 1 || (Repeatable(k) && Repeats(d)) {
			if c.Press(k) {
				n++
			}
		}
	}
	return n
}

// Key repeat timing in update ticks, close to a desktop keyboard at 60 TPS.
const (
	RepeatDelay = 15
	RepeatRate  = 4
)

// Repeats reports whether a key held for held ticks should fire on this
// tick. held is 1 on the tick the key goes down.
func Repeats(held int) bool {
	if held == 1 {
		return true
	}
	return held >= RepeatDelay && (held-RepeatDelay)%RepeatRate == 0
}

// Repeatable reports whether holding k fires it again.
func Repeatable(k Key) bool {
	switch k {
	case KeyLeft, KeyRight, KeyDown:
		return true
	default:
		return false
	}
}
