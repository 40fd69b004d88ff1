package loop

import "time"

// System is one step of a scheduler tick. Systems run in registration order
// on the scheduler goroutine and may keep state between ticks.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the timing of the current tick.
type Frame struct {
	Now       time.Time
	DeltaTime time.Duration
	Tick      uint64
	Commands  *Commands
}
