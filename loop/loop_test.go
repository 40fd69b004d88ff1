package loop_test

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/plus3/radial/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource records commands and lets tests end the game or make it fail.
type stubSource struct {
	updates  int
	starts   int
	moves    []int
	rotates  int
	downs    int
	over     bool
	overAt   int // game ends after this many updates when > 0
	panicOn  bool
	panicked int
}

func (s *stubSource) IsGameOver() bool           { return s.over }
func (s *stubSource) Score() int                 { return s.updates * 10 }
func (s *stubSource) Rows() int                  { return 6 }
func (s *stubSource) Cols() int                  { return 4 }
func (s *stubSource) Value(col, row int) int     { return 0 }
func (s *stubSource) NextValue(col, row int) int { return 0 }
func (s *stubSource) Start()                     { s.starts++; s.over = false; s.updates = 0 }
func (s *stubSource) Move(dir int)               { s.moves = append(s.moves, dir) }
func (s *stubSource) Rotate()                    { s.rotates++ }
func (s *stubSource) Down()                      { s.downs++ }

func (s *stubSource) Update() {
	if s.panicOn {
		s.panicked++
		panic("board corrupted")
	}
	s.updates++
	if s.overAt > 0 && s.updates >= s.overAt {
		s.over = true
	}
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func tick(c *loop.Clock, i int) { c.Once(t0.Add(time.Duration(i) * 10 * time.Millisecond)) }

func TestGameTickCadence(t *testing.T) {
	src := &stubSource{}
	c := loop.NewClock(src, loop.DefaultOptions())

	tick(c, 0)
	for i := 1; i <= 39; i++ {
		tick(c, i)
	}
	assert.Equal(t, 0, src.updates, "no update before 400 ms")

	tick(c, 40)
	assert.Equal(t, 1, src.updates, "one update per 40 ticks of 10 ms")

	for i := 41; i <= 120; i++ {
		tick(c, i)
	}
	assert.Equal(t, 3, src.updates)
	assert.Equal(t, 3, c.Latest().Updates)
}

func TestGameTickCadenceIndependentOfTickRate(t *testing.T) {
	const elapsed = 20 * time.Second
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name    string
		maxStep time.Duration
		step    func() time.Duration
	}{
		{"7ms", 7 * time.Millisecond, func() time.Duration { return 7 * time.Millisecond }},
		{"25ms", 25 * time.Millisecond, func() time.Duration { return 25 * time.Millisecond }},
		{"jitter 3-17ms", 17 * time.Millisecond, func() time.Duration {
			return time.Duration(3+rng.IntN(15)) * time.Millisecond
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &stubSource{}
			opts := loop.DefaultOptions()
			c := loop.NewClock(src, opts)

			var stamps []time.Time
			for now := t0; now.Sub(t0) <= elapsed; now = now.Add(tt.step()) {
				before := src.updates
				c.Once(now)
				if src.updates > before {
					stamps = append(stamps, now)
				}
				require.LessOrEqual(t, src.updates-before, 1, "at most one update per tick")
			}

			for i := 1; i < len(stamps); i++ {
				assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), opts.GameInterval, "update %d", i)
			}
			most := int(elapsed / opts.GameInterval)
			least := int(elapsed/(opts.GameInterval+tt.maxStep)) - 1
			assert.LessOrEqual(t, len(stamps), most)
			assert.GreaterOrEqual(t, len(stamps), least)
			assert.Equal(t, len(stamps), c.Latest().Updates)
		})
	}
}

func TestRotation(t *testing.T) {
	opts := loop.DefaultOptions()
	c := loop.NewClock(&stubSource{}, opts)

	prev := c.Latest().Angle
	for i := 0; i < 100; i++ {
		tick(c, i)
		a := c.Latest().Angle
		assert.Greater(t, a, prev)
		prev = a
	}
	assert.InDelta(t, 0.1, prev, 1e-9)

	t.Run("wraps below two pi", func(t *testing.T) {
		opts.AngleDelta = 1
		c := loop.NewClock(&stubSource{}, opts)
		for i := 0; i < 20; i++ {
			tick(c, i)
			a := c.Latest().Angle
			require.GreaterOrEqual(t, a, 0.0)
			require.Less(t, a, 2*math.Pi)
		}
		assert.InDelta(t, math.Mod(20, 2*math.Pi), c.Latest().Angle, 1e-9)
	})
}

func TestStateTransitions(t *testing.T) {
	opts := loop.DefaultOptions()
	opts.FadeDuration = 0
	src := &stubSource{over: true}
	c := loop.NewClock(src, opts)
	require.Equal(t, loop.GameOver, c.State())
	assert.Equal(t, 1.0, c.Latest().PanelAlpha)

	t.Run("commands other than restart are ignored when over", func(t *testing.T) {
		c.Submit(loop.MoveLeft)
		c.Submit(loop.Rotate)
		c.Submit(loop.SoftDrop)
		c.Submit(loop.Step)
		tick(c, 0)
		assert.Empty(t, src.moves)
		assert.Zero(t, src.rotates)
		assert.Zero(t, src.downs)
		assert.Zero(t, src.updates)
		assert.Equal(t, loop.GameOver, c.State())
	})

	t.Run("restart starts the game", func(t *testing.T) {
		src.overAt = 2
		c.Submit(loop.Restart)
		tick(c, 1)
		assert.Equal(t, 1, src.starts)
		assert.Equal(t, loop.Running, c.State())
	})

	t.Run("restart is ignored while running", func(t *testing.T) {
		c.Submit(loop.Restart)
		tick(c, 2)
		assert.Equal(t, 1, src.starts)
	})

	t.Run("running commands reach the source", func(t *testing.T) {
		c.Submit(loop.MoveLeft)
		c.Submit(loop.MoveRight)
		c.Submit(loop.Rotate)
		c.Submit(loop.SoftDrop)
		tick(c, 3)
		assert.Equal(t, []int{-1, 1}, src.moves)
		assert.Equal(t, 1, src.rotates)
		assert.Equal(t, 1, src.downs)
	})

	t.Run("game over is detected on a game tick", func(t *testing.T) {
		c.Submit(loop.Step)
		tick(c, 4)
		assert.Equal(t, 1, src.updates)
		assert.Equal(t, loop.Running, c.State())

		for i := 5; i <= 60; i++ {
			tick(c, i)
		}
		assert.Equal(t, 2, src.updates)
		assert.Equal(t, loop.GameOver, c.State())
		assert.True(t, c.Latest().GameOver)
	})
}

func TestPanickingUpdateFreezesGame(t *testing.T) {
	src := &stubSource{panicOn: true}
	c := loop.NewClock(src, loop.DefaultOptions())

	for i := 0; i <= 100; i++ {
		tick(c, i)
	}
	snap := c.Latest()
	assert.Equal(t, 1, src.panicked, "a frozen game is not stepped again")
	assert.True(t, snap.Frozen)
	assert.Equal(t, loop.Running, snap.State)
	assert.InDelta(t, 0.101, snap.Angle, 1e-9, "rotation continues")
	assert.Equal(t, uint64(101), snap.Tick)

	c.Submit(loop.MoveLeft)
	tick(c, 101)
	assert.Empty(t, src.moves)
}

func TestPanelFade(t *testing.T) {
	src := &stubSource{overAt: 1}
	c := loop.NewClock(src, loop.DefaultOptions())

	for i := 0; i <= 40; i++ {
		tick(c, i)
	}
	require.Equal(t, loop.GameOver, c.State())
	start := c.Latest().PanelAlpha
	assert.Less(t, start, 1.0)
	assert.Positive(t, start)

	for i := 41; i <= 80; i++ {
		tick(c, i)
	}
	assert.Equal(t, 1.0, c.Latest().PanelAlpha)
}

func TestRedrawFlag(t *testing.T) {
	c := loop.NewClock(&stubSource{}, loop.DefaultOptions())
	assert.True(t, c.TakeRedraw(), "initial snapshot is published")
	assert.False(t, c.TakeRedraw())

	tick(c, 0)
	assert.True(t, c.TakeRedraw())
}

func TestClockStats(t *testing.T) {
	c := loop.NewClock(&stubSource{}, loop.DefaultOptions())
	for i := 0; i < 5; i++ {
		tick(c, i)
	}
	stats := c.Stats()
	assert.Equal(t, uint64(5), stats.Ticks)
	require.Equal(t, 5, stats.SystemCount)

	names := make([]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(5), s.ExecutionCount)
	}
	assert.Equal(t, []string{"CommandSystem", "GameTickSystem", "RotationSystem", "FadeSystem", "PublishSystem"}, names)
}

func TestRunStopsOnCancel(t *testing.T) {
	opts := loop.DefaultOptions()
	opts.TickInterval = time.Millisecond
	c := loop.NewClock(&stubSource{}, opts)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return c.Latest().Tick >= 3 }, time.Second, time.Millisecond)
	c.Submit(loop.Rotate)
	cancel()
	wg.Wait()
}
