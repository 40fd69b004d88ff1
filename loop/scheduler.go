package loop

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Ticks       uint64
	// LastTick is the wall time the last tick took, all systems included.
	LastTick time.Duration
	Systems  []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in order, once per tick.
type Scheduler struct {
	systems  []System
	commands *Commands

	mu          sync.Mutex // guards the fields below
	systemStats []*systemStatsInternal
	ticks       uint64
	lastTick    time.Duration
	lastNow     time.Time
}

// NewScheduler creates an empty scheduler with its own command buffer.
func NewScheduler() *Scheduler {
	return &Scheduler{commands: &Commands{}}
}

// Commands returns the buffer flushed at the end of every tick.
func (s *Scheduler) Commands() *Commands { return s.commands }

// Register appends a system. Registration is not safe once the scheduler is
// running.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.mu.Lock()
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	s.mu.Unlock()
}

// Once executes all registered systems for a tick happening at now, then
// flushes the command buffer. The first tick has a zero DeltaTime.
func (s *Scheduler) Once(now time.Time) {
	s.mu.Lock()
	var dt time.Duration
	if !s.lastNow.IsZero() {
		dt = now.Sub(s.lastNow)
	}
	s.lastNow = now
	s.ticks++
	frame := &Frame{Now: now, DeltaTime: dt, Tick: s.ticks, Commands: s.commands}
	s.mu.Unlock()

	tickStart := time.Now()
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		s.mu.Lock()
		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.mu.Unlock()
	}

	s.commands.Flush()

	s.mu.Lock()
	s.lastTick = time.Since(tickStart)
	s.mu.Unlock()
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now)
		}
	}
}

// Stats returns a copy of the execution statistics. It is safe to call
// while the scheduler is running.
func (s *Scheduler) Stats() SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := SchedulerStats{
		SystemCount: len(s.systemStats),
		Ticks:       s.ticks,
		LastTick:    s.lastTick,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return stats
}
