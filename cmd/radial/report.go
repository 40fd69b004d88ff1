package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/radial/config"
	"github.com/plus3/radial/loop"
)

// Report summarises a headless run.
type Report struct {
	Config config.Config

	TotalTime     time.Duration
	Final         loop.Snapshot
	Scheduler     loop.SchedulerStats
	InvalidColors int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

const reportTemplate = `
# Radial Run Report

## Configuration
- **Frame:** {{.Config.Window.Width}}x{{.Config.Window.Height}}, source {{.Config.Projection.Source}}, smooth {{.Config.Render.Smooth}}
- **Ring:** {{.Config.Projection.InnerRadius}} to {{.Config.Projection.OuterRadius}} px
- **Ticks:** {{.Config.Headless.Ticks}} every {{.Config.Timing.Tick}}, game step every {{.Config.Timing.Game}}
- **Seed:** {{.Config.Game.Seed}}

## Result
- **State:** {{.Final.State}}{{if .Final.Frozen}} (game source failed){{end}}
- **Score:** {{.Final.Score}}
- **Game updates:** {{.Final.Updates}}
- **Angle:** {{printf "%.4f" .Final.Angle}} rad
- **Invalid colors:** {{.InvalidColors}}
- **Wall time:** {{.TotalTime}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Num GC:      {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}} (delta {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}})
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
