package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/plus3/pong/ecs"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	MaxMatches int

	// Results
	TotalFrames  int64
	TotalTime    time.Duration
	Matches      int
	Wins         [2]int
	Points       int
	PaddleHits   int
	WallBounces  int
	MaxBallSpeed int
	StepTime     Stats
	Systems      map[string]*ecs.SchedulerStats

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type scheduleRow struct {
	Schedule string
	ecs.SystemStats
}

// SystemRows flattens the scheduler stats in schedule then registration order.
func (r *Report) SystemRows() []scheduleRow {
	names := make([]string, 0, len(r.Systems))
	for name := range r.Systems {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []scheduleRow
	for _, name := range names {
		for _, sys := range r.Systems[name].Systems {
			if sys.ExecutionCount == 0 {
				continue
			}
			rows = append(rows, scheduleRow{Schedule: name, SystemStats: sys})
		}
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Simulation Report

## Configuration
- **Max Duration:** {{.Duration}}
- **Match Limit:** {{if .MaxMatches}}{{.MaxMatches}}{{else}}none{{end}}

## Gameplay
- **Frames:** {{.TotalFrames}} ({{seconds .TotalFrames}} of game time)
- **Matches Finished:** {{.Matches}} (left {{index .Wins 0}}, right {{index .Wins 1}})
- **Points:** {{.Points}}
- **Paddle Hits:** {{.PaddleHits}}
- **Wall Bounces:** {{.WallBounces}}
- **Fastest Ball:** {{.MaxBallSpeed}} px/frame

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Step Time (Frame):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
{{with .SystemRows}}
| Schedule | System | Runs | Avg | Max |
|---|---|---|---|---|
{{- range .}}
| {{.Schedule}} | {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"seconds": func(frames int64) string {
			return fmt.Sprintf("%ds", frames/60)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
