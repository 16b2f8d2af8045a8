package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Shapes    int
	Seed      uint64
	FillLimit float64

	// Results
	Evaluations    int64
	Commits        int64
	Resets         int64
	TotalTime      time.Duration
	EvalTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
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
	s.P99 = percentile(s.Samples, 0.99)
}

// percentile sorts samples in place.
func percentile(samples []time.Duration, q float64) time.Duration {
	slices.Sort(samples)
	i := int(q * float64(len(samples)-1))
	return samples[i]
}

// AcceptRate is the share of evaluations that were committed.
func (r *Report) AcceptRate() string {
	if r.Evaluations == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(r.Commits)/float64(r.Evaluations))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Placement Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Catalog Shapes:** {{.Shapes}}
- **Seed:** {{.Seed}}
- **Fill Limit:** {{.FillLimit}}

## Placement Results
- **Evaluations:** {{.Evaluations}}
- **Commits:** {{.Commits}} ({{.AcceptRate}})
- **Board Resets:** {{.Resets}}
- **Total Test Time:** {{.TotalTime}}
- **Superimpose Time:**
  - **Avg:** {{.EvalTime.Avg}}
  - **Min:** {{.EvalTime.Min}}
  - **Max:** {{.EvalTime.Max}}
  - **P99:** {{.EvalTime.P99}}

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
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
