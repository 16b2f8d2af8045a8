package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/catalog"
	"github.com/plus3/blockfit/internal/deck"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// pcg adapts a seeded generator to deck.Source.
type pcg struct{ *rand.Rand }

func (p pcg) Intn(n int) int { return p.IntN(n) }

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	catalogPath := flag.String("catalog", "", "TOML pattern file; empty uses the built-in shapes.")
	seed := flag.Uint64("seed", 0, "Seed for piece and anchor draws; 0 draws from the system source.")
	fillLimit := flag.Float64("fill-limit", 0.6, "Clear the board once this fraction of it is occupied.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	c, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("building catalog")
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
	d := deck.New(c, deck.WithSource(pcg{rng}))
	b := board.New()

	report := &Report{
		Duration:       *duration,
		Shapes:         c.Len(),
		Seed:           s,
		FillLimit:      *fillLimit,
		GCPauseMetrics: *gcPauseMetrics,
		EvalTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", *duration).Int("shapes", c.Len()).Uint64("seed", s).Msg("running placement stress test")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	limit := int(*fillLimit * board.Width * board.Height)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			piece := d.Next()
			// Anchors slightly past the edges exercise the off-board path.
			anchor := board.Anchor{X: rng.Float64()*1.2 - 0.1, Y: rng.Float64()*1.2 - 0.1}

			evalStart := time.Now()
			result := b.Superimpose(piece, anchor)
			report.EvalTime.Samples = append(report.EvalTime.Samples, time.Since(evalStart))
			report.Evaluations++

			if !result.Success {
				continue
			}
			if _, err := b.Commit(result, piece.Color()); err != nil {
				log.Fatal().Err(err).Msg("commit failed")
			}
			report.Commits++

			if b.Occupied() >= limit {
				b.Reset()
				report.Resets++
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.EvalTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int64("evaluations", report.Evaluations).Int64("commits", report.Commits).Msg("stress test finished")

	fmt.Println("\n\n--- Placement Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("generating report")
	}
	fmt.Println("--- End of Report ---")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Build(catalog.Defaults)
	}
	return catalog.Load(path)
}
