package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/pong"
)

// Simulation runs computer-vs-computer matches as fast as possible.
type Simulation struct {
	world  *pong.World
	report *Report
}

func NewSimulation(report *Report) *Simulation {
	s := &Simulation{world: pong.New(), report: report}
	s.world.Subscribe(pong.ListenerFunc(s.count))
	return s
}

func (s *Simulation) count(ev pong.Event) {
	switch ev.Kind {
	case pong.EventMatchWon:
		s.report.Matches++
		s.report.Wins[ev.Side]++
	case pong.EventPoint:
		s.report.Points++
	case pong.EventPaddleHit:
		s.report.PaddleHits++
		s.report.MaxBallSpeed = max(s.report.MaxBallSpeed, ev.Speed)
	case pong.EventWallBounce:
		s.report.WallBounces++
	}
}

// Run steps the world until ctx is done or the report holds maxMatches
// finished matches. A maxMatches of zero means no limit.
func (s *Simulation) Run(ctx context.Context, maxMatches int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if maxMatches > 0 && s.report.Matches >= maxMatches {
			return
		}

		in := pong.AutopilotInput(pong.Input{Confirm: true}, s.world, pong.SideLeft, pong.SideRight)

		stepStart := time.Now()
		s.world.Step(in)
		s.report.StepTime.Samples = append(s.report.StepTime.Samples, time.Since(stepStart))
		s.report.TotalFrames++
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the simulation may run for.")
	matches := flag.Int("matches", 0, "Stop after this many finished matches (0 = run for the full duration).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting pong simulation...")

	report := &Report{
		Duration:       *duration,
		MaxMatches:     *matches,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	sim := NewSimulation(report)
	sim.Run(ctx, *matches)

	report.TotalTime = time.Since(startTime)
	report.Systems = sim.world.Stats()
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
