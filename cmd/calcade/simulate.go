package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pkozlov/calcade/internal/audio"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

var (
	flagTicks   int
	flagSimCues bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless at a fixed tick rate",
	Long: `Drive a game with the real wall-clock scheduler but no terminal UI
and no input. Useful for checking determinism and game pacing: the same
--seed always produces the same final state.

Examples:
  calcade simulate keepup --ticks 600 --seed 7
  calcade simulate runner --ticks 3000 --fps 240`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimCues, "cues", false, "Log audio cues to stderr")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1 // headless runs stay reproducible by default
	}
	game.Reset(cfg)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "simulate"})
	var sink audio.Sink = audio.NopSink{}
	if flagSimCues {
		logger.SetLevel(log.DebugLevel)
		sink = audio.NewLogSink(logger)
	}

	frame := core.NewInputFrame()
	done := make(chan struct{})
	ticks := 0

	sched := core.NewScheduler(nil)
	sched.SetFunc(func() {
		res := game.Step(frame)
		for _, cue := range res.Cues {
			sink.Play(cue)
		}
		ticks++
		if ticks >= flagTicks || res.State.Status.Terminal() {
			sched.Stop()
			close(done)
		}
	})
	sched.SetInterval(time.Second / time.Duration(cfg.TickRate))

	start := time.Now()
	<-done
	elapsed := time.Since(start)

	state := game.State()
	fmt.Printf("game=%s ticks=%d elapsed=%s score=%d credits=%d status=%s\n",
		gameID, ticks, elapsed.Round(time.Millisecond),
		state.Score, state.Credits, state.Status)
	return nil
}
