package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkozlov/calcade/internal/audio"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/games/keepup"
	"github.com/pkozlov/calcade/internal/games/platform"
	"github.com/pkozlov/calcade/internal/games/racer"
	"github.com/pkozlov/calcade/internal/games/runner"
	"github.com/pkozlov/calcade/internal/games/shooter"
	"github.com/pkozlov/calcade/internal/platform/tui"
	"github.com/pkozlov/calcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagCues       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game directly",
	Long: `Start playing the specified game, skipping the calculator.

Controls:
  WASD/Arrows - Move
  Space       - Jump
  F/X         - Fire
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Back
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  calcade play keepup
  calcade play runner --difficulty easy
  calcade play keepup --config ./my-keepup.yaml
  calcade play platform --level ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to custom level YAML (platform)")
	playCmd.Flags().BoolVar(&flagCues, "cues", false, "Log audio cues to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'calcade list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "keepup":
		keepup.SetConfigPath(flagConfig)
		keepup.SetDifficultyPreset(flagDifficulty)
	case "runner":
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
	case "racer":
		racer.SetConfigPath(flagConfig)
		racer.SetDifficultyPreset(flagDifficulty)
	case "platform":
		platform.SetLevelPath(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "calcade"})

	var sink audio.Sink = audio.NopSink{}
	if flagCues {
		logger.SetLevel(log.DebugLevel)
		sink = audio.NewLogSink(logger)
	}

	store := openStore()

	runErr := tui.Run(game, store, sink, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
