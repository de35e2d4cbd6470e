package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkozlov/calcade/internal/audio"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/platform/tui"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Start the calculator screen",
	Long: `Start the calculator front screen. It is a working four-function
calculator; digit entry is also matched against game unlock codes.

Keys:
  0-9 . + - * /  - Calculator input
  Enter or =     - Evaluate
  C              - Clear
  M              - Game library (unlocked games)
  T              - High scores
  Q/Ctrl+C       - Quit`,
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "calcade"})

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunApp(store, audio.NopSink{}, logger, cfg)
}
