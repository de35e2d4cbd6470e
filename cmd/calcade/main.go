// calcade is a calculator that moonlights as a terminal arcade: type the
// right digits and a hidden game takes over the screen.
//
// Usage:
//
//	calcade                  - Start the calculator (the front door)
//	calcade list             - List known games and their unlock state
//	calcade play <game>      - Play an unlocked game directly
//	calcade scores <game>    - Show high scores for a game
//	calcade simulate <game>  - Headless deterministic run of a game
//	calcade serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.calcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkozlov/calcade/internal/storage"

	// Import games to register them
	_ "github.com/pkozlov/calcade/internal/games/keepup"
	_ "github.com/pkozlov/calcade/internal/games/platform"
	_ "github.com/pkozlov/calcade/internal/games/racer"
	_ "github.com/pkozlov/calcade/internal/games/runner"
	_ "github.com/pkozlov/calcade/internal/games/shooter"
	_ "github.com/pkozlov/calcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "calcade",
	Short: "A calculator with an arcade hiding inside",
	Long: `calcade looks like a terminal calculator and works as one. Type the
right digit sequence, though, and the display gives way to an arcade game.

Available commands:
  calc       - Start the calculator screen (also the default)
  list       - Show known games and their unlock state
  play       - Play an unlocked game directly
  scores     - View high scores
  simulate   - Run a game headless at a fixed tick rate
  serve      - Start SSH server for remote play

Examples:
  calcade
  calcade play snake
  calcade scores snake
  calcade simulate keepup --ticks 600 --seed 7
  calcade serve --ssh :2222`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, args)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.calcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the scores database, degrading to no persistence when
// it cannot be opened. The returned interface is nil (not a typed nil)
// on failure so callers can compare against nil safely.
func openStore() storage.Store {
	sqlStore, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return sqlStore
}
