package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/storage"
)

var flagShowCodes bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show known games and their unlock state",
	Long: `List every registered game. Hidden games show as locked until their
calculator code has been entered once; --codes spoils the codes.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagShowCodes, "codes", false, "Reveal unlock codes (spoilers)")
}

func runList(cmd *cobra.Command, args []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fmt.Printf("%-12s %-12s %s\n", "ID", "TITLE", "STATUS")
	for _, info := range registry.List() {
		unlocked := !info.Hidden
		if store != nil && info.Hidden &&
			store.GetInt(storage.UnlockKey(info.ID), 0) == 1 {
			unlocked = true
		}

		status := "unlocked"
		title := info.Title
		if !unlocked {
			status = "locked"
			title = "????"
		}
		if flagShowCodes && info.Code != "" {
			status += fmt.Sprintf(" (code %s)", info.Code)
			title = info.Title
		}
		fmt.Printf("%-12s %-12s %s\n", info.ID, title, status)
	}
}
