package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duosnake/internal/platform/tui"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

var (
	flagRunsLimit   int
	flagInteractive bool
	flagClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show the run log",
	Long: `Display the best logged runs of a mode: most laps first, then most
food, then longest survival. Every crash, quit and restart ends a run.

Examples:
  duosnake runs
  duosnake runs duosnake_classic --limit 20
  duosnake runs --interactive
  duosnake runs duosnake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all modes in a table view")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the logged runs of the mode")
}

func runRuns(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	id, err := gameFromArgs(args, cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(id); err != nil {
			return err
		}
		fmt.Printf("Cleared the run log of %s.\n", id)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunRunLog(store, id, width, height)
		return err
	}

	game, err := registry.Create(id, cfg)
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(id, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Run log - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'duosnake play %s' to log the first one!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-4s  %-3s  %-6s  %-4s  %-2s  %s\n", "Rank", "Laps", "Food", "Len", "Ticks", "End", "By", "Date")
	fmt.Printf("  %-4s  %-4s  %-4s  %-3s  %-6s  %-4s  %-2s  %s\n", "----", "----", "----", "---", "-----", "---", "--", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-4d  %-4d  %-3d  %-6d  %-4s  %-2s  %s\n",
			i+1, r.Level, r.Food, r.Length, r.Ticks, r.Cause, r.Driver, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestLevel(id); err == nil {
		fmt.Printf("\nBest: level %d\n", best)
	}
	return nil
}
