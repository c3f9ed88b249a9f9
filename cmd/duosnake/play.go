package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/platform/tui"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// Smallest terminal the game view fits in.
const (
	minPlayWidth  = 40
	minPlayHeight = 20
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a hot-seat game in the terminal. Without a mode, a menu lets you
pick one and brings you back after each game.

Controls:
  A / D        - Player 1 turn left / right
  Left / Right - Player 2 turn left / right
  P            - Pause
  R            - Restart with a new seed
  Esc          - Back to the menu
  Ctrl+S       - Save a text screenshot
  Q / Ctrl+C   - Quit

Only the current driver's turns count. Eating food hands the controls over.

Difficulty options:
  easy   - Slower start, shorter laps
  normal - Default timing
  hard   - Faster start, longer laps
  fixed  - No speed-up between laps

Examples:
  duosnake play
  duosnake play duosnake_classic
  duosnake play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if width < minPlayWidth || height < minPlayHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, minPlayWidth, minPlayHeight)
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	store := openStore(nil)
	if store != nil {
		defer store.Close()
	}

	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown game %q, run 'duosnake list' to see the modes", args[0])
		}
		back, err := playOne(args[0], cfg, store, rt)
		if err != nil || !back {
			return err
		}
	}

	return menuLoop(cfg, store, rt)
}

// menuLoop alternates between the mode picker, games and the run log until
// the player quits.
func menuLoop(cfg config.DuoSnakeConfig, store *storage.Store, rt core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}
		rt = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsRuns:
			back, err := tui.RunRunLog(store, "", rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			back, err := playOne(res.GameID, cfg, store, rt)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			// A fixed seed replays the same game only once.
			rt.Seed = 0
		}
	}
}

func playOne(id string, cfg config.DuoSnakeConfig, store *storage.Store, rt core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(id, cfg)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, rt)
}
