// duosnake is a two-player snake for a dual 6x6 LED matrix, with host tools
// to play it in a terminal, drive a strip headlessly or host it over SSH.
//
// Usage:
//
//	duosnake list            - List game modes
//	duosnake play [mode]     - Play in the terminal (menu if no mode given)
//	duosnake run [mode]      - Headless loop writing strip frames
//	duosnake serve           - SSH host, one hot-seat game per session
//	duosnake runs [mode]     - Show the run log
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible games
//	--db <path>           - Run log database (default: ~/.duosnake/runs.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/games/duosnake"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

var (
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duosnake",
	Short: "Duo Snake - two players, one snake, two LED panels",
	Long: `Duo Snake is a turn-alternating snake for two players on a dual 6x6
LED matrix. One player drives and sees only the head and the food; the other
watches the whole body on a mirrored panel. Eating hands the controls over.

Available commands:
  list   - Show game modes
  play   - Play in the terminal
  run    - Headless loop that writes strip frames
  serve  - Start the SSH host
  runs   - View the run log

Examples:
  duosnake play
  duosnake play duosnake_classic --difficulty fixed
  duosnake run --ticks 100 --device /dev/ttyUSB0 --format raw
  duosnake serve --ssh :2222
  duosnake runs --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duosnake/runs.db", "Path to the run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger returns the stderr logger shared by the non-interactive commands.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the game config and applies --difficulty on top.
func loadConfig() (config.DuoSnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// gameFromArgs picks the game ID from the first argument, falling back to
// the configured mode.
func gameFromArgs(args []string, cfg config.DuoSnakeConfig) (string, error) {
	if len(args) == 0 {
		return duosnake.IDForMode(cfg.Mode), nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown game %q, run 'duosnake list' to see the modes", args[0])
	}
	return args[0], nil
}

// openStore opens the run log. A failure is reported and play goes on
// without logging.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if logger != nil {
			logger.Warn("run log unavailable", "path", flagDBPath, "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		}
		return nil
	}
	return store
}
