package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/runner"
	"github.com/vovakirdan/duosnake/internal/strip"
)

var (
	flagTicks      uint64
	flagDevice     string
	flagFormat     string
	flagBrightness int
	flagNoInput    bool
)

var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Run the game headless and write strip frames",
	Long: `Run the game loop without a terminal UI. After every tick the strip
(77 LEDs, GRB order, dimmed by the configured brightness) is written to the
device or stdout, and the loop waits as long as the game asks.

Turn events are read from stdin, one per line:
  p1 cw | p1 ccw | 2 left | 2 right   turn for a player
  pause | restart | quit              host commands

Examples:
  duosnake run --ticks 50
  duosnake run --device /dev/ttyUSB0 --format raw
  echo "p1 cw" | duosnake run duosnake_classic --ticks 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until interrupted)")
	runCmd.Flags().StringVar(&flagDevice, "device", "", "Write frames to this file or device instead of stdout")
	runCmd.Flags().StringVar(&flagFormat, "format", "", "Frame format: hex or raw (default from config)")
	runCmd.Flags().IntVar(&flagBrightness, "brightness", -1, "Strip brightness 0-255 (default from config)")
	runCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "Do not read turn events from stdin")
}

func runRun(_ *cobra.Command, args []string) error {
	logger, err := newLogger("duosnake")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	id, err := gameFromArgs(args, cfg)
	if err != nil {
		return err
	}
	game, err := registry.Create(id, cfg)
	if err != nil {
		return err
	}

	formatName := cfg.Strip.Format
	if flagFormat != "" {
		formatName = flagFormat
	}
	format, err := strip.ParseFormat(formatName)
	if err != nil {
		return err
	}
	brightness := cfg.Strip.Brightness
	if flagBrightness >= 0 {
		brightness = flagBrightness
	}

	var out io.Writer = os.Stdout
	if flagDevice != "" {
		f, err := os.OpenFile(flagDevice, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		defer f.Close()
		out = f
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(game, strip.NewWriter(out, format, brightness), store, logger, runner.Config{
		Seed:     flagSeed,
		MaxTicks: flagTicks,
	})

	if !flagNoInput {
		go func() {
			if err := r.ReadCommands(ctx, os.Stdin); err != nil {
				logger.Warn("stdin closed", "error", err)
			}
		}()
	}

	sum, err := r.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("done", "ticks", sum.Ticks, "resets", sum.Resets, "best_level", sum.BestLevel)
	return nil
}
