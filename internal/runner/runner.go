// Package runner is the headless outer loop: it owns one game, writes the
// strip after every tick, waits the duration the game asks for and feeds
// turn events in between. It is what the microcontroller's main loop does,
// run on a host.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/games/duosnake"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
	"github.com/vovakirdan/duosnake/internal/strip"
)

// inputBuffer bounds how many events can queue between two ticks.
const inputBuffer = 32

// ErrBadCommand is wrapped by ParseCommand failures.
var ErrBadCommand = errors.New("bad command")

// Config controls a Runner.
type Config struct {
	// Seed for the game's random source. Zero uses the current time.
	Seed int64

	// MaxTicks stops the loop after that many ticks. Zero runs until cancelled.
	MaxTicks uint64

	// After returns a channel that fires after d. Nil means time.After.
	After func(d time.Duration) <-chan time.Time
}

// Summary describes a finished Run.
type Summary struct {
	Ticks     uint64 // Ticks run across all resets
	Resets    int
	BestLevel int
}

// Runner drives one game. Push may be called from any goroutine; everything
// else happens on the goroutine that calls Run.
type Runner struct {
	game   registry.Game
	out    *strip.Writer
	store  *storage.Store
	logger *log.Logger
	config Config
	inputs chan core.Input
}

// New creates a runner. The store may be nil.
func New(game registry.Game, out *strip.Writer, store *storage.Store, logger *log.Logger, cfg Config) *Runner {
	if cfg.After == nil {
		cfg.After = time.After
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Runner{
		game:   game,
		out:    out,
		store:  store,
		logger: logger,
		config: cfg,
		inputs: make(chan core.Input, inputBuffer),
	}
}

// Push queues an input for the loop. Inputs are dropped when the queue is full.
func (r *Runner) Push(in core.Input) {
	select {
	case r.inputs <- in:
	default:
		r.logger.Warn("input dropped, queue full", "player", in.Player, "action", in.Action)
	}
}

// Run plays until ctx is cancelled, a quit command arrives or MaxTicks is
// reached. Only a failing strip write returns an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	r.game.Reset(core.RuntimeConfig{Seed: r.config.Seed})
	st := r.game.State()
	r.logger.Info("game started", "game", r.game.ID(), "seed", r.config.Seed, "driver", st.Driver)

	if err := r.out.WriteFrame(r.game.Frame().LEDs); err != nil {
		return sum, err
	}

	wait := st.Interval
	for {
		timer := r.config.After(wait)

	waiting:
		for {
			select {
			case <-ctx.Done():
				r.finish(st, "quit")
				r.logger.Info("stopped", "reason", ctx.Err())
				return sum, nil

			case in := <-r.inputs:
				if in.Action == core.ActionQuit {
					r.finish(st, "quit")
					r.logger.Info("stopped", "reason", "quit command")
					return sum, nil
				}
				st = r.apply(in, st)

			case <-timer:
				break waiting
			}
		}

		res := r.game.Step()
		st = res.State
		wait = res.Next
		if !st.Paused {
			sum.Ticks++
		}
		r.report(res)

		if res.Outcome == core.OutcomeReset {
			sum.Resets++
			sum.BestLevel = max(sum.BestLevel, res.Ended.Level)
		}
		sum.BestLevel = max(sum.BestLevel, st.Level)

		if err := r.out.WriteFrame(r.game.Frame().LEDs); err != nil {
			return sum, err
		}

		if r.config.MaxTicks > 0 && sum.Ticks >= r.config.MaxTicks {
			r.finish(st, "quit")
			r.logger.Info("stopped", "reason", "tick limit", "ticks", sum.Ticks)
			return sum, nil
		}
	}
}

// apply handles one input between ticks and returns the new game state.
func (r *Runner) apply(in core.Input, st core.GameState) core.GameState {
	switch in.Action {
	case core.ActionRestart:
		r.finish(st, "quit")
		r.game.Reset(core.RuntimeConfig{Seed: time.Now().UnixNano()})
		r.logger.Info("restarted")
	case core.ActionPause:
		r.game.Push(in.Player, in.Action)
		r.logger.Info("pause toggled", "paused", r.game.State().Paused)
	default:
		if st.Driver != in.Player {
			r.logger.Debug("ignored turn from observer", "player", in.Player)
		}
		r.game.Push(in.Player, in.Action)
	}
	return r.game.State()
}

// report logs everything but plain moves.
func (r *Runner) report(res core.StepResult) {
	switch res.Outcome {
	case core.OutcomeGrow:
		r.logger.Info("food eaten", "length", res.State.Length, "driver", res.State.Driver)
	case core.OutcomeLap:
		r.logger.Info("lap completed", "level", res.State.Level, "next", res.Next, "driver", res.State.Driver)
	case core.OutcomeReset:
		r.logger.Info("crash",
			"cause", res.Cause,
			"driver", res.Ended.Driver,
			"level", res.Ended.Level,
			"length", res.Ended.Length,
			"ticks", res.Ended.Ticks,
		)
		r.save(res.Ended, res.Cause.String())
	default:
		r.logger.Debug("tick", "ticks", res.State.Ticks, "next", res.Next)
	}
}

// finish logs the run in progress when the loop ends or restarts.
func (r *Runner) finish(st core.GameState, cause string) {
	if st.Ticks > 0 {
		r.save(st, cause)
	}
}

func (r *Runner) save(st core.GameState, cause string) {
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		GameID: r.game.ID(),
		Level:  st.Level,
		Length: st.Length,
		Food:   st.Food,
		Cause:  cause,
		Driver: st.Driver.String(),
		Ticks:  st.Ticks,
	})
	if err != nil {
		r.logger.Warn("could not log run", "error", err)
	}
}

// ReadCommands parses one command per line from rd and pushes it until rd
// is exhausted or ctx is cancelled. Bad lines are logged and skipped.
func (r *Runner) ReadCommands(ctx context.Context, rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := ParseCommand(line)
		if err != nil {
			r.logger.Warn("skipping input", "line", line, "error", err)
			continue
		}
		r.Push(in)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("runner: read commands: %w", err)
	}
	return nil
}

// ParseCommand parses one input line.
//
//	p1 cw | 2 ccw | P2 left   turn for a player
//	pause | restart | quit    host commands
func ParseCommand(line string) (core.Input, error) {
	fields := strings.Fields(strings.ToLower(line))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case "pause", "p":
			return core.Input{Action: core.ActionPause}, nil
		case "restart":
			return core.Input{Action: core.ActionRestart}, nil
		case "quit", "q", "exit":
			return core.Input{Action: core.ActionQuit}, nil
		}
	case 2:
		player, ok := parsePlayer(fields[0])
		if !ok {
			return core.Input{}, fmt.Errorf("runner: unknown player %q: %w", fields[0], ErrBadCommand)
		}
		turn, ok := duosnake.ParseTurn(fields[1])
		if !ok {
			return core.Input{}, fmt.Errorf("runner: unknown turn %q: %w", fields[1], ErrBadCommand)
		}
		action := core.ActionTurnCW
		if turn == duosnake.CounterClockwise {
			action = core.ActionTurnCCW
		}
		return core.Input{Player: player, Action: action}, nil
	}
	return core.Input{}, fmt.Errorf("runner: %q: %w", line, ErrBadCommand)
}

func parsePlayer(s string) (core.PlayerID, bool) {
	switch strings.TrimPrefix(s, "p") {
	case "1":
		return core.Player1, true
	case "2":
		return core.Player2, true
	}
	return 0, false
}
