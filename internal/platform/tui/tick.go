// Package tui runs duosnake in a terminal: the simulator, the run log
// viewer and the SSH host all live here.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// It is addressed to one game model so a stale tick from a finished game
// cannot start a second loop in the next one.
type TickMsg struct {
	Time time.Time
	game uint64
}

var gameSeq atomic.Uint64

// nextGameID returns a process-wide unique model ID.
func nextGameID() uint64 {
	return gameSeq.Add(1)
}

// tickCmd schedules the next tick after d. The game decides d on every step,
// so the loop speeds up with each lap.
func tickCmd(game uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, game: game}
	})
}
