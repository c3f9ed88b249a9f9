package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/config"
	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/games/duosnake"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game, err := registry.Create(duosnake.IDGrowth, config.DefaultConfig())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Input
	}{
		{keyRunes("a"), core.Input{Player: core.Player1, Action: core.ActionTurnCCW}},
		{keyRunes("d"), core.Input{Player: core.Player1, Action: core.ActionTurnCW}},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.Input{Player: core.Player2, Action: core.ActionTurnCCW}},
		{tea.KeyMsg{Type: tea.KeyRight}, core.Input{Player: core.Player2, Action: core.ActionTurnCW}},
		{keyRunes("p"), core.Input{Action: core.ActionPause}},
		{keyRunes("r"), core.Input{Action: core.ActionRestart}},
		{keyRunes("q"), core.Input{Action: core.ActionQuit}},
	}

	for _, tt := range tests {
		got, ok := keys.MapKey(tt.msg)
		if !ok || got != tt.want {
			t.Errorf("MapKey(%q) = %+v, %v; expected %+v", tt.msg.String(), got, ok, tt.want)
		}
	}

	if _, ok := keys.MapKey(keyRunes("x")); ok {
		t.Error("MapKey(x) should not map to game input")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRuns},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '●', core.Red)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "●") {
		t.Errorf("second line lost the LED: %q", lines[1])
	}
}

func TestDrawGame(t *testing.T) {
	m := newTestModel(t, nil)
	m.draw()

	text := m.screen.String()
	for _, want := range []string{"Duo Snake", "Strip", "P1 driving", "P2 watching", "Driver P1"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}

	// The strip row holds every LED: separators are lit, the rest is off or lit.
	stripRow := []rune(m.screen.Row(3))
	leds := 0
	for _, r := range stripRow {
		if r == ledRune || r == offRune {
			leds++
		}
	}
	if leds != duosnake.LEDCount {
		t.Errorf("strip row shows %d LEDs, expected %d", leds, duosnake.LEDCount)
	}
}

func TestTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(TickMsg{game: m.id})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.state.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", m.state.Ticks)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(TickMsg{game: m.id + 1000})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if m.state.Ticks != 0 {
		t.Errorf("stale tick moved the game: Ticks = %d", m.state.Ticks)
	}
}

func TestPauseKey(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(keyRunes("p"))
	m = next.(Model)
	if !m.state.Paused {
		t.Fatal("p should pause the game")
	}

	next, _ = m.Update(TickMsg{game: m.id})
	m = next.(Model)
	if m.state.Ticks != 0 {
		t.Error("paused game advanced")
	}
}

func TestCrashIsLogged(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	// Straight right from the start cell leaves the board within a row's width.
	for range duosnake.Width {
		next, _ := m.Update(TickMsg{game: m.id})
		m = next.(Model)
	}

	if m.state.Resets != 1 {
		t.Fatalf("Resets = %d, expected 1", m.state.Resets)
	}
	runs, err := store.TopRuns(duosnake.IDGrowth, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Cause != "wall" {
		t.Errorf("logged runs = %+v, expected one wall crash", runs)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(keyRunes("q"))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{
		{Level: 2, Food: 19, Length: 3, Ticks: 120, Cause: "self", Driver: "P2"},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"#1", "2", "19", "3", "120", "self", "P2"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], w)
		}
	}
}
