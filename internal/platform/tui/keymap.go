package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/core"
)

// KeyMap holds the in-game bindings. Both players share one keyboard:
// Player1 on the left hand, Player2 on the arrow keys.
type KeyMap struct {
	P1CCW      key.Binding
	P1CW       key.Binding
	P2CCW      key.Binding
	P2CW       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1CCW: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a/d", "P1 turn"),
		),
		P1CW: key.NewBinding(
			key.WithKeys("d"),
		),
		P2CCW: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "P2 turn"),
		),
		P2CW: key.NewBinding(
			key.WithKeys("right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1CCW, k.P2CCW, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1CCW, k.P2CCW},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Back, k.Help, k.Quit},
	}
}

// MapKey translates a key press to a player input.
// Returns false for keys that are not game input.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Input, bool) {
	switch {
	case key.Matches(msg, k.P1CCW):
		return core.Input{Player: core.Player1, Action: core.ActionTurnCCW}, true
	case key.Matches(msg, k.P1CW):
		return core.Input{Player: core.Player1, Action: core.ActionTurnCW}, true
	case key.Matches(msg, k.P2CCW):
		return core.Input{Player: core.Player2, Action: core.ActionTurnCCW}, true
	case key.Matches(msg, k.P2CW):
		return core.Input{Player: core.Player2, Action: core.ActionTurnCW}, true
	case key.Matches(msg, k.Pause):
		return core.Input{Action: core.ActionPause}, true
	case key.Matches(msg, k.Restart):
		return core.Input{Action: core.ActionRestart}, true
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}, true
	}
	return core.Input{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}
	return MenuActionNone
}
