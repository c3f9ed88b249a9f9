package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosnake/internal/core"
	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// Causes recorded in the run log besides the collision causes.
const causeQuit = "quit"

// Model is the Bubble Tea model for one hot-seat game.
// Both players share the keyboard; the game decides how long each tick lasts.
type Model struct {
	id         uint64
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	theme      Theme
	state      core.GameState
	message    string
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game and starts it.
// A zero seed is replaced with the current time.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	h := help.New()
	h.ShowAll = false

	return Model{
		id:      nextGameID(),
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   DefaultTheme(),
		state:   game.State(),
		message: fmt.Sprintf("%s drives first", core.Player1),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.state.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.game != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.saveRun(m.state, causeQuit)
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	in, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch in.Action {
	case core.ActionQuit:
		m.saveRun(m.state, causeQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.saveRun(m.state, causeQuit)
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.message = "Restarted"

	default:
		m.game.Push(in.Player, in.Action)
		m.state = m.game.State()
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step()
	m.state = res.State

	switch res.Outcome {
	case core.OutcomeGrow:
		m.message = fmt.Sprintf("%s ate, %s drives", res.State.Driver.Other(), res.State.Driver)
	case core.OutcomeLap:
		m.message = fmt.Sprintf("Lap! Level %d, %s drives", res.State.Level, res.State.Driver)
	case core.OutcomeReset:
		m.saveRun(res.Ended, res.Cause.String())
		m.message = fmt.Sprintf("%s crashed into the %s. %s drives", res.Ended.Driver, crashTarget(res.Cause), res.State.Driver)
	}

	return m, tickCmd(m.id, res.Next)
}

func crashTarget(c core.Cause) string {
	if c == core.CauseSelf {
		return "tail"
	}
	return "wall"
}

// saveRun records a finished run. Runs that never moved are not worth a row.
func (m *Model) saveRun(st core.GameState, cause string) {
	if m.store == nil || st.Ticks == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Level:  st.Level,
		Length: st.Length,
		Food:   st.Food,
		Cause:  cause,
		Driver: st.Driver.String(),
		Ticks:  st.Ticks,
	})
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".duosnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)

	m.message = "Screenshot saved to " + dir
}

func (m *Model) draw() {
	DrawGame(m.screen, GameView{
		Title:   m.game.Title(),
		Frame:   m.game.Frame(),
		State:   m.state,
		Next:    m.state.Interval,
		Message: m.message,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.theme.HUDControls.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the game.
// It returns true if the player asked to go back to a menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
