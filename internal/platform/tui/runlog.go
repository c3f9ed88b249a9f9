package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

const maxRuns = 100 // Max runs loaded per mode

// RunLogKeyMap defines the key bindings for the run log view.
type RunLogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k RunLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp implements help.KeyMap.
func (k RunLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultRunLogKeyMap mirrors the menu keys: vim motions plus tab to cycle modes.
func DefaultRunLogKeyMap() RunLogKeyMap {
	return RunLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunLogModel shows the best logged runs of each mode in a table.
type RunLogModel struct {
	games     []registry.GameInfo
	cursor    int
	store     *storage.Store
	runs      []storage.Run
	table     table.Model
	help      help.Model
	keys      RunLogKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRunLogModel creates a run log view starting at the given game.
// An unknown or empty startID starts at the first registered mode.
func NewRunLogModel(store *storage.Store, startID string, width, height int) RunLogModel {
	m := RunLogModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultRunLogKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == startID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadRuns(m.games[m.cursor].ID)
	}
	return m
}

func (m *RunLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Laps", Width: 5},
		{Title: "Food", Width: 5},
		{Title: "Len", Width: 4},
		{Title: "Ticks", Width: 7},
		{Title: "End", Width: 5},
		{Title: "By", Width: 3},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Header, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunLogModel) loadRuns(gameID string) {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(gameID, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, ranked in the given order.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Food),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.Driver,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m RunLogModel) Init() tea.Cmd {
	return nil
}

// Update switches modes with tab and forwards scrolling to the table.
func (m RunLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.cursor = (m.cursor + 1) % len(m.games)
				m.loadRuns(m.games[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.cursor = (m.cursor + len(m.games) - 1) % len(m.games)
				m.loadRuns(m.games[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run log.
func (m RunLogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RUN LOG"
	if len(m.games) > 0 {
		title = fmt.Sprintf("RUN LOG - %s", m.games[m.cursor].Title)
	}
	b.WriteString(centerText(m.theme.HUDTitle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.runs) == 0 {
		content = m.theme.MenuDescription.
			Italic(true).
			Padding(2, 4).
			Render("No runs recorded yet.\nEvery crash is logged here.")
	} else {
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m RunLogModel) IsGoingBack() bool {
	return m.goingBack
}

// RunRunLog runs the run log view.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunRunLog(store *storage.Store, startID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRunLogModel(store, startID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunLogModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
