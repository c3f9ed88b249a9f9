package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosnake/internal/core"
)

const (
	ledRune   = '●'
	pixelRune = '█'
	offRune   = '·'

	panelCellW = 2 // Terminal columns per LED in a panel
	panelGap   = 4
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.RGB]lipgloss.Style)
	styleFor := func(c core.RGB) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
			styles[c] = st
		}
		return st
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Colored {
				sb.WriteString(styleFor(start.Color).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// GameView is everything drawn for one game frame.
type GameView struct {
	Title   string
	Frame   core.Frame
	State   core.GameState
	Next    time.Duration
	Message string
}

// DrawGame lays out the strip, both panels and the HUD on the screen.
func DrawGame(s *core.Screen, v GameView) {
	s.Clear()

	s.DrawTextCentered(0, v.Title)

	y := 2
	s.DrawText(1, y, "Strip")
	y++
	y = drawStrip(s, y, v.Frame.LEDs) + 1

	panelW := len(firstRow(v.Frame.Panels[0]))*panelCellW + 2
	left := max((s.Width()-2*panelW-panelGap)/2, 0)
	for i, p := range []core.PlayerID{core.Player1, core.Player2} {
		x := left + i*(panelW+panelGap)
		role := "watching"
		if v.State.Driver == p {
			role = "driving"
		}
		s.DrawText(x, y, fmt.Sprintf("%s %s", p, role))
		drawPanel(s, x, y+1, v.Frame.Panels[p.Index()])
	}
	y += len(v.Frame.Panels[0]) + 4

	s.DrawTextCentered(y, hudLine(v.State, v.Next))
	if v.Message != "" {
		s.DrawTextCentered(y+1, v.Message)
	}

	if v.State.Paused {
		s.DrawTextCentered(s.Height()/2, "  P A U S E D  ")
	}
}

// drawStrip draws the LEDs in strip order, wrapping at the screen edge.
// Returns the row after the last one used.
func drawStrip(s *core.Screen, y int, leds []core.RGB) int {
	perRow := max(s.Width()-2, 1)
	for i, c := range leds {
		x := 1 + i%perRow
		row := y + i/perRow
		if c.IsOff() {
			s.Set(x, row, offRune)
			continue
		}
		s.SetColored(x, row, ledRune, c)
	}
	return y + (len(leds)+perRow-1)/perRow
}

// drawPanel draws one player's grid in a box, top row first.
func drawPanel(s *core.Screen, x, y int, rows [][]core.RGB) {
	w := len(firstRow(rows))
	s.DrawBox(core.NewRect(x, y, w*panelCellW+2, len(rows)+2))

	for i := range rows {
		row := rows[len(rows)-1-i]
		for cx, c := range row {
			for k := range panelCellW {
				px := x + 1 + cx*panelCellW + k
				if c.IsOff() {
					s.Set(px, y+1+i, offRune)
				} else {
					s.SetColored(px, y+1+i, pixelRune, c)
				}
			}
		}
	}
}

func firstRow(rows [][]core.RGB) []core.RGB {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func hudLine(st core.GameState, next time.Duration) string {
	return fmt.Sprintf("Driver %s | Level %d | Length %d | Food %d | Tick %s | Resets %d",
		st.Driver, st.Level, st.Length, st.Food, next.Round(time.Millisecond), st.Resets)
}
