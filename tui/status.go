package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// roomDisplayName derives a human-readable name from a room ID.
// "treasure_room" -> "Treasure Room".
func roomDisplayName(id string) string {
	return titleCase.String(strings.ReplaceAll(id, "_", " "))
}

// renderStatusBar produces a full-width inverted status line showing
// current room, exits, inventory, and step count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	exitStr := "none"
	if room := m.engine.World.Room(s.Player.Location); room != nil {
		if dirs := room.ExitDirections(); len(dirs) > 0 {
			exitStr = strings.Join(dirs, ",")
		}
	}

	left := fmt.Sprintf(" %s | Exits: %s", roomDisplayName(s.Player.Location), exitStr)
	right := fmt.Sprintf("S:%d ", s.StepsTaken)

	// Show inventory items if they fit, otherwise just count.
	if n := len(s.Player.Inventory); n > 0 {
		candidate := fmt.Sprintf("Inv: %s | S:%d ", strings.Join(s.Player.Inventory, ", "), s.StepsTaken)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | S:%d ", n, s.StepsTaken)
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
