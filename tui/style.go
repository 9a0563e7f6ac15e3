package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleItem = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleRiddle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Italic(true)

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("202"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindHeader
	kindItem
	kindExits
	kindRiddle
	kindDanger
	kindVictory
	kindSystem
	kindError
	kindTrace
)

var errorPrefixes = []string{
	"You can't",
	"You don't have",
	"You don't know",
	"There is no",
	"Error:",
	"Wrong",
	"Unknown command",
	"The door is locked",
}

var dangerMarkers = []string{
	"Danger!",
	"A trap springs",
	"You lost:",
	"The floor gives way",
	"The floor tilts",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
		return kindHeader
	case line == "Notable items:", strings.HasPrefix(line, " - "):
		return kindItem
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "Riddle:"):
		return kindRiddle
	case hasAnyPrefix(line, errorPrefixes):
		return kindError
	case strings.Contains(line, "You win!"), strings.HasPrefix(line, "Congratulations"):
		return kindVictory
	case containsAny(line, dangerMarkers):
		return kindDanger
	default:
		return kindRoomDesc
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func containsAny(line string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
