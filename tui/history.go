// Package tui provides a Bubble Tea terminal UI for the labyrinth.
package tui

// History keeps recently submitted commands for Up/Down recall. While the
// player browses, the line they were typing is held as a draft and comes
// back when they step past the newest entry.
type History struct {
	entries []string
	limit   int
	pos     int // len(entries) when not browsing
	draft   string
}

// NewHistory creates a history that keeps at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a submitted command and stops browsing. Blank lines and
// repeats of the newest entry are not recorded.
func (h *History) Push(cmd string) {
	if cmd != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != cmd) {
		h.entries = append(h.entries, cmd)
		if over := len(h.entries) - h.limit; over > 0 {
			h.entries = h.entries[over:]
		}
	}
	h.ResetCursor()
}

func (h *History) browsing() bool {
	return h.pos < len(h.entries)
}

// Prev steps to the next older command, stopping at the oldest. current is
// the line being edited; it becomes the draft when browsing starts.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.browsing() {
		h.draft = current
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Next steps to the next newer command. Stepping past the newest returns
// the draft; when not browsing it reports false.
func (h *History) Next() (string, bool) {
	if !h.browsing() {
		return "", false
	}
	h.pos++
	if !h.browsing() {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// ResetCursor stops browsing and forgets the draft.
func (h *History) ResetCursor() {
	h.pos = len(h.entries)
	h.draft = ""
}
