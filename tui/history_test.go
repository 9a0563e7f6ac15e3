package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHistory_Navigation(t *testing.T) {
	h := NewHistory(5)
	for _, cmd := range []string{"look", "north", "take torch"} {
		h.Push(cmd)
	}

	// Prev walks back and sticks at the oldest entry.
	for _, want := range []string{"take torch", "north", "look", "look"} {
		got, ok := h.Prev("")
		if !ok || got != want {
			t.Fatalf("Prev() = %q, %v; want %q", got, ok, want)
		}
	}

	for _, want := range []string{"north", "take torch", ""} {
		got, ok := h.Next()
		if !ok || got != want {
			t.Fatalf("Next() = %q, %v; want %q", got, ok, want)
		}
	}
	if _, ok := h.Next(); ok {
		t.Error("Next() when not browsing should report false")
	}
}

func TestHistory_KeepsDraft(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")

	if got, _ := h.Prev("take sw"); got != "look" {
		t.Fatalf("Prev() = %q, want %q", got, "look")
	}
	// Browsing further does not overwrite the draft.
	h.Prev("look")

	if got, ok := h.Next(); !ok || got != "take sw" {
		t.Errorf("Next() = %q, %v; want the draft %q", got, ok, "take sw")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev("x"); ok {
		t.Error("Prev() on empty history should report false")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next() on empty history should report false")
	}
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Push("look")
	h.Push("north")
	h.Push("solve")

	if len(h.entries) != 2 || h.entries[0] != "north" || h.entries[1] != "solve" {
		t.Errorf("entries = %v, want [north solve]", h.entries)
	}
}

func TestHistory_SkipsDuplicatesAndBlanks(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look")
	h.Push("")

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d (%v)", len(h.entries), h.entries)
	}
}

func TestHistory_PushStopsBrowsing(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("north")
	h.Prev("draft")
	h.Prev("")

	h.Push("south")
	if got, ok := h.Prev(""); !ok || got != "south" {
		t.Errorf("Prev() after Push = %q, want %q", got, "south")
	}

	h.ResetCursor()
	if _, ok := h.Next(); ok {
		t.Error("Next() after ResetCursor should report false")
	}
}

func TestUpdate_HistoryKeys(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "look")
	m.input.SetValue("tak")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if got := m.input.Value(); got != "look" {
		t.Fatalf("after Up input = %q, want %q", got, "look")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if got := m.input.Value(); got != "tak" {
		t.Errorf("after Down input = %q, want the draft %q", got, "tak")
	}
}
