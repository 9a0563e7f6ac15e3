package loader

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nathoo/labyrinth/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for a closed, well-formed room graph.
// Warnings are logged and do not fail the load.
func validate(defs *state.Defs) error {
	ve := check(defs)

	for _, w := range ve.Warnings {
		slog.Warn("world validation", "warning", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func check(defs *state.Defs) *ValidationError {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.start is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", defs.Game.Start))
	}

	for _, roomID := range sortedRoomIDs(defs) {
		room := defs.Rooms[roomID]

		for dir, target := range room.Exits {
			if !state.IsDirection(dir) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q has exit %q; directions are %s",
					roomID, dir, strings.Join(state.Directions, ", ")))
			}
			if _, ok := defs.Rooms[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q", roomID, dir, target))
			}
		}

		if p := room.Puzzle; p != nil {
			if strings.TrimSpace(p.Question) == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf("room %q puzzle has no question", roomID))
			}
			if strings.TrimSpace(p.Answer) == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf("room %q puzzle has no answer", roomID))
			}
		}

		if room.Description == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("room %q has no description", roomID))
		}

		seen := map[string]bool{}
		for _, item := range room.Items {
			if seen[item] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"room %q lists item %q more than once", roomID, item))
			}
			seen[item] = true
		}
	}

	for _, id := range unreachableRooms(defs) {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"room %q cannot be reached from the start room", id))
	}

	return ve
}

func sortedRoomIDs(defs *state.Defs) []string {
	ids := make([]string, 0, len(defs.Rooms))
	for id := range defs.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// unreachableRooms returns, sorted, the rooms no walk from the start reaches.
func unreachableRooms(defs *state.Defs) []string {
	if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		return nil
	}
	seen := map[string]bool{defs.Game.Start: true}
	queue := []string{defs.Game.Start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, target := range defs.Rooms[id].Exits {
			if _, ok := defs.Rooms[target]; ok && !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}

	var out []string
	for _, id := range sortedRoomIDs(defs) {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
