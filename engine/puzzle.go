package engine

import (
	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/events"
	"github.com/nathoo/labyrinth/engine/puzzle"
	"github.com/nathoo/labyrinth/engine/state"
)

// solve poses the current room's riddle and waits for the answer.
func (e *Engine) solve(t *turn) {
	room, err := e.currentRoom()
	if err != nil {
		e.structural(t, err)
		return
	}
	if room.Puzzle == nil {
		t.say("There are no puzzles here.")
		return
	}
	t.say("Riddle: " + room.Puzzle.Question)
	e.pending = promptAnswer
}

func (e *Engine) answerRiddle(t *turn, answer string) {
	room, err := e.currentRoom()
	if err != nil {
		e.structural(t, err)
		return
	}
	if room.Puzzle == nil {
		return
	}

	ok := puzzle.Match(answer, room.Puzzle.Answer)
	e.Logger.Debug("riddle attempt", "room", room.ID, "correct", ok)
	if !ok {
		t.say("Wrong. Try again.")
		if room.ID == catalog.RoomTrap {
			evts, output := events.TriggerTrap(e.State, e.World, e.Rand)
			t.add(evts, output)
			e.Logger.Debug("trap triggered", "room", room.ID, "events", eventTypes(evts), "game_over", e.State.GameOver)
		}
		return
	}

	t.say("Correct! The riddle is solved.")
	room.Puzzle = nil
	t.emit("puzzle_solved", map[string]any{"room": room.ID})
	e.reward(t, room)
}

// reward applies the room-specific prize for a solved riddle. Item grants
// are skipped when the player already holds the item. The vault room never
// gets here: solve there runs the chest protocol instead.
func (e *Engine) reward(t *turn, room *state.Room) {
	switch room.ID {
	case catalog.RoomPortal:
		t.say("The portal hums to life! You can use it to leave the labyrinth.")
		if !state.HasItem(e.State, catalog.PortalKey) {
			state.GiveItem(e.State, catalog.PortalKey)
			t.emit("item_given", map[string]any{"item": catalog.PortalKey})
			t.say("You received: " + catalog.PortalKey)
		}
	case catalog.RoomTrap:
		t.say("Somewhere under the floor a mechanism grinds to a halt.")
	default:
		t.say("You feel a little closer to the secret of the labyrinth.")
	}
}
