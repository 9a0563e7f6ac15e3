package engine

import (
	"fmt"

	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/events"
	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/types"
)

// Move walks the player through an exit of the current room. A successful
// move counts one step, describes the new room and rolls for a random event.
func (e *Engine) Move(direction string) types.Result {
	var t turn
	e.move(&t, direction)
	return t.result()
}

func (e *Engine) move(t *turn, direction string) {
	room, err := e.currentRoom()
	if err != nil {
		e.structural(t, err)
		return
	}

	target, ok := room.Exits[direction]
	if !ok {
		t.say("You can't go that way.")
		return
	}
	dest := e.World.Room(target)
	if dest == nil {
		e.structural(t, fmt.Errorf("%w: %s -> %q", ErrUnknownRoom, direction, target))
		return
	}

	if dest.ID == catalog.RoomTreasure {
		if !state.HasItem(e.State, catalog.VaultDoor) {
			t.say("The door is locked. You need a key to go any further.")
			return
		}
		t.say("You use the " + catalog.VaultDoor + " to unlock the way into the treasure room.")
	}

	e.State.Player.Location = dest.ID
	e.State.StepsTaken++
	t.emit("player_moved", map[string]any{"from": room.ID, "to": dest.ID, "direction": direction})
	t.say(state.Describe(dest)...)
	e.Logger.Debug("player moved", "from", room.ID, "to", dest.ID, "steps", e.State.StepsTaken)

	evts, output := events.Random(e.State, e.World, e.Rand)
	t.add(evts, output)
	if len(evts) > 0 {
		e.Logger.Debug("random event", "room", e.State.Player.Location, "events", eventTypes(evts), "game_over", e.State.GameOver)
	}
}

func eventTypes(evts []types.Event) []string {
	out := make([]string, len(evts))
	for i, ev := range evts {
		out[i] = ev.Type
	}
	return out
}
