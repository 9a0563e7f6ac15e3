// Package events implements the random events and traps that can strike the
// player after a move. Every draw is seeded from the step counter, so the same
// sequence of moves always yields the same outcomes.
package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/rng"
	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/types"
)

// Event kinds selected by the second draw of a tick.
const (
	kindCoin = iota
	kindRustle
	kindAmbush
)

const (
	eventChance     = 3 // an event fires when prf(steps, eventChance) == 0
	eventKinds      = 3
	ambushChance    = 8
	dodgeChance     = 2
	fallChance      = 3
	damageRoll      = 3
	damageThreshold = 3 // rolls below this are fatal
)

// Random runs the per-move event roll for the player's current room.
// Returns events emitted and output text collected.
func Random(s *types.State, w *state.World, draw rng.Func) ([]types.Event, []string) {
	steps := s.StepsTaken
	if draw(steps, eventChance) != 0 {
		return nil, nil
	}

	room := w.Room(s.Player.Location)
	if room == nil {
		return nil, nil
	}

	switch draw(steps+1, eventKinds) {
	case kindCoin:
		if room.Items.Has(catalog.Coin) {
			return nil, []string{"You search the floor but find nothing of interest."}
		}
		room.Items.Put(catalog.Coin)
		evts := []types.Event{{
			Type: "item_spawned",
			Data: map[string]any{"item": catalog.Coin, "room": room.ID},
		}}
		return evts, []string{
			"You notice something glinting on the floor.",
			"A coin lies at your feet.",
		}

	case kindRustle:
		output := []string{"You hear a rustle somewhere in the darkness..."}
		switch {
		case state.HasItem(s, catalog.Weapon):
			output = append(output, "You grip your sword. Whatever it was thinks better of it and slinks away.")
		case state.HasItem(s, catalog.LightSource):
			output = append(output, "You raise the torch. The light drives the creature back into the shadows.")
		default:
			output = append(output, "Something brushes past you in the dark. You hold your breath until it is gone.")
		}
		return nil, output

	case kindAmbush:
		if draw(steps, ambushChance) == 0 && !state.HasItem(s, catalog.LightSource) {
			evts, output := TriggerTrap(s, w, draw)
			return evts, append([]string{"Danger! In the dark you step on a pressure plate."}, output...)
		}
	}

	return nil, nil
}

// TriggerTrap springs a trap on the player. A weapon negates it, a light
// source gives a chance to dodge, otherwise the player loses an item (and may
// fall into a neighbouring room) or, with nothing left to lose, may die.
func TriggerTrap(s *types.State, w *state.World, draw rng.Func) ([]types.Event, []string) {
	steps := s.StepsTaken
	evts := []types.Event{{Type: "trap_triggered", Data: map[string]any{"room": s.Player.Location}}}
	output := []string{"A trap springs! The floor starts to tremble..."}

	if state.HasItem(s, catalog.Weapon) {
		output = append(output, "You parry the blades with your sword. The trap is harmless.")
		return evts, output
	}

	if state.HasItem(s, catalog.LightSource) {
		if draw(steps, dodgeChance) == 0 {
			output = append(output, "By the torchlight you spot the mechanism in time and leap aside.")
			return evts, output
		}
		output = append(output, "The torchlight shows the danger too late.")
	}

	inv := s.Player.Inventory
	if len(inv) > 0 {
		lost := state.RemoveItemAt(s, draw(steps, len(inv)))
		evts = append(evts, types.Event{Type: "item_lost", Data: map[string]any{"item": lost}})
		output = append(output, "In the confusion you drop something. You lost: "+lost)

		if draw(steps, fallChance) == 0 {
			fallEvts, fallOut := fall(s, w, draw)
			evts = append(evts, fallEvts...)
			output = append(output, fallOut...)
		}
		return evts, output
	}

	if draw(steps, damageRoll) < damageThreshold {
		s.GameOver = true
		evts = append(evts, types.Event{Type: "game_over", Data: map[string]any{"cause": "trap"}})
		output = append(output, "The floor gives way beneath you. You plunge into the abyss. The trap was fatal.")
		return evts, output
	}

	output = append(output, "You barely manage to cling to the edge and escape.")
	return evts, output
}

// fall forces the player through a pseudo-randomly chosen exit of the current
// room. Locked doors do not stop a fall.
func fall(s *types.State, w *state.World, draw rng.Func) ([]types.Event, []string) {
	room := w.Room(s.Player.Location)
	if room == nil {
		return nil, nil
	}
	dirs := room.ExitDirections()
	if len(dirs) == 0 {
		return nil, nil
	}

	dir := dirs[draw(s.StepsTaken, len(dirs))]
	dest := w.Room(room.Exits[dir])
	if dest == nil {
		return nil, nil
	}

	s.Player.Location = dest.ID
	s.StepsTaken++

	evts := []types.Event{{
		Type: "player_moved",
		Data: map[string]any{"from": room.ID, "to": dest.ID, "direction": dir, "forced": true},
	}}
	output := []string{"The floor tilts and you slide " + dir + " into the next chamber!"}
	output = append(output, state.Describe(dest)...)
	return evts, output
}

// Format renders an event as its type followed by its data with sorted keys,
// e.g. "player_moved direction=north from=hall to=garden".
func Format(ev types.Event) string {
	keys := make([]string, 0, len(ev.Data))
	for k := range ev.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := append(make([]string, 0, len(keys)+1), ev.Type)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ev.Data[k]))
	}
	return strings.Join(parts, " ")
}
