// Package state manages the mutable game state and the runtime room graph
// built from the immutable definitions.
package state

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/labyrinth/types"
)

// Directions lists the accepted movement tokens in their canonical order.
// Exit listings and pseudo-random exit picks follow this order.
var Directions = []string{"north", "south", "east", "west"}

// IsDirection reports whether dir is one of the four accepted directions.
func IsDirection(dir string) bool {
	for _, d := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Defs holds the immutable game definitions loaded from Lua.
type Defs struct {
	Game  types.GameDef
	Rooms map[string]types.RoomDef
}

// Room is the runtime copy of a room. Items and Puzzle change during play.
type Room struct {
	ID          string
	Description string
	Exits       map[string]string
	Items       mapset.Set[string]
	Puzzle      *types.Puzzle
}

// World is the mutable room graph for one session.
type World struct {
	Rooms map[string]*Room
}

// NewWorld copies the room definitions into a fresh mutable graph.
func NewWorld(defs *Defs) *World {
	w := &World{Rooms: make(map[string]*Room, len(defs.Rooms))}
	for id, def := range defs.Rooms {
		items := mapset.New[string]()
		for _, it := range def.Items {
			items.Put(it)
		}
		exits := make(map[string]string, len(def.Exits))
		for dir, target := range def.Exits {
			exits[dir] = target
		}
		var puzzle *types.Puzzle
		if def.Puzzle != nil {
			p := *def.Puzzle
			puzzle = &p
		}
		w.Rooms[id] = &Room{
			ID:          id,
			Description: def.Description,
			Exits:       exits,
			Items:       items,
			Puzzle:      puzzle,
		}
	}
	return w
}

// Room returns the room with the given ID, or nil.
func (w *World) Room(id string) *Room {
	if id == "" {
		return nil
	}
	return w.Rooms[id]
}

// NewState creates a fresh game state from definitions.
func NewState(defs *Defs) *types.State {
	return &types.State{
		Player: types.Player{
			Location:  defs.Game.Start,
			Inventory: []string{},
		},
		CommandLog: []string{},
	}
}

// HasItem returns true if the player has the given item in inventory.
func HasItem(s *types.State, itemID string) bool {
	for _, id := range s.Player.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// GiveItem appends an item to the inventory.
func GiveItem(s *types.State, itemID string) {
	s.Player.Inventory = append(s.Player.Inventory, itemID)
}

// RemoveItemAt removes the inventory entry at index i and returns it.
func RemoveItemAt(s *types.State, i int) string {
	inv := s.Player.Inventory
	item := inv[i]
	s.Player.Inventory = append(inv[:i:i], inv[i+1:]...)
	return item
}

// PlayerLocation returns the player's current room ID.
func PlayerLocation(s *types.State) string {
	return s.Player.Location
}

// ExitDirections returns the room's exit directions in canonical order.
func (r *Room) ExitDirections() []string {
	dirs := make([]string, 0, len(r.Exits))
	for _, d := range Directions {
		if _, ok := r.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ItemList returns the items lying in the room, sorted for stable display.
func (r *Room) ItemList() []string {
	items := make([]string, 0, r.Items.Size())
	r.Items.Each(func(id string) {
		items = append(items, id)
	})
	sort.Strings(items)
	return items
}

// Solved reports whether the room's riddle (if any) has been cleared.
func (r *Room) Solved() bool {
	return r.Puzzle == nil
}
