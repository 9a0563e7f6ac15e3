// Package types defines the shared data structures for the labyrinth engine.
// This package contains only type definitions, no logic.
package types

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Event is recorded whenever a command mutates the game.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Events []Event
	Output []string
	Prompt string // non-empty while the engine waits for an answer
}

// Puzzle is a question attached to a room.
type Puzzle struct {
	Question string
	Answer   string
}

// RoomDef is the base definition of a room.
type RoomDef struct {
	ID          string
	Description string
	Exits       map[string]string // direction → room_id
	Items       []string
	Puzzle      *Puzzle // nil when the room has no riddle
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting room ID
	Intro   string
}

// Player holds the player's runtime state.
type Player struct {
	Location  string
	Inventory []string
}

// State is the complete mutable game state.
type State struct {
	Player     Player
	StepsTaken int
	GameOver   bool
	Won        bool
	CommandLog []string
}
