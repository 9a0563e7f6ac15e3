// Package engine provides the Step() orchestrator that turns one line of
// player input into a single turn: parse, dispatch to navigation, puzzles,
// the vault or an item handler, and collect the resulting output and events.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/parser"
	"github.com/nathoo/labyrinth/engine/rng"
	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/types"
)

// Structural errors. They indicate a corrupt room graph and abort the
// current command without touching state.
var (
	ErrInvalidLocation = errors.New("current location is unknown")
	ErrUnknownRoom     = errors.New("exit leads to an unknown room")
)

// prompt identifies the question the engine is waiting on, if any.
type prompt int

const (
	promptNone prompt = iota
	promptAnswer
	promptCodeConfirm
	promptCode
)

var promptText = map[prompt]string{
	promptAnswer:      "Your answer: ",
	promptCodeConfirm: "Enter a code? (yes/no): ",
	promptCode:        "Enter the code: ",
}

// Engine holds the game definitions, the mutable world and the player state.
type Engine struct {
	Defs   *state.Defs
	World  *state.World
	State  *types.State
	Rand   rng.Func
	Logger *slog.Logger

	pending prompt
}

// New creates a new engine from definitions.
func New(defs *state.Defs) *Engine {
	return &Engine{
		Defs:   defs,
		World:  state.NewWorld(defs),
		State:  state.NewState(defs),
		Rand:   rng.Pseudo,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// turn accumulates the events and output of one Step.
type turn struct {
	events []types.Event
	output []string
}

func (t *turn) say(lines ...string) {
	t.output = append(t.output, lines...)
}

func (t *turn) emit(typ string, data map[string]any) {
	t.events = append(t.events, types.Event{Type: typ, Data: data})
}

func (t *turn) add(evts []types.Event, output []string) {
	t.events = append(t.events, evts...)
	t.output = append(t.output, output...)
}

func (t *turn) result() types.Result {
	return types.Result{Events: t.events, Output: t.output}
}

// Step processes one line of player input and returns the result. While a
// question is pending the whole line is taken as the answer.
func (e *Engine) Step(input string) types.Result {
	if e.State.GameOver {
		return types.Result{Output: []string{"The game is over."}}
	}

	e.State.CommandLog = append(e.State.CommandLog, input)

	var t turn
	if e.pending != promptNone {
		e.answer(&t, input)
	} else {
		intent := parser.Parse(input)
		if intent.Verb == "" {
			t.say("What do you want to do?")
		} else {
			e.dispatch(&t, intent)
		}
	}

	result := t.result()
	result.Prompt = e.Prompt()
	return result
}

// Prompt returns the question the engine is waiting on, or "".
func (e *Engine) Prompt() string {
	return promptText[e.pending]
}

// Quit ends the session. Session loops call it on end of input or interrupt.
func (e *Engine) Quit() types.Result {
	var t turn
	e.quit(&t)
	return t.result()
}

func (e *Engine) dispatch(t *turn, intent types.Intent) {
	switch intent.Verb {
	case "look":
		e.look(t)
	case "inventory":
		e.inventory(t)
	case "go":
		if !state.IsDirection(intent.Object) {
			t.say("Specify a direction. Example: go north")
			return
		}
		e.move(t, intent.Object)
	case "take":
		if intent.Object == "" {
			t.say("Specify an item to take. Example: take torch")
			return
		}
		e.take(t, intent.Object)
	case "use":
		if intent.Object == "" {
			t.say("Specify an item to use. Example: use torch")
			return
		}
		e.use(t, intent.Object)
	case "solve":
		if e.State.Player.Location == catalog.RoomTreasure {
			e.openVault(t)
			return
		}
		e.solve(t)
	case "help":
		t.say(helpText...)
	case "quit":
		e.quit(t)
	default:
		t.say("Unknown command. Type 'help' for a list of commands.")
	}
}

func (e *Engine) answer(t *turn, input string) {
	p := e.pending
	e.pending = promptNone

	switch p {
	case promptAnswer:
		e.answerRiddle(t, input)
	case promptCodeConfirm:
		e.confirmCode(t, input)
	case promptCode:
		if e.enterCode(t, input) {
			e.vaultOpened(t)
		}
	}
}

var helpText = []string{
	"Available commands:",
	"  go <direction>  - move north/south/east/west (or just type the direction)",
	"  look            - describe the current room",
	"  take <item>     - pick up an item",
	"  use <item>      - use an item from your inventory",
	"  inventory       - list what you are carrying",
	"  solve           - try to solve the riddle in this room",
	"  quit            - leave the game",
	"  help            - show this message",
}

// Help returns the command reference.
func Help() []string {
	return append([]string(nil), helpText...)
}

// Welcome returns the opening banner followed by the starting room.
func (e *Engine) Welcome() []string {
	var output []string
	if title := e.Defs.Game.Title; title != "" {
		output = append(output, "Welcome to "+title+"!")
	}
	if intro := strings.TrimSpace(e.Defs.Game.Intro); intro != "" {
		output = append(output, intro)
	}
	output = append(output, "Type 'help' to see the available commands.", "")
	return append(output, e.Look()...)
}

// Look describes the player's current room.
func (e *Engine) Look() []string {
	var t turn
	e.look(&t)
	return t.output
}

func (e *Engine) look(t *turn) {
	room, err := e.currentRoom()
	if err != nil {
		e.structural(t, err)
		return
	}
	t.say(state.Describe(room)...)
}

func (e *Engine) inventory(t *turn) {
	inv := e.State.Player.Inventory
	if len(inv) == 0 {
		t.say("Your inventory is empty.")
		return
	}
	t.say("You are carrying:")
	for _, id := range inv {
		t.say(" - " + id)
	}
}

func (e *Engine) take(t *turn, item string) {
	if item == catalog.Chest {
		t.say("You can't lift the chest, it is far too heavy.")
		return
	}
	room, err := e.currentRoom()
	if err != nil {
		e.structural(t, err)
		return
	}
	if !room.Items.Has(item) {
		t.say("There is no such item here.")
		return
	}
	if catalog.Unique(item) && state.HasItem(e.State, item) {
		t.say("You already have the " + item + ".")
		return
	}
	room.Items.Remove(item)
	state.GiveItem(e.State, item)
	t.emit("item_taken", map[string]any{"item": item, "room": room.ID})
	t.say("You picked up: " + item)
}

func (e *Engine) quit(t *turn) {
	e.pending = promptNone
	e.State.GameOver = true
	t.emit("game_over", map[string]any{"cause": "quit"})
	t.say("You leave the labyrinth. Until next time!")
	e.Logger.Info("session ended", "cause", "quit", "steps", e.State.StepsTaken)
}

// win ends the session in victory.
func (e *Engine) win(t *turn, cause string) {
	e.State.GameOver = true
	e.State.Won = true
	t.emit("game_over", map[string]any{"cause": cause, "won": true})
	e.Logger.Info("session ended", "cause", cause, "steps", e.State.StepsTaken)
}

func (e *Engine) currentRoom() (*state.Room, error) {
	loc := state.PlayerLocation(e.State)
	room := e.World.Room(loc)
	if room == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
	}
	return room, nil
}

// structural reports a corrupt-graph error to the player and the log.
func (e *Engine) structural(t *turn, err error) {
	e.Logger.Error("structural error", "err", err)
	t.say("Error: " + err.Error() + ".")
}
