package engine

import (
	"strings"

	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/puzzle"
	"github.com/nathoo/labyrinth/engine/state"
)

// openVault runs the chest protocol and ends the game when it opens.
func (e *Engine) openVault(t *turn) {
	if e.attemptOpen(t) {
		e.vaultOpened(t)
	}
}

func (e *Engine) vaultOpened(t *turn) {
	e.win(t, "vault")
	t.say("Congratulations on your victory! The game is over.")
}

// vault returns the treasure room when the player stands in it with the
// chest still in place.
func (e *Engine) vault(t *turn) *state.Room {
	if e.State.Player.Location != catalog.RoomTreasure {
		t.say("There is no treasure chest here.")
		return nil
	}
	room := e.World.Room(catalog.RoomTreasure)
	if room == nil || !room.Items.Has(catalog.Chest) {
		t.say("The treasure chest is already open or gone.")
		return nil
	}
	return room
}

// attemptOpen reports whether this call opened the chest. Without the key
// it offers the keypad and leaves the engine waiting for a yes/no; the
// outcome of that exchange is reported by enterCode. It never ends the game.
func (e *Engine) attemptOpen(t *turn) bool {
	room := e.vault(t)
	if room == nil {
		return false
	}

	if state.HasItem(e.State, catalog.TreasureKey) {
		t.say("You turn the key and the lock clicks. The chest is open!")
		e.openChest(t, room, "key")
		return true
	}

	t.say("The chest is locked. You have no key, but you could try entering a code.")
	e.pending = promptCodeConfirm
	return false
}

func (e *Engine) confirmCode(t *turn, choice string) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "yes", "y":
		e.pending = promptCode
	default:
		t.say("You step back from the chest.")
	}
}

// enterCode checks a keypad code against the vault room's riddle answer. A
// room whose riddle has been cleared has no code and stays locked.
func (e *Engine) enterCode(t *turn, code string) bool {
	room := e.vault(t)
	if room == nil {
		return false
	}

	ok := room.Puzzle != nil && puzzle.MatchCode(code, room.Puzzle.Answer)
	e.Logger.Debug("vault code attempt", "correct", ok)
	if !ok {
		t.say("Wrong code. The chest stays locked.")
		return false
	}
	t.say("Code accepted! The lock clicks and the chest swings open.")
	e.openChest(t, room, "code")
	return true
}

func (e *Engine) openChest(t *turn, room *state.Room, via string) {
	room.Items.Remove(catalog.Chest)
	t.emit("chest_opened", map[string]any{"via": via})
	t.say("The chest is full of treasure! You win!")
}
