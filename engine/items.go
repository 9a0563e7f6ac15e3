package engine

import (
	"github.com/nathoo/labyrinth/engine/catalog"
	"github.com/nathoo/labyrinth/engine/state"
)

// itemHandler applies the effect of using an item the player holds.
type itemHandler func(e *Engine, t *turn)

// itemHandlers is the closed set of usable items. Anything else can be
// carried but not used.
var itemHandlers = map[string]itemHandler{
	catalog.Torch: func(_ *Engine, t *turn) {
		t.say("You light the torch. It grows brighter and you can see your surroundings better.")
	},
	catalog.Sword: func(_ *Engine, t *turn) {
		t.say("You hold the sword in your hands. You feel confident and strong.")
	},
	catalog.BronzeBox:   useBronzeBox,
	catalog.RustyKey:    useVaultKey,
	catalog.TreasureKey: useVaultKey,
	catalog.PortalKey:   usePortalKey,
}

func (e *Engine) use(t *turn, item string) {
	if !state.HasItem(e.State, item) {
		t.say("You don't have that item.")
		return
	}
	h, ok := itemHandlers[item]
	if !ok {
		t.say("You don't know how to use this item.")
		return
	}
	h(e, t)
}

func useBronzeBox(e *Engine, t *turn) {
	t.say("You open the bronze box. It is mostly dust.")
	if state.HasItem(e.State, catalog.RustyKey) {
		return
	}
	state.GiveItem(e.State, catalog.RustyKey)
	t.emit("item_given", map[string]any{"item": catalog.RustyKey})
	t.say("Inside the box you find: " + catalog.RustyKey)
}

func useVaultKey(e *Engine, t *turn) {
	if e.State.Player.Location != catalog.RoomTreasure {
		t.say("There is nothing here to use this key on.")
		return
	}
	e.openVault(t)
}

func usePortalKey(e *Engine, t *turn) {
	if e.State.Player.Location != catalog.RoomPortal {
		t.say("This key only works in the portal room.")
		return
	}
	t.say(
		"You use the portal key. The portal flares into life!",
		"Congratulations! You found the way out of the labyrinth!",
	)
	e.win(t, "portal")
}
