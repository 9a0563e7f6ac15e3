// Package catalog names the rooms and items the engine gives special meaning.
// Anything not listed here is inert scenery that can only be carried around.
package catalog

// Rooms with special rules.
const (
	RoomTreasure = "treasure_room"
	RoomTrap     = "trap_room"
	RoomPortal   = "portal_room"
)

// Items with special behaviour.
const (
	Torch       = "torch"
	Sword       = "sword"
	BronzeBox   = "bronze box"
	RustyKey    = "rusty key"
	TreasureKey = "treasure_key"
	PortalKey   = "portal_key"
	Coin        = "coin"
	Chest       = "treasure chest"
)

// Unique reports whether the player may carry at most one of item.
func Unique(item string) bool {
	switch item {
	case RustyKey, TreasureKey, PortalKey:
		return true
	}
	return false
}

// Role aliases used by the navigation and trap logic.
const (
	LightSource = Torch
	Weapon      = Sword
	VaultDoor   = RustyKey
)
