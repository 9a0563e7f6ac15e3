package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the world-building constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		if coll.game != nil {
			L.RaiseError("Game{} defined more than once")
		}
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Puzzle { question = "...", answer = "..." } tags the table so a room
	// can tell a riddle from a stray table.
	L.SetGlobal("Puzzle", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		tbl.RawSetString("__puzzle", lua.LTrue)
		L.Push(tbl)
		return 1
	}))
}
