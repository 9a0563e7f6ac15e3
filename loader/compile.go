// Package loader loads the Lua world files into Go structs at startup.
// The Lua VM is discarded after loading; no Lua runs during play.
package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/types"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getScalar returns a string or number field as a string, or "" otherwise.
// Riddle answers may be written as plain numbers.
func getScalar(tbl *lua.LTable, key string) string {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString, lua.LNumber:
		return lua.LVAsString(v)
	default:
		return ""
	}
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringMap converts a Lua table with string keys and values to a
// map[string]string.
func tableToStringMap(tbl *lua.LTable) (map[string]string, error) {
	m := map[string]string{}
	if tbl == nil {
		return m, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		ks, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("key %s is %s, want string", lua.LVAsString(k), k.Type())
			return
		}
		vs, ok := v.(lua.LString)
		if !ok {
			err = fmt.Errorf("%q is %s, want string", string(ks), v.Type())
			return
		}
		m[string(ks)] = string(vs)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// tableToStringList converts the array part of a Lua table to a []string.
func tableToStringList(tbl *lua.LTable) ([]string, error) {
	if tbl == nil {
		return nil, nil
	}
	var list []string
	for i := 1; i <= tbl.MaxN(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("entry %d is %s, want string", i, tbl.RawGetInt(i).Type())
		}
		list = append(list, string(s))
	}
	return list, nil
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	defs := &state.Defs{
		Game:  compileGame(coll.game),
		Rooms: map[string]types.RoomDef{},
	}

	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("room %s defined more than once", raw.id)
		}
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		defs.Rooms[room.ID] = room
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getScalar(tbl, "version"),
		Start:   getString(tbl, "start"),
		Intro:   getString(tbl, "intro"),
	}
}

// compileRoom compiles a raw room into a RoomDef.
func compileRoom(raw rawRoom) (types.RoomDef, error) {
	tbl := raw.table
	items, err := tableToStringList(getTable(tbl, "items"))
	if err != nil {
		return types.RoomDef{}, fmt.Errorf("items: %w", err)
	}
	exits, err := tableToStringMap(getTable(tbl, "exits"))
	if err != nil {
		return types.RoomDef{}, fmt.Errorf("exits: %w", err)
	}

	room := types.RoomDef{
		ID:          raw.id,
		Description: getString(tbl, "description"),
		Exits:       exits,
		Items:       items,
	}

	switch p := tbl.RawGetString("puzzle").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		if p.RawGetString("__puzzle") != lua.LTrue {
			return types.RoomDef{}, fmt.Errorf("puzzle must be built with Puzzle{}")
		}
		room.Puzzle = &types.Puzzle{
			Question: getString(p, "question"),
			Answer:   getScalar(p, "answer"),
		}
	default:
		return types.RoomDef{}, fmt.Errorf("puzzle is %s, want Puzzle{}", p.Type())
	}

	return room, nil
}
