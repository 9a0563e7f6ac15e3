package loader_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/labyrinth/content"
	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/loader"
)

const minimalGame = `Game { title = "Minimal", start = "hall" }`

const minimalRooms = `
Room "hall" {
    description = "A grand hall.",
    exits = { north = "garden" },
    items = { "torch" },
    puzzle = Puzzle { question = "How many?", answer = "3" },
}
Room "garden" {
    description = "A garden.",
    exits = { south = "hall" },
}
`

func world(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, src := range files {
		fsys["world/"+name] = &fstest.MapFile{Data: []byte(src)}
	}
	return fsys
}

func TestLoadFS_Minimal(t *testing.T) {
	fsys := world(map[string]string{"game.lua": minimalGame, "rooms.lua": minimalRooms})

	defs, err := loader.LoadFS(fsys, "world")
	require.NoError(t, err)

	assert.Equal(t, "Minimal", defs.Game.Title)
	assert.Equal(t, "hall", defs.Game.Start)
	require.Contains(t, defs.Rooms, "hall")
	hall := defs.Rooms["hall"]
	assert.Equal(t, "A grand hall.", hall.Description)
	assert.Equal(t, []string{"torch"}, hall.Items)
	require.NotNil(t, hall.Puzzle)
	assert.Equal(t, "3", hall.Puzzle.Answer)
}

func TestLoadFS_IgnoresOtherFiles(t *testing.T) {
	fsys := world(map[string]string{
		"game.lua":  minimalGame,
		"rooms.lua": minimalRooms,
		"README.md": "not lua",
	})

	_, err := loader.LoadFS(fsys, "world")
	assert.NoError(t, err)
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"no lua files", map[string]string{"notes.txt": "hi"}, "no .lua files"},
		{"syntax error", map[string]string{"game.lua": "Game {"}, "parsing game.lua"},
		{"runtime error", map[string]string{"game.lua": `error("boom")`}, "executing game.lua"},
		{"no game", map[string]string{"rooms.lua": minimalRooms}, "no Game{}"},
		{"sandboxed dofile", map[string]string{"game.lua": `dofile("/etc/passwd")`}, "executing game.lua"},
		{"sandboxed random", map[string]string{"game.lua": `local n = math.random(3)`}, "executing game.lua"},
		{
			"dangling exit",
			map[string]string{
				"game.lua":  minimalGame,
				"rooms.lua": `Room "hall" { description = "H.", exits = { north = "nowhere" } }`,
			},
			`undefined room "nowhere"`,
		},
		{
			"numeric exit target",
			map[string]string{
				"game.lua":  minimalGame,
				"rooms.lua": `Room "hall" { description = "H.", exits = { north = 5 } }`,
			},
			`compiling room hall: exits: "north" is number`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadFS(world(tt.files), "world")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFS_ValidationError(t *testing.T) {
	fsys := world(map[string]string{
		"game.lua":  `Game { start = "hall" }`,
		"rooms.lua": `Room "hall" { description = "H.", exits = { up = "hall" } }`,
	})

	_, err := loader.LoadFS(fsys, "world")

	var ve *loader.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestLoadFS_MissingDir(t *testing.T) {
	_, err := loader.LoadFS(fstest.MapFS{}, "absent")
	assert.Error(t, err)
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.lua"), []byte(minimalGame), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rooms.lua"), []byte(minimalRooms), 0o644))

	defs, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Len(t, defs.Rooms, 2)

	_, err = loader.Load(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoadFS_EmbeddedLabyrinth(t *testing.T) {
	defs, err := loader.LoadFS(content.FS, content.Dir)
	require.NoError(t, err)

	assert.Equal(t, "Treasure Labyrinth", defs.Game.Title)
	assert.Equal(t, "entrance", defs.Game.Start)
	assert.Len(t, defs.Rooms, 7)

	for id, room := range defs.Rooms {
		for dir, target := range room.Exits {
			assert.True(t, state.IsDirection(dir), "%s exit %s", id, dir)
			assert.Contains(t, defs.Rooms, target, "%s exit %s", id, dir)
		}
	}

	assert.Equal(t, "treasure_room", defs.Rooms["hall"].Exits["north"])
	assert.Contains(t, defs.Rooms["treasure_room"].Items, "treasure chest")
	assert.Equal(t, "10", defs.Rooms["treasure_room"].Puzzle.Answer)
	assert.Equal(t, "3", defs.Rooms["portal_room"].Puzzle.Answer)
	assert.Contains(t, defs.Rooms["armory"].Items, "bronze box")
	assert.Contains(t, defs.Rooms["library"].Items, "treasure_key")
}
