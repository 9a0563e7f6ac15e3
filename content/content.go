// Package content contains the embedded Lua world files for the Treasure
// Labyrinth.
package content

import "embed"

// Dir is the directory inside FS that holds the labyrinth world.
const Dir = "labyrinth"

//go:embed labyrinth/*.lua
var FS embed.FS
