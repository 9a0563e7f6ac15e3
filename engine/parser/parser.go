// Package parser converts command strings into Intent structs.
// Intentionally dumb: a verb and an optional trailing argument, nothing more.
package parser

import (
	"strings"
	"unicode"

	"github.com/nathoo/labyrinth/types"
)

var verbAliases = map[string]string{
	"describe": "look",
	"inv":      "inventory",
	"exit":     "quit",
}

// Bare directions are shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
}

// Parse converts a raw command string into an Intent. Input is trimmed and
// lower-cased, then split at the first run of whitespace: the first word is
// the verb and everything after it is the object.
func Parse(input string) types.Intent {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return types.Intent{}
	}

	verb, object := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		verb = input[:i]
		object = strings.TrimSpace(input[i:])
	}

	if directionNames[verb] {
		return types.Intent{Verb: "go", Object: verb}
	}

	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	return types.Intent{Verb: verb, Object: object}
}
