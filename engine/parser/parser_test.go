package parser

import (
	"testing"

	"github.com/nathoo/labyrinth/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "  \t ",
			want:  types.Intent{},
		},

		// Basic verbs (no object)
		{
			name:  "look",
			input: "look",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "solve",
			input: "solve",
			want:  types.Intent{Verb: "solve"},
		},

		// Verb aliases
		{
			name:  "describe → look",
			input: "describe",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "inv → inventory",
			input: "inv",
			want:  types.Intent{Verb: "inventory"},
		},
		{
			name:  "exit → quit",
			input: "exit",
			want:  types.Intent{Verb: "quit"},
		},

		// Direction shortcuts
		{
			name:  "north → go north",
			input: "north",
			want:  types.Intent{Verb: "go", Object: "north"},
		},
		{
			name:  "WEST → go west",
			input: "WEST",
			want:  types.Intent{Verb: "go", Object: "west"},
		},
		{
			name:  "go east",
			input: "go east",
			want:  types.Intent{Verb: "go", Object: "east"},
		},
		{
			name:  "go without direction",
			input: "go",
			want:  types.Intent{Verb: "go"},
		},
		{
			name:  "abbreviations are not directions",
			input: "n",
			want:  types.Intent{Verb: "n"},
		},

		// Multi-word objects
		{
			name:  "take bronze box",
			input: "take bronze box",
			want:  types.Intent{Verb: "take", Object: "bronze box"},
		},
		{
			name:  "case and surrounding space",
			input: "  USE Rusty Key  ",
			want:  types.Intent{Verb: "use", Object: "rusty key"},
		},
		{
			name:  "split at first whitespace run",
			input: "take \t  treasure_key",
			want:  types.Intent{Verb: "take", Object: "treasure_key"},
		},

		// Unknown verbs pass through
		{
			name:  "unknown verb",
			input: "dance wildly",
			want:  types.Intent{Verb: "dance", Object: "wildly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
