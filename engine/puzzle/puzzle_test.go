package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		canonical string
		want      bool
	}{
		{"exact", "echo", "echo", true},
		{"upper case", "ECHO", "echo", true},
		{"mixed case canonical", "echo", "Echo", true},
		{"surrounding whitespace", "  echo \t", "echo", true},
		{"wrong", "shadow", "echo", false},
		{"empty answer", "", "echo", false},
		{"blank answer", "   ", "echo", false},
		{"digits", "10", "10", true},
		{"spelled ten", "ten", "10", true},
		{"spelled ten upper", " TEN ", "10", true},
		{"spelled three", "three", "3", true},
		{"spelled seven", "Seven", "7", true},
		{"wrong spelling", "eleven", "10", false},
		{"unregistered numeral", "two", "2", false},
		{"inner whitespace kept", "step  step step", "step step step", false},
		{"phrase", "Step Step Step", "step step step", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.answer, tt.canonical))
		})
	}
}

func TestAccepted(t *testing.T) {
	assert.Equal(t, []string{"10", "ten"}, Accepted("10"))
	assert.Equal(t, []string{"echo"}, Accepted("Echo"))
}

func TestMatchCode(t *testing.T) {
	tests := []struct {
		code      string
		canonical string
		want      bool
	}{
		{"10", "10", true},
		{" 10 ", "10", true},
		{"ten", "10", true},
		{"TEN", "10", false},
		{"Ten", "10", false},
		{"11", "10", false},
		{"", "10", false},
		{"10", "", false},
		{"Echo", "echo", false},
		{"echo", "echo", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchCode(tt.code, tt.canonical), "MatchCode(%q, %q)", tt.code, tt.canonical)
	}
}
