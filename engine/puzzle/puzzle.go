// Package puzzle matches player answers against a riddle's canonical answer.
package puzzle

import (
	"strings"

	"golang.org/x/text/cases"
)

// alternates lists the spelled-out forms accepted for numeric answers.
var alternates = map[string][]string{
	"3":  {"three"},
	"7":  {"seven"},
	"10": {"ten"},
}

// Normalize trims surrounding whitespace and folds case.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Accepted returns every normalized answer form accepted for canonical.
func Accepted(canonical string) []string {
	c := Normalize(canonical)
	forms := []string{c}
	for _, alt := range alternates[c] {
		forms = append(forms, Normalize(alt))
	}
	return forms
}

// Match reports whether answer solves a riddle whose answer is canonical.
// Comparison ignores case and surrounding whitespace.
func Match(answer, canonical string) bool {
	a := Normalize(answer)
	if a == "" {
		return false
	}
	for _, form := range Accepted(canonical) {
		if a == form {
			return true
		}
	}
	return false
}

// MatchCode is the stricter comparison used by the vault keypad: the trimmed
// code must equal canonical exactly, or the first registered spelling of it.
func MatchCode(code, canonical string) bool {
	code = strings.TrimSpace(code)
	if code == "" || canonical == "" {
		return false
	}
	if code == canonical {
		return true
	}
	if alts := alternates[canonical]; len(alts) > 0 {
		return code == alts[0]
	}
	return false
}
