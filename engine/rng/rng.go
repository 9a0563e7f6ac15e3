// Package rng provides the deterministic pseudo-random function that drives
// every chance-based outcome in the labyrinth. There is no hidden state: the
// same seed and modulus always produce the same value, so a replayed command
// sequence reproduces the same events and traps.
package rng

import "math"

// Hash constants of the trigonometric PRF.
const (
	SeedScale   = 12.9898
	OutputScale = 43758.5453
)

// Func draws an integer in [0, modulus) from a seed.
type Func func(seed, modulus int) int

// Pseudo returns floor(frac(sin(seed*SeedScale)*OutputScale) * modulus).
// A non-positive modulus yields 0.
func Pseudo(seed, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	x := math.Sin(float64(seed)*SeedScale) * OutputScale
	frac := x - math.Floor(x)
	n := int(frac * float64(modulus))
	if n >= modulus {
		n = modulus - 1
	}
	return n
}

// Fixed returns a Func that ignores its seed and always draws v, clamped to
// the requested modulus.
func Fixed(v int) Func {
	return func(_, modulus int) int {
		if modulus <= 0 {
			return 0
		}
		if v >= modulus {
			return modulus - 1
		}
		return v
	}
}
