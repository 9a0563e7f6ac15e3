package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudo_Deterministic(t *testing.T) {
	for seed := 0; seed < 200; seed++ {
		for _, m := range []int{1, 2, 3, 5, 8, 100} {
			require.Equal(t, Pseudo(seed, m), Pseudo(seed, m), "seed %d modulus %d", seed, m)
		}
	}
}

func TestPseudo_Range(t *testing.T) {
	for seed := -50; seed < 1000; seed++ {
		for _, m := range []int{1, 2, 3, 4, 7, 8, 13} {
			got := Pseudo(seed, m)
			if got < 0 || got >= m {
				t.Fatalf("Pseudo(%d, %d) = %d, out of range", seed, m, got)
			}
		}
	}
}

func TestPseudo_KnownValues(t *testing.T) {
	tests := []struct {
		seed, modulus, want int
	}{
		{0, 3, 0},
		{0, 8, 0},
		{1, 3, 2},
		{1, 8, 7},
		{2, 3, 0},
		{3, 3, 1},
		{4, 2, 0},
		{7, 3, 0},
		{8, 3, 0},
		{10, 3, 2},
		{12, 8, 1},
		{13, 3, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pseudo(tt.seed, tt.modulus), "Pseudo(%d, %d)", tt.seed, tt.modulus)
	}
}

func TestPseudo_NonPositiveModulus(t *testing.T) {
	assert.Equal(t, 0, Pseudo(5, 0))
	assert.Equal(t, 0, Pseudo(5, -3))
}

func TestPseudo_DifferentSeedsDiffer(t *testing.T) {
	differs := false
	for seed := 1; seed < 20; seed++ {
		if Pseudo(seed, 100) != Pseudo(seed+1, 100) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "expected different seeds to produce different results")
}

func TestFixed(t *testing.T) {
	f := Fixed(2)
	assert.Equal(t, 2, f(99, 3))
	assert.Equal(t, 1, f(99, 2))
	assert.Equal(t, 0, f(99, 0))
	assert.Equal(t, 0, Fixed(0)(1, 8))
}
