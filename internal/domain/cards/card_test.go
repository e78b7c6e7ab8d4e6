package cards

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_Classes(t *testing.T) {
	tests := []struct {
		index      int
		wantSymbol int
		wantColor  int
	}{
		{0, 0, 0},
		{11, 11, 0},
		{12, 0, 1},
		{25, 1, 2},
		{143, 11, 11},
	}

	for _, tt := range tests {
		c := Card{Index: tt.index}
		assert.Equal(t, tt.wantSymbol, c.Symbol(), "symbol of %d", tt.index)
		assert.Equal(t, tt.wantColor, c.Color(), "color of %d", tt.index)
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck(144)
	require.Len(t, deck, 144)
	for i, c := range deck {
		assert.Equal(t, i, c.Index)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	deck := NewDeck(144)
	Shuffle(deck, rand.New(rand.NewSource(7)))

	indices := make([]int, len(deck))
	for i, c := range deck {
		indices[i] = c.Index
	}
	sort.Ints(indices)
	for i, idx := range indices {
		assert.Equal(t, i, idx)
	}
}

func TestShuffle_NoFixedPointBias(t *testing.T) {
	const (
		n      = 144
		trials = 20000
	)
	rng := rand.New(rand.NewSource(42))
	fixed := make([]int, n)

	for trial := 0; trial < trials; trial++ {
		deck := NewDeck(n)
		Shuffle(deck, rng)
		for pos, c := range deck {
			if c.Index == pos {
				fixed[pos]++
			}
		}
	}

	// Expected count per position is trials/n (about 139, sd about 12).
	expected := float64(trials) / n
	total := 0
	for pos, count := range fixed {
		total += count
		assert.InDelta(t, expected, float64(count), expected*0.5, "position %d", pos)
	}
	// A uniform permutation has one fixed point on average.
	assert.InDelta(t, 1.0, float64(total)/trials, 0.05)
}

func TestShuffle_Empty(t *testing.T) {
	var deck []Card
	Shuffle(deck, rand.New(rand.NewSource(1)))
	assert.Empty(t, deck)
}
