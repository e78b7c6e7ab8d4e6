// Package cards holds the deck model behind the card migration task.
package cards

// ClassCount is the number of symbol classes and color classes.
const ClassCount = 12

// Card is an immutable card identity.
type Card struct {
	Index int
}

// Symbol returns the symbol class of the card (index mod 12).
func (c Card) Symbol() int {
	return c.Index % ClassCount
}

// Color returns the color class of the card (floor(index/12) mod 12).
func (c Card) Color() int {
	return (c.Index / ClassCount) % ClassCount
}

// NewDeck returns n cards with indices 0..n-1 in order.
func NewDeck(n int) []Card {
	deck := make([]Card, n)
	for i := range deck {
		deck[i] = Card{Index: i}
	}
	return deck
}

// Intn is the subset of *rand.Rand used for shuffling.
type Intn interface {
	Intn(n int) int
}

// Shuffle permutes deck in place with a uniform Fisher-Yates shuffle.
func Shuffle(deck []Card, rng Intn) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
