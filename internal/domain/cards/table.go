package cards

import "fmt"

// Place identifies which container holds a card.
type Place int

const (
	PlaceStackA Place = iota
	PlaceTransit
	PlaceStackB
)

// String returns the string representation of the place
func (p Place) String() string {
	switch p {
	case PlaceStackA:
		return "StackA"
	case PlaceTransit:
		return "Transit"
	case PlaceStackB:
		return "StackB"
	default:
		return "Unknown"
	}
}

// Table tracks which container every card belongs to.
//
// Stack A and stack B are ordered; the last element is the top.
// Transit is unordered: cards may land in any order.
type Table struct {
	stackA  []Card
	stackB  []Card
	transit map[int]Card
	places  map[int]Place
}

// NewTable places every card of deck into stack A, in deck order.
func NewTable(deck []Card) *Table {
	t := &Table{
		stackA:  make([]Card, 0, len(deck)),
		stackB:  make([]Card, 0, len(deck)),
		transit: make(map[int]Card),
		places:  make(map[int]Place, len(deck)),
	}
	for _, c := range deck {
		t.stackA = append(t.stackA, c)
		t.places[c.Index] = PlaceStackA
	}
	return t
}

// Lift pops the top card of stack A into transit.
// Returns false when stack A is empty.
func (t *Table) Lift() (Card, bool) {
	n := len(t.stackA)
	if n == 0 {
		return Card{}, false
	}
	c := t.stackA[n-1]
	t.stackA = t.stackA[:n-1]
	t.transit[c.Index] = c
	t.places[c.Index] = PlaceTransit
	return c, true
}

// Land moves a card from transit onto the top of stack B.
func (t *Table) Land(c Card) error {
	if _, ok := t.transit[c.Index]; !ok {
		return fmt.Errorf("card %d is not in transit", c.Index)
	}
	delete(t.transit, c.Index)
	t.stackB = append(t.stackB, c)
	t.places[c.Index] = PlaceStackB
	return nil
}

// Counts returns the sizes of stack A, transit and stack B.
func (t *Table) Counts() (a, transit, b int) {
	return len(t.stackA), len(t.transit), len(t.stackB)
}

// Total returns the number of cards on the table.
func (t *Table) Total() int {
	a, tr, b := t.Counts()
	return a + tr + b
}

// PlaceOf reports where a card currently is.
func (t *Table) PlaceOf(index int) (Place, bool) {
	p, ok := t.places[index]
	return p, ok
}

// StackA returns a copy of stack A, bottom first.
func (t *Table) StackA() []Card {
	return append([]Card(nil), t.stackA...)
}

// StackB returns a copy of stack B, bottom first.
func (t *Table) StackB() []Card {
	return append([]Card(nil), t.stackB...)
}
