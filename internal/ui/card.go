package ui

import (
	"github.com/younwookim/taskshow/internal/domain/cards"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/render"
)

// NewCard builds the visual of c: the background of its color class with
// the glyph of its symbol class on top. The pivot is the card center.
func NewCard(cache *assets.Cache, c cards.Card) *render.Node {
	n := render.NewSprite("card", cache.CardBackground(c.Color()))
	n.CenterPivot()

	sym := render.NewSprite("symbol", cache.CardSymbol(c.Symbol()))
	sym.CenterPivot()
	sym.X = assets.CardWidth / 2
	sym.Y = assets.CardHeight / 2
	n.AddChild(sym)
	return n
}
