package game

import (
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

// NewArranged builds a game with the given hands and piles instead of dealing.
// Piles are listed bottom first. The current color and label come from the
// discard top.
func NewArranged(players []*Player, hands [][]card.Card, draw, discard []card.Card, opts ...Option) (*Game, error) {
	g, err := newGame(players, opts)
	if err != nil {
		return nil, err
	}
	for i, player := range players {
		if err := player.Hand().AddCards(hands[i]); err != nil {
			return nil, err
		}
		g.total += len(hands[i])
	}
	g.piles.Fill(draw)
	for _, c := range discard {
		g.piles.Discard(c)
	}
	g.total += len(draw) + len(discard)
	if err := g.engine.syncFromDiscard(); err != nil {
		return nil, err
	}
	return g, nil
}

func (e *TurnEngine) SetMatch(currentColor color.Color, currentLabel card.Label) {
	e.color = currentColor
	e.label = currentLabel
}

func (e *TurnEngine) Play(player *Player, played card.Card) error {
	return e.play(player, played, false)
}

func (e *TurnEngine) Advance() *Player {
	return e.advance()
}
