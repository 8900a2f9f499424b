package game

import (
	"fmt"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
)

// Piles owns the draw and discard piles of one game.
type Piles struct {
	draw    *Pile
	discard *Pile
	rng     RandomSource
}

func NewPiles(rng RandomSource) *Piles {
	return &Piles{
		draw:    NewPile(consts.DeckSize),
		discard: NewPile(consts.DeckSize),
		rng:     rng,
	}
}

// Fill pushes cards onto the draw pile in order, so the last card ends on top.
func (p *Piles) Fill(cards []card.Card) {
	for _, c := range cards {
		p.draw.Push(c)
	}
}

func (p *Piles) DrawTop() (card.Card, error) {
	top, ok := p.draw.Pop()
	if !ok {
		return card.Card{}, consts.ErrorsDrawPileEmpty
	}
	return top, nil
}

// Discard commits c to the discard pile. The caller syncs the current color
// and label from it.
func (p *Piles) Discard(c card.Card) {
	p.discard.Push(c)
}

// Reshuffle moves every discarded card except the top one onto the draw pile
// in random order and returns how many cards moved. The top card keeps the
// current color and label valid.
func (p *Piles) Reshuffle() (int, error) {
	if p.discard.Size() <= 1 {
		return 0, fmt.Errorf("%w(draw %d, discard %d)", consts.ErrorsPilesExhausted, p.draw.Size(), p.discard.Size())
	}

	top, _ := p.discard.Pop()
	recycled := make([]card.Card, 0, p.discard.Size())
	for !p.discard.Empty() {
		c, _ := p.discard.Pop()
		recycled = append(recycled, c)
	}

	ShuffleCards(p.rng, recycled)
	p.Fill(recycled)
	p.discard.Push(top)
	return len(recycled), nil
}

func (p *Piles) DrawSize() int {
	return p.draw.Size()
}

func (p *Piles) DiscardSize() int {
	return p.discard.Size()
}

func (p *Piles) DiscardTop() (card.Card, bool) {
	return p.discard.Top()
}

// Discarded returns the discard pile bottom first.
func (p *Piles) Discarded() []card.Card {
	return p.discard.Cards()
}

// Remaining returns the draw pile bottom first.
func (p *Piles) Remaining() []card.Card {
	return p.draw.Cards()
}
