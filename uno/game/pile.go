package game

import (
	"golang.org/x/exp/slices"

	"github.com/ratel-online/unosim/uno/card"
)

// Pile is a LIFO stack of cards. Cards are kept bottom first.
type Pile struct {
	cards []card.Card
}

func NewPile(capacity int) *Pile {
	return &Pile{cards: make([]card.Card, 0, capacity)}
}

func (p *Pile) Push(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Pop() (card.Card, bool) {
	top, ok := p.Top()
	if !ok {
		return card.Card{}, false
	}
	p.cards = p.cards[:len(p.cards)-1]
	return top, true
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Cards() []card.Card {
	return slices.Clone(p.cards)
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}
