package game

import (
	"fmt"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
)

// Player is a seat at the table. Position is the turn order rank and is
// rewritten by reverse.
type Player struct {
	name     string
	position int
	hand     *Hand
}

func NewPlayer(name string, position int) *Player {
	return &Player{
		name:     name,
		position: position,
		hand:     NewHand(consts.HandCapacity),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Position() int {
	return p.position
}

func (p *Player) SetPosition(position int) {
	p.position = position
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Size() int {
	return p.hand.Size()
}

func (p *Player) Card(index int) card.Card {
	return p.hand.Card(index)
}

func (p *Player) AddCard(c card.Card) error {
	if err := p.hand.Add(c); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}

func (p *Player) PlayCard(index int) card.Card {
	return p.hand.Remove(index)
}

// Compare orders players by position.
func (p *Player) Compare(other *Player) int {
	switch {
	case p.position < other.position:
		return -1
	case p.position > other.position:
		return 1
	}
	return 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s %d", p.name, p.position)
}

func (p *Player) resetHand(capacity int) {
	p.hand = NewHand(capacity)
}
