package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

// Hand keeps its cards sorted by the card total order.
type Hand struct {
	cards    []card.Card
	capacity int
}

func NewHand(capacity int) *Hand {
	return &Hand{
		cards:    make([]card.Card, 0, consts.InitialHandSize),
		capacity: capacity,
	}
}

// Add inserts c at its sorted position. A hand never grows past its capacity.
func (h *Hand) Add(c card.Card) error {
	if len(h.cards) >= h.capacity {
		return fmt.Errorf("%w(capacity %d)", consts.ErrorsHandOverflow, h.capacity)
	}
	index, _ := slices.BinarySearchFunc(h.cards, c, card.Card.Compare)
	h.cards = slices.Insert(h.cards, index, c)
	return nil
}

func (h *Hand) AddCards(cards []card.Card) error {
	for _, c := range cards {
		if err := h.Add(c); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hand) Card(index int) card.Card {
	return h.cards[index]
}

func (h *Hand) Remove(index int) card.Card {
	removed := h.cards[index]
	h.cards = slices.Delete(h.cards, index, index+1)
	return removed
}

func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// FirstPlayable returns the index of the lowest card playable on the current
// color and label.
func (h *Hand) FirstPlayable(currentColor color.Color, currentLabel card.Label) (int, bool) {
	index := slices.IndexFunc(h.cards, func(candidate card.Card) bool {
		return Playable(candidate, currentColor, currentLabel)
	})
	return index, index >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Capacity() int {
	return h.capacity
}
