package game

import (
	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

// GenerateDeck builds the fixed composition deck and shuffles all of it.
func GenerateDeck(rng RandomSource) []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	for _, cardColor := range color.Standard {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)

	ShuffleCards(rng, cards)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 10*consts.NumberCopies+3*consts.ActionCopies)

	for number := 0; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		for i := 0; i < consts.NumberCopies; i++ {
			cards = append(cards, numberCard)
		}
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)
	for i := 0; i < consts.ActionCopies; i++ {
		cards = append(cards, skipCard, reverseCard, drawTwoCard)
	}

	return cards
}

func createWildCards() []card.Card {
	cards := make([]card.Card, 0, consts.WildCopies+consts.WildDrawFourCopies)
	for i := 0; i < consts.WildCopies; i++ {
		cards = append(cards, card.NewWildCard())
	}
	for i := 0; i < consts.WildDrawFourCopies; i++ {
		cards = append(cards, card.NewWildDrawFourCard())
	}
	return cards
}
