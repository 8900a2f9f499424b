package card

import (
	"fmt"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card/action"
	"github.com/ratel-online/unosim/uno/card/color"
)

// Card is an immutable color and label pair. A card is wild in color
// exactly when its label is Wild or WildDrawFour.
type Card struct {
	color color.Color
	label Label
}

func New(cardColor color.Color, label Label) (Card, error) {
	if !cardColor.Valid() || !label.Valid() || cardColor.IsWild() != label.IsWild() {
		return Card{}, fmt.Errorf("%w(%s %s)", consts.ErrorsCardInvalid, cardColor.Name(), label)
	}
	return Card{color: cardColor, label: label}, nil
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return mustNew(cardColor, Label(number))
}

func NewSkipCard(cardColor color.Color) Card {
	return mustNew(cardColor, Skip)
}

func NewReverseCard(cardColor color.Color) Card {
	return mustNew(cardColor, Reverse)
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return mustNew(cardColor, DrawTwo)
}

func NewWildCard() Card {
	return Card{color: color.Wild, label: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, label: WildDrawFour}
}

func mustNew(cardColor color.Color, label Label) Card {
	c, err := New(cardColor, label)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Label() Label {
	return c.label
}

func (c Card) IsNumber() bool {
	return c.label.IsNumber()
}

func (c Card) IsWild() bool {
	return c.color.IsWild()
}

// Compare orders by color first, then by label.
func (c Card) Compare(other Card) int {
	if byColor := c.color.Compare(other.color); byColor != 0 {
		return byColor
	}
	return c.label.Compare(other.label)
}

func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

func (c Card) Equal(other Card) bool {
	return c.Compare(other) == 0
}

// Actions lists the effects of playing the card, in resolution order.
func (c Card) Actions() []action.Action {
	switch c.label {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawTwoAmount),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawFourAmount),
			action.NewSkipTurnAction(),
			action.NewPickColorAction(),
		}
	}
	return []action.Action{}
}

func (c Card) String() string {
	switch c.label {
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	}
	return c.color.Paintf("[%d]", int(c.label))
}

// Name is the uncolored form used in logs and tests, e.g. "red 7".
func (c Card) Name() string {
	if c.IsWild() {
		return c.label.String()
	}
	return c.color.Name() + " " + c.label.String()
}
