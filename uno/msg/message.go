package msg

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter renders game events as single log lines.
type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s drew and played %s!", playerName, c)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerForcedToDraw(playerName string, cards []card.Card) string {
	return fmt.Sprintf("%s must draw %s!", playerName, Cards(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, pickedColor color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, pickedColor)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(playerName string) string {
	if playerName == "" {
		return "Turn order has been reversed!"
	}
	return fmt.Sprintf("%s reversed the turn order!", playerName)
}

func (m MessageWriter) PileReshuffled(cards int, top card.Card) string {
	return fmt.Sprintf("Reshuffled %d discarded cards into the draw pile, %s stays on top", cards, top)
}

func (m MessageWriter) WinnerFound(playerName string, turns int) string {
	return fmt.Sprintf("%s wins after %s turns!", playerName, humanize.Comma(int64(turns)))
}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

// Cards joins cards the way a hand is printed: "[red 3, wild]".
func Cards(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
