package simulation

import (
	"github.com/ratel-online/core/log"

	"github.com/ratel-online/unosim/uno/event"
	"github.com/ratel-online/unosim/uno/msg"
)

// Narrator logs the events of one game, tagged with its id.
type Narrator struct {
	gameID string
}

func NewNarrator(gameID string) *Narrator {
	return &Narrator{gameID: gameID}
}

func (n *Narrator) say(line string) {
	log.Infof("[%s] %s\n", n.gameID, line)
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.say(msg.Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Drawn {
		n.say(msg.Message.PlayerDrewAndPlayedCard(payload.PlayerName, payload.Card))
		return
	}
	n.say(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.say(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.say(msg.Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Forced {
		n.say(msg.Message.PlayerForcedToDraw(payload.PlayerName, payload.Cards))
		return
	}
	n.say(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.say(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	n.say(msg.Message.TurnOrderReversed(payload.PlayerName))
}

func (n *Narrator) OnPileReshuffled(payload event.PileReshuffledPayload) {
	n.say(msg.Message.PileReshuffled(payload.Cards, payload.TopCard))
}

func (n *Narrator) OnWinnerFound(payload event.WinnerFoundPayload) {
	n.say(msg.Message.WinnerFound(payload.PlayerName, payload.Turns))
}
