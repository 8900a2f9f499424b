package game

import (
	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/action"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/event"
)

// TurnEngine tracks whose turn it is and what may be played next, and
// resolves card effects.
type TurnEngine struct {
	players *Registry
	piles   *Piles
	rng     RandomSource
	events  *event.Hub

	current *Player
	color   color.Color
	label   card.Label

	reshuffles int
}

func newTurnEngine(players *Registry, piles *Piles, rng RandomSource, events *event.Hub) *TurnEngine {
	return &TurnEngine{
		players: players,
		piles:   piles,
		rng:     rng,
		events:  events,
		label:   card.NoLabel,
	}
}

func (e *TurnEngine) Current() *Player {
	return e.current
}

func (e *TurnEngine) Color() color.Color {
	return e.color
}

// Label is card.NoLabel after a wild card.
func (e *TurnEngine) Label() card.Label {
	return e.label
}

func (e *TurnEngine) Reshuffles() int {
	return e.reshuffles
}

func (e *TurnEngine) NextPlayer() *Player {
	return e.players.Next(e.current)
}

func (e *TurnEngine) advance() *Player {
	e.current = e.NextPlayer()
	return e.current
}

// Reverse flips turn direction by relabeling positions.
func (e *TurnEngine) Reverse() {
	e.players.Reverse()
	payload := event.TurnOrderReversedPayload{}
	if e.current != nil {
		payload.PlayerName = e.current.Name()
	}
	e.events.TurnOrderReversed.Emit(payload)
}

// Skip moves the current player pointer one step. The loop's own advance
// then lands on the player after the skipped one.
func (e *TurnEngine) Skip() {
	skipped := e.advance()
	e.events.TurnSkipped.Emit(event.TurnSkippedPayload{
		PlayerName: skipped.Name(),
	})
}

func (e *TurnEngine) matches(c card.Card) bool {
	return Playable(c, e.color, e.label)
}

func (e *TurnEngine) commit(c card.Card) {
	e.piles.Discard(c)
	e.color = c.Color()
	e.label = c.Label()
}

// play commits a card for player and resolves its effects in order.
func (e *TurnEngine) play(player *Player, played card.Card, drawn bool) error {
	e.commit(played)
	e.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       played,
		Drawn:      drawn,
	})

	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			if err := e.forceDraw(e.NextPlayer(), cardAction.Amount()); err != nil {
				return err
			}
		case action.ReverseTurnsAction:
			e.Reverse()
		case action.SkipTurnAction:
			e.Skip()
		case action.PickColorAction:
			e.pickColor(player)
		}
	}
	return nil
}

// pickColor names a uniformly random standard color and clears the label,
// so only that color or another wild can follow.
func (e *TurnEngine) pickColor(player *Player) {
	e.color = color.Standard[e.rng.UniformInt(0, len(color.Standard)-1)]
	e.label = card.NoLabel
	e.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: player.Name(),
		Color:      e.color,
	})
}

// forceDraw adds amount cards to player's hand. Forced draws are never played.
func (e *TurnEngine) forceDraw(player *Player, amount int) error {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, err := e.draw()
		if err != nil {
			return err
		}
		if err := player.AddCard(c); err != nil {
			return err
		}
		drawn = append(drawn, c)
	}
	e.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      drawn,
		Forced:     true,
	})
	return nil
}

// draw takes the top of the draw pile, recycling the discard pile first when
// the draw pile is empty.
func (e *TurnEngine) draw() (card.Card, error) {
	if e.piles.DrawSize() == 0 {
		if err := e.reshuffle(); err != nil {
			return card.Card{}, err
		}
	}
	return e.piles.DrawTop()
}

func (e *TurnEngine) reshuffle() error {
	moved, err := e.piles.Reshuffle()
	if err != nil {
		return err
	}
	e.reshuffles++
	top, _ := e.piles.DiscardTop()
	e.events.PileReshuffled.Emit(event.PileReshuffledPayload{
		Cards:   moved,
		TopCard: top,
	})
	return nil
}

// syncFromDiscard takes the current color and label from the discard top.
func (e *TurnEngine) syncFromDiscard() error {
	top, ok := e.piles.DiscardTop()
	if !ok {
		return consts.ErrorsPilesExhausted
	}
	e.color = top.Color()
	e.label = top.Label()
	return nil
}
