package event

import "github.com/ratel-online/unosim/uno/card"

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	// Drawn is set when the card was played straight from the draw pile.
	Drawn bool
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
