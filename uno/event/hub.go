package event

// Hub holds the emitters of a single game. Listeners registered on one hub
// never see another game's events.
type Hub struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	PileReshuffled    *pileReshuffledEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewHub() *Hub {
	return &Hub{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		PileReshuffled:    &pileReshuffledEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}

// Subscribe registers listener on every emitter whose listener interface it
// implements.
func (h *Hub) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		h.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		h.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		h.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		h.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		h.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		h.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		h.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(PileReshuffledListener); ok {
		h.PileReshuffled.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		h.WinnerFound.AddListener(l)
	}
}
