package event

import "github.com/ratel-online/unosim/uno/card"

type PileReshuffledPayload struct {
	Cards   int
	TopCard card.Card
}

type PileReshuffledListener interface {
	OnPileReshuffled(PileReshuffledPayload)
}

type pileReshuffledEmitter struct {
	listeners []PileReshuffledListener
}

func (e *pileReshuffledEmitter) AddListener(listener PileReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *pileReshuffledEmitter) Emit(payload PileReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnPileReshuffled(payload)
	}
}
