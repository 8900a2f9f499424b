package event_test

import (
	"testing"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/event"
	"github.com/stretchr/testify/require"
)

type skipOnlyListener struct {
	skipped []string
}

func (l *skipOnlyListener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.skipped = append(l.skipped, payload.PlayerName)
}

func TestSubscribe(t *testing.T) {
	t.Run("registers_every_implemented_listener", func(t *testing.T) {
		hub := event.NewHub()
		listener := event.NewDummyListener()
		hub.Subscribe(listener)

		payloads := []interface{}{
			event.CardsDrawnPayload{PlayerName: "Someone", Cards: []card.Card{card.NewWildCard()}, Forced: true},
			event.TurnSkippedPayload{PlayerName: "Someone"},
			event.TurnOrderReversedPayload{PlayerName: "Somebody"},
			event.PileReshuffledPayload{Cards: 40, TopCard: card.NewNumberCard(color.Red, 2)},
			event.WinnerFoundPayload{PlayerName: "Somebody", Turns: 31},
		}
		hub.CardsDrawn.Emit(payloads[0].(event.CardsDrawnPayload))
		hub.TurnSkipped.Emit(payloads[1].(event.TurnSkippedPayload))
		hub.TurnOrderReversed.Emit(payloads[2].(event.TurnOrderReversedPayload))
		hub.PileReshuffled.Emit(payloads[3].(event.PileReshuffledPayload))
		hub.WinnerFound.Emit(payloads[4].(event.WinnerFoundPayload))

		require.Equal(t, payloads, listener.ReceivedPayloads())
	})

	t.Run("ignores_events_the_listener_does_not_handle", func(t *testing.T) {
		hub := event.NewHub()
		listener := &skipOnlyListener{}
		hub.Subscribe(listener)

		hub.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Someone"})
		hub.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "Somebody"})

		require.Equal(t, []string{"Somebody"}, listener.skipped)
	})

	t.Run("hubs_are_isolated", func(t *testing.T) {
		first, second := event.NewHub(), event.NewHub()
		listener := event.NewDummyListener()
		first.Subscribe(listener)

		second.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Someone"})

		require.Empty(t, listener.ReceivedPayloads())
	})
}
