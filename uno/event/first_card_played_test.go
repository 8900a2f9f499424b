package event_test

import (
	"testing"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/event"
	"github.com/stretchr/testify/require"
)

func TestFirstCardPlayed(t *testing.T) {
	hub := event.NewHub()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	hub.FirstCardPlayed.AddListener(listenerOne)
	hub.FirstCardPlayed.AddListener(listenerTwo)

	payloads := []event.FirstCardPlayedPayload{
		{
			Card: card.NewNumberCard(color.Blue, 3),
		},
		{
			Card: card.NewNumberCard(color.Green, 0),
		},
	}

	for _, payload := range payloads {
		hub.FirstCardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
