package event_test

import (
	"testing"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	hub := event.NewHub()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	hub.CardPlayed.AddListener(listenerOne)
	hub.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewDrawTwoCard(color.Green),
			Drawn:      true,
		},
	}

	for _, payload := range payloads {
		hub.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
