package event_test

import (
	"testing"

	"github.com/ratel-online/unosim/uno/event"
	"github.com/stretchr/testify/require"
)

func TestPlayerPassed(t *testing.T) {
	hub := event.NewHub()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	hub.PlayerPassed.AddListener(listenerOne)
	hub.PlayerPassed.AddListener(listenerTwo)

	payloads := []event.PlayerPassedPayload{
		{
			PlayerName: "Someone",
		},
		{
			PlayerName: "Somebody",
		},
	}

	for _, payload := range payloads {
		hub.PlayerPassed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
