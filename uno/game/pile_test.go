package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/game"
)

func TestPile(t *testing.T) {
	pile := game.NewPile(4)
	require.True(t, pile.Empty())

	_, ok := pile.Top()
	require.False(t, ok)
	_, ok = pile.Pop()
	require.False(t, ok)

	pile.Push(card.NewNumberCard(color.Blue, 5))
	pile.Push(card.NewNumberCard(color.Green, 5))
	pile.Push(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())

	top, ok := pile.Pop()
	require.True(t, ok)
	require.Equal(t, card.NewNumberCard(color.Green, 7), top)
	top, _ = pile.Top()
	require.Equal(t, card.NewNumberCard(color.Green, 5), top)
	require.Equal(t, 2, pile.Size())
}

func TestPilesDrawTop(t *testing.T) {
	piles := game.NewPiles(game.NewRandomSource(1))
	_, err := piles.DrawTop()
	require.ErrorIs(t, err, consts.ErrorsDrawPileEmpty)

	piles.Fill([]card.Card{card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 2)})
	drawn, err := piles.DrawTop()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Red, 2), drawn)
	require.Equal(t, 1, piles.DrawSize())
}

func TestPilesReshuffle(t *testing.T) {
	t.Run("keeps_the_top_card_and_recycles_the_rest", func(t *testing.T) {
		piles := game.NewPiles(game.NewRandomSource(3))
		discarded := []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewSkipCard(color.Blue),
			card.NewWildCard(),
			card.NewNumberCard(color.Yellow, 9),
		}
		for _, c := range discarded {
			piles.Discard(c)
		}

		moved, err := piles.Reshuffle()
		require.NoError(t, err)
		require.Equal(t, 3, moved)

		top, ok := piles.DiscardTop()
		require.True(t, ok)
		require.Equal(t, card.NewNumberCard(color.Yellow, 9), top)
		require.Equal(t, 1, piles.DiscardSize())
		require.ElementsMatch(t, discarded[:3], piles.Remaining())
	})

	t.Run("shuffles_through_the_random_source", func(t *testing.T) {
		rng := &recordingSource{}
		piles := game.NewPiles(rng)
		for i := 0; i < 6; i++ {
			piles.Discard(card.NewNumberCard(color.Green, i))
		}
		_, err := piles.Reshuffle()
		require.NoError(t, err)
		require.Equal(t, []int{5}, rng.shuffled)
	})

	scenarios := []struct {
		description string
		discarded   int
	}{
		{"empty_discard_pile", 0},
		{"single_card_discard_pile", 1},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			piles := game.NewPiles(game.NewRandomSource(1))
			for i := 0; i < scenario.discarded; i++ {
				piles.Discard(card.NewNumberCard(color.Red, i))
			}
			_, err := piles.Reshuffle()
			require.ErrorIs(t, err, consts.ErrorsPilesExhausted)
			require.Equal(t, scenario.discarded, piles.DiscardSize())
		})
	}
}
