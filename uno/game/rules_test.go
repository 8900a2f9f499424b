package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
	"github.com/ratel-online/unosim/uno/game"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description string
		candidate   card.Card
		color       color.Color
		label       card.Label
		playable    bool
	}{
		{"same_color", card.NewNumberCard(color.Red, 3), color.Red, 5, true},
		{"same_number", card.NewNumberCard(color.Blue, 5), color.Red, 5, true},
		{"same_action", card.NewSkipCard(color.Green), color.Yellow, card.Skip, true},
		{"wild_on_anything", card.NewWildCard(), color.Blue, 9, true},
		{"wild_draw_four_on_anything", card.NewWildDrawFourCard(), color.Green, card.NoLabel, true},
		{"different_color_and_number", card.NewNumberCard(color.Blue, 4), color.Red, 5, false},
		{"different_color_and_action", card.NewReverseCard(color.Blue), color.Red, card.Skip, false},
		{"color_only_after_wild", card.NewNumberCard(color.Green, 2), color.Green, card.NoLabel, true},
		{"label_never_matches_no_label", card.NewSkipCard(color.Red), color.Green, card.NoLabel, false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.playable, game.Playable(scenario.candidate, scenario.color, scenario.label))
		})
	}
}
