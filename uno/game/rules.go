package game

import (
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

// Playable reports whether candidate matches the current color or label, or
// is wild. card.NoLabel matches no card.
func Playable(candidate card.Card, currentColor color.Color, currentLabel card.Label) bool {
	if candidate.Color() == currentColor {
		return true
	}
	if candidate.IsWild() {
		return true
	}
	return candidate.Label() == currentLabel
}
