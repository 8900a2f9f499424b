package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ratel-online/unosim/consts"
)

// Registry is the set of players at the table. Storage order never changes;
// turn order lives in each player's position, so lookups by position scan.
type Registry struct {
	players []*Player
}

func NewRegistry(players []*Player) (*Registry, error) {
	if len(players) < consts.MinPlayers {
		return nil, fmt.Errorf("%w(%d players, need at least %d)", consts.ErrorsGamePlayersInvalid, len(players), consts.MinPlayers)
	}
	seen := make([]bool, len(players))
	for _, player := range players {
		if player == nil {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		position := player.Position()
		if position < 0 || position >= len(players) || seen[position] {
			return nil, fmt.Errorf("%w(%s)", consts.ErrorsPlayerPositionsInvalid, player)
		}
		seen[position] = true
	}
	return &Registry{players: slices.Clone(players)}, nil
}

func (r *Registry) Len() int {
	return len(r.players)
}

func (r *Registry) ByPosition(position int) *Player {
	for _, player := range r.players {
		if player.Position() == position {
			return player
		}
	}
	return nil
}

// Next returns the player after current in turn order, or the player at
// position 0 when current is nil.
func (r *Registry) Next(current *Player) *Player {
	if current == nil {
		return r.ByPosition(0)
	}
	return r.ByPosition((current.Position() + 1) % len(r.players))
}

// Reverse relabels every position p as n-1-p. Applying it twice restores
// the original positions.
func (r *Registry) Reverse() {
	last := len(r.players) - 1
	for _, player := range r.players {
		player.SetPosition(last - player.Position())
	}
}

func (r *Registry) ForEach(function func(player *Player)) {
	for _, player := range r.players {
		function(player)
	}
}

// InTurnOrder returns the players sorted by current position.
func (r *Registry) InTurnOrder() []*Player {
	ordered := slices.Clone(r.players)
	slices.SortFunc(ordered, (*Player).Compare)
	return ordered
}

func (r *Registry) CardsInHands() int {
	total := 0
	for _, player := range r.players {
		total += player.Size()
	}
	return total
}
