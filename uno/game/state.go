package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/card/color"
)

// State is a read-only snapshot of a game between turns.
type State struct {
	GameID           string
	Turn             int
	CurrentPlayer    string
	CurrentColor     color.Color
	CurrentLabel     card.Label
	LastPlayedCard   card.Card
	DrawPileSize     int
	DiscardPileSize  int
	PlayerSequence   []string
	PlayerHandCounts map[string]int
}

func (g *Game) State() State {
	state := State{
		GameID:           g.id,
		Turn:             g.turns,
		CurrentColor:     g.engine.Color(),
		CurrentLabel:     g.engine.Label(),
		DrawPileSize:     g.piles.DrawSize(),
		DiscardPileSize:  g.piles.DiscardSize(),
		PlayerHandCounts: make(map[string]int, g.players.Len()),
	}
	if current := g.engine.Current(); current != nil {
		state.CurrentPlayer = current.Name()
	}
	if top, ok := g.piles.DiscardTop(); ok {
		state.LastPlayedCard = top
	}
	for _, player := range g.players.InTurnOrder() {
		state.PlayerSequence = append(state.PlayerSequence, player.Name())
		state.PlayerHandCounts[player.Name()] = player.Size()
	}
	return state
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Turn %d of game %s", s.Turn, s.GameID))
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	if s.CurrentLabel == card.NoLabel {
		lines = append(lines, fmt.Sprintf("Current color: %s", s.CurrentColor))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Piles: %d to draw, %d discarded", s.DrawPileSize, s.DiscardPileSize))

	return strings.Join(lines, "\n")
}
