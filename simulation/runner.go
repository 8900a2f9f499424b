package simulation

import (
	"time"

	"github.com/google/uuid"

	"github.com/ratel-online/unosim/uno/event"
	"github.com/ratel-online/unosim/uno/game"
	"github.com/ratel-online/unosim/uno/player"
)

type GameConfig struct {
	Players  int
	Names    []string
	MaxTurns int
	// Verbose logs every event of the game.
	Verbose bool
}

type GameResult struct {
	GameID     string
	Seed       int64
	Winner     string
	Turns      int
	Reshuffles int
	Duration   time.Duration
	Err        error
}

// RunSingleGame seats the players and plays one game to the end. Equal seeds
// give equal winners and turn counts.
func RunSingleGame(cfg GameConfig, seed int64) GameResult {
	result := GameResult{
		GameID: uuid.NewString(),
		Seed:   seed,
	}
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	rng := game.NewRandomSource(seed)
	players, err := player.CreatePlayers(cfg.Players, cfg.Names, rng)
	if err != nil {
		result.Err = err
		return result
	}

	hub := event.NewHub()
	if cfg.Verbose {
		hub.Subscribe(NewNarrator(result.GameID))
	}
	g, err := game.New(players,
		game.WithID(result.GameID),
		game.WithRandomSource(rng),
		game.WithMaxTurns(cfg.MaxTurns),
		game.WithEvents(hub),
	)
	if err != nil {
		result.Err = err
		return result
	}

	winner, err := g.Play()
	result.Turns = g.Turns()
	result.Reshuffles = g.Engine().Reshuffles()
	if err != nil {
		result.Err = err
		return result
	}
	result.Winner = winner.Name()
	return result
}
