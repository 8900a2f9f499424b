package game

import (
	"fmt"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/event"
)

type Game struct {
	id      string
	options options
	players *Registry
	piles   *Piles
	engine  *TurnEngine
	events  *event.Hub

	// total is the number of cards dealt into the game; hands and piles
	// always add up to it.
	total  int
	turns  int
	winner *Player
	err    error
}

// New deals a fresh game: hands round-robin in position order, the rest to
// the draw pile, then cards are turned up until a number card is on top of
// the discard pile.
func New(players []*Player, opts ...Option) (*Game, error) {
	g, err := newGame(players, opts)
	if err != nil {
		return nil, err
	}

	deck := g.options.deck
	if deck == nil {
		deck = GenerateDeck(g.options.rng)
	}
	if g.players.Len()*g.options.handSize >= len(deck) {
		return nil, fmt.Errorf("%w(%d players cannot be dealt %d cards from %d)",
			consts.ErrorsGamePlayersInvalid, g.players.Len(), g.options.handSize, len(deck))
	}

	if err := g.deal(deck); err != nil {
		return nil, err
	}
	if err := g.turnUpFirstCard(); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(players []*Player, opts []Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.complete(); err != nil {
		return nil, err
	}

	registry, err := NewRegistry(players)
	if err != nil {
		return nil, err
	}
	registry.ForEach(func(player *Player) {
		player.resetHand(o.handCapacity)
	})

	piles := NewPiles(o.rng)
	return &Game{
		id:      o.id,
		options: o,
		players: registry,
		piles:   piles,
		engine:  newTurnEngine(registry, piles, o.rng, o.events),
		events:  o.events,
	}, nil
}

func (g *Game) deal(deck []card.Card) error {
	index := 0
	ordered := g.players.InTurnOrder()
	for round := 0; round < g.options.handSize; round++ {
		for _, player := range ordered {
			if err := player.AddCard(deck[index]); err != nil {
				return err
			}
			index++
		}
	}
	g.piles.Fill(deck[index:])
	g.total = len(deck)
	return nil
}

// turnUpFirstCard leaves special cards under the first number card.
func (g *Game) turnUpFirstCard() error {
	for {
		c, err := g.piles.DrawTop()
		if err != nil {
			return fmt.Errorf("%w(no number card left to start on)", consts.ErrorsPilesExhausted)
		}
		g.piles.Discard(c)
		if c.IsNumber() {
			break
		}
	}
	if err := g.engine.syncFromDiscard(); err != nil {
		return err
	}
	top, _ := g.piles.DiscardTop()
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: top,
	})
	return nil
}

// Play runs turns until a player empties their hand.
func (g *Game) Play() (*Player, error) {
	for {
		done, err := g.PlayTurn()
		if err != nil {
			return nil, err
		}
		if done {
			return g.winner, nil
		}
	}
}

// PlayTurn plays a single turn and reports whether the game is over. Errors
// are terminal: every later call returns the same error.
func (g *Game) PlayTurn() (bool, error) {
	if g.winner != nil {
		return true, nil
	}
	if g.err != nil {
		return false, g.err
	}
	if g.options.maxTurns > 0 && g.turns >= g.options.maxTurns {
		return false, g.fail(fmt.Errorf("%w(%d turns)", consts.ErrorsTurnLimit, g.turns))
	}

	if g.piles.DrawSize() == 0 {
		if err := g.engine.reshuffle(); err != nil {
			return false, g.fail(err)
		}
	}

	player := g.engine.advance()
	g.turns++

	if index, found := player.Hand().FirstPlayable(g.engine.Color(), g.engine.Label()); found {
		played := player.PlayCard(index)
		if err := g.engine.play(player, played, false); err != nil {
			return false, g.fail(err)
		}
	} else if err := g.drawForTurn(player); err != nil {
		return false, g.fail(err)
	}

	if player.Hand().Empty() {
		g.winner = player
		g.events.WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerName: player.Name(),
			Turns:      g.turns,
		})
		return true, nil
	}
	return false, nil
}

// drawForTurn draws one card for a player with nothing to play. A drawn card
// that matches is played at once, otherwise it is kept and the turn passes.
func (g *Game) drawForTurn(player *Player) error {
	drawn, err := g.engine.draw()
	if err != nil {
		return err
	}
	if g.engine.matches(drawn) {
		return g.engine.play(player, drawn, true)
	}

	if err := player.AddCard(drawn); err != nil {
		return err
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      []card.Card{drawn},
	})
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
	})
	return nil
}

func (g *Game) fail(err error) error {
	g.err = fmt.Errorf("game %s: %w", g.id, err)
	return g.err
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Engine() *TurnEngine {
	return g.engine
}

func (g *Game) Piles() *Piles {
	return g.piles
}

func (g *Game) Players() *Registry {
	return g.players
}

func (g *Game) Events() *event.Hub {
	return g.events
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Winner() *Player {
	return g.winner
}

// Total is the number of cards the game was dealt.
func (g *Game) Total() int {
	return g.total
}

// CardsInPlay counts every card in hands and piles. It equals Total after
// every turn.
func (g *Game) CardsInPlay() int {
	return g.players.CardsInHands() + g.piles.DrawSize() + g.piles.DiscardSize()
}
