package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/card"
	"github.com/ratel-online/unosim/uno/event"
)

type options struct {
	id           string
	rng          RandomSource
	deck         []card.Card
	handSize     int
	handCapacity int
	maxTurns     int
	events       *event.Hub
}

type Option func(*options)

func defaultOptions() options {
	return options{
		handSize:     consts.InitialHandSize,
		handCapacity: consts.HandCapacity,
	}
}

// WithID names the game, e.g. so listeners can tag events before New returns.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

func WithRandomSource(rng RandomSource) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRandomSource(NewRandomSource(seed))
}

// WithDeck deals the given cards in order instead of generating a deck.
func WithDeck(cards []card.Card) Option {
	return func(o *options) {
		o.deck = append([]card.Card(nil), cards...)
	}
}

func WithHandSize(size int) Option {
	return func(o *options) {
		o.handSize = size
	}
}

func WithHandCapacity(capacity int) Option {
	return func(o *options) {
		o.handCapacity = capacity
	}
}

// WithMaxTurns stops the game with consts.ErrorsTurnLimit after the given
// number of turns. Zero means no limit.
func WithMaxTurns(turns int) Option {
	return func(o *options) {
		o.maxTurns = turns
	}
}

// WithEvents lets callers subscribe before the first card is turned up.
func WithEvents(hub *event.Hub) Option {
	return func(o *options) {
		o.events = hub
	}
}

func (o *options) complete() error {
	if o.handSize < 1 || o.handCapacity < o.handSize || o.maxTurns < 0 {
		return consts.ErrorsConfigInvalid
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.rng == nil {
		o.rng = NewRandomSource(time.Now().UnixNano())
	}
	if o.events == nil {
		o.events = event.NewHub()
	}
	return nil
}
