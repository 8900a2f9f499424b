package game

import (
	"math/rand"

	"github.com/ratel-online/unosim/uno/card"
)

// RandomSource is the only source of randomness in a game. A game never calls
// it from more than one goroutine.
type RandomSource interface {
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
	// UniformInt returns a uniform integer in [low, high].
	UniformInt(low, high int) int
}

type seededSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource for which equal seeds give equal
// games.
func NewRandomSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

func (s *seededSource) UniformInt(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}

func ShuffleCards(rng RandomSource, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
