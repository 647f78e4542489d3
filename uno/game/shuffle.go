package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
)

// Shuffler permutes a pile in place.
type Shuffler interface {
	Shuffle(cards []card.Card)
}

type ShuffleFunc func(cards []card.Card)

func (f ShuffleFunc) Shuffle(cards []card.Card) {
	f(cards)
}

// NoShuffle leaves piles in their current order.
var NoShuffle Shuffler = ShuffleFunc(func([]card.Card) {})

type randomShuffler struct {
	rand *rand.Rand
}

func NewRandomShuffler(seed int64) Shuffler {
	return &randomShuffler{rand: rand.New(rand.NewSource(seed))}
}

func (s *randomShuffler) Shuffle(cards []card.Card) {
	s.rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
