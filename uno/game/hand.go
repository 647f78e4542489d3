package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Clear() {
	h.cards = make([]card.Card, 0, consts.StartingHandSize)
}

func (h *Hand) Contains(searched card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(searched) {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) HasColor(searched color.Color) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == searched {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes a single copy of the card and reports whether one was found.
func (h *Hand) RemoveCard(removed card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(removed) {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
