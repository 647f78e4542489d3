package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// NewDeck returns the 108 standard cards in a fixed, unshuffled order.
func NewDeck() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Colors() {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{zeroCard}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return append(cards,
		drawTwoCard, drawTwoCard,
		reverseCard, reverseCard,
		skipCard, skipCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
