package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is an ordered stack of cards whose top is the last element.
type Pile struct {
	cards []card.Card
}

func NewPile(cards ...card.Card) *Pile {
	pile := &Pile{cards: make([]card.Card, 0, len(cards))}
	pile.cards = append(pile.cards, cards...)
	return pile
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Pop() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	top := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return top, true
}

func (p *Pile) ReplaceTop(c card.Card) {
	if len(p.cards) == 0 {
		return
	}
	p.cards[len(p.cards)-1] = c
}

// Reset replaces the whole content of the pile.
func (p *Pile) Reset(cards ...card.Card) {
	p.cards = append(make([]card.Card, 0, len(cards)), cards...)
}

func (p *Pile) Shuffle(shuffler Shuffler) {
	shuffler.Shuffle(p.cards)
}

// Top returns the zero Card when the pile is empty.
func (p *Pile) Top() card.Card {
	if len(p.cards) == 0 {
		return card.Card{}
	}
	return p.cards[len(p.cards)-1]
}
