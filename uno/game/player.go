package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Player holds a name and a hand. It performs no rule validation; only the
// Game decides when cards move in or out of the hand.
type Player struct {
	id   uuid.UUID
	name string
	hand *Hand
}

func NewPlayer(name string) *Player {
	return &Player{
		id:   uuid.New(),
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) HasCard(c card.Card) bool {
	return p.hand.Contains(c)
}

func (p *Player) PlayableCards(lastPlayedCard card.Card) []card.Card {
	return p.hand.PlayableCards(lastPlayedCard)
}

func (p *Player) PutCardInHand(c card.Card) {
	p.hand.AddCards([]card.Card{c})
}

func (p *Player) TakeCardFromHand(c card.Card) (card.Card, error) {
	if !p.hand.RemoveCard(c) {
		return card.Card{}, consts.ErrorsPlayerDoesNotHaveThatCard
	}
	return c, nil
}

func (p *Player) RemoveAllCardsFromHand() {
	p.hand.Clear()
}

func (p *Player) String() string {
	return p.name
}
