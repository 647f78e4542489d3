package player

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Bot is a seated player whose moves come from a Strategy.
type Bot struct {
	*game.Player
	strategy Strategy
}

func NewBot(name string, strategy Strategy) *Bot {
	return &Bot{
		Player:   game.NewPlayer(name),
		strategy: strategy,
	}
}

func (b *Bot) Strategy() Strategy {
	return b.strategy
}

// Act makes at most one move and reports whether it was this bot's move.
func (b *Bot) Act(g *game.Game) (bool, error) {
	switch g.State() {
	case game.StateAwaitingWD4Response:
		if g.NextPlayer() != b.Player {
			return false, nil
		}
		if b.strategy.ShouldChallenge(g.View(b.Player)) {
			return true, g.Challenge(b.Player)
		}
		return true, g.Accept(b.Player)
	case game.StateWaitingForPlayerToMove:
		if g.CurrentPlayer() != b.Player {
			return false, nil
		}
		return true, b.play(g)
	}
	return false, nil
}

func (b *Bot) play(g *game.Game) error {
	view := g.View(b.Player)
	playableCards := b.PlayableCards(view.LastPlayedCard)
	if len(playableCards) == 0 {
		return g.Skip(b.Player)
	}

	selectedCard := b.strategy.Play(playableCards, view)
	if !contains(playableCards, selectedCard) {
		log.Infof("cheat detected! card %s is not playable from %s's hand\n", selectedCard, b.Name())
		selectedCard = playableCards[0]
	}

	colorChoice := color.None
	if selectedCard.IsWild() {
		colorChoice = b.strategy.PickColor(view)
	}
	return g.Play(b.Player, selectedCard, colorChoice)
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, c := range cards {
		if c.Equal(searchedCard) {
			return true
		}
	}
	return false
}
