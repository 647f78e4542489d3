package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Len())
}

func TestReplaceTop(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	pile.Add(card.NewWildCard())
	pile.ReplaceTop(card.NewWildCard().WithColor(color.Yellow))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard().WithColor(color.Yellow),
	}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.True(t, pile.Top().IsZero())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, card.NewNumberCard(color.Green, 7), pile.Top())
}

func TestPop(t *testing.T) {
	pile := game.NewPile(card.NewNumberCard(color.Blue, 5), card.NewSkipCard(color.Red))

	popped, ok := pile.Pop()
	require.True(t, ok)
	require.Equal(t, card.NewSkipCard(color.Red), popped)

	popped, ok = pile.Pop()
	require.True(t, ok)
	require.Equal(t, card.NewNumberCard(color.Blue, 5), popped)

	_, ok = pile.Pop()
	require.False(t, ok)
	require.True(t, pile.Empty())
}

func TestResetAndShuffle(t *testing.T) {
	pile := game.NewPile(card.NewNumberCard(color.Blue, 5))
	pile.Reset(card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 2))
	pile.Shuffle(game.ShuffleFunc(func(cards []card.Card) {
		cards[0], cards[1] = cards[1], cards[0]
	}))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 1),
	}, pile.Cards())
}

func TestCardsReturnsACopy(t *testing.T) {
	pile := game.NewPile(card.NewNumberCard(color.Blue, 5))
	cards := pile.Cards()
	cards[0] = card.NewWildCard()
	require.Equal(t, card.NewNumberCard(color.Blue, 5), pile.Top())
}
