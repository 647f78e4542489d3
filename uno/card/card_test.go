package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	assert.True(t, card.NewNumberCard(color.Red, 5).Equal(card.NewNumberCard(color.Red, 5)))
	assert.False(t, card.NewNumberCard(color.Red, 5).Equal(card.NewNumberCard(color.Blue, 5)))
	assert.False(t, card.NewNumberCard(color.Red, 5).Equal(card.NewNumberCard(color.Red, 6)))
	assert.False(t, card.NewSkipCard(color.Red).Equal(card.NewReverseCard(color.Red)))
	assert.True(t, card.NewWildCard().Equal(card.NewWildCard()))
	assert.False(t, card.NewWildCard().Equal(card.NewWildDrawFourCard()))
}

func TestNumber(t *testing.T) {
	number, ok := card.NewNumberCard(color.Green, 0).Number()
	require.True(t, ok)
	require.Equal(t, 0, number)
	require.Equal(t, card.Zero, card.NewNumberCard(color.Green, 0).Rank())

	number, ok = card.NewNumberCard(color.Green, 9).Number()
	require.True(t, ok)
	require.Equal(t, 9, number)

	_, ok = card.NewDrawTwoCard(color.Green).Number()
	require.False(t, ok)
}

func TestWildCardsAreCreatedColorless(t *testing.T) {
	require.Equal(t, color.None, card.NewWildCard().Color())
	require.Equal(t, color.None, card.NewWildDrawFourCard().Color())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.False(t, card.NewSkipCard(color.Blue).IsWild())
}

func TestWithColor(t *testing.T) {
	t.Run("returns_a_new_colored_wild", func(t *testing.T) {
		wild := card.NewWildCard()
		colored := wild.WithColor(color.Yellow)
		require.Equal(t, color.Yellow, colored.Color())
		require.Equal(t, card.Wild, colored.Rank())
		require.Equal(t, color.None, wild.Color())
		require.False(t, colored.Equal(wild))
	})

	t.Run("keeps_the_printed_color_of_other_cards", func(t *testing.T) {
		skip := card.NewSkipCard(color.Red)
		require.Equal(t, skip, skip.WithColor(color.Blue))
	})
}

func TestBase(t *testing.T) {
	colored := card.NewWildDrawFourCard().WithColor(color.Green)
	require.Equal(t, card.NewWildDrawFourCard(), colored.Base())
	require.Equal(t, card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Red, 3).Base())
}

func TestRankString(t *testing.T) {
	require.Equal(t, "draw_two", card.DrawTwo.String())
	require.Equal(t, "wild_draw_four", card.WildDrawFour.String())
	require.Equal(t, "seven", card.Seven.String())
	require.True(t, card.Seven.IsNumber())
	require.False(t, card.Skip.IsNumber())
}

func TestString(t *testing.T) {
	require.Contains(t, card.NewNumberCard(color.Blue, 7).String(), "[7]")
	require.Contains(t, card.NewReverseCard(color.Red).String(), "<=>")
	require.Equal(t, "(*)", card.NewWildCard().String())
	require.Contains(t, card.NewWildCard().WithColor(color.Green).String(), "(green)")
}
