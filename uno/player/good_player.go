package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// challengeThreshold is the hand size above which a wild draw four is assumed
// to have been played while holding the color in play.
const challengeThreshold = 4

type goodPlayer struct{}

func NewGoodPlayer() Strategy {
	return goodPlayer{}
}

func (p goodPlayer) Name() string {
	return "good"
}

func (p goodPlayer) PickColor(view game.View) color.Color {
	if len(view.CurrentPlayerHand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range view.CurrentPlayerHand {
		if handCard.Color() == color.None {
			for _, c := range color.Colors() {
				colorCounts[c]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	var (
		mostFrequentColor       = color.Blue
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.Colors() {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}

// Play picks the card that leaves the most follow-up plays in hand.
func (p goodPlayer) Play(playableCards []card.Card, view game.View) card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range view.CurrentPlayerHand {
			if game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}

// ShouldChallenge bets that a player holding many cards had another option.
func (p goodPlayer) ShouldChallenge(view game.View) bool {
	if len(view.PlayerSequence) == 0 {
		return false
	}
	accused := view.PlayerSequence[0]
	return view.PlayerHandCounts[accused] > challengeThreshold
}
