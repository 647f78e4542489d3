package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may be placed on lastPlayedCard.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.IsWild() {
		return true
	}
	if lastPlayedCard.IsZero() {
		return false
	}
	if candidateCard.Rank() == lastPlayedCard.Rank() {
		return true
	}
	return candidateCard.Color().Valid() && candidateCard.Color() == lastPlayedCard.Color()
}

func CardCanBePlayed(cardPlayed card.Card, discardPile []card.Card) bool {
	if cardPlayed.IsWild() {
		return true
	}
	if len(discardPile) == 0 {
		return false
	}
	return Playable(cardPlayed, discardPile[len(discardPile)-1])
}

// NextPlayerIsSkipped treats a reverse as a skip when only two players are seated.
func NextPlayerIsSkipped(cardPlayed card.Card, playerCount int) bool {
	switch cardPlayed.Rank() {
	case card.Skip, card.DrawTwo, card.WildDrawFour:
		return true
	case card.Reverse:
		return playerCount <= 2
	}
	return false
}

func PlayIsReversed(cardPlayed card.Card, playerCount int) bool {
	return playerCount > 2 && cardPlayed.Rank() == card.Reverse
}

func NextPlayerMustDrawTwo(cardPlayed card.Card) bool {
	return cardPlayed.Rank() == card.DrawTwo
}

func CardPlayedChangesColor(cardPlayed card.Card) bool {
	return cardPlayed.IsWild()
}

func CardInitiatesChallenge(cardPlayed card.Card) bool {
	return cardPlayed.Rank() == card.WildDrawFour
}

// WD4WasPlayedLegally checks the card beneath the wild draw four on top of the
// discard pile. The play was illegal if the accused still holds a card of that
// color. Only the card directly beneath is consulted: an uncolored wild there
// (an opening wild) has no color in play, so the play counts as legal.
func WD4WasPlayedLegally(wd4PlayersHand []card.Card, discardPile []card.Card) bool {
	if len(discardPile) < 2 {
		return true
	}
	colorInPlay := discardPile[len(discardPile)-2].Color()
	if colorInPlay == color.None {
		return true
	}
	for _, cardInHand := range wd4PlayersHand {
		if cardInHand.Color() == colorInPlay {
			return false
		}
	}
	return true
}
