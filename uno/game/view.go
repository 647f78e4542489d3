package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// View is a snapshot of the table as seen by one player.
type View struct {
	State             State
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DrawPileSize      int
}

// PreviousCard is the card beneath the top of the discard pile.
func (v View) PreviousCard() (card.Card, bool) {
	if len(v.PlayedCards) < 2 {
		return card.Card{}, false
	}
	return v.PlayedCards[len(v.PlayedCards)-2], true
}

func (v View) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", v.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range v.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, v.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", v.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
