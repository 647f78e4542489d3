package msg

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) ChallengeResolved(payload event.ChallengeResolvedPayload) string {
	if !payload.Challenged {
		return Sprintfln("%s accepted the wild draw four and drew %d cards!", payload.ChallengerName, payload.Penalty)
	}
	if payload.PlayedLegally {
		return Sprintfln(
			"%s challenged %s and lost! %s drew %d cards!",
			payload.ChallengerName, payload.AccusedName, payload.PenalizedName, payload.Penalty,
		)
	}
	return Sprintfln(
		"%s caught %s cheating! %s drew %d cards!",
		payload.ChallengerName, payload.AccusedName, payload.PenalizedName, payload.Penalty,
	)
}

func (m MessageWriter) DrawPileEmptied(reshuffled int) string {
	return Sprintfln("The draw pile ran out, %d cards were shuffled back in!", reshuffled)
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	switch len(cards) {
	case 0:
		return Sprintfln("%s had nothing left to draw!", playerName)
	case 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, pickedColor color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, pickedColor.Paint(pickedColor.Name()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) TurnOrderReversed(playerName string) string {
	return Sprintfln("%s reversed the turn order!", playerName)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

// Sprintfln formats a single line, newline included.
func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}
