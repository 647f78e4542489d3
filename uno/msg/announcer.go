package msg

import (
	"io"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Announcer writes a line for every game event.
type Announcer struct {
	out io.Writer
}

// NewAnnouncer writes to color.Stdout when out is nil.
func NewAnnouncer(out io.Writer) *Announcer {
	if out == nil {
		out = color.Stdout
	}
	return &Announcer{out: out}
}

func (a *Announcer) write(line string) {
	_, _ = io.WriteString(a.out, line)
}

func (a *Announcer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	a.write(Message.FirstCardPlayed(payload.Card))
}

func (a *Announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	a.write(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (a *Announcer) OnColorPicked(payload event.ColorPickedPayload) {
	a.write(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (a *Announcer) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	a.write(Message.TurnOrderReversed(payload.PlayerName))
}

func (a *Announcer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	a.write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (a *Announcer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	a.write(Message.PlayerPassed(payload.PlayerName))
}

func (a *Announcer) OnDrawPileEmptied(payload event.DrawPileEmptiedPayload) {
	a.write(Message.DrawPileEmptied(payload.Reshuffled))
}

func (a *Announcer) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	a.write(Message.ChallengeResolved(payload))
}

func (a *Announcer) OnWinnerFound(payload event.WinnerFoundPayload) {
	a.write(Message.WinnerFound(payload.PlayerName))
}
