package event

// Emitters groups the emitters of a single game. Listeners are called
// synchronously, in registration order.
type Emitters struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	CardsDrawn        *cardsDrawnEmitter
	PlayerPassed      *playerPassedEmitter
	DrawPileEmptied   *drawPileEmptiedEmitter
	ChallengeResolved *challengeResolvedEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		DrawPileEmptied:   &drawPileEmptiedEmitter{},
		ChallengeResolved: &challengeResolvedEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}

// Listener receives every event of a game.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	ColorPickedListener
	TurnOrderReversedListener
	CardsDrawnListener
	PlayerPassedListener
	DrawPileEmptiedListener
	ChallengeResolvedListener
	WinnerFoundListener
}

func (e *Emitters) AddListener(listener Listener) {
	e.FirstCardPlayed.AddListener(listener)
	e.CardPlayed.AddListener(listener)
	e.ColorPicked.AddListener(listener)
	e.TurnOrderReversed.AddListener(listener)
	e.CardsDrawn.AddListener(listener)
	e.PlayerPassed.AddListener(listener)
	e.DrawPileEmptied.AddListener(listener)
	e.ChallengeResolved.AddListener(listener)
	e.WinnerFound.AddListener(listener)
}
