package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Strategy decides a bot's moves from what its seat can see.
type Strategy interface {
	Name() string
	// Play is only called with at least one playable card.
	Play(playableCards []card.Card, view game.View) card.Card
	PickColor(view game.View) color.Color
	ShouldChallenge(view game.View) bool
}
