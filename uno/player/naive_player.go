package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct{}

func NewNaivePlayer() Strategy {
	return naivePlayer{}
}

func (p naivePlayer) Name() string {
	return "naive"
}

func (p naivePlayer) PickColor(view game.View) color.Color {
	allColors := color.Colors()
	return allColors[rand.Intn(len(allColors))]
}

func (p naivePlayer) Play(playableCards []card.Card, view game.View) card.Card {
	return playableCards[0]
}

func (p naivePlayer) ShouldChallenge(view game.View) bool {
	return false
}
