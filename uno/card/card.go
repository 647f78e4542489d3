package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

type Rank int

const (
	_ Rank = iota
	Zero
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var rankNames = map[Rank]string{
	Zero: "zero", One: "one", Two: "two", Three: "three", Four: "four",
	Five: "five", Six: "six", Seven: "seven", Eight: "eight", Nine: "nine",
	Skip: "skip", Reverse: "reverse", DrawTwo: "draw_two",
	Wild: "wild", WildDrawFour: "wild_draw_four",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("invalid_rank(%d)", int(r))
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

// Card is an immutable value. Two cards are equal when rank and color match.
type Card struct {
	rank  Rank
	color color.Color
}

func New(rank Rank, cardColor color.Color) Card {
	return Card{rank: rank, color: cardColor}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{rank: Zero + Rank(number), color: cardColor}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{rank: Skip, color: cardColor}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{rank: Reverse, color: cardColor}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{rank: DrawTwo, color: cardColor}
}

func NewWildCard() Card {
	return Card{rank: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{rank: WildDrawFour}
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Color() color.Color {
	return c.color
}

// Number returns the face value of a number card.
func (c Card) Number() (int, bool) {
	if !c.rank.IsNumber() {
		return 0, false
	}
	return int(c.rank - Zero), true
}

func (c Card) IsWild() bool {
	return c.rank.IsWild()
}

func (c Card) IsZero() bool {
	return c.rank == 0
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// WithColor returns a copy of a wild card carrying the chosen color.
// Non-wild cards keep their printed color.
func (c Card) WithColor(chosen color.Color) Card {
	if !c.IsWild() {
		return c
	}
	return Card{rank: c.rank, color: chosen}
}

// Base returns the card as printed, dropping any color chosen for a wild.
func (c Card) Base() Card {
	if c.IsWild() {
		return Card{rank: c.rank}
	}
	return c
}

func (c Card) String() string {
	switch c.rank {
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	}
	if number, ok := c.Number(); ok {
		return c.color.Paintf("[%d]", number)
	}
	return c.rank.String()
}
