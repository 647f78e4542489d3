package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color is one of the four card colors. None marks a wild card whose color
// has not been chosen yet.
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

type palette struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palettes = map[Color]palette{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
}

var Stdout io.Writer = color.Output

// Colors lists the colors a wild card may take.
func Colors() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

func (c Color) Valid() bool {
	_, ok := palettes[c]
	return ok
}

func (c Color) Name() string {
	if p, ok := palettes[c]; ok {
		return p.name
	}
	if c == None {
		return "none"
	}
	return fmt.Sprintf("invalid(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := palettes[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...) + fmt.Sprintf("(%s)", p.name)
}

func (c Color) String() string {
	return c.Name()
}

func ByName(name string) (Color, error) {
	for c, p := range palettes {
		if p.name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
