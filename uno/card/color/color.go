package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color orders cards before their label does: Red < Blue < Green < Yellow < Wild.
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
	Wild
)

// Standard lists the colors a wild card can name, indexed by UniformInt(0, 3).
var Standard = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

type painter struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var painters = [...]painter{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

func (c Color) Valid() bool {
	return c >= Red && c <= Wild
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) Compare(other Color) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	}
	return 0
}

func (c Color) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return painters[c].name
}

func (c Color) Paint(text string) string {
	if !c.Valid() {
		return text
	}
	return painters[c].colorFunction("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	if !c.Valid() {
		return fmt.Sprintf(format, args...)
	}
	return painters[c].colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}
