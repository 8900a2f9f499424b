package card

import "strconv"

// Label is the face of a card. Numbers 0-9 map to themselves.
type Label int

const (
	Skip Label = iota + 10
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// NoLabel is the current label after a wild card. No card carries it, so it
// never matches.
const NoLabel Label = -1

func (l Label) IsNumber() bool {
	return l >= 0 && l <= 9
}

func (l Label) IsWild() bool {
	return l == Wild || l == WildDrawFour
}

func (l Label) Valid() bool {
	return l >= 0 && l <= WildDrawFour
}

func (l Label) Compare(other Label) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	}
	return 0
}

func (l Label) String() string {
	switch l {
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "+2"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild+4"
	case NoLabel:
		return "none"
	}
	if l.IsNumber() {
		return strconv.Itoa(int(l))
	}
	return "label(" + strconv.Itoa(int(l)) + ")"
}
