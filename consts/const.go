package consts

const (
	// DeckSize is the number of cards in a generated deck: 26 per standard
	// color plus 4 wild and 4 wild draw four.
	DeckSize = 112

	NumberCopies       = 2
	ActionCopies       = 2
	WildCopies         = 4
	WildDrawFourCopies = 4

	InitialHandSize = 7

	// HandCapacity bounds a single hand. A full deck always fits.
	HandCapacity = DeckSize

	MinPlayers = 2

	// MaxPlayers leaves at least one card in the draw pile after dealing.
	MaxPlayers = (DeckSize - 1) / InitialHandSize

	DrawTwoAmount  = 2
	DrawFourAmount = 4

	DefaultMaxTurns = 10000
	DefaultPlayers  = 4
	DefaultGames    = 1
	DefaultWorkers  = 1
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsGamePlayersInvalid     = NewErr(1, true, "Game players invalid. ")
	ErrorsPlayerPositionsInvalid = NewErr(1, true, "Player positions must be unique and dense. ")
	ErrorsCardInvalid            = NewErr(1, true, "Card color and label do not match. ")
	ErrorsConfigInvalid          = NewErr(1, true, "Config invalid. ")
	ErrorsDrawPileEmpty          = NewErr(2, true, "Draw pile is empty. ")
	ErrorsPilesExhausted         = NewErr(2, true, "Draw pile is empty and discard pile has nothing to reshuffle. ")
	ErrorsHandOverflow           = NewErr(3, true, "Hand exceeds its capacity. ")
	ErrorsTurnLimit              = NewErr(4, true, "Turn limit reached without a winner. ")
)
