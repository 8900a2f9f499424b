package action

type Action interface{}

// DrawCardsAction makes the next player take Amount forced draws.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

// PickColorAction replaces the current color with a random standard color
// and clears the current label.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}
