package bbt

// Outcome is the result of a head-to-head duel, seen from the first player's
// perspective.
type Outcome int

const (
	// Win means the first player won the game.
	Win Outcome = iota
	// Loss means the first player lost the game.
	Loss
	// Draw means neither player won.
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
