package gemhunt

import "fmt"

// Outcome is the final verdict of a finished game.
type Outcome string

const (
	OutcomeTie     Outcome = "tie"
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
)

// Decide compares gem counts. Only a strictly larger count wins.
func Decide(gems1, gems2 int) Outcome {
	switch {
	case gems1 > gems2:
		return OutcomePlayer1
	case gems2 > gems1:
		return OutcomePlayer2
	default:
		return OutcomeTie
	}
}

// Message returns the winner or tie declaration.
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayer1:
		return "Player 1 has won."
	case OutcomePlayer2:
		return "Player 2 has won."
	default:
		return "It's a tie for the match!"
	}
}

// Result summarizes a game.
type Result struct {
	Gems1    int
	Gems2    int
	Outcome  Outcome
	Turns    int // Accepted moves
	Rejected int // Rejected attempts
	Seed     int64
}

// Summary returns the end-of-game report lines.
func (r Result) Summary() []string {
	return []string{
		"Game Over!",
		fmt.Sprintf("Player 1 collected %d gems", r.Gems1),
		fmt.Sprintf("Player 2 collected %d gems", r.Gems2),
		r.Outcome.Message(),
	}
}
