package storage

import "github.com/vovakirdan/gem-hunters/internal/games/gemhunt"

// RecordFromResult converts a finished game's result into a history row.
// The match ID is left empty so SaveMatch assigns one.
func RecordFromResult(r gemhunt.Result) MatchRecord {
	return MatchRecord{
		Seed:        r.Seed,
		Player1Gems: r.Gems1,
		Player2Gems: r.Gems2,
		Outcome:     string(r.Outcome),
		Turns:       r.Turns,
		Rejected:    r.Rejected,
	}
}

// Winner returns a display name for the match outcome.
func (r MatchRecord) Winner() string {
	switch r.Outcome {
	case string(gemhunt.OutcomePlayer1):
		return "Player 1"
	case string(gemhunt.OutcomePlayer2):
		return "Player 2"
	default:
		return "Tie"
	}
}
