package gemhunt

import "github.com/vovakirdan/gem-hunters/internal/core"

// State is the game's lifecycle state.
type State string

const (
	StateInProgress State = "in_progress"
	StateGameOver   State = "game_over"
)

// Snapshot captures the complete game state for display and tests.
type Snapshot struct {
	Turn      int // Accepted moves so far
	MaxTurns  int
	Current   PlayerID
	State     State
	Cells     [BoardSize * BoardSize]Occupant
	Positions [2]core.Position // Indexed by PlayerID-1
	Gems      [2]int
}

// At returns the marker at p, or Empty off the board.
func (s Snapshot) At(p core.Position) Occupant {
	if !p.Within(BoardSize, BoardSize) {
		return Empty
	}
	return s.Cells[p.Y*BoardSize+p.X]
}

// String renders the board rows exactly like Board.Display.
func (s Snapshot) String() string {
	return displayCells(s.Cells)
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turn:      g.turns,
		MaxTurns:  MaxTurns,
		Current:   g.Current().ID(),
		State:     g.state,
		Cells:     g.board.Occupants(),
		Positions: [2]core.Position{g.players[0].Position(), g.players[1].Position()},
		Gems:      [2]int{g.players[0].Gems(), g.players[1].Gems()},
	}
}
