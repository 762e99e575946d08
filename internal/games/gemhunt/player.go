package gemhunt

import (
	"fmt"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

// PlayerID identifies one of the two seats.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// String returns the long display name ("Player 1").
func (id PlayerID) String() string {
	return fmt.Sprintf("Player %d", int(id))
}

// Player holds a seat's position and collected gems.
type Player struct {
	id   PlayerID
	name string
	pos  core.Position
	gems int
}

// NewPlayer creates a player at the given start position with no gems.
func NewPlayer(id PlayerID, name string, start core.Position) *Player {
	return &Player{id: id, name: name, pos: start}
}

// ID returns the player's seat.
func (p *Player) ID() PlayerID {
	return p.id
}

// Name returns the short name ("P1").
func (p *Player) Name() string {
	return p.name
}

// Position returns the current coordinate.
func (p *Player) Position() core.Position {
	return p.pos
}

// Gems returns the number of gems collected so far.
func (p *Player) Gems() int {
	return p.gems
}

// Move steps the player in dir without any bounds or obstacle checks.
// Callers must validate with Board.CheckMove first.
func (p *Player) Move(dir core.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %v", ErrUnrecognizedDirection, dir)
	}
	p.pos = p.pos.Moved(dir)
	return nil
}

func (p *Player) addGem() {
	p.gems++
}
