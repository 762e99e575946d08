package gemhunt

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

// Board dimensions and placement budget. These are fixed by the rules.
const (
	BoardSize     = 6
	GemCount      = 3
	ObstacleCount = 5
)

// Invalid move conditions reported by Board.CheckMove.
var (
	ErrUnrecognizedDirection = core.ErrUnrecognizedDirection
	ErrOutOfBounds           = errors.New("move leaves the board")
	ErrObstacleBlocked       = errors.New("move blocked by obstacle")
)

// Start corners for the two players.
var (
	Player1Start = core.Pos(0, 0)
	Player2Start = core.Pos(BoardSize-1, BoardSize-1)
)

// Board is the fixed 6x6 grid.
// Cells are stored in row-major order: index = y*BoardSize + x.
type Board struct {
	cells [BoardSize * BoardSize]Cell
}

// NewBoard creates a board and runs the single placement pass using rng.
func NewBoard(rng *rand.Rand) *Board {
	b := &Board{}
	b.initialize(rng)
	return b
}

// initialize clears the grid, marks the start corners, then places gems
// followed by obstacles on empty cells. A collision redraws that placement
// without consuming budget.
func (b *Board) initialize(rng *rand.Rand) {
	for i := range b.cells {
		b.cells[i] = Cell{Occupant: Empty}
	}

	b.set(Player1Start, Player1Marker)
	b.set(Player2Start, Player2Marker)

	b.scatter(rng, Gem, GemCount)
	b.scatter(rng, Obstacle, ObstacleCount)
}

func (b *Board) scatter(rng *rand.Rand, occ Occupant, n int) {
	for placed := 0; placed < n; {
		x := rng.Intn(BoardSize)
		y := rng.Intn(BoardSize)
		p := core.Pos(x, y)
		if b.At(p) != Empty {
			continue
		}
		b.set(p, occ)
		placed++
	}
}

func (b *Board) index(p core.Position) int {
	return p.Y*BoardSize + p.X
}

// InBounds reports whether p is on the board.
func (b *Board) InBounds(p core.Position) bool {
	return p.Within(BoardSize, BoardSize)
}

// At returns the occupant at p, or Empty when p is off the board.
func (b *Board) At(p core.Position) Occupant {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.index(p)].Occupant
}

func (b *Board) set(p core.Position, occ Occupant) {
	if b.InBounds(p) {
		b.cells[b.index(p)].Occupant = occ
	}
}

// Count returns how many cells hold occ.
func (b *Board) Count(occ Occupant) int {
	n := 0
	for _, c := range b.cells {
		if c.Occupant == occ {
			n++
		}
	}
	return n
}

// Occupants returns a copy of all cell markers in row-major order.
func (b *Board) Occupants() [BoardSize * BoardSize]Occupant {
	var out [BoardSize * BoardSize]Occupant
	for i, c := range b.cells {
		out[i] = c.Occupant
	}
	return out
}

// CheckMove reports why moving player in dir is illegal, or nil if it is legal.
// It never mutates the board or the player.
func (b *Board) CheckMove(player *Player, dir core.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %v", ErrUnrecognizedDirection, dir)
	}

	target := player.Position().Moved(dir)
	if !b.InBounds(target) {
		return fmt.Errorf("%w: %s to %v", ErrOutOfBounds, player.Name(), target)
	}
	if b.At(target) == Obstacle {
		return fmt.Errorf("%w: %s to %v", ErrObstacleBlocked, player.Name(), target)
	}
	return nil
}

// IsValidMove reports whether player may move in dir.
func (b *Board) IsValidMove(player *Player, dir core.Direction) bool {
	return b.CheckMove(player, dir) == nil
}

// CollectGem picks up a gem at the player's current position.
// Call it only after the player has been moved. Returns true if a gem was taken.
func (b *Board) CollectGem(player *Player) bool {
	p := player.Position()
	if b.At(p) != Gem {
		return false
	}
	player.addGem()
	b.set(p, Empty)
	return true
}

// Display returns the textual snapshot of all 36 markers, one row per line.
func (b *Board) Display() string {
	return displayCells(b.Occupants())
}

func displayCells(cells [BoardSize * BoardSize]Occupant) string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			sb.WriteString(cells[y*BoardSize+x].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
