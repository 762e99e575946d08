// Package gemhunt implements Gem Hunters, a two-player turn-based hunt for
// gems on a fixed 6x6 board strewn with obstacles.
package gemhunt

import "github.com/vovakirdan/gem-hunters/internal/core"

// Occupant is the marker held by a board cell.
type Occupant int

const (
	Empty Occupant = iota
	Player1Marker
	Player2Marker
	Gem
	Obstacle
)

// String returns the display marker for the occupant.
func (o Occupant) String() string {
	switch o {
	case Empty:
		return "-"
	case Player1Marker:
		return "P1"
	case Player2Marker:
		return "P2"
	case Gem:
		return "G"
	case Obstacle:
		return "O"
	default:
		return "?"
	}
}

// Color returns the screen color used when rendering the occupant.
func (o Occupant) Color() core.Color {
	switch o {
	case Player1Marker:
		return core.ColorCyan
	case Player2Marker:
		return core.ColorMagenta
	case Gem:
		return core.ColorYellow
	case Obstacle:
		return core.ColorRed
	default:
		return core.ColorGray
	}
}

// Cell is a single board slot.
type Cell struct {
	Occupant Occupant
}
