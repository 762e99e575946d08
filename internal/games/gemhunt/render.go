package gemhunt

import (
	"fmt"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

const (
	cellWidth = 3 // Characters per board cell
	hudHeight = 3
)

// BoardWidth and BoardHeight are the rendered board size including the frame.
const (
	BoardWidth  = BoardSize*cellWidth + 2
	BoardHeight = BoardSize + 2
)

// RenderOptions tune how the board is drawn.
type RenderOptions struct {
	// TrackPlayers draws players at their live positions instead of the
	// P1/P2 markers placed on the grid at setup. The board itself is not changed.
	TrackPlayers bool
}

// Render draws the HUD and the board into dst, centered horizontally.
func (g *Game) Render(dst *core.Screen, opts RenderOptions) {
	RenderSnapshot(dst, g.Snapshot(), opts)
}

// RenderSnapshot draws a snapshot into dst.
func RenderSnapshot(dst *core.Screen, s Snapshot, opts RenderOptions) {
	dst.Clear()

	boardX := (dst.Width() - BoardWidth) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight + 1

	renderHUD(dst, s, boardX)
	dst.DrawBox(boardX, boardY, BoardWidth, BoardHeight)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			occ := s.Cells[y*BoardSize+x]
			if opts.TrackPlayers && (occ == Player1Marker || occ == Player2Marker) {
				occ = Empty
			}
			drawCell(dst, boardX, boardY, core.Pos(x, y), occ.String(), occ.Color())
		}
	}

	if opts.TrackPlayers {
		p1, p2 := s.Positions[0], s.Positions[1]
		if p1 == p2 {
			drawCell(dst, boardX, boardY, p1, "PP", core.ColorBrightWhite)
		} else {
			drawCell(dst, boardX, boardY, p1, Player1Marker.String(), Player1Marker.Color())
			drawCell(dst, boardX, boardY, p2, Player2Marker.String(), Player2Marker.Color())
		}
	}
}

func drawCell(dst *core.Screen, boardX, boardY int, p core.Position, marker string, c core.Color) {
	px := boardX + 1 + p.X*cellWidth
	py := boardY + 1 + p.Y
	if len(marker) == 1 {
		px++
	}
	dst.DrawTextColored(px, py, marker, c)
}

func renderHUD(dst *core.Screen, s Snapshot, boardX int) {
	title := "GEM HUNTERS"
	dst.DrawTextColored(boardX+(BoardWidth-len(title))/2, 0, title, core.ColorYellow)

	var turn string
	if s.State == StateGameOver {
		turn = fmt.Sprintf("Turn %d/%d  done", s.Turn, s.MaxTurns)
	} else {
		turn = fmt.Sprintf("Turn %d/%d  P%d's move", s.Turn+1, s.MaxTurns, int(s.Current))
	}
	dst.DrawText(boardX, 1, turn)

	dst.DrawTextColored(boardX, 2, fmt.Sprintf("P1 gems: %d", s.Gems[0]), Player1Marker.Color())
	p2 := fmt.Sprintf("P2 gems: %d", s.Gems[1])
	dst.DrawTextColored(boardX+BoardWidth-len(p2), 2, p2, Player2Marker.Color())
}
