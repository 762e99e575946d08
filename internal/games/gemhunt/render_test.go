package gemhunt

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newScriptedGame(core.Pos(2, 0))
	dst := core.NewScreen(BoardWidth, hudHeight+1+BoardHeight)

	g.Render(dst, RenderOptions{})

	if row := dst.Row(1); !strings.HasPrefix(row, "Turn 1/30  P1's move") {
		t.Errorf("HUD row = %q", row)
	}

	// First board row: frame, P1 marker, empty, gem
	row := dst.Row(hudHeight + 2)
	if !strings.HasPrefix(row, "│P1  -  G ") {
		t.Errorf("board row 0 = %q", row)
	}

	gem := dst.GetCell(1+2*cellWidth+1, hudHeight+2)
	if gem.Rune != 'G' || gem.Color != core.ColorYellow {
		t.Errorf("gem cell = %+v, expected yellow G", gem)
	}
}

func TestRenderTrackPlayers(t *testing.T) {
	g := newScriptedGame()
	g.Attempt('D') // P1 to (0,1)

	dst := core.NewScreen(BoardWidth, hudHeight+1+BoardHeight)

	g.Render(dst, RenderOptions{})
	if row := dst.Row(hudHeight + 2); !strings.HasPrefix(row, "│P1") {
		t.Errorf("untracked render should keep the start marker, row = %q", row)
	}

	g.Render(dst, RenderOptions{TrackPlayers: true})
	if row := dst.Row(hudHeight + 2); strings.HasPrefix(row, "│P1") {
		t.Errorf("tracked render should hide the start marker, row = %q", row)
	}
	if row := dst.Row(hudHeight + 3); !strings.HasPrefix(row, "│P1") {
		t.Errorf("tracked render should draw P1 at (0,1), row = %q", row)
	}

	// The grid itself is untouched
	if g.Board().At(Player1Start) != Player1Marker {
		t.Error("render must not change the board")
	}
}
