package gemhunt

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(Player1, "P1", core.Pos(0, 0))

	// No bounds checking at this layer
	if err := p.Move(core.DirUp); err != nil {
		t.Fatalf("Move(Up) failed: %v", err)
	}
	if p.Position() != core.Pos(0, -1) {
		t.Errorf("Position() = %v, expected (0,-1)", p.Position())
	}

	if err := p.Move(core.DirNone); !errors.Is(err, ErrUnrecognizedDirection) {
		t.Errorf("Move(None) = %v, expected ErrUnrecognizedDirection", err)
	}
	if p.Position() != core.Pos(0, -1) {
		t.Errorf("unrecognized direction should not move, got %v", p.Position())
	}
}

func TestPlayerIdentity(t *testing.T) {
	p := NewPlayer(Player2, "P2", Player2Start)

	if p.ID() != Player2 || p.Name() != "P2" {
		t.Errorf("identity = %v/%s, expected Player 2/P2", p.ID(), p.Name())
	}
	if p.ID().String() != "Player 2" {
		t.Errorf("String() = %q, expected %q", p.ID().String(), "Player 2")
	}
	if p.Gems() != 0 {
		t.Errorf("Gems() = %d, expected 0", p.Gems())
	}
}
