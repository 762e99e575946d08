package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gem-hunters/internal/config"
	"github.com/vovakirdan/gem-hunters/internal/core"
	"github.com/vovakirdan/gem-hunters/internal/games/gemhunt"
	"github.com/vovakirdan/gem-hunters/internal/storage"
)

var dirKeys = map[core.Direction]tea.KeyMsg{
	core.DirUp:    {Type: tea.KeyUp},
	core.DirDown:  {Type: tea.KeyDown},
	core.DirLeft:  {Type: tea.KeyLeft},
	core.DirRight: {Type: tea.KeyRight},
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

// legalKey returns a key for a move the current player can make.
func legalKey(g *gemhunt.Game) (tea.KeyMsg, bool) {
	for _, d := range core.Directions {
		if g.Board().IsValidMove(g.Current(), d) {
			return dirKeys[d], true
		}
	}
	return tea.KeyMsg{}, false
}

// playableSeed finds a seed where neither player starts boxed in.
func playableSeed(t *testing.T) int64 {
	t.Helper()
	for seed := int64(1); seed < 100; seed++ {
		g := gemhunt.New(core.RuntimeConfig{Seed: seed})
		p1ok, p2ok := false, false
		for _, d := range core.Directions {
			p1ok = p1ok || g.Board().IsValidMove(g.Player(gemhunt.Player1), d)
			p2ok = p2ok || g.Board().IsValidMove(g.Player(gemhunt.Player2), d)
		}
		if p1ok && p2ok {
			return seed
		}
	}
	t.Fatal("no playable seed found")
	return 0
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	return NewModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: playableSeed(t)}, opts)
}

func TestModelAcceptedMove(t *testing.T) {
	m := newTestModel(t, Options{})

	k, ok := legalKey(m.Game())
	if !ok {
		t.Fatal("no legal move for P1")
	}
	m = press(t, m, k)

	if m.Game().Turns() != 1 {
		t.Errorf("Turns() = %d, expected 1", m.Game().Turns())
	}
	if m.Game().Current().ID() != gemhunt.Player2 {
		t.Errorf("Current() = %v, expected Player 2", m.Game().Current().ID())
	}
	status := m.Status()
	if len(status) != 2 || !strings.HasPrefix(status[0], "P1 moved") || status[1] != "P2, enter move (U/D/L/R)" {
		t.Errorf("Status() = %q", status)
	}
}

func TestModelUnboundRuneIsRejected(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, runeKey('x'))

	if m.Game().Turns() != 0 || m.Game().Rejected() != 1 {
		t.Errorf("Turns(), Rejected() = %d, %d, expected 0, 1", m.Game().Turns(), m.Game().Rejected())
	}
	want := []string{gemhunt.MessageUnrecognized, gemhunt.MessageBadMove}
	if strings.Join(m.Status(), "|") != strings.Join(want, "|") {
		t.Errorf("Status() = %q, expected %q", m.Status(), want)
	}
}

func TestModelOutOfBoundsIsRejected(t *testing.T) {
	m := newTestModel(t, Options{})

	// P1 starts in the top-left corner.
	m = press(t, m, dirKeys[core.DirUp])

	if m.Game().Turns() != 0 || m.Game().Current().ID() != gemhunt.Player1 {
		t.Errorf("rejected move changed the turn: Turns() = %d, Current() = %v", m.Game().Turns(), m.Game().Current().ID())
	}
	if len(m.Status()) != 1 || m.Status()[0] != gemhunt.MessageBadMove {
		t.Errorf("Status() = %q, expected bad move message", m.Status())
	}
}

func TestModelIgnoresUnboundSpecialKeys(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.Game().Rejected() != 0 {
		t.Errorf("Rejected() = %d, expected 0", m.Game().Rejected())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Update(q) returned nil command, expected tea.Quit")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelPlaysToGameOverAndSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Config: config.Default()})

	for i := 0; i < gemhunt.MaxTurns; i++ {
		k, ok := legalKey(m.Game())
		if !ok {
			t.Fatalf("no legal move at turn %d", i+1)
		}
		m = press(t, m, k)
	}

	if !m.Game().IsGameOver() {
		t.Fatal("IsGameOver() = false after 30 accepted moves")
	}
	if !m.Saved() {
		t.Error("Saved() = false, expected the match to be recorded")
	}
	if got := m.Status()[0]; got != "Game Over!" {
		t.Errorf("Status()[0] = %q, expected %q", got, "Game Over!")
	}

	// Moves after the end are ignored and the match is saved only once.
	m = press(t, m, dirKeys[core.DirDown])
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("Stats().Total = %d, expected 1", stats.Total)
	}

	// Restart deals a new game.
	m = press(t, m, runeKey('n'))
	if m.Game().IsGameOver() || m.Game().Turns() != 0 || m.Saved() {
		t.Errorf("after restart: IsGameOver()=%v Turns()=%d Saved()=%v", m.Game().IsGameOver(), m.Game().Turns(), m.Saved())
	}
}

func TestModelRestartIgnoredMidGame(t *testing.T) {
	m := newTestModel(t, Options{})
	k, _ := legalKey(m.Game())
	m = press(t, m, k)

	m = press(t, m, runeKey('n'))
	if m.Game().Turns() != 1 || m.Game().Rejected() != 0 {
		t.Errorf("Turns(), Rejected() = %d, %d, expected 1, 0", m.Game().Turns(), m.Game().Rejected())
	}
}

func TestModelViewShowsBoard(t *testing.T) {
	m := newTestModel(t, Options{})

	view := m.View()
	for _, want := range []string{"GEM HUNTERS", "P1 gems: 0", "P1, enter move (U/D/L/R)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
