package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gem-hunters/internal/storage"
)

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	view := m.View()
	if !strings.Contains(view, "No matches recorded yet.") {
		t.Errorf("View() = %q, expected empty-history message", view)
	}
}

func TestHistoryModelRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveMatch(storage.MatchRecord{Player1Gems: 2, Player2Gems: 1, Outcome: "player1"})
	store.SaveMatch(storage.MatchRecord{Player1Gems: 1, Player2Gems: 1, Outcome: "tie"})

	m := NewHistoryModel(store, 80, 24)

	if len(m.table.Rows()) != 2 {
		t.Fatalf("table has %d rows, expected 2", len(m.table.Rows()))
	}
	// Newest first.
	if got := m.table.Rows()[0][1]; got != "Tie" {
		t.Errorf("first row winner = %q, expected %q", got, "Tie")
	}
	if !strings.Contains(m.View(), "2 matches  P1 1  P2 0  ties 1  best 2 gems") {
		t.Errorf("View() missing stats line:\n%s", m.View())
	}
}
