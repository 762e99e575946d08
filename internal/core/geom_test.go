package core

import (
	"errors"
	"testing"
)

func TestPositionMoved(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Position
	}{
		{"up decreases y", DirUp, Pos(2, 1)},
		{"down increases y", DirDown, Pos(2, 3)},
		{"left decreases x", DirLeft, Pos(1, 2)},
		{"right increases x", DirRight, Pos(3, 2)},
		{"unrecognized is a no-op", DirNone, Pos(2, 2)},
	}

	start := Pos(2, 2)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := start.Moved(tc.dir)
			if result != tc.expected {
				t.Errorf("Moved(%v) = %v, expected %v", tc.dir, result, tc.expected)
			}
		})
	}

	if start != Pos(2, 2) {
		t.Errorf("Moved mutated the receiver: %v", start)
	}
}

func TestMovedChangesExactlyOneAxis(t *testing.T) {
	start := Pos(0, 0)
	for _, d := range Directions {
		p := start.Moved(d)
		dx, dy := p.X-start.X, p.Y-start.Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("Moved(%v) from %v = %v, expected a unit step on one axis", d, start, p)
		}
	}
}

func TestMovedNoBoundsCheck(t *testing.T) {
	p := Pos(0, 0).Moved(DirUp)
	if p != Pos(0, -1) {
		t.Errorf("Moved(Up) from origin = %v, expected (0,-1)", p)
	}
}

func TestPositionWithin(t *testing.T) {
	tests := []struct {
		p        Position
		expected bool
	}{
		{Pos(0, 0), true},
		{Pos(5, 5), true},
		{Pos(-1, 0), false},
		{Pos(0, -1), false},
		{Pos(6, 0), false},
		{Pos(0, 6), false},
	}

	for _, tc := range tests {
		if result := tc.p.Within(6, 6); result != tc.expected {
			t.Errorf("Within(%v) = %v, expected %v", tc.p, result, tc.expected)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token    rune
		expected Direction
	}{
		{'U', DirUp},
		{'u', DirUp},
		{'D', DirDown},
		{'d', DirDown},
		{'L', DirLeft},
		{'l', DirLeft},
		{'R', DirRight},
		{'r', DirRight},
	}

	for _, tc := range tests {
		d, err := ParseDirection(tc.token)
		if err != nil {
			t.Errorf("ParseDirection(%q) returned error: %v", tc.token, err)
		}
		if d != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.token, d, tc.expected)
		}
		if d.Token() != tc.expected.Token() {
			t.Errorf("Token() = %q, expected %q", d.Token(), tc.expected.Token())
		}
	}
}

func TestParseDirectionUnrecognized(t *testing.T) {
	for _, token := range []rune{'x', 'W', ' ', '1', '\n'} {
		d, err := ParseDirection(token)
		if !errors.Is(err, ErrUnrecognizedDirection) {
			t.Errorf("ParseDirection(%q) error = %v, expected ErrUnrecognizedDirection", token, err)
		}
		if d.Valid() {
			t.Errorf("ParseDirection(%q) = %v, expected invalid direction", token, d)
		}
	}
}
