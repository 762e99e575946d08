// Package core provides fundamental types shared by the game and its front ends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is an immutable grid coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X, Y int
}

// Pos is a convenience constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Moved returns the position one step in the given direction.
// No bounds checking is done here; an unrecognized direction returns p unchanged.
func (p Position) Moved(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Within reports whether p lies in [0,w) x [0,h).
func (p Position) Within(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
