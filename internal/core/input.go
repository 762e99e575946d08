package core

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnrecognizedDirection is returned for any input token outside U/D/L/R.
var ErrUnrecognizedDirection = errors.New("unrecognized direction")

// Direction is one of the four orthogonal moves.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four recognized directions in token order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four recognized directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Token returns the single-letter input token for the direction.
func (d Direction) Token() rune {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	case DirRight:
		return 'R'
	default:
		return '?'
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// ParseDirection maps a U/D/L/R token (case-insensitive) to a Direction.
func ParseDirection(token rune) (Direction, error) {
	switch unicode.ToUpper(token) {
	case 'U':
		return DirUp, nil
	case 'D':
		return DirDown, nil
	case 'L':
		return DirLeft, nil
	case 'R':
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("%w: %q", ErrUnrecognizedDirection, token)
}
