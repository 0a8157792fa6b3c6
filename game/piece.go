package game

import "fmt"

// Color of a piece, and of the player owning it.
type Color int

const (
	Red Color = iota // Moves first
	Blue
)

func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Piece is a single token. Its color never changes, its position changes with every move.
type Piece struct {
	Color    Color    `json:"color"`
	Position Position `json:"position"`
}

func NewPiece(c Color, row, col int) Piece {
	return Piece{Color: c, Position: Position{Row: row, Col: col}}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s-%s", p.Color, p.Position)
}

// StandardLayout returns the 14 starting pieces. Roster order defines piece ids.
func StandardLayout() []Piece {
	return []Piece{
		NewPiece(Blue, 0, 0),
		NewPiece(Blue, 0, 1),
		NewPiece(Blue, 0, 2),
		NewPiece(Blue, 0, 3),
		NewPiece(Blue, 0, 4),
		NewPiece(Blue, 1, 0),
		NewPiece(Blue, 1, 4),
		NewPiece(Red, 4, 0),
		NewPiece(Red, 4, 1),
		NewPiece(Red, 4, 2),
		NewPiece(Red, 4, 3),
		NewPiece(Red, 4, 4),
		NewPiece(Red, 3, 0),
		NewPiece(Red, 3, 4),
	}
}
