package game

import "fmt"

// Position is a square on the board, 0-indexed. Positions off the board are
// representable, bounds are checked by the GameState.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveTo returns the position one step away in the given direction.
func (p Position) MoveTo(d Direction) Position {
	return Position{Row: p.Row + d.RowChange(), Col: p.Col + d.ColChange()}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func isOnBoard(p Position) bool {
	return p.Row >= 0 && p.Row < BOARD_SIZE && p.Col >= 0 && p.Col < BOARD_SIZE
}
