package game

import "fmt"

// Move is a single step of one piece.
type Move struct {
	Piece     int       `json:"piece"`
	Direction Direction `json:"direction"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d:%s", m.Piece, m.Direction)
}
