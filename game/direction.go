package game

import "fmt"

// Direction is one of the four diagonal steps a piece can take.
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

var deltas = [...][2]int{
	UpLeft:    {-1, -1},
	UpRight:   {-1, 1},
	DownLeft:  {1, -1},
	DownRight: {1, 1},
}

var directionNames = [...]string{
	UpLeft:    "UP_LEFT",
	UpRight:   "UP_RIGHT",
	DownLeft:  "DOWN_LEFT",
	DownRight: "DOWN_RIGHT",
}

// Directions returns all four directions in canonical order.
func Directions() []Direction {
	return []Direction{UpLeft, UpRight, DownLeft, DownRight}
}

func (d Direction) valid() bool {
	return d >= UpLeft && d <= DownRight
}

// RowChange is the row delta of the direction, 0 for an unknown direction.
func (d Direction) RowChange() int {
	if !d.valid() {
		return 0
	}
	return deltas[d][0]
}

// ColChange is the column delta of the direction, 0 for an unknown direction.
func (d Direction) ColChange() int {
	if !d.valid() {
		return 0
	}
	return deltas[d][1]
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionOf looks up the direction with the given row and column change.
func DirectionOf(rowChange, colChange int) (Direction, error) {
	for _, d := range Directions() {
		if d.RowChange() == rowChange && d.ColChange() == colChange {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: no direction for delta (%d, %d)", ErrInvalidArgument, rowChange, colChange)
}
