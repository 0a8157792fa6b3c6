package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"
)

type StateHash uint64

// GameState is the authoritative board: the piece roster, the player to move,
// the step counters and the win-position sets. It is not safe for concurrent use.
type GameState struct {
	pieces        []Piece            // Roster, indexed by piece id
	currentPlayer Color              // The player to move
	steps         [2]int             // Moves made per color
	winPositions  [2][]Position      // Squares each color must fill, fixed at construction
	listeners     []PositionListener // Notified after every move
}

// NewGameState returns a game in the standard starting layout with RED to move.
func NewGameState() *GameState {
	gs, err := NewGameStateFromPieces(StandardLayout()...)
	if err != nil {
		panic(err) // standard layout is always valid
	}
	return gs
}

// NewGameStateFromPieces builds a game from an explicit roster. Every piece must be
// on the board and no two pieces may share a square. Each color's win positions
// are the starting squares of the opposite color.
func NewGameStateFromPieces(pieces ...Piece) (*GameState, error) {
	if err := checkPieces(pieces); err != nil {
		return nil, err
	}
	gs := &GameState{
		pieces:        slices.Clone(pieces),
		currentPlayer: Red,
	}
	for _, p := range pieces {
		target := p.Color.Opponent()
		gs.winPositions[target] = append(gs.winPositions[target], p.Position)
	}
	return gs, nil
}

func checkPieces(pieces []Piece) error {
	seen := make(map[Position]int, len(pieces))
	for i, p := range pieces {
		if p.Color != Red && p.Color != Blue {
			return fmt.Errorf("%w: piece %d has unknown color %d", ErrInvalidArgument, i, int(p.Color))
		}
		if !isOnBoard(p.Position) {
			return fmt.Errorf("%w: piece %d at %s is off the board", ErrInvalidArgument, i, p.Position)
		}
		if j, ok := seen[p.Position]; ok {
			return fmt.Errorf("%w: pieces %d and %d both at %s", ErrInvalidArgument, j, i, p.Position)
		}
		seen[p.Position] = i
	}
	return nil
}

// Copy returns an independent copy of the game. Listeners are not copied.
func (gs *GameState) Copy() *GameState {
	cp := &GameState{
		pieces:        slices.Clone(gs.pieces),
		currentPlayer: gs.currentPlayer,
		steps:         gs.steps,
	}
	for c := range gs.winPositions {
		cp.winPositions[c] = slices.Clone(gs.winPositions[c])
	}
	return cp
}

// OnPositionChange registers a listener called inline by Move, before it returns.
func (gs *GameState) OnPositionChange(l PositionListener) {
	gs.listeners = append(gs.listeners, l)
}

func (gs *GameState) checkPiece(id int) error {
	if id < 0 || id >= len(gs.pieces) {
		return fmt.Errorf("%w: piece %d out of range [0, %d)", ErrInvalidArgument, id, len(gs.pieces))
	}
	return nil
}

func (gs *GameState) CurrentPlayer() Color {
	return gs.currentPlayer
}

// Steps returns the number of moves made by the given color.
func (gs *GameState) Steps(c Color) int {
	if c != Red && c != Blue {
		return 0
	}
	return gs.steps[c]
}

func (gs *GameState) NumberOfPieces() int {
	return len(gs.pieces)
}

func (gs *GameState) Piece(id int) (Piece, error) {
	if err := gs.checkPiece(id); err != nil {
		return Piece{}, err
	}
	return gs.pieces[id], nil
}

// Pieces returns a copy of the roster.
func (gs *GameState) Pieces() []Piece {
	return slices.Clone(gs.pieces)
}

func (gs *GameState) PiecePositions() []Position {
	positions := make([]Position, len(gs.pieces))
	for i, p := range gs.pieces {
		positions[i] = p.Position
	}
	return positions
}

// SelectablePositions lists the squares of the given color's pieces in roster order.
func (gs *GameState) SelectablePositions(c Color) []Position {
	var positions []Position
	for _, p := range gs.pieces {
		if p.Color == c {
			positions = append(positions, p.Position)
		}
	}
	return positions
}

// WinPositions returns the squares the given color has to occupy to win.
func (gs *GameState) WinPositions(c Color) []Position {
	if c != Red && c != Blue {
		return nil
	}
	return slices.Clone(gs.winPositions[c])
}

// PieceAt returns the id of the piece on the square, if any.
func (gs *GameState) PieceAt(pos Position) (int, bool) {
	i := slices.IndexFunc(gs.pieces, func(p Piece) bool { return p.Position == pos })
	return i, i >= 0
}

// IsValidMove checks that the target square is on the board and empty.
func (gs *GameState) IsValidMove(id int, d Direction) (bool, error) {
	if err := gs.checkPiece(id); err != nil {
		return false, err
	}
	if !d.valid() {
		return false, nil
	}
	target := gs.pieces[id].Position.MoveTo(d)
	if !isOnBoard(target) {
		return false, nil
	}
	_, occupied := gs.PieceAt(target)
	return !occupied, nil
}

// ValidMoves returns the directions the piece can move in, without duplicates,
// in canonical direction order.
func (gs *GameState) ValidMoves(id int) ([]Direction, error) {
	if err := gs.checkPiece(id); err != nil {
		return nil, err
	}
	var valid []Direction
	for _, d := range Directions() {
		if ok, _ := gs.IsValidMove(id, d); ok {
			valid = append(valid, d)
		}
	}
	return valid, nil
}

// LegalMoves returns every move available to the player to move.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for id, p := range gs.pieces {
		if p.Color != gs.currentPlayer {
			continue
		}
		dirs, _ := gs.ValidMoves(id)
		for _, d := range dirs {
			moves = append(moves, Move{Piece: id, Direction: d})
		}
	}
	return moves
}

// Move steps the piece in the given direction, counts the step for the piece's
// color and hands the turn to the other color. Move does not check whose turn it
// is. A rejected move leaves the state untouched.
func (gs *GameState) Move(id int, d Direction) error {
	ok, err := gs.IsValidMove(id, d)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: piece %d cannot move %s", ErrIllegalMove, id, d)
	}

	piece := &gs.pieces[id]
	from := piece.Position
	piece.Position = from.MoveTo(d)
	gs.steps[piece.Color]++
	gs.currentPlayer = gs.currentPlayer.Opponent()

	for _, l := range gs.listeners {
		l(id, from, piece.Position)
	}
	return nil
}

// IsWin reports whether every piece of the color stands on one of its win
// positions. A color without pieces never wins.
func (gs *GameState) IsWin(c Color) bool {
	if c != Red && c != Blue {
		return false
	}
	owned := 0
	for _, p := range gs.pieces {
		if p.Color != c {
			continue
		}
		owned++
		if !slices.Contains(gs.winPositions[c], p.Position) {
			return false
		}
	}
	return owned > 0
}

// Winner returns the color that has won, if any. RED is checked first.
func (gs *GameState) Winner() (Color, bool) {
	for _, c := range []Color{Red, Blue} {
		if gs.IsWin(c) {
			return c, true
		}
	}
	return 0, false
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.currentPlayer))

	for _, p := range gs.pieces {
		binary.Write(hasher, binary.LittleEndian, int64(p.Color))
		binary.Write(hasher, binary.LittleEndian, int64(p.Position.Row))
		binary.Write(hasher, binary.LittleEndian, int64(p.Position.Col))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	lines := make([]string, len(gs.pieces))
	for i, p := range gs.pieces {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}
