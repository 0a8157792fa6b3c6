package console

import (
	"corners/game"
	"corners/gamemaster"

	"golang.org/x/exp/slices"
)

type selectionPhase int

const (
	selectFrom selectionPhase = iota
	selectTo
)

func (p selectionPhase) alter() selectionPhase {
	if p == selectFrom {
		return selectTo
	}
	return selectFrom
}

// Controller turns square picks into moves: first a piece of the player to move,
// then one of the empty squares it can step to. Picking the selected piece again
// drops the selection.
type Controller struct {
	session    *gamemaster.Session
	phase      selectionPhase
	selected   game.Position
	selectable []game.Position
}

func NewController(s *gamemaster.Session) *Controller {
	c := &Controller{session: s}
	c.setSelectablePositions()
	return c
}

// Selectable returns the squares the next pick may land on.
func (c *Controller) Selectable() []game.Position {
	return slices.Clone(c.selectable)
}

func (c *Controller) Selected() (game.Position, bool) {
	return c.selected, c.phase == selectTo
}

// HandleSquare processes one pick. moved reports whether a move was played;
// picks on squares that are not selectable are ignored.
func (c *Controller) HandleSquare(p game.Position) (u gamemaster.Update, moved bool, err error) {
	switch c.phase {
	case selectFrom:
		if slices.Contains(c.selectable, p) {
			c.selected = p
			c.alterSelectionPhase()
		}
	case selectTo:
		if p == c.selected {
			c.alterSelectionPhase()
			return
		}
		if !slices.Contains(c.selectable, p) {
			return
		}
		piece, _ := c.session.State.PieceAt(c.selected)
		d, derr := game.DirectionOf(p.Row-c.selected.Row, p.Col-c.selected.Col)
		if derr != nil {
			return u, false, derr
		}
		u, err = c.session.Play(piece, d)
		c.alterSelectionPhase()
		return u, err == nil, err
	}
	return
}

func (c *Controller) alterSelectionPhase() {
	c.phase = c.phase.alter()
	c.setSelectablePositions()
}

func (c *Controller) setSelectablePositions() {
	c.selectable = c.selectable[:0]
	if c.session.GameOver() {
		c.phase = selectFrom
		return
	}
	switch c.phase {
	case selectFrom:
		c.selectable = append(c.selectable, c.session.State.SelectablePositions(c.session.State.CurrentPlayer())...)
	case selectTo:
		piece, _ := c.session.State.PieceAt(c.selected)
		dirs, _ := c.session.State.ValidMoves(piece)
		for _, d := range dirs {
			c.selectable = append(c.selectable, c.selected.MoveTo(d))
		}
	}
}
