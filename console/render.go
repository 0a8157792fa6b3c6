package console

import (
	"corners/game"
	"corners/gamemaster"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"
)

var (
	redStyle      = color.New(color.FgRed, color.Bold)
	blueStyle     = color.New(color.FgBlue, color.Bold)
	pickStyle     = color.New(color.FgGreen)
	selectedStyle = color.New(color.BgYellow, color.FgBlack)
)

// Render draws the board, one character per square: R and B for pieces, lower
// case for the selected piece, * for squares the selected piece can reach.
func Render(w io.Writer, s *gamemaster.Session, c *Controller) error {
	var b strings.Builder
	picks := c.Selectable()
	sel, hasSel := c.Selected()

	b.WriteString(" ")
	for col := 0; col < game.BOARD_SIZE; col++ {
		fmt.Fprintf(&b, " %d", col)
	}
	b.WriteString("\n")

	for row := 0; row < game.BOARD_SIZE; row++ {
		fmt.Fprintf(&b, "%d", row)
		for col := 0; col < game.BOARD_SIZE; col++ {
			p := game.Position{Row: row, Col: col}
			b.WriteString(" ")
			b.WriteString(square(s.State, p, hasSel && p == sel, slices.Contains(picks, p)))
		}
		b.WriteString("\n")
	}

	if winner, ok := s.Winner(); ok {
		fmt.Fprintf(&b, "%s WINS\n", winner)
	} else {
		current := s.CurrentPlayer()
		fmt.Fprintf(&b, "%s (%s) to move | steps RED %d BLUE %d\n",
			current.Name, current.Color, s.State.Steps(game.Red), s.State.Steps(game.Blue))
		if len(s.State.LegalMoves()) == 0 {
			fmt.Fprintf(&b, "%s has no legal move, type quit to end the game\n", current.Color)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func square(gs *game.GameState, p game.Position, isSelected, isPick bool) string {
	id, ok := gs.PieceAt(p)
	if !ok {
		if isPick {
			return pickStyle.Sprint("*")
		}
		return "."
	}

	piece, _ := gs.Piece(id)
	letter, c := "R", redStyle
	if piece.Color == game.Blue {
		letter, c = "B", blueStyle
	}
	if isSelected {
		return selectedStyle.Sprint(strings.ToLower(letter))
	}
	return c.Sprint(letter)
}
