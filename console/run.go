package console

import (
	"bufio"
	"context"
	"corners/game"
	"corners/gamemaster"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const help = `Pick a square as "row col", e.g. "4 2". Pick your piece, then where it goes.
Pick the selected piece again to drop it. "quit" ends the game.
`

// Run plays s on a line based terminal until a player wins, the input ends, the
// player quits or ctx is cancelled. Cancellation returns ctx.Err() at once, even
// while waiting for input.
func Run(ctx context.Context, s *gamemaster.Session, in io.Reader, out io.Writer) error {
	c := NewController(s)
	s.State.OnPositionChange(func(piece int, from, to game.Position) {
		fmt.Fprintf(out, "piece %d: %s -> %s\n", piece, from, to)
	})

	io.WriteString(out, help)
	if err := Render(out, s, c); err != nil {
		return err
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for !s.GameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			log.Info().Msg("Game abandoned")
			return nil
		case "h", "help", "?":
			io.WriteString(out, help)
			continue
		}

		p, err := ParseSquare(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		log.Info().Msgf("Clicked on square %s", p)

		if _, _, err := c.HandleSquare(p); err != nil {
			if errors.Is(err, gamemaster.ErrGameOver) {
				return nil
			}
			fmt.Fprintln(out, err)
		}
		if err := Render(out, s, c); err != nil {
			return err
		}
	}
	return nil
}

// readLines scans in on its own goroutine so that a cancelled ctx does not wait
// for the next line. The scan error, nil at end of input, is sent before lines
// is closed. A goroutine blocked in a read stays blocked until in is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// ParseSquare reads "row col", with or without a comma.
func ParseSquare(line string) (game.Position, error) {
	var p game.Position
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return p, fmt.Errorf("expected \"row col\", got %q", line)
	}
	if _, err := fmt.Sscanf(fields[0]+" "+fields[1], "%d %d", &p.Row, &p.Col); err != nil {
		return p, fmt.Errorf("expected \"row col\", got %q", line)
	}
	if p.Row < 0 || p.Row >= game.BOARD_SIZE || p.Col < 0 || p.Col >= game.BOARD_SIZE {
		return p, fmt.Errorf("%s is not on the board", p)
	}
	return p, nil
}
