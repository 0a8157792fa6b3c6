package gamemaster

import (
	"corners/game"
	"errors"
	"testing"
)

// nearWin is a two piece game RED wins after four of its own moves.
func nearWin(t *testing.T) *game.GameState {
	t.Helper()
	gs, err := game.NewGameStateFromPieces(game.NewPiece(game.Red, 2, 2), game.NewPiece(game.Blue, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error building game: %v", err)
	}
	return gs
}

var redWins = []game.Move{
	{Piece: 0, Direction: game.DownRight},
	{Piece: 1, Direction: game.DownRight},
	{Piece: 0, Direction: game.UpLeft},
	{Piece: 1, Direction: game.DownLeft},
	{Piece: 0, Direction: game.UpLeft},
	{Piece: 1, Direction: game.DownRight},
	{Piece: 0, Direction: game.UpLeft},
}

func TestNewSession(t *testing.T) {
	s := NewSession("alice", "bob")

	if s.State == nil {
		t.Fatal("expected a GameState, got nil")
	}
	if s.State.NumberOfPieces() != game.NUM_PIECES {
		t.Errorf("expected the standard layout, got %d pieces", s.State.NumberOfPieces())
	}
	if got := s.CurrentPlayer(); got.Name != "alice" || got.Color != game.Red {
		t.Errorf("expected alice (RED) to start, got %+v", got)
	}
	if s.GameOver() {
		t.Error("new session should not be over")
	}
}

func TestNewSession_GeneratedNames(t *testing.T) {
	s := NewSession("", "  ")

	red, blue := s.Player(game.Red), s.Player(game.Blue)
	if red.Name == "" || blue.Name == "" {
		t.Fatalf("expected generated names, got %q and %q", red.Name, blue.Name)
	}
	if red.Name == blue.Name {
		t.Errorf("expected distinct names, both are %q", red.Name)
	}
}

func TestSessionPlay_ValidMove(t *testing.T) {
	s := NewSession("alice", "bob")

	u, err := s.Play(9, game.UpLeft)
	if err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}

	want := Update{
		Piece:  9,
		From:   game.Position{Row: 4, Col: 2},
		To:     game.Position{Row: 3, Col: 1},
		Player: game.Red,
		Hash:   s.State.Hash(),
	}
	if u != want {
		t.Errorf("expected update %+v, got %+v", want, u)
	}
	if s.CurrentPlayer().Color != game.Blue {
		t.Errorf("expected BLUE to move next")
	}
}

func TestSessionPlay_IllegalMove(t *testing.T) {
	s := NewSession("alice", "bob")

	if _, err := s.Play(7, game.UpLeft); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
	if _, err := s.Play(42, game.UpLeft); !errors.Is(err, game.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if s.State.Steps(game.Red) != 0 {
		t.Errorf("rejected moves must not count as steps")
	}
}

func TestSessionPlay_NotYourTurn(t *testing.T) {
	s := NewSession("alice", "bob")

	// piece 0 is BLUE, RED is to move
	if _, err := s.Play(0, game.DownRight); !errors.Is(err, ErrNotYourPiece) {
		t.Errorf("expected ErrNotYourPiece, got %v", err)
	}
	if s.CurrentPlayer().Color != game.Red {
		t.Errorf("turn must not change on a rejected move")
	}
}

func TestSessionPlay_GameOver(t *testing.T) {
	s := NewSession("alice", "bob", WithState(nearWin(t)), WithMetrics())

	var last Update
	for i, m := range redWins {
		u, err := s.Play(m.Piece, m.Direction)
		if err != nil {
			t.Fatalf("move %d (%s): unexpected error %v", i, m, err)
		}
		last = u
	}

	if !last.Won || last.Player != game.Red {
		t.Errorf("expected the last update to report a RED win, got %+v", last)
	}
	if winner, ok := s.Winner(); !ok || winner != game.Red || !s.GameOver() {
		t.Errorf("expected RED to have won, got %s (over: %v)", winner, ok)
	}
	if s.Player(game.Red).Score != 1 || s.Player(game.Blue).Score != 0 {
		t.Errorf("expected score 1:0, got %d:%d", s.Player(game.Red).Score, s.Player(game.Blue).Score)
	}

	// The engine itself would accept this move, the session must not.
	_, err := s.Play(1, game.UpRight)
	if err == nil || err.Error() != "game is over - no moves allowed" {
		t.Errorf("expected 'game is over - no moves allowed' error, got %v", err)
	}

	players, m := s.Finish()
	if len(players) != 2 {
		t.Fatalf("expected two players, got %d", len(players))
	}
	if players[0].StepCount != 4 || players[1].StepCount != 3 {
		t.Errorf("expected step counts 4 and 3, got %d and %d", players[0].StepCount, players[1].StepCount)
	}
	if m.TotalMoves != len(redWins) || m.RejectedMoves != 1 {
		t.Errorf("expected %d moves and 1 rejection, got %d and %d", len(redWins), m.TotalMoves, m.RejectedMoves)
	}
	if m.Winner != "RED" || m.RedSteps != 4 || m.BlueSteps != 3 {
		t.Errorf("unexpected metric %+v", m)
	}
}

func TestSessionFinish_Abandoned(t *testing.T) {
	s := NewSession("alice", "bob")
	if _, err := s.Play(7, game.UpRight); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	players, m := s.Finish()
	if players[0].Name != "alice" || players[0].StepCount != 1 || players[0].Score != 0 {
		t.Errorf("unexpected red player %+v", players[0])
	}
	if players[1].Name != "bob" || players[1].StepCount != 0 {
		t.Errorf("unexpected blue player %+v", players[1])
	}
	if m.Winner != "" {
		t.Errorf("expected no winner, got %q", m.Winner)
	}
	if _, ok := s.Winner(); ok {
		t.Errorf("abandoned game must not report a winner")
	}
}
