package gamemaster

import (
	"corners/game"
	"corners/metrics"
	"errors"
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrNotYourPiece = errors.New("piece does not belong to the player to move")
)

// Player is one side of a session. Score counts the games won in this session.
type Player struct {
	Name      string
	Color     game.Color
	StepCount int
	Score     int
}

// Update describes an applied move.
type Update struct {
	Piece  int
	From   game.Position
	To     game.Position
	Player game.Color     // The color that moved
	Hash   game.StateHash // State after the move
	Won    bool           // The mover won with this move
}

type Option func(s *Session)

// WithState starts the session from a prepared game instead of the standard layout.
func WithState(gs *game.GameState) Option {
	return func(s *Session) {
		if gs != nil {
			s.State = gs
		}
	}
}

func WithMetrics() Option {
	return func(s *Session) {
		s.metrics = metrics.NewCollector()
	}
}

// Session runs one game between two named players. Unlike the bare GameState it
// enforces turn order and refuses moves once a player has won.
type Session struct {
	State   *game.GameState
	players [2]*Player
	metrics metrics.Collector
	winner  game.Color
	over    bool
}

// NewSession creates a session. Empty names are replaced by generated ones.
func NewSession(redName, blueName string, options ...Option) *Session {
	s := &Session{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.State == nil {
		s.State = game.NewGameState()
	}

	redName, blueName = strings.TrimSpace(redName), strings.TrimSpace(blueName)
	if redName == "" {
		redName = petname.Generate(2, "-")
	}
	for blueName == "" || blueName == redName {
		blueName = petname.Generate(2, "-")
	}
	s.players[game.Red] = &Player{Name: redName, Color: game.Red}
	s.players[game.Blue] = &Player{Name: blueName, Color: game.Blue}

	s.State.OnPositionChange(func(piece int, from, to game.Position) {
		log.Debug().Int("piece", piece).Msgf("Move: %s -> %s", from, to)
	})

	s.metrics.Start()
	log.Info().Str("red", redName).Str("blue", blueName).Msg("Session started")
	return s
}

// Player returns a snapshot of the player with the given color.
func (s *Session) Player(c game.Color) Player {
	return *s.players[c]
}

// CurrentPlayer returns a snapshot of the player to move.
func (s *Session) CurrentPlayer() Player {
	return s.Player(s.State.CurrentPlayer())
}

func (s *Session) GameOver() bool {
	return s.over
}

// Winner returns the winning color once the game is over.
func (s *Session) Winner() (game.Color, bool) {
	return s.winner, s.over
}

// Play moves a piece of the player to move.
func (s *Session) Play(piece int, d game.Direction) (Update, error) {
	u, err := s.play(piece, d)
	if err != nil {
		s.metrics.AddRejected()
		log.Debug().Err(err).Int("piece", piece).Stringer("direction", d).Msg("Move rejected")
		return Update{}, err
	}
	s.metrics.AddMove()
	return u, nil
}

func (s *Session) play(piece int, d game.Direction) (Update, error) {
	if s.GameOver() {
		return Update{}, ErrGameOver
	}
	p, err := s.State.Piece(piece)
	if err != nil {
		return Update{}, err
	}
	mover := s.State.CurrentPlayer()
	if p.Color != mover {
		return Update{}, fmt.Errorf("%w: piece %d is %s, %s to move", ErrNotYourPiece, piece, p.Color, mover)
	}
	if err := s.State.Move(piece, d); err != nil {
		return Update{}, err
	}

	u := Update{
		Piece:  piece,
		From:   p.Position,
		To:     p.Position.MoveTo(d),
		Player: mover,
		Hash:   s.State.Hash(),
	}

	// Only the mover's pieces changed, so only the mover can have just won.
	if s.State.IsWin(mover) {
		s.AwardWin(mover)
		s.winner, s.over = mover, true
		u.Won = true
		log.Info().Str("player", s.players[mover].Name).Msgf("%s WINS", mover)
	} else {
		log.Info().Msgf("Switch to %s", s.State.CurrentPlayer())
	}
	return u, nil
}

// AwardWin adds a point to the player of the given color.
func (s *Session) AwardWin(c game.Color) {
	s.players[c].Score++
}

// Finish records the final step counts and returns both players with the game's metrics.
func (s *Session) Finish() ([]Player, metrics.GameMetric) {
	for _, c := range []game.Color{game.Red, game.Blue} {
		s.players[c].StepCount = s.State.Steps(c)
	}
	winner := ""
	if s.over {
		winner = s.winner.String()
	}
	m := s.metrics.Complete(winner, s.State.Steps(game.Red), s.State.Steps(game.Blue))
	log.Info().
		Str("winner", winner).
		Int("moves", m.TotalMoves).
		Dur("duration", m.Duration).
		Msg("Session finished")
	return []Player{*s.players[game.Red], *s.players[game.Blue]}, m
}
