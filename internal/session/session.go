// Package session drives a single game: it owns the board, the piece in hand
// and the most recent placement check.
package session

import (
	"iter"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/internal/deck"
	"github.com/plus3/blockfit/shape"
	"github.com/rs/zerolog"
)

// State is derived from the session fields, never stored.
type State int

const (
	// Idle means a piece is in hand and has not been evaluated since it was drawn.
	Idle State = iota
	// Evaluated means the piece in hand was checked against the board.
	Evaluated
	// Committed means the last accept placed a piece and no evaluation followed.
	Committed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Evaluated:
		return "evaluated"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Session is not safe for concurrent use; it belongs to the game loop.
type Session struct {
	board  *board.Board
	deck   *deck.Deck
	logger zerolog.Logger

	current   shape.Shape
	last      board.Superimposition
	evaluated bool
	committed bool

	placed int
	tiles  int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sends session events to l instead of discarding them.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts a session on an empty board with a freshly drawn piece.
func New(d *deck.Deck, opts ...Option) *Session {
	s := &Session{
		board:  board.New(),
		deck:   d,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = d.Next()
	return s
}

// Current returns the piece in hand.
func (s *Session) Current() shape.Shape {
	return s.current
}

// State reports where the session is in the place cycle.
func (s *Session) State() State {
	switch {
	case s.evaluated:
		return Evaluated
	case s.committed:
		return Committed
	default:
		return Idle
	}
}

// Placed returns how many pieces have been committed.
func (s *Session) Placed() int {
	return s.placed
}

// Tile returns the board tile at column x, row y.
func (s *Session) Tile(x, y int) (board.Tile, error) {
	return s.board.Tile(x, y)
}

// Tiles iterates the board in row-major order.
func (s *Session) Tiles() iter.Seq2[grid.Point, board.Tile] {
	return s.board.Tiles()
}

// Hover evaluates the piece in hand at the anchor and remembers the result
// for the next Accept.
func (s *Session) Hover(a board.Anchor) board.Superimposition {
	s.last = s.board.Superimpose(s.current, a)
	s.evaluated = true
	s.committed = false
	return s.last
}

// Last returns the most recent evaluation, if it is still current.
func (s *Session) Last() (board.Superimposition, bool) {
	return s.last, s.evaluated
}

// Accept commits the last evaluation if it succeeded, then draws a new piece.
// It reports whether a piece was placed. An accept without a fresh successful
// evaluation does nothing, so one accept never commits twice.
func (s *Session) Accept() (bool, error) {
	if !s.evaluated || !s.last.Success {
		return false, nil
	}

	n, err := s.board.Commit(s.last, s.current.Color())
	if err != nil {
		return false, err
	}

	s.placed++
	s.tiles += n
	s.logger.Debug().
		Int("tiles", n).
		Int("placed", s.placed).
		Int("occupied", s.tiles).
		Stringer("color", s.current.Color()).
		Msg("piece committed")

	s.evaluated = false
	s.committed = true
	s.current = s.deck.Next()
	return true, nil
}

// Rotate turns the piece in hand a quarter turn. Any pending evaluation is
// discarded since it no longer describes the piece.
func (s *Session) Rotate() {
	s.current = s.current.Rotate90()
	s.evaluated = false
}

// Reset clears the board and draws a new piece.
func (s *Session) Reset() {
	s.board.Reset()
	s.current = s.deck.Next()
	s.last = board.Superimposition{}
	s.evaluated = false
	s.committed = false
	s.placed = 0
	s.tiles = 0
	s.logger.Info().Msg("board reset")
}
