// Package game provides a chess game: the current position, its status and
// play by move or by short algebraic notation.
package game

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Game tracks the current position of a game and its status.
type Game struct {
	cfg      *config.Config
	rules    *engine.RuleManager
	position *engine.Position
	status   chess.Status
}

// New creates a game from the standard starting position. The configured
// board must be 8x8.
func New(cfg *config.Config) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	if g.cfg.Rules.Rows != chess.BoardSize || g.cfg.Rules.Columns != chess.BoardSize {
		return nil, fmt.Errorf("standard layout needs an 8x8 board, got %dx%d: %w",
			g.cfg.Rules.Rows, g.cfg.Rules.Columns, errors.ErrInvalidConfig)
	}
	g.position = engine.NewInitialPosition(g.rules)
	return g, nil
}

// NewEmpty creates a game on an empty board of the configured size with
// toMove to play first. Pieces are added with Put.
func NewEmpty(cfg *config.Config, toMove chess.Colour) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	board, err := chess.NewBoard(g.cfg.Rules.Rows, g.cfg.Rules.Columns)
	if err != nil {
		return nil, err
	}
	g.position = engine.NewPosition(board, g.rules, toMove)
	return g, nil
}

// NewFromFEN creates a game from a FEN position and adjudicates it.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	if g.position, err = engine.NewPositionFromFEN(fen, g.rules); err != nil {
		return nil, err
	}
	if g.status, err = g.position.Status(); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules := cfg.Rules
	return &Game{
		cfg:    cfg,
		rules:  engine.NewRuleManager(&rules),
		status: chess.NotFinished,
	}, nil
}

// Position returns the current position.
func (g *Game) Position() *engine.Position { return g.position }

// Status returns the current status.
func (g *Game) Status() chess.Status { return g.status }

// Rules returns the rule manager of the game.
func (g *Game) Rules() *engine.RuleManager { return g.rules }

// ToMove returns the colour to move.
func (g *Game) ToMove() chess.Colour { return g.position.ToMove() }

// AvailableMoves returns the legal moves of the current position.
func (g *Game) AvailableMoves() ([]*engine.Move, error) {
	return g.position.LegalMoves()
}

// AvailableMovesFor returns the legal moves of one piece.
func (g *Game) AvailableMovesFor(piece *chess.Piece) ([]*engine.Move, error) {
	return g.position.LegalMovesFor(piece)
}

// AvailableMovesAt returns the legal moves of the piece on an algebraic
// square. An empty square yields no moves.
func (g *Game) AvailableMovesAt(square string) ([]*engine.Move, error) {
	piece, err := g.position.GetAt(square)
	if err != nil || piece == nil {
		return nil, err
	}
	return g.AvailableMovesFor(piece)
}

// DoMove plays a legal move of the current position and returns the new
// status.
func (g *Game) DoMove(m *engine.Move) (chess.Status, error) {
	if !g.status.PlayAllowed() {
		return g.status, fmt.Errorf("game is %v: %w", g.status, errors.ErrIllegalState)
	}
	return g.apply(m)
}

// Play decodes and plays one or more moves in short algebraic notation and
// returns the status after the last one. Play stops at the first move that
// fails.
func (g *Game) Play(san string, more ...string) (chess.Status, error) {
	for _, s := range append([]string{san}, more...) {
		if !g.status.PlayAllowed() {
			return g.status, fmt.Errorf("game is %v, cannot play %q: %w", g.status, s, errors.ErrIllegalState)
		}
		m, err := notation.Decode(g.position, s)
		if err != nil {
			return g.status, err
		}
		if _, err := g.apply(m); err != nil {
			return g.status, errors.Wrapf(err, "play %q", s)
		}
	}
	return g.status, nil
}

// apply plays m and adjudicates the resulting position. Nothing changes
// when either step fails.
func (g *Game) apply(m *engine.Move) (chess.Status, error) {
	next, err := g.position.Apply(m)
	if err != nil {
		return g.status, err
	}
	status, err := g.rules.EndgameStatus(next)
	if err != nil {
		return g.status, err
	}

	if g.cfg.Verbosity >= config.Commentary {
		g.logMove(next.LastMove())
	}
	g.position = next
	g.status = status
	if status.Finished() {
		g.cfg.Logf(config.Results, "%s {%v} after %d plies\n", status.Result(), status, next.Plies())
	}
	return status, nil
}

func (g *Game) logMove(m *engine.Move) {
	san, err := notation.Encode(m)
	if err != nil {
		san = m.UCI()
	}
	before := m.Before()
	if before.ToMove() == chess.White {
		g.cfg.Logf(config.Commentary, "%d. %s\n", before.FullmoveNumber(), san)
	} else {
		g.cfg.Logf(config.Commentary, "%d... %s\n", before.FullmoveNumber(), san)
	}
}

// Back returns to the previous position and recomputes the status. It
// reports false when there is no previous position.
func (g *Game) Back() (bool, error) {
	previous := g.position.Previous()
	if previous == nil {
		return false, nil
	}
	status, err := g.rules.EndgameStatus(previous)
	if err != nil {
		return false, err
	}
	g.position = previous
	g.status = status
	g.cfg.Logf(config.Commentary, "back to ply %d\n", previous.Plies())
	return true, nil
}

// Draw ends the game in a draw by agreement. Play remains allowed.
func (g *Game) Draw() {
	g.status = chess.Draw
	g.cfg.Logf(config.Results, "%s {%v}\n", g.status.Result(), g.status)
}

// Resign ends the game with a win for the opponent of colour.
func (g *Game) Resign(colour chess.Colour) {
	g.status = chess.WinFor(colour.Opposite())
	g.cfg.Logf(config.Results, "%s {%v resigns}\n", g.status.Result(), colour)
}

// Get returns the piece on an algebraic square of the current position.
func (g *Game) Get(square string) (*chess.Piece, error) {
	return g.position.GetAt(square)
}

// Put places a piece on an algebraic square of the current position,
// returns the piece previously there and adjudicates the changed position.
// The status stays NotFinished while the setup lacks a king.
func (g *Game) Put(square string, piece *chess.Piece) (*chess.Piece, error) {
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		return nil, err
	}
	old, err := g.position.Put(c, piece)
	if err != nil {
		return nil, err
	}
	status, err := g.rules.EndgameStatus(g.position)
	if stderrors.Is(err, errors.ErrInvariant) {
		status, err = chess.NotFinished, nil
	}
	if err != nil {
		return old, err
	}
	g.status = status
	return old, nil
}

// Moves returns the moves played so far in short algebraic notation.
func (g *Game) Moves() ([]string, error) {
	history := g.position.History()
	sans := make([]string, 0, len(history))
	for _, m := range history {
		san, err := notation.Encode(m)
		if err != nil {
			return nil, err
		}
		sans = append(sans, san)
	}
	return sans, nil
}
