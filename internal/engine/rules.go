package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DisplacementRule generates the moves of one kind of piece.
type DisplacementRule interface {
	// AvailableMoves returns the pseudo-legal moves of piece on origin.
	AvailableMoves(p *Position, origin chess.Coordinate, piece *chess.Piece) []*Move
	// CanAccess reports whether piece on origin attacks or reaches target.
	CanAccess(p *Position, origin chess.Coordinate, piece *chess.Piece, target chess.Coordinate) bool
}

// RuleManager maps pieces to their movement rules and adjudicates the
// status of positions. It is shared by every position of a game.
type RuleManager struct {
	cfg config.RuleConfig

	pawn   DisplacementRule
	knight DisplacementRule
	bishop DisplacementRule
	rook   DisplacementRule
	queen  DisplacementRule
	king   DisplacementRule
}

// NewRuleManager creates a rule manager with the given limits. A nil
// configuration uses the standard limits.
func NewRuleManager(cfg *config.RuleConfig) *RuleManager {
	if cfg == nil {
		cfg = config.NewRuleConfig()
	}
	return &RuleManager{
		cfg:    *cfg,
		pawn:   PawnRule{},
		knight: NewSteppingRule(knightDirs),
		bishop: NewSlidingRule(diagonalDirs),
		rook:   NewSlidingRule(straightDirs),
		queen:  NewSlidingRule(diagonalDirs, straightDirs),
		king:   NewKingRule(),
	}
}

var defaultRules = NewRuleManager(nil)

// DefaultRuleManager returns a shared rule manager with the standard limits.
func DefaultRuleManager() *RuleManager {
	return defaultRules
}

// Config returns the limits in effect.
func (r *RuleManager) Config() config.RuleConfig {
	return r.cfg
}

// DisplacementRule returns the movement rule of piece.
func (r *RuleManager) DisplacementRule(piece *chess.Piece) (DisplacementRule, error) {
	if piece == nil {
		return nil, fmt.Errorf("no piece: %w", errors.ErrInvalidArgument)
	}
	switch piece.Kind {
	case chess.Pawn:
		return r.pawn, nil
	case chess.Knight:
		return r.knight, nil
	case chess.Bishop:
		return r.bishop, nil
	case chess.Rook:
		return r.rook, nil
	case chess.Queen:
		return r.queen, nil
	case chess.King:
		return r.king, nil
	}
	return nil, fmt.Errorf("piece kind %d: %w", piece.Kind, errors.ErrInvalidArgument)
}

// EndgameStatus adjudicates p. Checks run in a fixed order: no legal moves
// (checkmate or stalemate), dead position, repetition, then the no-capture
// limit.
func (r *RuleManager) EndgameStatus(p *Position) (chess.Status, error) {
	moves, err := p.LegalMoves()
	if err != nil {
		return chess.NotFinished, err
	}
	if len(moves) == 0 {
		king, ok := p.KingLocation(p.toMove)
		if !ok {
			return chess.NotFinished, fmt.Errorf("%v has no moves and no king: %w", p.toMove, errors.ErrInvariant)
		}
		if p.CanBeReached(king, p.toMove.Opposite()) {
			return chess.WinFor(p.toMove.Opposite()), nil
		}
		return chess.DrawStalemate, nil
	}

	if HasInsufficientMaterial(p) {
		return chess.Draw, nil
	}
	if r.IsRepetition(p) {
		return chess.DrawRepetition, nil
	}
	if p.halfmoveClock >= r.cfg.NoCapturePlyLimit() {
		return chess.DrawNoCapture, nil
	}
	return chess.NotFinished, nil
}

// IsRepetition reports whether any position of the history leading to p
// occurred RepetitionLimit times.
func (r *RuleManager) IsRepetition(p *Position) bool {
	counts := hashing.NewCounter(func(a, b *Position) bool { return a.Equal(b) })
	for _, q := range p.Positions() {
		if counts.Add(q.Hash(), q) >= r.cfg.RepetitionLimit {
			return true
		}
	}
	return false
}

// RepetitionCount returns how many times the layout of p occurred in its
// history, p included.
func RepetitionCount(p *Position) int {
	n := 0
	for q := p; q != nil; q = q.previous {
		if q.Equal(p) {
			n++
		}
	}
	return n
}

// HasInsufficientMaterial returns true if neither side can ever mate:
// bare kings, or a bare king against a king with one bishop or knight.
func HasInsufficientMaterial(p *Position) bool {
	var minor, other [2]int
	for piece := range p.locations {
		switch piece.Kind {
		case chess.King:
		case chess.Bishop, chess.Knight:
			minor[piece.Colour]++
		default:
			other[piece.Colour]++
		}
	}
	if other[chess.White] > 0 || other[chess.Black] > 0 {
		return false
	}
	return minor[chess.White]+minor[chess.Black] <= 1
}
