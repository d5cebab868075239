package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LegalMoves returns every legal move of the side to move, ordered by the
// origin square in row-major order and then by rule order. The result is
// cached until the position is modified with Put. The only error is an
// invariant violation such as two kings of one colour.
func (p *Position) LegalMoves() ([]*Move, error) {
	if p.legalValid {
		return slices.Clone(p.legalMoves), nil
	}
	if err := p.checkKings(); err != nil {
		return nil, err
	}

	// Without a king every pseudo-legal move is legal.
	_, hasKing := p.KingLocation(p.toMove)

	var legal []*Move
	for _, origin := range p.Pieces(p.toMove) {
		piece := p.squares[origin]
		rule, err := p.rules.DisplacementRule(piece)
		if err != nil {
			return nil, err
		}
		for _, m := range rule.AvailableMoves(p, origin, piece) {
			if !hasKing {
				legal = append(legal, m)
				continue
			}
			ok, err := p.keepsKingSafe(m)
			if err != nil {
				return nil, err
			}
			if ok {
				legal = append(legal, m)
			}
		}
	}

	p.legalMoves = legal
	p.legalValid = true
	return slices.Clone(legal), nil
}

// LegalMovesFor returns the legal moves of one piece.
func (p *Position) LegalMovesFor(piece *chess.Piece) ([]*Move, error) {
	all, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}
	var moves []*Move
	for _, m := range all {
		if m.primary.Piece == piece {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() (bool, error) {
	moves, err := p.LegalMoves()
	return len(moves) > 0, err
}

// keepsKingSafe plays a copy of m and checks the mover's king is not left
// reachable.
func (p *Position) keepsKingSafe(m *Move) (bool, error) {
	trial := m
	if m.promotionNeeded {
		trial = m.WithPromotion(chess.Queen)
	}
	next, err := p.Apply(trial)
	if err != nil {
		return false, err
	}
	return !next.IsInCheck(p.toMove), nil
}

// checkKings verifies that no colour has more than one king.
func (p *Position) checkKings() error {
	kings := map[chess.Colour]int{}
	for piece := range p.locations {
		if piece.Kind == chess.King {
			kings[piece.Colour]++
		}
	}
	for colour, n := range kings {
		if n > 1 {
			return fmt.Errorf("%d %v kings: %w", n, colour, errors.ErrInvariant)
		}
	}
	return nil
}
