package engine

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply plays m and returns the resulting position. The receiver is left
// unchanged. A move that reaches the far rank must carry a promotion choice
// and any other move must not.
func (p *Position) Apply(m *Move) (*Position, error) {
	if m == nil || m.before != p {
		return nil, fmt.Errorf("apply: move does not belong to this position: %w", errors.ErrInvalidArgument)
	}
	if m.promotionNeeded && !m.hasPromotion {
		return nil, fmt.Errorf("apply %v: promotion choice missing: %w", m.primary, errors.ErrIllegalState)
	}
	if !m.promotionNeeded && m.hasPromotion {
		return nil, fmt.Errorf("apply %v: promotion not allowed: %w", m.primary, errors.ErrIllegalState)
	}
	if m.hasPromotion && (m.promotion == chess.Pawn || m.promotion == chess.King) {
		return nil, fmt.Errorf("apply %v: cannot promote to %v: %w", m.primary, m.promotion, errors.ErrInvalidArgument)
	}

	next := &Position{
		board:          p.board,
		rules:          p.rules,
		toMove:         p.toMove.Opposite(),
		squares:        maps.Clone(p.squares),
		locations:      maps.Clone(p.locations),
		displacements:  maps.Clone(p.displacements),
		previous:       p,
		plies:          p.plies + 1,
		halfmoveClock:  p.halfmoveClock + 1,
		fullmoveNumber: p.fullmoveNumber,
	}
	if p.toMove == chess.Black {
		next.fullmoveNumber++
	}

	if m.captured != nil {
		if next.squares[m.capturedAt] == m.captured {
			delete(next.squares, m.capturedAt)
		}
		delete(next.locations, m.captured)
		next.halfmoveClock = 0
	}
	if m.primary.Piece.Kind == chess.Pawn {
		next.halfmoveClock = 0
	}

	displaced := append([]chess.Displacement{m.primary}, m.linked...)
	for _, d := range displaced {
		delete(next.squares, d.From)
	}
	for _, d := range displaced {
		next.squares[d.To] = d.Piece
		next.locations[d.Piece] = d.To
		next.displacements[d.Piece]++
	}

	if m.hasPromotion {
		pawn := m.primary.Piece
		promoted := chess.NewPiece(m.promotion, pawn.Colour)
		delete(next.locations, pawn)
		next.place(m.primary.To, promoted)
		next.displacements[promoted] = next.displacements[pawn]
	}

	recorded := m.copy()
	recorded.after = next
	next.lastMove = recorded
	return next, nil
}
