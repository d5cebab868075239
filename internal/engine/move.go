package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Move is one legal transition out of a position: a primary displacement,
// any linked displacements (the rook when castling), the captured piece if
// any and the promotion choice.
//
// Moves handed out by Position.LegalMoves are shared with the position's
// cache and are never modified; WithPromotion returns a copy.
type Move struct {
	before *Position
	after  *Position

	primary chess.Displacement
	linked  []chess.Displacement

	captured   *chess.Piece
	capturedAt chess.Coordinate

	promotion       chess.Kind
	hasPromotion    bool
	promotionNeeded bool
}

// newMove creates a quiet move of piece from origin to destination.
func newMove(before *Position, piece *chess.Piece, from, to chess.Coordinate) *Move {
	return &Move{
		before:  before,
		primary: chess.Displacement{Piece: piece, From: from, To: to},
	}
}

// withCapture marks the move as capturing victim standing on at.
func (m *Move) withCapture(victim *chess.Piece, at chess.Coordinate) *Move {
	m.captured = victim
	m.capturedAt = at
	return m
}

// withLinked adds a displacement performed together with the primary one.
func (m *Move) withLinked(d chess.Displacement) *Move {
	m.linked = append(m.linked, d)
	return m
}

// copy returns a shallow copy that shares no mutable state with m.
func (m *Move) copy() *Move {
	c := *m
	if m.linked != nil {
		c.linked = append([]chess.Displacement(nil), m.linked...)
	}
	return &c
}

// WithPromotion returns a copy of the move carrying the promotion choice.
func (m *Move) WithPromotion(kind chess.Kind) *Move {
	c := m.copy()
	c.promotion = kind
	c.hasPromotion = true
	c.after = nil
	return c
}

// Before returns the position the move is played from.
func (m *Move) Before() *Position { return m.before }

// After returns the resulting position. It is only set on the move recorded
// as LastMove of that position.
func (m *Move) After() *Position { return m.after }

// Displacement returns the primary displacement.
func (m *Move) Displacement() chess.Displacement { return m.primary }

// Piece returns the moving piece.
func (m *Move) Piece() *chess.Piece { return m.primary.Piece }

// From returns the origin of the moving piece.
func (m *Move) From() chess.Coordinate { return m.primary.From }

// To returns the destination of the moving piece.
func (m *Move) To() chess.Coordinate { return m.primary.To }

// Linked returns the displacements performed together with the primary one.
func (m *Move) Linked() []chess.Displacement {
	return append([]chess.Displacement(nil), m.linked...)
}

// IsCastling reports whether the move moves a king together with a rook.
func (m *Move) IsCastling() bool {
	return m.primary.Piece.Kind == chess.King && len(m.linked) == 1
}

// Captured returns the captured piece, or nil.
func (m *Move) Captured() *chess.Piece { return m.captured }

// CapturedAt returns the square of the captured piece. It differs from the
// destination for en passant captures.
func (m *Move) CapturedAt() chess.Coordinate { return m.capturedAt }

// IsCapture reports whether the move captures a piece.
func (m *Move) IsCapture() bool { return m.captured != nil }

// IsEnPassant reports whether the captured piece stood off the destination.
func (m *Move) IsEnPassant() bool {
	return m.captured != nil && m.capturedAt != m.primary.To
}

// PromotionNeeded reports whether the moving pawn reaches the far rank.
func (m *Move) PromotionNeeded() bool { return m.promotionNeeded }

// Promotion returns the promotion choice, if one was made.
func (m *Move) Promotion() (chess.Kind, bool) { return m.promotion, m.hasPromotion }

// Equal reports whether two moves perform the same displacements with the
// same promotion choice.
func (m *Move) Equal(other *Move) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.primary != other.primary || m.captured != other.captured ||
		m.hasPromotion != other.hasPromotion || m.promotion != other.promotion ||
		len(m.linked) != len(other.linked) {
		return false
	}
	for i := range m.linked {
		if m.linked[i] != other.linked[i] {
			return false
		}
	}
	return true
}

// UCI renders the move in long algebraic form, e.g. "e7e8q".
func (m *Move) UCI() string {
	s := m.primary.String()
	if m.hasPromotion {
		s += strings.ToLower(string(m.promotion.Letter()))
	}
	return s
}

// String returns the long algebraic form.
func (m *Move) String() string {
	return m.UCI()
}
