package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanBeReached reports whether any piece of colour could move to or capture
// on target, ignoring whether that move would expose its own king.
func (p *Position) CanBeReached(target chess.Coordinate, colour chess.Colour) bool {
	for piece, origin := range p.locations {
		if piece.Colour != colour {
			continue
		}
		if p.canAccess(piece, origin, target) {
			return true
		}
	}
	return false
}

// CanBeReachedBy reports whether a specific piece could move to or capture
// on target.
func (p *Position) CanBeReachedBy(target chess.Coordinate, piece *chess.Piece) bool {
	origin, ok := p.locations[piece]
	if !ok {
		return false
	}
	return p.canAccess(piece, origin, target)
}

func (p *Position) canAccess(piece *chess.Piece, origin, target chess.Coordinate) bool {
	rule, err := p.rules.DisplacementRule(piece)
	if err != nil {
		return false
	}
	return rule.CanAccess(p, origin, piece, target)
}

// KingLocation returns the square of the king of colour.
func (p *Position) KingLocation(colour chess.Colour) (chess.Coordinate, bool) {
	return p.FindLocation(chess.King, colour)
}

// IsInCheck returns true if the given colour's king can be reached by the
// opponent. A side without a king is never in check.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	king, ok := p.KingLocation(colour)
	if !ok {
		return false
	}
	return p.CanBeReached(king, colour.Opposite())
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.toMove)
}
