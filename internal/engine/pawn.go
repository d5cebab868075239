package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PawnRule moves pawns: single and double pushes, diagonal captures, en
// passant and promotion on the far rank.
type PawnRule struct{}

// startRow returns the row pawns of colour start from.
func startRow(b chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return b.Rows - 2
}

// lastRow returns the row on which pawns of colour promote.
func lastRow(b chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return b.Rows - 1
	}
	return 0
}

// AvailableMoves returns the pseudo-legal moves of the pawn on origin.
func (PawnRule) AvailableMoves(p *Position, origin chess.Coordinate, piece *chess.Piece) []*Move {
	var moves []*Move
	dir := piece.Colour.Direction()
	promotes := func(m *Move) *Move {
		m.promotionNeeded = m.primary.To.Row == lastRow(p.board, piece.Colour)
		return m
	}

	// Forward move
	one := origin.To(dir, 0)
	if p.board.IsValid(one) && p.squares[one] == nil {
		moves = append(moves, promotes(newMove(p, piece, origin, one)))

		// Double push from starting rank
		if origin.Row == startRow(p.board, piece.Colour) {
			two := origin.To(2*dir, 0)
			if p.board.IsValid(two) && p.squares[two] == nil {
				moves = append(moves, promotes(newMove(p, piece, origin, two)))
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		target := origin.To(dir, dc)
		if !p.board.IsValid(target) {
			continue
		}
		if occupant := p.squares[target]; occupant != nil {
			if occupant.Colour != piece.Colour {
				moves = append(moves, promotes(newMove(p, piece, origin, target).withCapture(occupant, target)))
			}
			continue
		}
		// En passant
		beside := origin.To(0, dc)
		if victim := p.squares[beside]; p.justAdvancedTwo(victim, beside) && victim.Colour != piece.Colour {
			moves = append(moves, newMove(p, piece, origin, target).withCapture(victim, beside))
		}
	}
	return moves
}

// justAdvancedTwo reports whether the last move was the pawn victim
// advancing two rows from its starting rank to at.
func (p *Position) justAdvancedTwo(victim *chess.Piece, at chess.Coordinate) bool {
	last := p.lastMove
	if victim == nil || victim.Kind != chess.Pawn || last == nil || last.primary.Piece != victim {
		return false
	}
	return last.primary.To == at &&
		last.primary.From.Row == startRow(p.board, victim.Colour) &&
		abs(last.primary.To.Row-last.primary.From.Row) == 2
}

// CanAccess reports whether target is one of the pawn's two forward
// diagonals, regardless of what stands there.
func (PawnRule) CanAccess(p *Position, origin chess.Coordinate, piece *chess.Piece, target chess.Coordinate) bool {
	dir := piece.Colour.Direction()
	return target.Row == origin.Row+dir && abs(target.Column-origin.Column) == 1
}
