package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// KingRule steps one square in any direction onto squares the opponent
// cannot reach, and castles with an unmoved rook.
type KingRule struct {
	step *StepRule
}

// NewKingRule creates the king rule.
func NewKingRule() *KingRule {
	return &KingRule{step: NewSteppingRule(diagonalDirs, straightDirs)}
}

// AvailableMoves returns the pseudo-legal king moves including castling.
func (r *KingRule) AvailableMoves(p *Position, origin chess.Coordinate, piece *chess.Piece) []*Move {
	opponent := piece.Colour.Opposite()

	var moves []*Move
	for _, m := range r.step.AvailableMoves(p, origin, piece) {
		if !p.CanBeReached(m.primary.To, opponent) {
			moves = append(moves, m)
		}
	}

	if p.DisplacementCount(piece) != 0 {
		return moves
	}
	// King-side first, then queen-side
	for _, rookCol := range []int{p.board.Columns - 1, 0} {
		if m := castle(p, origin, piece, rookCol); m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// castle returns the castling move towards the rook on rookCol of the
// king's row, or nil when castling that way is not possible.
func castle(p *Position, origin chess.Coordinate, king *chess.Piece, rookCol int) *Move {
	rookAt := chess.Coordinate{Row: origin.Row, Column: rookCol}
	rook := p.squares[rookAt]
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || p.DisplacementCount(rook) != 0 {
		return nil
	}

	dir := sign(rookCol - origin.Column)
	if abs(rookCol-origin.Column) < 3 {
		return nil
	}
	for col := origin.Column + dir; col != rookCol; col += dir {
		if p.squares[chess.Coordinate{Row: origin.Row, Column: col}] != nil {
			return nil
		}
	}

	crossed := origin.To(0, dir)
	destination := origin.To(0, 2*dir)
	opponent := king.Colour.Opposite()
	for _, c := range []chess.Coordinate{origin, crossed, destination} {
		if p.CanBeReached(c, opponent) {
			return nil
		}
	}

	return newMove(p, king, origin, destination).
		withLinked(chess.Displacement{Piece: rook, From: rookAt, To: crossed})
}

// CanAccess reports whether the king steps onto target. Castling never
// attacks a square.
func (r *KingRule) CanAccess(p *Position, origin chess.Coordinate, piece *chess.Piece, target chess.Coordinate) bool {
	return r.step.CanAccess(p, origin, piece, target)
}
