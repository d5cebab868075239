package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// unlimited marks a direction a piece slides along until blocked.
const unlimited = -1

// direction is a (row, column) step with the maximum number of steps.
type direction struct {
	dRow, dCol int
	limit      int
}

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightDirs   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

func directions(limit int, sets ...[][2]int) []direction {
	var dirs []direction
	for _, set := range sets {
		for _, d := range set {
			dirs = append(dirs, direction{dRow: d[0], dCol: d[1], limit: limit})
		}
	}
	return dirs
}

// StepRule moves a piece along fixed directions, either one step at a time
// up to a limit or sliding until blocked. Knights, bishops, rooks and queens
// use it directly and the king builds on it.
type StepRule struct {
	dirs []direction
}

// NewSlidingRule creates a rule that slides along the given directions.
func NewSlidingRule(sets ...[][2]int) *StepRule {
	return &StepRule{dirs: directions(unlimited, sets...)}
}

// NewSteppingRule creates a rule that moves exactly one step along the
// given directions.
func NewSteppingRule(sets ...[][2]int) *StepRule {
	return &StepRule{dirs: directions(1, sets...)}
}

// AvailableMoves returns the pseudo-legal moves of piece standing on origin.
func (r *StepRule) AvailableMoves(p *Position, origin chess.Coordinate, piece *chess.Piece) []*Move {
	var moves []*Move
	for _, d := range r.dirs {
		c := origin
		for n := 0; d.limit == unlimited || n < d.limit; n++ {
			c = c.To(d.dRow, d.dCol)
			if !p.board.IsValid(c) {
				break
			}
			occupant := p.squares[c]
			if occupant == nil {
				moves = append(moves, newMove(p, piece, origin, c))
				continue
			}
			if occupant.Colour != piece.Colour {
				moves = append(moves, newMove(p, piece, origin, c).withCapture(occupant, c))
			}
			break // Blocked
		}
	}
	return moves
}

// CanAccess reports whether piece on origin reaches target with every
// intermediate square empty. The occupant of target does not matter.
func (r *StepRule) CanAccess(p *Position, origin chess.Coordinate, piece *chess.Piece, target chess.Coordinate) bool {
	for _, d := range r.dirs {
		c := origin
		for n := 0; d.limit == unlimited || n < d.limit; n++ {
			c = c.To(d.dRow, d.dCol)
			if !p.board.IsValid(c) {
				break
			}
			if c == target {
				return true
			}
			if p.squares[c] != nil {
				break // Blocked
			}
		}
	}
	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
