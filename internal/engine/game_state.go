package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(p *Position) bool {
	has, err := p.HasLegalMoves()
	return err == nil && !has && p.InCheck()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(p *Position) bool {
	has, err := p.HasLegalMoves()
	return err == nil && !has && !p.InCheck()
}

// Status adjudicates the position with its own rule manager.
func (p *Position) Status() (chess.Status, error) {
	return p.rules.EndgameStatus(p)
}
