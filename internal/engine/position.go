// Package engine implements the rules of chess over immutable positions:
// legal move generation, move application, game status and FEN.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Position is a board layout with the colour to move and the history that
// led to it. Apply never modifies its receiver; Put and
// IncreaseDisplacementCount are for authoring positions before play.
type Position struct {
	board  chess.Board
	rules  *RuleManager
	toMove chess.Colour

	// squares and locations are inverse maps of each other.
	squares       map[chess.Coordinate]*chess.Piece
	locations     map[*chess.Piece]chess.Coordinate
	displacements map[*chess.Piece]int

	previous *Position
	lastMove *Move

	plies          int
	halfmoveClock  int
	fullmoveNumber int

	legalMoves []*Move
	legalValid bool

	hash      uint64
	hashValid bool
}

// NewPosition creates an empty position.
func NewPosition(board chess.Board, rules *RuleManager, toMove chess.Colour) *Position {
	if rules == nil {
		rules = DefaultRuleManager()
	}
	return &Position{
		board:          board,
		rules:          rules,
		toMove:         toMove,
		squares:        make(map[chess.Coordinate]*chess.Piece),
		locations:      make(map[*chess.Piece]chess.Coordinate),
		displacements:  make(map[*chess.Piece]int),
		fullmoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position on an 8x8 board.
func NewInitialPosition(rules *RuleManager) *Position {
	p := NewPosition(chess.StandardBoard(), rules, chess.White)

	backRank := []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for col, kind := range backRank {
		p.place(chess.Coordinate{Row: 0, Column: col}, chess.W(kind))
		p.place(chess.Coordinate{Row: 1, Column: col}, chess.W(chess.Pawn))
		p.place(chess.Coordinate{Row: 6, Column: col}, chess.B(chess.Pawn))
		p.place(chess.Coordinate{Row: 7, Column: col}, chess.B(kind))
	}
	return p
}

// place puts a piece on an empty, valid square without cache bookkeeping.
func (p *Position) place(c chess.Coordinate, piece *chess.Piece) {
	p.squares[c] = piece
	p.locations[piece] = c
}

// Board returns the board geometry.
func (p *Position) Board() chess.Board { return p.board }

// Rules returns the rule manager shared by the game.
func (p *Position) Rules() *RuleManager { return p.rules }

// ToMove returns the colour to move.
func (p *Position) ToMove() chess.Colour { return p.toMove }

// Previous returns the position this one was derived from, or nil.
func (p *Position) Previous() *Position { return p.previous }

// LastMove returns the move that produced this position, or nil.
func (p *Position) LastMove() *Move { return p.lastMove }

// Plies returns the number of half-moves applied since the root position.
func (p *Position) Plies() int { return p.plies }

// HalfmoveClock returns the number of half-moves since the last capture or
// pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the FEN full move number.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Get returns the piece on c, or nil for an empty square.
func (p *Position) Get(c chess.Coordinate) (*chess.Piece, error) {
	if !p.board.IsValid(c) {
		return nil, fmt.Errorf("get %v: %w", c, errors.ErrInvalidCoordinate)
	}
	return p.squares[c], nil
}

// GetAt returns the piece on an algebraic square such as "e4".
func (p *Position) GetAt(square string) (*chess.Piece, error) {
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		return nil, err
	}
	return p.Get(c)
}

// Put places piece on c, moving it from its previous square if it was
// already on the board, and returns the piece previously on c. A nil piece
// clears the square.
func (p *Position) Put(c chess.Coordinate, piece *chess.Piece) (*chess.Piece, error) {
	if !p.board.IsValid(c) {
		return nil, fmt.Errorf("put %v: %w", c, errors.ErrInvalidCoordinate)
	}
	if piece != nil {
		if from, ok := p.locations[piece]; ok {
			delete(p.squares, from)
		}
	}
	old := p.squares[c]
	if old != nil {
		delete(p.locations, old)
	}
	if piece == nil {
		delete(p.squares, c)
	} else {
		p.place(c, piece)
	}
	p.invalidate()
	return old, nil
}

// invalidate drops the lazily computed caches.
func (p *Position) invalidate() {
	p.legalMoves = nil
	p.legalValid = false
	p.hashValid = false
}

// Location returns the square of piece, if it is on the board.
func (p *Position) Location(piece *chess.Piece) (chess.Coordinate, bool) {
	c, ok := p.locations[piece]
	return c, ok
}

// FindLocation returns the first square in row-major order holding a piece
// of the given kind and colour.
func (p *Position) FindLocation(kind chess.Kind, colour chess.Colour) (chess.Coordinate, bool) {
	for row := 0; row < p.board.Rows; row++ {
		for col := 0; col < p.board.Columns; col++ {
			c := chess.Coordinate{Row: row, Column: col}
			if piece := p.squares[c]; piece != nil && piece.Kind == kind && piece.Colour == colour {
				return c, true
			}
		}
	}
	return chess.Coordinate{}, false
}

// Pieces returns the squares holding pieces of colour in row-major order.
func (p *Position) Pieces(colour chess.Colour) []chess.Coordinate {
	var result []chess.Coordinate
	for row := 0; row < p.board.Rows; row++ {
		for col := 0; col < p.board.Columns; col++ {
			c := chess.Coordinate{Row: row, Column: col}
			if piece := p.squares[c]; piece != nil && piece.Colour == colour {
				result = append(result, c)
			}
		}
	}
	return result
}

// PieceCount returns the number of pieces on the board.
func (p *Position) PieceCount() int {
	return len(p.squares)
}

// DisplacementCount returns how many times piece has moved.
func (p *Position) DisplacementCount(piece *chess.Piece) int {
	return p.displacements[piece]
}

// IncreaseDisplacementCount marks piece as having moved once more. Setting
// it on a king or rook removes the matching castling rights.
func (p *Position) IncreaseDisplacementCount(piece *chess.Piece) {
	p.displacements[piece]++
	p.invalidate()
}

// Hash returns the Zobrist hash of the layout and colour to move.
func (p *Position) Hash() uint64 {
	if !p.hashValid {
		p.hash = hashing.TableFor(p.board).Hash(p.squares, p.toMove)
		p.hashValid = true
	}
	return p.hash
}

// Equal reports whether two positions have the same colour to move and the
// same kind and colour of piece on every square. History, displacement
// counts and piece identity are ignored.
func (p *Position) Equal(other *Position) bool {
	if p == other {
		return true
	}
	if other == nil || p.board != other.board || p.toMove != other.toMove ||
		len(p.squares) != len(other.squares) {
		return false
	}
	if p.Hash() != other.Hash() {
		return false
	}
	for c, piece := range p.squares {
		o := other.squares[c]
		if o == nil || o.Kind != piece.Kind || o.Colour != piece.Colour {
			return false
		}
	}
	return true
}

// Positions returns the chain of positions from the root to p, oldest first.
func (p *Position) Positions() []*Position {
	var chain []*Position
	for q := p; q != nil; q = q.previous {
		chain = append(chain, q)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// History returns the moves that led from the root to p, oldest first.
func (p *Position) History() []*Move {
	chain := p.Positions()
	moves := make([]*Move, 0, len(chain)-1)
	for _, q := range chain[1:] {
		moves = append(moves, q.lastMove)
	}
	return moves
}

// String renders the layout with White at the bottom, one rank per line.
func (p *Position) String() string {
	buf := make([]byte, 0, (p.board.Columns+1)*p.board.Rows)
	for row := p.board.Rows - 1; row >= 0; row-- {
		for col := 0; col < p.board.Columns; col++ {
			if piece := p.squares[chess.Coordinate{Row: row, Column: col}]; piece != nil {
				buf = append(buf, piece.Symbol())
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
