// Package chess provides the value types shared by the rules engine:
// colours, piece kinds, pieces, board geometry, coordinates, displacements
// and game status.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind in ascending order.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for the kind ('P' for pawns).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter parses an uppercase piece letter.
// Only K, Q, R, B, N and P are recognised.
func KindFromLetter(letter byte) (Kind, error) {
	switch letter {
	case 'P':
		return Pawn, nil
	case 'N':
		return Knight, nil
	case 'B':
		return Bishop, nil
	case 'R':
		return Rook, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	}
	return Pawn, fmt.Errorf("piece letter %q: %w", letter, errors.ErrInvalidArgument)
}

// Piece is a single piece on the board. Pieces are compared by identity:
// two pieces of the same kind and colour are still different pieces, so
// positions always hold *Piece values.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NewPiece allocates a new piece.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// W creates a new white piece.
func W(kind Kind) *Piece {
	return NewPiece(kind, White)
}

// B creates a new black piece.
func B(kind Kind) *Piece {
	return NewPiece(kind, Black)
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	if p == nil {
		return "none"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromSymbol creates a new piece from a FEN letter.
func PieceFromSymbol(symbol byte) (*Piece, error) {
	colour := White
	if symbol >= 'a' && symbol <= 'z' {
		colour = Black
		symbol -= 'a' - 'A'
	}
	kind, err := KindFromLetter(symbol)
	if err != nil {
		return nil, err
	}
	return NewPiece(kind, colour), nil
}
