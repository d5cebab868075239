package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed is fixed so hashes are reproducible across runs.
const zobristSeed = 0xC0DE

const pieceVariants = 12 // six kinds times two colours

// ZobristTable holds random keys for every (square, kind, colour) triple of
// one board geometry plus a key for Black to move.
type ZobristTable struct {
	board  chess.Board
	pieces [][pieceVariants]uint64
	side   uint64
}

// NewZobristTable creates the key table for a board geometry.
func NewZobristTable(board chess.Board) *ZobristTable {
	rnd := rand.New(rand.NewSource(zobristSeed))

	z := &ZobristTable{
		board:  board,
		pieces: make([][pieceVariants]uint64, board.Squares()),
	}
	for sq := range z.pieces {
		for v := 0; v < pieceVariants; v++ {
			z.pieces[sq][v] = rnd.Uint64()
		}
	}
	z.side = rnd.Uint64()
	return z
}

// Board returns the geometry the table was built for.
func (z *ZobristTable) Board() chess.Board {
	return z.board
}

// PieceKey returns the key of a piece standing on c, or 0 off the board.
func (z *ZobristTable) PieceKey(c chess.Coordinate, p *chess.Piece) uint64 {
	if p == nil || !z.board.IsValid(c) {
		return 0
	}
	return z.pieces[z.board.Index(c)][int(p.Kind)*2+int(p.Colour)]
}

// SideKey returns the key folded in when Black is to move.
func (z *ZobristTable) SideKey(toMove chess.Colour) uint64 {
	if toMove == chess.Black {
		return z.side
	}
	return 0
}

// Hash computes the layout hash of a square table with the side to move.
// Only kind and colour of each piece contribute, never its identity.
func (z *ZobristTable) Hash(squares map[chess.Coordinate]*chess.Piece, toMove chess.Colour) uint64 {
	key := z.SideKey(toMove)
	for c, p := range squares {
		key ^= z.PieceKey(c, p)
	}
	return key
}
