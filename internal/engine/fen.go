package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. The board size
// follows the placement field. Missing castling rights mark the matching
// rook, or the king when both are gone, as already moved. An en passant
// target is recreated as a real double pawn push so that the pawn rule sees
// it in the history.
func NewPositionFromFEN(fen string, rules *RuleManager) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks, columns, err := parsePlacement(parts[0])
	if err != nil {
		return nil, err
	}
	board, err := chess.NewBoard(len(ranks), columns)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	p := NewPosition(board, rules, toMove)
	for i, rank := range ranks {
		row := board.Rows - 1 - i
		for col, piece := range rank {
			if piece != nil {
				p.place(chess.Coordinate{Row: row, Column: col}, piece)
			}
		}
	}

	castling := "-"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	if err := applyCastlingRights(p, castling); err != nil {
		return nil, err
	}

	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}
	p.halfmoveClock = halfmove
	p.fullmoveNumber = fullmove

	if len(parts) >= 4 && parts[3] != "-" {
		p, err = replayDoublePush(p, parts[3])
		if err != nil {
			return nil, err
		}
		p.halfmoveClock = halfmove
		p.fullmoveNumber = fullmove
	}
	return p, nil
}

// parsePlacement parses the piece placement field into ranks, top rank first.
func parsePlacement(placement string) ([][]*chess.Piece, int, error) {
	fields := strings.Split(placement, "/")
	ranks := make([][]*chess.Piece, 0, len(fields))
	columns := -1

	for _, field := range fields {
		var rank []*chess.Piece
		for i := 0; i < len(field); {
			c := field[i]
			if c >= '0' && c <= '9' {
				j := i
				for j < len(field) && field[j] >= '0' && field[j] <= '9' {
					j++
				}
				n, _ := strconv.Atoi(field[i:j])
				if n == 0 {
					return nil, 0, fmt.Errorf("empty run in %q: %w", field, errors.ErrInvalidFEN)
				}
				rank = append(rank, make([]*chess.Piece, n)...)
				i = j
				continue
			}
			piece, err := chess.PieceFromSymbol(c)
			if err != nil {
				return nil, 0, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			rank = append(rank, piece)
			i++
		}
		if columns >= 0 && len(rank) != columns {
			return nil, 0, fmt.Errorf("rank %q has %d squares, want %d: %w",
				field, len(rank), columns, errors.ErrInvalidFEN)
		}
		columns = len(rank)
		ranks = append(ranks, rank)
	}
	if columns <= 0 {
		return nil, 0, fmt.Errorf("empty placement: %w", errors.ErrInvalidFEN)
	}
	return ranks, columns, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// homeRow returns the back rank of colour.
func homeRow(b chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return b.Rows - 1
}

// applyCastlingRights turns the castling field into displacement counts.
func applyCastlingRights(p *Position, field string) error {
	rights := map[byte]bool{}
	if field != "-" {
		for i := 0; i < len(field); i++ {
			switch c := field[i]; c {
			case 'K', 'Q', 'k', 'q':
				rights[c] = true
			default:
				return fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range chess.Colours {
		kingSide, queenSide := byte('K'), byte('Q')
		if colour == chess.Black {
			kingSide, queenSide = 'k', 'q'
		}
		at, ok := p.KingLocation(colour)
		if !ok {
			continue
		}
		king := p.squares[at]
		if at.Row != homeRow(p.board, colour) || (!rights[kingSide] && !rights[queenSide]) {
			p.displacements[king] = 1
			continue
		}
		if !rights[kingSide] {
			markRookMoved(p, at.Row, p.board.Columns-1, colour)
		}
		if !rights[queenSide] {
			markRookMoved(p, at.Row, 0, colour)
		}
	}
	return nil
}

func markRookMoved(p *Position, row, col int, colour chess.Colour) {
	rook := p.squares[chess.Coordinate{Row: row, Column: col}]
	if rook != nil && rook.Kind == chess.Rook && rook.Colour == colour {
		p.displacements[rook] = 1
	}
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (int, int, error) {
	halfmove, fullmove := 0, 1
	var err error
	if len(parts) >= 5 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return 0, 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) >= 6 {
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return 0, 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
	}
	return halfmove, fullmove, nil
}

// replayDoublePush rebuilds p as the result of the double pawn push that
// created the en passant target square.
func replayDoublePush(p *Position, target string) (*Position, error) {
	ep, err := chess.ParseCoordinate(target)
	if err != nil || !p.board.IsValid(ep) {
		return nil, fmt.Errorf("invalid en passant square: %s: %w", target, errors.ErrInvalidFEN)
	}

	mover := p.toMove.Opposite()
	dir := mover.Direction()
	landing := ep.To(dir, 0)
	origin := ep.To(-dir, 0)

	pawn := p.squares[landing]
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover ||
		origin.Row != startRow(p.board, mover) ||
		p.squares[ep] != nil || p.squares[origin] != nil {
		return nil, fmt.Errorf("no double push matches en passant square %s: %w", target, errors.ErrInvalidFEN)
	}

	root := NewPosition(p.board, p.rules, mover)
	for c, piece := range p.squares {
		if piece != pawn {
			root.place(c, piece)
		}
	}
	root.place(origin, pawn)
	for piece, n := range p.displacements {
		root.displacements[piece] = n
	}
	root.fullmoveNumber = p.fullmoveNumber
	if mover == chess.Black {
		root.fullmoveNumber--
	}

	return root.Apply(newMove(root, pawn, origin, landing))
}

// FEN renders the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	p.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if p.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	p.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	p.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (p *Position) writePiecePositions(sb *strings.Builder) {
	for row := p.board.Rows - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < p.board.Columns; col++ {
			piece := p.squares[chess.Coordinate{Row: row, Column: col}]
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// CastlingRights reports whether colour keeps the right to castle towards
// the rook on the last column (king-side) and on column 0 (queen-side).
func (p *Position) CastlingRights(colour chess.Colour) (kingSide, queenSide bool) {
	at, ok := p.KingLocation(colour)
	if !ok || at.Row != homeRow(p.board, colour) || p.displacements[p.squares[at]] != 0 {
		return false, false
	}
	unmovedRook := func(col int) bool {
		rook := p.squares[chess.Coordinate{Row: at.Row, Column: col}]
		return rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && p.displacements[rook] == 0
	}
	return unmovedRook(p.board.Columns - 1), unmovedRook(0)
}

// writeCastlingRights writes the castling availability to the builder.
func (p *Position) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, colour := range chess.Colours {
		kingSide, queenSide := p.CastlingRights(colour)
		letters := "KQ"
		if colour == chess.Black {
			letters = "kq"
		}
		if kingSide {
			sb.WriteByte(letters[0])
			hasCastling = true
		}
		if queenSide {
			sb.WriteByte(letters[1])
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// EnPassantTarget returns the square passed over by a double pawn push made
// on the last move.
func (p *Position) EnPassantTarget() (chess.Coordinate, bool) {
	last := p.lastMove
	if last == nil || last.primary.Piece.Kind != chess.Pawn {
		return chess.Coordinate{}, false
	}
	from, to := last.primary.From, last.primary.To
	if from.Column != to.Column || abs(to.Row-from.Row) != 2 {
		return chess.Coordinate{}, false
	}
	return chess.Coordinate{Row: (from.Row + to.Row) / 2, Column: from.Column}, true
}

// writeEnPassant writes the en passant target square to the builder.
func (p *Position) writeEnPassant(sb *strings.Builder) {
	if ep, ok := p.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
}
