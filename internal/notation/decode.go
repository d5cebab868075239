package notation

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// isCol returns true if c is a file letter of board.
func isCol(board chess.Board, c byte) bool {
	return c >= chess.ColBase && int(c-chess.ColBase) < board.Columns
}

// isRank returns true if c is a rank digit of board.
func isRank(board chess.Board, c byte) bool {
	return c >= chess.RankBase && int(c-chess.RankBase) < board.Rows
}

// isPiece returns true if c is an uppercase piece letter.
func isPiece(c byte) bool {
	_, err := chess.KindFromLetter(c)
	return err == nil
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == Check || c == Checkmate
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// decoded holds the parts of a SAN string before it is matched against the
// legal moves.
type decoded struct {
	kind        chess.Kind
	destination chess.Coordinate
	capture     bool

	fromCol int // -1 when not given
	fromRow int // -1 when not given

	promotion    chess.Kind
	hasPromotion bool
}

// Decode returns the legal move of p written as san. Captures without an
// "x" are accepted; an "x" requires the move to capture. Trailing check
// and mate indicators are ignored. The returned move is a copy carrying the
// promotion choice, if any; a move reaching the far rank without a choice
// is returned as is and fails when applied.
func Decode(p *engine.Position, san string) (*engine.Move, error) {
	text := strings.TrimSpace(san)
	for len(text) > 0 && isCheck(text[len(text)-1]) {
		text = text[:len(text)-1]
	}
	if text == "" {
		return nil, errors.NewNotationError(san, errors.ErrMalformedMove, "empty move")
	}

	moves, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}

	if isCastlingChar(text[0]) {
		return decodeCastling(p, moves, san, text)
	}

	d, err := scan(p.Board(), san, text)
	if err != nil {
		return nil, err
	}

	candidates := filterMoves(moves, func(m *engine.Move) bool {
		return m.Piece().Kind == d.kind && m.To() == d.destination && !m.IsCastling() &&
			(!d.capture || m.IsCapture())
	})
	if len(candidates) == 0 {
		return nil, errors.NewNotationError(san, errors.ErrNotLegalMove, "")
	}
	if len(candidates) > 1 {
		if d.fromCol < 0 && d.fromRow < 0 {
			return nil, errors.NewNotationError(san, errors.ErrAmbiguousMove,
				"%d possible moves for %v", len(candidates), p.ToMove())
		}
	}

	filtered := filterMoves(candidates, func(m *engine.Move) bool {
		return (d.fromCol < 0 || m.From().Column == d.fromCol) &&
			(d.fromRow < 0 || m.From().Row == d.fromRow)
	})
	if len(filtered) == 0 {
		return nil, errors.NewNotationError(san, errors.ErrNotLegalMove,
			"filtered out of %d possible moves", len(candidates))
	}
	if len(filtered) > 1 {
		return nil, errors.NewNotationError(san, errors.ErrStillAmbiguousMove,
			"%d possible moves for %v", len(filtered), p.ToMove())
	}

	move := filtered[0]
	if !d.hasPromotion {
		return move, nil
	}
	if move.Piece().Kind != chess.Pawn {
		return nil, errors.NewNotationError(san, errors.ErrInvalidPromotion, "not a pawn move")
	}
	if d.promotion == chess.Pawn || d.promotion == chess.King {
		return nil, errors.NewNotationError(san, errors.ErrInvalidPromotion, "promotes to a %v", d.promotion)
	}
	return move.WithPromotion(d.promotion), nil
}

// scan splits a non-castling SAN string into its parts.
func scan(board chess.Board, san, text string) (*decoded, error) {
	d := &decoded{kind: chess.Pawn, fromCol: -1, fromRow: -1}
	pos := 0

	// Get current character helper
	currentChar := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}

	advance := func() {
		if pos < len(text) {
			pos++
		}
	}

	malformed := func(detail string) error {
		return errors.NewNotationError(san, errors.ErrMalformedMove, detail)
	}

	if isPiece(currentChar()) {
		d.kind, _ = chess.KindFromLetter(currentChar())
		advance()
	}

	// Collect origin and destination characters. The capture separator may
	// only stand right before the destination square, and wins over a file
	// letter on boards wide enough to have an x-file.
	var squareChars []byte
	captureAt := -1
	for {
		c := currentChar()
		if c == CaptureSeparator && captureAt < 0 {
			captureAt = len(squareChars)
			advance()
		} else if isCol(board, c) || isRank(board, c) {
			squareChars = append(squareChars, c)
			advance()
		} else {
			break
		}
	}

	n := len(squareChars)
	if n < 2 || !isCol(board, squareChars[n-2]) || !isRank(board, squareChars[n-1]) {
		return nil, malformed("no destination square")
	}
	destination, err := chess.ParseCoordinate(string(squareChars[n-2:]))
	if err != nil || !board.IsValid(destination) {
		return nil, malformed("destination off the board")
	}
	d.destination = destination

	if captureAt >= 0 {
		if captureAt != n-2 {
			return nil, malformed("misplaced capture separator")
		}
		d.capture = true
	}

	// Disambiguation: file, rank, or file then rank
	switch origin := squareChars[:n-2]; {
	case len(origin) == 0:
	case len(origin) == 1 && isCol(board, origin[0]):
		d.fromCol = int(origin[0] - chess.ColBase)
	case len(origin) == 1 && isRank(board, origin[0]):
		d.fromRow = int(origin[0] - chess.RankBase)
	case len(origin) == 2 && isCol(board, origin[0]) && isRank(board, origin[1]):
		d.fromCol = int(origin[0] - chess.ColBase)
		d.fromRow = int(origin[1] - chess.RankBase)
	default:
		return nil, malformed("invalid disambiguation")
	}

	// Look for promotions
	if currentChar() == PromotionSeparator {
		advance()
		if !isPiece(currentChar()) {
			return nil, malformed("missing promotion piece")
		}
	}
	if isPiece(currentChar()) {
		d.promotion, _ = chess.KindFromLetter(currentChar())
		d.hasPromotion = true
		advance()
	}

	if pos != len(text) {
		return nil, malformed("unexpected trailing characters")
	}
	return d, nil
}

// decodeCastling matches "O-O" and "O-O-O" (or the zero forms) against the
// legal castling moves.
func decodeCastling(p *engine.Position, moves []*engine.Move, san, text string) (*engine.Move, error) {
	normalized := strings.ReplaceAll(text, "0", "O")
	var queenSide bool
	switch normalized {
	case KingSideCastling:
	case QueenSideCastling:
		queenSide = true
	default:
		return nil, errors.NewNotationError(san, errors.ErrMalformedMove, "invalid castling")
	}

	columns := p.Board().Columns
	i := slices.IndexFunc(moves, func(m *engine.Move) bool {
		if !m.IsCastling() {
			return false
		}
		if queenSide {
			return m.To().Column == 2
		}
		return m.To().Column == columns-2
	})
	if i < 0 {
		return nil, errors.NewNotationError(san, errors.ErrNotLegalMove, "")
	}
	return moves[i], nil
}

// filterMoves returns the moves satisfying keep, in order.
func filterMoves(moves []*engine.Move, keep func(*engine.Move) bool) []*engine.Move {
	var result []*engine.Move
	for _, m := range moves {
		if keep(m) {
			result = append(result, m)
		}
	}
	return result
}
