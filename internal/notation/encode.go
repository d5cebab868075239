// Package notation converts moves to and from short algebraic notation (SAN).
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SAN symbols.
const (
	CaptureSeparator   = 'x'
	PromotionSeparator = '='
	Check              = '+'
	Checkmate          = '#'
	KingSideCastling   = "O-O"
	QueenSideCastling  = "O-O-O"
)

// Encode renders m in short algebraic notation, e.g. "Nbxd7", "exd6",
// "a8=Q+" or "O-O". A move that needs a promotion must carry its choice.
func Encode(m *engine.Move) (string, error) {
	if m == nil || m.Before() == nil {
		return "", fmt.Errorf("encode: move has no position: %w", errors.ErrInvalidArgument)
	}
	before := m.Before()
	if _, ok := m.Promotion(); m.PromotionNeeded() && !ok {
		return "", fmt.Errorf("encode %v: promotion choice missing: %w", m, errors.ErrIllegalState)
	}

	after := m.After()
	if after == nil {
		var err error
		if after, err = before.Apply(m); err != nil {
			return "", err
		}
	}
	piece := m.Piece()
	check := after.IsInCheck(piece.Colour.Opposite())

	var sb strings.Builder
	if m.IsCastling() {
		if m.To().Column < m.From().Column {
			sb.WriteString(QueenSideCastling)
		} else {
			sb.WriteString(KingSideCastling)
		}
		if check {
			sb.WriteByte(Check)
		}
		return sb.String(), nil
	}

	if piece.Kind != chess.Pawn {
		sb.WriteByte(piece.Kind.Letter())
		disambiguation, err := disambiguate(before, m)
		if err != nil {
			return "", err
		}
		sb.WriteString(disambiguation)
	} else if m.IsCapture() {
		sb.WriteByte(chess.FileLetter(m.From().Column))
	}

	if m.IsCapture() {
		sb.WriteByte(CaptureSeparator)
	}
	sb.WriteString(m.To().String())

	if kind, ok := m.Promotion(); ok {
		sb.WriteByte(PromotionSeparator)
		sb.WriteByte(kind.Letter())
	}
	if check {
		sb.WriteByte(Check)
	}
	return sb.String(), nil
}

// disambiguate returns the origin file, rank or both needed to tell m apart
// from legal moves of other pieces of the same kind to the same square.
func disambiguate(p *engine.Position, m *engine.Move) (string, error) {
	moves, err := p.LegalMoves()
	if err != nil {
		return "", err
	}

	from := m.From()
	ambiguous, sameColumn, sameRow := false, false, false
	for _, other := range moves {
		if other.Piece() == m.Piece() || other.Piece().Kind != m.Piece().Kind ||
			other.To() != m.To() || other.IsCastling() {
			continue
		}
		ambiguous = true
		sameColumn = sameColumn || other.From().Column == from.Column
		sameRow = sameRow || other.From().Row == from.Row
	}
	if !ambiguous {
		return "", nil
	}

	var s string
	if sameRow || !sameColumn {
		s += string(chess.FileLetter(from.Column))
	}
	if sameColumn {
		s += fmt.Sprint(from.Row + 1)
	}
	return s, nil
}

// EncodeMoves renders every legal move of p, in legal move order. Moves that
// need a promotion are rendered once per promotion kind, queen first.
func EncodeMoves(p *engine.Position) ([]string, error) {
	moves, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}
	var result []string
	for _, m := range moves {
		variants := []*engine.Move{m}
		if m.PromotionNeeded() {
			variants = variants[:0]
			for _, kind := range PromotionKinds {
				variants = append(variants, m.WithPromotion(kind))
			}
		}
		for _, v := range variants {
			s, err := Encode(v)
			if err != nil {
				return nil, err
			}
			result = append(result, s)
		}
	}
	return result, nil
}

// PromotionKinds lists the kinds a pawn may promote to.
var PromotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
