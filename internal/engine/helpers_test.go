package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen, nil)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	return p
}

func sq(t testing.TB, s string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(s)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q) error = %v", s, err)
	}
	return c
}

// findMove returns the legal move written as "e2e4" or "e7e8q", or nil.
func findMove(t testing.TB, p *Position, uci string) *Move {
	t.Helper()
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves() error = %v", err)
	}
	for _, m := range moves {
		if m.primary.String() != uci[:4] {
			continue
		}
		if len(uci) == 4 {
			return m
		}
		kind, err := chess.KindFromLetter(uci[4] - 'a' + 'A')
		if err != nil {
			t.Fatalf("bad promotion letter in %q", uci)
		}
		return m.WithPromotion(kind)
	}
	return nil
}

func mustMove(t testing.TB, p *Position, uci string) *Move {
	t.Helper()
	m := findMove(t, p, uci)
	if m == nil {
		t.Fatalf("no legal move %s in %s", uci, p.FEN())
	}
	return m
}

func play(t testing.TB, p *Position, moves ...string) *Position {
	t.Helper()
	for _, uci := range moves {
		next, err := p.Apply(mustMove(t, p, uci))
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", uci, err)
		}
		p = next
	}
	return p
}

// uciMoves lists the legal moves of p, one entry per promotion kind, sorted.
func uciMoves(t testing.TB, p *Position) []string {
	t.Helper()
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves() error = %v", err)
	}
	var result []string
	for _, m := range moves {
		if !m.promotionNeeded {
			result = append(result, m.UCI())
			continue
		}
		for _, kind := range []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
			result = append(result, m.WithPromotion(kind).UCI())
		}
	}
	slices.Sort(result)
	return result
}

// perft counts the leaf positions reachable in depth plies.
func perft(t testing.TB, p *Position, depth int) uint64 {
	t.Helper()
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves() error = %v", err)
	}
	var nodes uint64
	for _, m := range moves {
		variants := []*Move{m}
		if m.promotionNeeded {
			variants = variants[:0]
			for _, kind := range []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
				variants = append(variants, m.WithPromotion(kind))
			}
		}
		if depth == 1 {
			nodes += uint64(len(variants))
			continue
		}
		for _, v := range variants {
			next, err := p.Apply(v)
			if err != nil {
				t.Fatalf("Apply(%v) error = %v", v, err)
			}
			nodes += perft(t, next, depth-1)
		}
	}
	return nodes
}
