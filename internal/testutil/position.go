package testutil

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustPosition parses a FEN string with the standard rules.
// It calls t.Fatal if the FEN is rejected.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	p, err := engine.NewPositionFromFEN(fen, nil)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	return p
}

// MustSquare parses an algebraic square such as "e4".
func MustSquare(t testing.TB, square string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q) error = %v", square, err)
	}
	return c
}

// FindMove returns the legal move of p written in long algebraic form, e.g.
// "e2e4" or "e7e8q". A trailing promotion letter selects the promotion
// kind. It returns nil when no legal move matches.
func FindMove(p *engine.Position, uci string) *engine.Move {
	if len(uci) < 4 {
		return nil
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return nil
	}
	for _, m := range moves {
		if m.Displacement().String() != uci[:4] {
			continue
		}
		if len(uci) == 4 {
			return m
		}
		kind, err := chess.KindFromLetter(strings.ToUpper(uci[4:5])[0])
		if err != nil || !m.PromotionNeeded() {
			return nil
		}
		return m.WithPromotion(kind)
	}
	return nil
}

// MustMove is FindMove that calls t.Fatal when no legal move matches.
func MustMove(t testing.TB, p *engine.Position, uci string) *engine.Move {
	t.Helper()
	m := FindMove(p, uci)
	if m == nil {
		t.Fatalf("no legal move %s in %s", uci, p.FEN())
	}
	return m
}

// PlayUCI applies moves in long algebraic form starting from p and returns
// the final position.
func PlayUCI(t testing.TB, p *engine.Position, moves ...string) *engine.Position {
	t.Helper()
	for _, uci := range moves {
		next, err := p.Apply(MustMove(t, p, uci))
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", uci, err)
		}
		p = next
	}
	return p
}

// UCIMoves returns the long algebraic form of every legal move of p, sorted.
// Moves that need a promotion are listed once per promotion kind.
func UCIMoves(t testing.TB, p *engine.Position) []string {
	t.Helper()
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves() error = %v", err)
	}
	var result []string
	for _, m := range moves {
		if !m.PromotionNeeded() {
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
