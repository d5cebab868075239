package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestFEN_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial", InitialFEN},
		{"kiwipete", kiwipeteFEN},
		{"position 3", position3FEN},
		{"position 4", position4FEN},
		{"position 5", position5FEN},
		{"en passant target", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"},
		{"white en passant target", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3"},
		{"partial castling rights", "r3k2r/8/8/8/8/8/8/R3K2R b Qk - 12 40"},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := mustFEN(t, tt.fen).FEN(); got != tt.fen {
				t.Errorf("FEN() = %q, want %q", got, tt.fen)
			}
		})
	}
}

func TestFEN_InitialPosition(t *testing.T) {
	if got := NewInitialPosition(nil).FEN(); got != InitialFEN {
		t.Errorf("NewInitialPosition().FEN() = %q, want %q", got, InitialFEN)
	}
	if !NewInitialPosition(nil).Equal(mustFEN(t, InitialFEN)) {
		t.Error("NewInitialPosition() differs from the parsed InitialFEN")
	}
}

func TestFEN_AfterMoves(t *testing.T) {
	tests := []struct {
		moves []string
		want  string
	}{
		{[]string{"e2e4"}, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{[]string{"e2e4", "c7c5", "g1f3"}, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
		{[]string{"h2h4", "a7a5", "h1h2"}, "rnbqkbnr/1ppppppp/8/p7/7P/8/PPPPPPPR/RNBQKBN1 b Qkq - 1 2"},
		{[]string{"e2e4", "e7e5", "e1e2"}, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"},
	}

	for _, tt := range tests {
		tt := tt
		p := play(t, NewInitialPosition(nil), tt.moves...)
		if got := p.FEN(); got != tt.want {
			t.Errorf("%v: FEN() = %q, want %q", tt.moves, got, tt.want)
		}
	}
}

func TestFEN_Parse(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 7 31")

	if got := p.ToMove(); got != chess.Black {
		t.Errorf("ToMove() = %v, want Black", got)
	}
	if got := p.HalfmoveClock(); got != 7 {
		t.Errorf("HalfmoveClock() = %d, want 7", got)
	}
	if got := p.FullmoveNumber(); got != 31 {
		t.Errorf("FullmoveNumber() = %d, want 31", got)
	}
	if kingSide, queenSide := p.CastlingRights(chess.White); !kingSide || queenSide {
		t.Errorf("CastlingRights(White) = %v, %v, want true, false", kingSide, queenSide)
	}
	if kingSide, queenSide := p.CastlingRights(chess.Black); kingSide || !queenSide {
		t.Errorf("CastlingRights(Black) = %v, %v, want false, true", kingSide, queenSide)
	}

	ep := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
	target, ok := ep.EnPassantTarget()
	if !ok || target != sq(t, "e6") {
		t.Errorf("EnPassantTarget() = %v, %v, want e6", target, ok)
	}
	if got := ep.Plies(); got != 1 {
		t.Errorf("Plies() = %d, want 1 for the replayed double push", got)
	}
}

func TestFEN_ShortForms(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3")
	if p.ToMove() != chess.White || p.HalfmoveClock() != 0 || p.FullmoveNumber() != 1 {
		t.Errorf("defaults = %v %d %d, want White 0 1", p.ToMove(), p.HalfmoveClock(), p.FullmoveNumber())
	}
}

func TestFEN_BoardSize(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		rows    int
		columns int
	}{
		{"standard", InitialFEN, 8, 8},
		{"five by five", "k4/5/5/5/4K w - - 0 1", 5, 5},
		{"ten columns", "k9/10/10/10/10/10/10/9K w - - 0 1", 8, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := mustFEN(t, tt.fen)
			if b := p.Board(); b.Rows != tt.rows || b.Columns != tt.columns {
				t.Errorf("Board() = %dx%d, want %dx%d", b.Rows, b.Columns, tt.rows, tt.columns)
			}
			if got := p.FEN(); got != tt.fen {
				t.Errorf("FEN() = %q, want %q", got, tt.fen)
			}
		})
	}
}

func TestFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece", "rnbqkbnz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"ragged ranks", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"zero run", "rnbqkbnr/pppppppp/0/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"oversized run", "rnbqkbnr/pppppppp/80/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"castling field", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"en passant square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"en passant without a pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1"},
		{"halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewPositionFromFEN(tt.fen, nil); !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewPositionFromFEN(%q) error = %v, want %v", tt.fen, err, chesserrors.ErrInvalidFEN)
			}
		})
	}
}
