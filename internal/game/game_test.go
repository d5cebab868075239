package game

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// quiet returns a configuration that logs nothing.
func quiet() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(config.Silent).Build()
}

func mustNew(t *testing.T) *Game {
	t.Helper()
	g, err := New(quiet())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	g := mustNew(t)
	testutil.AssertEqual(t, g.Status(), chess.NotFinished)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Position().FEN(), engine.InitialFEN)

	moves, err := g.AvailableMoves()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 20, "len(AvailableMoves())")
}

func TestNew_RequiresStandardBoard(t *testing.T) {
	cfg := config.NewConfigBuilder().WithBoardSize(8, 10).WithVerbosity(config.Silent).Build()
	_, err := New(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	cfg = config.NewConfigBuilder().WithRepetitionLimit(1).Build()
	_, err = New(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNew_NilConfig(t *testing.T) {
	g, err := New(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Rules().Config(), *config.NewRuleConfig())
}

func TestPlay_FoolsMate(t *testing.T) {
	g := mustNew(t)

	status, err := g.Play("f3", "e5", "g4", "Qh4#")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, chess.BlackWins)
	testutil.AssertEqual(t, g.Status(), chess.BlackWins)

	moves, err := g.AvailableMoves()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 0, "len(AvailableMoves()) after mate")

	_, err = g.Play("a3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState)

	sans, err := g.Moves()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sans, []string{"f3", "e5", "g4", "Qh4+"})
}

func TestPlay_OperaGame(t *testing.T) {
	g := mustNew(t)
	status, err := g.Play(
		"e4", "e5", "Nf3", "d6", "d4", "Bg4", "dxe5", "Bxf3", "Qxf3", "dxe5",
		"Bc4", "Nf6", "Qb3", "Qe7", "Nc3", "c6", "Bg5", "b5", "Nxb5", "cxb5",
		"Bxb5+", "Nbd7", "O-O-O", "Rd8", "Rxd7", "Rxd7", "Rd1", "Qe6",
		"Bxd7+", "Nxd7", "Qb8+", "Nxb8", "Rd8#",
	)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, chess.WhiteWins)
	testutil.AssertEqual(t, g.Position().Plies(), 33)

	sans, err := g.Moves()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(sans), 33, "len(Moves())")
	testutil.AssertEqual(t, sans[22], "O-O-O")
	testutil.AssertEqual(t, sans[32], "Rd8+")
}

func TestPlay_StopsAtFirstFailure(t *testing.T) {
	g := mustNew(t)
	status, err := g.Play("e4", "e5", "Ke3", "Nf3")
	testutil.AssertErrorIs(t, err, errors.ErrNotLegalMove)
	testutil.AssertEqual(t, status, chess.NotFinished)
	testutil.AssertEqual(t, g.Position().Plies(), 2)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
}

func TestPlay_InvalidNotation(t *testing.T) {
	tests := []struct {
		name   string
		san    string
		reason error
	}{
		{"column off the board", "z3", errors.ErrMalformedMove},
		{"piece to a column off the board", "Kz3", errors.ErrMalformedMove},
		{"rank off the board", "b9", errors.ErrMalformedMove},
		{"piece to a rank off the board", "Kb9", errors.ErrMalformedMove},
		{"illegal king step", "Ke2", errors.ErrNotLegalMove},
		{"blocked castling", "O-O", errors.ErrNotLegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustNew(t)
			_, err := g.Play(tt.san)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation, tt.san)
			testutil.AssertErrorIs(t, err, tt.reason, tt.san)
			testutil.AssertEqual(t, g.Position().Plies(), 0)
		})
	}
}

func TestPlay_PromotionSuffixWithoutPromotion(t *testing.T) {
	g := mustNew(t)
	_, err := g.Play("e4=Q")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState)
	testutil.AssertEqual(t, g.Position().Plies(), 0)
}

func TestPlay_Promotion(t *testing.T) {
	g, err := NewFromFEN(quiet(), "7k/P5pp/8/8/8/8/8/7K w - - 0 1")
	testutil.AssertNoError(t, err)

	_, err = g.Play("a8")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState, "promotion choice missing")
	testutil.AssertEqual(t, g.Status(), chess.NotFinished)

	status, err := g.Play("a8=Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, chess.WhiteWins)

	queen, err := g.Get("a8")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, queen.Kind, chess.Queen)
}

func TestPlay_Ambiguity(t *testing.T) {
	g, err := NewEmpty(quiet(), chess.White)
	testutil.AssertNoError(t, err)
	for square, piece := range map[string]*chess.Piece{
		"h1": chess.W(chess.King),
		"a8": chess.B(chess.King),
		"a1": chess.W(chess.Bishop),
		"c3": chess.W(chess.Bishop),
	} {
		_, err := g.Put(square, piece)
		testutil.AssertNoError(t, err, "Put(%s)", square)
	}

	_, err = g.Play("Bb2")
	testutil.AssertErrorIs(t, err, errors.ErrAmbiguousMove)
	_, err = g.Play("Bbb2")
	testutil.AssertErrorIs(t, err, errors.ErrNotLegalMove)

	status, err := g.Play("Bab2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, chess.NotFinished)

	bishop, _ := g.Get("b2")
	testutil.AssertNotNil(t, bishop)
	empty, _ := g.Get("a1")
	testutil.AssertNil(t, empty)
}

func TestPut_Adjudicates(t *testing.T) {
	g, err := NewFromFEN(quiet(), "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), chess.NotFinished)

	rook, err := g.Put("a1", nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rook.Kind, chess.Rook)
	testutil.AssertEqual(t, g.Status(), chess.Draw, "Status() with bare kings")

	_, err = g.Put("a1", rook)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), chess.NotFinished, "Status() with the rook back")

	mate, err := NewFromFEN(quiet(), "k7/8/1K6/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	_, err = mate.Put("h8", chess.W(chess.Rook))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, mate.Status(), chess.WinFor(chess.White))
	_, err = mate.Play("Kb8")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState)
}

func TestPut_IncompleteSetup(t *testing.T) {
	g, err := NewEmpty(quiet(), chess.White)
	testutil.AssertNoError(t, err)

	_, err = g.Put("a8", chess.B(chess.King))
	testutil.AssertNoError(t, err, "Put(a8) without a white king")
	testutil.AssertEqual(t, g.Status(), chess.NotFinished)

	_, err = g.Put("z9", chess.W(chess.King))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidCoordinate)
}

func TestNewFromFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.Status
	}{
		{"initial", engine.InitialFEN, chess.NotFinished},
		{"mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.WhiteWins},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.DrawStalemate},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.Draw},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewFromFEN(quiet(), tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, g.Status(), tt.want)
		})
	}

	_, err := NewFromFEN(quiet(), "not a position")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestDoMove(t *testing.T) {
	g := mustNew(t)
	moves, err := g.AvailableMovesAt("g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 2, "len(AvailableMovesAt(g1))")

	status, err := g.DoMove(moves[0])
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, chess.NotFinished)
	testutil.AssertEqual(t, g.ToMove(), chess.Black)

	// A move of an earlier position is refused.
	_, err = g.DoMove(moves[1])
	testutil.AssertErrorIs(t, err, errors.ErrInvalidArgument)
	testutil.AssertEqual(t, g.Position().Plies(), 1)
}

func TestAvailableMovesAt(t *testing.T) {
	g := mustNew(t)

	moves, err := g.AvailableMovesAt("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, moves, "empty square")

	moves, err = g.AvailableMovesAt("e7")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 0, "opponent pawn")

	_, err = g.AvailableMovesAt("z9")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidCoordinate)
}

func TestBack(t *testing.T) {
	g := mustNew(t)

	ok, err := g.Back()
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok, "Back() at the start")

	_, err = g.Play("f3", "e5", "g4", "Qh4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), chess.BlackWins)

	ok, err = g.Back()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "Back() after mate")
	testutil.AssertEqual(t, g.Status(), chess.NotFinished)
	testutil.AssertEqual(t, g.ToMove(), chess.Black)

	_, err = g.Play("Nc6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Position().Plies(), 4)
}

func TestDrawAndResign(t *testing.T) {
	g := mustNew(t)
	_, err := g.Play("e4")
	testutil.AssertNoError(t, err)

	g.Draw()
	testutil.AssertEqual(t, g.Status(), chess.Draw)
	_, err = g.Play("e5")
	testutil.AssertNoError(t, err, "play after a draw by agreement")

	g.Resign(chess.White)
	testutil.AssertEqual(t, g.Status(), chess.BlackWins)
	_, err = g.Play("Nf3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState)

	moves, _ := g.AvailableMoves()
	_, err = g.DoMove(moves[0])
	testutil.AssertErrorIs(t, err, errors.ErrIllegalState)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      string
	}{
		{"silent", config.Silent, ""},
		{"results", config.Results, "0-1 {Black wins} after 4 plies\n"},
		{"commentary", config.Commentary, "1. f3\n1... e5\n2. g4\n2... Qh4+\n0-1 {Black wins} after 4 plies\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			cfg := config.NewConfigBuilder().WithVerbosity(tt.verbosity).WithLogFile(&buf).Build()
			g, err := New(cfg)
			testutil.AssertNoError(t, err)

			_, err = g.Play("f3", "e5", "g4", "Qh4")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestLogging_Resign(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLogFile(&buf).Build()
	g, err := New(cfg)
	testutil.AssertNoError(t, err)

	g.Resign(chess.Black)
	testutil.AssertEqual(t, buf.String(), "1-0 {Black resigns}\n")
}
