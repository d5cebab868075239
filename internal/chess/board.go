package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for the standard board and algebraic coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Board describes the geometry of the playing surface. It carries no pieces
// and is shared by every position of a game.
type Board struct {
	Rows    int
	Columns int
}

// NewBoard creates a board with the given dimensions.
func NewBoard(rows, columns int) (Board, error) {
	if rows <= 0 || columns <= 0 {
		return Board{}, fmt.Errorf("%dx%d: %w", rows, columns, errors.ErrInvalidBoard)
	}
	return Board{Rows: rows, Columns: columns}, nil
}

// StandardBoard returns the 8x8 board.
func StandardBoard() Board {
	return Board{Rows: BoardSize, Columns: BoardSize}
}

// IsValid reports whether c lies on the board.
func (b Board) IsValid(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Column >= 0 && c.Column < b.Columns
}

// Squares returns the number of squares on the board.
func (b Board) Squares() int {
	return b.Rows * b.Columns
}

// Index maps a coordinate to its row-major index.
func (b Board) Index(c Coordinate) int {
	return c.Row*b.Columns + c.Column
}

// Coordinate locates a square by zero-based row (rank) and column (file).
// Row 0 is White's back rank and column 0 is the a-file.
type Coordinate struct {
	Row    int
	Column int
}

// NewCoordinate builds a coordinate from row and column.
func NewCoordinate(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// To returns the coordinate shifted by the given row and column deltas.
func (c Coordinate) To(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Column: c.Column + dCol}
}

// String renders the coordinate in algebraic form, e.g. "e4".
func (c Coordinate) String() string {
	return string(FileLetter(c.Column)) + strconv.Itoa(c.Row+1)
}

// FileLetter returns the file letter of a column.
func FileLetter(column int) byte {
	return byte(ColBase + column)
}

// RankDigit returns the rank digit of a row on boards with at most nine rows.
func RankDigit(row int) byte {
	return byte(RankBase + row)
}

// ParseCoordinate parses a two-character algebraic square such as "e5".
// The result is not bounds checked against any board.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	col, row := s[0], s[1]
	if col < 'a' || col > 'z' || row < '1' || row > '9' {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return Coordinate{Row: int(row - RankBase), Column: int(col - ColBase)}, nil
}

// Displacement records one piece moving from one square to another.
type Displacement struct {
	Piece *Piece
	From  Coordinate
	To    Coordinate
}

// String renders the displacement as origin and destination, e.g. "e2e4".
func (d Displacement) String() string {
	return d.From.String() + d.To.String()
}
