package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Rule defaults for the standard game.
const (
	DefaultRows               = 8
	DefaultColumns            = 8
	DefaultRepetitionLimit    = 5
	DefaultNoCaptureMoveLimit = 75
)

// RuleConfig holds settings that change how games are adjudicated.
type RuleConfig struct {
	// Rows and Columns give the board geometry for new games
	Rows    int
	Columns int

	// RepetitionLimit is the occurrence count of a position that draws the game
	RepetitionLimit int

	// NoCaptureMoveLimit is the number of full moves without a capture or
	// pawn move that draws the game
	NoCaptureMoveLimit int
}

// NewRuleConfig creates a RuleConfig with the standard limits.
func NewRuleConfig() *RuleConfig {
	return &RuleConfig{
		Rows:               DefaultRows,
		Columns:            DefaultColumns,
		RepetitionLimit:    DefaultRepetitionLimit,
		NoCaptureMoveLimit: DefaultNoCaptureMoveLimit,
	}
}

// NoCapturePlyLimit returns the no-capture limit in half-moves.
func (r *RuleConfig) NoCapturePlyLimit() int {
	return 2 * r.NoCaptureMoveLimit
}

// Validate checks that the rule configuration is valid.
func (r *RuleConfig) Validate() error {
	if r.Rows <= 0 || r.Columns <= 0 {
		return fmt.Errorf("board %dx%d: %w", r.Rows, r.Columns, errors.ErrInvalidConfig)
	}
	if r.Rows > 9 || r.Columns > 26 {
		return fmt.Errorf("board %dx%d exceeds algebraic notation range: %w",
			r.Rows, r.Columns, errors.ErrInvalidConfig)
	}
	if r.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit (%d) must be at least 2: %w",
			r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if r.NoCaptureMoveLimit < 1 {
		return fmt.Errorf("no-capture move limit (%d) must be positive: %w",
			r.NoCaptureMoveLimit, errors.ErrInvalidConfig)
	}
	return nil
}
