package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board geometry for new games.
func (b *ConfigBuilder) WithBoardSize(rows, columns int) *ConfigBuilder {
	b.cfg.Rules.Rows = rows
	b.cfg.Rules.Columns = columns
	return b
}

// WithRepetitionLimit sets the occurrence count that draws by repetition.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithNoCaptureMoveLimit sets the number of full moves without capture or
// pawn move that draws the game.
func (b *ConfigBuilder) WithNoCaptureMoveLimit(moves int) *ConfigBuilder {
	b.cfg.Rules.NoCaptureMoveLimit = moves
	return b
}

// WithLogFile sets the diagnostic output stream.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
