package chess

// Status is the outcome state of a game.
type Status int

const (
	NotFinished Status = iota
	WhiteWins
	BlackWins
	// Draw is a draw by agreement or insufficient material. Play may continue.
	Draw
	DrawStalemate
	DrawRepetition
	DrawNoCapture
)

var statusNames = [...]string{
	"not finished",
	"White wins",
	"Black wins",
	"draw",
	"draw by stalemate",
	"draw by repetition",
	"draw by no-capture rule",
}

// String returns a human readable status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// PlayAllowed reports whether further moves may be played.
func (s Status) PlayAllowed() bool {
	return s == NotFinished || s == Draw
}

// Finished reports whether the game has any result.
func (s Status) Finished() bool {
	return s != NotFinished
}

// Result returns the PGN result token.
func (s Status) Result() string {
	switch s {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case NotFinished:
		return "*"
	default:
		return "1/2-1/2"
	}
}

// WinFor returns the status in which the given colour has won.
func WinFor(c Colour) Status {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}
