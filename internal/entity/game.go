package entity

import "fmt"

// Phase is the derived state of the current round.
type Phase uint8

const (
	PhaseInProgress Phase = iota
	PhaseWon
	PhaseDrawn
)

func (that Phase) String() string {
	switch that {
	case PhaseWon:
		return "won"
	case PhaseDrawn:
		return "drawn"
	default:
		return "in_progress"
	}
}

func (that Phase) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "won":
		*that = PhaseWon
	case "drawn":
		*that = PhaseDrawn
	case "in_progress":
		*that = PhaseInProgress
	default:
		return fmt.Errorf("unknown phase %q", text)
	}

	return nil
}

// Players holds the display labels. They are opaque strings.
type Players struct {
	X string `json:"x"`
	O string `json:"o"`
}

func (that Players) Label(mark Marker) string {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return ""
	}
}

// Score counts the rounds won by each marker during a session.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that Score) Of(mark Marker) int {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

func (that *Score) Add(mark Marker) {
	switch mark {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

// Leader - returns the marker with more wins, false on a tie.
func (that Score) Leader() (Marker, bool) {
	switch {
	case that.X > that.O:
		return PlayerX, true
	case that.O > that.X:
		return PlayerO, true
	default:
		return NoMarker, false
	}
}

// Game is the whole state of a game screen: the current round plus the
// session score. It holds values only, so a copy never aliases the board.
type Game struct {
	Board        Board   `json:"board"`
	ActivePlayer Marker  `json:"active_player"`
	MovesPlayed  int     `json:"moves_played"`
	Winner       Marker  `json:"winner,omitempty"`
	Score        Score   `json:"score"`
	Players      Players `json:"players"`
	Round        int     `json:"round"`
	Starter      Marker  `json:"starter"`
}

func NewGame(playerX, playerO string) Game {
	return Game{
		ActivePlayer: PlayerX,
		Players:      Players{X: playerX, O: playerO},
		Round:        1,
		Starter:      PlayerX,
	}
}

func (that *Game) HasWinner() bool {
	return that.Winner != NoMarker
}

func (that *Game) IsRoundOver() bool {
	return that.HasWinner() || that.MovesPlayed == CellCount
}

func (that *Game) Phase() Phase {
	switch {
	case that.HasWinner():
		return PhaseWon
	case that.MovesPlayed == CellCount:
		return PhaseDrawn
	default:
		return PhaseInProgress
	}
}
