package entity

import "fmt"

// OutcomeKind tags the result of an accepted move. OutcomeNone is only
// returned alongside an error.
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeContinue
	OutcomeWin
	OutcomeDraw
)

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

func (that OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *OutcomeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "continue":
		*that = OutcomeContinue
	case "win":
		*that = OutcomeWin
	case "draw":
		*that = OutcomeDraw
	case "none":
		*that = OutcomeNone
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}

	return nil
}

type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Marker      `json:"winner,omitempty"`
	Line   Line        `json:"-"`
}

func Continue() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func Win(owner Marker, line Line) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: owner, Line: line}
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

// EndsRound - true for a win or a draw.
func (that Outcome) EndsRound() bool {
	return that.IsWin() || that.IsDraw()
}
