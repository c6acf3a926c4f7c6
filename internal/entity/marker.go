package entity

import (
	"errors"
	"fmt"
)

// Marker identifies the owner of a mark. NoMarker is the unset value of
// optional fields (an empty cell, a round without a winner).
type Marker uint8

const (
	NoMarker Marker = iota
	PlayerX
	PlayerO
)

var ErrUnknownMarker = errors.New("unknown marker")

func (that Marker) Valid() bool {
	return that == PlayerX || that == PlayerO
}

// Other - returns the opponent of the marker.
func (that Marker) Other() Marker {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoMarker
	}
}

func (that Marker) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Marker) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Marker) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = NoMarker
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMarker, text)
	}

	return nil
}
