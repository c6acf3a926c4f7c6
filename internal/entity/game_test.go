package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	t.Run("Other returns the opponent", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Other())
		assert.Equal(t, PlayerX, PlayerO.Other())
		assert.Equal(t, NoMarker, NoMarker.Other())
	})

	t.Run("Text encoding round trips known markers", func(t *testing.T) {
		// Given: a marker encoded as JSON
		encoded, err := json.Marshal(PlayerO)
		require.NoError(t, err)
		assert.JSONEq(t, `"O"`, string(encoded))

		// When: decoding it back
		var decoded Marker
		err = json.Unmarshal(encoded, &decoded)

		// Then: it should be the same marker
		require.NoError(t, err)
		assert.Equal(t, PlayerO, decoded)
	})

	t.Run("Unknown text is rejected", func(t *testing.T) {
		var decoded Marker
		err := json.Unmarshal([]byte(`"Z"`), &decoded)

		assert.ErrorIs(t, err, ErrUnknownMarker)
	})
}

func TestNewPosition(t *testing.T) {
	t.Run("Accepts coordinates inside the board", func(t *testing.T) {
		pos, err := NewPosition(2, 1)

		require.NoError(t, err)
		assert.Equal(t, Position{Row: 2, Column: 1}, pos)
	})

	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		for _, coords := range [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}} {
			_, err := NewPosition(coords[0], coords[1])

			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate, "coords %v", coords)
		}
	})

	t.Run("Keypad keys map left to right, top to bottom", func(t *testing.T) {
		pos, err := PositionFromKey(6)
		require.NoError(t, err)
		assert.Equal(t, Position{Row: 1, Column: 2}, pos)

		_, err = PositionFromKey(0)
		assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})
}

func TestBoard_CompletedLine(t *testing.T) {
	t.Run("Returns the owner of a full column", func(t *testing.T) {
		// Given: a board where O holds the middle column
		var board Board
		board.Mark(Position{0, 1}, PlayerO)
		board.Mark(Position{1, 1}, PlayerO)
		board.Mark(Position{2, 1}, PlayerO)
		board.Mark(Position{0, 0}, PlayerX)

		// When: looking for a completed line
		line, owner, ok := board.CompletedLine()

		// Then: the middle column should be reported
		require.True(t, ok)
		assert.Equal(t, PlayerO, owner)
		assert.Equal(t, Line{{0, 1}, {1, 1}, {2, 1}}, line)
	})

	t.Run("Finds the anti-diagonal", func(t *testing.T) {
		var board Board
		board.Mark(Position{0, 2}, PlayerX)
		board.Mark(Position{1, 1}, PlayerX)
		board.Mark(Position{2, 0}, PlayerX)

		line, owner, ok := board.CompletedLine()

		require.True(t, ok)
		assert.Equal(t, PlayerX, owner)
		assert.Equal(t, WinLines[7], line)
	})

	t.Run("Mixed owners never complete a line", func(t *testing.T) {
		var board Board
		board.Mark(Position{0, 0}, PlayerX)
		board.Mark(Position{0, 1}, PlayerO)
		board.Mark(Position{0, 2}, PlayerX)

		_, _, ok := board.CompletedLine()

		assert.False(t, ok)
		assert.Equal(t, 3, board.Filled())
	})

	t.Run("Highlight flags only the line cells", func(t *testing.T) {
		var board Board
		board.Highlight(WinLines[0])

		assert.True(t, board.At(Position{0, 2}).Winning)
		assert.False(t, board.At(Position{1, 2}).Winning)
	})
}

func TestScore_Leader(t *testing.T) {
	t.Run("Tie has no leader", func(t *testing.T) {
		_, ok := Score{X: 2, O: 2}.Leader()

		assert.False(t, ok)
	})

	t.Run("Leader is the marker with more wins", func(t *testing.T) {
		score := Score{}
		score.Add(PlayerO)

		leader, ok := score.Leader()

		require.True(t, ok)
		assert.Equal(t, PlayerO, leader)
		assert.Equal(t, 1, score.Of(PlayerO))
		assert.Equal(t, 0, score.Of(PlayerX))
	})
}

func TestGame_Phase(t *testing.T) {
	t.Run("New game is in progress", func(t *testing.T) {
		game := NewGame("Ana", "Bia")

		assert.Equal(t, PhaseInProgress, game.Phase())
		assert.False(t, game.IsRoundOver())
		assert.Equal(t, PlayerX, game.ActivePlayer)
		assert.Equal(t, "Bia", game.Players.Label(PlayerO))
	})

	t.Run("Winner set means won", func(t *testing.T) {
		game := Game{Winner: PlayerX, MovesPlayed: 5}

		assert.Equal(t, PhaseWon, game.Phase())
		assert.True(t, game.IsRoundOver())
	})

	t.Run("Full board without winner means drawn", func(t *testing.T) {
		game := Game{MovesPlayed: CellCount}

		assert.Equal(t, PhaseDrawn, game.Phase())
		assert.True(t, game.IsRoundOver())
	})
}
