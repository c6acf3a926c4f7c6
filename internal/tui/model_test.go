package tui

import (
	"log/slog"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(opts Options) Model {
	return New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})), opts)
}

func send(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, key := range keys {
		next, _ := m.Update(key)

		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestModel_StartScreen(t *testing.T) {
	t.Run("Play stays disabled until both names are typed", func(t *testing.T) {
		// Given: the name entry screen with only the first name
		m := send(t, newTestModel(Options{}), runes("Ana"), tab, tab)

		// When: play is pressed
		m = send(t, m, enter)

		// Then: the game does not start
		assert.Equal(t, screenStart, m.screen)
		assert.False(t, m.canPlay())
	})

	t.Run("Typing, editing and starting", func(t *testing.T) {
		// Given: two names, one corrected with backspace
		m := send(t, newTestModel(Options{}), runes("Anaa"), backspace, enter, runes("Bia"), enter)
		require.Equal(t, focusPlay, m.focus)

		// When: play is pressed
		m = send(t, m, enter)

		// Then: the game screen shows both players, X to move
		require.Equal(t, screenGame, m.screen)
		assert.Equal(t, entity.Players{X: "Ana", O: "Bia"}, m.engine.Players())
		assert.Equal(t, entity.PlayerX, m.engine.ActivePlayer())
		assert.Contains(t, m.View(), ">> X Ana")
	})

	t.Run("Configured names are prefilled", func(t *testing.T) {
		m := newTestModel(Options{PlayerX: "Ana", PlayerO: "Bia"})

		assert.True(t, m.canPlay())
	})
}

func startedModel(t *testing.T, opts Options) Model {
	t.Helper()

	opts.PlayerX, opts.PlayerO = "Ana", "Bia"
	m := send(t, newTestModel(opts), tab, tab, enter)
	require.Equal(t, screenGame, m.screen)

	return m
}

func TestModel_GameScreen(t *testing.T) {
	t.Run("Keypad moves and win modal", func(t *testing.T) {
		// Given: a started game
		m := startedModel(t, Options{})

		// When: X takes the top row (keys 1, 5, 2, 4, 3)
		m = send(t, m, runes("1"), runes("5"), runes("2"), runes("4"), runes("3"))

		// Then: the win modal is shown and X scored
		assert.Equal(t, modalWin, m.modal)
		assert.Equal(t, entity.Score{X: 1}, m.engine.ScoreSummary())
		assert.Contains(t, m.View(), "X venceu!")

		// When: the modal is dismissed
		m = send(t, m, enter)

		// Then: a new round starts with the score kept
		assert.Equal(t, modalNone, m.modal)
		assert.Equal(t, 0, m.engine.MovesPlayed())
		assert.Equal(t, entity.Score{X: 1}, m.engine.ScoreSummary())
	})

	t.Run("Keys are ignored by the modal except to close it", func(t *testing.T) {
		m := startedModel(t, Options{})
		m = send(t, m, runes("1"), runes("5"), runes("2"), runes("4"), runes("3"))

		m = send(t, m, runes("9"))

		assert.Equal(t, modalWin, m.modal)
		assert.Equal(t, 5, m.engine.MovesPlayed())
	})

	t.Run("Occupied cell shows a notice", func(t *testing.T) {
		m := startedModel(t, Options{})

		m = send(t, m, enter, enter)

		assert.Equal(t, 1, m.engine.MovesPlayed())
		assert.Equal(t, entity.PlayerO, m.engine.ActivePlayer())
		assert.NotEmpty(t, m.notice)
		assert.Contains(t, m.View(), m.notice)
	})

	t.Run("Cursor moves with arrows and stays on the board", func(t *testing.T) {
		m := startedModel(t, Options{})

		m = send(t, m,
			tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp},
			tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft},
		)
		m = send(t, m, enter)

		assert.Equal(t, entity.Position{}, m.cursor)
		cell, err := m.engine.CellAt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, cell.Owner)
	})

	t.Run("Draw modal", func(t *testing.T) {
		m := startedModel(t, Options{})

		m = send(t, m, runes("1"), runes("2"), runes("3"), runes("5"), runes("4"), runes("6"), runes("8"), runes("7"), runes("9"))

		assert.Equal(t, modalDraw, m.modal)
		assert.Contains(t, m.View(), "Velha!")
	})

	t.Run("Finish shows the summary and goes back to name entry", func(t *testing.T) {
		// Given: O won one round
		m := startedModel(t, Options{})
		m = send(t, m, runes("2"), runes("1"), runes("3"), runes("5"), runes("4"), runes("9"), enter)

		// When: the players finish
		m = send(t, m, runes("f"))

		// Then: the summary names Bia
		require.Equal(t, modalFinish, m.modal)
		assert.Contains(t, m.View(), "Bia venceu a partida!")

		// When: the summary is closed
		m = send(t, m, enter)

		// Then: the name entry screen is back with the names kept
		assert.Equal(t, screenStart, m.screen)
		assert.True(t, m.canPlay())
	})

	t.Run("Alternating starts hand the first move to O", func(t *testing.T) {
		m := startedModel(t, Options{AlternateStarts: true})
		m = send(t, m, runes("1"), runes("5"), runes("2"), runes("4"), runes("3"), enter)

		assert.Equal(t, entity.PlayerO, m.engine.ActivePlayer())
	})
}
