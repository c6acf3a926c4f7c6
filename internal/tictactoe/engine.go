package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
)

type Option func(*Engine)

// WithAlternatingStarts - the player who did not start the previous round starts the next one.
// Without it the marker that was active when the round ended moves first.
func WithAlternatingStarts() Option {
	return func(engine *Engine) {
		engine.alternateStarts = true
	}
}

// Engine owns the state of one game screen. It is not safe for concurrent use.
type Engine struct {
	game            entity.Game
	alternateStarts bool
}

func New(opts ...Option) *Engine {
	return Restore(entity.NewGame("", ""), opts...)
}

// Restore - builds an engine around a previously saved state.
func Restore(game entity.Game, opts ...Option) *Engine {
	engine := &Engine{game: game}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// StartRound - starts a session: labels are stored, board and scores cleared, X moves first.
func (that *Engine) StartRound(playerX, playerO string) {
	that.game = entity.NewGame(playerX, playerO)
}

// StartNewRound - clears the board and keeps the score.
func (that *Engine) StartNewRound() {
	next := that.game.ActivePlayer
	if that.alternateStarts {
		next = that.game.Starter.Other()
	}

	that.game.Board = entity.Board{}
	that.game.MovesPlayed = 0
	that.game.Winner = entity.NoMarker
	that.game.ActivePlayer = next
	that.game.Starter = next
	that.game.Round++
}

// PlaceMark - puts the active player's mark on the cell and evaluates the board.
// A rejected move leaves the state untouched.
func (that *Engine) PlaceMark(row, column int) (entity.Outcome, error) {
	if that.game.IsRoundOver() {
		return entity.Outcome{}, apperror.ErrRoundAlreadyOver
	}

	pos, err := entity.NewPosition(row, column)
	if err != nil {
		return entity.Outcome{}, err
	}

	if !that.game.Board.At(pos).IsEmpty() {
		return entity.Outcome{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, column)
	}

	that.game.Board.Mark(pos, that.game.ActivePlayer)
	that.game.MovesPlayed++

	return that.evaluate(), nil
}

// evaluate - win first, then draw, otherwise the turn passes.
func (that *Engine) evaluate() entity.Outcome {
	if line, owner, ok := that.game.Board.CompletedLine(); ok {
		that.game.Board.Highlight(line)
		that.game.Winner = owner
		that.game.Score.Add(owner)

		return entity.Win(owner, line)
	}

	if that.game.MovesPlayed == entity.CellCount {
		return entity.Draw()
	}

	that.game.ActivePlayer = that.game.ActivePlayer.Other()

	return entity.Continue()
}

func (that *Engine) IsRoundOver() bool {
	return that.game.IsRoundOver()
}

func (that *Engine) CellAt(row, column int) (entity.Cell, error) {
	pos, err := entity.NewPosition(row, column)
	if err != nil {
		return entity.Cell{}, err
	}

	return that.game.Board.At(pos), nil
}

func (that *Engine) ScoreSummary() entity.Score {
	return that.game.Score
}

func (that *Engine) ActivePlayer() entity.Marker {
	return that.game.ActivePlayer
}

func (that *Engine) MovesPlayed() int {
	return that.game.MovesPlayed
}

// Winner - returns the winner of the current round, false while there is none.
func (that *Engine) Winner() (entity.Marker, bool) {
	return that.game.Winner, that.game.HasWinner()
}

func (that *Engine) Phase() entity.Phase {
	return that.game.Phase()
}

func (that *Engine) Players() entity.Players {
	return that.game.Players
}

// State - returns a copy of the whole state for rendering or storage.
func (that *Engine) State() entity.Game {
	return that.game
}

// Summary - the end-of-session result shown when the players leave the game screen.
func (that *Engine) Summary() Summary {
	return NewSummary(that.game)
}
