package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
	"github.com/rocketscienceinc/jogo-da-velha/internal/tictactoe"
)

type screen int

const (
	screenStart screen = iota
	screenGame
)

type modal int

const (
	modalNone modal = iota
	modalWin
	modalDraw
	modalFinish
)

// start screen focus targets
const (
	focusPlayerX = iota
	focusPlayerO
	focusPlay
	focusCount
)

type Options struct {
	PlayerX         string
	PlayerO         string
	AlternateStarts bool
}

// Model is the whole terminal application: the name entry screen and the game screen.
type Model struct {
	logger     *slog.Logger
	engineOpts []tictactoe.Option

	screen screen

	names [2]string
	focus int

	engine  *tictactoe.Engine
	cursor  entity.Position
	modal   modal
	outcome entity.Outcome
	summary tictactoe.Summary
	notice  string
}

func New(logger *slog.Logger, opts Options) Model {
	var engineOpts []tictactoe.Option
	if opts.AlternateStarts {
		engineOpts = append(engineOpts, tictactoe.WithAlternatingStarts())
	}

	return Model{
		logger:     logger.With("component", "tui"),
		engineOpts: engineOpts,
		names:      [2]string{opts.PlayerX, opts.PlayerO},
		cursor:     entity.Position{Row: 1, Column: 1},
	}
}

// Run - runs the program until the players quit or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, opts Options) error {
	program := tea.NewProgram(New(logger, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(key)
	default:
		return m.updateStart(key)
	}
}

func (m Model) canPlay() bool {
	return strings.TrimSpace(m.names[0]) != "" && strings.TrimSpace(m.names[1]) != ""
}

func (m Model) updateStart(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % focusCount
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + focusCount - 1) % focusCount
	case tea.KeyBackspace:
		if m.focus < focusPlay {
			name := []rune(m.names[m.focus])
			if len(name) > 0 {
				m.names[m.focus] = string(name[:len(name)-1])
			}
		}
	case tea.KeyRunes:
		if m.focus < focusPlay {
			m.names[m.focus] += string(key.Runes)
		}
	case tea.KeySpace:
		if m.focus < focusPlay {
			m.names[m.focus] += " "
		}
	case tea.KeyEnter:
		if m.focus < focusPlay {
			m.focus++
			return m, nil
		}

		if m.canPlay() {
			return m.startGame(), nil
		}
	}

	return m, nil
}

func (m Model) startGame() Model {
	m.engine = tictactoe.New(m.engineOpts...)
	m.engine.StartRound(strings.TrimSpace(m.names[0]), strings.TrimSpace(m.names[1]))
	m.screen = screenGame
	m.modal = modalNone
	m.cursor = entity.Position{Row: 1, Column: 1}
	m.notice = ""

	m.logger.Info("game started")

	return m
}

func (m Model) updateGame(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone {
		return m.dismissModal(key)
	}

	m.notice = ""

	switch key.String() {
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < entity.BoardSize-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Column > 0 {
			m.cursor.Column--
		}
	case "right", "l":
		if m.cursor.Column < entity.BoardSize-1 {
			m.cursor.Column++
		}
	case "enter", " ":
		return m.place(m.cursor), nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pos, err := entity.PositionFromKey(int(key.Runes[0] - '0'))
		if err == nil {
			m.cursor = pos
			return m.place(pos), nil
		}
	case "f":
		m.summary = m.engine.Summary()
		m.modal = modalFinish
	case "q", "esc":
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) place(pos entity.Position) Model {
	outcome, err := m.engine.PlaceMark(int(pos.Row), int(pos.Column))
	if err != nil {
		m.notice = rejectionNotice(err)
		m.logger.Debug("move rejected", "error", err)
		return m
	}

	m.outcome = outcome

	switch {
	case outcome.IsWin():
		m.modal = modalWin
		m.logger.Info("round won", "winner", outcome.Winner.String())
	case outcome.IsDraw():
		m.modal = modalDraw
		m.logger.Info("round drawn")
	}

	return m
}

func (m Model) dismissModal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
	default:
		return m, nil
	}

	switch m.modal {
	case modalFinish:
		m.screen = screenStart
		m.focus = focusPlay
		m.engine = nil
		m.logger.Info("game finished", "rounds", m.summary.Rounds)
	case modalWin, modalDraw:
		m.engine.StartNewRound()
	}

	m.modal = modalNone

	return m, nil
}
