package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
)

const appTitle = "Jogo da Velha"

func (m Model) View() string {
	var body string
	if m.screen == screenGame {
		body = m.viewGame()
	} else {
		body = m.viewStart()
	}

	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(appTitle), body)
}

func (m Model) viewStart() string {
	fields := make([]string, 0, 2*focusPlay)
	for i, label := range []string{"Jogador 1", "Jogador 2"} {
		style := inputStyle
		value := m.names[i]
		if m.focus == i {
			style = focusedInputStyle
			value += "_"
		}

		fields = append(fields, labelStyle.Render(label), style.Render(value))
	}

	button := disabledButtonStyle
	switch {
	case m.canPlay() && m.focus == focusPlay:
		button = focusedButtonStyle
	case m.canPlay():
		button = buttonStyle
	}

	fields = append(fields,
		button.Render("Jogar"),
		helpStyle.Render("tab: próximo campo • enter: confirmar • esc: sair"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, fields...)
}

func (m Model) viewGame() string {
	state := m.engine.State()

	parts := []string{
		playerCard(state, entity.PlayerX),
		playerCard(state, entity.PlayerO),
		"",
		m.viewBoard(state.Board),
	}

	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}

	if m.modal != modalNone {
		parts = append(parts, m.viewModal(state))
	} else {
		parts = append(parts, helpStyle.Render("setas/1-9: jogar • f: finalizar • q: sair"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func playerCard(state entity.Game, mark entity.Marker) string {
	style := cardStyle
	prefix := "   "
	if state.ActivePlayer == mark {
		style = activeCardStyle
		prefix = ">> "
	}

	name := fmt.Sprintf("%s%s %s", prefix, mark, state.Players.Label(mark))
	score := fmt.Sprintf("[%d]", state.Score.Of(mark))
	gap := max(1, cardStyle.GetWidth()-cardStyle.GetHorizontalPadding()-lipgloss.Width(name)-lipgloss.Width(score))

	return style.Render(name + strings.Repeat(" ", gap) + score)
}

func (m Model) viewBoard(board entity.Board) string {
	rows := make([]string, 0, entity.BoardSize)
	for r := 0; r < entity.BoardSize; r++ {
		cells := make([]string, 0, entity.BoardSize)
		for c := 0; c < entity.BoardSize; c++ {
			pos := entity.Position{Row: entity.Index(r), Column: entity.Index(c)}
			cells = append(cells, m.viewCell(pos, board.At(pos)))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCell(pos entity.Position, cell entity.Cell) string {
	background := colorEmpty
	switch {
	case cell.Winning:
		background = colorVictory
	case !cell.IsEmpty():
		background = colorPrimary
	}

	label := "?"
	if !cell.IsEmpty() {
		label = cell.Owner.String()
	}

	style := cellStyle.Background(background)
	if pos == m.cursor && m.modal == modalNone {
		style = style.Background(colorCursor)
	}

	return style.Render(label)
}

func (m Model) viewModal(state entity.Game) string {
	var title, message string

	switch m.modal {
	case modalWin:
		title = fmt.Sprintf("%s venceu!", m.outcome.Winner)
		message = "Parabéns!!!"
	case modalDraw:
		title = "Velha!"
		message = "Ninguém venceu =/"
	case modalFinish:
		title = "Ninguém venceu"
		if !m.summary.IsTie() {
			title = m.summary.LeaderName + " venceu a partida!"
		}
		message = fmt.Sprintf("Bom jogo! %s %d x %d %s",
			state.Players.X, m.summary.Score.X, m.summary.Score.O, state.Players.O)
	}

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(title),
		message,
		helpStyle.Render("enter: continuar"),
	))
}

func rejectionNotice(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Essa casa já foi marcada."
	case errors.Is(err, apperror.ErrRoundAlreadyOver):
		return "A rodada já terminou."
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "Casa fora do tabuleiro."
	default:
		return err.Error()
	}
}
