package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
	"github.com/rocketscienceinc/jogo-da-velha/internal/tictactoe"
)

const (
	ActionSessionStart = "session:start"
	ActionGameState    = "game:state"
	ActionGameTurn     = "game:turn"
	ActionGameRound    = "game:round"
	ActionGameFinish   = "game:finish"
)

var (
	errBadRequest    = errors.New("bad request")
	errUnknownAction = errors.New("unknown action")
	errNoSession     = errors.New("no session on this connection")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID string `json:"session_id,omitempty"`
	PlayerX   string `json:"player_x,omitempty"`
	PlayerO   string `json:"player_o,omitempty"`
	Row       *int   `json:"row,omitempty"`
	Column    *int   `json:"column,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

// GameView is the read model of a session rendered by the client.
type GameView struct {
	SessionID string       `json:"session_id"`
	Game      entity.Game  `json:"game"`
	Phase     entity.Phase `json:"phase"`
}

type ResponsePayload struct {
	Game    *GameView          `json:"game,omitempty"`
	Outcome *entity.Outcome    `json:"outcome,omitempty"`
	Summary *tictactoe.Summary `json:"summary,omitempty"`
	Error   string             `json:"error,omitempty"`
	Code    string             `json:"code,omitempty"`
}

func newGameView(session *entity.Session) *GameView {
	return &GameView{
		SessionID: session.ID,
		Game:      session.Game,
		Phase:     session.Game.Phase(),
	}
}

// errorCode - maps engine and use case errors to codes the client can switch on.
func errorCode(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, apperror.ErrRoundAlreadyOver):
		return "round_already_over"
	case errors.Is(err, apperror.ErrEmptyPlayerName):
		return "empty_player_name"
	case errors.Is(err, apperror.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, errNoSession):
		return "no_session"
	case errors.Is(err, errBadRequest):
		return "bad_request"
	case errors.Is(err, errUnknownAction):
		return "unknown_action"
	default:
		return "internal"
	}
}

func errorPayload(err error) ResponsePayload {
	code := errorCode(err)

	message := err.Error()
	if code == "internal" {
		message = "internal error"
	}

	return ResponsePayload{Error: message, Code: code}
}

// isClientError - true when the error is caused by the request, not by the server.
func isClientError(err error) bool {
	return errorCode(err) != "internal"
}
