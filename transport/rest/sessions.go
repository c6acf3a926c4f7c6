package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
)

type SessionHandlers struct {
	logger   *slog.Logger
	sessions sessionReader
}

func NewSessionHandlers(logger *slog.Logger, sessions sessionReader) *SessionHandlers {
	return &SessionHandlers{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

type sessionResponse struct {
	ID    string       `json:"id"`
	Game  entity.Game  `json:"game"`
	Phase entity.Phase `json:"phase"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetSession - renders the board, turn and score of a session.
func (that *SessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetSession")

	id := mux.Vars(r)["id"]

	session, err := that.sessions.GetSession(r.Context(), id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrSessionNotFound.Error()})
		return
	}

	if err != nil {
		log.Error("failed to get session", "sessionID", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		ID:    session.ID,
		Game:  session.Game,
		Phase: session.Game.Phase(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
