package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
)

type sessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

// NewRouter - routes of the read-only HTTP API.
func NewRouter(logger *slog.Logger, sessions sessionReader) *mux.Router {
	router := mux.NewRouter()

	ping := NewPingHandler()
	router.HandleFunc("/ping", ping.PingHandler).Methods(http.MethodGet)

	handlers := NewSessionHandlers(logger, sessions)
	router.HandleFunc("/sessions/{id}", handlers.GetSession).Methods(http.MethodGet)

	return router
}

// Start - serves the router until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
