package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
	"github.com/rocketscienceinc/jogo-da-velha/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs one engine per session. Every call restores the engine from
// the stored state, applies a single operation and saves it back.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	engineOpts  []tictactoe.Option

	mu  sync.Mutex
	now func() time.Time
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, opts ...tictactoe.Option) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		engineOpts:  opts,
		now:         time.Now,
	}
}

// StartSession - opens a game screen for two named players.
func (that *GameManager) StartSession(ctx context.Context, playerX, playerO string) (*entity.Session, error) {
	playerX, playerO = strings.TrimSpace(playerX), strings.TrimSpace(playerO)
	if playerX == "" || playerO == "" {
		return nil, apperror.ErrEmptyPlayerName
	}

	engine := tictactoe.New(that.engineOpts...)
	engine.StartRound(playerX, playerO)

	session := &entity.Session{
		ID:        uuid.NewString(),
		Game:      engine.State(),
		StartedAt: that.now().UTC(),
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// PlaceMark - plays the active player's mark. A rejected move returns the unchanged session with the error.
func (that *GameManager) PlaceMark(ctx context.Context, sessionID string, row, column int) (*entity.Session, entity.Outcome, error) {
	log := that.logger.With("method", "PlaceMark", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, entity.Outcome{}, err
	}

	engine := tictactoe.Restore(session.Game, that.engineOpts...)

	outcome, err := engine.PlaceMark(row, column)
	if err != nil {
		log.Debug("move rejected", "row", row, "column", column, "error", err)
		return session, outcome, fmt.Errorf("failed to place mark: %w", err)
	}

	session.Game = engine.State()
	if err = that.updateSession(ctx, session); err != nil {
		return nil, entity.Outcome{}, err
	}

	if outcome.EndsRound() {
		log.Info("round over", "outcome", outcome.Kind.String(), "winner", outcome.Winner.String())
	}

	return session, outcome, nil
}

// StartNewRound - clears the board of a session, keeping its score.
func (that *GameManager) StartNewRound(ctx context.Context, sessionID string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine := tictactoe.Restore(session.Game, that.engineOpts...)
	engine.StartNewRound()

	session.Game = engine.State()
	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// FinishSession - closes the game screen and returns who won more rounds.
func (that *GameManager) FinishSession(ctx context.Context, sessionID string) (tictactoe.Summary, error) {
	log := that.logger.With("method", "FinishSession", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return tictactoe.Summary{}, err
	}

	summary := tictactoe.NewSummary(session.Game)

	if err = that.sessionRepo.DeleteByID(ctx, sessionID); err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		log.Error("failed to delete session", "error", err)
	}

	log.Info("session finished", "rounds", summary.Rounds, "leader", summary.Leader.String())

	return summary, nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
