package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/jogo-da-velha/internal/config"
	"github.com/rocketscienceinc/jogo-da-velha/internal/repository"
	"github.com/rocketscienceinc/jogo-da-velha/internal/repository/storage"
	"github.com/rocketscienceinc/jogo-da-velha/internal/tictactoe"
	"github.com/rocketscienceinc/jogo-da-velha/internal/tui"
	"github.com/rocketscienceinc/jogo-da-velha/internal/usecase"
	"github.com/rocketscienceinc/jogo-da-velha/transport/rest"
	"github.com/rocketscienceinc/jogo-da-velha/transport/websocket"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrUnknownStorageType = errors.New("unknown storage type")
)

// RunTerminal - runs the game in the terminal.
func RunTerminal(logger *slog.Logger, conf *config.Config) error {
	return tui.Run(context.Background(), logger, tui.Options{
		PlayerX:         conf.Game.PlayerX,
		PlayerO:         conf.Game.PlayerO,
		AlternateStarts: conf.Game.AlternateStarts,
	})
}

// RunApp - serves the game to a browser on this device until a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	var engineOpts []tictactoe.Option
	if conf.Game.AlternateStarts {
		engineOpts = append(engineOpts, tictactoe.WithAlternatingStarts())
	}

	gameManager := usecase.NewGameManager(logger, sessionRepo, engineOpts...)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory, "":
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		client, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(client, conf.Redis.SessionTTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorageType, conf.Storage)
	}
}
