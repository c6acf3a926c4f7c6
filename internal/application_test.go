package application

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rocketscienceinc/jogo-da-velha/internal/config"
	"github.com/rocketscienceinc/jogo-da-velha/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionRepository(t *testing.T) {
	t.Run("Memory storage by default", func(t *testing.T) {
		repo, closeRepo, err := newSessionRepository(testContext(t), &config.Config{})

		require.NoError(t, err)
		require.NotNil(t, repo)
		assert.NoError(t, closeRepo())
	})

	t.Run("Redis storage connects to the configured address", func(t *testing.T) {
		// Given: a running redis
		mini := miniredis.RunT(t)
		conf := &config.Config{
			Storage: config.StorageRedis,
			Redis:   config.Redis{Host: mini.Host(), Port: mini.Port()},
		}

		// When: the repository is built
		repo, closeRepo, err := newSessionRepository(testContext(t), conf)
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeRepo()) }()

		// Then: sessions land in redis
		require.NoError(t, repo.CreateOrUpdate(testContext(t), &entity.Session{ID: "abc"}))
		assert.True(t, mini.Exists("session:abc"))
	})

	t.Run("Unreachable redis is an error", func(t *testing.T) {
		conf := &config.Config{
			Storage: config.StorageRedis,
			Redis:   config.Redis{Host: "127.0.0.1", Port: "1"},
		}

		_, _, err := newSessionRepository(testContext(t), conf)

		assert.Error(t, err)
	})

	t.Run("Unknown storage type", func(t *testing.T) {
		_, _, err := newSessionRepository(testContext(t), &config.Config{Storage: "etcd"})

		assert.ErrorIs(t, err, ErrUnknownStorageType)
	})
}
