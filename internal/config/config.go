package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"VELHA_LOG_LEVEL" env-default:"info"`
	LogFile    string `yaml:"log-file" env:"VELHA_LOG_FILE" env-default:"velha.log"`
	HTTPPort   string `yaml:"http-port" env:"VELHA_HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"VELHA_SOCKET_PORT" env-default:"9091"`
	Storage    string `yaml:"storage" env:"VELHA_STORAGE" env-default:"memory"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"VELHA_REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"VELHA_REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"VELHA_REDIS_SESSION_TTL" env-default:"2h"`
}

type Game struct {
	AlternateStarts bool   `yaml:"alternate-starts" env:"VELHA_ALTERNATE_STARTS" env-default:"false"`
	PlayerX         string `yaml:"player-x" env:"VELHA_PLAYER_X"`
	PlayerO         string `yaml:"player-o" env:"VELHA_PLAYER_O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file when it is given, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
