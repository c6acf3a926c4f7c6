package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/jogo-da-velha/internal"
	"github.com/rocketscienceinc/jogo-da-velha/internal/config"
)

const defaultConfigPath = "config.yml"

// main - is the entry point of the application. It parses the command line and runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "velha",
		Short:        "Two-player tic-tac-toe on a single device",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			// the screen owns stdout, so the terminal ui logs to a file
			logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer logFile.Close()

			return app.RunTerminal(initLogger(conf, logFile), conf)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the game to a browser on this device",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			if err := app.RunApp(initLogger(conf, os.Stdout), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	})

	return rootCmd
}

// initialize config. A missing default file falls back to the environment.
func initConfig(path string) *config.Config {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.MustLoad("")
		}
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
