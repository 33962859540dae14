package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/crosswordbuilder/internal/api"
	"github.com/mcoot/crosswordbuilder/internal/factory"
	redisstorage "github.com/mcoot/crosswordbuilder/internal/storage/redis"
)

const defaultWordListPath = "data/words.txt"

func main() {
	os.Exit(run())
}

// loadConfig builds the factory and server config from environment lookups
func loadConfig(getenv func(string) string) (factory.Config, api.ServerConfig, error) {
	cfg := factory.Config{
		WordListPath: getenv("WORDLIST_PATH"),
		StorageType:  getenv("STORAGE_TYPE"),
	}
	if cfg.WordListPath == "" {
		cfg.WordListPath = defaultWordListPath
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := getenv("REDIS_URL")
		if redisURL == "" {
			return factory.Config{}, api.ServerConfig{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	serverConfig := api.DefaultServerConfig()
	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return factory.Config{}, api.ServerConfig{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		serverConfig.Port = p
	}

	return cfg, serverConfig, nil
}

// run starts the server and blocks until shutdown, returning the exit code.
// Deferred cleanup always runs before main exits.
func run() int {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, serverConfig, err := loadConfig(os.Getenv)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		return 1
	}
	cfg.Logger = logger

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close application", slog.String("error", err.Error()))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		PuzzleController: app.PuzzleController,
		Dictionary:       app.DictionaryService,
	})
	server := api.NewServer(router, serverConfig, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
	return 0
}
