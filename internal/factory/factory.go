package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/clock"
	"github.com/mcoot/crosswordbuilder/internal/dependencies/random"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/services/builder"
	"github.com/mcoot/crosswordbuilder/internal/services/dictionary"
	"github.com/mcoot/crosswordbuilder/internal/services/placer"
	"github.com/mcoot/crosswordbuilder/internal/services/puzzle"
	"github.com/mcoot/crosswordbuilder/internal/storage"
	"github.com/mcoot/crosswordbuilder/internal/storage/memory"
	redisstorage "github.com/mcoot/crosswordbuilder/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	PlacerService     *placer.Service
	BuilderService    *builder.Service
	PuzzleController  *puzzle.Controller

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// WordListPath is loaded at startup when set. Otherwise a word list
	// previously saved to storage is used, if there is one.
	WordListPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var (
		store   storage.Storage
		closers []io.Closer
	)
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)
	app.closers = closers

	if err := app.loadWordList(ctx, cfg.WordListPath, logger); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) loadWordList(ctx context.Context, path string, logger *slog.Logger) error {
	if path != "" {
		return a.DictionaryService.LoadFromFile(ctx, path)
	}
	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrWordListNotLoaded) {
		logger.Warn("no word list available, dictionary builds are disabled")
		return nil
	}
	return err
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)
	placerService := placer.New(logger)
	builderService := builder.New(placerService, rnd, logger)
	puzzleController := puzzle.NewController(store, placerService, builderService, dictService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		PlacerService:     placerService,
		BuilderService:    builderService,
		PuzzleController:  puzzleController,
	}
}
