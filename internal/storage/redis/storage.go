package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	key := puzzleKey(puzzle.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, s.cfg.PuzzleTTL)
	pipe.SAdd(ctx, puzzleIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) ListPuzzles(ctx context.Context) ([]*model.Puzzle, error) {
	keys, err := s.client.SMembers(ctx, puzzleIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Puzzle{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	puzzles := make([]*model.Puzzle, 0, len(values))
	var expired []any
	for i, val := range values {
		str, ok := val.(string)
		if !ok {
			// Puzzle expired but its index entry remains
			expired = append(expired, keys[i])
			continue
		}
		var puzzle model.Puzzle
		if err := json.Unmarshal([]byte(str), &puzzle); err != nil {
			continue // Skip invalid data
		}
		puzzles = append(puzzles, &puzzle)
	}

	if len(expired) > 0 {
		if err := s.client.SRem(ctx, puzzleIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}

	storage.SortPuzzles(puzzles)
	return puzzles, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	key := puzzleKey(id)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, puzzleIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Word list operations

func (s *Storage) GetWordList(ctx context.Context) ([]model.WordEntry, error) {
	data, err := s.client.Get(ctx, wordListKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordListNotLoaded
		}
		return nil, err
	}

	var entries []model.WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Storage) SaveWordList(ctx context.Context, entries []model.WordEntry) error {
	if entries == nil {
		entries = []model.WordEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	// Word lists never expire
	return s.client.Set(ctx, wordListKey(), data, 0).Err()
}
