package puzzle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/clock"
	"github.com/mcoot/crosswordbuilder/internal/dependencies/random"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/services/builder"
	"github.com/mcoot/crosswordbuilder/internal/services/dictionary"
	"github.com/mcoot/crosswordbuilder/internal/services/placer"
	"github.com/mcoot/crosswordbuilder/internal/storage"
)

const (
	idLength       = 12
	maxTitleLength = 100
)

// BuildOutcome is a puzzle after a build, with what was and wasn't placed
type BuildOutcome struct {
	Puzzle  *model.Puzzle
	Placed  []model.PlacedWord
	Skipped []model.WordEntry
}

// Controller manages stored puzzles and grows them one word at a time
type Controller struct {
	storage    storage.Storage
	placer     placer.ServiceInterface
	builder    builder.ServiceInterface
	dictionary dictionary.ServiceInterface
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger

	// serializes read-modify-write of puzzles
	mu sync.Mutex
}

// NewController creates a new puzzle Controller
func NewController(
	storage storage.Storage,
	placer placer.ServiceInterface,
	builder builder.ServiceInterface,
	dictionary dictionary.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		placer:     placer,
		builder:    builder,
		dictionary: dictionary,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: empty", model.ErrInvalidTitle)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("%w: longer than %d characters", model.ErrInvalidTitle, maxTitleLength)
	}
	return title, nil
}

// Create stores a new puzzle. Seed words are placed in the order given;
// any that do not fit are left out.
func (c *Controller) Create(ctx context.Context, title string, seed []model.WordEntry) (*BuildOutcome, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	result, err := c.builder.Build(ctx, model.EmptyBoard(), seed, model.StrategyAsGiven)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	puzzle := &model.Puzzle{
		ID:        model.PuzzleID(c.random.String(idLength, random.IDAlphabet)),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	puzzle.SetBoard(result.Board)

	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		c.logger.Error("failed to save puzzle",
			slog.String("puzzle_id", string(puzzle.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("puzzle created",
		slog.String("puzzle_id", string(puzzle.ID)),
		slog.String("title", puzzle.Title),
		slog.Int("word_count", len(puzzle.Words)),
		slog.Int("skipped", len(result.Skipped)),
	)

	return &BuildOutcome{Puzzle: puzzle, Placed: result.Placed, Skipped: result.Skipped}, nil
}

// Get retrieves a puzzle by ID
func (c *Controller) Get(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	return c.storage.GetPuzzle(ctx, id)
}

// GetWithBoard retrieves a puzzle and rebuilds its board
func (c *Controller) GetWithBoard(ctx context.Context, id model.PuzzleID) (*model.Puzzle, *model.Board, error) {
	puzzle, err := c.storage.GetPuzzle(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	board, err := puzzle.Board()
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle %s: %w", id, err)
	}
	return puzzle, board, nil
}

// List returns all puzzles, oldest first
func (c *Controller) List(ctx context.Context) ([]*model.Puzzle, error) {
	return c.storage.ListPuzzles(ctx)
}

// Delete removes a puzzle
func (c *Controller) Delete(ctx context.Context, id model.PuzzleID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetPuzzle(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeletePuzzle(ctx, id); err != nil {
		return err
	}

	c.logger.Info("puzzle deleted", slog.String("puzzle_id", string(id)))
	return nil
}

// AddWord places one word at its best position.
// Returns model.ErrNoValidPlacement, leaving the puzzle unchanged, when it fits nowhere.
func (c *Controller) AddWord(ctx context.Context, id model.PuzzleID, word, clue string) (*model.Puzzle, model.PlacedWord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	puzzle, board, err := c.GetWithBoard(ctx, id)
	if err != nil {
		return nil, model.PlacedWord{}, err
	}

	result, err := c.placer.Place(ctx, board, word, clue)
	if err != nil {
		return nil, model.PlacedWord{}, err
	}

	var placed model.PlacedWord
	for _, w := range result.Words() {
		if !board.Has(w.Key()) {
			placed = w
			break
		}
	}

	puzzle.SetBoard(result)
	puzzle.UpdatedAt = c.clock.Now()
	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, model.PlacedWord{}, err
	}

	c.logger.Info("word placed",
		slog.String("puzzle_id", string(id)),
		slog.String("word", placed.Text),
		slog.String("key", placed.Key().String()),
		slog.Float64("score", result.Score()),
	)

	return puzzle, placed, nil
}

// Build places a list of words on the puzzle in strategy order
func (c *Controller) Build(ctx context.Context, id model.PuzzleID, entries []model.WordEntry, strategy model.BuildStrategy) (*BuildOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	puzzle, board, err := c.GetWithBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := c.builder.Build(ctx, board, entries, strategy)
	if err != nil {
		return nil, err
	}

	if len(result.Placed) > 0 {
		puzzle.SetBoard(result.Board)
		puzzle.UpdatedAt = c.clock.Now()
		if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
			return nil, err
		}
	}

	c.logger.Info("puzzle built",
		slog.String("puzzle_id", string(id)),
		slog.String("strategy", string(strategy)),
		slog.Int("placed", len(result.Placed)),
		slog.Int("skipped", len(result.Skipped)),
	)

	return &BuildOutcome{Puzzle: puzzle, Placed: result.Placed, Skipped: result.Skipped}, nil
}

// BuildFromDictionary builds using the first limit entries of the loaded word list.
// limit <= 0 uses the whole list.
func (c *Controller) BuildFromDictionary(ctx context.Context, id model.PuzzleID, limit int, strategy model.BuildStrategy) (*BuildOutcome, error) {
	entries, err := c.dictionary.Entries(limit)
	if err != nil {
		return nil, err
	}
	return c.Build(ctx, id, entries, strategy)
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, title string, seed []model.WordEntry) (*BuildOutcome, error)
	Get(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	GetWithBoard(ctx context.Context, id model.PuzzleID) (*model.Puzzle, *model.Board, error)
	List(ctx context.Context) ([]*model.Puzzle, error)
	Delete(ctx context.Context, id model.PuzzleID) error
	AddWord(ctx context.Context, id model.PuzzleID, word, clue string) (*model.Puzzle, model.PlacedWord, error)
	Build(ctx context.Context, id model.PuzzleID, entries []model.WordEntry, strategy model.BuildStrategy) (*BuildOutcome, error)
	BuildFromDictionary(ctx context.Context, id model.PuzzleID, limit int, strategy model.BuildStrategy) (*BuildOutcome, error)
}

var _ ControllerInterface = (*Controller)(nil)
