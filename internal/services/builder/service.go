package builder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/random"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/services/placer"
)

// Result is the outcome of building over a word list
type Result struct {
	Board   *model.Board
	Placed  []model.PlacedWord
	Skipped []model.WordEntry
}

// Service chains single-word placements over a list of words
type Service struct {
	placer placer.ServiceInterface
	random random.Random
	logger *slog.Logger
}

// New creates a new builder Service
func New(placer placer.ServiceInterface, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		placer: placer,
		random: random,
		logger: logger,
	}
}

// Build places each entry on the board in strategy order, keeping every
// successful placement. Words that fit nowhere, or are not valid words, are
// skipped. The context is checked between words.
func (s *Service) Build(ctx context.Context, board *model.Board, entries []model.WordEntry, strategy model.BuildStrategy) (*Result, error) {
	order, err := StrategyFor(strategy, s.random)
	if err != nil {
		return nil, err
	}

	result := &Result{Board: board}
	for _, entry := range order.Order(entries) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := s.placer.Place(ctx, result.Board, entry.Word, entry.Clue)
		switch {
		case errors.Is(err, model.ErrNoValidPlacement), errors.Is(err, model.ErrInvalidWord):
			result.Skipped = append(result.Skipped, entry)
			continue
		case err != nil:
			return nil, err
		}

		if w, ok := addedWord(result.Board, next); ok {
			result.Placed = append(result.Placed, w)
		}
		result.Board = next
	}

	s.logger.Info("build complete",
		slog.String("strategy", string(strategy)),
		slog.Int("placed", len(result.Placed)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Float64("score", result.Board.Score()),
	)

	return result, nil
}

// addedWord finds the word present in after but not before
func addedWord(before, after *model.Board) (model.PlacedWord, bool) {
	for _, w := range after.Words() {
		if !before.Has(w.Key()) {
			return w, true
		}
	}
	return model.PlacedWord{}, false
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(ctx context.Context, board *model.Board, entries []model.WordEntry, strategy model.BuildStrategy) (*Result, error)
}

var _ ServiceInterface = (*Service)(nil)
