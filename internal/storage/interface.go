package storage

import (
	"context"
	"sort"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	ListPuzzles(ctx context.Context) ([]*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error

	// Word list operations
	GetWordList(ctx context.Context) ([]model.WordEntry, error)
	SaveWordList(ctx context.Context, entries []model.WordEntry) error
}

// SortPuzzles orders puzzles oldest first, breaking ties by ID
func SortPuzzles(puzzles []*model.Puzzle) {
	sort.Slice(puzzles, func(i, j int) bool {
		if !puzzles[i].CreatedAt.Equal(puzzles[j].CreatedAt) {
			return puzzles[i].CreatedAt.Before(puzzles[j].CreatedAt)
		}
		return puzzles[i].ID < puzzles[j].ID
	})
}
