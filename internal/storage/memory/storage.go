package memory

import (
	"context"
	"sync"

	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles  map[model.PuzzleID]*model.Puzzle
	wordList []model.WordEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles: make(map[model.PuzzleID]*model.Puzzle),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = clonePuzzle(puzzle)
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return clonePuzzle(puzzle), nil
}

func (s *Storage) ListPuzzles(ctx context.Context) ([]*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzles := make([]*model.Puzzle, 0, len(s.puzzles))
	for _, puzzle := range s.puzzles {
		puzzles = append(puzzles, clonePuzzle(puzzle))
	}
	storage.SortPuzzles(puzzles)
	return puzzles, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

// Word list operations

func (s *Storage) GetWordList(ctx context.Context) ([]model.WordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordList == nil {
		return nil, model.ErrWordListNotLoaded
	}
	result := make([]model.WordEntry, len(s.wordList))
	copy(result, s.wordList)
	return result, nil
}

func (s *Storage) SaveWordList(ctx context.Context, entries []model.WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordList = make([]model.WordEntry, len(entries))
	copy(s.wordList, entries)
	return nil
}

// clonePuzzle copies a puzzle so callers never share the stored word slice
func clonePuzzle(p *model.Puzzle) *model.Puzzle {
	c := *p
	c.Words = make([]model.PlacedWord, len(p.Words))
	copy(c.Words, p.Words)
	return &c
}
