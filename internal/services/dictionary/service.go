package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/storage"
)

// Service holds the word list that puzzles can be built from
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	entries []model.WordEntry
	index   map[string]struct{}
	loaded  bool
}

// New creates a new word list Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		index:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads the word list previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	entries, err := s.storage.GetWordList(ctx)
	if err != nil {
		return err
	}
	s.load(entries)
	return nil
}

// LoadFromFile loads a word list file and saves it to storage.
// Each line is `word` or `word,clue`; blank lines and lines starting with # are ignored.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return s.LoadEntries(ctx, entries)
}

// LoadEntries normalizes entries, saves them to storage and makes them current
func (s *Service) LoadEntries(ctx context.Context, entries []model.WordEntry) error {
	normalized := normalize(entries)
	if err := s.storage.SaveWordList(ctx, normalized); err != nil {
		return err
	}
	s.load(normalized)
	s.logger.Info("word list loaded",
		slog.Int("entries", len(normalized)),
		slog.Int("dropped", len(entries)-len(normalized)),
	)
	return nil
}

// Parse reads word list lines
func Parse(r io.Reader) ([]model.WordEntry, error) {
	var entries []model.WordEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, clue, _ := strings.Cut(line, ",")
		entries = append(entries, model.WordEntry{
			Word: strings.TrimSpace(word),
			Clue: strings.TrimSpace(clue),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// normalize upper-cases words, dropping invalid words and repeats
func normalize(entries []model.WordEntry) []model.WordEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.WordEntry, 0, len(entries))
	for _, e := range entries {
		word, err := model.NormalizeWord(e.Word)
		if err != nil {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, model.WordEntry{Word: word, Clue: strings.TrimSpace(e.Clue)})
	}
	return out
}

func (s *Service) load(entries []model.WordEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = entries
	s.index = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		s.index[e.Word] = struct{}{}
	}
	s.loaded = true
}

// Entries returns up to limit entries in list order. limit <= 0 means all.
func (s *Service) Entries(limit int) ([]model.WordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrWordListNotLoaded
	}
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.WordEntry, n)
	copy(out, s.entries[:n])
	return out, nil
}

// Contains checks if a word is on the list, ignoring case
func (s *Service) Contains(word string) bool {
	normalized, err := model.NormalizeWord(word)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[normalized]
	return ok
}

// IsLoaded returns whether a word list has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of entries
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadEntries(ctx context.Context, entries []model.WordEntry) error
	Entries(limit int) ([]model.WordEntry, error)
	Contains(word string) bool
	IsLoaded() bool
	Count() int
}

var _ ServiceInterface = (*Service)(nil)
