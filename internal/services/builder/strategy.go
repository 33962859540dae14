package builder

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/random"
	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Strategy decides the order in which words are offered to the placer
type Strategy interface {
	// Order returns the entries in placement order without modifying the input
	Order(entries []model.WordEntry) []model.WordEntry
}

// AsGivenStrategy keeps the input order
type AsGivenStrategy struct{}

// Order returns a copy of entries
func (AsGivenStrategy) Order(entries []model.WordEntry) []model.WordEntry {
	ordered := make([]model.WordEntry, len(entries))
	copy(ordered, entries)
	return ordered
}

// LongestFirstStrategy offers longer words first; equal lengths keep input order
type LongestFirstStrategy struct{}

// Order returns entries sorted by descending letter count
func (LongestFirstStrategy) Order(entries []model.WordEntry) []model.WordEntry {
	ordered := AsGivenStrategy{}.Order(entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i].Word) > utf8.RuneCountInString(ordered[j].Word)
	})
	return ordered
}

// ShuffleStrategy offers words in random order
type ShuffleStrategy struct {
	random random.Random
}

// NewShuffleStrategy creates a new ShuffleStrategy
func NewShuffleStrategy(rnd random.Random) *ShuffleStrategy {
	return &ShuffleStrategy{random: rnd}
}

// Order returns a Fisher-Yates shuffle of entries
func (s *ShuffleStrategy) Order(entries []model.WordEntry) []model.WordEntry {
	ordered := AsGivenStrategy{}.Order(entries)
	for i := len(ordered) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}

// StrategyFor returns the Strategy implementing name.
// An empty name selects StrategyAsGiven.
func StrategyFor(name model.BuildStrategy, rnd random.Random) (Strategy, error) {
	switch name {
	case "", model.StrategyAsGiven:
		return AsGivenStrategy{}, nil
	case model.StrategyLongestFirst:
		return LongestFirstStrategy{}, nil
	case model.StrategyShuffled:
		return NewShuffleStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidStrategy, name)
	}
}
