package redis

import (
	"fmt"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Key prefix for all puzzle data
const keyPrefix = "xword"

// puzzleKey returns the Redis key for a Puzzle
func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

// puzzleIndexKey returns the Redis key for the SET of all puzzle keys
func puzzleIndexKey() string {
	return fmt.Sprintf("%s:idx:puzzles", keyPrefix)
}

// wordListKey returns the Redis key for the stored word list
func wordListKey() string {
	return fmt.Sprintf("%s:wordlist", keyPrefix)
}
