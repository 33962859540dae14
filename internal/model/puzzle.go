package model

import "time"

// PuzzleID uniquely identifies a stored puzzle
type PuzzleID string

// Puzzle is a persisted crossword under construction.
// Words is the source of truth; the board is rebuilt from it on read.
type Puzzle struct {
	ID        PuzzleID     `json:"id"`
	Title     string       `json:"title"`
	Words     []PlacedWord `json:"words"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Board rebuilds the puzzle's board from its words
func (p *Puzzle) Board() (*Board, error) {
	return NewBoardFromWords(p.Words)
}

// SetBoard replaces the puzzle's words with the board's contents
func (p *Puzzle) SetBoard(b *Board) {
	p.Words = b.Words()
}

// WordEntry is a word with an optional clue, as read from a word list
type WordEntry struct {
	Word string `json:"word" yaml:"word"`
	Clue string `json:"clue,omitempty" yaml:"clue,omitempty"`
}

// PuzzleSummary is a lightweight listing record
type PuzzleSummary struct {
	ID        PuzzleID
	Title     string
	WordCount int
	UpdatedAt time.Time
}

// Summary returns the listing record for the puzzle
func (p *Puzzle) Summary() PuzzleSummary {
	return PuzzleSummary{
		ID:        p.ID,
		Title:     p.Title,
		WordCount: len(p.Words),
		UpdatedAt: p.UpdatedAt,
	}
}
