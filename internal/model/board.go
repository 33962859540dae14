package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position identifies a cell on the board
type Position struct {
	X int `json:"x"` // Column, increasing to the right
	Y int `json:"y"` // Row, increasing downwards
}

// Key identifies a placement: no two words on a board share one
type Key struct {
	Orientation Orientation
	X           int
	Y           int
}

// Anchor returns the position of the first letter
func (k Key) Anchor() Position {
	return Position{X: k.X, Y: k.Y}
}

func (k Key) String() string {
	return fmt.Sprintf("%s@%d,%d", k.Orientation, k.X, k.Y)
}

// Entry is the text and optional clue stored under a Key
type Entry struct {
	Text string
	Clue string
}

// PlacedWord is a word fixed at an anchor in one orientation
type PlacedWord struct {
	Orientation Orientation `json:"orientation"`
	Anchor      Position    `json:"anchor"`
	Text        string      `json:"text"`
	Clue        string      `json:"clue,omitempty"`
}

// NormalizeWord upper-cases a word and checks it is a non-empty run of letters
func NormalizeWord(text string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(text))
	if word == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, text, r)
		}
	}
	return word, nil
}

// NewPlacedWord validates and normalizes a word for placement
func NewPlacedWord(orientation Orientation, anchor Position, text, clue string) (PlacedWord, error) {
	if !orientation.Valid() {
		return PlacedWord{}, ErrInvalidOrientation
	}
	if anchor.X < 0 || anchor.Y < 0 {
		return PlacedWord{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidAnchor, anchor.X, anchor.Y)
	}
	word, err := NormalizeWord(text)
	if err != nil {
		return PlacedWord{}, err
	}
	return PlacedWord{
		Orientation: orientation,
		Anchor:      anchor,
		Text:        word,
		Clue:        strings.TrimSpace(clue),
	}, nil
}

// Key returns the placement key of the word
func (w PlacedWord) Key() Key {
	return Key{Orientation: w.Orientation, X: w.Anchor.X, Y: w.Anchor.Y}
}

// Len returns the number of letters
func (w PlacedWord) Len() int {
	return utf8.RuneCountInString(w.Text)
}

// Cells returns the covered positions in letter order
func (w PlacedWord) Cells() []Position {
	dx, dy := w.Orientation.Step()
	cells := make([]Position, 0, w.Len())
	for i := range w.Len() {
		cells = append(cells, Position{X: w.Anchor.X + i*dx, Y: w.Anchor.Y + i*dy})
	}
	return cells
}

// Board is an immutable snapshot of placed words.
// Geometry is derived once at construction.
type Board struct {
	words  map[Key]PlacedWord
	grid   map[Position]rune
	width  int
	height int
}

// EmptyBoard returns a board with no words
func EmptyBoard() *Board {
	return &Board{
		words: map[Key]PlacedWord{},
		grid:  map[Position]rune{},
	}
}

// NewBoard creates a board from an explicit key -> entry mapping
func NewBoard(entries map[Key]Entry) (*Board, error) {
	words := make([]PlacedWord, 0, len(entries))
	for key, entry := range entries {
		w, err := NewPlacedWord(key.Orientation, key.Anchor(), entry.Text, entry.Clue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		words = append(words, w)
	}
	return NewBoardFromWords(words)
}

// NewBoardFromWords creates a board from a list of placed words.
// Duplicate keys and words disagreeing on a shared cell are rejected.
func NewBoardFromWords(words []PlacedWord) (*Board, error) {
	b := EmptyBoard()
	sorted := make([]PlacedWord, len(words))
	copy(sorted, words)
	sortWords(sorted)

	for _, w := range sorted {
		if !w.Orientation.Valid() {
			return nil, ErrInvalidOrientation
		}
		if w.Anchor.X < 0 || w.Anchor.Y < 0 {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidAnchor, w.Anchor.X, w.Anchor.Y)
		}
		text, err := NormalizeWord(w.Text)
		if err != nil {
			return nil, err
		}
		w.Text = text
		if err := b.add(w); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// add inserts a word into a board under construction
func (b *Board) add(w PlacedWord) error {
	key := w.Key()
	if _, ok := b.words[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	letters := []rune(w.Text)
	cells := w.Cells()
	for i, pos := range cells {
		if existing, ok := b.grid[pos]; ok && existing != letters[i] {
			return fmt.Errorf("%w: %q vs %q at (%d, %d)", ErrConflictingOverlap, existing, letters[i], pos.X, pos.Y)
		}
	}

	b.words[key] = w
	for i, pos := range cells {
		b.grid[pos] = letters[i]
		b.width = max(b.width, pos.X+1)
		b.height = max(b.height, pos.Y+1)
	}
	return nil
}

// WithPlacement returns a copy of the board with one more word
func (b *Board) WithPlacement(w PlacedWord) (*Board, error) {
	text, err := NormalizeWord(w.Text)
	if err != nil {
		return nil, err
	}
	if !w.Orientation.Valid() {
		return nil, ErrInvalidOrientation
	}
	if w.Anchor.X < 0 || w.Anchor.Y < 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidAnchor, w.Anchor.X, w.Anchor.Y)
	}
	w.Text = text

	next := b.clone()
	if err := next.add(w); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *Board) clone() *Board {
	next := &Board{
		words:  make(map[Key]PlacedWord, len(b.words)+1),
		grid:   make(map[Position]rune, len(b.grid)+8),
		width:  b.width,
		height: b.height,
	}
	for k, w := range b.words {
		next.words[k] = w
	}
	for p, r := range b.grid {
		next.grid[p] = r
	}
	return next
}

// CharAt returns the letter at a cell, or false if no word covers it
func (b *Board) CharAt(x, y int) (rune, bool) {
	r, ok := b.grid[Position{X: x, Y: y}]
	return r, ok
}

// IsEmpty returns true if no word covers the cell
func (b *Board) IsEmpty(x, y int) bool {
	_, ok := b.grid[Position{X: x, Y: y}]
	return !ok
}

// Has returns true if a word is placed under the key
func (b *Board) Has(key Key) bool {
	_, ok := b.words[key]
	return ok
}

// Word returns the word placed under the key
func (b *Board) Word(key Key) (PlacedWord, bool) {
	w, ok := b.words[key]
	return w, ok
}

// Len returns the number of placed words
func (b *Board) Len() int {
	return len(b.words)
}

// Words returns all placed words ordered by row, column, then Across before Down
func (b *Board) Words() []PlacedWord {
	words := make([]PlacedWord, 0, len(b.words))
	for _, w := range b.words {
		words = append(words, w)
	}
	sortWords(words)
	return words
}

// Width is one more than the largest covered x, or 0 when empty
func (b *Board) Width() int {
	return b.width
}

// Height is one more than the largest covered y, or 0 when empty
func (b *Board) Height() int {
	return b.height
}

// Occupied returns the number of cells holding a letter
func (b *Board) Occupied() int {
	return len(b.grid)
}

// Grid returns a copy of the cell -> letter view
func (b *Board) Grid() map[Position]rune {
	grid := make(map[Position]rune, len(b.grid))
	for p, r := range b.grid {
		grid[p] = r
	}
	return grid
}

// FillRatio is occupied cells over the bounding rectangle area
func (b *Board) FillRatio() float64 {
	area := b.width * b.height
	if area == 0 {
		return 0
	}
	return float64(len(b.grid)) / float64(area)
}

// Score is the inverse of the fill ratio. Lower is better.
// An empty board scores +Inf.
func (b *Board) Score() float64 {
	if len(b.grid) == 0 {
		return math.Inf(1)
	}
	// area/occupied rather than 1/ratio so equal ratios compare equal
	return float64(b.width*b.height) / float64(len(b.grid))
}

func sortWords(words []PlacedWord) {
	sort.Slice(words, func(i, j int) bool {
		a, c := words[i], words[j]
		if a.Anchor.Y != c.Anchor.Y {
			return a.Anchor.Y < c.Anchor.Y
		}
		if a.Anchor.X != c.Anchor.X {
			return a.Anchor.X < c.Anchor.X
		}
		return a.Orientation < c.Orientation
	})
}
