package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) jacobJohn() *Board {
	board, err := NewBoard(map[Key]Entry{
		{Orientation: Down, X: 0, Y: 0}:   {Text: "jacob"},
		{Orientation: Across, X: 0, Y: 0}: {Text: "john", Clue: "A name"},
	})
	s.Require().NoError(err)
	return board
}

// Construction tests

func (s *BoardSuite) TestEmptyBoard() {
	board := EmptyBoard()

	s.Equal(0, board.Width())
	s.Equal(0, board.Height())
	s.Equal(0, board.Occupied())
	s.Equal(0.0, board.FillRatio())
	s.True(math.IsInf(board.Score(), 1))
	s.Empty(board.Words())
}

func (s *BoardSuite) TestNewBoardDerivesGeometry() {
	board := s.jacobJohn()

	s.Equal(4, board.Width())
	s.Equal(5, board.Height())
	s.Equal(8, board.Occupied())
	s.InDelta(0.4, board.FillRatio(), 1e-9)
	s.Equal(2.5, board.Score())
}

func (s *BoardSuite) TestNewBoardNormalizesToUppercase() {
	board := s.jacobJohn()

	w, ok := board.Word(Key{Orientation: Down, X: 0, Y: 0})
	s.Require().True(ok)
	s.Equal("JACOB", w.Text)

	c, ok := board.CharAt(3, 0)
	s.True(ok)
	s.Equal('N', c)
}

func (s *BoardSuite) TestNewBoardKeepsClue() {
	board := s.jacobJohn()

	w, ok := board.Word(Key{Orientation: Across, X: 0, Y: 0})
	s.Require().True(ok)
	s.Equal("A name", w.Clue)
}

func (s *BoardSuite) TestNewBoardRejectsConflictingOverlap() {
	_, err := NewBoard(map[Key]Entry{
		{Orientation: Down, X: 0, Y: 0}:   {Text: "jacob"},
		{Orientation: Across, X: 0, Y: 1}: {Text: "zed"},
	})
	s.ErrorIs(err, ErrConflictingOverlap)
}

func (s *BoardSuite) TestNewBoardAcceptsAgreeingOverlap() {
	board, err := NewBoard(map[Key]Entry{
		{Orientation: Down, X: 0, Y: 0}:   {Text: "jacob"},
		{Orientation: Across, X: 0, Y: 1}: {Text: "ape"},
	})
	s.Require().NoError(err)
	s.Equal(7, board.Occupied())
}

func (s *BoardSuite) TestNewBoardRejectsInvalidWords() {
	_, err := NewBoard(map[Key]Entry{{Orientation: Across}: {Text: ""}})
	s.ErrorIs(err, ErrInvalidWord)

	_, err = NewBoard(map[Key]Entry{{Orientation: Across}: {Text: "ab1"}})
	s.ErrorIs(err, ErrInvalidWord)

	_, err = NewBoard(map[Key]Entry{{Orientation: Across}: {Text: "two words"}})
	s.ErrorIs(err, ErrInvalidWord)
}

func (s *BoardSuite) TestNewBoardRejectsNegativeAnchor() {
	_, err := NewBoard(map[Key]Entry{{Orientation: Down, X: -1, Y: 0}: {Text: "cat"}})
	s.ErrorIs(err, ErrInvalidAnchor)
}

func (s *BoardSuite) TestNewBoardFromWordsRejectsDuplicateKey() {
	_, err := NewBoardFromWords([]PlacedWord{
		{Orientation: Across, Text: "cat"},
		{Orientation: Across, Text: "cab"},
	})
	s.ErrorIs(err, ErrDuplicateKey)
}

// CharAt tests

func (s *BoardSuite) TestCharAtEmptyCell() {
	board := s.jacobJohn()

	_, ok := board.CharAt(2, 2)
	s.False(ok)
	_, ok = board.CharAt(-5, 100)
	s.False(ok)
	s.True(board.IsEmpty(2, 2))
}

// WithPlacement tests

func (s *BoardSuite) TestWithPlacementReturnsNewBoard() {
	board := s.jacobJohn()

	next, err := board.WithPlacement(PlacedWord{Orientation: Down, Anchor: Position{X: 2, Y: 0}, Text: "howl"})
	s.Require().NoError(err)

	s.Equal(3, next.Len())
	s.Equal(2, board.Len())
	s.True(board.IsEmpty(2, 1))
	c, _ := next.CharAt(2, 1)
	s.Equal('O', c)
}

func (s *BoardSuite) TestWithPlacementRejectsDuplicateKey() {
	board := s.jacobJohn()

	_, err := board.WithPlacement(PlacedWord{Orientation: Down, Text: "jab"})
	s.ErrorIs(err, ErrDuplicateKey)
}

func (s *BoardSuite) TestWithPlacementRejectsConflict() {
	board := s.jacobJohn()

	_, err := board.WithPlacement(PlacedWord{Orientation: Down, Anchor: Position{X: 1, Y: 0}, Text: "xyz"})
	s.ErrorIs(err, ErrConflictingOverlap)
}

// Derived attribute tests

func (s *BoardSuite) TestDerivedAttributesAreStable() {
	board := s.jacobJohn()

	s.Equal(board.Width(), board.Width())
	s.Equal(board.Height(), board.Height())
	s.Equal(board.Score(), board.Score())
	s.Equal(board.Grid(), board.Grid())
}

func (s *BoardSuite) TestGridIsACopy() {
	board := s.jacobJohn()

	grid := board.Grid()
	grid[Position{X: 9, Y: 9}] = 'Z'
	delete(grid, Position{X: 0, Y: 0})

	s.True(board.IsEmpty(9, 9))
	s.False(board.IsEmpty(0, 0))
	s.Equal(8, board.Occupied())
}

func (s *BoardSuite) TestScoreDecreasesWithDensity() {
	sparse, err := NewBoardFromWords([]PlacedWord{
		{Orientation: Across, Text: "cat"},
		{Orientation: Across, Anchor: Position{Y: 2}, Text: "dog"},
	})
	s.Require().NoError(err)
	dense, err := NewBoardFromWords([]PlacedWord{
		{Orientation: Across, Text: "cat"},
		{Orientation: Across, Anchor: Position{Y: 1}, Text: "dog"},
	})
	s.Require().NoError(err)

	s.Greater(dense.FillRatio(), sparse.FillRatio())
	s.Less(dense.Score(), sparse.Score())
}

func (s *BoardSuite) TestWordsAreOrdered() {
	board := s.jacobJohn()

	words := board.Words()
	s.Require().Len(words, 2)
	s.Equal(Across, words[0].Orientation)
	s.Equal(Down, words[1].Orientation)
}

func (s *BoardSuite) TestCells() {
	w := PlacedWord{Orientation: Down, Anchor: Position{X: 1, Y: 2}, Text: "ÉTÉ"}
	s.Equal([]Position{{1, 2}, {1, 3}, {1, 4}}, w.Cells())
	s.Equal(3, w.Len())
}

// Orientation tests

func (s *BoardSuite) TestParseOrientation() {
	o, err := ParseOrientation("Across")
	s.Require().NoError(err)
	s.Equal(Across, o)

	o, err = ParseOrientation("d")
	s.Require().NoError(err)
	s.Equal(Down, o)

	_, err = ParseOrientation("diagonal")
	s.ErrorIs(err, ErrInvalidOrientation)
}

func (s *BoardSuite) TestOrientationJSON() {
	data, err := json.Marshal(PlacedWord{Orientation: Down, Text: "CAT"})
	s.Require().NoError(err)
	s.Contains(string(data), `"orientation":"down"`)

	var w PlacedWord
	s.Require().NoError(json.Unmarshal(data, &w))
	s.Equal(Down, w.Orientation)
}
