package placer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// anchors lists cells that may hold the first letter of word in orientation o.
// The cell before the anchor must be empty, and the anchor itself empty or
// already holding the first letter. Cells already keyed for o are skipped.
func anchors(b *model.Board, letters []rune, o model.Orientation) []model.Position {
	dx, dy := o.Step()
	width, height := max(b.Width(), 1), max(b.Height(), 1)

	var starts []model.Position
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !b.IsEmpty(x-dx, y-dy) {
				continue
			}
			if c, ok := b.CharAt(x, y); ok && c != letters[0] {
				continue
			}
			if b.Has(model.Key{Orientation: o, X: x, Y: y}) {
				continue
			}
			starts = append(starts, model.Position{X: x, Y: y})
		}
	}
	return starts
}

// fits reports whether every letter of word agrees with the board when
// anchored at start: a crossing on an equal letter, or an empty cell whose
// two perpendicular neighbours are also empty.
func fits(b *model.Board, letters []rune, o model.Orientation, start model.Position) bool {
	dx, dy := o.Step()
	// perpendicular unit vector
	px, py := dy, dx

	for i, letter := range letters {
		x, y := start.X+i*dx, start.Y+i*dy
		if c, ok := b.CharAt(x, y); ok {
			if c != letter {
				return false
			}
			continue
		}
		if !b.IsEmpty(x-px, y-py) || !b.IsEmpty(x+px, y+py) {
			return false
		}
	}
	return true
}

func possibleStarts(b *model.Board, letters []rune, o model.Orientation) []model.Position {
	var starts []model.Position
	for _, start := range anchors(b, letters, o) {
		if fits(b, letters, o, start) {
			starts = append(starts, start)
		}
	}
	return starts
}

func candidates(b *model.Board, word, clue string, o model.Orientation) []*model.Board {
	letters := []rune(word)
	starts := possibleStarts(b, letters, o)
	boards := make([]*model.Board, 0, len(starts))
	for _, start := range starts {
		next, err := b.WithPlacement(model.PlacedWord{
			Orientation: o,
			Anchor:      start,
			Text:        word,
			Clue:        clue,
		})
		if err != nil {
			// fits guarantees agreement on every covered cell
			continue
		}
		boards = append(boards, next)
	}
	return boards
}

// PossibleStarts returns every anchor at which word can be legally placed in
// orientation o, in row-major scan order. Invalid words have no starts.
func PossibleStarts(b *model.Board, word string, o model.Orientation) []model.Position {
	normalized, err := model.NormalizeWord(word)
	if err != nil {
		return nil
	}
	return possibleStarts(b, []rune(normalized), o)
}

// Fits reports whether word agrees with every cell it would cover when
// anchored at start. It does not check the anchor conditions.
func Fits(b *model.Board, word string, o model.Orientation, start model.Position) bool {
	normalized, err := model.NormalizeWord(word)
	if err != nil {
		return false
	}
	return fits(b, []rune(normalized), o, start)
}

// Candidates returns one board per legal placement of word in orientation o
func Candidates(b *model.Board, word, clue string, o model.Orientation) ([]*model.Board, error) {
	normalized, err := model.NormalizeWord(word)
	if err != nil {
		return nil, err
	}
	return candidates(b, normalized, clue, o), nil
}

// Best returns the lowest-scoring board. Ties keep the earliest board.
func Best(boards []*model.Board) (*model.Board, bool) {
	var best *model.Board
	for _, b := range boards {
		if best == nil || b.Score() < best.Score() {
			best = b
		}
	}
	return best, best != nil
}

// WithWord places word at its best position across both orientations.
// It returns false when no legal placement exists. Across candidates precede
// Down candidates, so equal scores resolve the same way on every call.
func WithWord(ctx context.Context, b *model.Board, word, clue string) (*model.Board, bool, error) {
	normalized, err := model.NormalizeWord(word)
	if err != nil {
		return nil, false, err
	}

	results := make([][]*model.Board, len(model.Orientations))
	g, gCtx := errgroup.WithContext(ctx)
	for i, o := range model.Orientations {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = candidates(b, normalized, clue, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var all []*model.Board
	for _, r := range results {
		all = append(all, r...)
	}
	best, ok := Best(all)
	return best, ok, nil
}
