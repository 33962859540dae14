package render

import (
	"bytes"
	"context"
	"strconv"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

//go:generate templ generate

// cell is one grid square as the puzzle template draws it
type cell struct {
	Block  bool
	Letter string
	Number int
}

// cellRows lays the board out row by row, numbering anchor cells
func cellRows(b *model.Board) [][]cell {
	numbers := Numbering(b)
	rows := make([][]cell, b.Height())
	for y := range rows {
		rows[y] = make([]cell, b.Width())
		for x := range rows[y] {
			c, ok := b.CharAt(x, y)
			if !ok {
				rows[y][x] = cell{Block: true}
				continue
			}
			rows[y][x] = cell{Letter: string(c), Number: numbers[model.Position{X: x, Y: y}]}
		}
	}
	return rows
}

type clueList struct {
	Orientation model.Orientation
	Clues       []Clue
}

func clueLists(b *model.Board) []clueList {
	across, down := Clues(b)
	return []clueList{
		{Orientation: model.Across, Clues: across},
		{Orientation: model.Down, Clues: down},
	}
}

// clueText falls back to the answer when a word has no clue
func clueText(c Clue) string {
	if c.Word.Clue != "" {
		return c.Word.Clue
	}
	return c.Word.Text
}

func formatScore(b *model.Board) string {
	return strconv.FormatFloat(b.Score(), 'f', 3, 64)
}

func pageTitle(title string) string {
	if title == "" {
		return "Crossword"
	}
	return title
}

// RenderHTML renders the Puzzle component to a string
func RenderHTML(ctx context.Context, title string, b *model.Board) (string, error) {
	var buf bytes.Buffer
	if err := Puzzle(title, b).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
