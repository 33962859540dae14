// Package render draws boards as text and HTML and fingerprints them.
package render

import (
	"fmt"
	"strings"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Block fills cells no word covers
const Block = '█'

// Text draws the board inside a +-| border, followed by its score
func Text(b *model.Board) string {
	var sb strings.Builder
	edge := "+" + strings.Repeat("-", b.Width()) + "+\n"

	sb.WriteString(edge)
	for y := range b.Height() {
		sb.WriteByte('|')
		for x := range b.Width() {
			if c, ok := b.CharAt(x, y); ok {
				sb.WriteRune(c)
			} else {
				sb.WriteRune(Block)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(edge)
	fmt.Fprintf(&sb, "Score: %.3f\n", b.Score())
	return sb.String()
}

// Clue is a numbered clue line
type Clue struct {
	Number int
	Word   model.PlacedWord
}

// Numbering assigns crossword numbers to anchors in row-major order.
// A cell that starts both an Across and a Down word gets one number.
func Numbering(b *model.Board) map[model.Position]int {
	numbers := make(map[model.Position]int)
	next := 1
	// Words() is sorted by row then column
	for _, w := range b.Words() {
		if _, ok := numbers[w.Anchor]; ok {
			continue
		}
		numbers[w.Anchor] = next
		next++
	}
	return numbers
}

// Clues splits the board's words into numbered Across and Down lists
func Clues(b *model.Board) (across, down []Clue) {
	numbers := Numbering(b)
	for _, w := range b.Words() {
		c := Clue{Number: numbers[w.Anchor], Word: w}
		if w.Orientation == model.Across {
			across = append(across, c)
		} else {
			down = append(down, c)
		}
	}
	return across, down
}
