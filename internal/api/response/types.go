package response

import (
	"strings"
	"time"

	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/render"
)

// Word represents a placed word in API responses
type Word struct {
	Number      int    `json:"number"`
	Orientation string `json:"orientation"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Text        string `json:"text"`
	Clue        string `json:"clue,omitempty"`
	Length      int    `json:"length"`
}

// WordFromModel converts a placed word; number is its crossword number
func WordFromModel(w model.PlacedWord, number int) Word {
	return Word{
		Number:      number,
		Orientation: w.Orientation.String(),
		X:           w.Anchor.X,
		Y:           w.Anchor.Y,
		Text:        w.Text,
		Clue:        w.Clue,
		Length:      w.Len(),
	}
}

// Puzzle represents a puzzle with its derived board attributes.
// Score and fill ratio are omitted for an empty board.
type Puzzle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Words       []Word    `json:"words"`
	Rows        []string  `json:"rows"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Occupied    int       `json:"occupied"`
	FillRatio   *float64  `json:"fill_ratio,omitempty"`
	Score       *float64  `json:"score,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmptyCell marks uncovered cells in Rows
const EmptyCell = '.'

// PuzzleFromModel converts a puzzle and its rebuilt board
func PuzzleFromModel(p *model.Puzzle, b *model.Board) Puzzle {
	numbers := render.Numbering(b)
	words := b.Words()
	out := Puzzle{
		ID:          string(p.ID),
		Title:       p.Title,
		Words:       make([]Word, len(words)),
		Rows:        rows(b),
		Width:       b.Width(),
		Height:      b.Height(),
		Occupied:    b.Occupied(),
		Fingerprint: render.Fingerprint(b),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for i, w := range words {
		out.Words[i] = WordFromModel(w, numbers[w.Anchor])
	}
	if b.Occupied() > 0 {
		ratio, score := b.FillRatio(), b.Score()
		out.FillRatio = &ratio
		out.Score = &score
	}
	return out
}

func rows(b *model.Board) []string {
	out := make([]string, b.Height())
	for y := range b.Height() {
		var sb strings.Builder
		for x := range b.Width() {
			if c, ok := b.CharAt(x, y); ok {
				sb.WriteRune(c)
			} else {
				sb.WriteRune(EmptyCell)
			}
		}
		out[y] = sb.String()
	}
	return out
}

// PuzzleSummary is a listing entry
type PuzzleSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	WordCount int       `json:"word_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PuzzleSummaryFromModel converts a puzzle to its listing entry
func PuzzleSummaryFromModel(p *model.Puzzle) PuzzleSummary {
	s := p.Summary()
	return PuzzleSummary{
		ID:        string(s.ID),
		Title:     s.Title,
		WordCount: s.WordCount,
		UpdatedAt: s.UpdatedAt,
	}
}

// PuzzleList is the response for listing puzzles
type PuzzleList struct {
	Puzzles []PuzzleSummary `json:"puzzles"`
}

// AddWordResponse is the response for placing a single word
type AddWordResponse struct {
	Puzzle Puzzle `json:"puzzle"`
	Placed Word   `json:"placed"`
}

// WordEntry is an unplaced word
type WordEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue,omitempty"`
}

// BuildResponse is the response for building over a word list
type BuildResponse struct {
	Puzzle   Puzzle      `json:"puzzle"`
	Placed   []Word      `json:"placed"`
	Skipped  []WordEntry `json:"skipped"`
	Unlisted []string    `json:"unlisted,omitempty"`
}

// BuildResponseFromOutcome converts a build outcome and the resulting board.
// Placed words for which listed returns false are reported in Unlisted; a nil
// listed skips the check.
func BuildResponseFromOutcome(p *model.Puzzle, b *model.Board, placed []model.PlacedWord, skipped []model.WordEntry, listed func(string) bool) BuildResponse {
	numbers := render.Numbering(b)
	out := BuildResponse{
		Puzzle:  PuzzleFromModel(p, b),
		Placed:  make([]Word, len(placed)),
		Skipped: make([]WordEntry, len(skipped)),
	}
	for i, w := range placed {
		out.Placed[i] = WordFromModel(w, numbers[w.Anchor])
		if listed != nil && !listed(w.Text) {
			out.Unlisted = append(out.Unlisted, w.Text)
		}
	}
	for i, e := range skipped {
		out.Skipped[i] = WordEntry{Word: e.Word, Clue: e.Clue}
	}
	return out
}

// Health is the response for the health check
type Health struct {
	Status        string `json:"status"`
	WordListReady bool   `json:"word_list_ready"`
	WordCount     int    `json:"word_count"`
}
