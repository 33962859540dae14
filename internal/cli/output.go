package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Puzzle:
		o.printPuzzle(v)
	case PuzzleList:
		o.printPuzzleList(v)
	case AddWordResult:
		o.printAddWordResult(v)
	case BuildResult:
		o.printBuildResult(v)
	case SolveResult:
		o.printSolveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Word response type (matches API)
type Word struct {
	Number      int    `json:"number"`
	Orientation string `json:"orientation"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Text        string `json:"text"`
	Clue        string `json:"clue,omitempty"`
	Length      int    `json:"length"`
}

// Puzzle response type
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

// PuzzleSummary response type
type PuzzleSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	WordCount int       `json:"word_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PuzzleList response type
type PuzzleList struct {
	Puzzles []PuzzleSummary `json:"puzzles"`
}

// AddWordResult response type
type AddWordResult struct {
	Puzzle Puzzle `json:"puzzle"`
	Placed Word   `json:"placed"`
}

// WordEntry is an unplaced word
type WordEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue,omitempty"`
}

// BuildResult response type
type BuildResult struct {
	Puzzle   Puzzle      `json:"puzzle"`
	Placed   []Word      `json:"placed"`
	Skipped  []WordEntry `json:"skipped"`
	Unlisted []string    `json:"unlisted,omitempty"`
}

// SolveResult is the outcome of solving a plan locally
type SolveResult struct {
	Title    string      `json:"title"`
	Strategy string      `json:"strategy"`
	Grid     string      `json:"grid"`
	Placed   []Word      `json:"placed"`
	Skipped  []WordEntry `json:"skipped"`
}

// HealthResult response type
type HealthResult struct {
	Status        string `json:"status"`
	WordListReady bool   `json:"word_list_ready"`
	WordCount     int    `json:"word_count"`
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Fprintf(o.w, "Puzzle: %s (%s)\n", p.Title, p.ID)
	if p.Score == nil {
		fmt.Fprintln(o.w, "Board: empty")
		return
	}
	fmt.Fprintf(o.w, "Size: %dx%d, %d cells filled, score %.3f\n", p.Width, p.Height, p.Occupied, *p.Score)
	for _, row := range p.Rows {
		fmt.Fprintf(o.w, "  %s\n", row)
	}
	o.printClues(p.Words)
}

func (o *Output) printClues(words []Word) {
	for _, orientation := range []string{"across", "down"} {
		var lines []string
		for _, w := range words {
			if w.Orientation != orientation {
				continue
			}
			clue := w.Clue
			if clue == "" {
				clue = w.Text
			}
			lines = append(lines, fmt.Sprintf("  %d. %s (%d)", w.Number, clue, w.Length))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(o.w, "%s:\n", strings.ToUpper(orientation[:1])+orientation[1:])
		for _, l := range lines {
			fmt.Fprintln(o.w, l)
		}
	}
}

func (o *Output) printPuzzleList(l PuzzleList) {
	if len(l.Puzzles) == 0 {
		fmt.Fprintln(o.w, "No puzzles")
		return
	}
	for _, p := range l.Puzzles {
		fmt.Fprintf(o.w, "%s  %-30s %3d words  %s\n", p.ID, p.Title, p.WordCount, p.UpdatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printWord(prefix string, w Word) {
	fmt.Fprintf(o.w, "%s %s %s at (%d, %d)\n", prefix, w.Text, w.Orientation, w.X, w.Y)
}

func (o *Output) printAddWordResult(r AddWordResult) {
	o.printWord("Placed", r.Placed)
	o.printPuzzle(r.Puzzle)
}

func (o *Output) printSkipped(skipped []WordEntry) {
	if len(skipped) == 0 {
		return
	}
	words := make([]string, len(skipped))
	for i, s := range skipped {
		words[i] = s.Word
	}
	fmt.Fprintf(o.w, "Skipped (%d): %s\n", len(skipped), strings.Join(words, ", "))
}

func (o *Output) printBuildResult(r BuildResult) {
	for _, w := range r.Placed {
		o.printWord("Placed", w)
	}
	o.printSkipped(r.Skipped)
	if len(r.Unlisted) > 0 {
		fmt.Fprintf(o.w, "Not on word list: %s\n", strings.Join(r.Unlisted, ", "))
	}
	o.printPuzzle(r.Puzzle)
}

func (o *Output) printSolveResult(r SolveResult) {
	fmt.Fprintf(o.w, "%s (%s)\n", r.Title, model.BuildStrategy(r.Strategy).DisplayName())
	fmt.Fprint(o.w, r.Grid)
	for _, w := range r.Placed {
		o.printWord("Placed", w)
	}
	o.printSkipped(r.Skipped)
	o.printClues(r.Placed)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.WordListReady {
		fmt.Fprintf(o.w, "Word list: %d words\n", h.WordCount)
	} else {
		fmt.Fprintln(o.w, "Word list: not loaded")
	}
}
