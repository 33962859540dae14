package request

import "github.com/mcoot/crosswordbuilder/internal/model"

// WordEntry is a word with an optional clue
type WordEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue,omitempty"`
}

// ToModel converts request entries to model entries
func ToModel(entries []WordEntry) []model.WordEntry {
	out := make([]model.WordEntry, len(entries))
	for i, e := range entries {
		out[i] = model.WordEntry{Word: e.Word, Clue: e.Clue}
	}
	return out
}

// CreatePuzzleRequest is the request body for creating a puzzle
type CreatePuzzleRequest struct {
	Title string      `json:"title"`
	Words []WordEntry `json:"words,omitempty"`
}

// AddWordRequest is the request body for placing a single word
type AddWordRequest struct {
	Word string `json:"word"`
	Clue string `json:"clue,omitempty"`
}

// BuildRequest is the request body for placing a list of words.
// With FromWordList set, Words is ignored and the loaded word list is used,
// truncated to Limit entries when Limit > 0.
type BuildRequest struct {
	Words        []WordEntry `json:"words,omitempty"`
	Strategy     string      `json:"strategy,omitempty"`
	FromWordList bool        `json:"from_word_list,omitempty"`
	Limit        int         `json:"limit,omitempty"`
}
