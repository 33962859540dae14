package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/crosswordbuilder/internal/api/apierr"
	"github.com/mcoot/crosswordbuilder/internal/api/request"
	"github.com/mcoot/crosswordbuilder/internal/api/response"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/render"
	"github.com/mcoot/crosswordbuilder/internal/services/dictionary"
	"github.com/mcoot/crosswordbuilder/internal/services/puzzle"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	controller puzzle.ControllerInterface
	dictionary dictionary.ServiceInterface
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(controller puzzle.ControllerInterface, dict dictionary.ServiceInterface) *PuzzleHandler {
	return &PuzzleHandler{controller: controller, dictionary: dict}
}

// listed reports word list membership, or nil when no list is loaded
func (h *PuzzleHandler) listed() func(string) bool {
	if h.dictionary == nil || !h.dictionary.IsLoaded() {
		return nil
	}
	return h.dictionary.Contains
}

func puzzleID(r *http.Request) model.PuzzleID {
	return model.PuzzleID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzleRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	outcome, err := h.controller.Create(r.Context(), req.Title, request.ToModel(req.Words))
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := outcome.Puzzle.Board()
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/puzzles/"+string(outcome.Puzzle.ID))
	response.JSON(w, http.StatusCreated,
		response.BuildResponseFromOutcome(outcome.Puzzle, board, outcome.Placed, outcome.Skipped, h.listed()))
}

// List handles GET /api/v1/puzzles
func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	puzzles, err := h.controller.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := response.PuzzleList{Puzzles: make([]response.PuzzleSummary, len(puzzles))}
	for i, p := range puzzles {
		out.Puzzles[i] = response.PuzzleSummaryFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, board, err := h.controller.GetWithBoard(r.Context(), puzzleID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	if response.CheckETag(w, r, render.ETag(board)) {
		return
	}
	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p, board))
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Delete(r.Context(), puzzleID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// AddWord handles POST /api/v1/puzzles/{id}/words
func (h *PuzzleHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req request.AddWordRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	p, placed, err := h.controller.AddWord(r.Context(), puzzleID(r), req.Word, req.Clue)
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := p.Board()
	if err != nil {
		WriteError(w, err)
		return
	}

	numbers := render.Numbering(board)
	response.JSON(w, http.StatusOK, response.AddWordResponse{
		Puzzle: response.PuzzleFromModel(p, board),
		Placed: response.WordFromModel(placed, numbers[placed.Anchor]),
	})
}

// Build handles POST /api/v1/puzzles/{id}/build
func (h *PuzzleHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req request.BuildRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	strategy := model.BuildStrategy(req.Strategy)
	var (
		outcome *puzzle.BuildOutcome
		err     error
	)
	switch {
	case req.FromWordList:
		outcome, err = h.controller.BuildFromDictionary(r.Context(), puzzleID(r), req.Limit, strategy)
	case len(req.Words) == 0:
		err = apierr.NewInvalidRequestError("words or from_word_list is required")
	default:
		outcome, err = h.controller.Build(r.Context(), puzzleID(r), request.ToModel(req.Words), strategy)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := outcome.Puzzle.Board()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK,
		response.BuildResponseFromOutcome(outcome.Puzzle, board, outcome.Placed, outcome.Skipped, h.listed()))
}

// RenderText handles GET /api/v1/puzzles/{id}/render
func (h *PuzzleHandler) RenderText(w http.ResponseWriter, r *http.Request) {
	_, board, err := h.controller.GetWithBoard(r.Context(), puzzleID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	if response.CheckETag(w, r, render.ETag(board)) {
		return
	}
	response.Text(w, http.StatusOK, render.Text(board))
}

// RenderHTML handles GET /api/v1/puzzles/{id}/render.html
func (h *PuzzleHandler) RenderHTML(w http.ResponseWriter, r *http.Request) {
	p, board, err := h.controller.GetWithBoard(r.Context(), puzzleID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	if response.CheckETag(w, r, render.ETag(board)) {
		return
	}
	templ.Handler(render.Page(p.Title, board)).ServeHTTP(w, r)
}
