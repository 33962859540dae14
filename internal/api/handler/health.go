package handler

import (
	"net/http"

	"github.com/mcoot/crosswordbuilder/internal/api/response"
	"github.com/mcoot/crosswordbuilder/internal/services/dictionary"
)

// HealthHandler reports liveness and word list state
type HealthHandler struct {
	dictionary dictionary.ServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dictionary dictionary.ServiceInterface) *HealthHandler {
	return &HealthHandler{dictionary: dictionary}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status:        "ok",
		WordListReady: h.dictionary.IsLoaded(),
		WordCount:     h.dictionary.Count(),
	})
}
