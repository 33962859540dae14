package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/crosswordbuilder/internal/api/apierr"
	"github.com/mcoot/crosswordbuilder/internal/api/handler"
	"github.com/mcoot/crosswordbuilder/internal/api/middleware"
	sharedmw "github.com/mcoot/crosswordbuilder/internal/middleware"
	"github.com/mcoot/crosswordbuilder/internal/services/dictionary"
	"github.com/mcoot/crosswordbuilder/internal/services/puzzle"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	PuzzleController puzzle.ControllerInterface
	Dictionary       dictionary.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)

	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleController, cfg.Dictionary)
	healthHandler := handler.NewHealthHandler(cfg.Dictionary)

	// Request IDs must be assigned before anything logs
	r.Use(sharedmw.RequestID())

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))
	api.Use(sharedmw.Metrics())

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	puzzles := api.PathPrefix("/puzzles").Subrouter()
	puzzles.HandleFunc("", puzzleHandler.Create).Methods(http.MethodPost)
	puzzles.HandleFunc("", puzzleHandler.List).Methods(http.MethodGet)
	puzzles.HandleFunc("/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	puzzles.HandleFunc("/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	puzzles.HandleFunc("/{id}/words", puzzleHandler.AddWord).Methods(http.MethodPost)
	puzzles.HandleFunc("/{id}/build", puzzleHandler.Build).Methods(http.MethodPost)
	puzzles.HandleFunc("/{id}/render", puzzleHandler.RenderText).Methods(http.MethodGet)
	puzzles.HandleFunc("/{id}/render.html", puzzleHandler.RenderHTML).Methods(http.MethodGet)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
