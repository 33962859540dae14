package placer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

var (
	placementAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xword_placement_attempts_total",
		Help: "Word placement attempts by outcome",
	}, []string{"outcome"})

	placementScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xword_placement_board_score",
		Help:    "Score of the board chosen for a successful placement (lower is denser)",
		Buckets: []float64{1, 1.25, 1.5, 2, 3, 5, 8, 13},
	})
)

// Service wraps the placement search with logging and metrics
type Service struct {
	logger *slog.Logger
}

// New creates a new placement Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Place puts word on the board at its best position.
// Returns model.ErrNoValidPlacement when it fits nowhere.
func (s *Service) Place(ctx context.Context, board *model.Board, word, clue string) (*model.Board, error) {
	next, ok, err := WithWord(ctx, board, word, clue)
	switch {
	case errors.Is(err, model.ErrInvalidWord):
		placementAttempts.WithLabelValues("invalid").Inc()
		return nil, err
	case err != nil:
		return nil, err
	case !ok:
		placementAttempts.WithLabelValues("none").Inc()
		s.logger.Debug("no placement found",
			slog.String("word", word),
			slog.Int("width", board.Width()),
			slog.Int("height", board.Height()),
		)
		return nil, model.ErrNoValidPlacement
	}

	placementAttempts.WithLabelValues("placed").Inc()
	placementScore.Observe(next.Score())
	return next, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Place(ctx context.Context, board *model.Board, word, clue string) (*model.Board, error)
}

var _ ServiceInterface = (*Service)(nil)
