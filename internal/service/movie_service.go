package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"movie-recs/internal/catalog"
	"movie-recs/internal/domain"
)

var (
	ErrInvalidDecade    = errors.New("decade must be a multiple of 10")
	ErrInvalidMinRating = errors.New("min_rating must be between 0 and 10")
	ErrInvalidGenre     = errors.New("genre is too long")
)

const maxGenreLength = 64

// PosterEnricher reemplaza posters por versiones de mayor resolución cuando puede.
// Nunca falla: ante errores devuelve los registros originales.
type PosterEnricher interface {
	Enrich(ctx context.Context, movies []domain.Movie) []domain.Movie
}

type noopEnricher struct{}

func (noopEnricher) Enrich(_ context.Context, movies []domain.Movie) []domain.Movie {
	return movies
}

// MovieService coordina catálogo, tracker de preferencias y motor de recomendación.
type MovieService struct {
	logger   *zap.Logger
	catalog  *catalog.Catalog
	tracker  *PreferenceTracker
	engine   RecommendationEngine
	enricher PosterEnricher
	source   string
}

func NewMovieService(logger *zap.Logger, cat *catalog.Catalog, tracker *PreferenceTracker, enricher PosterEnricher, source string) *MovieService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracker == nil {
		tracker = NewPreferenceTracker()
	}
	if enricher == nil {
		enricher = noopEnricher{}
	}
	if cat == nil {
		cat = catalog.New(catalog.Prepare(catalog.Seed(), catalog.PrepareOptions{}))
	}
	return &MovieService{
		logger:   logger,
		catalog:  cat,
		tracker:  tracker,
		engine:   DefaultRecommendationEngine,
		enricher: enricher,
		source:   source,
	}
}

// ValidateSearchQuery revisa la consulta antes de tocar el tracker.
func ValidateSearchQuery(query domain.SearchQuery) error {
	if len(strings.TrimSpace(query.Genre)) > maxGenreLength {
		return ErrInvalidGenre
	}
	if query.Decade != nil && *query.Decade%10 != 0 {
		return ErrInvalidDecade
	}
	if math.IsNaN(query.MinRating) || query.MinRating < 0 || query.MinRating > 10 {
		return ErrInvalidMinRating
	}
	return nil
}

// Search filtra el catálogo y registra la búsqueda en el perfil.
func (s *MovieService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Movie, error) {
	if err := ValidateSearchQuery(query); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	query.Genre = strings.TrimSpace(query.Genre)

	var genres []string
	if query.Genre != "" {
		genres = []string{query.Genre}
	}
	s.tracker.Record(genres, query.Decade, query.MinRating)

	results := Search(s.catalog.Movies(), query)
	s.logger.Debug("search",
		zap.String("genre", query.Genre),
		zap.Float64("min_rating", query.MinRating),
		zap.Int("results", len(results)),
	)
	return s.enricher.Enrich(ctx, results), nil
}

// Recommendations puntúa todo el catálogo contra el perfil actual. Cualquier panic
// durante el cálculo se registra y produce una lista vacía.
func (s *MovieService) Recommendations(ctx context.Context, limit int) (out []domain.Movie) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recommendation scoring panicked", zap.Any("panic", r))
			out = []domain.Movie{}
		}
	}()

	recs := s.engine.Recommend(s.catalog.Movies(), s.tracker.Snapshot(), limit)
	return s.enricher.Enrich(ctx, recs)
}

func (s *MovieService) Filters() domain.FilterOptions {
	return s.catalog.FilterOptions()
}

func (s *MovieService) Profile() domain.PreferenceSnapshot {
	return s.tracker.Snapshot()
}

func (s *MovieService) ResetProfile() {
	s.tracker.Reset()
}

func (s *MovieService) CatalogSize() int {
	return s.catalog.Len()
}

// Source indica de dónde se cargó el catálogo.
func (s *MovieService) Source() string {
	return s.source
}
