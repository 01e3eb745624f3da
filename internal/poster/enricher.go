package poster

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"movie-recs/internal/domain"
)

const defaultConcurrency = 4

// Enricher reemplaza el poster de cada película por el que devuelve el Lookup.
// Las fallas, incluidos los panics del Lookup, nunca se propagan: la película
// conserva su poster original.
type Enricher struct {
	lookup      Lookup
	logger      *zap.Logger
	concurrency int
}

func NewEnricher(lookup Lookup, logger *zap.Logger) *Enricher {
	if lookup == nil {
		lookup = NoopLookup{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{lookup: lookup, logger: logger, concurrency: defaultConcurrency}
}

func (e *Enricher) Enrich(ctx context.Context, movies []domain.Movie) []domain.Movie {
	out := make([]domain.Movie, len(movies))
	copy(out, movies)
	if _, ok := e.lookup.(NoopLookup); ok {
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i := range out {
		g.Go(func() error {
			m := out[i]
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("poster lookup panicked",
						zap.String("title", m.Title),
						zap.Int("year", m.Year),
						zap.Any("panic", r),
					)
				}
			}()
			poster, err := e.lookup.Poster(ctx, m.Title, m.Year)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					e.logger.Debug("poster lookup failed",
						zap.String("title", m.Title),
						zap.Int("year", m.Year),
						zap.Bool("breaker_open", IsUnavailable(err)),
						zap.Error(err),
					)
				}
				return nil
			}
			out[i].Poster = poster
			return nil
		})
	}
	_ = g.Wait()
	return out
}
