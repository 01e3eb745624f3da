package dataset

import (
	"context"

	"go.uber.org/zap"

	"movie-recs/internal/catalog"
)

// Loader prueba las fuentes en orden y se queda con la primera que produce
// películas válidas. La semilla siempre va al final, así el catálogo nunca queda vacío.
type Loader struct {
	logger  *zap.Logger
	sources []Source
	opts    catalog.PrepareOptions
}

func NewLoader(logger *zap.Logger, sources ...Source) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger, sources: sources}
}

// Load devuelve el catálogo y el nombre de la fuente usada. No devuelve error.
func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, string) {
	for _, src := range l.sources {
		table, err := src.Load(ctx)
		if err != nil {
			l.logger.Warn("dataset source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		movies := catalog.Prepare(table, l.opts)
		if len(movies) == 0 {
			l.logger.Warn("dataset source produced no usable rows",
				zap.String("source", src.Name()),
				zap.Int("rows", len(table.Rows)),
			)
			continue
		}
		l.logger.Info("dataset loaded",
			zap.String("source", src.Name()),
			zap.Int("movies", len(movies)),
			zap.Int("dropped", len(table.Rows)-len(movies)),
		)
		return catalog.New(movies), src.Name()
	}

	l.logger.Warn("all dataset sources failed, using seed data")
	seed := SeedSource{}
	table, _ := seed.Load(ctx)
	return catalog.New(catalog.Prepare(table, l.opts)), seed.Name()
}
