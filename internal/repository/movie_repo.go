package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"movie-recs/internal/catalog"
)

// PgMovieRepository expone la tabla movies como filas crudas para el catálogo.
type PgMovieRepository struct {
	pool *pgxpool.Pool
}

func NewPgMovieRepository(pool *pgxpool.Pool) *PgMovieRepository {
	return &PgMovieRepository{pool: pool}
}

// ListRaw devuelve todas las columnas como texto; el parseo vive en catalog.Prepare.
func (r *PgMovieRepository) ListRaw(ctx context.Context) (catalog.RawTable, error) {
	const query = `
		SELECT
			COALESCE(title, ''),
			COALESCE(year::text, ''),
			COALESCE(genre, ''),
			COALESCE(rating::text, ''),
			COALESCE(poster, ''),
			COALESCE(language, '')
		FROM movies
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return catalog.RawTable{}, err
	}
	defer rows.Close()

	table := catalog.RawTable{
		Header: []string{"title", "year", "genre", "rating", "poster", "language"},
	}
	for rows.Next() {
		var title, year, genre, rating, poster, language string
		if err := rows.Scan(&title, &year, &genre, &rating, &poster, &language); err != nil {
			return catalog.RawTable{}, err
		}
		table.Rows = append(table.Rows, []string{title, year, genre, rating, poster, language})
	}
	return table, rows.Err()
}
