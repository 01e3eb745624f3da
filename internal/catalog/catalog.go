package catalog

import (
	"sort"

	"movie-recs/internal/domain"
)

// Catalog es la tabla inmutable de películas. Es segura para lectura concurrente.
type Catalog struct {
	movies  []domain.Movie
	genres  []string
	decades []int
}

// New construye el catálogo a partir de registros ya preparados.
func New(movies []domain.Movie) *Catalog {
	own := make([]domain.Movie, len(movies))
	copy(own, movies)

	genreSet := make(map[string]struct{})
	decadeSet := make(map[int]struct{})
	for _, m := range own {
		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
		decadeSet[m.Decade] = struct{}{}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	decades := make([]int, 0, len(decadeSet))
	for d := range decadeSet {
		decades = append(decades, d)
	}
	sort.Ints(decades)

	return &Catalog{movies: own, genres: genres, decades: decades}
}

// Movies devuelve una copia superficial de los registros en orden de carga.
func (c *Catalog) Movies() []domain.Movie {
	out := make([]domain.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

// Genres devuelve los tags distintos en orden alfabético.
func (c *Catalog) Genres() []string {
	return append([]string{}, c.genres...)
}

// Decades devuelve las décadas distintas en orden ascendente.
func (c *Catalog) Decades() []int {
	return append([]int{}, c.decades...)
}

// RatingSteps es la escala fija de ratings mínimos: 5.0, 5.5, ..., 10.0.
func RatingSteps() []float64 {
	steps := make([]float64, 0, 11)
	for i := 10; i <= 20; i++ {
		steps = append(steps, float64(i)*0.5)
	}
	return steps
}

// FilterOptions arma las opciones de filtro expuestas por GET /filters.
func (c *Catalog) FilterOptions() domain.FilterOptions {
	return domain.FilterOptions{
		Genres:  c.Genres(),
		Decades: c.Decades(),
		Ratings: RatingSteps(),
	}
}
