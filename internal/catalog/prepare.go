package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"

	"movie-recs/internal/domain"
)

// MinYear es el primer año de estreno aceptado.
const MinYear = 1870

// RawTable son filas crudas tal como llegan de un CSV o de la base de datos.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Alias conocidos por campo canónico. La comparación ignora mayúsculas.
var columnAliases = map[string][]string{
	"title":    {"Series_Title", "title", "name", "movie_title"},
	"year":     {"Released_Year", "year", "release_year"},
	"genre":    {"Genre", "genre", "genres"},
	"rating":   {"IMDB_Rating", "rating", "imdb_rating", "vote_average"},
	"poster":   {"Poster_Link", "poster", "poster_url"},
	"language": {"language", "original_language"},
}

// PrepareOptions permite fijar el año actual en tests.
type PrepareOptions struct {
	CurrentYear int
}

// Prepare convierte filas crudas en registros del catálogo, respetando el orden de entrada.
// Las filas con año o rating inválidos se descartan.
func Prepare(table RawTable, opts PrepareOptions) []domain.Movie {
	maxYear := opts.CurrentYear
	if maxYear == 0 {
		maxYear = time.Now().Year()
	}

	cols := resolveColumns(table.Header)
	if cols["title"] < 0 || cols["year"] < 0 || cols["rating"] < 0 {
		return nil
	}

	movies := make([]domain.Movie, 0, len(table.Rows))
	for _, row := range table.Rows {
		year, ok := ParseYear(cell(row, cols["year"]))
		if !ok || year < MinYear || year > maxYear {
			continue
		}
		rating, ok := ParseRating(cell(row, cols["rating"]))
		if !ok {
			continue
		}

		genres := ParseGenres(cell(row, cols["genre"]))
		primary := domain.UnknownGenre
		if len(genres) > 0 {
			primary = genres[0]
		}

		poster := strings.TrimSpace(cell(row, cols["poster"]))
		if poster == "" {
			poster = domain.FallbackPoster
		}
		language := strings.TrimSpace(cell(row, cols["language"]))
		if language == "" {
			language = domain.DefaultLanguage
		}

		movies = append(movies, domain.Movie{
			Title:            strings.TrimSpace(cell(row, cols["title"])),
			Year:             year,
			Genre:            strings.Join(genres, ","),
			Genres:           genres,
			PrimaryGenre:     primary,
			Rating:           rating,
			NormalizedRating: NormalizeRating(rating),
			Decade:           DecadeOf(year),
			Poster:           poster,
			Language:         language,
		})
	}
	return movies
}

// ParseYear acepta enteros y flotantes sin parte decimal ("1994.0").
func ParseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(raw); err == nil {
		return y, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// ParseRating devuelve false para valores no numéricos, NaN, infinitos o fuera de [0, 10].
func ParseRating(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f > 10 {
		return 0, false
	}
	return f, true
}

// ParseGenres elimina todos los espacios, separa por comas y descarta tokens vacíos o repetidos.
// "Action, Drama" y "Action,Drama" producen lo mismo.
func ParseGenres(raw string) []string {
	compact := strings.ReplaceAll(raw, " ", "")
	if compact == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, g := range strings.Split(compact, ",") {
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// NormalizeRating redondea al medio punto más cercano con redondeo bancario
// (mitad hacia el par): 8.25 -> 8.0, 8.75 -> 9.0.
func NormalizeRating(rating float64) float64 {
	return math.RoundToEven(rating*2) / 2
}

// DecadeOf devuelve la década del año: 1994 -> 1990.
func DecadeOf(year int) int {
	return (year / 10) * 10
}

func resolveColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	cols := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		cols[field] = -1
		for _, alias := range aliases {
			if i, ok := index[strings.ToLower(alias)]; ok {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
