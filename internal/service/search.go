package service

import (
	"sort"
	"strings"

	"movie-recs/internal/domain"
)

// MaxSearchResults limita la cantidad de resultados de una búsqueda.
const MaxSearchResults = 10

// Search aplica los filtros de forma conjuntiva y ordena por rating crudo descendente.
// El filtro de tag es por substring sin distinguir mayúsculas sobre el string compactado,
// así "acti" coincide con "Action,Crime".
func Search(movies []domain.Movie, query domain.SearchQuery) []domain.Movie {
	needle := strings.ToLower(strings.TrimSpace(query.Genre))

	filtered := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if needle != "" && !strings.Contains(strings.ToLower(m.Genre), needle) {
			continue
		}
		if query.Decade != nil && m.Decade != *query.Decade {
			continue
		}
		if query.MinRating > 0 && m.NormalizedRating < query.MinRating {
			continue
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})
	return head(filtered, MaxSearchResults)
}
