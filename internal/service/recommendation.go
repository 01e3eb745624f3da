package service

import (
	"sort"

	"movie-recs/internal/domain"
)

// Pesos del puntaje de recomendación.
const (
	GenreMatchWeight  = 3.0
	DecadeMatchWeight = 2.0
	RatingPrefWeight  = 2.0
	BaseRatingWeight  = 0.5

	TopGenresCount      = 3
	TopDecadesCount     = 2
	DefaultRatingPref   = 8.0
	DefaultRecommendLen = 6
)

// RecommendationEngine calcula recomendaciones deterministas a partir del perfil.
// No guarda estado: es seguro compartir el valor entre goroutines.
type RecommendationEngine struct{}

// DefaultRecommendationEngine permite uso directo sin instanciar.
var DefaultRecommendationEngine = RecommendationEngine{}

// Preferences son las señales derivadas del snapshot que usa el puntaje.
type Preferences struct {
	TopGenres  []string
	TopDecades []int
	RatingPref float64
}

// DerivePreferences extrae top 3 tags, top 2 décadas y el rating promedio pedido.
// Los empates de frecuencia se resuelven por nombre (o década) ascendente.
func (RecommendationEngine) DerivePreferences(profile domain.PreferenceSnapshot) Preferences {
	prefs := Preferences{RatingPref: DefaultRatingPref}

	genres := make([]string, 0, len(profile.Genres))
	for g := range profile.Genres {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool {
		ci, cj := profile.Genres[genres[i]], profile.Genres[genres[j]]
		if ci != cj {
			return ci > cj
		}
		return genres[i] < genres[j]
	})
	if len(genres) > TopGenresCount {
		genres = genres[:TopGenresCount]
	}
	prefs.TopGenres = genres

	decades := make([]int, 0, len(profile.Decades))
	for d := range profile.Decades {
		decades = append(decades, d)
	}
	sort.Slice(decades, func(i, j int) bool {
		ci, cj := profile.Decades[decades[i]], profile.Decades[decades[j]]
		if ci != cj {
			return ci > cj
		}
		return decades[i] < decades[j]
	})
	if len(decades) > TopDecadesCount {
		decades = decades[:TopDecadesCount]
	}
	prefs.TopDecades = decades

	if n := len(profile.RatingHistory); n > 0 {
		var sum float64
		for _, r := range profile.RatingHistory {
			sum += r
		}
		prefs.RatingPref = sum / float64(n)
	}
	return prefs
}

// Score aplica la suma ponderada:
// 3*|tags en común| + 2*[década preferida] + 2*[rating >= preferencia] + 0.5*(rating/10).
func (RecommendationEngine) Score(movie domain.Movie, prefs Preferences) float64 {
	score := 0.0

	for _, g := range prefs.TopGenres {
		if movie.HasGenre(g) {
			score += GenreMatchWeight
		}
	}

	for _, d := range prefs.TopDecades {
		if movie.Decade == d {
			score += DecadeMatchWeight
			break
		}
	}

	if movie.NormalizedRating >= prefs.RatingPref {
		score += RatingPrefWeight
	}

	score += BaseRatingWeight * (movie.Rating / 10.0)
	return score
}

// Recommend devuelve hasta limit películas ordenadas por puntaje. Sin señales de tags
// ni décadas devuelve las mejor rankeadas. No modifica movies ni profile.
func (e RecommendationEngine) Recommend(movies []domain.Movie, profile domain.PreferenceSnapshot, limit int) []domain.Movie {
	if limit <= 0 || len(movies) == 0 {
		return []domain.Movie{}
	}

	ranked := make([]domain.Movie, len(movies))
	copy(ranked, movies)

	if profile.IsEmpty() {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Rating > ranked[j].Rating
		})
		return head(ranked, limit)
	}

	prefs := e.DerivePreferences(profile)
	scores := make([]float64, len(ranked))
	for i, m := range ranked {
		scores[i] = e.Score(m, prefs)
	}

	// Se ordenan índices para mantener los puntajes alineados con los registros.
	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return ranked[ia].Rating > ranked[ib].Rating
	})

	n := limit
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]domain.Movie, 0, n)
	for _, i := range idx[:n] {
		out = append(out, ranked[i])
	}
	return out
}

func head(movies []domain.Movie, limit int) []domain.Movie {
	if limit < len(movies) {
		return movies[:limit]
	}
	return movies
}
