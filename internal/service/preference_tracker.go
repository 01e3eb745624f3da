package service

import (
	"strings"
	"sync"

	"movie-recs/internal/domain"
)

// PreferenceTracker acumula las señales de búsqueda del usuario en memoria.
// Un único mutex protege todo el estado: ninguna lectura ve una actualización a medias.
type PreferenceTracker struct {
	mu            sync.Mutex
	genres        map[string]int
	decades       map[int]int
	ratingHistory []float64
}

func NewPreferenceTracker() *PreferenceTracker {
	return &PreferenceTracker{
		genres:  make(map[string]int),
		decades: make(map[int]int),
	}
}

// Record suma una búsqueda al perfil. El rating mínimo se agrega siempre, incluso 0.
func (t *PreferenceTracker) Record(genres []string, decade *int, minRating float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		t.genres[g]++
	}
	if decade != nil {
		t.decades[*decade]++
	}
	t.ratingHistory = append(t.ratingHistory, minRating)
}

// Snapshot devuelve una copia profunda del estado actual.
func (t *PreferenceTracker) Snapshot() domain.PreferenceSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := domain.PreferenceSnapshot{
		Genres:        make(map[string]int, len(t.genres)),
		Decades:       make(map[int]int, len(t.decades)),
		RatingHistory: make([]float64, len(t.ratingHistory)),
	}
	for g, n := range t.genres {
		snap.Genres[g] = n
	}
	for d, n := range t.decades {
		snap.Decades[d] = n
	}
	copy(snap.RatingHistory, t.ratingHistory)
	return snap
}

// Reset vacía el perfil.
func (t *PreferenceTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.genres = make(map[string]int)
	t.decades = make(map[int]int)
	t.ratingHistory = nil
}
