package domain

// PreferenceSnapshot es una copia de solo lectura del estado del tracker de preferencias.
type PreferenceSnapshot struct {
	Genres        map[string]int `json:"searched_genres"`  // Frecuencia por tag: {"Drama": 5}
	Decades       map[int]int    `json:"searched_decades"` // Frecuencia por década: {1990: 3}
	RatingHistory []float64      `json:"rating_history"`
}

// IsEmpty reporta si no hay señales de tags ni de décadas.
func (p PreferenceSnapshot) IsEmpty() bool {
	return len(p.Genres) == 0 && len(p.Decades) == 0
}
