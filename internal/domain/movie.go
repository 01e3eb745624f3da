package domain

// Valores por defecto para columnas opcionales del dataset.
const (
	DefaultLanguage = "English"
	FallbackPoster  = "https://via.placeholder.com/300x450?text=No+Poster"
	UnknownGenre    = "Unknown"
)

// Movie es un registro inmutable del catálogo con sus campos derivados.
type Movie struct {
	Title            string   `json:"title"`
	Year             int      `json:"year"`
	Genre            string   `json:"genre"` // Tags compactados sin espacios: "Action,Crime"
	Genres           []string `json:"genres"`
	PrimaryGenre     string   `json:"primary_genre"`
	Rating           float64  `json:"rating"`
	NormalizedRating float64  `json:"clean_rating"` // Redondeado a 0.5
	Decade           int      `json:"decade"`
	Poster           string   `json:"poster"`
	Language         string   `json:"language"`
}

// HasGenre indica si el registro contiene el tag exacto.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// SearchQuery agrupa los filtros de una búsqueda. Los campos vacíos no restringen.
type SearchQuery struct {
	Genre     string
	Decade    *int
	MinRating float64
}

// FilterOptions alimenta los dropdowns del frontend.
type FilterOptions struct {
	Genres  []string  `json:"genres"`
	Decades []int     `json:"decades"`
	Ratings []float64 `json:"ratings"`
}
