package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"movie-recs/internal/domain"
)

var errNotNumeric = errors.New("value must be a number or numeric string")

// optionalInt acepta null, "", números enteros o strings numéricos ("1990").
type optionalInt struct {
	Value *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	raw, isNull, err := numericLiteral(data)
	if err != nil || isNull {
		return err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return errNotNumeric
	}
	v := int(f)
	o.Value = &v
	return nil
}

// optionalFloat acepta null, "", números o strings numéricos ("8.5").
type optionalFloat struct {
	Value *float64
}

func (o *optionalFloat) UnmarshalJSON(data []byte) error {
	raw, isNull, err := numericLiteral(data)
	if err != nil || isNull {
		return err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return errNotNumeric
	}
	o.Value = &f
	return nil
}

// numericLiteral devuelve el texto numérico de un número JSON o de un string.
// null y "" se consideran ausentes.
func numericLiteral(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", true, nil
		}
		return s, false, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, errNotNumeric
	}
	return n.String(), false, nil
}

// jsonFloat serializa NaN e infinitos como "" para que el JSON sea válido.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// optionalString serializa nil como "" en lugar de null.
type optionalString struct {
	Value *string
}

func (s optionalString) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return []byte(`""`), nil
	}
	return json.Marshal(*s.Value)
}

func someString(v string) optionalString {
	if v == "" {
		return optionalString{}
	}
	return optionalString{Value: &v}
}

// movieResponse es la forma pública de una película.
type movieResponse struct {
	Title        string         `json:"title"`
	Year         int            `json:"year"`
	Genre        string         `json:"genre"`
	Genres       []string       `json:"genres"`
	PrimaryGenre string         `json:"primary_genre"`
	Rating       jsonFloat      `json:"rating"`
	CleanRating  jsonFloat      `json:"clean_rating"`
	Decade       int            `json:"decade"`
	Language     optionalString `json:"language"`
	Poster       optionalString `json:"poster"`
}

func toMovieResponse(m domain.Movie) movieResponse {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return movieResponse{
		Title:        m.Title,
		Year:         m.Year,
		Genre:        m.Genre,
		Genres:       genres,
		PrimaryGenre: m.PrimaryGenre,
		Rating:       jsonFloat(m.Rating),
		CleanRating:  jsonFloat(m.NormalizedRating),
		Decade:       m.Decade,
		Language:     someString(m.Language),
		Poster:       someString(m.Poster),
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}
