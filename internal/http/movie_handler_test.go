package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"movie-recs/internal/catalog"
	"movie-recs/internal/domain"
	"movie-recs/internal/service"
)

func setupMovieRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.New(catalog.Prepare(catalog.Seed(), catalog.PrepareOptions{}))
	svc := service.NewMovieService(zap.NewNop(), cat, service.NewPreferenceTracker(), nil, "seed")
	h := NewMovieHandler(zap.NewNop(), svc, 6)
	return NewRouter(zap.NewNop(), h, []string{"*"})
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(b)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type movieJSON struct {
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genre       string   `json:"genre"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	CleanRating float64  `json:"clean_rating"`
	Decade      int      `json:"decade"`
	Poster      string   `json:"poster"`
}

func decodeMovies(t *testing.T, rec *httptest.ResponseRecorder) []movieJSON {
	t.Helper()
	var out []movieJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode movies: %v (body=%s)", err, rec.Body.String())
	}
	return out
}

func decodeProfile(t *testing.T, r http.Handler) map[string]any {
	t.Helper()
	rec := performRequest(r, http.MethodGet, "/profile", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /profile, got %d", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	return out
}

func TestGetFilters(t *testing.T) {
	r := setupMovieRouter()
	rec := performRequest(r, http.MethodGet, "/filters", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body domain.FilterOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode filters: %v", err)
	}
	if len(body.Genres) == 0 || body.Genres[0] != "Action" {
		t.Fatalf("expected sorted genres starting with Action, got %v", body.Genres)
	}
	if len(body.Decades) != 4 || body.Decades[0] != 1970 {
		t.Fatalf("unexpected decades: %v", body.Decades)
	}
	if len(body.Ratings) != 11 || body.Ratings[0] != 5 || body.Ratings[10] != 10 {
		t.Fatalf("unexpected ratings ladder: %v", body.Ratings)
	}
}

func TestSearch_FiltersAndRecordsProfile(t *testing.T) {
	r := setupMovieRouter()
	rec := performRequest(r, http.MethodPost, "/search", map[string]any{
		"genre":      "crime",
		"decade":     "1990",
		"min_rating": 8.5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	movies := decodeMovies(t, rec)
	if len(movies) != 1 || movies[0].Title != "Pulp Fiction" {
		t.Fatalf("expected [Pulp Fiction], got %+v", movies)
	}
	if movies[0].Decade != 1990 || movies[0].CleanRating != 9 {
		t.Fatalf("unexpected derived fields: %+v", movies[0])
	}

	profile := decodeProfile(t, r)
	genres := profile["searched_genres"].(map[string]any)
	decades := profile["searched_decades"].(map[string]any)
	history := profile["rating_history"].([]any)
	if genres["crime"] != float64(1) || decades["1990"] != float64(1) || len(history) != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestSearch_EmptyBodyFiltersIsValid(t *testing.T) {
	r := setupMovieRouter()
	rec := performRequest(r, http.MethodPost, "/search", map[string]any{"genre": "", "decade": "", "min_rating": nil})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	movies := decodeMovies(t, rec)
	if len(movies) != 10 || movies[0].Title != "The Shawshank Redemption" {
		t.Fatalf("expected full top 10, got %d", len(movies))
	}

	profile := decodeProfile(t, r)
	if len(profile["searched_genres"].(map[string]any)) != 0 {
		t.Fatalf("expected no genre recorded, got %+v", profile)
	}
	if len(profile["rating_history"].([]any)) != 1 {
		t.Fatalf("expected rating history to be appended, got %+v", profile)
	}
}

func TestSearch_MalformedRequestsDoNotTouchProfile(t *testing.T) {
	r := setupMovieRouter()
	cases := map[string]any{
		"not json":        "{genre:",
		"empty body":      nil,
		"genre number":    map[string]any{"genre": 5},
		"decade text":     map[string]any{"decade": "nineties"},
		"decade bool":     map[string]any{"decade": true},
		"decade not 10s":  map[string]any{"decade": 1995},
		"rating too high": map[string]any{"min_rating": 11},
		"rating text":     map[string]any{"min_rating": "high"},
	}
	for name, body := range cases {
		rec := performRequest(r, http.MethodPost, "/search", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("%s: expected error message, got %s", name, rec.Body.String())
		}
	}

	profile := decodeProfile(t, r)
	if len(profile["rating_history"].([]any)) != 0 {
		t.Fatalf("malformed requests must not update the profile: %+v", profile)
	}
}

func TestRecommendations_ColdAndWarm(t *testing.T) {
	r := setupMovieRouter()

	rec := performRequest(r, http.MethodGet, "/recommendations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cold := decodeMovies(t, rec)
	if len(cold) != 6 || cold[0].Title != "The Shawshank Redemption" {
		t.Fatalf("unexpected cold recommendations: %+v", cold)
	}

	performRequest(r, http.MethodPost, "/search", map[string]any{"genre": "Sci-Fi", "decade": 2010})
	warm := decodeMovies(t, performRequest(r, http.MethodGet, "/recommendations?limit=2", nil))
	if len(warm) != 2 || warm[0].Title != "Inception" || warm[1].Title != "Interstellar" {
		t.Fatalf("unexpected warm recommendations: %+v", warm)
	}

	empty := decodeMovies(t, performRequest(r, http.MethodGet, "/recommendations?limit=0", nil))
	if len(empty) != 0 {
		t.Fatalf("expected empty list for limit=0, got %+v", empty)
	}
}

func TestReset_ClearsProfile(t *testing.T) {
	r := setupMovieRouter()
	performRequest(r, http.MethodPost, "/search", map[string]any{"genre": "Drama"})

	rec := performRequest(r, http.MethodPost, "/reset", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Profile reset") {
		t.Fatalf("unexpected reset response: %d %s", rec.Code, rec.Body.String())
	}

	profile := decodeProfile(t, r)
	if len(profile["searched_genres"].(map[string]any)) != 0 || len(profile["rating_history"].([]any)) != 0 {
		t.Fatalf("expected empty profile after reset, got %+v", profile)
	}
}

func TestHealthAndRequestID(t *testing.T) {
	r := setupMovieRouter()
	rec := performRequest(r, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"source":"seed"`) {
		t.Fatalf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupMovieRouter()
	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestMovieResponse_SanitizesNonFiniteValues(t *testing.T) {
	resp := toMovieResponse(domain.Movie{Title: "x", Rating: math.NaN(), NormalizedRating: math.Inf(1)})
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, want := range []string{`"rating":""`, `"clean_rating":""`, `"poster":""`, `"language":""`, `"genres":[]`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
	if strings.Contains(body, "null") || strings.Contains(body, "NaN") {
		t.Fatalf("unexpected null/NaN in %s", body)
	}
}

func TestOptionalNumbers(t *testing.T) {
	var req searchRequest
	if err := json.Unmarshal([]byte(`{"tag":"Drama","era":"1990.0","min_rating":"8"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := req.toQuery()
	if q.Genre != "Drama" || q.Decade == nil || *q.Decade != 1990 || q.MinRating != 8 {
		t.Fatalf("unexpected query: %+v", q)
	}

	if err := json.Unmarshal([]byte(`{"decade":1990.5}`), &req); err == nil {
		t.Fatalf("expected error for fractional decade")
	}
}

func TestCORS_SpacedOriginsList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat := catalog.New(catalog.Prepare(catalog.Seed(), catalog.PrepareOptions{}))
	svc := service.NewMovieService(zap.NewNop(), cat, nil, nil, "seed")
	h := NewMovieHandler(zap.NewNop(), svc, 6)

	var r *gin.Engine
	func() {
		defer func() {
			if p := recover(); p != nil {
				t.Fatalf("router construction panicked: %v", p)
			}
		}()
		r = NewRouter(zap.NewNop(), h, []string{"https://a.example", " https://b.example "})
	}()

	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "https://b.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://b.example" {
		t.Fatalf("expected allowed origin https://b.example, got %q", got)
	}
}
