package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"movie-recs/internal/domain"
	"movie-recs/internal/service"
)

// MovieHandler mantiene dependencias para los endpoints de películas y perfil.
type MovieHandler struct {
	logger       *zap.Logger
	movies       *service.MovieService
	defaultLimit int
}

// NewMovieHandler crea una instancia de MovieHandler con dependencias necesarias.
func NewMovieHandler(logger *zap.Logger, movies *service.MovieService, defaultLimit int) *MovieHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLimit <= 0 {
		defaultLimit = service.DefaultRecommendLen
	}
	return &MovieHandler{
		logger:       logger,
		movies:       movies,
		defaultLimit: defaultLimit,
	}
}

// Health maneja GET /.
func (h *MovieHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"movies": h.movies.CatalogSize(),
		"source": h.movies.Source(),
	})
}

// GetFilters maneja GET /filters.
func (h *MovieHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.movies.Filters())
}

type searchRequest struct {
	Genre     *string       `json:"genre"`
	Tag       *string       `json:"tag"`
	Decade    optionalInt   `json:"decade"`
	Era       optionalInt   `json:"era"`
	MinRating optionalFloat `json:"min_rating"`
}

func (r searchRequest) toQuery() domain.SearchQuery {
	var q domain.SearchQuery
	switch {
	case r.Genre != nil:
		q.Genre = *r.Genre
	case r.Tag != nil:
		q.Genre = *r.Tag
	}
	q.Decade = r.Decade.Value
	if q.Decade == nil {
		q.Decade = r.Era.Value
	}
	if r.MinRating.Value != nil {
		q.MinRating = *r.MinRating.Value
	}
	return q
}

// Search maneja POST /search.
func (h *MovieHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: genre must be text, decade and min_rating must be numbers"})
		return
	}

	results, err := h.movies.Search(c.Request.Context(), req.toQuery())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDecade),
			errors.Is(err, service.ErrInvalidMinRating),
			errors.Is(err, service.ErrInvalidGenre):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search movies"})
		}
		return
	}

	c.JSON(http.StatusOK, toMovieResponses(results))
}

// GetRecommendations maneja GET /recommendations. No modifica el perfil.
func (h *MovieHandler) GetRecommendations(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	recs := h.movies.Recommendations(c.Request.Context(), limit)
	c.JSON(http.StatusOK, toMovieResponses(recs))
}

// GetProfile maneja GET /profile y devuelve el snapshot de preferencias.
func (h *MovieHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.movies.Profile())
}

// ResetProfile maneja POST /reset.
func (h *MovieHandler) ResetProfile(c *gin.Context) {
	h.movies.ResetProfile()
	c.JSON(http.StatusOK, gin.H{"message": "Profile reset"})
}
