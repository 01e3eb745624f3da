package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultOMDbBaseURL = "https://www.omdbapi.com"
	defaultOMDbTimeout = 3 * time.Second
)

// OMDbConfig agrupa los parámetros del cliente de OMDb.
type OMDbConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
}

// OMDbClient implementa Lookup contra la API de OMDb, con rate limit y circuit breaker.
type OMDbClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[string]
	logger  *zap.Logger
}

// NewOMDbClient construye el cliente. El breaker abre tras 5 fallas consecutivas
// y vuelve a probar a los 30 segundos.
func NewOMDbClient(cfg OMDbConfig, logger *zap.Logger) *OMDbClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOMDbBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultOMDbTimeout
	}
	limit := rate.Inf
	burst := 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		burst = int(cfg.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "omdb-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Una cancelación del llamador no dice nada sobre la salud de OMDb.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &OMDbClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		cb:      cb,
		logger:  logger,
	}
}

func (c *OMDbClient) Poster(ctx context.Context, title string, year int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	// Un "no encontrado" vuelve como string vacío para no contar como falla del breaker.
	poster, err := c.cb.Execute(func() (string, error) {
		return c.fetch(ctx, title, year)
	})
	if err != nil {
		return "", err
	}
	if poster == "" {
		return "", ErrNotFound
	}
	return poster, nil
}

func (c *OMDbClient) fetch(ctx context.Context, title string, year int) (string, error) {
	params := url.Values{}
	params.Set("t", cleanTitle(title))
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("omdb http error: status=%d", resp.StatusCode)
	}

	var or omdbResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if or.Response != "True" || or.Poster == "" || or.Poster == "N/A" {
		return "", nil
	}
	return or.Poster, nil
}

// IsUnavailable reporta si el error viene del breaker abierto.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func cleanTitle(title string) string {
	r := strings.NewReplacer("'", "", `"`, "")
	return strings.TrimSpace(r.Replace(title))
}

type omdbResponse struct {
	Response string `json:"Response"`
	Poster   string `json:"Poster"`
	Error    string `json:"Error,omitempty"`
}
