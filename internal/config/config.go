package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string        `env:"HTTP_PORT" envDefault:"5001"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	DatasetDir          string        `env:"DATASET_DIR" envDefault:"data"`
	DatasetURL          string        `env:"DATASET_URL"`
	DatasetTimeout      time.Duration `env:"DATASET_TIMEOUT" envDefault:"30s"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	OMDbAPIKey          string        `env:"OMDB_API_KEY"`
	OMDbBaseURL         string        `env:"OMDB_BASE_URL" envDefault:"https://www.omdbapi.com"`
	OMDbTimeout         time.Duration `env:"OMDB_TIMEOUT" envDefault:"3s"`
	OMDbRatePerSecond   float64       `env:"OMDB_RATE_PER_SECOND" envDefault:"5"`
	PosterCacheTTL      time.Duration `env:"POSTER_CACHE_TTL" envDefault:"24h"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RecommendationLimit int           `env:"RECOMMENDATION_LIMIT" envDefault:"6"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.RecommendationLimit <= 0 {
		cfg.RecommendationLimit = 6
	}
	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSAllowedOrigins = origins
	return &cfg, nil
}

// AllowAllOrigins indica si CORS debe aceptar cualquier origen.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
