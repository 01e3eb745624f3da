package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"movie-recs/internal/config"
	"movie-recs/internal/dataset"
	"movie-recs/internal/db"
	apihttp "movie-recs/internal/http"
	"movie-recs/internal/poster"
	"movie-recs/internal/repository"
	"movie-recs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	sources := []dataset.Source{}
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Warn("db connect failed", zap.Error(err))
		} else {
			defer pool.Close()
			ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := db.Ping(ctxPing, pool); err != nil {
				logger.Warn("db ping failed, skipping postgres dataset", zap.Error(err))
			} else {
				sources = append(sources, dataset.PostgresSource{Reader: repository.NewPgMovieRepository(pool)})
			}
			cancel()
		}
	}
	sources = append(sources, dataset.DirectorySource{Dir: cfg.DatasetDir})
	if cfg.DatasetURL != "" {
		sources = append(sources, dataset.DownloadSource{
			URL:     cfg.DatasetURL,
			Dir:     cfg.DatasetDir,
			Timeout: cfg.DatasetTimeout,
		})
	}
	sources = append(sources, dataset.SeedSource{})

	logger.Info("loading movie dataset")
	cat, source := dataset.NewLoader(logger, sources...).Load(ctx)

	var lookup poster.Lookup = poster.NoopLookup{}
	var redisClient *redis.Client
	if cfg.OMDbAPIKey != "" {
		omdb := poster.NewOMDbClient(poster.OMDbConfig{
			BaseURL:       cfg.OMDbBaseURL,
			APIKey:        cfg.OMDbAPIKey,
			Timeout:       cfg.OMDbTimeout,
			RatePerSecond: cfg.OMDbRatePerSecond,
		}, logger)

		cache := poster.NewMemoryCache(poster.DefaultMaxEntries)
		if cfg.RedisAddr != "" {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := redisClient.Ping(ctxPing).Err(); err != nil {
				logger.Warn("redis ping failed, using in-memory poster cache", zap.Error(err))
			} else {
				cache = poster.NewRedisCache(redisClient)
			}
			cancel()
		}
		lookup = poster.NewCachedLookup(omdb, cache, cfg.PosterCacheTTL, logger)
	} else {
		logger.Warn("omdb api key not configured, poster enrichment disabled")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	movieSvc := service.NewMovieService(logger, cat, service.NewPreferenceTracker(), poster.NewEnricher(lookup, logger), source)
	movieHandler := apihttp.NewMovieHandler(logger, movieSvc, cfg.RecommendationLimit)

	if !strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := apihttp.NewRouter(logger, movieHandler, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("port", cfg.HTTPPort),
			zap.String("dataset_source", source),
			zap.Int("movies", cat.Len()),
			zap.Bool("cors_all_origins", cfg.AllowAllOrigins()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if strings.EqualFold(level, "debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
