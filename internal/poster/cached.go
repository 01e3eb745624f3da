package poster

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultCacheTTL es el tiempo de vida de un poster cacheado.
const DefaultCacheTTL = 24 * time.Hour

// CachedLookup agrega cache-aside sobre otro Lookup. Los errores de la caché se
// ignoran y se consulta al proveedor igual.
type CachedLookup struct {
	next   Lookup
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedLookup(next Lookup, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedLookup {
	if cache == nil {
		cache = NewMemoryCache(DefaultMaxEntries)
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedLookup{next: next, cache: cache, ttl: ttl, logger: logger}
}

// CacheKey normaliza (título, año) para usarlo como clave.
func CacheKey(title string, year int) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strconv.Itoa(year)
}

func (l *CachedLookup) Poster(ctx context.Context, title string, year int) (string, error) {
	key := CacheKey(title, year)

	val, found, err := l.cache.Get(ctx, key)
	if err != nil {
		l.logger.Debug("poster cache get failed", zap.String("key", key), zap.Error(err))
	} else if found {
		if val == "" {
			return "", ErrNotFound
		}
		return val, nil
	}

	poster, err := l.next.Poster(ctx, title, year)
	switch {
	case err == nil:
		l.store(ctx, key, poster)
		return poster, nil
	case errors.Is(err, ErrNotFound):
		l.store(ctx, key, "")
		return "", err
	default:
		return "", err
	}
}

func (l *CachedLookup) store(ctx context.Context, key, value string) {
	if err := l.cache.Set(ctx, key, value, l.ttl); err != nil {
		l.logger.Debug("poster cache set failed", zap.String("key", key), zap.Error(err))
	}
}
