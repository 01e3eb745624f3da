package poster

import (
	"context"
	"errors"
)

// ErrNotFound indica que el proveedor no tiene un poster para la película.
var ErrNotFound = errors.New("poster not found")

// Lookup busca un poster de alta resolución por título y año.
type Lookup interface {
	Poster(ctx context.Context, title string, year int) (string, error)
}

// NoopLookup se usa cuando no hay API key configurada.
type NoopLookup struct{}

func (NoopLookup) Poster(context.Context, string, int) (string, error) {
	return "", ErrNotFound
}
