package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"movie-recs/internal/catalog"
)

var (
	ErrNoCSV        = errors.New("no csv file found")
	ErrEmptyDataset = errors.New("dataset is empty")
)

// DownloadFileName es el nombre con el que se guarda el dataset descargado.
const DownloadFileName = "imdb_top_1000.csv"

// Source provee filas crudas del catálogo.
type Source interface {
	Name() string
	Load(ctx context.Context) (catalog.RawTable, error)
}

// SeedSource devuelve el set de respaldo embebido. Nunca falla.
type SeedSource struct{}

func (SeedSource) Name() string { return "seed" }

func (SeedSource) Load(context.Context) (catalog.RawTable, error) {
	return catalog.Seed(), nil
}

// DirectorySource busca el primer CSV dentro de un directorio, recursivamente.
type DirectorySource struct {
	Dir string
}

func (s DirectorySource) Name() string { return "directory" }

func (s DirectorySource) Load(ctx context.Context) (catalog.RawTable, error) {
	path, err := FindCSV(s.Dir)
	if err != nil {
		return catalog.RawTable{}, err
	}
	if err := ctx.Err(); err != nil {
		return catalog.RawTable{}, err
	}
	return ReadCSVFile(path)
}

// FindCSV recorre dir en orden léxico y devuelve el primer archivo .csv.
func FindCSV(dir string) (string, error) {
	if dir == "" {
		return "", ErrNoCSV
	}
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", dir, err)
	}
	if found == "" {
		return "", ErrNoCSV
	}
	return found, nil
}

// DownloadSource descarga el CSV desde una URL, lo guarda en Dir y lo parsea.
type DownloadSource struct {
	URL     string
	Dir     string
	Timeout time.Duration
	Client  *http.Client
}

func (s DownloadSource) Name() string { return "download" }

func (s DownloadSource) Load(ctx context.Context) (catalog.RawTable, error) {
	if s.URL == "" {
		return catalog.RawTable{}, errors.New("dataset url not configured")
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return catalog.RawTable{}, fmt.Errorf("dataset http error: status=%d", resp.StatusCode)
	}

	dir := s.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return catalog.RawTable{}, fmt.Errorf("create dataset dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "download-*.tmp")
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return catalog.RawTable{}, fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return catalog.RawTable{}, fmt.Errorf("close dataset: %w", err)
	}

	dest := filepath.Join(dir, DownloadFileName)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return catalog.RawTable{}, fmt.Errorf("store dataset: %w", err)
	}
	return ReadCSVFile(dest)
}

// MovieRowReader lee filas crudas desde un almacenamiento externo.
type MovieRowReader interface {
	ListRaw(ctx context.Context) (catalog.RawTable, error)
}

// PostgresSource lee la tabla movies a través del repositorio.
type PostgresSource struct {
	Reader MovieRowReader
}

func (s PostgresSource) Name() string { return "postgres" }

func (s PostgresSource) Load(ctx context.Context) (catalog.RawTable, error) {
	if s.Reader == nil {
		return catalog.RawTable{}, errors.New("postgres reader not configured")
	}
	return s.Reader.ListRaw(ctx)
}
