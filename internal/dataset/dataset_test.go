package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-recs/internal/catalog"
)

const sampleCSV = `Poster_Link,Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating
https://img/1.jpg,The Shawshank Redemption,1994,A,142 min,Drama,9.3
https://img/2.jpg,Apollo 13,PG,U,140 min,"Adventure, Drama",7.6
https://img/3.jpg,"Crime, Inc.",1995,A,100 min,"Action, Crime",8.1
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, "Series_Title", table.Header[1])
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Crime, Inc.", table.Rows[2][1])

	movies := catalog.Prepare(table, catalog.PrepareOptions{})
	require.Len(t, movies, 2)
	assert.Equal(t, "Action,Crime", movies[1].Genre)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDirectorySource_FindsNestedCSV(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "versions", "1")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "imdb_top_1000.csv"), []byte(sampleCSV), 0o644))

	table, err := DirectorySource{Dir: dir}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 3)
}

func TestDirectorySource_NoCSV(t *testing.T) {
	_, err := DirectorySource{Dir: t.TempDir()}.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoCSV)

	_, err = DirectorySource{}.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoCSV)
}

func TestDownloadSource_StoresAndParses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "data")
	table, err := DownloadSource{URL: srv.URL, Dir: dir}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 3)
	assert.FileExists(t, filepath.Join(dir, DownloadFileName))
}

func TestDownloadSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := DownloadSource{URL: srv.URL, Dir: t.TempDir()}.Load(context.Background())
	assert.Error(t, err)
}

type stubSource struct {
	name  string
	table catalog.RawTable
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Load(context.Context) (catalog.RawTable, error) {
	s.calls++
	return s.table, s.err
}

func TestLoader_UsesFirstUsableSource(t *testing.T) {
	failing := &stubSource{name: "broken", err: errors.New("network down")}
	unusable := &stubSource{name: "junk", table: catalog.RawTable{
		Header: []string{"title", "year", "rating"},
		Rows:   [][]string{{"x", "PG", "n/a"}},
	}}
	good := &stubSource{name: "good", table: catalog.RawTable{
		Header: []string{"title", "year", "rating"},
		Rows:   [][]string{{"Heat", "1995", "8.3"}},
	}}
	never := &stubSource{name: "never"}

	cat, source := NewLoader(zap.NewNop(), failing, unusable, good, never).Load(context.Background())
	assert.Equal(t, "good", source)
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, 0, never.calls)
}

func TestLoader_FallsBackToSeed(t *testing.T) {
	failing := &stubSource{name: "broken", err: errors.New("boom")}
	cat, source := NewLoader(nil, failing).Load(context.Background())
	assert.Equal(t, "seed", source)
	assert.Equal(t, 10, cat.Len())
}

type stubRowReader struct {
	table catalog.RawTable
	err   error
}

func (s stubRowReader) ListRaw(context.Context) (catalog.RawTable, error) {
	return s.table, s.err
}

func TestPostgresSource(t *testing.T) {
	_, err := PostgresSource{}.Load(context.Background())
	assert.Error(t, err)

	want := catalog.Seed()
	got, err := PostgresSource{Reader: stubRowReader{table: want}}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
