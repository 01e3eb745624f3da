package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"movie-recs/internal/catalog"
)

// ReadCSV parsea un CSV con encabezado. Acepta filas de largo variable y comillas sueltas.
func ReadCSV(r io.Reader) (catalog.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return catalog.RawTable{}, ErrEmptyDataset
	}
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("read header: %w", err)
	}

	table := catalog.RawTable{Header: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return catalog.RawTable{}, fmt.Errorf("read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadCSVFile abre y parsea un archivo CSV.
func ReadCSVFile(path string) (catalog.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.RawTable{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}
