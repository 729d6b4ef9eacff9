package csvrows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader lazily reads rows of trimmed cells from a comma separated file.
type Reader struct {
	file *os.File
	csv  *csv.Reader
	path string
}

// Open opens path for reading. Every call starts a new pass over the file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, csv: newCSVReader(f), path: path}, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // number of columns is not checked
	cr.LazyQuotes = true    // a bare quote inside an unquoted cell is kept as is
	return cr
}

// Next returns the next row, or io.EOF once the file is exhausted.
func (r *Reader) Next() ([]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("unable to parse %s: %w", r.path, err)
	}

	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, nil
}

func (r *Reader) Close() error {
	return r.file.Close()
}

// Each calls fn for every row of the file at path and stops at the first error.
func Each(path string, fn func(row []string) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

// ReadAll reads every row of the file at path.
func ReadAll(path string) ([][]string, error) {
	var rows [][]string
	err := Each(path, func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}
