package storage

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aliskhannn/question-csv-exporter/internal/domain/entities"
)

// CSVWriter writes import rows to a UTF-8 CSV file with a byte order mark,
// which is what spreadsheet tools and the Supabase importer expect.
//
// Records end with \r\n. Cell content, embedded line breaks included,
// is written byte for byte.
type CSVWriter struct {
	file *os.File
	bom  *transform.Writer
	buf  *bufio.Writer
}

// NewCSVWriter creates (or truncates) the file at path.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	bom := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())

	return &CSVWriter{file: f, bom: bom, buf: bufio.NewWriter(bom)}, nil
}

// WriteHeader writes the fixed column header.
func (w *CSVWriter) WriteHeader(_ context.Context) error {
	if err := w.writeRecord(entities.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// Write appends one row.
func (w *CSVWriter) Write(_ context.Context, row entities.Row) error {
	if err := w.writeRecord(row.Values()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *CSVWriter) Close() error {
	err := errors.Join(w.buf.Flush(), w.bom.Close(), w.file.Close())
	if err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// writeRecord quotes a cell only when it holds a comma, a quote or a line break,
// doubling inner quotes. bufio keeps the first error, so only the last write is checked.
func (w *CSVWriter) writeRecord(cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			_ = w.buf.WriteByte(',')
		}
		if !strings.ContainsAny(cell, ",\"\r\n") {
			_, _ = w.buf.WriteString(cell)
			continue
		}
		_ = w.buf.WriteByte('"')
		_, _ = w.buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		_ = w.buf.WriteByte('"')
	}

	_, err := w.buf.WriteString("\r\n")
	return err
}

// ReadAll reads every record of a CSV file written by CSVWriter,
// header included. A leading byte order mark is dropped.
func ReadAll(ctx context.Context, path string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}

	return records, nil
}
