package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/question-csv-exporter/internal/domain/entities"
	"github.com/aliskhannn/question-csv-exporter/internal/pgarray"
)

var ErrInvalidOutput = errors.New("invalid import file")

var arrayColumns = []int{entities.ColumnOptions, entities.ColumnOptionsHi, entities.ColumnTags}

// Verifier checks that a written import file will be accepted by the database:
// the header matches, every row is complete, array cells parse as text[] and
// the explanation cell is valid JSON.
type Verifier struct {
	logger *zap.Logger
}

// NewVerifier creates a new Verifier.
func NewVerifier(logger *zap.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// Verify validates records as read back from the CSV file, header first.
// It returns the number of data rows checked.
func (v *Verifier) Verify(ctx context.Context, records [][]string) (int, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("%w: missing header", ErrInvalidOutput)
	}
	if !slices.Equal(records[0], entities.Header) {
		return 0, fmt.Errorf("%w: unexpected header %q", ErrInvalidOutput, records[0])
	}

	rows := records[1:]
	for i, cells := range rows {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line := i + 2
		if len(cells) != len(entities.Header) {
			return 0, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrInvalidOutput, line, len(cells), len(entities.Header))
		}

		for _, col := range arrayColumns {
			if _, err := pgarray.Decode(cells[col]); err != nil {
				return 0, fmt.Errorf("%w: line %d column %s: %w",
					ErrInvalidOutput, line, entities.Header[col], err)
			}
		}

		if !json.Valid([]byte(cells[entities.ColumnExplanation])) {
			return 0, fmt.Errorf("%w: line %d column %s is not valid JSON",
				ErrInvalidOutput, line, entities.Header[entities.ColumnExplanation])
		}
	}

	v.logger.Debug("import file verified", zap.Int("rows", len(rows)))

	return len(rows), nil
}
