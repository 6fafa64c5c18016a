package service

import (
	"context"
	"encoding/json"

	"github.com/aliskhannn/question-csv-exporter/internal/domain/entities"
)

// QuestionSource loads the raw question records in document order.
type QuestionSource interface {
	LoadAll(ctx context.Context) ([]json.RawMessage, error)
}

// RowWriter receives the header and converted rows.
type RowWriter interface {
	WriteHeader(ctx context.Context) error
	Write(ctx context.Context, row entities.Row) error
	Close() error
}

// OpenRowWriter opens the output. It is called only after the source loaded,
// so a missing input never creates an output file.
type OpenRowWriter func(ctx context.Context) (RowWriter, error)
