package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Summary reports the outcome of one conversion run.
type Summary struct {
	Total   int // records found in the input
	Written int // rows written to the output
	Skipped int // records that failed projection
}

// Converter turns the question bank into import rows.
type Converter struct {
	source QuestionSource
	open   OpenRowWriter
	logger *zap.Logger
}

// NewConverter creates a new Converter.
func NewConverter(source QuestionSource, open OpenRowWriter, logger *zap.Logger) *Converter {
	return &Converter{
		source: source,
		open:   open,
		logger: logger,
	}
}

// Convert loads every record, writes the header and one row per record in input order.
// Records that cannot be projected are logged and skipped; only I/O and load failures
// abort the run.
func (c *Converter) Convert(ctx context.Context) (_ *Summary, err error) {
	c.logger.Info("starting conversion")

	records, err := c.source.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	w, err := c.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if err := w.WriteHeader(ctx); err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(records)}
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := BuildRow(raw)
		if err != nil {
			summary.Skipped++
			c.logger.Error("error processing question",
				zap.String("id", RecordID(raw)),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}

		if err := w.Write(ctx, row); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		summary.Written++
	}

	return summary, nil
}
