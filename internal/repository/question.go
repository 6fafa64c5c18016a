package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrTrailingData  = errors.New("unexpected data after top-level array")
)

// QuestionRepository reads the question bank from a JSON file.
// The whole document is loaded in memory.
type QuestionRepository struct {
	path string
}

// NewQuestionRepository creates a new QuestionRepository for the file at path.
func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{path: path}
}

// LoadAll returns every element of the top-level JSON array, in file order.
// Elements are returned undecoded; a malformed element only fails when it is projected.
func (r *QuestionRepository) LoadAll(ctx context.Context) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, r.path)
		}
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	// Exports from Windows tools often carry a UTF-8 BOM.
	src := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	dec := json.NewDecoder(src)

	var records []json.RawMessage
	if err = dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	// Only whitespace may follow the top-level array.
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", ErrTrailingData)
	}

	return records, nil
}
