package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aliskhannn/question-csv-exporter/internal/domain/entities"
	"github.com/aliskhannn/question-csv-exporter/internal/pgarray"
)

var (
	ErrNotObject = errors.New("value is not a JSON object")
	ErrNotArray  = errors.New("value is not a JSON array")
	ErrNotScalar = errors.New("value is not a scalar")
)

// BuildRow projects one raw question record into an import row.
// Missing or null fields and sub-objects resolve to empty cells.
// A field of the wrong shape fails the whole record; no partial row is returned.
func BuildRow(raw json.RawMessage) (entities.Row, error) {
	var q entities.Question
	if err := decodeObject(raw, &q); err != nil {
		return entities.Row{}, fmt.Errorf("question: %w", err)
	}

	var c entities.Classification
	if err := decodeObject(q.Classification, &c); err != nil {
		return entities.Row{}, fmt.Errorf("classification: %w", err)
	}
	var s entities.SourceInfo
	if err := decodeObject(q.SourceInfo, &s); err != nil {
		return entities.Row{}, fmt.Errorf("sourceInfo: %w", err)
	}
	var p entities.Properties
	if err := decodeObject(q.Properties, &p); err != nil {
		return entities.Row{}, fmt.Errorf("properties: %w", err)
	}

	var (
		row entities.Row
		b   = rowBuilder{}
	)
	row.V1ID = b.scalar("id", q.ID)
	row.Subject = b.scalar("classification.subject", c.Subject)
	row.Topic = b.scalar("classification.topic", c.Topic)
	row.SubTopic = b.scalar("classification.subTopic", c.SubTopic)
	row.ExamName = b.scalar("sourceInfo.examName", s.ExamName)
	row.ExamYear = b.scalar("sourceInfo.examYear", s.ExamYear)
	row.ExamDateShift = b.scalar("sourceInfo.examDateShift", s.ExamDateShift)
	row.Difficulty = b.scalar("properties.difficulty", p.Difficulty)
	row.QuestionType = b.scalar("properties.questionType", p.QuestionType)
	row.Question = b.scalar("question", q.Question)
	row.QuestionHi = b.scalar("question_hi", q.QuestionHi)
	row.Options = b.array("options", q.Options)
	row.OptionsHi = b.array("options_hi", q.OptionsHi)
	row.Correct = b.scalar("correct", q.Correct)
	row.Tags = b.array("tags", q.Tags)
	row.Explanation = b.object("explanation", q.Explanation)

	if b.err != nil {
		return entities.Row{}, b.err
	}

	return row, nil
}

// RecordID renders the id of a raw record for log messages.
// It never fails; unreadable ids render as an empty string.
func RecordID(raw json.RawMessage) string {
	var q struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		return ""
	}
	if id, err := elementText(q.ID); err == nil {
		return id
	}
	return ""
}

// rowBuilder keeps the first field error so BuildRow reads as a field table.
type rowBuilder struct {
	err error
}

func (b *rowBuilder) scalar(field string, raw json.RawMessage) string {
	if b.err != nil {
		return ""
	}
	s, err := scalarText(raw)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", field, err)
	}
	return s
}

func (b *rowBuilder) array(field string, raw json.RawMessage) string {
	if b.err != nil {
		return ""
	}
	s, err := encodeArray(raw)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", field, err)
	}
	return s
}

func (b *rowBuilder) object(field string, raw json.RawMessage) string {
	if b.err != nil {
		return ""
	}
	s, err := encodeExplanation(raw)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", field, err)
	}
	return s
}

// scalarText renders a passthrough value: null as empty, strings unquoted,
// numbers and booleans as written in the source.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", nil
	}

	switch raw[0] {
	case '{', '[':
		return "", ErrNotScalar
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		return string(raw), nil
	}
}

// elementText renders an array element. Unlike scalarText it accepts
// nested values, which are written as compact JSON.
func elementText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", nil
	}

	switch raw[0] {
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return scalarText(raw)
	}
}

// encodeArray renders an array field as a text[] literal.
func encodeArray(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return pgarray.Empty, nil
	}
	if raw[0] != '[' {
		return "", ErrNotArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", err
	}

	elems := make([]string, 0, len(items))
	for _, item := range items {
		s, err := elementText(item)
		if err != nil {
			return "", err
		}
		elems = append(elems, s)
	}

	return pgarray.Encode(elems), nil
}

// encodeExplanation renders the explanation object as compact JSON for a jsonb column.
// Key order is kept as in the source document.
func encodeExplanation(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "{}", nil
	}
	if raw[0] != '{' {
		return "", ErrNotObject
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// decodeObject decodes raw into dst, leaving dst zero when raw is missing or null.
func decodeObject(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil
	}
	if raw[0] != '{' {
		return ErrNotObject
	}
	return json.Unmarshal(raw, dst)
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
