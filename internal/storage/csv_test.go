package storage

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/aliskhannn/question-csv-exporter/internal/domain/entities"
	"github.com/aliskhannn/question-csv-exporter/internal/pgarray"
)

const (
	bom        = "\xef\xbb\xbf"
	headerLine = "v1_id,subject,topic,subTopic,examName,examYear,examDateShift,difficulty,questionType,question,question_hi,options,options_hi,correct,tags,explanation\r\n"
)

func TestCSVWriterHeaderOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteHeader(ctx); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != bom+headerLine {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCSVWriterQuotesLiteralCells(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteHeader(ctx); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	row := entities.Row{
		V1ID:        "1",
		Question:    "What, now?",
		Options:     `{"A","B"}`,
		OptionsHi:   "{}",
		Tags:        "{}",
		Explanation: `{"text":"x"}`,
	}
	if err := w.Write(ctx, row); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := bom + headerLine + `1,,,,,,,,,"What, now?",,"{""A"",""B""}",{},,{},"{""text"":""x""}"` + "\r\n"
	if string(got) != want {
		t.Fatalf("unexpected output\n got: %q\nwant: %q", got, want)
	}

	records, err := ReadAll(ctx, path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !slices.Equal(records[0], entities.Header) {
		t.Fatalf("header read back as %q", records[0])
	}
	if !slices.Equal(records[1], row.Values()) {
		t.Fatalf("row read back as %q", records[1])
	}
}

func TestCSVWriterKeepsLineBreaksInCells(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteHeader(ctx); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	rows := []entities.Row{
		{
			V1ID:        "1",
			Question:    " padded",
			QuestionHi:  "a\rb",
			Options:     pgarray.Encode([]string{"first\nline", "b"}),
			OptionsHi:   "{}",
			Correct:     "x\r\ny",
			Tags:        "{}",
			Explanation: "{}",
		},
		{
			V1ID:        "2",
			Question:    "line1\nline2",
			Options:     "{}",
			OptionsHi:   "{}",
			Tags:        "{}",
			Explanation: "{}",
		},
	}
	for _, row := range rows {
		if err := w.Write(ctx, row); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := bom + headerLine +
		"1,,,,,,,,, padded,\"a\rb\",\"{\"\"first\nline\"\",\"\"b\"\"}\",{},\"x\r\ny\",{},{}\r\n" +
		"2,,,,,,,,,\"line1\nline2\",,{},{},,{},{}\r\n"
	if string(got) != want {
		t.Fatalf("unexpected output\n got: %q\nwant: %q", got, want)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll(context.Background(), filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
