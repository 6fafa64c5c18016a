// Package pgarray converts string slices to and from PostgreSQL array literals
// in the form accepted by the COPY/CSV importer.
package pgarray

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Empty is the literal for an empty or missing array.
const Empty = "{}"

// Encode returns the array literal for elems. Every element is quoted,
// so values such as NULL or ones containing commas and braces survive as text.
func Encode(elems []string) string {
	if len(elems) == 0 {
		return Empty
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, elem := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escapeElement(elem))
		b.WriteByte('"')
	}
	b.WriteByte('}')

	return b.String()
}

// escapeElement escapes backslashes before quotes so the backslashes added
// for quotes are not doubled.
func escapeElement(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Decode parses a text[] literal using PostgreSQL's own array parser from pgtype.
func Decode(literal string) ([]string, error) {
	var out []string
	m := pgtype.NewMap()
	if err := m.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, []byte(literal), &out); err != nil {
		return nil, fmt.Errorf("decode array literal %q: %w", literal, err)
	}

	if out == nil {
		out = []string{}
	}

	return out, nil
}
