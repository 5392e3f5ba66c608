// Package csv parses keyword exports into kwloc rows.
//
// The parser is deliberately lenient: it never fails, treats a lone '\r' as
// a record separator, and recognizes "" as an escaped quote only inside a
// quoted field. Malformed input yields best-effort rows.
package csv

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/fwojciec/kwloc"
)

// ReadFile reads and parses the CSV file at path.
func ReadFile(path string) ([]kwloc.Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return Parse(string(b)), nil
}

// Parse splits text into rows keyed by the trimmed names of the first
// record. Fields missing from a short record map to "".
func Parse(text string) []kwloc.Row {
	records := split(text)
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimFunc(h, isHeaderSpace)
	}

	rows := make([]kwloc.Row, 0, len(records)-1)
	for _, values := range records[1:] {
		row := make(kwloc.Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// isHeaderSpace reports whether r is trimmed from header names. Spreadsheet
// exports often prefix the first header with a byte-order mark.
func isHeaderSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// split tokenizes text into records of raw fields.
func split(text string) [][]string {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '"' && inQuotes && i+1 < len(text) && text[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			record = append(record, field.String())
			field.Reset()
		case (c == '\n' || c == '\r') && !inQuotes:
			// Blank lines and the '\n' of a CRLF pair produce nothing.
			if field.Len() > 0 || len(record) > 0 {
				records = append(records, append(record, field.String()))
				record = nil
				field.Reset()
			}
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(record) > 0 {
		records = append(records, append(record, field.String()))
	}
	return records
}
