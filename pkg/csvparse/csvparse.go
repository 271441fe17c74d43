// Package csvparse tokenizes the hand-edited comma separated files admins
// upload. It is more lenient than encoding/csv: quotes toggle
// anywhere in a field, every field is trimmed, and short rows are padded.
package csvparse

import (
	"errors"
	"strings"
)

var ErrMissingHeader = errors.New("csv input has no header row")

// Row maps a header name to the decoded cell value.
type Row map[string]string

// Get returns the value for header, or "" when the header is unknown.
func (r Row) Get(header string) string {
	return r[header]
}

// Table is the result of Parse. Rows keep the order of the data lines.
type Table struct {
	Headers []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Parse reads text whose first line is the header row. Every non-blank line
// after it yields one Row containing every header key.
func Parse(text string) (*Table, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMissingHeader
	}

	lines := strings.Split(text, "\n")
	headers := ParseLine(strings.TrimSpace(lines[0]))

	table := &Table{
		Headers: headers,
		Rows:    make([]Row, 0, len(lines)-1),
	}

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		values := ParseLine(line)
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// ParseLine splits a single line into trimmed fields.
//
// A comma outside a quoted region separates fields. Inside a quoted region a
// doubled quote decodes to one literal quote; any other quote toggles the
// quoted region.
func ParseLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"' && quoted && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
