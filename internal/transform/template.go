// Package transform converts between parsed CSV tables, the persisted
// template/response records and the six-column grid coders edit.
package transform

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/pkg/csvparse"
	"github.com/linskybing/datadesk/pkg/logger"
)

// Template CSV headers. They are case-sensitive.
const (
	HeaderID         = "id"
	HeaderItem       = "Item"
	HeaderAnswer     = "Answer"
	HeaderDefinition = "Definition"
)

var ErrMalformedOptions = errors.New("malformed answer options")

// QuestionsFromTable derives one Question per parsed row. A row whose Answer
// cell cannot be decoded falls back to a text question; the failure is logged
// and the remaining rows are still ingested.
func QuestionsFromTable(table *csvparse.Table, log *logger.Logger) []template.Question {
	if log == nil {
		log = logger.Nop()
	}

	questions := make([]template.Question, 0, table.Len())
	if table == nil {
		return questions
	}

	for i, row := range table.Rows {
		q := template.Question{
			ID:            row.Get(HeaderID),
			Item:          row.Get(HeaderItem),
			Definition:    row.Get(HeaderDefinition),
			AnswerType:    template.AnswerTypeText,
			AnswerOptions: []string{},
		}

		answer := strings.TrimSpace(row.Get(HeaderAnswer))
		if strings.HasPrefix(answer, "[") {
			opts, err := ParseOptions(answer)
			switch {
			case err != nil:
				log.Warn("failed to parse answer options", "row", i+1, "question_id", q.ID, "value", answer, "error", err)
			case len(opts) == 0:
				log.Debug("empty answer options, using text", "row", i+1, "question_id", q.ID)
			default:
				q.AnswerType = template.AnswerTypeDropdown
				q.AnswerOptions = opts
			}
		}

		questions = append(questions, q)
	}

	return questions
}

// ParseOptions decodes a bracketed option list. Both JSON arrays of strings
// (["Yes","No"]) and bare lists ([Yes,No]) are accepted. A bare list with an
// empty entry is malformed.
func ParseOptions(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") || len(raw) < 2 {
		return nil, ErrMalformedOptions
	}

	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		// Blank entries are dropped; a list left empty reads as text.
		out := make([]string, 0, len(decoded))
		for _, opt := range decoded {
			if opt = strings.TrimSpace(opt); opt != "" {
				out = append(out, opt)
			}
		}
		return out, nil
	}

	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return []string{}, nil
	}
	if strings.ContainsAny(inner, "[]") {
		return nil, ErrMalformedOptions
	}

	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		opt, ok := unquote(strings.TrimSpace(part))
		if !ok || opt == "" {
			return nil, ErrMalformedOptions
		}
		out = append(out, opt)
	}
	return out, nil
}

// unquote strips one matching pair of surrounding quotes. A stray double
// quote makes the option malformed.
func unquote(s string) (string, bool) {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	if strings.Contains(s, `"`) {
		return "", false
	}
	return s, true
}
