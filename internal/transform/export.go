package transform

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/linskybing/datadesk/internal/domain/response"
)

var ExportHeaders = []string{
	"response_id", "user_email", "job_id", "status", "submitted_at",
	"id", "item", "answer", "source", "definition", "comment",
}

// WriteResponsesCSV writes one line per answer of every response.
func WriteResponsesCSV(w io.Writer, responses []response.Response) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeaders); err != nil {
		return err
	}

	for _, r := range responses {
		submittedAt := ""
		if r.SubmittedAt != nil {
			submittedAt = r.SubmittedAt.UTC().Format(time.RFC3339)
		}
		for _, a := range r.Data {
			line := []string{
				r.ResponseID, r.UserEmail, r.JobID, string(r.Status), submittedAt,
				a.ID, a.Item, a.Answer, a.Source, a.Definition, a.Comment,
			}
			if err := cw.Write(line); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
