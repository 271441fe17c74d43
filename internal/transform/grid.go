package transform

import (
	"github.com/linskybing/datadesk/internal/domain/response"
	"github.com/linskybing/datadesk/internal/domain/template"
)

// Grid column order: [id, item, answer, source, definition, comment].
const (
	ColID = iota
	ColItem
	ColAnswer
	ColSource
	ColDefinition
	ColComment

	GridWidth
)

// GridHeaders are the column titles shown above the grid.
var GridHeaders = []string{"ID", "Item", "Answer", "Source", "Definition", "Comment"}

// AnswersFromGrid turns grid rows into answers. Missing cells become "".
// It never fails.
func AnswersFromGrid(grid [][]string) []response.Answer {
	answers := make([]response.Answer, 0, len(grid))
	for _, row := range grid {
		answers = append(answers, response.Answer{
			ID:         cell(row, ColID),
			Item:       cell(row, ColItem),
			Answer:     cell(row, ColAnswer),
			Source:     cell(row, ColSource),
			Definition: cell(row, ColDefinition),
			Comment:    cell(row, ColComment),
		})
	}
	return answers
}

// GridFromAnswers is the inverse of AnswersFromGrid.
func GridFromAnswers(answers []response.Answer) [][]string {
	grid := make([][]string, 0, len(answers))
	for _, a := range answers {
		grid = append(grid, []string{a.ID, a.Item, a.Answer, a.Source, a.Definition, a.Comment})
	}
	return grid
}

// GridFromQuestions hydrates an empty grid from a template.
func GridFromQuestions(questions []template.Question) [][]string {
	grid := make([][]string, 0, len(questions))
	for _, q := range questions {
		grid = append(grid, []string{q.ID, q.Item, "", q.Source, q.Definition, q.Comment})
	}
	return grid
}

// RestoreReadOnly overwrites the columns coders cannot edit (id, item and
// definition) with the template's values. answers and questions must be
// index-aligned.
func RestoreReadOnly(answers []response.Answer, questions []template.Question) []response.Answer {
	out := make([]response.Answer, len(answers))
	copy(out, answers)
	for i := range out {
		if i >= len(questions) {
			break
		}
		out[i].ID = questions[i].ID
		out[i].Item = questions[i].Item
		out[i].Definition = questions[i].Definition
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
