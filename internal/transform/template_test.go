package transform

import (
	"testing"

	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/pkg/csvparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuestions(t *testing.T, text string) []template.Question {
	t.Helper()
	table, err := csvparse.Parse(text)
	require.NoError(t, err)
	return QuestionsFromTable(table, nil)
}

func TestQuestionsFromTable_DropdownScenario(t *testing.T) {
	qs := parseQuestions(t, "id,Item,Answer,Definition\n1,\"Is X true?\",\"[Yes,No]\",\"Def text\"")

	require.Len(t, qs, 1)
	assert.Equal(t, template.Question{
		ID:            "1",
		Item:          "Is X true?",
		Definition:    "Def text",
		AnswerType:    template.AnswerTypeDropdown,
		AnswerOptions: []string{"Yes", "No"},
		Source:        "",
		Comment:       "",
	}, qs[0])
}

func TestQuestionsFromTable_AnswerInference(t *testing.T) {
	text := "id,Item,Answer,Definition\n" +
		"1,Bare list,\"[A,B,C]\",d1\n" +
		"2,Json list,\"[\"\"A\"\",\"\"B\"\"]\",d2\n" +
		"3,Empty,,d3\n" +
		"4,Plain,free text,d4\n" +
		"5,Broken,\"[A,B\",d5\n" +
		"6,Empty list,[],d6\n" +
		"7,Nested,\"[[A],B]\",d7\n"

	qs := parseQuestions(t, text)
	require.Len(t, qs, 7)

	assert.Equal(t, template.AnswerTypeDropdown, qs[0].AnswerType)
	assert.Equal(t, []string{"A", "B", "C"}, qs[0].AnswerOptions)

	assert.Equal(t, template.AnswerTypeDropdown, qs[1].AnswerType)
	assert.Equal(t, []string{"A", "B"}, qs[1].AnswerOptions)

	for _, q := range qs[2:] {
		assert.Equal(t, template.AnswerTypeText, q.AnswerType, "question %s", q.ID)
		assert.Equal(t, []string{}, q.AnswerOptions, "question %s", q.ID)
	}

	assert.Equal(t, "d5", qs[4].Definition)
}

func TestQuestionsFromTable_JSONListWithBlankEntry(t *testing.T) {
	qs := parseQuestions(t, "id,Item,Answer,Definition\n"+
		"1,One blank,\"[\"\"A\"\",\"\"\"\"]\",d1\n"+
		"2,All blank,\"[\"\"\"\",\"\" \"\"]\",d2\n")
	require.Len(t, qs, 2)

	assert.Equal(t, template.AnswerTypeDropdown, qs[0].AnswerType)
	assert.Equal(t, []string{"A"}, qs[0].AnswerOptions)

	assert.Equal(t, template.AnswerTypeText, qs[1].AnswerType)
	assert.Equal(t, []string{}, qs[1].AnswerOptions)
}

func TestQuestionsFromTable_MissingColumns(t *testing.T) {
	qs := parseQuestions(t, "id,Item\n9,Only item")
	require.Len(t, qs, 1)
	assert.Equal(t, "9", qs[0].ID)
	assert.Equal(t, "Only item", qs[0].Item)
	assert.Equal(t, "", qs[0].Definition)
	assert.Equal(t, template.AnswerTypeText, qs[0].AnswerType)
}

func TestQuestionsFromTable_HeadersAreCaseSensitive(t *testing.T) {
	qs := parseQuestions(t, "ID,item,answer,definition\n1,x,[A],y")
	require.Len(t, qs, 1)
	assert.Equal(t, "", qs[0].ID)
	assert.Equal(t, "", qs[0].Item)
	assert.Equal(t, template.AnswerTypeText, qs[0].AnswerType)
}

func TestParseOptions(t *testing.T) {
	cases := []struct {
		raw     string
		want    []string
		wantErr bool
	}{
		{raw: "[Yes,No]", want: []string{"Yes", "No"}},
		{raw: `["Yes", "No"]`, want: []string{"Yes", "No"}},
		{raw: "[ 'Yes' , No ]", want: []string{"Yes", "No"}},
		{raw: "[Don't know,Yes]", want: []string{"Don't know", "Yes"}},
		{raw: "[1,2]", want: []string{"1", "2"}},
		{raw: "[]", want: []string{}},
		{raw: "[A,]", wantErr: true},
		{raw: `["A",`, wantErr: true},
		{raw: `[A"B]`, wantErr: true},
		{raw: "[[A]]", wantErr: true},
		{raw: `["A", ""]`, want: []string{"A"}},
		{raw: `[" ", "B ", ""]`, want: []string{"B"}},
		{raw: `["", "  "]`, want: []string{}},
		{raw: "Yes,No", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseOptions(tc.raw)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrMalformedOptions, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}
