package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/repository/mock"
	"github.com/linskybing/datadesk/internal/storage"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

const templateCSV = "id,Item,Answer,Definition\n1,Q1,,D1\n2,Q2,\"[Yes,No]\",D2\n"

type brokenStore struct{}

func (brokenStore) PutObject(context.Context, string, []byte, string) error {
	return errors.New("bucket unreachable")
}

func (brokenStore) GetObject(context.Context, string) ([]byte, error) {
	return nil, errors.New("bucket unreachable")
}

// --------------------- Setup ---------------------
func setupTemplateServiceMocks(t *testing.T, store storage.ObjectStore) (*TemplateService, *mock.MockTemplateRepo, *mock.MockResponseRepo, *events.MemoryBus) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTemplate := mock.NewMockTemplateRepo(ctrl)
	mockResponse := mock.NewMockResponseRepo(ctrl)
	repos := &repository.Repos{
		Template: mockTemplate,
		Response: mockResponse,
	}
	bus := events.NewMemoryBus()
	svc := NewTemplateService(repos, store, bus, logger.Nop())
	svc.now = func() time.Time { return fixedNow }
	return svc, mockTemplate, mockResponse, bus
}

// --------------------- UploadTemplate ---------------------
func TestUploadTemplate_New(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, mockTemplate, _, bus := setupTemplateServiceMocks(t, store)
	sub, cancel := bus.Subscribe()
	defer cancel()

	mockTemplate.EXPECT().LockTemplate(gomock.Any(), "J1", clause.LockingStrengthUpdate).Return(template.Template{}, repository.ErrNotFound)
	mockTemplate.EXPECT().SaveTemplate(gomock.Any(), gomock.Any()).Return(nil)

	tpl, err := svc.UploadTemplate(context.Background(), template.UploadTemplateInput{JobID: " J1 ", Title: " Referendums "}, templateCSV)
	require.NoError(t, err)

	assert.Equal(t, "J1", tpl.JobID)
	assert.Equal(t, "Referendums", tpl.Title)
	assert.Equal(t, 1, tpl.Version)
	assert.Equal(t, fixedNow, tpl.CreatedAt)
	require.Len(t, tpl.Questions, 2)
	assert.Equal(t, template.AnswerTypeText, tpl.Questions[0].AnswerType)
	assert.Equal(t, []string{"Yes", "No"}, tpl.Questions[1].AnswerOptions)

	assert.Equal(t, "templates/J1/v1.csv", tpl.SourceObject)
	archived, err := store.GetObject(context.Background(), tpl.SourceObject)
	require.NoError(t, err)
	assert.Equal(t, templateCSV, string(archived))

	evt := <-sub
	assert.Equal(t, events.TypeTemplateUploaded, evt.Type)
	assert.Equal(t, 1, evt.Version)
}

func TestUploadTemplate_ReplacesUnusedTemplate(t *testing.T) {
	svc, mockTemplate, mockResponse, _ := setupTemplateServiceMocks(t, nil)
	created := fixedNow.Add(-48 * time.Hour)

	mockTemplate.EXPECT().LockTemplate(gomock.Any(), "J1", clause.LockingStrengthUpdate).Return(template.Template{JobID: "J1", Version: 2, CreatedAt: created}, nil)
	mockResponse.EXPECT().CountResponsesByJob(gomock.Any(), "J1").Return(int64(0), nil)
	mockTemplate.EXPECT().SaveTemplate(gomock.Any(), gomock.Any()).Return(nil)

	tpl, err := svc.UploadTemplate(context.Background(), template.UploadTemplateInput{JobID: "J1", Title: "T"}, templateCSV)
	require.NoError(t, err)
	assert.Equal(t, 3, tpl.Version)
	assert.Equal(t, created, tpl.CreatedAt)
	assert.Equal(t, fixedNow, tpl.UpdatedAt)
	assert.Empty(t, tpl.SourceObject)
}

func TestUploadTemplate_RejectsTemplateInUse(t *testing.T) {
	svc, mockTemplate, mockResponse, _ := setupTemplateServiceMocks(t, nil)

	mockTemplate.EXPECT().LockTemplate(gomock.Any(), "J1", clause.LockingStrengthUpdate).Return(template.Template{JobID: "J1", Version: 1}, nil)
	mockResponse.EXPECT().CountResponsesByJob(gomock.Any(), "J1").Return(int64(2), nil)

	_, err := svc.UploadTemplate(context.Background(), template.UploadTemplateInput{JobID: "J1", Title: "T"}, templateCSV)
	assert.ErrorIs(t, err, ErrTemplateInUse)
}

func TestUploadTemplate_ArchiveFailureStillSaves(t *testing.T) {
	svc, mockTemplate, _, _ := setupTemplateServiceMocks(t, brokenStore{})

	mockTemplate.EXPECT().LockTemplate(gomock.Any(), "J1", clause.LockingStrengthUpdate).Return(template.Template{}, repository.ErrNotFound)
	mockTemplate.EXPECT().SaveTemplate(gomock.Any(), gomock.Any()).Return(nil)

	tpl, err := svc.UploadTemplate(context.Background(), template.UploadTemplateInput{JobID: "J1", Title: "T"}, templateCSV)
	require.NoError(t, err)
	assert.Empty(t, tpl.SourceObject)
}

func TestUploadTemplate_InvalidInput(t *testing.T) {
	svc, _, _, _ := setupTemplateServiceMocks(t, nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input template.UploadTemplateInput
		csv   string
		want  error
	}{
		{"missing job id", template.UploadTemplateInput{Title: "T"}, templateCSV, ErrMissingJobID},
		{"missing title", template.UploadTemplateInput{JobID: "J1", Title: "  "}, templateCSV, ErrMissingTitle},
		{"empty file", template.UploadTemplateInput{JobID: "J1", Title: "T"}, "\n \n", ErrEmptyFile},
		{"header only", template.UploadTemplateInput{JobID: "J1", Title: "T"}, "id,Item,Answer,Definition\n", ErrEmptyTemplate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadTemplate(ctx, tc.input, tc.csv)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// --------------------- TemplateSource ---------------------
func TestTemplateSource(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.PutObject(context.Background(), "templates/J1/v1.csv", []byte(templateCSV), "text/csv"))
	svc, mockTemplate, _, _ := setupTemplateServiceMocks(t, store)

	mockTemplate.EXPECT().GetTemplate(gomock.Any(), "J1").Return(template.Template{JobID: "J1", SourceObject: "templates/J1/v1.csv"}, nil)

	data, name, err := svc.TemplateSource(context.Background(), "J1")
	require.NoError(t, err)
	assert.Equal(t, "J1.csv", name)
	assert.Equal(t, templateCSV, string(data))
}

func TestTemplateSource_NotArchived(t *testing.T) {
	svc, mockTemplate, _, _ := setupTemplateServiceMocks(t, storage.NewMemoryStore())

	mockTemplate.EXPECT().GetTemplate(gomock.Any(), "J1").Return(template.Template{JobID: "J1"}, nil)

	_, _, err := svc.TemplateSource(context.Background(), "J1")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestGetTemplate_NotFound(t *testing.T) {
	svc, mockTemplate, _, _ := setupTemplateServiceMocks(t, nil)

	mockTemplate.EXPECT().GetTemplate(gomock.Any(), "nope").Return(template.Template{}, repository.ErrNotFound)

	_, err := svc.GetTemplate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
