package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func newTemplate(jobID string) *template.Template {
	now := time.Now()
	return &template.Template{
		JobID:     jobID,
		Title:     "Title " + jobID,
		Questions: []template.Question{{ID: "1", Item: "Q", AnswerType: template.AnswerTypeText, AnswerOptions: []string{}}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTemplateRepo_SaveReplaces(t *testing.T) {
	repo := NewTemplateRepo(testutils.NewSQLiteDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveTemplate(ctx, newTemplate("J1")))

	next := newTemplate("J1")
	next.Version = 2
	next.Title = "Renamed"
	require.NoError(t, repo.SaveTemplate(ctx, next))

	got, err := repo.GetTemplate(ctx, "J1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, "Q", got.Questions[0].Item)

	all, err := repo.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTemplateRepo_ListByJobIDs(t *testing.T) {
	repo := NewTemplateRepo(testutils.NewSQLiteDB(t))
	ctx := context.Background()

	for _, id := range []string{"J1", "J2", "J3"} {
		require.NoError(t, repo.SaveTemplate(ctx, newTemplate(id)))
	}

	got, err := repo.ListTemplatesByJobIDs(ctx, []string{"J1", "J3", "missing"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := repo.ListTemplatesByJobIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTemplateRepo_LockTemplateInsideTx(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	ctx := context.Background()
	require.NoError(t, repos.Template.SaveTemplate(ctx, newTemplate("J1")))

	err := repos.ExecTx(func(tx *Repos) error {
		got, err := tx.Template.LockTemplate(ctx, "J1", clause.LockingStrengthUpdate)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Version)

		_, err = tx.Template.LockTemplate(ctx, "missing", clause.LockingStrengthShare)
		assert.ErrorIs(t, err, ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	ctx := context.Background()

	boom := errors.New("boom")
	err := repos.ExecTx(func(tx *Repos) error {
		if err := tx.Template.SaveTemplate(ctx, newTemplate("J1")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Template.GetTemplate(ctx, "J1")
	assert.ErrorIs(t, err, ErrNotFound)
}
