//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/datadesk/internal/domain/response"
	"github.com/linskybing/datadesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

// TestIntegration_ConcurrentSavesOnPostgres races writers holding the same
// version token. Exactly one may win each round.
func TestIntegration_ConcurrentSavesOnPostgres(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := NewRepositories(db)
	ctx := context.Background()
	now := time.Now().UTC()

	resp := response.New(fmt.Sprintf("race-%d@x.io", now.UnixNano()), "J1")
	require.NoError(t, resp.Apply(response.StatusDraft, []response.Answer{{ID: "1"}}, now))
	require.NoError(t, repos.Response.CreateResponse(ctx, resp))

	const writers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		won      int
		conflict int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mine := *resp
			assert.NoError(t, mine.Apply(response.StatusDraft, []response.Answer{{ID: "1", Answer: "x"}}, time.Now().UTC()))
			err := repos.Response.UpdateResponse(ctx, &mine, resp.Version)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case assert.ErrorIs(t, err, ErrVersionConflict):
				conflict++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, writers-1, conflict)

	stored, err := repos.Response.GetResponse(ctx, resp.ResponseID)
	require.NoError(t, err)
	assert.Equal(t, resp.Version+1, stored.Version)
}

func TestIntegration_SubmitIsFinalOnPostgres(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := NewRepositories(db)
	ctx := context.Background()

	resp := response.New(fmt.Sprintf("final-%d@x.io", time.Now().UnixNano()), "J1")
	require.NoError(t, resp.Apply(response.StatusSubmitted, nil, time.Now().UTC()))
	require.NoError(t, repos.Response.CreateResponse(ctx, resp))

	// Forge a stale draft write that skips the service checks.
	forged := *resp
	forged.Status = response.StatusDraft
	forged.Version = resp.Version + 1
	err := repos.Response.UpdateResponse(ctx, &forged, resp.Version)
	assert.ErrorIs(t, err, ErrResponseSubmitted)
}

// TestIntegration_TemplateLockOrdersUploadAndSave holds the upload lock on a
// template and checks that a save taking the shared lock waits for it.
func TestIntegration_TemplateLockOrdersUploadAndSave(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := NewRepositories(db)
	ctx := context.Background()
	jobID := fmt.Sprintf("lock-%d", time.Now().UnixNano())
	require.NoError(t, repos.Template.SaveTemplate(ctx, newTemplate(jobID)))

	locked := make(chan struct{})
	release := make(chan struct{})
	uploadDone := make(chan error, 1)
	go func() {
		uploadDone <- repos.ExecTx(func(tx *Repos) error {
			if _, err := tx.Template.LockTemplate(ctx, jobID, clause.LockingStrengthUpdate); err != nil {
				return err
			}
			close(locked)
			<-release
			next := newTemplate(jobID)
			next.Version = 2
			return tx.Template.SaveTemplate(ctx, next)
		})
	}()
	<-locked

	saveDone := make(chan int, 1)
	go func() {
		var seen int
		err := repos.ExecTx(func(tx *Repos) error {
			tpl, err := tx.Template.LockTemplate(ctx, jobID, clause.LockingStrengthShare)
			seen = tpl.Version
			return err
		})
		assert.NoError(t, err)
		saveDone <- seen
	}()

	select {
	case <-saveDone:
		t.Fatal("shared lock granted while the upload held the row")
	case <-time.After(300 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-uploadDone)
	assert.Equal(t, 2, <-saveDone)
}
