package repository

import (
	"context"
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulePhaseRepo_DependenciesRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteSchedulePhaseRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Dep Job")
	require.NoError(t, projects.Create(ctx, proj))

	demo := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseDemo)
	prep := testutil.NewTestSchedulePhase(proj.ID, domain.PhasePrep, testutil.WithDependencies(demo.ID))
	install := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseInstall, testutil.WithDependencies(prep.ID, demo.ID))
	require.NoError(t, repo.Create(ctx, demo))
	require.NoError(t, repo.Create(ctx, prep))
	require.NoError(t, repo.Create(ctx, install))

	fetched, err := repo.GetByID(ctx, install.ID)
	require.NoError(t, err)
	// Authored order is preserved.
	assert.Equal(t, []string{prep.ID, demo.ID}, fetched.Dependencies)

	list, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, sp := range list {
		switch sp.ID {
		case demo.ID:
			assert.Empty(t, sp.Dependencies)
		case prep.ID:
			assert.Equal(t, []string{demo.ID}, sp.Dependencies)
		}
	}
}

func TestSchedulePhaseRepo_UpdateReplacesDependencies(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteSchedulePhaseRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Replan Job")
	require.NoError(t, projects.Create(ctx, proj))

	a := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseDemo)
	b := testutil.NewTestSchedulePhase(proj.ID, domain.PhasePrep)
	c := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseInstall, testutil.WithDependencies(a.ID))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, c))

	c.Dependencies = []string{b.ID}
	c.Status = domain.ScheduleInProgress
	c.Progress = 25
	require.NoError(t, repo.Update(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, fetched.Dependencies)
	assert.Equal(t, domain.ScheduleInProgress, fetched.Status)
	assert.Equal(t, 25, fetched.Progress)
}

func TestSchedulePhaseRepo_BaselineAndActuals(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteSchedulePhaseRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Baseline Job")
	require.NoError(t, projects.Create(ctx, proj))

	sp := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseInstall)
	require.NoError(t, repo.Create(ctx, sp))

	fetched, err := repo.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	// No baseline authored means nil, not zero time.
	assert.Nil(t, fetched.BaselineStart)
	assert.Nil(t, fetched.BaselineEnd)
	assert.Nil(t, fetched.ActualEnd)

	sp2 := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseCure,
		testutil.WithBaseline(sp.StartDate, sp.EndDate),
		testutil.WithActuals(sp.StartDate, sp.EndDate))
	require.NoError(t, repo.Create(ctx, sp2))

	fetched, err = repo.GetByID(ctx, sp2.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.BaselineEnd)
	assert.Equal(t, sp.EndDate.Format("2006-01-02"), fetched.BaselineEnd.Format("2006-01-02"))
	require.NotNil(t, fetched.ActualEnd)
}

func TestSchedulePhaseRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteSchedulePhaseRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Del Job")
	require.NoError(t, projects.Create(ctx, proj))

	sp := testutil.NewTestSchedulePhase(proj.ID, domain.PhaseDemo)
	require.NoError(t, repo.Create(ctx, sp))
	require.NoError(t, repo.Delete(ctx, sp.ID))

	_, err := repo.GetByID(ctx, sp.ID)
	assert.Error(t, err)

	err = repo.Delete(ctx, sp.ID)
	assert.Error(t, err)
}
