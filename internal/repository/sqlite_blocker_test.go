package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockerRepo_PhaseTagsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteBlockerRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Blocked Job")
	require.NoError(t, projects.Create(ctx, proj))

	tagged := testutil.NewTestBlocker(proj.ID, "adhesive missing",
		testutil.WithBlockerPhases(domain.PhaseInstall, domain.PhaseCure))
	anyPhase := testutil.NewTestBlocker(proj.ID, "site access revoked")
	require.NoError(t, repo.Create(ctx, tagged))
	require.NoError(t, repo.Create(ctx, anyPhase))

	fetched, err := repo.GetByID(ctx, tagged.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Phase{domain.PhaseInstall, domain.PhaseCure}, fetched.Phases)

	fetched, err = repo.GetByID(ctx, anyPhase.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Phases)
}

func TestBlockerRepo_ListActiveExcludesResolved(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteBlockerRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Resolving Job")
	require.NoError(t, projects.Create(ctx, proj))

	open := testutil.NewTestBlocker(proj.ID, "still standing")
	done := testutil.NewTestBlocker(proj.ID, "already handled",
		testutil.Resolved(time.Now().UTC()))
	require.NoError(t, repo.Create(ctx, open))
	require.NoError(t, repo.Create(ctx, done))

	active, err := repo.ListActive(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)

	all, err := repo.ListAll(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlockerRepo_FindActiveBySource(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteBlockerRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Sourced Job")
	require.NoError(t, projects.Create(ctx, proj))

	b := testutil.NewTestBlocker(proj.ID, "critical defect open",
		testutil.WithBlockerSource(domain.BlockerFromPunch, "item-42"))
	require.NoError(t, repo.Create(ctx, b))

	found, err := repo.FindActiveBySource(ctx, proj.ID, domain.BlockerFromPunch, "item-42")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, b.ID, found.ID)

	// Absence is not an error.
	found, err = repo.FindActiveBySource(ctx, proj.ID, domain.BlockerFromDelivery, "item-42")
	require.NoError(t, err)
	assert.Nil(t, found)

	require.NoError(t, repo.Resolve(ctx, b.ID))
	found, err = repo.FindActiveBySource(ctx, proj.ID, domain.BlockerFromPunch, "item-42")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBlockerRepo_ResolveOnlyOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteBlockerRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Once Job")
	require.NoError(t, projects.Create(ctx, proj))

	b := testutil.NewTestBlocker(proj.ID, "one shot")
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Resolve(ctx, b.ID))

	err := repo.Resolve(ctx, b.ID)
	assert.Error(t, err)

	fetched, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.ResolvedAt)
}
