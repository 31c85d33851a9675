package repository

import (
	"context"
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogRepo_CrewRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteDailyLogRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Crew Job")
	require.NoError(t, projects.Create(ctx, proj))

	l := testutil.NewTestDailyLog(proj.ID, domain.PhaseDemo,
		testutil.WithCrew("M. Ortiz", "J. Chen"))
	require.NoError(t, repo.Create(ctx, l))

	fetched, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseDemo, fetched.Phase)
	assert.Equal(t, []string{"M. Ortiz", "J. Chen"}, fetched.Crew)
	assert.Equal(t, 8.0, fetched.HoursWorked)
}

func TestDailyLogRepo_DeleteNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDailyLogRepo(db)
	ctx := context.Background()

	err := repo.Delete(ctx, "missing")
	assert.Error(t, err)
}
