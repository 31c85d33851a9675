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

func TestAcclimationRepo_ReadingsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAcclimationRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Hardwood Job")
	require.NoError(t, projects.Create(ctx, proj))

	start := time.Now().UTC().Add(-12 * time.Hour).Truncate(time.Second)
	sess := testutil.NewTestSession(proj.ID, "oak planks",
		testutil.WithSessionStart(start),
		testutil.WithReadings(
			domain.EnvReading{At: start.Add(1 * time.Hour), TempF: 70, HumidityPct: 42},
			domain.EnvReading{At: start.Add(6 * time.Hour), TempF: 72, HumidityPct: 45},
		))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "oak planks", fetched.MaterialName)
	assert.Equal(t, 48, fetched.RequiredHours)
	require.Len(t, fetched.Readings, 2)
	assert.Equal(t, 70.0, fetched.Readings[0].TempF)
	assert.Equal(t, 45.0, fetched.Readings[1].HumidityPct)
}

func TestAcclimationRepo_AddReading(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAcclimationRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Vinyl Job")
	require.NoError(t, projects.Create(ctx, proj))

	sess := testutil.NewTestSession(proj.ID, "vinyl rolls")
	require.NoError(t, repo.Create(ctx, sess))

	reading := domain.EnvReading{At: time.Now().UTC().Truncate(time.Second), TempF: 68, HumidityPct: 50}
	require.NoError(t, repo.AddReading(ctx, sess.ID, reading))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Readings, 1)
	assert.Equal(t, 68.0, fetched.Readings[0].TempF)
}

func TestAcclimationRepo_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAcclimationRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Laminate Job")
	require.NoError(t, projects.Create(ctx, proj))

	sess := testutil.NewTestSession(proj.ID, "laminate boxes")
	require.NoError(t, repo.Create(ctx, sess))

	sess.Status = domain.AcclimationComplete
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AcclimationComplete, fetched.Status)
}

func TestAcclimationRepo_ListByProjectOrdersByStart(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteAcclimationRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Two Materials")
	require.NoError(t, projects.Create(ctx, proj))

	now := time.Now().UTC().Truncate(time.Second)
	later := testutil.NewTestSession(proj.ID, "trim", testutil.WithSessionStart(now))
	earlier := testutil.NewTestSession(proj.ID, "planks", testutil.WithSessionStart(now.Add(-24*time.Hour)))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	list, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "planks", list[0].MaterialName)
	assert.Equal(t, "trim", list[1].MaterialName)
}
