package cli

import (
	"context"
	"testing"

	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/dmoreno/groundwork/internal/service"
	"github.com/dmoreno/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolveApp(t *testing.T) (*App, *repository.SQLiteProjectRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	return &App{Projects: service.NewProjectService(repo)}, repo
}

func TestResolveProjectID_JobIDCaseInsensitive(t *testing.T) {
	app, repo := newResolveApp(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Riverside", testutil.WithJobID("RIV-101"))
	require.NoError(t, repo.Create(ctx, p))

	got, err := resolveProjectID(ctx, app, "riv-101")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)
}

func TestResolveProjectID_ExactUUID(t *testing.T) {
	app, repo := newResolveApp(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Riverside")
	require.NoError(t, repo.Create(ctx, p))

	got, err := resolveProjectID(ctx, app, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)
}

func TestResolveProjectID_UUIDPrefix(t *testing.T) {
	app, repo := newResolveApp(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Riverside")
	require.NoError(t, repo.Create(ctx, p))

	got, err := resolveProjectID(ctx, app, p.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)
}

func TestResolveProjectID_AmbiguousPrefix(t *testing.T) {
	app, repo := newResolveApp(t)
	ctx := context.Background()

	a := testutil.NewTestProject("First")
	a.ID = "11111111-aaaa-4aaa-8aaa-000000000001"
	b := testutil.NewTestProject("Second")
	b.ID = "11111111-bbbb-4bbb-8bbb-000000000002"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	_, err := resolveProjectID(ctx, app, "11111111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveProjectID_NotFound(t *testing.T) {
	app, _ := newResolveApp(t)

	_, err := resolveProjectID(context.Background(), app, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveProjectID_EmptyInput(t *testing.T) {
	app, _ := newResolveApp(t)

	_, err := resolveProjectID(context.Background(), app, "")
	require.Error(t, err)
}

func TestResolveProjectID_FindsArchivedProjects(t *testing.T) {
	app, repo := newResolveApp(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Old Job", testutil.WithJobID("OLD-001"))
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Archive(ctx, p.ID))

	// Archived jobs stay addressable so they can be inspected or unarchived.
	got, err := resolveProjectID(ctx, app, "OLD-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)
}
