package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/testutil"
)

func newFacultyRepo(t *testing.T) *SQLiteFacultyRepo {
	t.Helper()
	return NewSQLiteFacultyRepo(testutil.NewTestDB(t))
}

func TestFacultyRepo_MarkAbsentCreatesRecord(t *testing.T) {
	repo := newFacultyRepo(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	err := repo.MarkAbsent(context.Background(), &domain.FacultyMember{
		ID: uuid.NewString(), Name: "Dr. Sharma", LastUpdated: now,
	})
	require.NoError(t, err)

	got, err := repo.GetByName(context.Background(), "Dr. Sharma")
	require.NoError(t, err)
	assert.Equal(t, domain.FacultyAbsent, got.Status)
	assert.Equal(t, now, got.LastUpdated)
}

func TestFacultyRepo_MarkAbsentUpsertsByName(t *testing.T) {
	repo := newFacultyRepo(t)
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkAbsent(ctx, &domain.FacultyMember{
		ID: uuid.NewString(), Name: "Prof. Rao", LastUpdated: first,
	}))

	// Re-marking with a different case must hit the same row.
	second := first.Add(24 * time.Hour)
	require.NoError(t, repo.MarkAbsent(ctx, &domain.FacultyMember{
		ID: uuid.NewString(), Name: "prof. rao", LastUpdated: second,
	}))

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Prof. Rao", members[0].Name)
	assert.Equal(t, second, members[0].LastUpdated)
}

func TestFacultyRepo_GetByName_NotFound(t *testing.T) {
	repo := newFacultyRepo(t)
	_, err := repo.GetByName(context.Background(), "Dr. Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFacultyRepo_List_SortedByName(t *testing.T) {
	repo := newFacultyRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for _, name := range []string{"Prof. Rao", "Dr. Ahuja", "Ms. Kapoor"} {
		require.NoError(t, repo.MarkAbsent(ctx, &domain.FacultyMember{
			ID: uuid.NewString(), Name: name, LastUpdated: now,
		}))
	}

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Dr. Ahuja", members[0].Name)
	assert.Equal(t, "Ms. Kapoor", members[1].Name)
	assert.Equal(t, "Prof. Rao", members[2].Name)
}
