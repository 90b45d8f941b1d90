package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTombstoneRepo_CreateAndExists(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewInstance(db).Tombstone()
	deletedAt := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)

	exists, err := repo.Exists("1700000000.000100")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create("1700000000.000100", deletedAt))

	exists, err = repo.Exists("1700000000.000100")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTombstoneRepo_CreateIsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewInstance(db).Tombstone()
	deletedAt := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create("1700000000.000100", deletedAt))
	require.NoError(t, repo.Create("1700000000.000100", deletedAt.Add(time.Hour)))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "1700000000.000100", all[0].SourceMessageTS)
	assert.True(t, all[0].DeletedAt.Equal(deletedAt), "first deletion time wins")
}
