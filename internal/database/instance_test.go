package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slack-schedule-collector/internal/domain/contract"
)

func TestWithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Tombstone().Create("1700000000.000100", time.Now().UTC()); err != nil {
			return err
		}
		return tx.Schedule().Upsert(testSchedule("s1", testTime()))
	})
	require.NoError(t, err)

	exists, err := dm.Tombstone().Exists("1700000000.000100")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := dm.Schedule().GetByID("s1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Schedule().Upsert(testSchedule("s1", testTime())); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := dm.Schedule().GetByID("s1")
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back write must not be visible")
}

func TestWithTransaction_Nested(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
			return inner.Schedule().Upsert(testSchedule("s1", testTime()))
		})
	})
	require.NoError(t, err)

	got, err := dm.Schedule().GetByID("s1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
