package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *storage.SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLite_RecordSynth(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	record := &model.SynthRecord{
		Stack:         "AwsBudgetNotificationBotStack",
		Account:       "123456789012",
		Region:        "us-east-1",
		Digest:        "abc123",
		ResourceCount: 7,
	}

	err := db.RecordSynth(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Timestamp.IsZero())
}

func TestSQLite_ListSynths(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	records := []*model.SynthRecord{
		{Stack: "stack-a", Account: "111", Region: "us-east-1", Digest: "d1", Timestamp: base},
		{Stack: "stack-a", Account: "111", Region: "eu-west-1", Digest: "d2", Timestamp: base.Add(time.Minute)},
		{Stack: "stack-b", Account: "222", Region: "us-east-1", Digest: "d3", Timestamp: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, db.RecordSynth(ctx, r))
	}

	all, err := db.ListSynths(ctx, model.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "d3", all[0].Digest, "newest first")

	byStack, err := db.ListSynths(ctx, model.HistoryFilter{Stack: "stack-a"})
	require.NoError(t, err)
	assert.Len(t, byStack, 2)

	byRegion, err := db.ListSynths(ctx, model.HistoryFilter{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Len(t, byRegion, 2)

	byAccount, err := db.ListSynths(ctx, model.HistoryFilter{Account: "222"})
	require.NoError(t, err)
	assert.Len(t, byAccount, 1)

	limited, err := db.ListSynths(ctx, model.HistoryFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLite_LatestSynth(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.RecordSynth(ctx, &model.SynthRecord{
		Stack: "s", Account: "111", Region: "us-east-1", Digest: "old", Timestamp: base,
	}))
	require.NoError(t, db.RecordSynth(ctx, &model.SynthRecord{
		Stack: "s", Account: "111", Region: "us-east-1", Digest: "new", Timestamp: base.Add(time.Minute),
		ResourceCount: 9, MissingLookup: 2, OutDir: "cdk.out",
	}))

	got, err := db.LatestSynth(ctx, "s", "111", "us-east-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Digest)
	assert.Equal(t, 9, got.ResourceCount)
	assert.Equal(t, 2, got.MissingLookup)
	assert.Equal(t, "cdk.out", got.OutDir)
}

func TestSQLite_LatestSynth_None(t *testing.T) {
	db := newTestDB(t)

	got, err := db.LatestSynth(context.Background(), "missing", "111", "us-east-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_MigrationIdempotency(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	db1, err := storage.NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, db1.RecordSynth(context.Background(), &model.SynthRecord{Stack: "s", Digest: "d"}))
	db1.Close()

	db2, err := storage.NewSQLite(dbPath)
	require.NoError(t, err)
	defer db2.Close()

	list, err := db2.ListSynths(context.Background(), model.HistoryFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
