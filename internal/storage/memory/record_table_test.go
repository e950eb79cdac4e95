package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func values(title string) *sqlconfig.RecordValues {
	return &sqlconfig.RecordValues{
		Title:    title,
		Amount:   decimal.RequireFromString("4.50"),
		Category: "Food",
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInsert_AssignsIDAndCreatedAt(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	first, err := table.Insert(ctx, values("Coffee"))
	require.NoError(t, err)
	second, err := table.Insert(ctx, values("Tea"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, "Coffee", first.Title)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("4.50")))
}

func TestList_NewestFirst(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	table.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for _, title := range []string{"t1", "t2", "t3"} {
		_, err := table.Insert(ctx, values(title))
		require.NoError(t, err)
	}

	records, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "t3", records[0].Title)
	assert.Equal(t, "t2", records[1].Title)
	assert.Equal(t, "t1", records[2].Title)

	again, err := table.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestList_SameCreatedAtUsesInsertionOrder(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	table.now = func() time.Time { return fixed }

	for _, title := range []string{"a", "b", "c"} {
		_, err := table.Insert(ctx, values(title))
		require.NoError(t, err)
	}

	records, err := table.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", records[0].Title)
	assert.Equal(t, "a", records[2].Title)
}

func TestList_Empty(t *testing.T) {
	records, err := NewRecordTable().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestUpdate_ReplacesMutableFields(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	created, err := table.Insert(ctx, values("Coffee"))
	require.NoError(t, err)

	updated, err := table.Update(ctx, created.ID, &sqlconfig.RecordValues{
		Title:    "Lunch",
		Amount:   decimal.RequireFromString("12"),
		Category: "Dining",
		Date:     time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "Lunch", updated.Title)
	assert.Equal(t, "Dining", updated.Category)
	assert.Equal(t, "", updated.Description)

	found, err := table.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestUpdate_NotFound(t *testing.T) {
	_, err := NewRecordTable().Update(context.Background(), uuid.Must(uuid.NewV4()), values("x"))
	assert.ErrorIs(t, err, sqlconfig.ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	created, err := table.Insert(ctx, values("Coffee"))
	require.NoError(t, err)

	require.NoError(t, table.Delete(ctx, created.ID))

	_, err = table.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, sqlconfig.ErrRecordNotFound)
	assert.ErrorIs(t, table.Delete(ctx, created.ID), sqlconfig.ErrRecordNotFound)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	table := NewRecordTable()
	ctx := context.Background()

	created, err := table.Insert(ctx, values("Coffee"))
	require.NoError(t, err)
	created.Title = "mutated"

	found, err := table.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", found.Title)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRecordTable().Insert(ctx, values("Coffee"))
	assert.ErrorIs(t, err, context.Canceled)
}
