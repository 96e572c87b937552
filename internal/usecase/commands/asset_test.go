//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/ptr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"
	"civic-hub/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assetFixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	commands commands.AssetCommands
	queries  queries.AssetQueries
}

func newAssetFixture() *assetFixture {
	store := memuow.New()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	return &assetFixture{
		store:    store,
		clock:    clk,
		commands: commands.NewAssetCommands(store, clk),
		queries:  queries.NewAssetQueries(store.AssetReadStore()),
	}
}

func (f *assetFixture) create(t *testing.T, name string, total int) uuid.UUID {
	t.Helper()
	res, err := f.commands.Create(context.Background(), admin, commands.AssetInput{
		Name:          name,
		Category:      "FURNITURE",
		TotalQuantity: total,
	})
	require.NoError(t, err)
	return res.AssetID
}

func (f *assetFixture) available(t *testing.T, id uuid.UUID) int {
	t.Helper()
	v, err := f.queries.GetByID(context.Background(), id)
	require.NoError(t, err)
	return v.AvailableQuantity
}

func TestAssetCommands_LedgerScenario(t *testing.T) {
	ctx := context.Background()
	f := newAssetFixture()
	table := f.create(t, "Table", 10)
	assert.Equal(t, 10, f.available(t, table))

	first, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: table, Quantity: 6, ConditionBefore: "GOOD"})
	require.NoError(t, err)
	assert.Equal(t, 4, f.available(t, table))

	_, err = f.commands.Borrow(ctx, neighbor, commands.BorrowRequest{AssetID: table, Quantity: 5, ConditionBefore: "GOOD"})
	require.Error(t, err)
	assert.ErrorIs(t, err, asset.ErrNotEnoughAvailable)
	assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))
	assert.Equal(t, 4, f.available(t, table))

	f.clock.Add(48 * time.Hour)
	err = f.commands.Return(ctx, resident, commands.ReturnRequest{BorrowLogID: first.BorrowLogID, ConditionAfter: "DAMAGED"})
	require.NoError(t, err)
	assert.Equal(t, 10, f.available(t, table), "damaged returns still restore stock")

	l, ok := f.store.BorrowLog(first.BorrowLogID)
	require.True(t, ok)
	assert.Equal(t, asset.LogStatusDamaged, l.Status())
	require.NotNil(t, l.ReturnedAt())
	assert.Equal(t, "DAMAGED", ptr.Deref(l.ConditionAfter()))

	_, err = f.commands.Borrow(ctx, neighbor, commands.BorrowRequest{AssetID: table, Quantity: 10, ConditionBefore: "GOOD"})
	require.NoError(t, err)
	assert.Equal(t, 0, f.available(t, table))

	history, err := f.queries.ListBorrowLogs(ctx, admin, queries.BorrowLogFilter{AssetID: &table}, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2, "ledger keeps closed entries")
}

func TestAssetCommands_Borrow(t *testing.T) {
	ctx := context.Background()

	t.Run("error: non-positive quantity", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Chair", 5)

		_, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 0, ConditionBefore: "GOOD"})
		assert.ErrorIs(t, err, asset.ErrInvalidQuantity)
	})

	t.Run("error: asset under maintenance", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Speaker", 2)
		require.NoError(t, f.commands.Update(ctx, admin, id, commands.AssetInput{
			Name:          "Speaker",
			Category:      "AUDIO",
			TotalQuantity: 2,
			Status:        "MAINTENANCE",
		}))

		_, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 1, ConditionBefore: "GOOD"})
		assert.Equal(t, errs.KindAssetUnavailable, errs.KindOf(err))
	})

	t.Run("error: unknown asset", func(t *testing.T) {
		f := newAssetFixture()

		_, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: uuid.New(), Quantity: 1, ConditionBefore: "GOOD"})
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestAssetCommands_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("error: returning twice", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Tent", 3)
		res, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 1, ConditionBefore: "GOOD"})
		require.NoError(t, err)
		require.NoError(t, f.commands.Return(ctx, resident, commands.ReturnRequest{BorrowLogID: res.BorrowLogID, ConditionAfter: "GOOD"}))

		err = f.commands.Return(ctx, resident, commands.ReturnRequest{BorrowLogID: res.BorrowLogID, ConditionAfter: "GOOD"})
		assert.ErrorIs(t, err, asset.ErrAlreadyReturned)
		assert.Equal(t, 3, f.available(t, id))
	})

	t.Run("error: someone else's loan", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Tent", 3)
		res, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 2, ConditionBefore: "GOOD"})
		require.NoError(t, err)

		err = f.commands.Return(ctx, neighbor, commands.ReturnRequest{BorrowLogID: res.BorrowLogID, ConditionAfter: "GOOD"})
		assert.ErrorIs(t, err, asset.ErrNotBorrower)
		assert.Equal(t, 1, f.available(t, id))
	})

	t.Run("success: admin closes any loan", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Tent", 3)
		res, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 2, ConditionBefore: "GOOD"})
		require.NoError(t, err)

		require.NoError(t, f.commands.Return(ctx, admin, commands.ReturnRequest{BorrowLogID: res.BorrowLogID}))
		l, _ := f.store.BorrowLog(res.BorrowLogID)
		assert.Equal(t, asset.LogStatusReturned, l.Status())
	})
}

func TestAssetCommands_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("error: total below borrowed", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Bench", 5)
		_, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 4, ConditionBefore: "GOOD"})
		require.NoError(t, err)

		err = f.commands.Update(ctx, admin, id, commands.AssetInput{Name: "Bench", Category: "FURNITURE", TotalQuantity: 3})
		assert.ErrorIs(t, err, asset.ErrTotalBelowBorrowed)
	})

	t.Run("error: residents cannot create", func(t *testing.T) {
		f := newAssetFixture()

		_, err := f.commands.Create(ctx, resident, commands.AssetInput{Name: "Bench", Category: "FURNITURE", TotalQuantity: 1})
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	t.Run("success: delete an asset that was never lent", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Bench", 5)

		require.NoError(t, f.commands.Delete(ctx, admin, id))
		_, ok := f.store.Asset(id)
		assert.False(t, ok)
	})

	t.Run("error: delete keeps the ledger", func(t *testing.T) {
		f := newAssetFixture()
		id := f.create(t, "Bench", 5)
		res, err := f.commands.Borrow(ctx, resident, commands.BorrowRequest{AssetID: id, Quantity: 1, ConditionBefore: "GOOD"})
		require.NoError(t, err)
		require.NoError(t, f.commands.Return(ctx, resident, commands.ReturnRequest{BorrowLogID: res.BorrowLogID}))

		err = f.commands.Delete(ctx, admin, id)
		assert.ErrorIs(t, err, asset.ErrAssetHasLedgerHistory)
		assert.Len(t, f.store.BorrowLogs(id), 1)
	})
}
