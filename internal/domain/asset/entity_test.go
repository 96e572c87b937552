//go:build unit

package asset_test

import (
	"testing"
	"time"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func table(t *testing.T, total int) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(asset.Attributes{
		Name:          "Table",
		Category:      asset.CategoryFurniture,
		TotalQuantity: total,
	}, now)
	require.NoError(t, err)
	return a
}

func borrow(qty int) asset.BorrowRequest {
	return asset.BorrowRequest{BorrowerID: uuid.New(), Quantity: qty, ConditionBefore: "GOOD"}
}

func TestNewAsset(t *testing.T) {
	t.Run("success: defaults status to GOOD", func(t *testing.T) {
		a, err := asset.NewAsset(asset.Attributes{Name: " Speaker ", Category: "audio", TotalQuantity: 0}, now)
		require.NoError(t, err)
		assert.Equal(t, "Speaker", a.Name())
		assert.Equal(t, asset.CategoryAudio, a.Category())
		assert.Equal(t, asset.StatusGood, a.Status())
	})

	tests := []struct {
		name  string
		attrs asset.Attributes
		errIs error
	}{
		{name: "empty name", attrs: asset.Attributes{Name: "", Category: asset.CategoryTent}, errIs: asset.ErrEmptyAssetName},
		{name: "unknown category", attrs: asset.Attributes{Name: "Kite", Category: "TOYS"}, errIs: asset.ErrInvalidCategory},
		{name: "unknown status", attrs: asset.Attributes{Name: "Tent", Category: asset.CategoryTent, Status: "LOST"}, errIs: asset.ErrInvalidStatus},
		{name: "negative total", attrs: asset.Attributes{Name: "Tent", Category: asset.CategoryTent, TotalQuantity: -1}, errIs: asset.ErrNegativeTotal},
	}
	for _, tt := range tests {
		t.Run("error: "+tt.name, func(t *testing.T) {
			_, err := asset.NewAsset(tt.attrs, now)
			assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestBorrow(t *testing.T) {
	t.Run("error: quantity below one", func(t *testing.T) {
		_, err := table(t, 10).Borrow(borrow(0), 0, now)
		assert.True(t, errs.Is(err, asset.ErrInvalidQuantity))
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("error: asset not lendable", func(t *testing.T) {
		for _, status := range []asset.Status{asset.StatusBroken, asset.StatusMaintenance, asset.StatusLiquidation} {
			a := table(t, 10)
			attrs := a.Attributes()
			attrs.Status = status
			require.NoError(t, a.Update(attrs, 0, now))

			_, err := a.Borrow(borrow(1), 0, now)
			assert.Equal(t, errs.KindAssetUnavailable, errs.KindOf(err), status)
		}
	})

	t.Run("error: condition is checked before stock", func(t *testing.T) {
		a := table(t, 10)
		attrs := a.Attributes()
		attrs.Status = asset.StatusBroken
		require.NoError(t, a.Update(attrs, 8, now))

		_, err := a.Borrow(borrow(5), 8, now)
		assert.True(t, errs.Is(err, asset.ErrAssetNotLendable))
		assert.False(t, errs.Is(err, asset.ErrNotEnoughAvailable))
		assert.Equal(t, errs.KindAssetUnavailable, errs.KindOf(err))
	})

	t.Run("error: more than available", func(t *testing.T) {
		_, err := table(t, 10).Borrow(borrow(5), 6, now)
		assert.True(t, errs.Is(err, asset.ErrNotEnoughAvailable))
		assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))
	})

	t.Run("success: opens a ledger entry", func(t *testing.T) {
		a := table(t, 10)
		bookingID := uuid.New()
		req := borrow(3)
		req.BookingID = &bookingID
		req.Notes = ptr.Of("for the festival")

		log, err := a.Borrow(req, 7, now)
		require.NoError(t, err)
		assert.Equal(t, a.ID(), log.AssetID())
		assert.Equal(t, req.BorrowerID, log.BorrowerID())
		assert.Equal(t, &bookingID, log.BookingID())
		assert.Equal(t, 3, log.Quantity())
		assert.Equal(t, asset.LogStatusBorrowed, log.Status())
		assert.Nil(t, log.ReturnedAt())
		assert.Equal(t, now, log.BorrowedAt())
	})
}

// Table with 10 items: borrow 6, borrow 5 fails, return the 6 damaged, borrow 10.
func TestTableScenario(t *testing.T) {
	a := table(t, 10)
	var open []*asset.BorrowLog
	openQty := func() int {
		sum := 0
		for _, l := range open {
			if l.Status().IsOpen() {
				sum += l.Quantity()
			}
		}
		return sum
	}

	first, err := a.Borrow(borrow(6), openQty(), now)
	require.NoError(t, err)
	open = append(open, first)
	assert.Equal(t, 4, asset.Available(a.TotalQuantity(), openQty()))

	_, err = a.Borrow(borrow(5), openQty(), now)
	assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))
	assert.Len(t, open, 1)

	require.NoError(t, first.Return("damaged", nil, now.Add(time.Hour)))
	assert.Equal(t, asset.LogStatusDamaged, first.Status())
	assert.Equal(t, 6, first.Quantity())
	assert.Equal(t, 10, asset.Available(a.TotalQuantity(), openQty()))

	all, err := a.Borrow(borrow(10), openQty(), now.Add(2*time.Hour))
	require.NoError(t, err)
	open = append(open, all)
	assert.Equal(t, 0, asset.Available(a.TotalQuantity(), openQty()))
}

func TestReturn(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("success: returned in good shape", func(t *testing.T) {
		log, err := table(t, 2).Borrow(borrow(1), 0, now)
		require.NoError(t, err)
		require.NoError(t, log.Return("GOOD", ptr.Of("clean"), later))
		assert.Equal(t, asset.LogStatusReturned, log.Status())
		assert.Equal(t, later, *log.ReturnedAt())
		assert.Equal(t, "GOOD", *log.ConditionAfter())
		assert.Equal(t, "clean", *log.Notes())
	})

	t.Run("success: broken condition marks damage", func(t *testing.T) {
		log, err := table(t, 2).Borrow(borrow(1), 0, now)
		require.NoError(t, err)
		require.NoError(t, log.Return(" Broken ", nil, later))
		assert.Equal(t, asset.LogStatusDamaged, log.Status())
	})

	t.Run("error: closing twice", func(t *testing.T) {
		log, err := table(t, 2).Borrow(borrow(1), 0, now)
		require.NoError(t, err)
		require.NoError(t, log.Return("GOOD", nil, later))

		err = log.Return("GOOD", nil, later)
		assert.True(t, errs.Is(err, asset.ErrAlreadyReturned))
		assert.Equal(t, errs.KindInvalidStateTransition, errs.KindOf(err))
	})
}

func TestUpdate(t *testing.T) {
	a := table(t, 10)
	attrs := a.Attributes()
	attrs.TotalQuantity = 3

	err := a.Update(attrs, 4, now)
	assert.True(t, errs.Is(err, asset.ErrTotalBelowBorrowed))
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Equal(t, 10, a.TotalQuantity())

	require.NoError(t, a.Update(attrs, 3, now.Add(time.Minute)))
	assert.Equal(t, 3, a.TotalQuantity())
	assert.Equal(t, now.Add(time.Minute), a.UpdatedAt())
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, 4, asset.Available(10, 6))
	assert.Equal(t, 0, asset.Available(10, 12))
	assert.True(t, asset.IsDamaged("damaged"))
	assert.False(t, asset.IsDamaged("scratched"))
}
