//go:build unit

package workflow_test

import (
	"context"
	"testing"
	"time"

	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/ptr"
	"civic-hub/internal/usecase/shared"
	"civic-hub/internal/usecase/workflow"
	"civic-hub/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestRegistry(t *testing.T) {
	t.Run("success: default registry covers every request type", func(t *testing.T) {
		r := workflow.NewDefaultRegistry(clock.NewMockClock(now))

		for _, typ := range []changerequest.Type{
			changerequest.TypeHouseholdUpdate,
			changerequest.TypeAddPerson,
			changerequest.TypeRemovePerson,
			changerequest.TypeCulturalCenterBooking,
		} {
			assert.True(t, r.Has(typ), typ.String())
			h, err := r.Lookup(typ)
			require.NoError(t, err)
			assert.NotNil(t, h)
		}
	})

	t.Run("error: unregistered type", func(t *testing.T) {
		r := workflow.NewRegistry()

		_, err := r.Lookup(changerequest.TypeAddPerson)
		assert.ErrorIs(t, err, changerequest.ErrUnknownType)
		assert.Equal(t, errs.KindUnknownRequestType, errs.KindOf(err))
		assert.False(t, r.Has(changerequest.TypeAddPerson))
	})

	t.Run("success: a registered func replaces the default", func(t *testing.T) {
		r := workflow.NewDefaultRegistry(clock.NewMockClock(now))
		called := false
		r.Register(changerequest.TypeAddPerson, workflow.HandlerFunc(
			func(context.Context, shared.Tx, changerequest.Payload, *uuid.UUID) error {
				called = true
				return nil
			}))

		h, err := r.Lookup(changerequest.TypeAddPerson)
		require.NoError(t, err)
		require.NoError(t, h.Apply(context.Background(), nil, changerequest.AddPersonPayload{FullName: "A"}, nil))
		assert.True(t, called)
	})
}

func TestHandlers(t *testing.T) {
	ctx := context.Background()
	registry := workflow.NewDefaultRegistry(clock.NewMockClock(now))

	apply := func(store *memuow.Store, payload changerequest.Payload, householdID *uuid.UUID) error {
		h, err := registry.Lookup(payload.Type())
		if err != nil {
			return err
		}
		return store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return h.Apply(ctx, tx, payload, householdID)
		})
	}

	seed := func(t *testing.T) (*memuow.Store, *household.Household) {
		t.Helper()
		hh, err := household.NewHousehold("HH-01", "1 River street", now)
		require.NoError(t, err)
		store := memuow.New()
		store.SeedHousehold(hh)
		return store, hh
	}

	t.Run("success: household update changes the address", func(t *testing.T) {
		store, hh := seed(t)
		id := hh.ID()

		require.NoError(t, apply(store, changerequest.HouseholdUpdatePayload{Address: ptr.Of("9 Lake road")}, &id))

		got, ok := store.Household(id)
		require.True(t, ok)
		assert.Equal(t, "9 Lake road", got.Address())
		assert.Equal(t, "HH-01", got.Code())
	})

	t.Run("error: household types need a household", func(t *testing.T) {
		store, _ := seed(t)

		err := apply(store, changerequest.AddPersonPayload{FullName: "Pham Van F"}, nil)
		assert.ErrorIs(t, err, changerequest.ErrNoHousehold)
	})

	t.Run("success: add then remove a person", func(t *testing.T) {
		store, hh := seed(t)
		id := hh.ID()

		require.NoError(t, apply(store, changerequest.AddPersonPayload{FullName: "Pham Van F", IDNumber: ptr.Of("0790009")}, &id))
		persons := store.Persons(id)
		require.Len(t, persons, 1)

		require.NoError(t, apply(store, changerequest.RemovePersonPayload{PersonID: persons[0].ID()}, &id))
		assert.Empty(t, store.Persons(id))
	})

	t.Run("error: removing a person of another household", func(t *testing.T) {
		store, hh := seed(t)
		other, err := household.NewHousehold("HH-02", "2 River street", now)
		require.NoError(t, err)
		store.SeedHousehold(other)
		p, err := household.NewPerson(other.ID(), household.PersonAttributes{FullName: "Vo Thi G"}, now)
		require.NoError(t, err)
		store.SeedPerson(p)
		id := hh.ID()

		err = apply(store, changerequest.RemovePersonPayload{PersonID: p.ID()}, &id)
		assert.ErrorIs(t, err, household.ErrPersonNotFound)
		assert.Len(t, store.Persons(other.ID()), 1)
	})

	t.Run("error: cultural center booking for an unknown booking", func(t *testing.T) {
		store, _ := seed(t)

		err := apply(store, changerequest.CulturalCenterBookingPayload{BookingID: uuid.New()}, nil)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}
