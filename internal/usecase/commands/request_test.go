//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/ptr"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/shared"
	"civic-hub/internal/usecase/workflow"
	"civic-hub/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestFixture struct {
	store      *memuow.Store
	clock      *clock.MockClock
	commands   commands.RequestCommands
	households commands.HouseholdCommands
	home       uuid.UUID
}

func newRequestFixture(t *testing.T, registry func(clock.Clock) *workflow.Registry) *requestFixture {
	t.Helper()
	ctx := context.Background()
	store := memuow.New()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	f := &requestFixture{
		store:      store,
		clock:      clk,
		commands:   commands.NewRequestCommands(store, clk, registry(clk)),
		households: commands.NewHouseholdCommands(store, clk),
	}

	res, err := f.households.Create(ctx, admin, commands.CreateHouseholdRequest{Code: "HH-001", Address: "12 Riverside Road"})
	require.NoError(t, err)
	require.NoError(t, f.households.AddMember(ctx, admin, res.HouseholdID, resident.ID))
	f.home = res.HouseholdID
	return f
}

func (f *requestFixture) submit(t *testing.T, reqType changerequest.Type, payload any) uuid.UUID {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	res, err := f.commands.Submit(context.Background(), resident, commands.SubmitRequestRequest{
		Type:    reqType.String(),
		Payload: raw,
	})
	require.NoError(t, err)
	return res.RequestID
}

func (f *requestFixture) status(t *testing.T, id uuid.UUID) approval.Status {
	t.Helper()
	r, ok := f.store.Request(id)
	require.True(t, ok)
	return r.Status()
}

func personNames(persons []*household.Person) []string {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = p.FullName()
	}
	return names
}

func TestRequestCommands_AddPersonRecoversAfterHandlerFailure(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture(t, workflow.NewDefaultRegistry)

	stale, err := household.NewPerson(f.home, household.PersonAttributes{
		FullName: "Duplicate record",
		IDNumber: ptr.Of("079-2024-0001"),
	}, f.clock.Now())
	require.NoError(t, err)
	f.store.SeedPerson(stale)

	add := f.submit(t, changerequest.TypeAddPerson, changerequest.AddPersonPayload{
		FullName:    "Nguyen Lan",
		DateOfBirth: ptr.Of("2019-03-14"),
		IDNumber:    ptr.Of("079-2024-0001"),
	})

	err = f.commands.Decide(ctx, admin, add, approval.DecisionApprove)
	require.Error(t, err)
	assert.Equal(t, errs.KindHandlerFailed, errs.KindOf(err))
	assert.ErrorIs(t, err, household.ErrDuplicateIDNumber)
	assert.Equal(t, approval.StatusPending, f.status(t, add))
	assert.Equal(t, []string{"Duplicate record"}, personNames(f.store.Persons(f.home)))
	assert.Empty(t, f.store.Notifications(resident.ID))

	remove := f.submit(t, changerequest.TypeRemovePerson, changerequest.RemovePersonPayload{PersonID: stale.ID()})
	require.NoError(t, f.commands.Decide(ctx, admin, remove, approval.DecisionApprove))

	require.NoError(t, f.commands.Decide(ctx, admin, add, approval.DecisionApprove))
	assert.Equal(t, approval.StatusApproved, f.status(t, add))
	assert.Equal(t, []string{"Nguyen Lan"}, personNames(f.store.Persons(f.home)))

	err = f.commands.Decide(ctx, admin, add, approval.DecisionApprove)
	assert.Equal(t, errs.KindInvalidStateTransition, errs.KindOf(err))
	assert.Len(t, f.store.Persons(f.home), 1, "the handler runs exactly once")
	assert.Len(t, f.store.Notifications(resident.ID), 2)
}

func TestRequestCommands_HandlerFailureRollsBackPartialWrites(t *testing.T) {
	ctx := context.Background()
	errRegistryOffline := errs.New("civil registry offline")

	f := newRequestFixture(t, func(clk clock.Clock) *workflow.Registry {
		r := workflow.NewRegistry()
		r.Register(changerequest.TypeAddPerson, workflow.HandlerFunc(
			func(ctx context.Context, tx shared.Tx, payload changerequest.Payload, hh *uuid.UUID) error {
				p, err := household.NewPerson(*hh, household.PersonAttributes{FullName: payload.(changerequest.AddPersonPayload).FullName}, clk.Now())
				if err != nil {
					return err
				}
				if err := tx.Households().CreatePerson(ctx, tx.DB(), p); err != nil {
					return err
				}
				return errRegistryOffline
			}))
		return r
	})

	id := f.submit(t, changerequest.TypeAddPerson, changerequest.AddPersonPayload{FullName: "Tran Minh"})

	err := f.commands.Decide(ctx, admin, id, approval.DecisionApprove)
	assert.ErrorIs(t, err, errRegistryOffline)
	assert.Equal(t, errs.KindHandlerFailed, errs.KindOf(err))
	assert.Empty(t, f.store.Persons(f.home))
	assert.Equal(t, approval.StatusPending, f.status(t, id))
}

func TestRequestCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: captures the requester's household", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		id := f.submit(t, changerequest.TypeHouseholdUpdate, changerequest.HouseholdUpdatePayload{Address: ptr.Of("14 Riverside Road")})

		r, _ := f.store.Request(id)
		require.NotNil(t, r.HouseholdID())
		assert.Equal(t, f.home, *r.HouseholdID())
		assert.Equal(t, approval.StatusPending, r.Status())
	})

	t.Run("success: requester without household", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		res, err := f.commands.Submit(ctx, neighbor, commands.SubmitRequestRequest{
			Type:    "ADD_PERSON",
			Payload: json.RawMessage(`{"fullName":"Le Hoa"}`),
		})
		require.NoError(t, err)

		r, _ := f.store.Request(res.RequestID)
		assert.Nil(t, r.HouseholdID())

		err = f.commands.Decide(ctx, admin, res.RequestID, approval.DecisionApprove)
		assert.ErrorIs(t, err, changerequest.ErrNoHousehold)
		assert.Equal(t, errs.KindHandlerFailed, errs.KindOf(err))
	})

	tests := []struct {
		name     string
		reqType  string
		payload  string
		wantKind errs.Kind
	}{
		{name: "error: unknown type", reqType: "ADOPT_PET", payload: `{}`, wantKind: errs.KindUnknownRequestType},
		{name: "error: payload is not an object", reqType: "ADD_PERSON", payload: `["Le Hoa"]`, wantKind: errs.KindValidation},
		{name: "error: payload is not json", reqType: "ADD_PERSON", payload: `fullName=Le Hoa`, wantKind: errs.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture(t, workflow.NewDefaultRegistry)
			commits := f.store.Commits()

			_, err := f.commands.Submit(ctx, resident, commands.SubmitRequestRequest{Type: tt.reqType, Payload: json.RawMessage(tt.payload)})
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
			assert.Equal(t, commits, f.store.Commits())
		})
	}

	t.Run("error: type without a registered handler", func(t *testing.T) {
		f := newRequestFixture(t, func(clock.Clock) *workflow.Registry { return workflow.NewRegistry() })

		_, err := f.commands.Submit(ctx, resident, commands.SubmitRequestRequest{Type: "ADD_PERSON", Payload: json.RawMessage(`{"fullName":"Le Hoa"}`)})
		assert.ErrorIs(t, err, changerequest.ErrUnknownType)
	})
}

func TestRequestCommands_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("success: household update", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		id := f.submit(t, changerequest.TypeHouseholdUpdate, changerequest.HouseholdUpdatePayload{
			Address: ptr.Of("14 Riverside Road"),
			Code:    ptr.Of("HH-014"),
		})

		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionApprove))
		hh, ok := f.store.Household(f.home)
		require.True(t, ok)
		assert.Equal(t, "14 Riverside Road", hh.Address())
		assert.Equal(t, "HH-014", hh.Code())
	})

	t.Run("success: rejection skips the handler", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		id := f.submit(t, changerequest.TypeAddPerson, changerequest.AddPersonPayload{FullName: "Pham Long"})

		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionReject))
		assert.Equal(t, approval.StatusRejected, f.status(t, id))
		assert.Empty(t, f.store.Persons(f.home))

		inbox := f.store.Notifications(resident.ID)
		require.Len(t, inbox, 1)
		assert.Contains(t, inbox[0].Message(), "rejected")
	})

	t.Run("success: cultural center booking approves the booking", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		hall, err := resource.NewResource(resource.Attributes{Name: "Studio", Building: resource.BuildingB, Capacity: 20}, f.clock.Now())
		require.NoError(t, err)
		f.store.SeedResource(hall)
		bookings := commands.NewBookingCommands(f.store, &booking.Services{Clock: f.clock, Hours: booking.NewBusinessHours(time.UTC, true)})
		created, err := bookings.Submit(ctx, resident, commands.SubmitBookingRequest{
			ResourceID: hall.ID(),
			Title:      "Dance rehearsal",
			Purpose:    "rehearsal",
			Start:      at(18),
			End:        at(20),
		})
		require.NoError(t, err)

		id := f.submit(t, changerequest.TypeCulturalCenterBooking, changerequest.CulturalCenterBookingPayload{BookingID: created.BookingID})
		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionApprove))

		b, _ := f.store.Booking(created.BookingID)
		assert.Equal(t, approval.StatusApproved, b.Status())
		assert.Equal(t, approval.StatusApproved, f.status(t, id))
	})

	t.Run("error: residents cannot decide", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		id := f.submit(t, changerequest.TypeAddPerson, changerequest.AddPersonPayload{FullName: "Pham Long"})

		err := f.commands.Decide(ctx, resident, id, approval.DecisionApprove)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
		assert.Equal(t, approval.StatusPending, f.status(t, id))
	})

	t.Run("error: remove a person of another household", func(t *testing.T) {
		f := newRequestFixture(t, workflow.NewDefaultRegistry)
		other, err := f.households.Create(ctx, admin, commands.CreateHouseholdRequest{Code: "HH-002", Address: "3 Hill Street"})
		require.NoError(t, err)
		stranger, err := household.NewPerson(other.HouseholdID, household.PersonAttributes{FullName: "Vo Binh"}, f.clock.Now())
		require.NoError(t, err)
		f.store.SeedPerson(stranger)

		id := f.submit(t, changerequest.TypeRemovePerson, changerequest.RemovePersonPayload{PersonID: stranger.ID()})
		err = f.commands.Decide(ctx, admin, id, approval.DecisionApprove)
		assert.ErrorIs(t, err, household.ErrPersonNotFound)
		assert.Len(t, f.store.Persons(other.HouseholdID), 1)
	})
}
