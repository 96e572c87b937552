//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/domain/user"
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

var (
	admin    = user.NewActor(uuid.New(), user.RoleAdmin)
	resident = user.NewActor(uuid.New(), user.RoleResident)
	neighbor = user.NewActor(uuid.New(), user.RoleResident)
)

func at(hour int) time.Time {
	return time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC)
}

type bookingFixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	hours    booking.BusinessHours
	commands commands.BookingCommands
	queries  queries.BookingQueries
	hall     *resource.Resource
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	hours := booking.NewBusinessHours(time.UTC, true)

	hall, err := resource.NewResource(resource.Attributes{
		Name:     "Main hall",
		Building: resource.BuildingA,
		Capacity: 50,
	}, clk.Now())
	require.NoError(t, err)

	store := memuow.New()
	store.SeedResource(hall)

	return &bookingFixture{
		store:    store,
		clock:    clk,
		hours:    hours,
		commands: commands.NewBookingCommands(store, &booking.Services{Clock: clk, Hours: hours}),
		queries:  queries.NewBookingQueries(store.BookingReadStore(), store.ResourceReadStore(), hours),
		hall:     hall,
	}
}

func (f *bookingFixture) submit(t *testing.T, actor user.Actor, title string, start, end time.Time, visibility string) uuid.UUID {
	t.Helper()
	res, err := f.commands.Submit(context.Background(), actor, commands.SubmitBookingRequest{
		ResourceID: f.hall.ID(),
		Title:      title,
		Purpose:    "community meeting",
		Visibility: visibility,
		Start:      start,
		End:        end,
	})
	require.NoError(t, err)
	return res.BookingID
}

func (f *bookingFixture) status(t *testing.T, id uuid.UUID) approval.Status {
	t.Helper()
	b, ok := f.store.Booking(id)
	require.True(t, ok)
	return b.Status()
}

func TestBookingCommands_ApprovalOverlap(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	a := f.submit(t, resident, "A", at(9), at(11), "")
	b := f.submit(t, neighbor, "B", at(10), at(12), "")
	c := f.submit(t, neighbor, "C", at(11), at(12), "")

	require.NoError(t, f.commands.Decide(ctx, admin, a, approval.DecisionApprove))
	assert.Equal(t, approval.StatusApproved, f.status(t, a))

	err := f.commands.Decide(ctx, admin, b, approval.DecisionApprove)
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrBookingConflict)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Equal(t, approval.StatusPending, f.status(t, b), "a failed approval must leave the booking pending")

	require.NoError(t, f.commands.Decide(ctx, admin, c, approval.DecisionApprove), "adjacent windows do not overlap")
	assert.Equal(t, approval.StatusApproved, f.status(t, c))

	// B can still be rejected; pending siblings are never touched implicitly.
	require.NoError(t, f.commands.Decide(ctx, admin, b, approval.DecisionReject))
	assert.Equal(t, approval.StatusRejected, f.status(t, b))

	assert.Len(t, f.store.Notifications(resident.ID), 1)
	assert.Len(t, f.store.Notifications(neighbor.ID), 2)
}

func TestBookingCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults to public and pending", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "Choir", at(18), at(20), "")

		b, ok := f.store.Booking(id)
		require.True(t, ok)
		assert.Equal(t, booking.VisibilityPublic, b.Visibility())
		assert.Equal(t, approval.StatusPending, b.Status())
		assert.Equal(t, resident.ID, b.RequesterID())
	})

	t.Run("success: overlapping pending submissions are accepted", func(t *testing.T) {
		f := newBookingFixture(t)
		f.submit(t, resident, "First", at(9), at(11), "")
		f.submit(t, neighbor, "Second", at(9), at(11), "")
	})

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		resource func(f *bookingFixture) uuid.UUID
		wantKind errs.Kind
	}{
		{
			name:     "error: end before start",
			start:    at(11),
			end:      at(9),
			resource: func(f *bookingFixture) uuid.UUID { return f.hall.ID() },
			wantKind: errs.KindValidation,
		},
		{
			name:     "error: outside business hours",
			start:    at(6),
			end:      at(9),
			resource: func(f *bookingFixture) uuid.UUID { return f.hall.ID() },
			wantKind: errs.KindValidation,
		},
		{
			name:     "error: start in the past",
			start:    time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
			resource: func(f *bookingFixture) uuid.UUID { return f.hall.ID() },
			wantKind: errs.KindValidation,
		},
		{
			name:     "error: unknown resource",
			start:    at(9),
			end:      at(10),
			resource: func(*bookingFixture) uuid.UUID { return uuid.New() },
			wantKind: errs.KindNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			_, err := f.commands.Submit(ctx, resident, commands.SubmitBookingRequest{
				ResourceID: tt.resource(f),
				Title:      "Yoga",
				Purpose:    "exercise",
				Start:      tt.start,
				End:        tt.end,
			})
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
			assert.Zero(t, f.store.Commits())
		})
	}
}

func TestBookingCommands_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("error: residents cannot decide", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.Decide(ctx, resident, id, approval.DecisionApprove)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
		assert.Equal(t, approval.StatusPending, f.status(t, id))
	})

	t.Run("error: decided bookings are terminal", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")
		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionReject))

		err := f.commands.Decide(ctx, admin, id, approval.DecisionApprove)
		assert.Equal(t, errs.KindInvalidStateTransition, errs.KindOf(err))
		assert.Equal(t, approval.StatusRejected, f.status(t, id))
	})

	t.Run("error: unknown decision", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.Decide(ctx, admin, id, approval.Decision("MAYBE"))
		assert.ErrorIs(t, err, approval.ErrInvalidDecision)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.commands.Decide(ctx, admin, uuid.New(), approval.DecisionApprove)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestBookingCommands_DecisionDrivesCalendar(t *testing.T) {
	ctx := context.Background()

	slotState := func(t *testing.T, f *bookingFixture, actor user.Actor, hour int) queries.SlotState {
		t.Helper()
		view, err := f.queries.Calendar(ctx, actor, queries.CalendarRequest{Date: "2024-06-01"})
		require.NoError(t, err)
		require.Len(t, view.Resources, 1)
		for _, s := range view.Resources[0].Slots {
			if s.Hour == hour {
				return s.State
			}
		}
		t.Fatalf("no slot for hour %d", hour)
		return ""
	}

	t.Run("success: rejected booking leaves the slot free", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")
		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionReject))

		assert.Equal(t, queries.SlotFree, slotState(t, f, neighbor, 9))
	})

	t.Run("success: approved booking occupies the slot", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")
		assert.Equal(t, queries.SlotFree, slotState(t, f, neighbor, 9), "pending bookings do not occupy slots")

		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionApprove))
		assert.Equal(t, queries.SlotBooked, slotState(t, f, neighbor, 9))
		assert.Equal(t, queries.SlotBooked, slotState(t, f, neighbor, 10))
		assert.Equal(t, queries.SlotFree, slotState(t, f, neighbor, 11))
	})
}

func TestBookingCommands_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner moves a pending booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.Edit(ctx, resident, id, commands.EditBookingRequest{
			Title: ptr.Of("A, rescheduled"),
			Start: ptr.Of(at(13)),
			End:   ptr.Of(at(15)),
		})
		require.NoError(t, err)

		b, _ := f.store.Booking(id)
		assert.Equal(t, "A, rescheduled", b.Title())
		assert.True(t, b.Window().Start().Equal(at(13)))
	})

	t.Run("error: another resident cannot edit", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.Edit(ctx, neighbor, id, commands.EditBookingRequest{Title: ptr.Of("mine now")})
		assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
	})

	t.Run("error: approved bookings are frozen", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")
		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionApprove))

		err := f.commands.Edit(ctx, resident, id, commands.EditBookingRequest{Title: ptr.Of("late change")})
		assert.ErrorIs(t, err, booking.ErrNotEditable)
	})
}

func TestBookingCommands_Handover(t *testing.T) {
	ctx := context.Background()

	t.Run("success: admin records the checklist", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")
		require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionApprove))

		err := f.commands.RecordHandover(ctx, admin, id, commands.HandoverRequest{BeforeChecked: true, Notes: ptr.Of("keys handed over")})
		require.NoError(t, err)

		b, _ := f.store.Booking(id)
		assert.True(t, b.Handover().BeforeChecked)
		assert.False(t, b.Handover().AfterChecked)
	})

	t.Run("error: pending booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.RecordHandover(ctx, admin, id, commands.HandoverRequest{BeforeChecked: true})
		assert.ErrorIs(t, err, booking.ErrHandoverNotAllowed)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner withdraws", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		require.NoError(t, f.commands.Delete(ctx, resident, id))
		_, ok := f.store.Booking(id)
		assert.False(t, ok)
	})

	t.Run("error: not the owner", func(t *testing.T) {
		f := newBookingFixture(t)
		id := f.submit(t, resident, "A", at(9), at(11), "")

		err := f.commands.Delete(ctx, neighbor, id)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
		_, ok := f.store.Booking(id)
		assert.True(t, ok)
	})
}
