//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
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

type calendarFixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	services *booking.Services
	queries  queries.BookingQueries
	hall     *resource.Resource
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	hours := booking.NewBusinessHours(time.UTC, true)
	hall, err := resource.NewResource(resource.Attributes{Name: "Main hall", Building: resource.BuildingA, Capacity: 50}, clk.Now())
	require.NoError(t, err)

	store := memuow.New()
	store.SeedResource(hall)
	return &calendarFixture{
		store:    store,
		clock:    clk,
		services: &booking.Services{Clock: clk, Hours: hours},
		queries:  queries.NewBookingQueries(store.BookingReadStore(), store.ResourceReadStore(), hours),
		hall:     hall,
	}
}

// seed stores a booking directly; approved ones skip the workflow.
func (f *calendarFixture) seed(t *testing.T, requester user.Actor, title string, start, end time.Time, visibility booking.Visibility, approve bool) *booking.Booking {
	t.Helper()
	window, err := booking.NewWindow(start, end)
	require.NoError(t, err)
	b, err := booking.NewBooking(f.services, f.hall.ID(), requester.ID, window, booking.Details{
		Title:      title,
		Purpose:    "meeting",
		Visibility: visibility,
	})
	require.NoError(t, err)
	if approve {
		require.NoError(t, b.Approve(nil, f.clock.Now()))
	}
	f.store.SeedBooking(b)
	f.clock.Add(time.Minute)
	return b
}

func (f *calendarFixture) slots(t *testing.T, actor user.Actor, showPrivate bool) []queries.CalendarSlot {
	t.Helper()
	view, err := f.queries.Calendar(context.Background(), actor, queries.CalendarRequest{Date: "2024-06-01", ShowPrivate: showPrivate})
	require.NoError(t, err)
	require.Len(t, view.Resources, 1)
	return view.Resources[0].Slots
}

func TestBookingQueries_Calendar(t *testing.T) {
	t.Run("success: fourteen hourly slots from 08:00", func(t *testing.T) {
		f := newCalendarFixture(t)

		slots := f.slots(t, neighbor, false)
		require.Len(t, slots, 14)
		assert.Equal(t, 8, slots[0].Hour)
		assert.Equal(t, 21, slots[13].Hour)
		for _, s := range slots {
			assert.Equal(t, queries.SlotFree, s.State)
		}
	})

	t.Run("success: booking covers every slot it overlaps", func(t *testing.T) {
		f := newCalendarFixture(t)
		b := f.seed(t, resident, "Choir", at(9), at(10).Add(30*time.Minute), booking.VisibilityPublic, true)

		slots := f.slots(t, neighbor, false)
		assert.Equal(t, queries.SlotFree, slots[0].State)
		assert.Equal(t, queries.SlotBooked, slots[1].State)
		assert.Equal(t, queries.SlotBooked, slots[2].State)
		assert.Equal(t, queries.SlotFree, slots[3].State)
		require.NotNil(t, slots[1].BookingID)
		assert.Equal(t, b.ID(), *slots[1].BookingID)
		assert.Equal(t, "Choir", *slots[1].Title)
	})

	t.Run("success: pending bookings are invisible", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.seed(t, resident, "Choir", at(9), at(11), booking.VisibilityPublic, false)

		for _, s := range f.slots(t, admin, true) {
			assert.Equal(t, queries.SlotFree, s.State)
		}
	})

	tests := []struct {
		name        string
		actor       user.Actor
		showPrivate bool
		want        queries.SlotState
	}{
		{name: "success: owner sees details", actor: resident, want: queries.SlotBooked},
		{name: "success: other residents see an opaque slot", actor: neighbor, want: queries.SlotBookedOpaque},
		{name: "success: admin sees opaque slot by default", actor: admin, want: queries.SlotBookedOpaque},
		{name: "success: admin asks for private details", actor: admin, showPrivate: true, want: queries.SlotBooked},
		{name: "success: residents cannot unlock private details", actor: neighbor, showPrivate: true, want: queries.SlotBookedOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalendarFixture(t)
			f.seed(t, resident, "Family party", at(14), at(16), booking.VisibilityPrivate, true)

			slot := f.slots(t, tt.actor, tt.showPrivate)[14-8]
			assert.Equal(t, tt.want, slot.State)
			if tt.want == queries.SlotBookedOpaque {
				assert.Nil(t, slot.Title)
				assert.Nil(t, slot.BookingID)
				assert.Nil(t, slot.RequesterID)
			}
		})
	}

	t.Run("error: malformed date", func(t *testing.T) {
		f := newCalendarFixture(t)

		_, err := f.queries.Calendar(context.Background(), neighbor, queries.CalendarRequest{Date: "01/06/2024"})
		assert.ErrorIs(t, err, queries.ErrInvalidDate)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestBookingQueries_IsResourceFree(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture(t)
	f.seed(t, resident, "Choir", at(9), at(11), booking.VisibilityPublic, true)
	f.seed(t, resident, "Pending", at(13), at(14), booking.VisibilityPublic, false)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "success: overlapping window", start: at(10), end: at(12), want: false},
		{name: "success: adjacent window", start: at(11), end: at(12), want: true},
		{name: "success: pending bookings do not block", start: at(13), end: at(14), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := f.queries.IsResourceFree(ctx, f.hall.ID(), tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Free)
		})
	}

	t.Run("error: unknown resource", func(t *testing.T) {
		_, err := f.queries.IsResourceFree(ctx, uuid.New(), at(9), at(10))
		assert.ErrorIs(t, err, resource.ErrResourceNotFound)
	})

	t.Run("error: inverted window", func(t *testing.T) {
		_, err := f.queries.IsResourceFree(ctx, f.hall.ID(), at(12), at(10))
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pages newest first", func(t *testing.T) {
		f := newCalendarFixture(t)
		var ids []uuid.UUID
		for h := 9; h < 14; h++ {
			ids = append(ids, f.seed(t, resident, "Slot", at(h), at(h+1), booking.VisibilityPublic, false).ID())
		}

		var seen []uuid.UUID
		var cursor *queries.Cursor
		for page := 0; page < 3; page++ {
			rows, next, err := f.queries.List(ctx, resident, queries.BookingFilter{}, cursor, 2)
			require.NoError(t, err)
			for _, r := range rows {
				seen = append(seen, r.ID)
			}
			cursor = next
			if next == nil {
				break
			}
		}
		assert.Nil(t, cursor)
		assert.Equal(t, []uuid.UUID{ids[4], ids[3], ids[2], ids[1], ids[0]}, seen)
	})

	t.Run("success: private bookings of others are hidden", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.seed(t, resident, "Public", at(9), at(10), booking.VisibilityPublic, false)
		private := f.seed(t, resident, "Private", at(10), at(11), booking.VisibilityPrivate, false)

		rows, _, err := f.queries.List(ctx, neighbor, queries.BookingFilter{}, nil, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Public", rows[0].Title)

		rows, _, err = f.queries.List(ctx, admin, queries.BookingFilter{}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		_, err = f.queries.GetByID(ctx, neighbor, private.ID())
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		v, err := f.queries.GetByID(ctx, resident, private.ID())
		require.NoError(t, err)
		assert.Equal(t, "Private", v.Title)
	})

	t.Run("success: status filter", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.seed(t, resident, "Approved", at(9), at(10), booking.VisibilityPublic, true)
		f.seed(t, resident, "Pending", at(10), at(11), booking.VisibilityPublic, false)

		status := "approved"
		rows, _, err := f.queries.List(ctx, admin, queries.BookingFilter{Status: &status}, nil, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Approved", rows[0].Title)
	})

	t.Run("error: bad cursor", func(t *testing.T) {
		f := newCalendarFixture(t)

		_, _, err := f.queries.List(ctx, admin, queries.BookingFilter{}, &queries.Cursor{After: "not-a-cursor"}, 0)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("error: bad status", func(t *testing.T) {
		f := newCalendarFixture(t)
		status := "SOMETIMES"

		_, _, err := f.queries.List(ctx, admin, queries.BookingFilter{Status: &status}, nil, 0)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestDecodeAfterCursor(t *testing.T) {
	created := time.Date(2024, 6, 1, 9, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(created, id))
	require.NoError(t, err)
	assert.True(t, created.Equal(gotAt))
	assert.Equal(t, id, gotID)

	for _, bad := range []string{"%%%", "djI6MTox", "djE6eDo0"} {
		_, _, err := queries.DecodeAfterCursor(bad)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor, bad)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
