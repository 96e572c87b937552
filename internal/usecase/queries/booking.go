package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/infra"
	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

const calendarDateLayout = "2006-01-02"

var ErrInvalidDate = errs.Mark(errs.New("date must be formatted as YYYY-MM-DD"), errs.ErrValidation)

type SlotState string

const (
	SlotFree         SlotState = "FREE"
	SlotBooked       SlotState = "BOOKED"
	SlotBookedOpaque SlotState = "BOOKED_OPAQUE"
)

type BookingView struct {
	ID                    uuid.UUID `json:"id"`
	ResourceID            uuid.UUID `json:"resourceId"`
	ResourceName          string    `json:"resourceName"`
	ResourceBuilding      string    `json:"resourceBuilding"`
	RequesterID           uuid.UUID `json:"requesterId"`
	Title                 string    `json:"title"`
	Description           *string   `json:"description"`
	Purpose               string    `json:"purpose"`
	StartTime             time.Time `json:"startTime"`
	EndTime               time.Time `json:"endTime"`
	Visibility            string    `json:"visibility"`
	Status                string    `json:"status"`
	CleaningCommitment    bool      `json:"cleaningCommitment"`
	HandoverBeforeChecked bool      `json:"handoverBeforeChecked"`
	HandoverAfterChecked  bool      `json:"handoverAfterChecked"`
	HandoverNotes         *string   `json:"handoverNotes"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// CalendarBooking is the slice of an approved booking the grid needs.
type CalendarBooking struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	Title       string
	Visibility  string
	StartTime   time.Time
	EndTime     time.Time
}

type CalendarSlot struct {
	Hour        int        `json:"hour"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	State       SlotState  `json:"state"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	RequesterID *uuid.UUID `json:"requesterId,omitempty"`
}

type CalendarRow struct {
	ResourceID   uuid.UUID      `json:"resourceId"`
	ResourceName string         `json:"resourceName"`
	Building     string         `json:"building"`
	Slots        []CalendarSlot `json:"slots"`
}

type CalendarView struct {
	Date      string        `json:"date"`
	TimeZone  string        `json:"timeZone"`
	Resources []CalendarRow `json:"resources"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Free       bool      `json:"free"`
}

type BookingFilter struct {
	Status     *string
	ResourceID *uuid.UUID
	Mine       bool
}

type CalendarRequest struct {
	Date        string
	ResourceIDs []uuid.UUID
	Building    *string
	ShowPrivate bool
}

// BookingListParams is the store-level filter. Non-admin callers only see
// public bookings and their own.
type BookingListParams struct {
	Status         *string
	ResourceID     *uuid.UUID
	RequesterID    *uuid.UUID
	IncludePrivate bool
	ViewerID       uuid.UUID
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, params BookingListParams) ([]*BookingView, error)
	ListApprovedInRange(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time) ([]*CalendarBooking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	Calendar(ctx context.Context, actor user.Actor, req CalendarRequest) (*CalendarView, error)
	IsResourceFree(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type bookingQueriesImpl struct {
	store     BookingReadStore
	resources ResourceReadStore
	hours     booking.BusinessHours
}

func NewBookingQueries(store BookingReadStore, resources ResourceReadStore, hours booking.BusinessHours) BookingQueries {
	return &bookingQueriesImpl{store: store, resources: resources, hours: hours}
}

// GetByID hides private bookings of other users behind NotFound.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if v.Visibility == booking.VisibilityPrivate.String() && !actor.CanManage(v.RequesterID) {
		return nil, booking.ErrBookingNotFound
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	if filter.Status != nil {
		st, err := approval.ParseStatus(*filter.Status)
		if err != nil {
			return nil, nil, err
		}
		s := st.String()
		filter.Status = &s
	}

	params := BookingListParams{
		Status:         filter.Status,
		ResourceID:     filter.ResourceID,
		IncludePrivate: actor.IsAdmin(),
		ViewerID:       actor.ID,
		Limit:          int32(limit + 1),
	}
	if filter.Mine {
		id := actor.ID
		params.RequesterID = &id
	}
	if after != nil {
		params.AfterCreatedAt = &after.CreatedAt
		params.AfterID = &after.ID
	}

	rows, err := q.store.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}

// Calendar renders one row per resource with an hourly slot for each hour of
// the business day. Slots are recomputed from approved bookings on every call.
func (q *bookingQueriesImpl) Calendar(ctx context.Context, actor user.Actor, req CalendarRequest) (*CalendarView, error) {
	loc := q.hours.Location
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(calendarDateLayout, req.Date, loc)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidDate, req.Date)
	}

	resources, err := q.resources.List(ctx, ResourceFilter{Building: req.Building, IDs: req.ResourceIDs})
	if err != nil {
		return nil, err
	}
	view := &CalendarView{
		Date:      day.Format(calendarDateLayout),
		TimeZone:  loc.String(),
		Resources: make([]CalendarRow, 0, len(resources)),
	}
	if len(resources) == 0 {
		return view, nil
	}

	slots := q.hours.HourSlots(day)
	ids := make([]uuid.UUID, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	approved, err := q.store.ListApprovedInRange(ctx, ids, slots[0].Start(), slots[len(slots)-1].End())
	if err != nil {
		return nil, err
	}
	byResource := make(map[uuid.UUID][]*CalendarBooking, len(resources))
	for _, b := range approved {
		byResource[b.ResourceID] = append(byResource[b.ResourceID], b)
	}

	canSeePrivate := func(b *CalendarBooking) bool {
		return (actor.IsAdmin() && req.ShowPrivate) || actor.Owns(b.RequesterID)
	}
	for _, r := range resources {
		view.Resources = append(view.Resources, CalendarRow{
			ResourceID:   r.ID,
			ResourceName: r.Name,
			Building:     r.Building,
			Slots:        buildSlots(slots, byResource[r.ID], canSeePrivate),
		})
	}
	return view, nil
}

func buildSlots(slots []booking.Window, approved []*CalendarBooking, canSeePrivate func(*CalendarBooking) bool) []CalendarSlot {
	out := make([]CalendarSlot, len(slots))
	for i, slot := range slots {
		out[i] = CalendarSlot{
			Hour:  slot.Start().Hour(),
			Start: slot.Start(),
			End:   slot.End(),
			State: SlotFree,
		}
		for _, b := range approved {
			if !(b.StartTime.Before(slot.End()) && slot.Start().Before(b.EndTime)) {
				continue
			}
			if b.Visibility == booking.VisibilityPrivate.String() && !canSeePrivate(b) {
				out[i].State = SlotBookedOpaque
				break
			}
			id, title, requester := b.ID, b.Title, b.RequesterID
			out[i].State = SlotBooked
			out[i].BookingID = &id
			out[i].Title = &title
			out[i].RequesterID = &requester
			break
		}
	}
	return out
}

func (q *bookingQueriesImpl) IsResourceFree(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	window, err := booking.NewWindow(start, end)
	if err != nil {
		return nil, err
	}
	if _, err := q.resources.FindByID(ctx, resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, err
	}
	approved, err := q.store.ListApprovedInRange(ctx, []uuid.UUID{resourceID}, window.Start(), window.End())
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		ResourceID: resourceID,
		Start:      window.Start(),
		End:        window.End(),
		Free:       len(approved) == 0,
	}, nil
}
