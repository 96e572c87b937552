package response

import (
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type HandoverResponse struct {
	BeforeChecked bool    `json:"beforeChecked"`
	AfterChecked  bool    `json:"afterChecked"`
	Notes         *string `json:"notes"`
}

type BookingResponse struct {
	ID                 uuid.UUID        `json:"id"`
	ResourceID         uuid.UUID        `json:"resourceId"`
	ResourceName       string           `json:"resourceName"`
	ResourceBuilding   string           `json:"resourceBuilding"`
	RequesterID        uuid.UUID        `json:"requesterId"`
	Title              string           `json:"title"`
	Description        *string          `json:"description"`
	Purpose            string           `json:"purpose"`
	StartTime          time.Time        `json:"startTime"`
	EndTime            time.Time        `json:"endTime"`
	Visibility         string           `json:"visibility"`
	Status             string           `json:"status"`
	CleaningCommitment bool             `json:"cleaningCommitment"`
	Handover           HandoverResponse `json:"handover" copier:"-"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	resp := mapTo[BookingResponse](v)
	resp.Handover = HandoverResponse{
		BeforeChecked: v.HandoverBeforeChecked,
		AfterChecked:  v.HandoverAfterChecked,
		Notes:         v.HandoverNotes,
	}
	return resp
}

func FromBookingList(vs []*queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}

func FromBookingPage(vs []*queries.BookingView, next *queries.Cursor) PageResponse[BookingResponse] {
	return PageResponse[BookingResponse]{Items: FromBookingList(vs), NextCursor: nextCursor(next)}
}

type CalendarSlotResponse struct {
	Hour        int        `json:"hour"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	State       string     `json:"state"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	RequesterID *uuid.UUID `json:"requesterId,omitempty"`
}

type CalendarRowResponse struct {
	ResourceID   uuid.UUID              `json:"resourceId"`
	ResourceName string                 `json:"resourceName"`
	Building     string                 `json:"building"`
	Slots        []CalendarSlotResponse `json:"slots"`
}

type CalendarResponse struct {
	Date      string                `json:"date"`
	TimeZone  string                `json:"timeZone"`
	Resources []CalendarRowResponse `json:"resources"`
}

func FromCalendarView(v *queries.CalendarView) CalendarResponse {
	resp := CalendarResponse{
		Date:      v.Date,
		TimeZone:  v.TimeZone,
		Resources: make([]CalendarRowResponse, 0, len(v.Resources)),
	}
	for _, row := range v.Resources {
		r := CalendarRowResponse{
			ResourceID:   row.ResourceID,
			ResourceName: row.ResourceName,
			Building:     row.Building,
			Slots:        make([]CalendarSlotResponse, 0, len(row.Slots)),
		}
		for _, s := range row.Slots {
			r.Slots = append(r.Slots, CalendarSlotResponse{
				Hour:        s.Hour,
				Start:       s.Start,
				End:         s.End,
				State:       string(s.State),
				BookingID:   s.BookingID,
				Title:       s.Title,
				RequesterID: s.RequesterID,
			})
		}
		resp.Resources = append(resp.Resources, r)
	}
	return resp
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Free       bool      `json:"free"`
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	return mapTo[AvailabilityResponse](v)
}

func nextCursor(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	after := c.After
	return &after
}
