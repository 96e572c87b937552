//go:build unit || e2e

package builder

import (
	"time"

	reqdto "civic-hub/internal/handler/dto/request"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	RequesterID  uuid.UUID
	Title        string
	Purpose      string
	Visibility   string
	Status       string
	Start        time.Time
	End          time.Time
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(24 * time.Hour).Add(9 * time.Hour)
	return &BookingBuilder{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Main hall",
		RequesterID:  uuid.New(),
		Title:        "Choir rehearsal",
		Purpose:      "community",
		Visibility:   "PUBLIC",
		Status:       "PENDING",
		Start:        start,
		End:          start.Add(2 * time.Hour),
		CreatedAt:    time.Now().UTC(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSubmitDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		ResourceID: b.ResourceID,
		Title:      b.Title,
		Purpose:    b.Purpose,
		Visibility: b.Visibility,
		StartTime:  b.Start,
		EndTime:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		ResourceID:       b.ResourceID,
		ResourceName:     b.ResourceName,
		ResourceBuilding: "A",
		RequesterID:      b.RequesterID,
		Title:            b.Title,
		Purpose:          b.Purpose,
		StartTime:        b.Start,
		EndTime:          b.End,
		Visibility:       b.Visibility,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}
