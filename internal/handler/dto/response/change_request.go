package response

import (
	"encoding/json"
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChangeRequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	RequesterID   uuid.UUID       `json:"requesterId"`
	HouseholdID   *uuid.UUID      `json:"householdId"`
	HouseholdCode *string         `json:"householdCode"`
	Description   *string         `json:"description"`
	Payload       json.RawMessage `json:"payload" swaggertype:"object"`
	Status        string          `json:"status"`
	DecidedBy     *uuid.UUID      `json:"decidedBy"`
	DecidedAt     *time.Time      `json:"decidedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromRequestView(v *queries.RequestView) ChangeRequestResponse {
	return mapTo[ChangeRequestResponse](v)
}

func FromRequestPage(vs []*queries.RequestView, next *queries.Cursor) PageResponse[ChangeRequestResponse] {
	items := []ChangeRequestResponse{}
	if len(vs) > 0 {
		items = mapTo[[]ChangeRequestResponse](vs)
	}
	return PageResponse[ChangeRequestResponse]{Items: items, NextCursor: nextCursor(next)}
}
