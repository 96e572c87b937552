package response

import (
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AssetResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       *string   `json:"description"`
	TotalQuantity     int       `json:"quantity"`
	BorrowedQuantity  int       `json:"borrowedQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	Status            string    `json:"status"`
	Location          *string   `json:"location"`
	Notes             *string   `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromAssetView(v *queries.AssetView) AssetResponse {
	return mapTo[AssetResponse](v)
}

func FromAssetList(vs []*queries.AssetView) []AssetResponse {
	if len(vs) == 0 {
		return []AssetResponse{}
	}
	return mapTo[[]AssetResponse](vs)
}

type BorrowLogResponse struct {
	ID              uuid.UUID  `json:"id"`
	AssetID         uuid.UUID  `json:"assetId"`
	AssetName       string     `json:"assetName"`
	BorrowerID      uuid.UUID  `json:"borrowerId"`
	BookingID       *uuid.UUID `json:"bookingId"`
	Quantity        int        `json:"quantity"`
	BorrowedAt      time.Time  `json:"borrowedAt"`
	ReturnedAt      *time.Time `json:"returnedAt"`
	Status          string     `json:"status"`
	ConditionBefore string     `json:"conditionBefore"`
	ConditionAfter  *string    `json:"conditionAfter"`
	Notes           *string    `json:"notes"`
}

func FromBorrowLogView(v *queries.BorrowLogView) BorrowLogResponse {
	return mapTo[BorrowLogResponse](v)
}

func FromBorrowLogList(vs []*queries.BorrowLogView) []BorrowLogResponse {
	if len(vs) == 0 {
		return []BorrowLogResponse{}
	}
	return mapTo[[]BorrowLogResponse](vs)
}
