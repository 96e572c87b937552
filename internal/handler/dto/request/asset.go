package request

import (
	"civic-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type AssetRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Category    string  `json:"category" binding:"required,oneof=FURNITURE AUDIO ELECTRIC TENT SPORTS"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=GOOD BROKEN MAINTENANCE LIQUIDATION"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

func (r *AssetRequest) ToInput() commands.AssetInput {
	return commands.AssetInput{
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		TotalQuantity: r.Quantity,
		Status:        r.Status,
		Location:      r.Location,
		Notes:         r.Notes,
	}
}

type BorrowRequest struct {
	AssetID         uuid.UUID  `json:"assetId" binding:"required"`
	Quantity        int        `json:"quantity" binding:"required,min=1"`
	ConditionBefore string     `json:"conditionBefore" binding:"required"`
	BookingID       *uuid.UUID `json:"bookingId"`
	Notes           *string    `json:"notes"`
}

func (r *BorrowRequest) ToCommand() commands.BorrowRequest {
	return commands.BorrowRequest{
		AssetID:         r.AssetID,
		Quantity:        r.Quantity,
		ConditionBefore: r.ConditionBefore,
		BookingID:       r.BookingID,
		Notes:           r.Notes,
	}
}

type ReturnRequest struct {
	BorrowLogID    uuid.UUID `json:"borrowLogId" binding:"required"`
	ConditionAfter string    `json:"conditionAfter" binding:"required"`
	Notes          *string   `json:"notes"`
}

func (r *ReturnRequest) ToCommand() commands.ReturnRequest {
	return commands.ReturnRequest{
		BorrowLogID:    r.BorrowLogID,
		ConditionAfter: r.ConditionAfter,
		Notes:          r.Notes,
	}
}
