package request

import (
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	ResourceID         uuid.UUID `json:"resourceId" binding:"required"`
	Title              string    `json:"title" binding:"required,max=200"`
	Description        *string   `json:"description"`
	Purpose            string    `json:"purpose" binding:"required"`
	Visibility         string    `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE"`
	CleaningCommitment bool      `json:"cleaningCommitment"`
	StartTime          time.Time `json:"startTime" binding:"required"`
	EndTime            time.Time `json:"endTime" binding:"required"`
}

func (r *SubmitBookingRequest) ToCommand() commands.SubmitBookingRequest {
	return commands.SubmitBookingRequest{
		ResourceID:         r.ResourceID,
		Title:              r.Title,
		Description:        r.Description,
		Purpose:            r.Purpose,
		Visibility:         r.Visibility,
		CleaningCommitment: r.CleaningCommitment,
		Start:              r.StartTime,
		End:                r.EndTime,
	}
}

// Absent fields keep their current value.
type EditBookingRequest struct {
	Title              *string    `json:"title" binding:"omitempty,max=200"`
	Description        *string    `json:"description"`
	Purpose            *string    `json:"purpose"`
	Visibility         *string    `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE"`
	CleaningCommitment *bool      `json:"cleaningCommitment"`
	StartTime          *time.Time `json:"startTime"`
	EndTime            *time.Time `json:"endTime"`
}

func (r *EditBookingRequest) ToCommand() commands.EditBookingRequest {
	return commands.EditBookingRequest{
		Title:              r.Title,
		Description:        r.Description,
		Purpose:            r.Purpose,
		Visibility:         r.Visibility,
		CleaningCommitment: r.CleaningCommitment,
		Start:              r.StartTime,
		End:                r.EndTime,
	}
}

type HandoverRequest struct {
	BeforeChecked bool    `json:"beforeChecked"`
	AfterChecked  bool    `json:"afterChecked"`
	Notes         *string `json:"notes"`
}

func (r *HandoverRequest) ToCommand() commands.HandoverRequest {
	return commands.HandoverRequest{
		BeforeChecked: r.BeforeChecked,
		AfterChecked:  r.AfterChecked,
		Notes:         r.Notes,
	}
}

// DecisionRequest is shared by bookings and change requests.
type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *DecisionRequest) ToDecision() (approval.Decision, error) {
	return approval.ParseDecision(r.Status)
}
