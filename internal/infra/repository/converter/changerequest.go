package converter

import (
	"encoding/json"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/changerequest"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func ChangeRequestToCreateParams(r *changerequest.ChangeRequest) sqlc.CreateChangeRequestParams {
	return sqlc.CreateChangeRequestParams{
		ID:          r.ID(),
		Type:        r.Type().String(),
		RequesterID: r.RequesterID(),
		HouseholdID: pgconv.UUIDPtrToPgtype(r.HouseholdID()),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		Payload:     []byte(r.Payload()),
		Status:      r.Status().String(),
		DecidedBy:   pgconv.UUIDPtrToPgtype(r.DecidedBy()),
		DecidedAt:   pgconv.TimePtrToPgtype(r.DecidedAt()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ChangeRequestToDecisionParams(r *changerequest.ChangeRequest) sqlc.UpdateChangeRequestDecisionParams {
	return sqlc.UpdateChangeRequestDecisionParams{
		ID:        r.ID(),
		Status:    r.Status().String(),
		DecidedBy: pgconv.UUIDPtrToPgtype(r.DecidedBy()),
		DecidedAt: pgconv.TimePtrToPgtype(r.DecidedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ChangeRequestFromRow(row sqlc.ChangeRequests) *changerequest.ChangeRequest {
	return changerequest.ReconstructChangeRequest(
		row.ID,
		changerequest.Type(row.Type),
		row.RequesterID,
		pgconv.UUIDPtrFromPgtype(row.HouseholdID),
		pgconv.StringPtrFromPgtype(row.Description),
		json.RawMessage(row.Payload),
		approval.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.DecidedBy),
		pgconv.TimePtrFromPgtype(row.DecidedAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
