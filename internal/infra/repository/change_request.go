package repository

import (
	"context"

	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ChangeRequestWriteQueries interface {
	CreateChangeRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChangeRequestParams) error
	LockChangeRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ChangeRequests, error)
	UpdateChangeRequestDecision(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateChangeRequestDecisionParams) (int64, error)
}

type ChangeRequestRepository struct {
	queries ChangeRequestWriteQueries
}

func NewChangeRequestRepository(queries ChangeRequestWriteQueries) *ChangeRequestRepository {
	return &ChangeRequestRepository{queries: queries}
}

func (r *ChangeRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *changerequest.ChangeRequest) error {
	if err := r.queries.CreateChangeRequest(ctx, tx, converter.ChangeRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create change request", err)
	}
	return nil
}

func (r *ChangeRequestRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*changerequest.ChangeRequest, error) {
	row, err := r.queries.LockChangeRequestByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, changerequest.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock change request", err)
	}
	return converter.ChangeRequestFromRow(row), nil
}

func (r *ChangeRequestRepository) UpdateDecision(ctx context.Context, tx sqlc.DBTX, req *changerequest.ChangeRequest) error {
	n, err := r.queries.UpdateChangeRequestDecision(ctx, tx, converter.ChangeRequestToDecisionParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to record change request decision", err)
	}
	if n == 0 {
		return changerequest.ErrRequestNotFound
	}
	return nil
}
