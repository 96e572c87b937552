package queries

//go:generate mockgen -source=request.go -destination=../../../tests/mock/queries/request_mock.go -package=queriesmock

import (
	"context"
	"encoding/json"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/infra"

	"github.com/google/uuid"
)

type RequestView struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	RequesterID   uuid.UUID       `json:"requesterId"`
	HouseholdID   *uuid.UUID      `json:"householdId"`
	HouseholdCode *string         `json:"householdCode"`
	Description   *string         `json:"description"`
	Payload       json.RawMessage `json:"payload"`
	Status        string          `json:"status"`
	DecidedBy     *uuid.UUID      `json:"decidedBy"`
	DecidedAt     *time.Time      `json:"decidedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type RequestFilter struct {
	Status *string
	Type   *string
}

type RequestListParams struct {
	Status         *string
	Type           *string
	RequesterID    *uuid.UUID
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	List(ctx context.Context, params RequestListParams) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RequestView, error)
	List(ctx context.Context, actor user.Actor, filter RequestFilter, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
	ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, changerequest.ErrRequestNotFound
		}
		return nil, err
	}
	if !actor.CanManage(v.RequesterID) {
		return nil, changerequest.ErrNotRequestOwner
	}
	return v, nil
}

func (q *requestQueriesImpl) List(ctx context.Context, actor user.Actor, filter RequestFilter, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, nil, err
	}
	params := RequestListParams{}
	if filter.Status != nil {
		st, err := approval.ParseStatus(*filter.Status)
		if err != nil {
			return nil, nil, err
		}
		s := st.String()
		params.Status = &s
	}
	if filter.Type != nil {
		t, err := changerequest.ParseType(*filter.Type)
		if err != nil {
			return nil, nil, err
		}
		s := t.String()
		params.Type = &s
	}
	return q.page(ctx, params, cursor, limit)
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	id := actor.ID
	return q.page(ctx, RequestListParams{RequesterID: &id}, cursor, limit)
}

func (q *requestQueriesImpl) page(ctx context.Context, params RequestListParams, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	if after != nil {
		params.AfterCreatedAt = &after.CreatedAt
		params.AfterID = &after.ID
	}
	params.Limit = int32(limit + 1)

	rows, err := q.store.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *RequestView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}
