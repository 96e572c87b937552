package queries

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/queries/resource_mock.go -package=queriesmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/resource"
	"civic-hub/internal/infra"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Building    string    `json:"building"`
	Floor       *int      `json:"floor"`
	Room        *string   `json:"room"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ResourceFilter struct {
	Building *string
	IDs      []uuid.UUID
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error) {
	if filter.Building != nil {
		b, err := resource.ParseBuilding(*filter.Building)
		if err != nil {
			return nil, err
		}
		s := b.String()
		filter.Building = &s
	}
	return q.store.List(ctx, filter)
}
