package queries

//go:generate mockgen -source=household.go -destination=../../../tests/mock/queries/household_mock.go -package=queriesmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/infra"

	"github.com/google/uuid"
)

type HouseholdView struct {
	ID          uuid.UUID     `json:"id"`
	Code        string        `json:"code"`
	Address     string        `json:"address"`
	PersonCount int           `json:"personCount"`
	MemberCount int           `json:"memberCount"`
	Persons     []*PersonView `json:"persons,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type PersonView struct {
	ID           uuid.UUID  `json:"id"`
	HouseholdID  uuid.UUID  `json:"householdId"`
	FullName     string     `json:"fullName"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	Gender       *string    `json:"gender"`
	IDNumber     *string    `json:"idNumber"`
	Relationship *string    `json:"relationship"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type HouseholdReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HouseholdView, error)
	FindByMember(ctx context.Context, userID uuid.UUID) (*HouseholdView, error)
	List(ctx context.Context, search *string) ([]*HouseholdView, error)
	ListPersons(ctx context.Context, householdID uuid.UUID) ([]*PersonView, error)
}

type HouseholdQueries interface {
	Mine(ctx context.Context, actor user.Actor) (*HouseholdView, error)
	MyPersons(ctx context.Context, actor user.Actor) ([]*PersonView, error)
	List(ctx context.Context, actor user.Actor, search *string) ([]*HouseholdView, error)
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*HouseholdView, error)
}

type householdQueriesImpl struct {
	store HouseholdReadStore
}

func NewHouseholdQueries(store HouseholdReadStore) HouseholdQueries {
	return &householdQueriesImpl{store: store}
}

func (q *householdQueriesImpl) Mine(ctx context.Context, actor user.Actor) (*HouseholdView, error) {
	v, err := q.store.FindByMember(ctx, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, household.ErrNoMembership
		}
		return nil, err
	}
	return v, nil
}

func (q *householdQueriesImpl) MyPersons(ctx context.Context, actor user.Actor) ([]*PersonView, error) {
	hh, err := q.Mine(ctx, actor)
	if err != nil {
		return nil, err
	}
	return q.store.ListPersons(ctx, hh.ID)
}

func (q *householdQueriesImpl) List(ctx context.Context, actor user.Actor, search *string) ([]*HouseholdView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	return q.store.List(ctx, search)
}

// GetByID includes the household's persons.
func (q *householdQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*HouseholdView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, household.ErrHouseholdNotFound
		}
		return nil, err
	}
	persons, err := q.store.ListPersons(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Persons = persons
	return v, nil
}
