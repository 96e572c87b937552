package repository

import (
	"context"
	"time"

	"civic-hub/internal/domain/household"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HouseholdWriteQueries interface {
	CreateHousehold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHouseholdParams) error
	AddHouseholdMember(ctx context.Context, db sqlc.DBTX, arg sqlc.AddHouseholdMemberParams) error
	GetHouseholdByMember(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Households, error)
	LockHouseholdByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Households, error)
	UpdateHousehold(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHouseholdParams) (int64, error)
	CreatePerson(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePersonParams) error
	GetPersonInHousehold(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPersonInHouseholdParams) (sqlc.Persons, error)
	DeletePerson(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type HouseholdRepository struct {
	queries HouseholdWriteQueries
}

func NewHouseholdRepository(queries HouseholdWriteQueries) *HouseholdRepository {
	return &HouseholdRepository{queries: queries}
}

func (r *HouseholdRepository) Create(ctx context.Context, tx sqlc.DBTX, h *household.Household) error {
	err := r.queries.CreateHousehold(ctx, tx, sqlc.CreateHouseholdParams{
		ID:        h.ID(),
		Code:      h.Code(),
		Address:   h.Address(),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	})
	if err != nil {
		return translateHouseholdErr(infra.WrapRepoErr("failed to create household", err))
	}
	return nil
}

func (r *HouseholdRepository) AddMember(ctx context.Context, tx sqlc.DBTX, userID, householdID uuid.UUID, now time.Time) error {
	err := r.queries.AddHouseholdMember(ctx, tx, sqlc.AddHouseholdMemberParams{
		UserID:      userID,
		HouseholdID: householdID,
		CreatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to add household member", err)
		switch {
		case infra.IsKind(wrapped, infra.KindForeignKeyViolated):
			return household.ErrHouseholdNotFound
		case infra.IsKind(wrapped, infra.KindDuplicateKey):
			return household.ErrAlreadyMember
		}
		return wrapped
	}
	return nil
}

func (r *HouseholdRepository) FindByMember(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*household.Household, error) {
	row, err := r.queries.GetHouseholdByMember(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, household.ErrNoMembership
		}
		return nil, infra.WrapRepoErr("failed to find household by member", err)
	}
	return converter.HouseholdFromRow(row), nil
}

func (r *HouseholdRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*household.Household, error) {
	row, err := r.queries.LockHouseholdByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, household.ErrHouseholdNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock household", err)
	}
	return converter.HouseholdFromRow(row), nil
}

func (r *HouseholdRepository) Update(ctx context.Context, tx sqlc.DBTX, h *household.Household) error {
	n, err := r.queries.UpdateHousehold(ctx, tx, sqlc.UpdateHouseholdParams{
		ID:        h.ID(),
		Code:      h.Code(),
		Address:   h.Address(),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	})
	if err != nil {
		return translateHouseholdErr(infra.WrapRepoErr("failed to update household", err))
	}
	if n == 0 {
		return household.ErrHouseholdNotFound
	}
	return nil
}

func (r *HouseholdRepository) CreatePerson(ctx context.Context, tx sqlc.DBTX, p *household.Person) error {
	err := r.queries.CreatePerson(ctx, tx, converter.PersonToCreateParams(p))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create person", err)
		switch {
		case infra.IsKind(wrapped, infra.KindDuplicateKey):
			return household.ErrDuplicateIDNumber
		case infra.IsKind(wrapped, infra.KindForeignKeyViolated):
			return household.ErrHouseholdNotFound
		}
		return wrapped
	}
	return nil
}

func (r *HouseholdRepository) FindPerson(ctx context.Context, tx sqlc.DBTX, householdID, personID uuid.UUID) (*household.Person, error) {
	row, err := r.queries.GetPersonInHousehold(ctx, tx, sqlc.GetPersonInHouseholdParams{
		ID:          personID,
		HouseholdID: householdID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, household.ErrPersonNotFound
		}
		return nil, infra.WrapRepoErr("failed to find person", err)
	}
	return converter.PersonFromRow(row), nil
}

func (r *HouseholdRepository) DeletePerson(ctx context.Context, tx sqlc.DBTX, personID uuid.UUID) error {
	n, err := r.queries.DeletePerson(ctx, tx, personID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete person", err)
	}
	if n == 0 {
		return household.ErrPersonNotFound
	}
	return nil
}

func translateHouseholdErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return household.ErrDuplicateCode
	}
	return err
}
