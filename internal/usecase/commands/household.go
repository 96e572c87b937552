package commands

//go:generate mockgen -source=household.go -destination=../../../tests/mock/commands/household_mock.go -package=commandsmock

import (
	"context"

	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateHouseholdRequest struct {
	Code    string
	Address string
}

type CreateHouseholdResult struct {
	HouseholdID uuid.UUID
}

// HouseholdCommands covers the administrative setup of households. Residents
// change their household only through approved change requests.
type HouseholdCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateHouseholdRequest) (*CreateHouseholdResult, error)
	AddMember(ctx context.Context, actor user.Actor, householdID, userID uuid.UUID) error
}

type householdUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHouseholdCommands(uow shared.UnitOfWork, clk clock.Clock) HouseholdCommands {
	return &householdUseCaseImpl{uow: uow, clock: clk}
}

func (uc *householdUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateHouseholdRequest) (*CreateHouseholdResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	h, err := household.NewHousehold(req.Code, req.Address, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Households().Create(ctx, tx.DB(), h)
	})
	if err != nil {
		return nil, err
	}
	return &CreateHouseholdResult{HouseholdID: h.ID()}, nil
}

func (uc *householdUseCaseImpl) AddMember(ctx context.Context, actor user.Actor, householdID, userID uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Households().LockByID(ctx, tx.DB(), householdID); err != nil {
			return err
		}
		return tx.Households().AddMember(ctx, tx.DB(), userID, householdID, uc.clock.Now())
	})
}
