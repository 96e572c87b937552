package commands

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/commands/resource_mock.go -package=commandsmock

import (
	"context"

	"civic-hub/internal/domain/resource"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceInput struct {
	Name        string
	Building    string
	Floor       *int
	Room        *string
	Capacity    int
	Description *string
}

func (in ResourceInput) attributes() resource.Attributes {
	return resource.Attributes{
		Name:        in.Name,
		Building:    resource.Building(in.Building),
		Floor:       in.Floor,
		Room:        in.Room,
		Capacity:    in.Capacity,
		Description: in.Description,
	}
}

type CreateResourceResult struct {
	ResourceID uuid.UUID
}

type ResourceCommands interface {
	Create(ctx context.Context, actor user.Actor, in ResourceInput) (*CreateResourceResult, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in ResourceInput) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type resourceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceCommands(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *resourceUseCaseImpl) Create(ctx context.Context, actor user.Actor, in ResourceInput) (*CreateResourceResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	r, err := resource.NewResource(in.attributes(), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return nil, err
	}
	return &CreateResourceResult{ResourceID: r.ID()}, nil
}

func (uc *resourceUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in ResourceInput) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Resources().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := r.Update(in.attributes(), uc.clock.Now()); err != nil {
			return err
		}
		return tx.Resources().Update(ctx, tx.DB(), r)
	})
}

// Delete refuses while the resource still has pending or approved bookings
// that have not ended. The rest go with the resource.
func (uc *resourceUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().LockByID(ctx, tx.DB(), id); err != nil {
			return err
		}
		active, err := tx.Bookings().CountActiveByResource(ctx, tx.DB(), id, uc.clock.Now())
		if err != nil {
			return err
		}
		if active > 0 {
			return resource.ErrResourceHasActiveBookings
		}
		return tx.Resources().Delete(ctx, tx.DB(), id)
	})
}
