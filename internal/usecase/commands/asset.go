package commands

//go:generate mockgen -source=asset.go -destination=../../../tests/mock/commands/asset_mock.go -package=commandsmock

import (
	"context"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssetInput struct {
	Name          string
	Category      string
	Description   *string
	TotalQuantity int
	Status        string
	Location      *string
	Notes         *string
}

func (in AssetInput) attributes() asset.Attributes {
	return asset.Attributes{
		Name:          in.Name,
		Category:      asset.Category(in.Category),
		Description:   in.Description,
		TotalQuantity: in.TotalQuantity,
		Status:        asset.Status(in.Status),
		Location:      in.Location,
		Notes:         in.Notes,
	}
}

type BorrowRequest struct {
	AssetID         uuid.UUID
	Quantity        int
	ConditionBefore string
	BookingID       *uuid.UUID
	Notes           *string
}

type ReturnRequest struct {
	BorrowLogID    uuid.UUID
	ConditionAfter string
	Notes          *string
}

type CreateAssetResult struct {
	AssetID uuid.UUID
}

type BorrowResult struct {
	BorrowLogID uuid.UUID
}

type AssetCommands interface {
	Create(ctx context.Context, actor user.Actor, in AssetInput) (*CreateAssetResult, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in AssetInput) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Borrow(ctx context.Context, actor user.Actor, req BorrowRequest) (*BorrowResult, error)
	Return(ctx context.Context, actor user.Actor, req ReturnRequest) error
}

type assetUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAssetCommands(uow shared.UnitOfWork, clk clock.Clock) AssetCommands {
	return &assetUseCaseImpl{uow: uow, clock: clk}
}

func (uc *assetUseCaseImpl) Create(ctx context.Context, actor user.Actor, in AssetInput) (*CreateAssetResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	a, err := asset.NewAsset(in.attributes(), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Assets().Create(ctx, tx.DB(), a)
	})
	if err != nil {
		return nil, err
	}
	return &CreateAssetResult{AssetID: a.ID()}, nil
}

// Update locks the asset before reading the borrowed quantity so that a
// concurrent borrow cannot slip under a lowered total.
func (uc *assetUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in AssetInput) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Assets().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		borrowed, err := tx.BorrowLogs().SumOpenQuantity(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := a.Update(in.attributes(), borrowed, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Assets().Update(ctx, tx.DB(), a)
	})
}

func (uc *assetUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Assets().LockByID(ctx, tx.DB(), id); err != nil {
			return err
		}
		logs, err := tx.BorrowLogs().CountByAsset(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if logs > 0 {
			return asset.ErrAssetHasLedgerHistory
		}
		return tx.Assets().Delete(ctx, tx.DB(), id)
	})
}

func (uc *assetUseCaseImpl) Borrow(ctx context.Context, actor user.Actor, req BorrowRequest) (*BorrowResult, error) {
	var logID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Assets().LockByID(ctx, tx.DB(), req.AssetID)
		if err != nil {
			return err
		}
		open, err := tx.BorrowLogs().SumOpenQuantity(ctx, tx.DB(), req.AssetID)
		if err != nil {
			return err
		}
		l, err := a.Borrow(asset.BorrowRequest{
			BorrowerID:      actor.ID,
			Quantity:        req.Quantity,
			ConditionBefore: req.ConditionBefore,
			BookingID:       req.BookingID,
			Notes:           req.Notes,
		}, open, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.BorrowLogs().Create(ctx, tx.DB(), l); err != nil {
			return err
		}
		logID = l.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &BorrowResult{BorrowLogID: logID}, nil
}

func (uc *assetUseCaseImpl) Return(ctx context.Context, actor user.Actor, req ReturnRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.BorrowLogs().LockByID(ctx, tx.DB(), req.BorrowLogID)
		if err != nil {
			return err
		}
		if !actor.CanManage(l.BorrowerID()) {
			return asset.ErrNotBorrower
		}
		if err := l.Return(req.ConditionAfter, req.Notes, uc.clock.Now()); err != nil {
			return err
		}
		return tx.BorrowLogs().UpdateReturn(ctx, tx.DB(), l)
	})
}
