package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/usecase/shared"
	"civic-hub/internal/usecase/workflow"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	ResourceID         uuid.UUID
	Title              string
	Description        *string
	Purpose            string
	Visibility         string
	CleaningCommitment bool
	Start              time.Time
	End                time.Time
}

type EditBookingRequest struct {
	Title              *string
	Description        *string
	Purpose            *string
	Visibility         *string
	CleaningCommitment *bool
	Start              *time.Time
	End                *time.Time
}

type HandoverRequest struct {
	BeforeChecked bool
	AfterChecked  bool
	Notes         *string
}

type SubmitBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Submit(ctx context.Context, actor user.Actor, req SubmitBookingRequest) (*SubmitBookingResult, error)
	Edit(ctx context.Context, actor user.Actor, id uuid.UUID, req EditBookingRequest) error
	Decide(ctx context.Context, actor user.Actor, id uuid.UUID, decision approval.Decision) error
	RecordHandover(ctx context.Context, actor user.Actor, id uuid.UUID, req HandoverRequest) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, services: services}
}

func (uc *bookingUseCaseImpl) Submit(ctx context.Context, actor user.Actor, req SubmitBookingRequest) (*SubmitBookingResult, error) {
	window, err := booking.NewWindow(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	visibility, err := parseVisibility(req.Visibility)
	if err != nil {
		return nil, err
	}
	details := booking.Details{
		Title:              req.Title,
		Description:        req.Description,
		Purpose:            req.Purpose,
		Visibility:         visibility,
		CleaningCommitment: req.CleaningCommitment,
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().FindByID(ctx, tx.DB(), req.ResourceID); err != nil {
			return err
		}
		b, err := booking.NewBooking(uc.services, req.ResourceID, actor.ID, window, details)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitBookingResult{BookingID: created.ID()}, nil
}

func (uc *bookingUseCaseImpl) Edit(ctx context.Context, actor user.Actor, id uuid.UUID, req EditBookingRequest) error {
	var visibility *booking.Visibility
	if req.Visibility != nil {
		v, err := booking.ParseVisibility(*req.Visibility)
		if err != nil {
			return err
		}
		visibility = &v
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !actor.CanManage(b.RequesterID()) {
			return booking.ErrNotBookingOwner
		}
		err = b.Edit(booking.EditPatch{
			Title:              req.Title,
			Description:        req.Description,
			Purpose:            req.Purpose,
			Visibility:         visibility,
			CleaningCommitment: req.CleaningCommitment,
			Start:              req.Start,
			End:                req.End,
		}, uc.services.Hours, uc.services.Clock.Now())
		if err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, actor user.Actor, id uuid.UUID, decision approval.Decision) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if decision != approval.DecisionApprove && decision != approval.DecisionReject {
		return approval.ErrInvalidDecision
	}
	now := uc.services.Clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if decision == approval.DecisionApprove {
			_, err := workflow.ApproveBooking(ctx, tx, id, now)
			return err
		}

		b, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := b.Reject(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return workflow.NotifyBookingDecided(ctx, tx, b, now)
	})
}

func (uc *bookingUseCaseImpl) RecordHandover(ctx context.Context, actor user.Actor, id uuid.UUID, req HandoverRequest) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		h := booking.Handover{
			BeforeChecked: req.BeforeChecked,
			AfterChecked:  req.AfterChecked,
			Notes:         req.Notes,
		}
		if err := b.RecordHandover(h, uc.services.Clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !actor.CanManage(b.RequesterID()) {
			return booking.ErrNotBookingOwner
		}
		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
}

func parseVisibility(s string) (booking.Visibility, error) {
	if s == "" {
		return booking.VisibilityPublic, nil
	}
	return booking.ParseVisibility(s)
}
