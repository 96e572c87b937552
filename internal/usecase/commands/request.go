package commands

//go:generate mockgen -source=request.go -destination=../../../tests/mock/commands/request_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/notification"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/shared"
	"civic-hub/internal/usecase/workflow"

	"github.com/google/uuid"
)

type SubmitRequestRequest struct {
	Type        string
	Payload     json.RawMessage
	Description *string
}

type SubmitRequestResult struct {
	RequestID uuid.UUID
}

type RequestCommands interface {
	Submit(ctx context.Context, actor user.Actor, req SubmitRequestRequest) (*SubmitRequestResult, error)
	Decide(ctx context.Context, actor user.Actor, id uuid.UUID, decision approval.Decision) error
}

type requestUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	registry *workflow.Registry
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock, registry *workflow.Registry) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk, registry: registry}
}

// Submit stores the payload as given. It is only decoded when an
// administrator approves the request.
func (uc *requestUseCaseImpl) Submit(ctx context.Context, actor user.Actor, req SubmitRequestRequest) (*SubmitRequestResult, error) {
	t, err := changerequest.ParseType(req.Type)
	if err != nil {
		return nil, err
	}
	if !uc.registry.Has(t) {
		return nil, errs.Wrapf(changerequest.ErrUnknownType, "%q", t)
	}

	var requestID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var householdID *uuid.UUID
		hh, err := tx.Households().FindByMember(ctx, tx.DB(), actor.ID)
		switch {
		case err == nil:
			id := hh.ID()
			householdID = &id
		case errs.Is(err, household.ErrNoMembership):
		default:
			return err
		}

		r, err := changerequest.NewChangeRequest(t, actor.ID, householdID, req.Payload, req.Description, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.ChangeRequests().Create(ctx, tx.DB(), r); err != nil {
			return err
		}
		requestID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitRequestResult{RequestID: requestID}, nil
}

// Decide records the verdict and, on approval, runs the handler for the
// request type in the same transaction. A handler failure rolls everything
// back and leaves the request pending.
func (uc *requestUseCaseImpl) Decide(ctx context.Context, actor user.Actor, id uuid.UUID, decision approval.Decision) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if decision != approval.DecisionApprove && decision != approval.DecisionReject {
		return approval.ErrInvalidDecision
	}
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.ChangeRequests().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := r.Decide(decision, actor.ID, now); err != nil {
			return err
		}

		if decision == approval.DecisionApprove {
			payload, err := r.DecodePayload()
			if err != nil {
				return err
			}
			h, err := uc.registry.Lookup(r.Type())
			if err != nil {
				return err
			}
			if err := h.Apply(ctx, tx, payload, r.HouseholdID()); err != nil {
				return errs.Mark(errs.Wrapf(err, "%s handler", r.Type()), errs.ErrHandlerFailed)
			}
		}

		if err := tx.ChangeRequests().UpdateDecision(ctx, tx.DB(), r); err != nil {
			return err
		}
		n, err := notification.RequestDecided(r.RequesterID(), r.Type().String(), r.Status().String(), now)
		if err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
}
