package workflow

import (
	"context"

	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var errUnexpectedPayload = errs.New("handler received a payload of another request type")

type householdUpdateHandler struct {
	clock clock.Clock
}

func (h *householdUpdateHandler) Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, householdID *uuid.UUID) error {
	p, ok := payload.(changerequest.HouseholdUpdatePayload)
	if !ok {
		return errUnexpectedPayload
	}
	if householdID == nil {
		return changerequest.ErrNoHousehold
	}

	hh, err := tx.Households().LockByID(ctx, tx.DB(), *householdID)
	if err != nil {
		return err
	}
	if err := hh.Update(p.EffectiveCode(), p.Address, h.clock.Now()); err != nil {
		return err
	}
	return tx.Households().Update(ctx, tx.DB(), hh)
}

type addPersonHandler struct {
	clock clock.Clock
}

func (h *addPersonHandler) Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, householdID *uuid.UUID) error {
	p, ok := payload.(changerequest.AddPersonPayload)
	if !ok {
		return errUnexpectedPayload
	}
	if householdID == nil {
		return changerequest.ErrNoHousehold
	}

	dob, err := p.BirthDate()
	if err != nil {
		return err
	}
	person, err := household.NewPerson(*householdID, household.PersonAttributes{
		FullName:     p.FullName,
		DateOfBirth:  dob,
		Gender:       p.Gender,
		IDNumber:     p.IDNumber,
		Relationship: p.Relationship,
	}, h.clock.Now())
	if err != nil {
		return err
	}
	return tx.Households().CreatePerson(ctx, tx.DB(), person)
}

type removePersonHandler struct{}

// The person must belong to the request's household.
func (h *removePersonHandler) Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, householdID *uuid.UUID) error {
	p, ok := payload.(changerequest.RemovePersonPayload)
	if !ok {
		return errUnexpectedPayload
	}
	if householdID == nil {
		return changerequest.ErrNoHousehold
	}

	if _, err := tx.Households().FindPerson(ctx, tx.DB(), *householdID, p.PersonID); err != nil {
		return err
	}
	return tx.Households().DeletePerson(ctx, tx.DB(), p.PersonID)
}

type culturalCenterBookingHandler struct {
	clock clock.Clock
}

func (h *culturalCenterBookingHandler) Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, _ *uuid.UUID) error {
	p, ok := payload.(changerequest.CulturalCenterBookingPayload)
	if !ok {
		return errUnexpectedPayload
	}
	_, err := ApproveBooking(ctx, tx, p.BookingID, h.clock.Now())
	return err
}
